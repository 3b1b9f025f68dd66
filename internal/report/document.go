package report

import (
	"time"

	"github.com/wesleyorama2/benchkit/internal/params"
	"github.com/wesleyorama2/benchkit/internal/result"
)

// Document is the serializable form of a collection shared by the JSON,
// YAML and HTML reports. Times are integer nanoseconds.
type Document struct {
	Suite SuiteDoc  `json:"suite" yaml:"suite"`
	Cases []CaseDoc `json:"cases" yaml:"cases"`
}

// SuiteDoc describes the run as a whole.
type SuiteDoc struct {
	StartTime  time.Time     `json:"start_time" yaml:"start_time"`
	EndTime    time.Time     `json:"end_time" yaml:"end_time"`
	DurationNs int64         `json:"duration_ns" yaml:"duration_ns"`
	Counts     result.Counts `json:"counts" yaml:"counts"`
}

// CaseDoc is one case.
type CaseDoc struct {
	Name     string       `json:"name" yaml:"name"`
	Subjects []SubjectDoc `json:"subjects" yaml:"subjects"`
}

// SubjectDoc is one subject with its configuration.
type SubjectDoc struct {
	Name           string     `json:"name" yaml:"name"`
	Description    string     `json:"description,omitempty" yaml:"description,omitempty"`
	Iterations     int        `json:"iterations" yaml:"iterations"`
	BeforeMethods  []string   `json:"before_methods" yaml:"before_methods"`
	ParamProviders []string   `json:"param_providers" yaml:"param_providers"`
	Error          string     `json:"error,omitempty" yaml:"error,omitempty"`
	Stats          StatsDoc   `json:"stats" yaml:"stats"`
	Groups         []GroupDoc `json:"groups" yaml:"groups"`
}

// GroupDoc is the iterations of one parameter set.
type GroupDoc struct {
	Parameters params.Set     `json:"parameters" yaml:"parameters"`
	Error      string         `json:"error,omitempty" yaml:"error,omitempty"`
	Stats      StatsDoc       `json:"stats" yaml:"stats"`
	Iterations []IterationDoc `json:"iterations" yaml:"iterations"`
}

// IterationDoc is one timed call.
type IterationDoc struct {
	Index  int   `json:"index" yaml:"index"`
	TimeNs int64 `json:"time_ns" yaml:"time_ns"`
}

// StatsDoc mirrors result.Stats in nanoseconds.
type StatsDoc struct {
	Count    int   `json:"count" yaml:"count"`
	SumNs    int64 `json:"sum_ns" yaml:"sum_ns"`
	MeanNs   int64 `json:"mean_ns" yaml:"mean_ns"`
	MinNs    int64 `json:"min_ns" yaml:"min_ns"`
	MaxNs    int64 `json:"max_ns" yaml:"max_ns"`
	StdDevNs int64 `json:"stddev_ns" yaml:"stddev_ns"`
	P50Ns    int64 `json:"p50_ns" yaml:"p50_ns"`
	P95Ns    int64 `json:"p95_ns" yaml:"p95_ns"`
	P99Ns    int64 `json:"p99_ns" yaml:"p99_ns"`
}

// NewDocument converts coll.
func NewDocument(coll *result.Collection) Document {
	doc := Document{
		Suite: SuiteDoc{
			StartTime:  coll.StartTime(),
			EndTime:    coll.EndTime(),
			DurationNs: coll.Duration().Nanoseconds(),
			Counts:     coll.Counts(),
		},
		Cases: []CaseDoc{},
	}

	for _, cr := range coll.Cases() {
		cd := CaseDoc{Name: cr.Name(), Subjects: []SubjectDoc{}}
		for _, sr := range cr.Subjects() {
			cd.Subjects = append(cd.Subjects, newSubjectDoc(sr))
		}
		doc.Cases = append(doc.Cases, cd)
	}
	return doc
}

func newSubjectDoc(sr *result.SubjectResult) SubjectDoc {
	s := sr.Subject()
	sd := SubjectDoc{
		Name:           s.Name,
		Description:    s.Description,
		Iterations:     s.Iterations,
		BeforeMethods:  nonNil(s.BeforeMethods),
		ParamProviders: nonNil(s.ParamProviders),
		Error:          errString(sr.Err()),
		Stats:          newStatsDoc(sr.Stats()),
		Groups:         []GroupDoc{},
	}

	for _, g := range sr.Groups() {
		gd := GroupDoc{
			Parameters: g.Parameters(),
			Error:      errString(g.Err()),
			Stats:      newStatsDoc(g.Stats()),
			Iterations: []IterationDoc{},
		}
		for _, it := range g.Iterations() {
			gd.Iterations = append(gd.Iterations, IterationDoc{Index: it.Index, TimeNs: it.Duration.Nanoseconds()})
		}
		sd.Groups = append(sd.Groups, gd)
	}
	return sd
}

func newStatsDoc(s result.Stats) StatsDoc {
	return StatsDoc{
		Count:    s.Count,
		SumNs:    s.Sum.Nanoseconds(),
		MeanNs:   s.Mean.Nanoseconds(),
		MinNs:    s.Min.Nanoseconds(),
		MaxNs:    s.Max.Nanoseconds(),
		StdDevNs: s.StdDev.Nanoseconds(),
		P50Ns:    s.P50.Nanoseconds(),
		P95Ns:    s.P95.Nanoseconds(),
		P99Ns:    s.P99.Nanoseconds(),
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
