package bench

import "github.com/wesleyorama2/benchkit/internal/annotation"

// Subject is one benchmark method of a case together with its parsed
// configuration.
type Subject struct {
	Name           string
	Description    string
	BeforeMethods  []string
	ParamProviders []string
	Iterations     int
}

// NewSubject builds a subject from a method name and its parsed doc
// block. The slices are copied so the subject does not alias cfg.
func NewSubject(name string, cfg annotation.Config) Subject {
	return Subject{
		Name:           name,
		Description:    cfg.Description,
		BeforeMethods:  append([]string{}, cfg.BeforeMethods...),
		ParamProviders: append([]string{}, cfg.ParamProviders...),
		Iterations:     cfg.Iterations,
	}
}

// Clone returns a copy of s that shares no slices with it.
func (s Subject) Clone() Subject {
	s.BeforeMethods = append([]string{}, s.BeforeMethods...)
	s.ParamProviders = append([]string{}, s.ParamProviders...)
	return s
}
