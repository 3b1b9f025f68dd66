package result

import (
	"math"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds in nanoseconds: 1ns to 1 hour, 3 significant figures.
const (
	histogramMin     = 1
	histogramMax     = int64(time.Hour)
	histogramSigFigs = 3
)

// Stats are the aggregates of a sequence of iteration durations.
//
// Count, Sum, Mean, Min, Max and StdDev are exact. The percentiles come
// from an HDR histogram and are accurate to three significant figures.
type Stats struct {
	Count  int           `json:"count" yaml:"count"`
	Sum    time.Duration `json:"sum" yaml:"sum"`
	Mean   time.Duration `json:"mean" yaml:"mean"`
	Min    time.Duration `json:"min" yaml:"min"`
	Max    time.Duration `json:"max" yaml:"max"`
	StdDev time.Duration `json:"stdDev" yaml:"stdDev"`
	P50    time.Duration `json:"p50" yaml:"p50"`
	P95    time.Duration `json:"p95" yaml:"p95"`
	P99    time.Duration `json:"p99" yaml:"p99"`
}

// MeanNanos is the mean as a fractional nanosecond count.
func (s Stats) MeanNanos() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count)
}

// computeStats aggregates ds. An empty input yields zero Stats.
func computeStats(ds []time.Duration) Stats {
	if len(ds) == 0 {
		return Stats{}
	}

	hist := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)

	s := Stats{Count: len(ds), Min: ds[0], Max: ds[0]}
	for _, d := range ds {
		s.Sum += d
		if d < s.Min {
			s.Min = d
		}
		if d > s.Max {
			s.Max = d
		}

		v := int64(d)
		if v < histogramMin {
			v = histogramMin
		}
		if v > histogramMax {
			v = histogramMax
		}
		// v is clamped into the histogram range, so RecordValue cannot fail.
		_ = hist.RecordValue(v)
	}

	mean := float64(s.Sum) / float64(s.Count)
	s.Mean = time.Duration(math.Round(mean))

	var sq float64
	for _, d := range ds {
		diff := float64(d) - mean
		sq += diff * diff
	}
	s.StdDev = time.Duration(math.Round(math.Sqrt(sq / float64(s.Count))))

	s.P50 = time.Duration(hist.ValueAtQuantile(50))
	s.P95 = time.Duration(hist.ValueAtQuantile(95))
	s.P99 = time.Duration(hist.ValueAtQuantile(99))

	return s
}
