package output

import (
	"fmt"
	"strconv"
	"time"
)

// TimeUnit is the unit durations are displayed in.
type TimeUnit string

const (
	Nanoseconds  TimeUnit = "ns"
	Microseconds TimeUnit = "us"
	Milliseconds TimeUnit = "ms"
	Seconds      TimeUnit = "s"
)

// TimeUnits lists the accepted units.
func TimeUnits() []string {
	return []string{string(Nanoseconds), string(Microseconds), string(Milliseconds), string(Seconds)}
}

// ParseTimeUnit validates a unit name.
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch TimeUnit(s) {
	case Nanoseconds, Microseconds, Milliseconds, Seconds:
		return TimeUnit(s), nil
	}
	return "", fmt.Errorf("unknown time unit %q (expected one of %v)", s, TimeUnits())
}

// Per returns the length of one unit.
func (u TimeUnit) Per() time.Duration {
	switch u {
	case Nanoseconds:
		return time.Nanosecond
	case Milliseconds:
		return time.Millisecond
	case Seconds:
		return time.Second
	default:
		return time.Microsecond
	}
}

// Symbol is the suffix printed after a value.
func (u TimeUnit) Symbol() string {
	if u == Microseconds || u == "" {
		return "μs"
	}
	return string(u)
}

// FormatIn renders d in unit u with precision decimals, without suffix.
func FormatIn(d time.Duration, u TimeUnit, precision int) string {
	if precision < 0 {
		precision = 0
	}
	v := float64(d) / float64(u.Per())
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatDurationShort formats a duration in a short format.
func FormatDurationShort(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fμs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm", d.Minutes())
}
