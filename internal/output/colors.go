// Package output holds the console helpers shared by progress observers
// and the console report: color schemes, terminal detection and duration
// formatting.
package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Title   *color.Color
	Case    *color.Color
	Subject *color.Color
	Params  *color.Color
	Header  *color.Color
	Value   *color.Color
	Muted   *color.Color
	Success *color.Color
	Failure *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Title:   color.New(color.FgCyan, color.Bold),
		Case:    color.New(color.FgMagenta, color.Bold),
		Subject: color.New(color.FgBlue, color.Bold),
		Params:  color.New(color.FgYellow),
		Header:  color.New(color.Bold),
		Value:   color.New(color.FgWhite),
		Muted:   color.New(color.Faint),
		Success: color.New(color.FgGreen),
		Failure: color.New(color.FgRed, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	for _, c := range scheme.all() {
		c.DisableColor()
	}
	return scheme
}

// SchemeFor picks the default scheme or the disabled one.
func SchemeFor(useColors bool) *ColorScheme {
	if useColors {
		scheme := DefaultColorScheme()
		for _, c := range scheme.all() {
			c.EnableColor()
		}
		return scheme
	}
	return NoColorScheme()
}

func (s *ColorScheme) all() []*color.Color {
	return []*color.Color{s.Title, s.Case, s.Subject, s.Params, s.Header, s.Value, s.Muted, s.Success, s.Failure}
}

// SuccessIcon returns a checkmark symbol with appropriate color
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	c := color.New(color.FgGreen)
	c.EnableColor()
	return c.Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	c := color.New(color.FgRed)
	c.EnableColor()
	return c.Sprint("✗")
}
