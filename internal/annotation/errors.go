package annotation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAnnotation is returned for a tag the parser does not know.
	ErrUnknownAnnotation = errors.New("unknown annotation")

	// ErrMalformedAnnotation is returned for a known tag with a bad value.
	ErrMalformedAnnotation = errors.New("malformed annotation")
)

// Error describes a doc block that could not be parsed.
type Error struct {
	Kind   error
	Tag    string
	Line   int
	Doc    string
	Reason string
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s @%s on line %d", e.Kind, e.Tag, e.Line))
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if errors.Is(e.Kind, ErrUnknownAnnotation) {
		sb.WriteString(fmt.Sprintf(" (known annotations: @%s)", strings.Join(Tags(), ", @")))
	}
	sb.WriteString(fmt.Sprintf(" in doc block:\n%s", e.Doc))
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Kind
}
