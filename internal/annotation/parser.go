// Package annotation parses the doc-comment annotations that configure a
// benchmark subject.
//
// A doc block looks like:
//
//	/**
//	 * @description Concatenate with the + operator
//	 * @beforeMethod reset
//	 * @paramProvider provideLengths
//	 * @iterations 5
//	 */
//
// Each line carries at most one annotation. Lines that do not start with
// "@" once the comment markers are stripped are free text and ignored.
package annotation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tag names recognized by the parser.
const (
	TagDescription   = "description"
	TagBeforeMethod  = "beforeMethod"
	TagParamProvider = "paramProvider"
	TagIterations    = "iterations"
)

// DefaultIterations is used when a doc block has no @iterations tag.
const DefaultIterations = 1

// Config is the subject configuration carried by a doc block.
type Config struct {
	Description    string
	BeforeMethods  []string
	ParamProviders []string
	Iterations     int
}

// DefaultConfig returns the configuration of an empty doc block.
func DefaultConfig() Config {
	return Config{
		Description:    "",
		BeforeMethods:  []string{},
		ParamProviders: []string{},
		Iterations:     DefaultIterations,
	}
}

// tagHandler applies one annotation value to the config being built.
type tagHandler func(cfg *Config, value string) error

// handlers maps tag names to their handlers. Scalar tags overwrite, so
// the last occurrence wins; list tags append in source order.
var handlers = map[string]tagHandler{
	TagDescription: func(cfg *Config, value string) error {
		cfg.Description = value
		return nil
	},
	TagIterations: func(cfg *Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("value %q is not a base-10 integer", value)
		}
		if n < 1 {
			return fmt.Errorf("value %d must be at least 1", n)
		}
		cfg.Iterations = n
		return nil
	},
	TagBeforeMethod: func(cfg *Config, value string) error {
		if value == "" {
			return errors.New("a method name is required")
		}
		cfg.BeforeMethods = append(cfg.BeforeMethods, value)
		return nil
	},
	TagParamProvider: func(cfg *Config, value string) error {
		if value == "" {
			return errors.New("a method name is required")
		}
		cfg.ParamProviders = append(cfg.ParamProviders, value)
		return nil
	},
}

// Tags returns the recognized tag names.
func Tags() []string {
	return []string{TagDescription, TagBeforeMethod, TagParamProvider, TagIterations}
}

// Parse parses a doc block into a Config.
//
// An unknown tag fails with an *Error wrapping ErrUnknownAnnotation and a
// bad value with one wrapping ErrMalformedAnnotation. On failure the zero
// Config is returned.
func Parse(doc string) (Config, error) {
	cfg := DefaultConfig()

	for i, raw := range strings.Split(doc, "\n") {
		line := stripCommentMarkers(raw)
		if !strings.HasPrefix(line, "@") {
			continue
		}

		tag, value := splitAnnotation(line[1:])
		handler, ok := handlers[tag]
		if !ok {
			return Config{}, &Error{Kind: ErrUnknownAnnotation, Tag: tag, Line: i + 1, Doc: doc}
		}
		if err := handler(&cfg, value); err != nil {
			return Config{}, &Error{Kind: ErrMalformedAnnotation, Tag: tag, Line: i + 1, Doc: doc, Reason: err.Error()}
		}
	}

	return cfg, nil
}

// stripCommentMarkers removes comment delimiters and the leading "*"
// gutter from one line.
func stripCommentMarkers(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "//")
	line = strings.TrimPrefix(line, "/**")
	line = strings.TrimPrefix(line, "/*")
	line = strings.TrimSpace(line)
	line = strings.TrimSuffix(line, "*/")
	line = strings.TrimSpace(line)
	for strings.HasPrefix(line, "*") {
		line = strings.TrimSpace(line[1:])
	}
	return line
}

// splitAnnotation splits "tag value..." at the first whitespace.
func splitAnnotation(s string) (tag, value string) {
	idx := strings.IndexAny(s, " \t")
	if idx == -1 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx+1:])
}
