package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/wesleyorama2/benchkit/internal/logging"
	"github.com/wesleyorama2/benchkit/internal/progress"
)

// ValidationError is a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks the configuration.
//
// Returns nil if valid, or a *ValidationErrors containing every problem.
// Report options are checked later against each generator's schema.
func (c *Config) Validate() error {
	errs := &ValidationErrors{}

	if c.Filter != "" {
		if _, err := regexp.Compile(c.Filter); err != nil {
			errs.Add("filter", fmt.Sprintf("invalid regular expression: %v", err))
		}
	}

	if !slices.Contains(progress.Names(), c.Progress) {
		errs.Add("progress", fmt.Sprintf("must be one of %s, got %q", strings.Join(progress.Names(), ", "), c.Progress))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs.Add("log_level", err.Error())
	}

	switch strings.ToLower(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs.Add("log_format", fmt.Sprintf("must be text or json, got %q", c.LogFormat))
	}

	for i, r := range c.Reports {
		if strings.TrimSpace(r.Name) == "" {
			errs.Add(fmt.Sprintf("reports[%d].name", i), "report name is required")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
