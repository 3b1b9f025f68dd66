package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/benchkit/internal/discovery"
	"github.com/wesleyorama2/benchkit/internal/output"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered cases and their subjects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.list(cmd)
		},
	}
	cmd.Flags().StringP("filter", "f", "", "Only list subjects whose Case::method matches this regular expression")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	return cmd
}

func (a *app) list(cmd *cobra.Command) error {
	filter, _ := cmd.Flags().GetString("filter")
	noColor, _ := cmd.Flags().GetBool("no-color")

	d := discovery.SubjectDiscovery{}
	if filter != "" {
		re, err := regexp.Compile(filter)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
		d.Filter = re
	}

	cases, err := discovery.NewCollection(a.cases()...)
	if err != nil {
		return err
	}

	scheme := output.SchemeFor(output.UseColors(a.out, noColor))
	var failed bool
	for _, c := range cases.Cases() {
		fmt.Fprintln(a.out, scheme.Case.Sprint(c.Name()))

		subjects, err := d.Discover(c)
		for _, s := range subjects {
			line := fmt.Sprintf("  %s (iterations: %d)", scheme.Subject.Sprint(s.Name), s.Iterations)
			if s.Description != "" {
				line += " " + scheme.Muted.Sprint(s.Description)
			}
			fmt.Fprintln(a.out, line)
			if len(s.BeforeMethods) > 0 {
				fmt.Fprintf(a.out, "      before: %s\n", strings.Join(s.BeforeMethods, ", "))
			}
			if len(s.ParamProviders) > 0 {
				fmt.Fprintf(a.out, "      providers: %s\n", strings.Join(s.ParamProviders, ", "))
			}
		}

		var skipped discovery.Errors
		if errors.As(err, &skipped) {
			failed = true
			for _, se := range skipped {
				fmt.Fprintf(a.out, "  %s\n", scheme.Failure.Sprintf("%s: %v", se.Method, se.Err))
			}
		} else if err != nil {
			return err
		}
	}

	if failed {
		return errors.New("some subjects could not be discovered")
	}
	return nil
}
