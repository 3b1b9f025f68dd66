package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/benchkit/internal/config"
	"github.com/wesleyorama2/benchkit/internal/discovery"
	"github.com/wesleyorama2/benchkit/internal/logging"
	"github.com/wesleyorama2/benchkit/internal/output"
	"github.com/wesleyorama2/benchkit/internal/progress"
	"github.com/wesleyorama2/benchkit/internal/report"
	"github.com/wesleyorama2/benchkit/internal/runner"
)

// defaultReport is used when neither flags nor the config file select a
// report.
const defaultReport = "console_table"

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the registered benchmark cases",
		Long: `Run every registered benchmark case and render the results.

Reports are selected by name or by a JSON object carrying a "name" key
and the report's options:

  benchkit run
  benchkit run --report console_table --report json
  benchkit run --report '{"name": "console_table", "precision": 2, "aggregate_iterations": true}'
  benchkit run --config benchkit.yaml --filter 'StringCase::benchBuilder'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
	}

	cmd.Flags().StringP("config", "c", "", "Run configuration file (YAML or JSON)")
	cmd.Flags().StringArrayP("report", "r", nil, "Report name or JSON configuration (repeatable)")
	cmd.Flags().StringP("filter", "f", "", "Only run subjects whose Case::method matches this regular expression")
	cmd.Flags().String("progress", "dots", "Progress output: dots, verbose, log, none")
	cmd.Flags().Bool("fail-fast", false, "Stop at the first failure")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().String("log-level", "warn", "Log level: debug, info, warn, error")
	cmd.Flags().String("log-format", "text", "Log format: text, json")
	cmd.Flags().String("log-file", "", "Also write JSON logs to this file")
	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Setup(logging.Options{
		Writer: a.errOut,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	specs, err := reportSpecs(cmd, cfg)
	if err != nil {
		return err
	}
	prepared, err := report.Prepare(report.DefaultRegistry(a.out, cfg.NoColor), specs)
	if err != nil {
		return err
	}

	cases, err := discovery.NewCollection(a.cases()...)
	if err != nil {
		return err
	}

	d := discovery.SubjectDiscovery{}
	if cfg.Filter != "" {
		// already validated
		d.Filter = regexp.MustCompile(cfg.Filter)
	}

	observer, err := progress.New(cfg.Progress, progress.Config{Writer: a.out, NoColor: cfg.NoColor, Logger: logger})
	if err != nil {
		return err
	}

	scheme := output.SchemeFor(output.UseColors(a.out, cfg.NoColor))
	fmt.Fprintln(a.out, scheme.Title.Sprint("Running benchmarking suite"))
	fmt.Fprintln(a.out)

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	logger.Info("starting run", "cases", cases.Len(), "reports", len(prepared), "fail_fast", cfg.FailFast)
	r := runner.New(d,
		runner.WithObserver(observer),
		runner.WithLogger(logger),
		runner.WithFailFast(cfg.FailFast),
	)
	res, runErr := r.Run(ctx, cases)
	fmt.Fprintln(a.out)

	var genErr error
	for _, p := range prepared {
		if err := p.Generate(res); err != nil {
			genErr = errors.Join(genErr, err)
		}
	}

	if runErr != nil {
		return errors.Join(fmt.Errorf("run aborted: %w", runErr), genErr)
	}
	if genErr != nil {
		return genErr
	}
	if n := res.Counts().Failures; n > 0 {
		for _, f := range res.Failures() {
			logger.Warn("recorded failure", "case", f.Case, "subject", f.Subject, "error", f.Err)
		}
		return fmt.Errorf("%w: %d recorded", ErrFailures, n)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadRunConfig reads the config file, if any, and applies explicitly set
// flags on top.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("filter") {
		cfg.Filter, _ = flags.GetString("filter")
	}
	if flags.Changed("progress") {
		cfg.Progress, _ = flags.GetString("progress")
	}
	if flags.Changed("fail-fast") {
		cfg.FailFast, _ = flags.GetBool("fail-fast")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// reportSpecs takes --report flags when given, the config file's reports
// otherwise, and falls back to the console table.
func reportSpecs(cmd *cobra.Command, cfg *config.Config) ([]report.Spec, error) {
	raw, _ := cmd.Flags().GetStringArray("report")
	if len(raw) > 0 {
		specs := make([]report.Spec, 0, len(raw))
		for _, r := range raw {
			spec, err := report.ParseSpec(r)
			if err != nil {
				return nil, err
			}
			specs = append(specs, spec)
		}
		return specs, nil
	}

	if len(cfg.Reports) > 0 {
		specs := make([]report.Spec, len(cfg.Reports))
		for i, r := range cfg.Reports {
			specs[i] = report.Spec{Name: r.Name, Options: r.Options}
		}
		return specs, nil
	}

	return []report.Spec{{Name: defaultReport, Options: map[string]any{}}}, nil
}
