package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/platinummonkey/codecgen/pkg/validation"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:   "generate",
		Usage:  "Validate the definitions and emit codecs and documentation",
		Flags:  append(inputFlags(), outputFlags()...),
		Action: runGenerate,
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:   "validate",
		Usage:  "Load and validate the definitions without emitting anything",
		Flags:  inputFlags(),
		Action: runValidate,
	}
}

func watchCommand() *cli.Command {
	flags := append(inputFlags(), outputFlags()...)
	flags = append(flags, &cli.DurationFlag{
		Name:  flagDebounce,
		Usage: "Quiet period after a change before regenerating",
	})
	return &cli.Command{
		Name:   "watch",
		Usage:  "Regenerate whenever the definitions change",
		Flags:  flags,
		Action: runWatch,
	}
}

func runGenerate(c *cli.Context) error {
	cfg, log, err := loadSettings(c)
	if err != nil {
		return err
	}
	pipeline, err := NewPipeline(cfg, log)
	if err != nil {
		return err
	}

	report, err := pipeline.Generate(c.Context)
	if report.Validation != nil {
		printDiagnostics(c, report.Validation)
	}
	if err != nil {
		return exitError(err)
	}

	for _, result := range report.Results {
		fmt.Fprintf(c.App.Writer, "%-4s written %d, skipped %d, ignored %d\n",
			result.Language, len(result.Written), len(result.Skipped), len(result.Ignored))
	}
	return nil
}

func runValidate(c *cli.Context) error {
	cfg, log, err := loadSettings(c)
	if err != nil {
		return err
	}
	pipeline, err := NewPipeline(cfg, log)
	if err != nil {
		return err
	}

	report, err := pipeline.Validate(c.Context)
	if report.Validation != nil {
		printDiagnostics(c, report.Validation)
	}
	if err != nil {
		return exitError(err)
	}

	fmt.Fprintf(c.App.Writer, "%d services valid\n", len(report.Corpus.Services))
	return nil
}

func runWatch(c *cli.Context) error {
	cfg, log, err := loadSettings(c)
	if err != nil {
		return err
	}
	pipeline, err := NewPipeline(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := newDefinitionWatcher(log, cfg.Watch.Debounce, cfg.Input.ServicesDir, cfg.Input.CustomTypesDir)
	if err != nil {
		return err
	}
	defer watcher.Close()

	generate := func() {
		// Failures are logged by the run; watching goes on
		_, _ = pipeline.Generate(ctx)
	}

	generate()
	log.WithField("debounce", cfg.Watch.Debounce.Round(time.Millisecond)).Info("Watching definitions")
	return watcher.Run(ctx, generate)
}

// exitError maps validation failures to exit status 1 without a usage dump
func exitError(err error) error {
	if errors.Is(err, ErrValidationFailed) {
		return cli.Exit(err.Error(), 1)
	}
	return err
}

func printDiagnostics(c *cli.Context, result *validation.Result) {
	for _, d := range result.Diagnostics {
		if d.Field != "" {
			fmt.Fprintf(c.App.ErrWriter, "%s: %s: %s: %s\n", d.Location, d.Rule, d.Field, d.Message)
		} else {
			fmt.Fprintf(c.App.ErrWriter, "%s: %s: %s\n", d.Location, d.Rule, d.Message)
		}
	}
}
