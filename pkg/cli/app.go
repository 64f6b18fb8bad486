package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	appVersion = "dev"
	commit     = "none"
)

// Global flag names
const (
	flagEnvFile     = "env-file"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
	flagMetricsFile = "metrics-file"
)

// NewApp creates the codecgen application writing command output to out
func NewApp(out io.Writer) *cli.App {
	if out == nil {
		out = os.Stdout
	}

	return &cli.App{
		Name:      "codecgen",
		Usage:     "Compile protocol definitions into client codecs",
		Version:   fmt.Sprintf("%s (commit: %s)", appVersion, commit),
		Writer:    out,
		ErrWriter: os.Stderr,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagEnvFile,
				Value: ".env",
				Usage: "Environment file loaded before reading CODECGEN_* variables",
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"CODECGEN_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    flagLogFormat,
				Usage:   "Log format (text, json)",
				EnvVars: []string{"CODECGEN_LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    flagMetricsFile,
				Usage:   "Write run metrics to this node exporter textfile",
				EnvVars: []string{"CODECGEN_METRICS_FILE"},
			},
		},

		Commands: []*cli.Command{
			generateCommand(),
			validateCommand(),
			watchCommand(),
			languagesCommand(),
		},
	}
}
