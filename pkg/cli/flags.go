package cli

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/platinummonkey/codecgen/pkg/config"
	"github.com/platinummonkey/codecgen/pkg/observability"
)

const (
	flagServicesDir    = "services-dir"
	flagCustomDir      = "custom-dir"
	flagSchema         = "schema"
	flagCustomSchema   = "custom-schema"
	flagPolicy         = "policy"
	flagNoIDCheck      = "no-id-check"
	flagOutput         = "output"
	flagLanguages      = "languages"
	flagNamespace      = "namespace"
	flagTemplateDir    = "template-dir"
	flagProtocolCommit = "protocol-commit"
	flagDebounce       = "debounce"
)

// inputFlags locate and validate the definitions
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagServicesDir,
			Aliases: []string{"d"},
			Usage:   "Directory of service definition files",
		},
		&cli.StringFlag{
			Name:  flagCustomDir,
			Usage: "Directory of custom type definition files (default: <services-dir>/custom)",
		},
		&cli.StringFlag{
			Name:  flagSchema,
			Usage: "JSON schema of service documents (default: embedded)",
		},
		&cli.StringFlag{
			Name:  flagCustomSchema,
			Usage: "JSON schema of custom type documents (default: embedded)",
		},
		&cli.StringFlag{
			Name:  flagPolicy,
			Usage: "YAML or TOML file overriding the language tables",
		},
		&cli.BoolFlag{
			Name:  flagNoIDCheck,
			Usage: "Skip service and method id continuity checks",
		},
	}
}

// outputFlags control emission
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagOutput,
			Aliases: []string{"o"},
			Usage:   "Root directory of generated sources",
		},
		&cli.StringSliceFlag{
			Name:    flagLanguages,
			Aliases: []string{"l"},
			Usage:   "Languages to emit (java, cpp, cs, py, ts, md)",
		},
		&cli.StringFlag{
			Name:  flagNamespace,
			Usage: "Namespace or package of generated codecs",
		},
		&cli.StringFlag{
			Name:  flagTemplateDir,
			Usage: "Directory replacing the embedded templates, one subdirectory per language",
		},
		&cli.StringFlag{
			Name:  flagProtocolCommit,
			Usage: "Definitions commit recorded in generated sources",
		},
	}
}

// loadSettings loads the configuration and lets set flags override it
func loadSettings(c *cli.Context) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig(c.String(flagEnvFile))
	if err != nil {
		return nil, nil, err
	}

	setString := func(name string, target *string) {
		if c.IsSet(name) {
			*target = c.String(name)
		}
	}

	setString(flagLogLevel, &cfg.Observability.LogLevel)
	setString(flagLogFormat, &cfg.Observability.LogFormat)
	setString(flagMetricsFile, &cfg.Observability.MetricsFile)

	setString(flagServicesDir, &cfg.Input.ServicesDir)
	setString(flagCustomDir, &cfg.Input.CustomTypesDir)
	setString(flagSchema, &cfg.Input.ServiceSchema)
	setString(flagCustomSchema, &cfg.Input.CustomTypesSchema)
	setString(flagPolicy, &cfg.Input.PolicyFile)
	if c.IsSet(flagServicesDir) && !c.IsSet(flagCustomDir) {
		cfg.Input.CustomTypesDir = filepath.Join(cfg.Input.ServicesDir, "custom")
	}
	if c.IsSet(flagNoIDCheck) {
		cfg.Validation.NoIDCheck = c.Bool(flagNoIDCheck)
	}

	setString(flagOutput, &cfg.Output.Root)
	setString(flagNamespace, &cfg.Output.Namespace)
	setString(flagTemplateDir, &cfg.Output.TemplateDir)
	setString(flagProtocolCommit, &cfg.Output.ProtocolCommit)
	if c.IsSet(flagLanguages) {
		cfg.Output.Languages = c.StringSlice(flagLanguages)
	}
	if c.IsSet(flagDebounce) {
		cfg.Watch.Debounce = c.Duration(flagDebounce)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := observability.NewLogger(cfg.Observability.LogLevel, cfg.Observability.LogFormat, c.App.ErrWriter)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
