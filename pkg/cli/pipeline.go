package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/codecgen/pkg/codegen/artifacts"
	"github.com/platinummonkey/codecgen/pkg/codegen/languages"
	"github.com/platinummonkey/codecgen/pkg/codegen/orchestrator"
	"github.com/platinummonkey/codecgen/pkg/codegen/render"
	"github.com/platinummonkey/codecgen/pkg/config"
	"github.com/platinummonkey/codecgen/pkg/dataflow"
	"github.com/platinummonkey/codecgen/pkg/definitions"
	"github.com/platinummonkey/codecgen/pkg/observability"
	"github.com/platinummonkey/codecgen/pkg/validation"
	"github.com/platinummonkey/codecgen/pkg/version"
)

// ErrValidationFailed is returned when the corpus has validation diagnostics
var ErrValidationFailed = errors.New("validation failed")

// Pipeline loads, validates and emits one corpus per run
type Pipeline struct {
	config   *config.Config
	registry *languages.Registry
	log      *logrus.Logger
}

// Report describes one run
type Report struct {
	RunID      string
	Corpus     *definitions.Corpus
	Validation *validation.Result
	Results    []*orchestrator.Result
	Duration   time.Duration
}

// NewPipeline creates a pipeline over the default languages with the policy
// file of cfg applied
func NewPipeline(cfg *config.Config, log *logrus.Logger) (*Pipeline, error) {
	if log == nil {
		log = logrus.New()
	}

	registry := languages.NewDefaultRegistry()
	if cfg.Input.PolicyFile != "" {
		policy, err := config.LoadPolicy(cfg.Input.PolicyFile)
		if err != nil {
			return nil, err
		}
		if err := policy.Apply(registry); err != nil {
			return nil, err
		}
	}

	return &Pipeline{
		config:   cfg,
		registry: registry,
		log:      log,
	}, nil
}

// Registry returns the language tables of the pipeline
func (p *Pipeline) Registry() *languages.Registry {
	return p.registry
}

// Validate loads and validates the corpus
func (p *Pipeline) Validate(ctx context.Context) (*Report, error) {
	return p.run(ctx, "validate", false)
}

// Generate loads and validates the corpus, then emits the configured languages.
// Nothing is emitted when validation fails.
func (p *Pipeline) Generate(ctx context.Context) (*Report, error) {
	return p.run(ctx, "generate", true)
}

func (p *Pipeline) run(ctx context.Context, command string, emit bool) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	log := observability.RunLogger(p.log, report.RunID)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	log.WithFields(logrus.Fields{
		"command":      command,
		"services_dir": p.config.Input.ServicesDir,
	}).Info("Run started")

	start := time.Now()
	err := p.execute(ctx, log, metrics, report, emit)
	report.Duration = time.Since(start)

	metrics.RunDuration.Set(report.Duration.Seconds())
	metrics.LastRunTimestamp.Set(float64(start.Unix()))
	if err == nil {
		metrics.LastRunSuccessful.Set(1)
	}
	if path := p.config.Observability.MetricsFile; path != "" {
		if werr := metrics.WriteTextfile(path); werr != nil {
			log.WithError(werr).WithField("path", path).Warn("Failed to write metrics")
		}
	}

	entry := log.WithFields(logrus.Fields{
		"command":  command,
		"duration": report.Duration,
	})
	if err != nil {
		entry.WithError(err).Error("Run failed")
	} else {
		entry.Info("Run completed")
	}

	return report, err
}

func (p *Pipeline) execute(ctx context.Context, log *logrus.Logger, metrics *observability.Metrics, report *Report, emit bool) error {
	services, err := definitions.LoadServices(p.config.Input.ServicesDir)
	if err != nil {
		return err
	}
	customTypes, err := definitions.LoadCustomTypes(p.config.Input.CustomTypesDir)
	if err != nil {
		return err
	}
	corpus := definitions.NewCorpus(services, customTypes)
	report.Corpus = corpus

	log.WithFields(logrus.Fields{
		"services":     len(services),
		"custom_types": len(corpus.AllCustomTypes()),
	}).Debug("Definitions loaded")

	validator, err := p.validator(log)
	if err != nil {
		return err
	}
	result := validator.ValidateCorpus(corpus, version.Collect(corpus))
	report.Validation = result
	for _, d := range result.Diagnostics {
		metrics.ValidationViolations.WithLabelValues(d.Rule).Inc()
	}
	if !result.Valid {
		return fmt.Errorf("%w: %d diagnostics", ErrValidationFailed, len(result.Diagnostics))
	}

	if !emit {
		return nil
	}

	analyzer := dataflow.NewAnalyzer(dataflow.DefaultPayloadType, corpus.CustomTypeIndex())
	table := analyzer.BuildTable(corpus.Services)
	log.WithField("walks", analyzer.Walks()).Debug("Payload table built")

	renderer, err := render.NewTemplateRenderer(&render.Options{
		TemplateDir:    p.config.Output.TemplateDir,
		Namespace:      p.config.Output.Namespace,
		ProtocolCommit: p.config.Output.ProtocolCommit,
		CustomTypes:    corpus.CustomTypeIndex(),
		CacheSize:      render.DefaultOptions().CacheSize,
	})
	if err != nil {
		return err
	}

	writerConfig := artifacts.DefaultConfig()
	if sep := p.config.Output.LineSeparator; sep != "" {
		writerConfig.LineSeparator = sep
	}
	orchConfig := orchestrator.DefaultConfig()
	orchConfig.OutputRoot = p.config.Output.Root
	orchConfig.Writer = writerConfig

	orch := orchestrator.NewOrchestrator(orchConfig, p.registry, renderer, log).WithMetrics(metrics)
	results, err := orch.EmitAll(ctx, p.config.Output.Languages, corpus, table)
	report.Results = results
	return err
}

func (p *Pipeline) validator(log *logrus.Logger) (*validation.Validator, error) {
	var serviceSchema, customSchema *validation.Schema
	var err error
	if path := p.config.Input.ServiceSchema; path != "" {
		if serviceSchema, err = validation.LoadSchema(path); err != nil {
			return nil, err
		}
	}
	if path := p.config.Input.CustomTypesSchema; path != "" {
		if customSchema, err = validation.LoadSchema(path); err != nil {
			return nil, err
		}
	}

	validationConfig := validation.DefaultConfig()
	validationConfig.NoIDCheck = p.config.Validation.NoIDCheck
	return validation.NewValidator(validationConfig, serviceSchema, customSchema, log), nil
}
