package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platinummonkey/codecgen/pkg/config"
	"github.com/platinummonkey/codecgen/pkg/validation"
)

func pipelineConfig(t *testing.T, services string) *config.Config {
	return &config.Config{
		Input: config.InputConfig{
			ServicesDir:    services,
			CustomTypesDir: customDir,
		},
		Output: config.OutputConfig{
			Root:      t.TempDir(),
			Languages: []string{"cpp", "cs"},
		},
		Observability: config.ObservabilityConfig{LogFormat: "text"},
	}
}

func TestPipeline_Generate(t *testing.T) {
	logger, hook := test.NewNullLogger()
	pipeline, err := NewPipeline(pipelineConfig(t, servicesDir), logger)
	require.NoError(t, err)

	report, err := pipeline.Generate(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.True(t, report.Validation.Valid)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "cpp", report.Results[0].Language)
	assert.Equal(t, "cs", report.Results[1].Language)

	for _, entry := range hook.AllEntries() {
		assert.Equal(t, report.RunID, entry.Data["run_id"], entry.Message)
	}
	assert.Equal(t, "Run completed", hook.LastEntry().Message)
}

func TestPipeline_ValidationFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	pipeline, err := NewPipeline(pipelineConfig(t, writeInvalidCorpus(t)), logger)
	require.NoError(t, err)

	report, err := pipeline.Generate(context.Background())
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Empty(t, report.Results)
	assert.Equal(t, 1, report.Validation.Count(validation.RuleMethodIDOrder))
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestPipeline_Cancelled(t *testing.T) {
	pipeline, err := NewPipeline(pipelineConfig(t, servicesDir), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pipeline.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPipeline_BadPolicy(t *testing.T) {
	cfg := pipelineConfig(t, servicesDir)
	cfg.Input.PolicyFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewPipeline(cfg, nil)
	assert.Error(t, err)
}
