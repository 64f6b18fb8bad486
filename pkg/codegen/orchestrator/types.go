package orchestrator

import (
	"context"

	"github.com/platinummonkey/codecgen/pkg/codegen/artifacts"
	"github.com/platinummonkey/codecgen/pkg/dataflow"
	"github.com/platinummonkey/codecgen/pkg/definitions"
	"github.com/platinummonkey/codecgen/pkg/docs"
)

// Orchestrator coordinates codec emission
type Orchestrator interface {
	// Emit writes every artifact of one language
	Emit(ctx context.Context, language string, corpus *definitions.Corpus, table dataflow.Table) (*Result, error)

	// EmitAll emits the languages one after another, in the order given
	EmitAll(ctx context.Context, languages []string, corpus *definitions.Corpus, table dataflow.Table) ([]*Result, error)
}

// Result lists the artifacts of one language. Skipped holds the artifacts not
// written because of an unsupported type, Ignored the entries matched by the
// language's ignore list.
type Result struct {
	Language string
	Written  []string
	Skipped  []string
	Ignored  []string
}

// Config holds orchestrator configuration
type Config struct {
	// OutputRoot is the directory language output directories are relative to
	OutputRoot string

	// Writer configures line endings and file modes
	Writer *artifacts.Config

	// InternalServices are left out of the documentation
	InternalServices []string

	// DocumentationTitle heads the Markdown documentation
	DocumentationTitle string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		OutputRoot:         ".",
		Writer:             artifacts.DefaultConfig(),
		InternalServices:   docs.DefaultInternalServices,
		DocumentationTitle: "Client Protocol Documentation",
	}
}
