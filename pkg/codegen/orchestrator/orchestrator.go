package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/codecgen/pkg/codegen/artifacts"
	"github.com/platinummonkey/codecgen/pkg/codegen/languages"
	"github.com/platinummonkey/codecgen/pkg/codegen/render"
	"github.com/platinummonkey/codecgen/pkg/dataflow"
	"github.com/platinummonkey/codecgen/pkg/definitions"
	"github.com/platinummonkey/codecgen/pkg/docs"
	"github.com/platinummonkey/codecgen/pkg/messageid"
	"github.com/platinummonkey/codecgen/pkg/observability"
)

// DocumentationFile is the name of the Markdown documentation artifact
const DocumentationFile = "documentation.md"

// DefaultOrchestrator implements the Orchestrator interface
type DefaultOrchestrator struct {
	config           *Config
	languageRegistry *languages.Registry
	renderer         render.Renderer
	writer           *artifacts.Writer
	metrics          *observability.Metrics
	log              *logrus.Logger
}

// NewOrchestrator creates a new emission orchestrator. A nil config uses
// DefaultConfig, a nil registry the default languages and a nil logger logrus.New().
func NewOrchestrator(config *Config, registry *languages.Registry, renderer render.Renderer, log *logrus.Logger) *DefaultOrchestrator {
	if config == nil {
		config = DefaultConfig()
	}
	if registry == nil {
		registry = languages.NewDefaultRegistry()
	}
	if log == nil {
		log = logrus.New()
	}

	return &DefaultOrchestrator{
		config:           config,
		languageRegistry: registry,
		renderer:         renderer,
		writer:           artifacts.NewWriter(config.Writer),
		log:              log,
	}
}

// WithMetrics counts written, skipped and ignored artifacts in metrics
func (o *DefaultOrchestrator) WithMetrics(metrics *observability.Metrics) *DefaultOrchestrator {
	o.metrics = metrics
	return o
}

// EmitAll emits the languages sequentially. It stops at the first fatal error and
// returns the results gathered so far.
func (o *DefaultOrchestrator) EmitAll(ctx context.Context, languageIDs []string, corpus *definitions.Corpus, table dataflow.Table) ([]*Result, error) {
	if len(languageIDs) == 0 {
		return nil, ErrNoLanguages
	}

	for _, id := range languageIDs {
		if _, err := o.spec(id); err != nil {
			return nil, err
		}
	}

	results := make([]*Result, 0, len(languageIDs))
	for _, id := range languageIDs {
		result, err := o.Emit(ctx, id, corpus, table)
		if result != nil {
			results = append(results, result)
		}
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// Emit writes the codecs of one language, or the documentation for the
// documentation language
func (o *DefaultOrchestrator) Emit(ctx context.Context, languageID string, corpus *definitions.Corpus, table dataflow.Table) (*Result, error) {
	spec, err := o.spec(languageID)
	if err != nil {
		return nil, err
	}

	e := &emission{
		o:      o,
		ctx:    ctx,
		spec:   spec,
		table:  table,
		result: &Result{Language: spec.ID},
		log:    o.log.WithField("language", spec.ID),
	}

	if spec.Documentation {
		err = e.documentation(corpus)
	} else {
		err = e.codecs(corpus)
	}

	e.log.WithFields(logrus.Fields{
		"written": len(e.result.Written),
		"skipped": len(e.result.Skipped),
		"ignored": len(e.result.Ignored),
	}).Info("Language emitted")

	return e.result, err
}

func (o *DefaultOrchestrator) spec(id string) (*languages.LanguageSpec, error) {
	spec, err := o.languageRegistry.Get(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLanguageNotSupported, id)
	}
	if !o.languageRegistry.IsEnabled(id) {
		return nil, fmt.Errorf("%w: %s", ErrLanguageDisabled, id)
	}
	return spec, nil
}

// emission is the state of one Emit call
type emission struct {
	o      *DefaultOrchestrator
	ctx    context.Context
	spec   *languages.LanguageSpec
	table  dataflow.Table
	result *Result
	log    *logrus.Entry
}

func (e *emission) codecs(corpus *definitions.Corpus) error {
	if e.spec.Aggregation != nil {
		if err := e.seedAggregates(); err != nil {
			return err
		}
	}

	for _, svc := range corpus.Services {
		if e.spec.IsIgnored(svc.Name) {
			e.ignore(svc.Name)
			continue
		}
		for _, method := range svc.Methods {
			if err := e.ctx.Err(); err != nil {
				return err
			}
			name := definitions.QualifiedName(svc.Name, method.Name)
			if e.spec.IsIgnored(name) {
				e.ignore(name)
				continue
			}
			if err := e.method(svc, method); err != nil {
				return err
			}
		}
	}

	if e.spec.Aggregation != nil {
		if err := e.closeAggregates(); err != nil {
			return err
		}
	}

	return e.customTypes(corpus)
}

// method renders and writes the artifacts of one method
func (e *emission) method(svc definitions.Service, method definitions.Method) error {
	enriched, err := messageid.Assign(svc, method)
	if err != nil {
		return err
	}
	data := &render.MethodContext{
		ServiceName:      svc.Name,
		Method:           enriched,
		PayloadInRequest: e.table.Lookup(svc.Name, method.Name),
	}

	if e.spec.Aggregation == nil {
		path := filepath.Join(e.outputDir(), e.spec.ArtifactName(svc.Name, method.Name))
		content, err := e.o.renderer.Render(e.spec.ID, e.spec.MethodTemplate, data)
		if err != nil {
			return e.renderFailed(path, err)
		}
		return e.write(path, content, artifacts.ModeOverwrite)
	}

	// Every shared file gets the method or none does
	contents := make([]string, len(e.spec.Aggregation.Files))
	for i, file := range e.spec.Aggregation.Files {
		content, err := e.o.renderer.Render(e.spec.ID, file.MethodTemplate, data)
		if err != nil {
			return e.renderFailed(definitions.QualifiedName(svc.Name, method.Name), err)
		}
		contents[i] = content
	}
	for i, file := range e.spec.Aggregation.Files {
		if err := e.append(filepath.Join(e.outputDir(), file.Name), contents[i]); err != nil {
			return err
		}
	}
	return nil
}

func (e *emission) seedAggregates() error {
	for _, file := range e.spec.Aggregation.Files {
		content, err := e.o.renderer.Render(e.spec.ID, file.Seed, nil)
		if err != nil {
			return err
		}
		path := filepath.Join(e.outputDir(), file.Name)
		if _, err := e.o.writer.Write(path, content, artifacts.ModeOverwrite); err != nil {
			return err
		}
	}
	return nil
}

func (e *emission) closeAggregates() error {
	footer, err := e.o.renderer.Render(e.spec.ID, e.spec.Aggregation.Footer, nil)
	if err != nil {
		return err
	}
	for _, file := range e.spec.Aggregation.Files {
		path := filepath.Join(e.outputDir(), file.Name)
		if _, err := e.o.writer.Write(path, footer, artifacts.ModeAppend); err != nil {
			return err
		}
		e.written(path)
	}
	return nil
}

func (e *emission) customTypes(corpus *definitions.Corpus) error {
	for _, ct := range corpus.AllCustomTypes() {
		if err := e.ctx.Err(); err != nil {
			return err
		}
		if e.spec.IsIgnored(ct.Name) {
			e.ignore(ct.Name)
			continue
		}
		if e.spec.CustomTypeAdjust != nil {
			ct = e.spec.CustomTypeAdjust(ct)
		}

		data := &render.CustomTypeContext{Codec: ct}
		for _, tmpl := range e.spec.CustomTemplates {
			path := filepath.Join(e.o.config.OutputRoot, e.spec.CustomOutputDir,
				e.spec.CustomArtifactName(ct.Name, tmpl.Extension))
			content, err := e.o.renderer.Render(e.spec.ID, tmpl.Template, data)
			if err != nil {
				if err := e.renderFailed(path, err); err != nil {
					return err
				}
				continue
			}
			if err := e.write(path, content, artifacts.ModeOverwrite); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *emission) documentation(corpus *definitions.Corpus) error {
	generator := docs.NewGenerator(e.o.config.InternalServices)
	doc, err := generator.Generate(corpus)
	if err != nil {
		return err
	}
	doc.Title = e.o.config.DocumentationTitle

	path := filepath.Join(e.outputDir(), DocumentationFile)
	return e.write(path, docs.NewMarkdownExporter().Export(doc), artifacts.ModeOverwrite)
}

func (e *emission) outputDir() string {
	return filepath.Join(e.o.config.OutputRoot, e.spec.OutputDir)
}

func (e *emission) write(path, content string, mode artifacts.Mode) error {
	res, err := e.o.writer.Write(path, content, mode)
	if err != nil {
		return err
	}
	e.log.WithFields(logrus.Fields{
		"path": res.Path,
		"hash": res.Hash,
	}).Debug("Artifact written")
	e.written(path)
	return nil
}

// append adds a method to a shared file. The file is reported once, when closed.
func (e *emission) append(path, content string) error {
	_, err := e.o.writer.Write(path, content, artifacts.ModeAppend)
	return err
}

func (e *emission) written(path string) {
	e.result.Written = append(e.result.Written, path)
	if e.o.metrics != nil {
		e.o.metrics.ArtifactsWritten.WithLabelValues(e.spec.ID).Inc()
	}
}

// renderFailed records an artifact skipped for an unsupported type and returns
// nil, or returns any other error unchanged
func (e *emission) renderFailed(artifact string, err error) error {
	if !errors.Is(err, render.ErrUnsupportedType) {
		return err
	}
	e.log.WithFields(logrus.Fields{
		"artifact": artifact,
		"error":    err,
	}).Warn("Artifact skipped")
	e.result.Skipped = append(e.result.Skipped, artifact)
	if e.o.metrics != nil {
		e.o.metrics.ArtifactsSkipped.WithLabelValues(e.spec.ID, "unsupported_type").Inc()
	}
	return nil
}

func (e *emission) ignore(name string) {
	e.log.WithField("entry", name).Info("Ignored")
	e.result.Ignored = append(e.result.Ignored, name)
	if e.o.metrics != nil {
		e.o.metrics.IgnoredEntries.WithLabelValues(e.spec.ID).Inc()
	}
}
