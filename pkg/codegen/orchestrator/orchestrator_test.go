package orchestrator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platinummonkey/codecgen/pkg/codegen/artifacts"
	"github.com/platinummonkey/codecgen/pkg/codegen/languages"
	"github.com/platinummonkey/codecgen/pkg/codegen/render"
	"github.com/platinummonkey/codecgen/pkg/dataflow"
	"github.com/platinummonkey/codecgen/pkg/definitions"
	"github.com/platinummonkey/codecgen/pkg/observability"
)

func loadCorpus(t *testing.T) *definitions.Corpus {
	t.Helper()
	services, err := definitions.LoadServices(filepath.Join("..", "..", "definitions", "testdata", "services"))
	require.NoError(t, err)
	customs, err := definitions.LoadCustomTypes(filepath.Join("..", "..", "definitions", "testdata", "custom"))
	require.NoError(t, err)
	return definitions.NewCorpus(services, customs)
}

func buildTable(corpus *definitions.Corpus) dataflow.Table {
	analyzer := dataflow.NewAnalyzer(dataflow.DefaultPayloadType, corpus.CustomTypeIndex())
	return analyzer.BuildTable(corpus.Services)
}

func testConfig(t *testing.T) *Config {
	config := DefaultConfig()
	config.OutputRoot = t.TempDir()
	config.Writer = artifacts.DefaultConfig()
	config.Writer.LineSeparator = "\n"
	return config
}

func newTemplateRenderer(t *testing.T, corpus *definitions.Corpus) *render.TemplateRenderer {
	t.Helper()
	r, err := render.NewTemplateRenderer(&render.Options{
		Namespace:   "com.hazelcast.client.impl.protocol.codec",
		Now:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CustomTypes: corpus.CustomTypeIndex(),
	})
	require.NoError(t, err)
	return r
}

// stubRenderer returns the template name, failing for the templates in fail
type stubRenderer struct {
	fail  map[string]error
	calls []string
}

func (s *stubRenderer) Render(language, name string, data any) (string, error) {
	if ctx, ok := data.(*render.MethodContext); ok {
		name = name + ":" + definitions.QualifiedName(ctx.ServiceName, ctx.Method.Name)
	}
	s.calls = append(s.calls, name)
	if err, ok := s.fail[name]; ok {
		return "", err
	}
	return name + "\n", nil
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNewOrchestrator_Defaults(t *testing.T) {
	orch := NewOrchestrator(nil, nil, &stubRenderer{}, nil)
	require.NotNil(t, orch)
	assert.Equal(t, DefaultConfig().OutputRoot, orch.config.OutputRoot)
	assert.Equal(t, 6, orch.languageRegistry.Count())
	assert.NotNil(t, orch.log)
}

func TestEmit_Java(t *testing.T) {
	corpus := loadCorpus(t)
	config := testConfig(t)
	orch := NewOrchestrator(config, nil, newTemplateRenderer(t, corpus), nil)

	result, err := orch.Emit(context.Background(), languages.LanguageJava, corpus, buildTable(corpus))
	require.NoError(t, err)

	spec, err := languages.NewDefaultRegistry().Get(languages.LanguageJava)
	require.NoError(t, err)
	codecDir := filepath.Join(config.OutputRoot, spec.OutputDir)
	customDir := filepath.Join(config.OutputRoot, spec.CustomOutputDir)

	assert.Equal(t, []string{
		filepath.Join(codecDir, "ClientAuthenticationCodec.java"),
		filepath.Join(codecDir, "ClientAddClusterViewListenerCodec.java"),
		filepath.Join(codecDir, "MapPutCodec.java"),
		filepath.Join(customDir, "AddressCodec.java"),
	}, result.Written)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.Ignored)

	put := readFile(t, filepath.Join(codecDir, "MapPutCodec.java"))
	assert.Contains(t, put, "containsSerializedData")
	assert.NotContains(t, put, artifacts.HashPlaceholder)

	auth := readFile(t, filepath.Join(codecDir, "ClientAuthenticationCodec.java"))
	assert.NotContains(t, auth, "containsSerializedData")
}

func TestEmit_IgnoredService(t *testing.T) {
	corpus := loadCorpus(t)
	config := testConfig(t)

	registry := languages.NewDefaultRegistry()
	spec, err := registry.Get(languages.LanguageJava)
	require.NoError(t, err)
	spec.IgnorePatterns = []string{"Map.*", "Client.authentication"}
	require.NoError(t, registry.Update(spec))

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	stub := &stubRenderer{}
	orch := NewOrchestrator(config, registry, stub, nil).WithMetrics(metrics)

	result, err := orch.Emit(context.Background(), languages.LanguageJava, corpus, buildTable(corpus))
	require.NoError(t, err)

	assert.Equal(t, []string{"Client.authentication", "Map.put"}, result.Ignored)
	assert.Len(t, result.Written, 2)
	assert.NotContains(t, stub.calls, "codec.java.tmpl:Map.put")
	assert.NoFileExists(t, filepath.Join(config.OutputRoot, spec.OutputDir, "MapPutCodec.java"))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.IgnoredEntries.WithLabelValues("java")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.ArtifactsWritten.WithLabelValues("java")))
}

func TestEmit_IgnoredWholeService(t *testing.T) {
	corpus := loadCorpus(t)
	registry := languages.NewDefaultRegistry()
	spec, err := registry.Get(languages.LanguagePython)
	require.NoError(t, err)
	spec.IgnorePatterns = []string{"Client"}
	require.NoError(t, registry.Update(spec))

	logger, hook := test.NewNullLogger()
	orch := NewOrchestrator(testConfig(t), registry, &stubRenderer{}, logger)
	result, err := orch.Emit(context.Background(), languages.LanguagePython, corpus, buildTable(corpus))
	require.NoError(t, err)
	assert.Equal(t, []string{"Client"}, result.Ignored)

	var notices []*logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Ignored" {
			notices = append(notices, entry)
		}
	}
	require.Len(t, notices, 1)
	assert.Equal(t, logrus.InfoLevel, notices[0].Level)
	assert.Equal(t, "Client", notices[0].Data["entry"])
}

func TestEmit_UnsupportedTypeSkips(t *testing.T) {
	corpus := loadCorpus(t)
	config := testConfig(t)
	logger, hook := test.NewNullLogger()

	stub := &stubRenderer{fail: map[string]error{
		"codec.py.tmpl:Client.authentication": render.ErrUnsupportedType,
	}}
	orch := NewOrchestrator(config, nil, stub, logger)

	result, err := orch.Emit(context.Background(), languages.LanguagePython, corpus, buildTable(corpus))
	require.NoError(t, err)

	require.Len(t, result.Skipped, 1)
	assert.True(t, strings.HasSuffix(result.Skipped[0], "client_authentication_codec.py"))
	assert.Len(t, result.Written, 3)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Message == "Artifact skipped" {
			warned = true
			assert.Equal(t, "py", entry.Data["language"])
		}
	}
	assert.True(t, warned)
}

func TestEmit_RenderErrorAborts(t *testing.T) {
	corpus := loadCorpus(t)
	boom := errors.New("boom")
	stub := &stubRenderer{fail: map[string]error{"codec.ts.tmpl:Client.addClusterViewListener": boom}}
	orch := NewOrchestrator(testConfig(t), nil, stub, nil)

	result, err := orch.Emit(context.Background(), languages.LanguageTypeScript, corpus, buildTable(corpus))
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, result)
	assert.Len(t, result.Written, 1)
}

func TestEmit_Aggregated(t *testing.T) {
	corpus := loadCorpus(t)
	config := testConfig(t)
	stub := &stubRenderer{fail: map[string]error{
		"codec.cpp.tmpl:Client.authentication": render.ErrUnsupportedType,
	}}
	orch := NewOrchestrator(config, nil, stub, nil)

	result, err := orch.Emit(context.Background(), languages.LanguageCPP, corpus, buildTable(corpus))
	require.NoError(t, err)

	spec, err := languages.NewDefaultRegistry().Get(languages.LanguageCPP)
	require.NoError(t, err)
	dir := filepath.Join(config.OutputRoot, spec.OutputDir)

	assert.Equal(t, []string{"Client.authentication"}, result.Skipped)
	assert.Equal(t, []string{
		filepath.Join(dir, "codecs.h"),
		filepath.Join(dir, "codecs.cpp"),
		filepath.Join(dir, "address_codec.h"),
		filepath.Join(dir, "address_codec.cpp"),
	}, result.Written)

	// The header got no part of the skipped method either
	assert.Equal(t, "header-includes.h.tmpl\n"+
		"codec.h.tmpl:Client.addClusterViewListener\n"+
		"codec.h.tmpl:Map.put\n"+
		"footer.tmpl\n", readFile(t, filepath.Join(dir, "codecs.h")))
	assert.Equal(t, "source-header.cpp.tmpl\n"+
		"codec.cpp.tmpl:Client.addClusterViewListener\n"+
		"codec.cpp.tmpl:Map.put\n"+
		"footer.tmpl\n", readFile(t, filepath.Join(dir, "codecs.cpp")))
}

func TestEmit_AggregatedTemplates(t *testing.T) {
	corpus := loadCorpus(t)
	config := testConfig(t)
	orch := NewOrchestrator(config, nil, newTemplateRenderer(t, corpus), nil)

	_, err := orch.Emit(context.Background(), languages.LanguageCPP, corpus, buildTable(corpus))
	require.NoError(t, err)

	spec, err := languages.NewDefaultRegistry().Get(languages.LanguageCPP)
	require.NoError(t, err)
	header := readFile(t, filepath.Join(config.OutputRoot, spec.OutputDir, "codecs.h"))
	assert.True(t, strings.HasPrefix(header, "/*"))
	assert.Contains(t, header, "#pragma once")
	assert.True(t, strings.HasSuffix(header, "}\n"))
}

func TestEmit_CustomTypeAdjust(t *testing.T) {
	corpus := definitions.NewCorpus(nil, []definitions.CustomTypesDocument{{
		CustomTypes: []definitions.CustomType{{
			Name:   "HazelcastJsonValue",
			Since:  "2.0",
			Params: []definitions.Parameter{{Name: "value", Type: "String", Since: "2.0"}},
		}},
	}})

	var seen definitions.CustomType
	orch := NewOrchestrator(testConfig(t), nil, renderFunc(func(language, name string, data any) (string, error) {
		seen = data.(*render.CustomTypeContext).Codec
		return "", nil
	}), nil)

	_, err := orch.Emit(context.Background(), languages.LanguageTypeScript, corpus, dataflow.Table{})
	require.NoError(t, err)
	assert.Equal(t, "toString()", seen.Params[0].Getter)
	assert.Empty(t, corpus.CustomTypes[0].CustomTypes[0].Params[0].Getter)
}

type renderFunc func(language, name string, data any) (string, error)

func (f renderFunc) Render(language, name string, data any) (string, error) {
	return f(language, name, data)
}

func TestEmit_Documentation(t *testing.T) {
	corpus := loadCorpus(t)
	config := testConfig(t)
	config.InternalServices = []string{"Map"}
	orch := NewOrchestrator(config, nil, &stubRenderer{}, nil)

	result, err := orch.Emit(context.Background(), languages.LanguageMarkdown, corpus, buildTable(corpus))
	require.NoError(t, err)

	path := filepath.Join(config.OutputRoot, "documentation", DocumentationFile)
	assert.Equal(t, []string{path}, result.Written)

	content := readFile(t, path)
	assert.Contains(t, content, "# "+config.DocumentationTitle)
	assert.Contains(t, content, "#### Client.authentication")
	assert.NotContains(t, content, "Map.put")
	assert.NotContains(t, content, "\r\n")
}

func TestEmit_LanguageErrors(t *testing.T) {
	corpus := loadCorpus(t)
	registry := languages.NewDefaultRegistry()
	spec, err := registry.Get(languages.LanguageCSharp)
	require.NoError(t, err)
	spec.Enabled = false
	require.NoError(t, registry.Update(spec))

	orch := NewOrchestrator(testConfig(t), registry, &stubRenderer{}, nil)

	_, err = orch.Emit(context.Background(), "go", corpus, nil)
	assert.ErrorIs(t, err, ErrLanguageNotSupported)

	_, err = orch.Emit(context.Background(), languages.LanguageCSharp, corpus, nil)
	assert.ErrorIs(t, err, ErrLanguageDisabled)

	_, err = orch.EmitAll(context.Background(), nil, corpus, nil)
	assert.ErrorIs(t, err, ErrNoLanguages)

	results, err := orch.EmitAll(context.Background(), []string{"java", "go"}, corpus, nil)
	assert.ErrorIs(t, err, ErrLanguageNotSupported)
	assert.Empty(t, results)
}

func TestEmit_Cancelled(t *testing.T) {
	corpus := loadCorpus(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	orch := NewOrchestrator(testConfig(t), nil, &stubRenderer{}, nil)
	result, err := orch.Emit(ctx, languages.LanguageJava, corpus, buildTable(corpus))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Written)
}

func TestEmitAll_Sequential(t *testing.T) {
	corpus := loadCorpus(t)
	stub := &stubRenderer{}
	orch := NewOrchestrator(testConfig(t), nil, stub, nil)

	results, err := orch.EmitAll(context.Background(), []string{"py", "ts", "md"}, corpus, buildTable(corpus))
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "py", results[0].Language)
	assert.Equal(t, "ts", results[1].Language)
	assert.Equal(t, "md", results[2].Language)

	// Every python render happens before the first typescript one
	lastPy, firstTS := -1, len(stub.calls)
	for i, call := range stub.calls {
		if strings.Contains(call, ".py.tmpl") {
			lastPy = i
		}
		if strings.Contains(call, ".ts.tmpl") && i < firstTS {
			firstTS = i
		}
	}
	assert.Less(t, lastPy, firstTS)
}
