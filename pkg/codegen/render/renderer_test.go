package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platinummonkey/codecgen/pkg/definitions"
	"github.com/platinummonkey/codecgen/pkg/messageid"
)

func putContext(t *testing.T) *MethodContext {
	t.Helper()
	svc := definitions.Service{ID: 1, Name: "Map"}
	method := definitions.Method{
		ID:    1,
		Name:  "put",
		Since: "2.0",
		Doc:   "Puts an entry into this map.",
		Request: definitions.Request{
			Retryable: false,
			Params: []definitions.Parameter{
				{Name: "name", Type: "String", Since: "2.0"},
				{Name: "key", Type: "Data", Since: "2.0"},
				{Name: "threadId", Type: "long", Since: "2.0"},
			},
		},
		Events: []definitions.Event{{Name: "EntryEvent", Since: "2.0"}},
	}
	enriched, err := messageid.Assign(svc, method)
	require.NoError(t, err)
	return &MethodContext{ServiceName: "Map", Method: enriched, PayloadInRequest: true}
}

func newRenderer(t *testing.T, custom ...definitions.CustomType) *TemplateRenderer {
	t.Helper()
	index := make(map[string]definitions.CustomType)
	for _, ct := range custom {
		index[ct.Name] = ct
	}
	r, err := NewTemplateRenderer(&Options{
		Namespace:      "com.hazelcast.client.impl.protocol.codec",
		ProtocolCommit: "abc1234",
		Now:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CustomTypes:    index,
	})
	require.NoError(t, err)
	return r
}

func TestRender_JavaCodec(t *testing.T) {
	r := newRenderer(t)

	out, err := r.Render("java", "codec.java.tmpl", putContext(t))
	require.NoError(t, err)

	assert.Contains(t, out, "public final class MapPutCodec")
	assert.Contains(t, out, "REQUEST_MESSAGE_TYPE = 65792;")
	assert.Contains(t, out, "//hex: 0x010100")
	assert.Contains(t, out, "//hex: 0x010102")
	assert.Contains(t, out, "EVENT_ENTRY_EVENT_MESSAGE_TYPE")
	assert.Contains(t, out, "encodeRequest(java.lang.String name, com.hazelcast.internal.serialization.Data key, long threadId)")
	assert.Contains(t, out, "containsSerializedData")
	assert.Contains(t, out, `@Generated("!codec_hash!")`)
	assert.Contains(t, out, "2008-2024")
	assert.Contains(t, out, "package com.hazelcast.client.impl.protocol.codec;")
}

func TestRender_AllLanguages(t *testing.T) {
	r := newRenderer(t)
	ctx := putContext(t)

	templates := map[string][]string{
		"java": {"codec.java.tmpl"},
		"cs":   {"codec.cs.tmpl"},
		"py":   {"codec.py.tmpl"},
		"ts":   {"codec.ts.tmpl"},
		"cpp":  {"codec.h.tmpl", "codec.cpp.tmpl"},
	}

	for lang, names := range templates {
		for _, name := range names {
			t.Run(lang+"/"+name, func(t *testing.T) {
				out, err := r.Render(lang, name, ctx)
				require.NoError(t, err)
				assert.NotEmpty(t, out)
			})
		}
	}
}

func TestRender_UnsupportedType(t *testing.T) {
	r := newRenderer(t)
	ctx := putContext(t)
	ctx.Method.Request.Params = append(ctx.Method.Request.Params,
		definitions.Parameter{Name: "ch", Type: "char", Since: "2.0"})

	_, err := r.Render("py", "codec.py.tmpl", ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = r.Render("java", "codec.java.tmpl", ctx)
	assert.NoError(t, err, "java maps char")
}

func TestRender_CustomType(t *testing.T) {
	address := definitions.CustomType{
		Name:  "Address",
		Since: "2.0",
		Params: []definitions.Parameter{
			{Name: "host", Type: "String", Since: "2.0"},
			{Name: "port", Type: "int", Since: "2.0"},
		},
	}
	r := newRenderer(t, address)

	out, err := r.Render("java", "custom-codec.java.tmpl", &CustomTypeContext{Codec: address})
	require.NoError(t, err)
	assert.Contains(t, out, "public final class AddressCodec")
	assert.Contains(t, out, "// port: int since 2.0")

	ctx := putContext(t)
	ctx.Method.Request.Params = []definitions.Parameter{{Name: "addresses", Type: "List_Address", Since: "2.0"}}
	out, err = r.Render("java", "codec.java.tmpl", ctx)
	require.NoError(t, err)
	assert.Contains(t, out, "java.util.List<Address> addresses")
}

func TestRender_TemplateErrors(t *testing.T) {
	r := newRenderer(t)

	_, err := r.Render("java", "missing.tmpl", nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = r.Render("go", "codec.go.tmpl", nil)
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestRender_Cache(t *testing.T) {
	r := newRenderer(t)
	ctx := putContext(t)

	for i := 0; i < 3; i++ {
		_, err := r.Render("java", "codec.java.tmpl", ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, r.Cached())

	_, err := r.Render("ts", "codec.ts.tmpl", ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Cached())
}

func TestRender_TemplateDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "java"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "java", "codec.java.tmpl"),
		[]byte(`{{ .ServiceName }}{{ capital .Method.Name }} {{ toUpperSnakeCase "getUUIDList" }}`), 0644))

	r, err := NewTemplateRenderer(&Options{TemplateDir: dir})
	require.NoError(t, err)

	out, err := r.Render("java", "codec.java.tmpl", putContext(t))
	require.NoError(t, err)
	assert.Equal(t, "MapPut GET_UUID_LIST", out)

	_, err = NewTemplateRenderer(&Options{TemplateDir: filepath.Join(dir, "nope")})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestLangType(t *testing.T) {
	tests := []struct {
		lang     string
		typeName string
		want     string
	}{
		{"java", "List_Long", "java.util.List<java.lang.Long>"},
		{"java", "List_long", "java.util.List<java.lang.Long>"},
		{"java", "EntryList_UUID_Long", "java.util.List<java.util.Map.Entry<java.util.UUID, java.lang.Long>>"},
		{"cs", "Map_String_Data", "IDictionary<string, IData>"},
		{"cpp", "ListCN_Data", "std::vector<boost::optional<serialization::pimpl::data>>"},
		{"py", "Map_String_List_Data", "typing.Dict[str, typing.List[Data]]"},
		{"ts", "List_String", "string[]"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.typeName, func(t *testing.T) {
			resolver := &typeResolver{ts: typeSystems[tt.lang]}
			got, err := resolver.langType(tt.typeName)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	resolver := &typeResolver{ts: typeSystems["ts"]}
	_, err := resolver.langType("List_Unknown")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "ADD_CLUSTER_VIEW_LISTENER", ToUpperSnakeCase("addClusterViewListener"))
	assert.Equal(t, "GET_UUID", ToUpperSnakeCase("getUUID"))
	assert.Equal(t, "UUID_LIST", ToUpperSnakeCase("UUIDList"))
	assert.Equal(t, "MAP2_PUT", ToUpperSnakeCase("map2Put"))

	assert.Equal(t, "ListData", LangName("List_Data"))
	assert.Equal(t, "EntryListUUIDLong", LangName("EntryList_UUID_Long"))
	assert.Equal(t, "Put", Capital("put"))

	py := &typeResolver{ts: typeSystems["py"]}
	assert.Equal(t, "thread_id", py.paramName("threadId"))
	assert.Equal(t, "from_", py.paramName("from"))

	cs := &typeResolver{ts: typeSystems["cs"]}
	assert.Equal(t, "@event", cs.paramName("event"))
	assert.Equal(t, "threadId", cs.paramName("ThreadId"))
}

func TestFilterNewParams(t *testing.T) {
	params := []definitions.Parameter{
		{Name: "a", Since: "2.0"},
		{Name: "b", Since: "2.1"},
		{Name: "c", Since: "2.2"},
		{Name: "d", Since: "bad"},
	}

	got := FilterNewParams(params, "2.1")
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].Name)

	assert.Nil(t, FilterNewParams(params, "bad"))
}
