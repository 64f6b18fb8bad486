package render

import (
	"time"

	"github.com/platinummonkey/codecgen/pkg/definitions"
	"github.com/platinummonkey/codecgen/pkg/messageid"
)

// Renderer produces the content of one artifact from a named template
type Renderer interface {
	Render(language, name string, data any) (string, error)
}

// MethodContext is the data of a method codec template
type MethodContext struct {
	ServiceName string
	Method      messageid.EnrichedMethod
	// PayloadInRequest is set when a request parameter carries serialized data
	PayloadInRequest bool
}

// CustomTypeContext is the data of a custom type codec template
type CustomTypeContext struct {
	Codec definitions.CustomType
}

// Options configures a TemplateRenderer
type Options struct {
	// TemplateDir replaces the embedded templates when set. It holds one
	// subdirectory per language.
	TemplateDir string
	// Namespace is exposed to templates through the namespace helper
	Namespace string
	// ProtocolCommit is exposed through protocolCommit
	ProtocolCommit string
	// Now sets copyrightYear. Zero uses the current time.
	Now time.Time
	// CustomTypes are the type names langType resolves to generated custom codecs
	CustomTypes map[string]definitions.CustomType
	// CacheSize bounds the parsed template cache
	CacheSize int
}

// DefaultOptions returns renderer options using the embedded templates
func DefaultOptions() *Options {
	return &Options{
		ProtocolCommit: "unknown",
		CacheSize:      64,
	}
}
