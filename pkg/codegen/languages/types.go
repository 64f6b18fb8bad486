package languages

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/platinummonkey/codecgen/pkg/codegen/render"
	"github.com/platinummonkey/codecgen/pkg/definitions"
)

// NamingStyle selects how artifact file names are built from service, method or
// custom type names
type NamingStyle int

const (
	// NamingCapitalized concatenates capitalized names: MapPutCodec.java
	NamingCapitalized NamingStyle = iota
	// NamingSnake joins snake cased names: map_put_codec.py
	NamingSnake
	// NamingLower lower-cases a single name: simpleentryview_codec.h
	NamingLower
)

// LanguageSpec is the capability record of a target language
type LanguageSpec struct {
	// Identification
	ID   string `json:"id" yaml:"id" toml:"id"`       // "java", "cpp"
	Name string `json:"name" yaml:"name" toml:"name"` // "Java", "C++"

	// Extension of method codec artifacts, without the dot
	Extension string      `json:"extension" yaml:"extension" toml:"extension"`
	Naming    NamingStyle `json:"naming" yaml:"naming" toml:"naming"`

	// IgnorePatterns are globs matched against "Service" and "Service.Method"
	IgnorePatterns []string `json:"ignore_patterns" yaml:"ignore_patterns" toml:"ignore_patterns"`

	// Output directories, relative to the output root
	OutputDir       string `json:"output_dir" yaml:"output_dir" toml:"output_dir"`
	CustomOutputDir string `json:"custom_output_dir" yaml:"custom_output_dir" toml:"custom_output_dir"`

	// MethodTemplate renders one artifact per method
	MethodTemplate string `json:"method_template" yaml:"method_template" toml:"method_template"`
	// Aggregation, when set, appends every method to shared files instead
	Aggregation *Aggregation `json:"aggregation,omitempty" yaml:"aggregation,omitempty" toml:"aggregation,omitempty"`
	// CustomTemplates render the artifacts of one custom type
	CustomTemplates []CustomTemplate `json:"custom_templates" yaml:"custom_templates" toml:"custom_templates"`
	CustomNaming    NamingStyle      `json:"custom_naming" yaml:"custom_naming" toml:"custom_naming"`

	// CustomTypeAdjust rewrites a custom type before its codec is rendered
	CustomTypeAdjust func(definitions.CustomType) definitions.CustomType `json:"-" yaml:"-" toml:"-"`

	// Documentation marks the language that emits the Markdown documentation
	// instead of codecs
	Documentation bool `json:"documentation" yaml:"documentation" toml:"documentation"`

	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
}

// Aggregation describes languages whose method codecs share files
type Aggregation struct {
	Files []AggregateFile `json:"files" yaml:"files" toml:"files"`
	// Footer is rendered once and appended to every file at the end
	Footer string `json:"footer" yaml:"footer" toml:"footer"`
}

// AggregateFile is one shared file: seeded once, then appended per method
type AggregateFile struct {
	Name           string `json:"name" yaml:"name" toml:"name"`
	Seed           string `json:"seed" yaml:"seed" toml:"seed"`
	MethodTemplate string `json:"method_template" yaml:"method_template" toml:"method_template"`
}

// CustomTemplate renders one custom type artifact with its own extension
type CustomTemplate struct {
	Template  string `json:"template" yaml:"template" toml:"template"`
	Extension string `json:"extension" yaml:"extension" toml:"extension"`
}

// Validate checks if the language spec is valid
func (ls *LanguageSpec) Validate() error {
	if ls.ID == "" {
		return ErrInvalidLanguageID
	}
	if ls.Name == "" {
		return ErrInvalidLanguageName
	}
	if ls.Documentation {
		return nil
	}
	if ls.Extension == "" {
		return ErrInvalidExtension
	}
	if ls.MethodTemplate == "" && (ls.Aggregation == nil || len(ls.Aggregation.Files) == 0) {
		return ErrMissingTemplate
	}
	for _, pattern := range ls.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %q", ErrInvalidIgnorePattern, pattern)
		}
	}
	return nil
}

// IsIgnored reports whether a "Service" or "Service.Method" name matches an
// ignore pattern
func (ls *LanguageSpec) IsIgnored(name string) bool {
	for _, pattern := range ls.IgnorePatterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// ArtifactName returns the method codec file name of a service method
func (ls *LanguageSpec) ArtifactName(service, method string) string {
	return FileName(ls.Naming, ls.Extension, service, method)
}

// CustomArtifactName returns the file name of a custom type codec
func (ls *LanguageSpec) CustomArtifactName(typeName, extension string) string {
	return FileName(ls.CustomNaming, extension, typeName)
}

// FileName builds a codec file name in a naming style
func FileName(style NamingStyle, extension string, names ...string) string {
	switch style {
	case NamingSnake:
		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = strings.ToLower(render.ToUpperSnakeCase(name))
		}
		return fmt.Sprintf("%s_codec.%s", strings.Join(parts, "_"), extension)
	case NamingLower:
		return fmt.Sprintf("%s_codec.%s", strings.ToLower(strings.Join(names, "")), extension)
	default:
		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = render.Capital(name)
		}
		return fmt.Sprintf("%sCodec.%s", strings.Join(parts, ""), extension)
	}
}

// Common language IDs
const (
	LanguageJava       = "java"
	LanguageCPP        = "cpp"
	LanguageCSharp     = "cs"
	LanguagePython     = "py"
	LanguageTypeScript = "ts"
	LanguageMarkdown   = "md"
)

var namingStyleNames = []string{"capitalized", "snake", "lower"}

func (s NamingStyle) String() string {
	if int(s) < len(namingStyleNames) {
		return namingStyleNames[s]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (s NamingStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for policy files
func (s *NamingStyle) UnmarshalText(text []byte) error {
	for i, name := range namingStyleNames {
		if strings.EqualFold(string(text), name) {
			*s = NamingStyle(i)
			return nil
		}
	}
	return fmt.Errorf("unknown naming style %q", text)
}
