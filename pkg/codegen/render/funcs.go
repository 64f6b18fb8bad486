package render

import (
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/platinummonkey/codecgen/pkg/definitions"
	"github.com/platinummonkey/codecgen/pkg/version"
)

// Capital upper-cases the first letter of s
func Capital(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ToUpperSnakeCase converts a camel case identifier to UPPER_SNAKE_CASE.
// An underscore goes before an upper case letter that follows a lower case letter
// or digit, or that starts a new word after an acronym: getUUIDList becomes
// GET_UUID_LIST.
func ToUpperSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// FilterNewParams returns the parameters introduced at or before a version.
// Parameters with an unparsable since are dropped.
func FilterNewParams(params []definitions.Parameter, at string) []definitions.Parameter {
	limit, err := version.Parse(at)
	if err != nil {
		return nil
	}
	out := make([]definitions.Parameter, 0, len(params))
	for _, p := range params {
		since, err := version.Parse(p.Since)
		if err != nil {
			continue
		}
		if !limit.Less(since) {
			out = append(out, p)
		}
	}
	return out
}

// funcMap returns the helpers of a language
func (r *TemplateRenderer) funcMap(resolver *typeResolver) template.FuncMap {
	year := strconv.Itoa(r.now.Year())
	return template.FuncMap{
		"capital":                        Capital,
		"toUpperSnakeCase":               ToUpperSnakeCase,
		"fixedParams":                    definitions.FixedParams,
		"varSizeParams":                  definitions.VarSizeParams,
		"newParams":                      definitions.NewParams,
		"filterNewParams":                FilterNewParams,
		"isVarSizedList":                 definitions.IsVarSizedList,
		"isVarSizedListContainsNullable": definitions.IsVarSizedListContainsNullable,
		"isVarSizedMap":                  definitions.IsVarSizedMap,
		"isVarSizedEntryList":            definitions.IsVarSizedEntryList,
		"isFixedSize":                    definitions.IsFixedSize,
		"namespace":                      func() string { return r.options.Namespace },
		"copyrightYear":                  func() string { return year },
		"protocolCommit":                 func() string { return r.options.ProtocolCommit },

		"langType":      resolver.langType,
		"langName":      LangName,
		"itemType":      itemType,
		"keyType":       keyType,
		"valueType":     valueType,
		"paramName":     resolver.paramName,
		"escapeKeyword": resolver.escapeKeyword,
	}
}
