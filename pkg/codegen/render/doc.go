// Package render turns enriched definitions into artifact content with
// text/template.
//
// Templates live per language under templates/<language>/ and are embedded in
// the binary. A template directory on disk can replace them. Parsed templates are
// cached in a bounded LRU keyed by language and template name.
//
// Every template sees the shared helpers (capital, toUpperSnakeCase, fixedParams,
// varSizeParams, newParams, filterNewParams, isVarSizedList,
// isVarSizedListContainsNullable, isVarSizedMap, isVarSizedEntryList, namespace,
// copyrightYear, protocolCommit) plus the helpers of its language (langType,
// langName, itemType, keyType, valueType, paramName, escapeKeyword). langType
// fails with ErrUnsupportedType for a type the language cannot express, and
// Render returns that error unchanged for errors.Is.
package render
