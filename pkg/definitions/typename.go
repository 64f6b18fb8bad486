package definitions

import "strings"

// Type name prefixes for composite types
const (
	PrefixList      = "List_"
	PrefixListCN    = "ListCN_"
	PrefixSet       = "Set_"
	PrefixMap       = "Map_"
	PrefixEntryList = "EntryList_"
)

// Kind classifies a type name by its composite shape
type Kind int

const (
	// KindPlain is a primitive or a custom type reference
	KindPlain Kind = iota
	// KindList is a list, nullable-item list or set of one item type
	KindList
	// KindMap is a map or entry list of a key and a value type
	KindMap
)

func (k Kind) String() string {
	return []string{"plain", "list", "map"}[k]
}

// KindOf returns the composite shape of a type name
func KindOf(typeName string) Kind {
	switch {
	case strings.HasPrefix(typeName, PrefixList),
		strings.HasPrefix(typeName, PrefixListCN),
		strings.HasPrefix(typeName, PrefixSet):
		return KindList
	case strings.HasPrefix(typeName, PrefixMap),
		strings.HasPrefix(typeName, PrefixEntryList):
		if len(strings.SplitN(typeName, "_", 3)) == 3 {
			return KindMap
		}
	}
	return KindPlain
}

// ItemType unwraps one level of a list, nullable-item list or set type name.
// Returns "" for other kinds.
func ItemType(typeName string) string {
	if KindOf(typeName) != KindList {
		return ""
	}
	return strings.SplitN(typeName, "_", 2)[1]
}

// KeyType returns the key of a map or entry list type name, "" otherwise
func KeyType(typeName string) string {
	if KindOf(typeName) != KindMap {
		return ""
	}
	return strings.SplitN(typeName, "_", 3)[1]
}

// ValueType returns the value of a map or entry list type name, "" otherwise
func ValueType(typeName string) string {
	if KindOf(typeName) != KindMap {
		return ""
	}
	return strings.SplitN(typeName, "_", 3)[2]
}

// Fixed-size types are encoded inline in the initial frame of a message
var (
	FixedSizeTypes = map[string]bool{
		"boolean": true,
		"byte":    true,
		"short":   true,
		"int":     true,
		"long":    true,
		"float":   true,
		"double":  true,
		"char":    true,
		"UUID":    true,
	}

	FixedSizeListTypes = map[string]bool{
		"List_Integer": true,
		"List_Long":    true,
		"List_UUID":    true,
		"List_Boolean": true,
	}

	FixedSizeMapTypes = map[string]bool{
		"Map_Integer_Long":    true,
		"Map_Integer_Integer": true,
		"Map_UUID_Long":       true,
	}

	FixedSizeEntryListTypes = map[string]bool{
		"EntryList_Integer_UUID":    true,
		"EntryList_Integer_Long":    true,
		"EntryList_Integer_Integer": true,
		"EntryList_UUID_Long":       true,
		"EntryList_UUID_UUID":       true,
	}
)

// IsFixedSize reports whether a parameter type is encoded in the initial frame
func IsFixedSize(typeName string) bool {
	return FixedSizeTypes[typeName]
}

// IsVarSizedList reports a List_ type whose items are not fixed size
func IsVarSizedList(typeName string) bool {
	return strings.HasPrefix(typeName, PrefixList) && !FixedSizeListTypes[typeName]
}

// IsVarSizedListContainsNullable reports a ListCN_ type whose items are not fixed size
func IsVarSizedListContainsNullable(typeName string) bool {
	return strings.HasPrefix(typeName, PrefixListCN) && !FixedSizeListTypes[typeName]
}

// IsVarSizedMap reports a Map_ type whose entries are not fixed size
func IsVarSizedMap(typeName string) bool {
	return strings.HasPrefix(typeName, PrefixMap) && !FixedSizeMapTypes[typeName]
}

// IsVarSizedEntryList reports an EntryList_ type whose entries are not fixed size
func IsVarSizedEntryList(typeName string) bool {
	return strings.HasPrefix(typeName, PrefixEntryList) && !FixedSizeEntryListTypes[typeName]
}

// FixedParams returns the parameters with fixed-size types, in order
func FixedParams(params []Parameter) []Parameter {
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		if IsFixedSize(p.Type) {
			out = append(out, p)
		}
	}
	return out
}

// VarSizeParams returns the parameters with variable-size types, in order
func VarSizeParams(params []Parameter) []Parameter {
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		if !IsFixedSize(p.Type) {
			out = append(out, p)
		}
	}
	return out
}

// NewParams returns the parameters added after the owner was introduced. Params
// never precede their owner, so a since mismatch is enough.
func NewParams(since string, params []Parameter) []Parameter {
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		if p.Since != since {
			out = append(out, p)
		}
	}
	return out
}
