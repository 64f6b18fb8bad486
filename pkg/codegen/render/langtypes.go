package render

import (
	"fmt"
	"strings"

	"github.com/platinummonkey/codecgen/pkg/definitions"
)

// typeSystem describes how one language spells protocol types and identifiers
type typeSystem struct {
	primitives map[string]string
	// boxed overrides primitives inside generic containers
	boxed map[string]string

	list      string
	listCN    string
	set       string
	mapping   string
	entryList string

	paramName func(string) string
	keywords  map[string]bool
	escape    func(string) string
}

func keywordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func lowerFirst(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func snakeCase(name string) string {
	return strings.ToLower(ToUpperSnakeCase(name))
}

func suffixUnderscore(name string) string { return name + "_" }

var typeSystems = map[string]*typeSystem{
	"java": {
		primitives: map[string]string{
			"boolean": "boolean", "byte": "byte", "short": "short", "int": "int", "long": "long",
			"float": "float", "double": "double", "char": "char",
			"Integer": "java.lang.Integer", "Long": "java.lang.Long", "Boolean": "java.lang.Boolean",
			"UUID":   "java.util.UUID",
			"String": "java.lang.String",
			"Data":   "com.hazelcast.internal.serialization.Data",
		},
		boxed: map[string]string{
			"boolean": "java.lang.Boolean", "byte": "java.lang.Byte", "short": "java.lang.Short",
			"int": "java.lang.Integer", "long": "java.lang.Long", "float": "java.lang.Float",
			"double": "java.lang.Double", "char": "java.lang.Character",
		},
		list:      "java.util.List<%s>",
		listCN:    "java.util.List<%s>",
		set:       "java.util.Set<%s>",
		mapping:   "java.util.Map<%s, %s>",
		entryList: "java.util.List<java.util.Map.Entry<%s, %s>>",
		paramName: lowerFirst,
		escape:    func(name string) string { return name },
	},
	"cs": {
		primitives: map[string]string{
			"boolean": "bool", "byte": "byte", "short": "short", "int": "int", "long": "long",
			"float": "float", "double": "double", "char": "char",
			"Integer": "int", "Long": "long", "Boolean": "bool",
			"UUID":   "Guid",
			"String": "string",
			"Data":   "IData",
		},
		list:      "IList<%s>",
		listCN:    "IList<%s>",
		set:       "ISet<%s>",
		mapping:   "IDictionary<%s, %s>",
		entryList: "IList<KeyValuePair<%s, %s>>",
		paramName: lowerFirst,
		keywords:  keywordSet("object", "string", "event", "namespace", "params", "base", "operator", "checked", "lock", "fixed"),
		escape:    func(name string) string { return "@" + name },
	},
	"cpp": {
		primitives: map[string]string{
			"boolean": "bool", "byte": "byte", "short": "int16_t", "int": "int32_t", "long": "int64_t",
			"float": "float", "double": "double", "char": "char",
			"Integer": "int32_t", "Long": "int64_t", "Boolean": "bool",
			"UUID":   "boost::uuids::uuid",
			"String": "std::string",
			"Data":   "serialization::pimpl::data",
		},
		list:      "std::vector<%s>",
		listCN:    "std::vector<boost::optional<%s>>",
		set:       "std::unordered_set<%s>",
		mapping:   "std::unordered_map<%s, %s>",
		entryList: "std::vector<std::pair<%s, %s>>",
		paramName: snakeCase,
		keywords:  keywordSet("delete", "new", "default", "register", "union", "namespace"),
		escape:    suffixUnderscore,
	},
	"py": {
		primitives: map[string]string{
			"boolean": "bool", "byte": "int", "short": "int", "int": "int", "long": "int",
			"float": "float", "double": "float",
			"Integer": "int", "Long": "int", "Boolean": "bool",
			"UUID":   "uuid.UUID",
			"String": "str",
			"Data":   "Data",
		},
		list:      "typing.List[%s]",
		listCN:    "typing.List[typing.Optional[%s]]",
		set:       "typing.Set[%s]",
		mapping:   "typing.Dict[%s, %s]",
		entryList: "typing.List[typing.Tuple[%s, %s]]",
		paramName: snakeCase,
		keywords:  keywordSet("from", "lambda", "type", "id", "class", "async", "global", "is", "in", "not", "and", "or", "def", "list", "object"),
		escape:    suffixUnderscore,
	},
	"ts": {
		primitives: map[string]string{
			"boolean": "boolean", "byte": "number", "short": "number", "int": "number", "long": "Long",
			"float": "number", "double": "number",
			"Integer": "number", "Long": "Long", "Boolean": "boolean",
			"UUID":   "UUID",
			"String": "string",
			"Data":   "Data",
		},
		list:      "%s[]",
		listCN:    "Array<%s | null>",
		set:       "Set<%s>",
		mapping:   "Map<%s, %s>",
		entryList: "Array<[%s, %s]>",
		paramName: lowerFirst,
		keywords:  keywordSet("function", "delete", "default", "var", "new", "in", "typeof", "arguments", "package"),
		escape:    suffixUnderscore,
	},
}

// typeResolver binds a language's type system to the custom types of a run
type typeResolver struct {
	ts          *typeSystem
	customTypes map[string]definitions.CustomType
}

// langType returns the native spelling of a protocol type
func (r *typeResolver) langType(typeName string) (string, error) {
	return r.resolve(typeName, false)
}

func (r *typeResolver) resolve(typeName string, boxed bool) (string, error) {
	if boxed {
		if t, ok := r.ts.boxed[typeName]; ok {
			return t, nil
		}
	}
	if t, ok := r.ts.primitives[typeName]; ok {
		return t, nil
	}
	if _, ok := r.customTypes[typeName]; ok {
		return typeName, nil
	}

	switch definitions.KindOf(typeName) {
	case definitions.KindList:
		item, err := r.resolve(definitions.ItemType(typeName), true)
		if err != nil {
			return "", err
		}
		pattern := r.ts.list
		switch {
		case strings.HasPrefix(typeName, definitions.PrefixListCN):
			pattern = r.ts.listCN
		case strings.HasPrefix(typeName, definitions.PrefixSet):
			pattern = r.ts.set
		}
		return fmt.Sprintf(pattern, item), nil
	case definitions.KindMap:
		key, err := r.resolve(definitions.KeyType(typeName), true)
		if err != nil {
			return "", err
		}
		value, err := r.resolve(definitions.ValueType(typeName), true)
		if err != nil {
			return "", err
		}
		pattern := r.ts.mapping
		if strings.HasPrefix(typeName, definitions.PrefixEntryList) {
			pattern = r.ts.entryList
		}
		return fmt.Sprintf(pattern, key, value), nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, typeName)
}

func (r *typeResolver) paramName(name string) string {
	return r.escapeKeyword(r.ts.paramName(name))
}

func (r *typeResolver) escapeKeyword(name string) string {
	if r.ts.keywords[name] {
		return r.ts.escape(name)
	}
	return name
}

// LangName joins the parts of a type name into one identifier, as used for
// codec class names: List_Data becomes ListData
func LangName(typeName string) string {
	replacer := strings.NewReplacer("(", "", ")", "")
	parts := strings.Split(replacer.Replace(typeName), "_")
	for i, part := range parts {
		parts[i] = Capital(part)
	}
	return strings.Join(parts, "")
}

func itemType(typeName string) string {
	if item := definitions.ItemType(typeName); item != "" {
		return LangName(item)
	}
	return ""
}

func keyType(typeName string) string {
	if key := definitions.KeyType(typeName); key != "" {
		return LangName(key)
	}
	return ""
}

func valueType(typeName string) string {
	if value := definitions.ValueType(typeName); value != "" {
		return LangName(value)
	}
	return ""
}
