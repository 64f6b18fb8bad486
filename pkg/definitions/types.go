package definitions

// Service is one protocol service document
type Service struct {
	ID          int          `yaml:"id"`
	Name        string       `yaml:"name"`
	Methods     []Method     `yaml:"methods"`
	CustomTypes []CustomType `yaml:"customTypes,omitempty"`

	// Source is the file the service was loaded from
	Source string `yaml:"-"`
	// Raw is the decoded document as plain maps and slices, used for schema validation
	Raw any `yaml:"-"`
}

// Method is a request/response pair with optional events
type Method struct {
	ID       int      `yaml:"id"`
	Name     string   `yaml:"name"`
	Since    string   `yaml:"since"`
	Doc      string   `yaml:"doc,omitempty"`
	Request  Request  `yaml:"request"`
	Response Response `yaml:"response"`
	Events   []Event  `yaml:"events,omitempty"`
}

// Request is the client-to-server message of a method
type Request struct {
	Retryable           bool        `yaml:"retryable,omitempty"`
	PartitionIdentifier string      `yaml:"partitionIdentifier,omitempty"`
	Params              []Parameter `yaml:"params,omitempty"`
}

// Response is the server-to-client reply of a method
type Response struct {
	Params []Parameter `yaml:"params,omitempty"`
}

// Event is a server-pushed message declared under a method
type Event struct {
	ID     int         `yaml:"id,omitempty"`
	Name   string      `yaml:"name"`
	Since  string      `yaml:"since"`
	Doc    string      `yaml:"doc,omitempty"`
	Params []Parameter `yaml:"params,omitempty"`
}

// Parameter is a single named, typed field of a message or custom type
type Parameter struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable,omitempty"`
	Since    string `yaml:"since"`
	Doc      string `yaml:"doc,omitempty"`

	// Getter overrides the accessor used to read the field from a host
	// language object. Only set by per-language custom type adjustments.
	Getter string `yaml:"-"`
}

// CustomType is a named composite type referenced by name from parameter types
type CustomType struct {
	Name   string      `yaml:"name"`
	Since  string      `yaml:"since"`
	Doc    string      `yaml:"doc,omitempty"`
	Params []Parameter `yaml:"params,omitempty"`
}

// CustomTypesDocument is the standalone document declaring shared custom types
type CustomTypesDocument struct {
	Name        string       `yaml:"name,omitempty"`
	CustomTypes []CustomType `yaml:"customTypes"`

	Source string `yaml:"-"`
	Raw    any    `yaml:"-"`
}

// Corpus is everything loaded for one compiler invocation
type Corpus struct {
	Services    []Service
	CustomTypes []CustomTypesDocument
}

// NewCorpus bundles loaded services and custom type documents
func NewCorpus(services []Service, customTypes []CustomTypesDocument) *Corpus {
	return &Corpus{
		Services:    services,
		CustomTypes: customTypes,
	}
}

// AllCustomTypes returns the custom types of every custom types document followed by
// the custom types declared inline in services, in load order
func (c *Corpus) AllCustomTypes() []CustomType {
	var all []CustomType
	for _, doc := range c.CustomTypes {
		all = append(all, doc.CustomTypes...)
	}
	for _, svc := range c.Services {
		all = append(all, svc.CustomTypes...)
	}
	return all
}

// CustomTypeIndex indexes every custom type by name. A later declaration of the
// same name replaces an earlier one.
func (c *Corpus) CustomTypeIndex() map[string]CustomType {
	all := c.AllCustomTypes()
	index := make(map[string]CustomType, len(all))
	for _, ct := range all {
		index[ct.Name] = ct
	}
	return index
}

// QualifiedName returns the "Service.Method" form used by ignore lists
func QualifiedName(service, method string) string {
	return service + "." + method
}
