package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var builtinSchemas embed.FS

const (
	serviceSchemaFile     = "schemas/service-schema.json"
	customTypesSchemaFile = "schemas/custom-types-schema.json"
)

// Schema is a compiled JSON Schema for one kind of definition document
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// SchemaError is one structural violation found in a document
type SchemaError struct {
	// Pointer is the JSON pointer of the offending value, "" for the root
	Pointer string
	Message string
}

// NewSchema compiles a JSON Schema document
func NewSchema(name string, data []byte) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	url := "mem://" + name
	if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSchema, name, err)
	}

	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSchema, name, err)
	}

	return &Schema{name: name, compiled: compiled}, nil
}

// LoadSchema reads and compiles a JSON Schema file
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, path)
		}
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}
	return NewSchema(path, data)
}

// DefaultServiceSchema returns the embedded schema for service documents
func DefaultServiceSchema() *Schema {
	return mustBuiltin(serviceSchemaFile)
}

// DefaultCustomTypesSchema returns the embedded schema for custom types documents
func DefaultCustomTypesSchema() *Schema {
	return mustBuiltin(customTypesSchemaFile)
}

func mustBuiltin(file string) *Schema {
	data, err := builtinSchemas.ReadFile(file)
	if err != nil {
		panic(err)
	}
	s, err := NewSchema(file, data)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the name the schema was compiled under
func (s *Schema) Name() string {
	return s.name
}

// Validate checks a decoded document. The document is normalized to the JSON data
// model first so YAML scalars compare like their JSON equivalents.
func (s *Schema) Validate(doc any) ([]SchemaError, error) {
	normalized, err := toJSONValue(doc)
	if err != nil {
		return nil, err
	}

	err = s.compiled.Validate(normalized)
	if err == nil {
		return nil, nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, err
	}

	var out []SchemaError
	flattenValidationError(verr, &out)
	return out, nil
}

// flattenValidationError collects the leaf causes of a validation error tree
func flattenValidationError(verr *jsonschema.ValidationError, out *[]SchemaError) {
	if len(verr.Causes) == 0 {
		*out = append(*out, SchemaError{
			Pointer: verr.InstanceLocation,
			Message: verr.Message,
		})
		return
	}
	for _, cause := range verr.Causes {
		flattenValidationError(cause, out)
	}
}

func toJSONValue(doc any) (any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("document is not representable as JSON: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var v any
	if err := decoder.Decode(&v); err != nil {
		return nil, fmt.Errorf("document is not representable as JSON: %w", err)
	}
	return v, nil
}

func (e SchemaError) String() string {
	if e.Pointer == "" {
		return e.Message
	}
	return strings.TrimPrefix(e.Pointer, "/") + ": " + e.Message
}
