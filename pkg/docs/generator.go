package docs

import (
	"github.com/platinummonkey/codecgen/pkg/definitions"
	"github.com/platinummonkey/codecgen/pkg/messageid"
)

// DefaultInternalServices are services never documented publicly
var DefaultInternalServices = []string{"MC", "Experimental"}

// Documentation represents generated documentation for a protocol corpus
type Documentation struct {
	Title       string
	Services    []*ServiceDoc
	CustomTypes []*CustomTypeDoc
}

// ServiceDoc represents documentation for a service
type ServiceDoc struct {
	Name    string
	ID      int
	Methods []*MethodDoc
}

// MethodDoc represents documentation for a service method
type MethodDoc struct {
	Name                string
	Description         string
	Since               string
	Retryable           bool
	PartitionIdentifier string
	RequestID           string
	ResponseID          string
	Request             []*FieldDoc
	Response            []*FieldDoc
	Events              []*EventDoc
}

// EventDoc represents documentation for an event
type EventDoc struct {
	Name        string
	Description string
	Since       string
	MessageID   string
	Params      []*FieldDoc
}

// FieldDoc represents documentation for a parameter
type FieldDoc struct {
	Name        string
	Type        string
	Nullable    bool
	Since       string
	Description string
}

// CustomTypeDoc represents documentation for a custom type
type CustomTypeDoc struct {
	Name        string
	Since       string
	Description string
	Fields      []*FieldDoc
}

// Generator generates documentation from a definition corpus
type Generator struct {
	internal map[string]bool
}

// NewGenerator creates a new documentation generator that skips the named
// internal services
func NewGenerator(internalServices []string) *Generator {
	internal := make(map[string]bool, len(internalServices))
	for _, name := range internalServices {
		internal[name] = true
	}
	return &Generator{internal: internal}
}

// Generate generates documentation from a corpus
func (g *Generator) Generate(corpus *definitions.Corpus) (*Documentation, error) {
	doc := &Documentation{
		Title:       "Client Protocol",
		Services:    make([]*ServiceDoc, 0, len(corpus.Services)),
		CustomTypes: make([]*CustomTypeDoc, 0),
	}

	for _, svc := range corpus.Services {
		if g.internal[svc.Name] {
			continue
		}
		serviceDoc, err := g.generateServiceDoc(svc)
		if err != nil {
			return nil, err
		}
		doc.Services = append(doc.Services, serviceDoc)
	}

	for _, ct := range corpus.AllCustomTypes() {
		doc.CustomTypes = append(doc.CustomTypes, &CustomTypeDoc{
			Name:        ct.Name,
			Since:       ct.Since,
			Description: ct.Doc,
			Fields:      generateFieldDocs(ct.Params),
		})
	}

	return doc, nil
}

// generateServiceDoc generates documentation for a service
func (g *Generator) generateServiceDoc(svc definitions.Service) (*ServiceDoc, error) {
	serviceDoc := &ServiceDoc{
		Name:    svc.Name,
		ID:      svc.ID,
		Methods: make([]*MethodDoc, 0, len(svc.Methods)),
	}

	methods, err := messageid.AssignService(svc)
	if err != nil {
		return nil, err
	}

	for _, method := range methods {
		methodDoc := &MethodDoc{
			Name:                method.Name,
			Description:         method.Doc,
			Since:               method.Since,
			Retryable:           method.Request.Retryable,
			PartitionIdentifier: method.Request.PartitionIdentifier,
			RequestID:           method.RequestID.String(),
			ResponseID:          method.ResponseID.String(),
			Request:             generateFieldDocs(method.Request.Params),
			Response:            generateFieldDocs(method.Response.Params),
			Events:              make([]*EventDoc, 0, len(method.Events)),
		}
		for _, event := range method.Events {
			methodDoc.Events = append(methodDoc.Events, &EventDoc{
				Name:        event.Name,
				Description: event.Doc,
				Since:       event.Since,
				MessageID:   event.MessageID.String(),
				Params:      generateFieldDocs(event.Params),
			})
		}
		serviceDoc.Methods = append(serviceDoc.Methods, methodDoc)
	}

	return serviceDoc, nil
}

func generateFieldDocs(params []definitions.Parameter) []*FieldDoc {
	fields := make([]*FieldDoc, 0, len(params))
	for _, p := range params {
		fields = append(fields, &FieldDoc{
			Name:        p.Name,
			Type:        p.Type,
			Nullable:    p.Nullable,
			Since:       p.Since,
			Description: p.Doc,
		})
	}
	return fields
}
