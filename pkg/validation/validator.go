package validation

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/codecgen/pkg/definitions"
	"github.com/platinummonkey/codecgen/pkg/version"
)

// Rule names reported in diagnostics
const (
	RuleSchemaViolation = "SCHEMA_VIOLATION"
	RuleServiceIDOrder  = "SERVICE_ID_ORDER"
	RuleMethodIDOrder   = "METHOD_ID_ORDER"
	RuleSinceOrder      = "SINCE_ORDER"
	RuleSinceContinuity = "SINCE_CONTINUITY"
	RuleInvalidVersion  = "INVALID_VERSION"
)

// Validator performs structural and semantic validation of definition documents
type Validator struct {
	config        *Config
	serviceSchema *Schema
	customSchema  *Schema
	log           *logrus.Logger
}

// Config defines validation rules
type Config struct {
	// NoIDCheck disables service and method id continuity checks
	NoIDCheck bool
	// ExemptServices are service names whose ids are never checked
	ExemptServices []string
}

// DefaultConfig returns default validation settings
func DefaultConfig() *Config {
	return &Config{
		ExemptServices: []string{"Jet", "Experimental"},
	}
}

// NewValidator creates a new validator. Nil schemas fall back to the embedded ones.
func NewValidator(config *Config, serviceSchema, customSchema *Schema, log *logrus.Logger) *Validator {
	if config == nil {
		config = DefaultConfig()
	}
	if serviceSchema == nil {
		serviceSchema = DefaultServiceSchema()
	}
	if customSchema == nil {
		customSchema = DefaultCustomTypesSchema()
	}
	if log == nil {
		log = logrus.New()
	}
	return &Validator{
		config:        config,
		serviceSchema: serviceSchema,
		customSchema:  customSchema,
		log:           log,
	}
}

// Diagnostic is a single validation violation
type Diagnostic struct {
	// Location names the document part, e.g. "Map#put#request"
	Location string
	Rule     string
	// Field is the offending field or parameter name, if any
	Field   string
	Message string
}

// Result aggregates every diagnostic of a validation run
type Result struct {
	Diagnostics []*Diagnostic
	Valid       bool
}

func newResult() *Result {
	return &Result{
		Diagnostics: make([]*Diagnostic, 0),
		Valid:       true,
	}
}

// Merge appends the diagnostics of other
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
	r.Valid = r.Valid && other.Valid
}

// Count returns the number of diagnostics reported under a rule
func (r *Result) Count(rule string) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Rule == rule {
			n++
		}
	}
	return n
}

// ValidateCorpus validates every service and custom types document
func (v *Validator) ValidateCorpus(corpus *definitions.Corpus, known *version.Set) *Result {
	result := v.ValidateServices(corpus.Services, known)
	result.Merge(v.ValidateCustomTypes(corpus.CustomTypes, known))
	return result
}

// ValidateServices validates service documents in corpus order
func (v *Validator) ValidateServices(services []definitions.Service, known *version.Set) *Result {
	result := newResult()

	for i, svc := range services {
		if !v.checkSchema(v.serviceSchema, svc.Name, svc.Raw, result) {
			continue
		}

		if v.checksIDs(svc.Name) && svc.ID != i {
			v.addError(result, svc.Name, RuleServiceIDOrder, "id",
				fmt.Sprintf("Service id of %s should be %d, found %d", svc.Name, i, svc.ID))
		}

		for j, method := range svc.Methods {
			methodName := svc.Name + "#" + method.Name

			if v.checksIDs(svc.Name) && method.ID != j+1 {
				v.addError(result, methodName, RuleMethodIDOrder, "id",
					fmt.Sprintf("Method id of %s should be %d, found %d", methodName, j+1, method.ID))
			}

			v.checkOwnerSince(methodName, method.Since, known, result)
			v.checkParams(methodName+"#request", method.Since, method.Request.Params, known, result)
			v.checkParams(methodName+"#response", method.Since, method.Response.Params, known, result)

			for _, event := range method.Events {
				eventName := methodName + "#" + event.Name
				v.checkOwnerSince(eventName, event.Since, known, result)
				v.checkParams(eventName+"#event", event.Since, event.Params, known, result)
			}
		}

		for _, ct := range svc.CustomTypes {
			v.checkCustomType(ct, known, result)
		}
	}

	return result
}

// ValidateCustomTypes validates standalone custom types documents
func (v *Validator) ValidateCustomTypes(docs []definitions.CustomTypesDocument, known *version.Set) *Result {
	result := newResult()

	for _, doc := range docs {
		name := doc.Name
		if name == "" {
			name = doc.Source
		}
		if !v.checkSchema(v.customSchema, name, doc.Raw, result) {
			continue
		}
		for _, ct := range doc.CustomTypes {
			v.checkCustomType(ct, known, result)
		}
	}

	return result
}

func (v *Validator) checkCustomType(ct definitions.CustomType, known *version.Set, result *Result) {
	location := "CustomTypes#" + ct.Name
	v.checkOwnerSince(location, ct.Since, known, result)
	v.checkParams(location, ct.Since, ct.Params, known, result)
}

// checkSchema reports every structural violation of a document and returns
// whether the document passed
func (v *Validator) checkSchema(schema *Schema, name string, raw any, result *Result) bool {
	violations, err := schema.Validate(raw)
	if err != nil {
		v.addError(result, name, RuleSchemaViolation, "", err.Error())
		return false
	}
	for _, violation := range violations {
		v.addError(result, name, RuleSchemaViolation, violation.Pointer,
			fmt.Sprintf("Validation error on %s: %s", name, violation.String()))
	}
	return len(violations) == 0
}

func (v *Validator) checksIDs(serviceName string) bool {
	if v.config.NoIDCheck {
		return false
	}
	for _, exempt := range v.config.ExemptServices {
		if exempt == serviceName {
			return false
		}
	}
	return true
}

// checkOwnerSince checks the continuity of a method, event or custom type since
func (v *Validator) checkOwnerSince(location, since string, known *version.Set, result *Result) {
	parsed, err := version.Parse(since)
	if err != nil {
		v.addError(result, location, RuleInvalidVersion, "since", err.Error())
		return
	}
	if !known.Follows(parsed) {
		v.addError(result, location, RuleSinceContinuity, "since",
			fmt.Sprintf("Since value of %s is set to %s, which does not follow the other protocol versions", location, since))
	}
}

// checkParams checks ordering and continuity of one parameter list. The owner's
// since is the lower bound of the first parameter.
func (v *Validator) checkParams(location, ownerSince string, params []definitions.Parameter, known *version.Set, result *Result) {
	prev, err := version.Parse(ownerSince)
	hasPrev := err == nil

	for _, param := range params {
		current, err := version.Parse(param.Since)
		if err != nil {
			v.addError(result, location, RuleInvalidVersion, param.Name, err.Error())
			continue
		}

		if !known.Follows(current) {
			v.addError(result, location, RuleSinceContinuity, param.Name,
				fmt.Sprintf("Since value of %q field of %s is set to %s, which does not follow the other protocol versions",
					param.Name, location, param.Since))
		}

		if hasPrev && current.Less(prev) {
			v.addError(result, location, RuleSinceOrder, param.Name,
				fmt.Sprintf("Since value of %q field of %s is %s, lower than the previous %s; parameters must be in increasing order of since values",
					param.Name, location, param.Since, prev))
		}

		prev = current
		hasPrev = true
	}
}

func (v *Validator) addError(result *Result, location, rule, field, message string) {
	result.Diagnostics = append(result.Diagnostics, &Diagnostic{
		Location: location,
		Rule:     rule,
		Field:    field,
		Message:  message,
	})
	result.Valid = false

	v.log.WithFields(logrus.Fields{
		"location": location,
		"rule":     rule,
		"field":    field,
	}).Error(message)
}
