package dataflow

import "github.com/platinummonkey/codecgen/pkg/definitions"

// Table maps service name and method name to whether the method's request
// carries payload
type Table map[string]map[string]bool

// BuildTable classifies the request of every method of every service
func (a *Analyzer) BuildTable(services []definitions.Service) Table {
	table := make(Table, len(services))
	for _, svc := range services {
		methods := make(map[string]bool, len(svc.Methods))
		for _, method := range svc.Methods {
			methods[method.Name] = a.requestCarriesPayload(method.Request)
		}
		table[svc.Name] = methods
	}
	return table
}

func (a *Analyzer) requestCarriesPayload(request definitions.Request) bool {
	for _, param := range request.Params {
		if a.IsPayloadCarrying(param.Type) {
			return true
		}
	}
	return false
}

// Lookup returns the request payload flag of a method. Unknown methods report false.
func (t Table) Lookup(service, method string) bool {
	return t[service][method]
}
