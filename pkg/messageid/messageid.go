// Package messageid derives the 3-byte message identifiers of requests, responses
// and events.
//
// An identifier is the service id, the method id and a kind byte: 0 for the
// request, 1 for the response and 2+i for the i-th event of the method.
package messageid

import (
	"fmt"

	"github.com/platinummonkey/codecgen/pkg/definitions"
)

// Kind bytes of the request and response messages. Events start at KindFirstEvent.
const (
	KindRequest    = 0
	KindResponse   = 1
	KindFirstEvent = 2

	maxComponent = 0xff
)

// ID is a message identifier
type ID struct {
	Service uint8
	Method  uint8
	Kind    uint8
}

// Value returns the identifier as one integer: service<<16 | method<<8 | kind
func (id ID) Value() uint32 {
	return uint32(id.Service)<<16 | uint32(id.Method)<<8 | uint32(id.Kind)
}

func (id ID) String() string {
	return fmt.Sprintf("0x%02x%02x%02x", id.Service, id.Method, id.Kind)
}

// EnrichedEvent is an event with its message id
type EnrichedEvent struct {
	definitions.Event
	MessageID ID
}

// EnrichedMethod is a method with the message ids of its request, response and
// events attached. The embedded definition is a copy; the loaded corpus is left
// untouched.
type EnrichedMethod struct {
	definitions.Method
	RequestID  ID
	ResponseID ID
	Events     []EnrichedEvent
}

// Assign computes the message ids of every message of a method
func Assign(service definitions.Service, method definitions.Method) (EnrichedMethod, error) {
	if service.ID < 0 || service.ID > maxComponent {
		return EnrichedMethod{}, fmt.Errorf("%w: service %s has id %d", ErrIDOutOfRange, service.Name, service.ID)
	}
	if method.ID < 0 || method.ID > maxComponent {
		return EnrichedMethod{}, fmt.Errorf("%w: method %s#%s has id %d",
			ErrIDOutOfRange, service.Name, method.Name, method.ID)
	}
	if KindFirstEvent+len(method.Events)-1 > maxComponent {
		return EnrichedMethod{}, fmt.Errorf("%w: method %s#%s declares %d events",
			ErrIDOutOfRange, service.Name, method.Name, len(method.Events))
	}

	sid, mid := uint8(service.ID), uint8(method.ID)

	enriched := EnrichedMethod{
		Method:     method,
		RequestID:  ID{Service: sid, Method: mid, Kind: KindRequest},
		ResponseID: ID{Service: sid, Method: mid, Kind: KindResponse},
		Events:     make([]EnrichedEvent, 0, len(method.Events)),
	}
	for i, event := range method.Events {
		enriched.Events = append(enriched.Events, EnrichedEvent{
			Event:     event,
			MessageID: ID{Service: sid, Method: mid, Kind: uint8(KindFirstEvent + i)},
		})
	}

	return enriched, nil
}

// AssignService enriches every method of a service in declaration order
func AssignService(service definitions.Service) ([]EnrichedMethod, error) {
	out := make([]EnrichedMethod, 0, len(service.Methods))
	for _, method := range service.Methods {
		enriched, err := Assign(service, method)
		if err != nil {
			return nil, err
		}
		out = append(out, enriched)
	}
	return out, nil
}
