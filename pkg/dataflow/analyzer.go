// Package dataflow decides which message parameters carry opaque serialized
// payload, directly or through composite and custom types.
//
// The generated codecs use the answer to mark requests whose encoding depends on
// user data. A type carries payload if it is the payload type itself, a list or
// set whose item carries it, a map or entry list whose key or value carries it, or
// a custom type with a parameter that carries it.
package dataflow

import (
	"math"

	"github.com/platinummonkey/codecgen/pkg/definitions"
)

// DefaultPayloadType is the opaque serialized data type of the protocol
const DefaultPayloadType = "Data"

// noDependency marks an answer that did not depend on any in-progress type
const noDependency = math.MaxInt

type state int

const (
	stateUnknown state = iota
	stateInProgress
	stateHit
	stateMiss
)

// Analyzer classifies type names. Answers are memoized for the lifetime of the
// analyzer; it is not safe for concurrent use.
type Analyzer struct {
	payload     string
	customTypes map[string]definitions.CustomType

	memo  map[string]state
	depth map[string]int
	walks int
}

// NewAnalyzer creates an analyzer for a payload type name and the custom types
// that may be referenced. An empty payload uses DefaultPayloadType.
func NewAnalyzer(payload string, customTypes map[string]definitions.CustomType) *Analyzer {
	if payload == "" {
		payload = DefaultPayloadType
	}
	if customTypes == nil {
		customTypes = make(map[string]definitions.CustomType)
	}
	return &Analyzer{
		payload:     payload,
		customTypes: customTypes,
		memo:        map[string]state{payload: stateHit},
		depth:       make(map[string]int),
	}
}

// IsPayloadCarrying reports whether values of typeName contain the payload type
func (a *Analyzer) IsPayloadCarrying(typeName string) bool {
	hit, _ := a.classify(typeName, 0)
	return hit
}

// Walks returns how many type names were classified without a memo answer
func (a *Analyzer) Walks() int {
	return a.walks
}

// classify returns whether typeName carries payload, and the stack depth of the
// shallowest in-progress type the answer depended on.
//
// Re-entering an in-progress type counts as a miss on that path. A miss that
// depended on an ancestor still in progress is not memoized, since the ancestor
// may yet turn out to be a hit.
func (a *Analyzer) classify(typeName string, depth int) (bool, int) {
	switch a.memo[typeName] {
	case stateHit:
		return true, noDependency
	case stateMiss:
		return false, noDependency
	case stateInProgress:
		return false, a.depth[typeName]
	}

	a.walks++
	a.memo[typeName] = stateInProgress
	a.depth[typeName] = depth

	hit, low := a.classifyChildren(typeName, depth+1)
	delete(a.depth, typeName)

	switch {
	case hit:
		a.memo[typeName] = stateHit
		return true, noDependency
	case low < depth:
		delete(a.memo, typeName)
		return false, low
	default:
		a.memo[typeName] = stateMiss
		return false, noDependency
	}
}

func (a *Analyzer) classifyChildren(typeName string, depth int) (bool, int) {
	var children []string
	switch definitions.KindOf(typeName) {
	case definitions.KindList:
		children = []string{definitions.ItemType(typeName)}
	case definitions.KindMap:
		children = []string{definitions.KeyType(typeName), definitions.ValueType(typeName)}
	default:
		ct, ok := a.customTypes[typeName]
		if !ok {
			return false, noDependency
		}
		for _, param := range ct.Params {
			children = append(children, param.Type)
		}
	}

	low := noDependency
	for _, child := range children {
		hit, childLow := a.classify(child, depth)
		if hit {
			return true, noDependency
		}
		low = min(low, childLow)
	}
	return false, low
}
