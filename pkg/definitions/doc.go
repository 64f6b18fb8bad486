// Package definitions holds the in-memory model of a protocol definition corpus and
// loads it from disk.
//
// # Overview
//
// A corpus is a directory of YAML documents, one per service, plus an optional
// directory holding the custom types document. Each service declares an integer
// id, an ordered list of methods, and every method carries a request, a response
// and optional server-pushed events. Parameters, methods, events and custom types
// each record the protocol version they were introduced in ("since").
//
// # Type names
//
// Composite parameter types are encoded in the type name itself:
//
//	List_String           list of String
//	ListCN_Data           list of nullable Data
//	Set_UUID              set of UUID
//	Map_String_Data       map String -> Data
//	EntryList_UUID_Long   entry list UUID -> Long
//
// Map and entry-list keys are a single token; the value type is the remainder,
// so Map_String_List_Data maps String to List_Data. Any other name is either a
// primitive or a reference to a declared custom type.
//
// # Usage Example
//
//	services, err := definitions.LoadServices("protocol-definitions")
//	if err != nil {
//		log.Fatal(err) // malformed documents abort the run
//	}
//	customs, err := definitions.LoadCustomTypes("protocol-definitions/custom")
//	corpus := definitions.NewCorpus(services, customs)
package definitions
