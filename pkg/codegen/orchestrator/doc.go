// Package orchestrator emits the artifacts of a validated corpus for each
// requested language.
//
// For every language it skips ignore-listed entries, attaches message ids,
// renders each method and custom type and writes the result. Languages with an
// aggregation write all methods into shared files seeded with a header and closed
// with a footer. A method whose types a language cannot express is skipped with a
// warning; any other render or write error stops the run.
package orchestrator
