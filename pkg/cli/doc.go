// Package cli implements the codecgen command line.
//
// # Commands
//
//	codecgen generate --services-dir protocol-definitions --output out --languages java,py
//	codecgen validate --services-dir protocol-definitions
//	codecgen watch --services-dir protocol-definitions --output out
//	codecgen languages list --json
//
// Every command loads the definitions and validates them first. Validation
// diagnostics make the command exit with status 1; nothing is emitted for an
// invalid corpus.
//
// # Related Packages
//
//   - pkg/config: environment and policy configuration under the flags
//   - pkg/codegen/orchestrator: codec emission
package cli
