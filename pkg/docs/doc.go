// Package docs generates the protocol documentation artifact from a definition
// corpus.
//
// # Overview
//
// The generator turns services, methods, events and custom types into a
// documentation model with message ids already assigned. Internal services are
// left out. The Markdown exporter renders the model into a single file.
//
// # Usage Example
//
//	generator := docs.NewGenerator(docs.DefaultInternalServices)
//	documentation, err := generator.Generate(corpus)
//	if err != nil {
//		return err
//	}
//
//	exporter := docs.NewMarkdownExporter()
//	markdown := exporter.Export(documentation)
//	// Save to documentation/documentation.md
//
// # Related Packages
//
//   - pkg/messageid: message id assignment
//   - pkg/codegen/orchestrator: writes the artifact when "md" is requested
package docs
