// Package codegen groups the codec emission packages.
//
// # Architecture
//
// Emission consists of four components:
//
//  1. Languages (pkg/codegen/languages): per-language capability records and ignore lists
//  2. Render (pkg/codegen/render): text templates and type mapping per language
//  3. Artifacts (pkg/codegen/artifacts): line ending policies, content hashes and file writes
//  4. Orchestrator (pkg/codegen/orchestrator): walks the corpus and drives the other three
//
// # Usage
//
//	renderer, err := render.NewTemplateRenderer(&render.Options{
//		Namespace:   "com.hazelcast.client.impl.protocol.codec",
//		CustomTypes: corpus.CustomTypeIndex(),
//	})
//	orch := orchestrator.NewOrchestrator(nil, languages.NewDefaultRegistry(), renderer, log)
//	results, err := orch.EmitAll(ctx, []string{"java", "py"}, corpus, table)
//
// Languages, services, methods and artifacts are processed one at a time in
// document order.
package codegen
