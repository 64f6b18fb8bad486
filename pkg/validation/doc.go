// Package validation checks a loaded protocol definition corpus before any code is
// generated.
//
// # Overview
//
// Validation runs in two passes over every document and reports every violation it
// finds in one run. Nothing is returned early: a document that fails one check
// still has its siblings checked.
//
// # Structural Checks
//
// Each service document and each custom types document is validated against a JSON
// Schema. Built-in schemas are embedded in the package and can be replaced with
// LoadSchema. A document that fails the schema is reported with its name and its
// semantic checks are skipped, since its shape cannot be trusted.
//
// # Semantic Checks
//
// Id continuity:
//   - the service at position i declares id i
//   - the method at position j of a service declares id j+1
//   - services named in Config.ExemptServices, or every service with
//     Config.NoIDCheck, skip both checks
//
// Since ordering:
//   - within a request, response, event or custom type parameter list the since
//     values never decrease, starting from the owner's since
//
// Since continuity:
//   - every since value must follow the known versions of the corpus (see
//     version.Set.Follows)
//
// # Usage Example
//
//	v := validation.NewValidator(validation.DefaultConfig(), nil, nil, logger)
//	known := version.Collect(corpus)
//	result := v.ValidateCorpus(corpus, known)
//	if !result.Valid {
//		for _, d := range result.Diagnostics {
//			fmt.Printf("[%s] %s: %s\n", d.Rule, d.Location, d.Message)
//		}
//	}
//
// # Related Packages
//
//   - pkg/definitions: document model and loader
//   - pkg/version: version encoding and continuity
package validation
