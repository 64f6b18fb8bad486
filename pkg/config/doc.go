// Package config provides generator configuration from environment variables, an
// optional .env file and per-language policy files.
//
// # Overview
//
// LoadConfig reads CODECGEN_* variables with defaults for every setting. Command
// line flags override the loaded values.
//
// # Configuration Structure
//
// Input settings:
//
//	CODECGEN_SERVICES_DIR="protocol-definitions"
//	CODECGEN_CUSTOM_TYPES_DIR="protocol-definitions/custom"
//	CODECGEN_SCHEMA="schema/service-schema.json"
//	CODECGEN_CUSTOM_SCHEMA="schema/custom-codec-schema.json"
//	CODECGEN_POLICY="policy.toml"
//
// Output settings:
//
//	CODECGEN_OUTPUT="."
//	CODECGEN_LANGUAGES="java,cpp,cs,py,ts,md"
//	CODECGEN_NAMESPACE="com.hazelcast.client.impl.protocol.codec"
//	CODECGEN_TEMPLATE_DIR="templates"
//
// Validation and observability settings:
//
//	CODECGEN_NO_ID_CHECK="false"
//	CODECGEN_LOG_LEVEL="info"
//	CODECGEN_LOG_FORMAT="text"
//	CODECGEN_METRICS_FILE="/var/lib/node_exporter/codecgen.prom"
//	CODECGEN_WATCH_DEBOUNCE="500ms"
//
// # Policy Files
//
// A YAML or TOML policy file overrides the built-in language tables:
//
//	[languages.py]
//	ignore_patterns = ["MC.*", "Jet.*"]
//	output_dir = "hazelcast/protocol/codec/"
//	naming = "snake"
//
// # Related Packages
//
//   - pkg/codegen/languages: the tables a policy overrides
//   - pkg/cli: flags layered over this configuration
package config
