package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/platinummonkey/codecgen/pkg/codegen/languages"
)

// DefaultEnvFile is loaded by LoadConfig when present
const DefaultEnvFile = ".env"

// Config holds all generator configuration
type Config struct {
	Input         InputConfig
	Output        OutputConfig
	Validation    ValidationConfig
	Observability ObservabilityConfig
	Watch         WatchConfig
}

// InputConfig locates the definitions, schemas and policy
type InputConfig struct {
	ServicesDir    string
	CustomTypesDir string

	// Empty schema paths use the embedded schemas
	ServiceSchema     string
	CustomTypesSchema string

	PolicyFile string
}

// OutputConfig controls what is emitted and where
type OutputConfig struct {
	Root           string
	Languages      []string
	Namespace      string
	TemplateDir    string
	ProtocolCommit string

	// LineSeparator overrides the platform line separator when set
	LineSeparator string
}

// ValidationConfig holds validator settings
type ValidationConfig struct {
	NoIDCheck bool
}

// ObservabilityConfig holds logging and metrics settings
type ObservabilityConfig struct {
	LogLevel    string
	LogFormat   string
	MetricsFile string
}

// WatchConfig holds watch mode settings
type WatchConfig struct {
	Debounce time.Duration
}

// LoadConfig loads configuration from environment variables. Variables in
// envFile are added first without replacing variables already set; a missing
// envFile is not an error.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	servicesDir := getEnv("CODECGEN_SERVICES_DIR", "protocol-definitions")
	cfg := &Config{
		Input: InputConfig{
			ServicesDir:       servicesDir,
			CustomTypesDir:    getEnv("CODECGEN_CUSTOM_TYPES_DIR", servicesDir+string(os.PathSeparator)+"custom"),
			ServiceSchema:     getEnv("CODECGEN_SCHEMA", ""),
			CustomTypesSchema: getEnv("CODECGEN_CUSTOM_SCHEMA", ""),
			PolicyFile:        getEnv("CODECGEN_POLICY", ""),
		},
		Output: OutputConfig{
			Root:           getEnv("CODECGEN_OUTPUT", "."),
			Languages:      getEnvList("CODECGEN_LANGUAGES", defaultLanguages()),
			Namespace:      getEnv("CODECGEN_NAMESPACE", ""),
			TemplateDir:    getEnv("CODECGEN_TEMPLATE_DIR", ""),
			ProtocolCommit: getEnv("CODECGEN_PROTOCOL_COMMIT", "unknown"),
			LineSeparator:  getEnv("CODECGEN_LINE_SEPARATOR", ""),
		},
		Validation: ValidationConfig{
			NoIDCheck: getEnvBool("CODECGEN_NO_ID_CHECK", false),
		},
		Observability: ObservabilityConfig{
			LogLevel:    getEnv("CODECGEN_LOG_LEVEL", "info"),
			LogFormat:   getEnv("CODECGEN_LOG_FORMAT", "text"),
			MetricsFile: getEnv("CODECGEN_METRICS_FILE", ""),
		},
		Watch: WatchConfig{
			Debounce: getEnvDuration("CODECGEN_WATCH_DEBOUNCE", 500*time.Millisecond),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Input.ServicesDir == "" {
		return fmt.Errorf("services directory is required")
	}
	if c.Output.Root == "" {
		return fmt.Errorf("output root is required")
	}
	if len(c.Output.Languages) == 0 {
		return fmt.Errorf("at least one language is required")
	}

	switch c.Output.LineSeparator {
	case "", "\n", "\r\n":
	default:
		return fmt.Errorf("invalid line separator %q (must be LF or CRLF)", c.Output.LineSeparator)
	}

	switch c.Observability.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Observability.LogFormat)
	}

	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must not be negative")
	}

	return nil
}

func defaultLanguages() []string {
	return []string{
		languages.LanguageJava,
		languages.LanguageCPP,
		languages.LanguageCSharp,
		languages.LanguagePython,
		languages.LanguageTypeScript,
		languages.LanguageMarkdown,
	}
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}

// getEnvList returns a comma separated environment variable or a default
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
