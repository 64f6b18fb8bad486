package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/platinummonkey/codecgen/pkg/codegen/languages"
)

// ErrUnknownPolicyFormat is returned for policy files that are neither YAML nor TOML
var ErrUnknownPolicyFormat = errors.New("unknown policy file format")

// Policy overrides the built-in language tables
type Policy struct {
	Languages map[string]LanguagePolicy `yaml:"languages" toml:"languages"`
}

// LanguagePolicy overrides one language. Unset fields keep the built-in value.
type LanguagePolicy struct {
	IgnorePatterns  *[]string              `yaml:"ignore_patterns" toml:"ignore_patterns"`
	Naming          *languages.NamingStyle `yaml:"naming" toml:"naming"`
	CustomNaming    *languages.NamingStyle `yaml:"custom_naming" toml:"custom_naming"`
	OutputDir       *string                `yaml:"output_dir" toml:"output_dir"`
	CustomOutputDir *string                `yaml:"custom_output_dir" toml:"custom_output_dir"`
	Enabled         *bool                  `yaml:"enabled" toml:"enabled"`
}

// LoadPolicy reads a policy file, choosing the decoder from the extension
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy %s: %w", path, err)
	}

	policy := &Policy{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), policy); err != nil {
			return nil, fmt.Errorf("failed to parse policy %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, policy); err != nil {
			return nil, fmt.Errorf("failed to parse policy %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicyFormat, path)
	}

	return policy, nil
}

// Apply writes the overrides into the registry. Every overridden language must be
// registered, and the result must still validate.
func (p *Policy) Apply(registry *languages.Registry) error {
	ids := make([]string, 0, len(p.Languages))
	for id := range p.Languages {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		current, err := registry.Get(id)
		if err != nil {
			return fmt.Errorf("policy for %s: %w", id, err)
		}

		override := p.Languages[id]
		spec := *current
		if override.IgnorePatterns != nil {
			spec.IgnorePatterns = append([]string(nil), (*override.IgnorePatterns)...)
		}
		if override.Naming != nil {
			spec.Naming = *override.Naming
		}
		if override.CustomNaming != nil {
			spec.CustomNaming = *override.CustomNaming
		}
		if override.OutputDir != nil {
			spec.OutputDir = *override.OutputDir
		}
		if override.CustomOutputDir != nil {
			spec.CustomOutputDir = *override.CustomOutputDir
		}
		if override.Enabled != nil {
			spec.Enabled = *override.Enabled
		}

		if err := registry.Update(&spec); err != nil {
			return fmt.Errorf("policy for %s: %w", id, err)
		}
	}
	return nil
}
