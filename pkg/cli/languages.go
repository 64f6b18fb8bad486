package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/platinummonkey/codecgen/pkg/codegen/languages"
	"github.com/platinummonkey/codecgen/pkg/config"
)

// LanguageInfo represents information about a target language
type LanguageInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Extension       string   `json:"extension,omitempty"`
	Naming          string   `json:"naming"`
	OutputDir       string   `json:"output_dir"`
	CustomOutputDir string   `json:"custom_output_dir,omitempty"`
	Aggregated      bool     `json:"aggregated"`
	Documentation   bool     `json:"documentation"`
	Enabled         bool     `json:"enabled"`
	IgnorePatterns  []string `json:"ignore_patterns"`
}

func languagesCommand() *cli.Command {
	jsonFlag := &cli.BoolFlag{Name: "json", Usage: "Output in JSON format"}
	policyFlag := &cli.StringFlag{Name: flagPolicy, Usage: "YAML or TOML file overriding the language tables"}

	return &cli.Command{
		Name:  "languages",
		Usage: "Language table commands",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all target languages",
				Flags:  []cli.Flag{jsonFlag, policyFlag},
				Action: runLanguagesList,
			},
			{
				Name:      "show",
				Usage:     "Show details for a specific language",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{jsonFlag, policyFlag},
				Action:    runLanguagesShow,
			},
		},
	}
}

// languageRegistry returns the default tables with the --policy file applied
func languageRegistry(c *cli.Context) (*languages.Registry, error) {
	registry := languages.NewDefaultRegistry()
	if path := c.String(flagPolicy); path != "" {
		policy, err := config.LoadPolicy(path)
		if err != nil {
			return nil, err
		}
		if err := policy.Apply(registry); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func languageInfo(spec *languages.LanguageSpec) LanguageInfo {
	return LanguageInfo{
		ID:              spec.ID,
		Name:            spec.Name,
		Extension:       spec.Extension,
		Naming:          spec.Naming.String(),
		OutputDir:       spec.OutputDir,
		CustomOutputDir: spec.CustomOutputDir,
		Aggregated:      spec.Aggregation != nil,
		Documentation:   spec.Documentation,
		Enabled:         spec.Enabled,
		IgnorePatterns:  spec.IgnorePatterns,
	}
}

func runLanguagesList(c *cli.Context) error {
	registry, err := languageRegistry(c)
	if err != nil {
		return err
	}

	specs := registry.List()
	infos := make([]LanguageInfo, len(specs))
	for i, spec := range specs {
		infos[i] = languageInfo(spec)
	}

	out := c.App.Writer
	if c.Bool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	// Pretty table output
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEXTENSION\tENABLED\tIGNORED\tOUTPUT")
	fmt.Fprintln(w, "──\t────\t─────────\t───────\t───────\t──────")

	for _, lang := range infos {
		enabled := "✓"
		if !lang.Enabled {
			enabled = "✗"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			lang.ID,
			lang.Name,
			lang.Extension,
			enabled,
			len(lang.IgnorePatterns),
			lang.OutputDir,
		)
	}

	w.Flush()

	fmt.Fprintf(out, "\nTotal: %d languages\n", registry.Count())
	fmt.Fprintln(out, "\nUse 'codecgen languages show <id>' for more details")

	return nil
}

func runLanguagesShow(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("language ID required. Usage: codecgen languages show <id>")
	}

	registry, err := languageRegistry(c)
	if err != nil {
		return err
	}
	spec, err := registry.Get(c.Args().First())
	if err != nil {
		return fmt.Errorf("%w: %s", err, c.Args().First())
	}
	lang := languageInfo(spec)

	out := c.App.Writer
	if c.Bool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(lang)
	}

	// Pretty output
	fmt.Fprintf(out, "Language: %s\n", lang.Name)
	fmt.Fprintf(out, "ID: %s\n", lang.ID)
	fmt.Fprintf(out, "Enabled: %v\n", lang.Enabled)
	if lang.Documentation {
		fmt.Fprintf(out, "Output: %s\n", lang.OutputDir)
		return nil
	}
	fmt.Fprintf(out, "Extension: %s\n", lang.Extension)
	fmt.Fprintf(out, "Naming: %s\n", lang.Naming)
	fmt.Fprintf(out, "Aggregated: %v\n", lang.Aggregated)
	fmt.Fprintf(out, "Codec output: %s\n", lang.OutputDir)
	fmt.Fprintf(out, "Custom codec output: %s\n", lang.CustomOutputDir)
	fmt.Fprintf(out, "\nIgnored:\n")
	if len(lang.IgnorePatterns) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	fmt.Fprintf(out, "%s", indentList(lang.IgnorePatterns))

	return nil
}

func indentList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "  - %s\n", item)
	}
	return b.String()
}
