package languages

import "github.com/platinummonkey/codecgen/pkg/definitions"

// GetDefaultLanguages returns the default language configurations
func GetDefaultLanguages() []*LanguageSpec {
	return []*LanguageSpec{
		getJavaLanguageSpec(),
		getCPPLanguageSpec(),
		getCSharpLanguageSpec(),
		getPythonLanguageSpec(),
		getTypeScriptLanguageSpec(),
		getMarkdownLanguageSpec(),
	}
}

func getJavaLanguageSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:              LanguageJava,
		Name:            "Java",
		Extension:       "java",
		Naming:          NamingCapitalized,
		OutputDir:       "hazelcast/src/main/java/com/hazelcast/client/impl/protocol/codec/",
		CustomOutputDir: "hazelcast/src/main/java/com/hazelcast/client/impl/protocol/codec/custom/",
		MethodTemplate:  "codec.java.tmpl",
		CustomTemplates: []CustomTemplate{{Template: "custom-codec.java.tmpl", Extension: "java"}},
		CustomNaming:    NamingCapitalized,
		Enabled:         true,
	}
}

func getCPPLanguageSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:        LanguageCPP,
		Name:      "C++",
		Extension: "cpp",
		Naming:    NamingSnake,
		IgnorePatterns: []string{
			"MC.*",
			"Jet.*",
			"Sql.*",
			"CPSubsystem.*",
			"ExecutorService.*",
			"DurableExecutor.*",
			"ScheduledExecutor.*",
			"CardinalityEstimator.*",
			"Cache.*",
			"ContinuousQuery.*",
			"DynamicConfig.*",
			"XATransaction.*",
			"Client.addPartitionLostListener",
			"Client.removePartitionLostListener",
		},
		OutputDir:       "hazelcast/generated-sources/src/hazelcast/client/protocol/codec/",
		CustomOutputDir: "hazelcast/generated-sources/src/hazelcast/client/protocol/codec/",
		Aggregation: &Aggregation{
			Files: []AggregateFile{
				{Name: "codecs.h", Seed: "header-includes.h.tmpl", MethodTemplate: "codec.h.tmpl"},
				{Name: "codecs.cpp", Seed: "source-header.cpp.tmpl", MethodTemplate: "codec.cpp.tmpl"},
			},
			Footer: "footer.tmpl",
		},
		CustomTemplates: []CustomTemplate{
			{Template: "custom-codec.h.tmpl", Extension: "h"},
			{Template: "custom-codec.cpp.tmpl", Extension: "cpp"},
		},
		CustomNaming: NamingLower,
		Enabled:      true,
	}
}

func getCSharpLanguageSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:        LanguageCSharp,
		Name:      "C#",
		Extension: "cs",
		Naming:    NamingCapitalized,
		IgnorePatterns: []string{
			"MC.*",
			"Jet.*",
			"Sql.*",
			"ExecutorService.*",
			"DurableExecutor.*",
			"ScheduledExecutor.*",
			"CardinalityEstimator.*",
			"Cache.*",
			"XATransaction.*",
			"ContinuousQuery.*",
			"DynamicConfig.*",
		},
		OutputDir:       "src/Hazelcast.Net/Protocol/Codecs/",
		CustomOutputDir: "src/Hazelcast.Net/Protocol/CustomCodecs/",
		MethodTemplate:  "codec.cs.tmpl",
		CustomTemplates: []CustomTemplate{{Template: "custom-codec.cs.tmpl", Extension: "cs"}},
		CustomNaming:    NamingCapitalized,
		Enabled:         true,
	}
}

func getPythonLanguageSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:        LanguagePython,
		Name:      "Python",
		Extension: "py",
		Naming:    NamingSnake,
		IgnorePatterns: []string{
			"MC.*",
			"Jet.*",
			"ExecutorService.*",
			"DurableExecutor.*",
			"ScheduledExecutor.*",
			"CardinalityEstimator.*",
			"Cache.*",
			"XATransaction.*",
			"ContinuousQuery.*",
			"DynamicConfig.*",
			"Client.addPartitionLostListener",
			"Client.removePartitionLostListener",
		},
		OutputDir:       "hazelcast/protocol/codec/",
		CustomOutputDir: "hazelcast/protocol/codec/custom/",
		MethodTemplate:  "codec.py.tmpl",
		CustomTemplates: []CustomTemplate{{Template: "custom-codec.py.tmpl", Extension: "py"}},
		CustomNaming:    NamingSnake,
		Enabled:         true,
	}
}

func getTypeScriptLanguageSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:        LanguageTypeScript,
		Name:      "TypeScript",
		Extension: "ts",
		Naming:    NamingCapitalized,
		IgnorePatterns: []string{
			"MC.*",
			"Jet.*",
			"ExecutorService.*",
			"DurableExecutor.*",
			"ScheduledExecutor.*",
			"CardinalityEstimator.*",
			"Cache.*",
			"XATransaction.*",
			"ContinuousQuery.*",
			"DynamicConfig.*",
		},
		OutputDir:        "src/codec/",
		CustomOutputDir:  "src/codec/custom",
		MethodTemplate:   "codec.ts.tmpl",
		CustomTemplates:  []CustomTemplate{{Template: "custom-codec.ts.tmpl", Extension: "ts"}},
		CustomNaming:     NamingCapitalized,
		CustomTypeAdjust: addJSONValueGetter,
		Enabled:          true,
	}
}

func getMarkdownLanguageSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:            LanguageMarkdown,
		Name:          "Markdown",
		Extension:     "md",
		OutputDir:     "documentation",
		Documentation: true,
		Enabled:       true,
	}
}

// addJSONValueGetter reads HazelcastJsonValue through toString(), its only
// public accessor
func addJSONValueGetter(ct definitions.CustomType) definitions.CustomType {
	if ct.Name != "HazelcastJsonValue" || len(ct.Params) == 0 {
		return ct
	}
	params := make([]definitions.Parameter, len(ct.Params))
	copy(params, ct.Params)
	params[0].Getter = "toString()"
	ct.Params = params
	return ct
}
