package domain

import (
	"fmt"

	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

// versionedFilePattern matches base names such as "resolver_v2".
const versionedFilePattern = `_v\d+$`

// baselineRules apply to every tool, in evaluation order.
var baselineRules = []Rule{
	OnlyExtensions("source-extension", ".h", ".cpp"),
	BaseNameSuffix("template-suffix", ".template"),
	BaseNamePrefix("ilmbase-prefix", "ilmbase_"),
	UnderDirectory("testenv", "testenv"),
	UnderDirectory("rapidjson", "base", "js", "rapidjson"),
	NamedFiles("tf-type-impl", []string{"base", "tf"}, "type_Impl.h"),
	BaseNameMatching("ar-versioned", []string{"usd", "ar"}, versionedFilePattern),
	NamedFiles("sdf-path-node", []string{"usd", "sdf"}, "pathNode.h"),
	NamedFiles("pcp-dynamic-file-format-dependency", []string{"usd", "pcp"}, "dynamicFileFormatDependencyData.h"),
	UnderDirectory("usd-codegen-templates", "usd", "usd", "codegenTemplates"),
	NamedFiles("usd-crate", []string{"usd", "usd"}, "crateDataTypes.h", "crateValueInliners.h", "examples.cpp"),
	NamedFiles("usd-draco-flag", []string{"usd", "plugin", "usdDraco"}, "flag.h"),
	AllExcept("garch", []string{"imaging", "garch"}, "wrapPlatformDebugContext.cpp"),
	NamedFiles("hdst-gl", []string{"imaging", "hdSt"}, "glConversions.h", "glslProgram.h", "points.h"),
	UnderDirectory("hgi-interop", "imaging", "hgiInterop"),
	UnderDirectory("hgi-metal", "imaging", "hgiMetal"),
	UnderDirectory("hgi-vulkan", "imaging", "hgiVulkan"),
}

// ToolPolicy is the per-tool part of file selection and invocation.
type ToolPolicy struct {
	// Overlay rules run after the baseline.
	Overlay []Rule
	// FilePattern adds --file-pattern to overwrite-mode invocations.
	FilePattern bool
}

var toolPolicies = map[m.ToolID]ToolPolicy{
	m.DisambiguateSymbols: {
		Overlay: []Rule{
			UnderDirectory("js", "base", "js"),
		},
	},
	m.InlineNamespaces: {
		Overlay: []Rule{
			NamedFiles("vt-py-operators", []string{"base", "vt"}, "pyOperators.h"),
			NamedFiles("pcp-dynamic-file-format-context", []string{"usd", "pcp"}, "dynamicFileFormatContext.cpp"),
		},
		FilePattern: true,
	},
}

// BaselineRules returns a copy of the rules shared by every tool.
func BaselineRules() []Rule {
	return append([]Rule(nil), baselineRules...)
}

// PolicyFor returns the policy of tool.
func PolicyFor(tool m.ToolID) (ToolPolicy, error) {
	policy, ok := toolPolicies[tool]
	if !ok {
		return ToolPolicy{}, fmt.Errorf("%w %q", m.ErrUnknownTool, tool)
	}

	return policy, nil
}

// RulesFor returns the baseline followed by the overlay of tool.
func RulesFor(tool m.ToolID) ([]Rule, error) {
	policy, err := PolicyFor(tool)
	if err != nil {
		return nil, err
	}

	rules := BaselineRules()

	return append(rules, policy.Overlay...), nil
}
