package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

const testRoot = "/usd"

func sourceFile(rel string) m.SourceFile {
	return m.NewSourceFile(testRoot, m.Path(filepath.Join(testRoot, rel)))
}

func TestEvaluate_Baseline(t *testing.T) {
	tests := []struct {
		path string
		rule string
	}{
		{path: "pxr/base/tf/token.h"},
		{path: "pxr/base/tf/token.cpp"},
		{path: "pxr/base/tf/wrapToken.py", rule: "source-extension"},
		{path: "pxr/base/tf/CMakeLists.txt", rule: "source-extension"},
		{path: "pxr/base/tf/pyObjWrapper.template.cpp", rule: "template-suffix"},
		{path: "pxr/base/gf/ilmbase_half.h", rule: "ilmbase-prefix"},
		{path: "pxr/base/tf/testenv/testTfType.cpp", rule: "testenv"},
		{path: "pxr/base/js/rapidjson/document.h", rule: "rapidjson"},
		{path: "pxr/base/tf/type_Impl.h", rule: "tf-type-impl"},
		{path: "pxr/base/vt/type_Impl.h"},
		{path: "pxr/usd/ar/resolver_v2.h", rule: "ar-versioned"},
		{path: "pxr/usd/ar/resolver_version2.h"},
		{path: "pxr/usd/sdf/resolver_v2.h"},
		{path: "pxr/usd/sdf/pathNode.h", rule: "sdf-path-node"},
		{path: "pxr/usd/usd/pathNode.h"},
		{path: "pxr/usd/pcp/dynamicFileFormatDependencyData.h", rule: "pcp-dynamic-file-format-dependency"},
		{path: "pxr/usd/usd/codegenTemplates/schemaClass.cpp", rule: "usd-codegen-templates"},
		{path: "pxr/usd/usd/crateDataTypes.h", rule: "usd-crate"},
		{path: "pxr/usd/usd/examples.cpp", rule: "usd-crate"},
		{path: "pxr/usd/plugin/usdDraco/flag.h", rule: "usd-draco-flag"},
		{path: "pxr/imaging/garch/glApi.h", rule: "garch"},
		{path: "pxr/imaging/garch/wrapPlatformDebugContext.cpp"},
		{path: "pxr/imaging/hdSt/points.h", rule: "hdst-gl"},
		{path: "pxr/imaging/hdSt/mesh.h"},
		{path: "pxr/imaging/hgiInterop/opengl.cpp", rule: "hgi-interop"},
		{path: "pxr/imaging/hgiMetal/hgi.h", rule: "hgi-metal"},
		{path: "pxr/imaging/hgiVulkan/hgi.h", rule: "hgi-vulkan"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			excluded, rule := Evaluate(BaselineRules(), sourceFile(tt.path))

			assert.Equal(t, tt.rule != "", excluded)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestEvaluate_ToolOverlays(t *testing.T) {
	tests := []struct {
		name     string
		tool     m.ToolID
		path     string
		excluded bool
	}{
		{name: "rapidjson excluded for disambiguate", tool: m.DisambiguateSymbols, path: "pxr/base/js/rapidjson/reader.h", excluded: true},
		{name: "rapidjson excluded for inline", tool: m.InlineNamespaces, path: "pxr/base/js/rapidjson/reader.h", excluded: true},
		{name: "js excluded for disambiguate", tool: m.DisambiguateSymbols, path: "pxr/base/js/json.h", excluded: true},
		{name: "js kept for inline", tool: m.InlineNamespaces, path: "pxr/base/js/json.h"},
		{name: "pyOperators excluded for inline", tool: m.InlineNamespaces, path: "pxr/base/vt/pyOperators.h", excluded: true},
		{name: "pyOperators kept for disambiguate", tool: m.DisambiguateSymbols, path: "pxr/base/vt/pyOperators.h"},
		{name: "file format context excluded for inline", tool: m.InlineNamespaces, path: "pxr/usd/pcp/dynamicFileFormatContext.cpp", excluded: true},
		{name: "file format context kept for disambiguate", tool: m.DisambiguateSymbols, path: "pxr/usd/pcp/dynamicFileFormatContext.cpp"},
		{name: "non contiguous marker", tool: m.DisambiguateSymbols, path: "pxr/base/other/js/json.h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := RulesFor(tt.tool)
			require.NoError(t, err)

			excluded, _ := Evaluate(rules, sourceFile(tt.path))
			assert.Equal(t, tt.excluded, excluded)
		})
	}
}

func TestEvaluate_FirstRuleWins(t *testing.T) {
	rules, err := RulesFor(m.DisambiguateSymbols)
	require.NoError(t, err)

	// rapidjson is a baseline rule, js only an overlay.
	_, rule := Evaluate(rules, sourceFile("pxr/base/js/rapidjson/reader.h"))
	assert.Equal(t, "rapidjson", rule)

	_, rule = Evaluate(rules, sourceFile("pxr/base/js/rapidjson/README.md"))
	assert.Equal(t, "source-extension", rule)
}

func TestEvaluate_NoRules(t *testing.T) {
	excluded, rule := Evaluate(nil, sourceFile("anything.txt"))

	assert.False(t, excluded)
	assert.Empty(t, rule)
}

func TestRule_PatternWithoutConstructor(t *testing.T) {
	rule := Rule{Name: "tests", Kind: KindPattern, Marker: []string{"base"}, Pattern: `^test`}

	assert.True(t, rule.Excludes(sourceFile("pxr/base/testTf.cpp")))
	assert.False(t, rule.Excludes(sourceFile("pxr/base/tf.cpp")))
	assert.False(t, rule.Excludes(sourceFile("pxr/usd/testUsd.cpp")))
}

func TestContainsMarker(t *testing.T) {
	dirs := []string{"pxr", "usd", "usd", "codegenTemplates"}

	assert.True(t, containsMarker(dirs, []string{"usd", "usd"}))
	assert.True(t, containsMarker(dirs, []string{"usd", "codegenTemplates"}))
	assert.False(t, containsMarker(dirs, []string{"pxr", "codegenTemplates"}))
	assert.False(t, containsMarker(dirs, nil))
	assert.False(t, containsMarker([]string{"usd"}, []string{"usd", "usd"}))
}

func TestRulesFor(t *testing.T) {
	for _, tool := range m.Tools() {
		policy, err := PolicyFor(tool)
		require.NoError(t, err)

		rules, err := RulesFor(tool)
		require.NoError(t, err)

		assert.Len(t, rules, len(baselineRules)+len(policy.Overlay))
		assert.Equal(t, baselineRules[0].Name, rules[0].Name)
	}

	_, err := RulesFor("format-everything")
	assert.ErrorIs(t, err, m.ErrUnknownTool)
}

func TestBaselineRules_ReturnsCopy(t *testing.T) {
	rules := BaselineRules()
	rules[0] = UnderDirectory("everything", "pxr")

	assert.Equal(t, "source-extension", BaselineRules()[0].Name)
}
