package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

var testLayout = m.Layout{
	ProjectPath: "/usd",
	BinDir:      "/opt/usdrefactor/bin",
	FixturesDir: "/opt/usdrefactor/tests",
}

func TestDumpCommand(t *testing.T) {
	cmd := DumpCommand(testLayout, m.InlineNamespaces, "/opt/usdrefactor/tests/inline-namespaces/basic/original.cpp")

	assert.Equal(t, m.Path("/opt/usdrefactor/bin/inline-namespaces"), cmd.Executable)
	assert.Equal(t, []string{
		"--dump",
		"-p", "/usd/build",
		"--file-pattern", "/usd/*",
		"/opt/usdrefactor/tests/inline-namespaces/basic/original.cpp",
	}, cmd.Args)
}

func TestOverwriteCommand(t *testing.T) {
	files := []m.Path{"/usd/pxr/base/tf/token.h", "/usd/pxr/base/tf/token.cpp"}

	t.Run("disambiguate symbols", func(t *testing.T) {
		policy, err := PolicyFor(m.DisambiguateSymbols)
		assert.NoError(t, err)

		cmd := OverwriteCommand(testLayout, m.DisambiguateSymbols, policy, files)

		assert.Equal(t,
			"/opt/usdrefactor/bin/disambiguate-symbols -p /usd/build --overwrite --root /usd /usd/pxr/base/tf/token.h /usd/pxr/base/tf/token.cpp",
			cmd.String())
	})

	t.Run("inline namespaces scopes rewrites", func(t *testing.T) {
		policy, err := PolicyFor(m.InlineNamespaces)
		assert.NoError(t, err)

		cmd := OverwriteCommand(testLayout, m.InlineNamespaces, policy, files)

		assert.Equal(t,
			"/opt/usdrefactor/bin/inline-namespaces -p /usd/build --overwrite --root /usd --file-pattern /usd/* /usd/pxr/base/tf/token.h /usd/pxr/base/tf/token.cpp",
			cmd.String())
	})
}
