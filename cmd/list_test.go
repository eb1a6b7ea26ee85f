package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"usdrefactor.dev/pkg/usdrefactor/internal/domain"
	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

func TestListCmd_Modules(t *testing.T) {
	cmd, mockWorkflow, _, prefix := newTestRootCmd(t, newListCmd())

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Tool == m.InlineNamespaces &&
			args.Layout.ProjectPath == testProject &&
			len(args.Modules) == 2 &&
			args.Modules[0] == "pxr/base" &&
			args.Modules[1] == "pxr/usd" &&
			!args.Explain
	})).Return(nil)

	cmd.SetArgs(append(prefix, "list", "--tool", "inline-namespaces", "pxr/base", "pxr/usd"))
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestListCmd_DefaultModuleAndExplain(t *testing.T) {
	cmd, mockWorkflow, _, prefix := newTestRootCmd(t, newListCmd())

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Tool == m.DisambiguateSymbols &&
			len(args.Modules) == 1 &&
			args.Modules[0] == domain.DefaultModule &&
			args.Explain
	})).Return(nil)

	cmd.SetArgs(append(prefix, "list", "-t", "disambiguate-symbols", "--explain"))
	require.NoError(t, cmd.Execute())
}

func TestListCmd_UnknownTool(t *testing.T) {
	cmd, _, _, prefix := newTestRootCmd(t, newListCmd())

	cmd.SetArgs(append(prefix, "list", "--tool", "clang-format"))
	err := cmd.Execute()

	assert.ErrorIs(t, err, m.ErrUnknownTool)
}

func TestListCmd_RequiresTool(t *testing.T) {
	cmd, _, _, prefix := newTestRootCmd(t, newListCmd())

	cmd.SetArgs(append(prefix, "list"))
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"tool"`)
}
