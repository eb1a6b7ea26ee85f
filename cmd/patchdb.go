package cmd

import (
	"github.com/spf13/cobra"

	"usdrefactor.dev/pkg/usdrefactor/internal/domain"
)

const patchDBLongDescription = `Prepend USD's source directory to the include paths of the compilation
database (build/compile_commands.json).

Every command that includes <path>/build/include gets -I<path> inserted in
front of it, so fixes applied by the refactoring tools land in the source
tree rather than in the headers staged in the build directory.`

// patchDBCmd represents the patch-db command.
var patchDBCmd = newPatchDBCmd()

func newPatchDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patch-db",
		Short: "Patch compile_commands.json to prefer the source tree",
		Long:  patchDBLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			layout, err := projectLayout()
			if err != nil {
				return err
			}

			return workflow.PatchDatabase(cmd.Context(), domain.PatchArgs{ProjectPath: layout.ProjectPath})
		},
	}
}

func init() {
	rootCmd.AddCommand(patchDBCmd)
}
