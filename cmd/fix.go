package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"usdrefactor.dev/pkg/usdrefactor/internal/domain"
)

const fixLongDescription = `Run a refactoring tool in overwrite mode over the files selected for it.

Modules are paths relative to the project root, e.g. 'pxr/usd' or
'pxr/base/gf' (default: pxr). Files are rewritten in place.`

var fixToolFlag string
var fixDryRunFlag bool

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix --tool TOOL [modules...]",
		Short: "Refactor the selected files in place",
		Long:  fixLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			selectArgs, err := parseSelectArgs(fixToolFlag, args)
			if err != nil {
				return err
			}

			return workflow.Fix(cmd.Context(), domain.FixArgs{
				SelectArgs: selectArgs,
				DryRun:     fixDryRunFlag,
				Verbose:    viper.GetBool(logVerboseKey),
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().StringVarP(&fixToolFlag, toolFlagName, "t", "", toolFlagUsage)
	cobra.CheckErr(cmd.MarkFlagRequired(toolFlagName))
	cmd.Flags().BoolVarP(&fixDryRunFlag, "dry-run", "n", false, "print the tool command line without running it")

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
