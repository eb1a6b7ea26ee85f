package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"usdrefactor.dev/pkg/usdrefactor/internal/domain"
)

const testLongDescription = `Run the refactoring tools against the golden fixtures.

Fixtures live in <tests-dir>/<tool>/<test>/, each holding an 'original' and an
'expected' file. Every fixture is rewritten in dump mode and compared with its
expected file. Nothing is printed when all fixtures pass; otherwise one diff
block is printed per failing fixture.

--tool and --test can be repeated; '*' selects everything.`

var testToolsFlag []string
var testNamesFlag []string

// testCmd represents the test command.
var testCmd = newTestCmd()

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Check the tools against golden fixtures",
		Long:  testLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			layout, err := projectLayout()
			if err != nil {
				return err
			}

			return workflow.Test(cmd.Context(), domain.TestArgs{
				Layout:  layout,
				Tools:   testToolsFlag,
				Tests:   testNamesFlag,
				Verbose: viper.GetBool(logVerboseKey),
				Stderr:  cmd.ErrOrStderr(),
			})
		},
	}

	configureTestFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func configureTestFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&testToolsFlag, toolFlagName, []string{domain.MatchAll}, "tool fixtures to run (can be repeated)")
	cmd.Flags().StringArrayVar(&testNamesFlag, testFlagName, []string{domain.MatchAll}, "test names to run (can be repeated)")
	cmd.Flags().String(testsDirFlagName, viper.GetString(testsDirKey), "directory holding the fixtures")
	bindFlagToConfig(cmd.Flags().Lookup(testsDirFlagName), testsDirKey)
}
