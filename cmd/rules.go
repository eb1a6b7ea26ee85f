package cmd

import (
	"github.com/spf13/cobra"

	"usdrefactor.dev/pkg/usdrefactor/internal/controller"
	"usdrefactor.dev/pkg/usdrefactor/internal/domain"
	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

var rulesToolFlag string
var rulesFormatFlag string

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules --tool TOOL",
		Short: "Show the file selection rules of a tool",
		Long:  "Show the baseline and tool-specific exclusion rules in evaluation order.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			tool, err := m.ParseToolID(rulesToolFlag)
			if err != nil {
				return err
			}

			format, err := controller.ParseOutputFormat(rulesFormatFlag)
			if err != nil {
				return err
			}

			return workflow.Rules(cmd.Context(), domain.RulesArgs{Tool: tool, Format: format})
		},
	}

	cmd.Flags().StringVarP(&rulesToolFlag, toolFlagName, "t", "", toolFlagUsage)
	cobra.CheckErr(cmd.MarkFlagRequired(toolFlagName))
	cmd.Flags().StringVarP(&rulesFormatFlag, "format", "f", string(controller.FormatTable), "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
