package cmd

import (
	"github.com/spf13/cobra"

	"usdrefactor.dev/pkg/usdrefactor/internal/domain"
	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

const listLongDescription = `Print the files a tool is allowed to rewrite, one per line, in the order
they would be passed to it (default module: pxr).

With --explain every candidate is printed, prefixed with '+' when selected
or '-' followed by the name of the rule that excluded it.`

var listToolFlag string
var listExplainFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list --tool TOOL [modules...]",
		Short: "List the files selected for a tool",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			selectArgs, err := parseSelectArgs(listToolFlag, args)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				SelectArgs: selectArgs,
				Explain:    listExplainFlag,
			})
		},
	}

	cmd.Flags().StringVarP(&listToolFlag, toolFlagName, "t", "", toolFlagUsage)
	cobra.CheckErr(cmd.MarkFlagRequired(toolFlagName))
	cmd.Flags().BoolVar(&listExplainFlag, "explain", false, "show excluded files and the rule that excluded them")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

const toolFlagUsage = "tool to select files for, either 'inline-namespaces' or 'disambiguate-symbols'"

func parseSelectArgs(toolName string, args []string) (domain.SelectArgs, error) {
	tool, err := m.ParseToolID(toolName)
	if err != nil {
		return domain.SelectArgs{}, err
	}

	layout, err := projectLayout()
	if err != nil {
		return domain.SelectArgs{}, err
	}

	return domain.SelectArgs{
		Layout:  layout,
		Modules: parseModules(args),
		Tool:    tool,
	}, nil
}
