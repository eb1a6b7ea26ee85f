// Package cmd provides the root command and CLI setup for usdrefactor.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"usdrefactor.dev/pkg/usdrefactor/internal/adapter"
	"usdrefactor.dev/pkg/usdrefactor/internal/controller"
	"usdrefactor.dev/pkg/usdrefactor/internal/domain"
	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

// errMissingProject is the usage error for a command run without --path.
var errMissingProject = errors.New("required flag \"path\" not set")

var fsAdapter adapter.SourceFSAdapter
var toolRunner adapter.ToolRunnerAdapter
var compileDBStore adapter.CompileDBStore
var selector domain.Selector
var harness domain.Harness
var patcher domain.Patcher
var workflow domain.Workflow
var ui controller.UI

var projectPathFlag string
var binDirFlag string
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	toolRunner = adapter.NewLocalToolRunnerAdapter()
	compileDBStore = adapter.NewCompileDBStore(fsAdapter)
	selector = domain.NewSelector(fsAdapter)
	harness = domain.NewHarness(fsAdapter, toolRunner)
	patcher = domain.NewPatcher(fsAdapter, compileDBStore)
	workflow = domain.NewWorkflow(toolRunner, ui, selector, harness, patcher)
}

const rootLongDescription = `usdrefactor drives the Clang based refactoring tools over a USD checkout.

It selects the source files each tool may safely rewrite, checks the tools
against golden fixtures and patches the compilation database so diagnostics
point at the source tree instead of staged build copies.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "usdrefactor",
		Short:         "Refactoring tool driver for USD",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&projectPathFlag, pathFlagName, "p", viper.GetString(projectPathKey), "path to USD's root directory")
	bindFlagToConfig(flags.Lookup(pathFlagName), projectPathKey)

	flags.StringVar(&binDirFlag, binDirFlagName, viper.GetString(binDirKey), "directory holding the refactoring tool executables")
	bindFlagToConfig(flags.Lookup(binDirFlagName), binDirKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "display verbose logs")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// projectLayout resolves the configured locations into a Layout. The project
// path is required.
func projectLayout() (m.Layout, error) {
	project := strings.TrimSpace(viper.GetString(projectPathKey))
	if project == "" {
		return m.Layout{}, errMissingProject
	}

	return m.Layout{
		ProjectPath: m.Path(project),
		BinDir:      m.Path(viper.GetString(binDirKey)),
		FixturesDir: m.Path(viper.GetString(testsDirKey)),
	}, nil
}

func parseModules(args []string) []m.ModulePath {
	if len(args) == 0 {
		args = viper.GetStringSlice(modulesKey)
	}

	modules := make([]m.ModulePath, 0, len(args))
	for _, arg := range args {
		modules = append(modules, m.ModulePath(arg))
	}

	return modules
}
