package testrun

import (
	"github.com/spf13/cobra"

	"github.com/chandan24042001s/qa-mcp-dashboard/cmd/version"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/cli"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/config"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/logger"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
)

// Global variables for configuration and command arguments
var (
	AppConfig     *config.Config
	targetOptions cli.TargetOptions
	outputOptions cli.OutputOptions

	exampleTestUsage = `  # Execute the tests of a local project
  qadash test run --path ./my_project/tests

  # Save the test report as HTML
  qadash test run --path ./my_project/tests --format html --output ./reports`
)

// TestCmd groups the test execution commands.
var TestCmd = &cobra.Command{
	Use:                   "test run --path PATH [flags]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleTestUsage,
	Short:                 "Execute test suites through the QA backend",
}

var runCmd = &cobra.Command{
	Use:                   "run --path PATH [--format/-f FORMAT] [--output/-o PATH] [--dedupe]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Short:                 "Execute the test suite in a directory and report pass/fail status",
	Args:                  cobra.NoArgs,
	RunE:                  runTestCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runTestCommand executes the test run command.
func runTestCommand(cmd *cobra.Command, args []string) error {
	if !cli.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	lg := logger.NewLogger(AppConfig, "core-test")
	op, err := operation.Lookup(operation.RunTests)
	if err != nil {
		return errors.NewCommandError(err)
	}

	runner := cli.NewRunner(AppConfig, lg, version.CoreVersion)
	runner.Stdout = cmd.OutOrStdout()
	return runner.Run(cmd.Context(), op, targetOptions.Target(), outputOptions)
}

func init() {
	cli.AddTargetFlags(runCmd.Flags(), &targetOptions, operation.AcceptsPath)
	cli.AddOutputFlags(runCmd.Flags(), &outputOptions)
	TestCmd.AddCommand(runCmd)
}
