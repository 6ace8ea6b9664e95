package report

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

	exampleReportUsage = `  # Tech debt report of a remote repository
  qadash report tech-debt --repo https://github.com/user/repo.git

  # Tech debt report of a local checkout as SARIF
  qadash report tech-debt --path ./my_project --format sarif --output ./reports`
)

// ReportCmd groups the report commands.
var ReportCmd = &cobra.Command{
	Use:                   "report tech-debt [flags]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleReportUsage,
	Short:                 "Generate reports through the QA backend",
}

var techDebtCmd = &cobra.Command{
	Use:                   "tech-debt {--repo URL [--branch BRANCH] | --path PATH} [--format/-f FORMAT] [--output/-o PATH] [--dedupe]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Short:                 "Technical debt score, risk level and recommendations",
	Args:                  cobra.NoArgs,
	RunE:                  runTechDebtCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runTechDebtCommand executes the tech-debt command.
func runTechDebtCommand(cmd *cobra.Command, args []string) error {
	if !cli.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	lg := logger.NewLogger(AppConfig, "core-report")
	op, err := operation.Lookup(operation.TechDebt)
	if err != nil {
		return errors.NewCommandError(err)
	}

	runner := cli.NewRunner(AppConfig, lg, version.CoreVersion)
	runner.Stdout = cmd.OutOrStdout()
	return runner.Run(cmd.Context(), op, targetOptions.Target(), outputOptions)
}

func init() {
	cli.AddTargetFlags(techDebtCmd.Flags(), &targetOptions, operation.AcceptsAny)
	cli.AddOutputFlags(techDebtCmd.Flags(), &outputOptions)
	ReportCmd.AddCommand(techDebtCmd)
}
