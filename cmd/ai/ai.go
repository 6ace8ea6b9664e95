package ai

import (
	"fmt"
	"strings"

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

	exampleAIUsage = `  # Predict defects in a remote repository
  qadash ai defect-prediction --repo https://github.com/user/repo.git --branch develop

  # Get insights about a local checkout and save them as SARIF
  qadash ai code-insights --path ./my_project --format sarif --output ./reports

  # Analyze test gaps and print the raw findings as JSON
  qadash ai test-gap-analysis --path ./my_project --format json`
)

// AICmd represents the ai command.
var AICmd = &cobra.Command{
	Use:                   "ai OPERATION {--repo URL [--branch BRANCH] | --path PATH} [--format/-f FORMAT] [--output/-o PATH] [--dedupe]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleAIUsage,
	Short:                 "Run an AI analysis on a repository or a local path",
	Long:                  generateLongDescription(),
	RunE:                  runAICommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runAICommand executes the ai command.
func runAICommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !cli.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	lg := logger.NewLogger(AppConfig, "core-ai")

	op, err := validateAIArgs(args)
	if err != nil {
		lg.Error("invalid ai arguments", "error", err)
		return errors.NewCommandError(errors.NewValidationError("invalid arguments: %v", err))
	}

	runner := cli.NewRunner(AppConfig, lg, version.CoreVersion)
	runner.Stdout = cmd.OutOrStdout()
	return runner.Run(cmd.Context(), op, targetOptions.Target(), outputOptions)
}

func generateLongDescription() string {
	var b strings.Builder
	b.WriteString("Runs one of the AI analyses of the QA backend and renders its findings.\n\nOperations:\n")
	for _, op := range operation.InGroup(operation.GroupAI) {
		fmt.Fprintf(&b, "  %-24s %s\n", strings.ReplaceAll(op.ID, "_", "-"), op.Description)
	}
	return b.String()
}

func init() {
	cli.AddTargetFlags(AICmd.Flags(), &targetOptions, operation.AcceptsAny)
	cli.AddOutputFlags(AICmd.Flags(), &outputOptions)
	AICmd.Flags().BoolP("help", "h", false, "Show help for ai command.")
}
