package inspect

import (
	"github.com/spf13/cobra"

	"github.com/chandan24042001s/qa-mcp-dashboard/cmd/version"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/cli"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/config"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/logger"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
)

// RunOptionsInspect holds the arguments for the inspect command.
type RunOptionsInspect struct {
	Operation string
	Output    cli.OutputOptions
}

// Global variables for configuration and command arguments
var (
	AppConfig      *config.Config
	inspectOptions RunOptionsInspect

	exampleInspectUsage = `  # Render a saved backend response
  qadash inspect ./defect-prediction.json

  # Render a YAML document as the result of a given operation and export it to SARIF
  qadash inspect ./insights.yaml --operation code-insights --format sarif --output ./reports`
)

// InspectCmd represents the inspect command.
var InspectCmd = &cobra.Command{
	Use:                   "inspect PATH [--operation OPERATION] [--format/-f FORMAT] [--output/-o PATH] [--dedupe]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleInspectUsage,
	Short:                 "Render a saved JSON or YAML result document without calling the backend",
	RunE:                  runInspectCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runInspectCommand executes the inspect command.
func runInspectCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !cli.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	lg := logger.NewLogger(AppConfig, "core-inspect")

	path, op, err := validateInspectArgs(&inspectOptions, args)
	if err != nil {
		lg.Error("invalid inspect arguments", "error", err)
		return errors.NewCommandError(errors.NewValidationError("invalid arguments: %v", err))
	}
	format, err := cli.ValidateOutput(&inspectOptions.Output)
	if err != nil {
		lg.Error("invalid inspect arguments", "error", err)
		return errors.NewCommandError(errors.NewValidationError("invalid arguments: %v", err))
	}

	doc, err := readDocument(path)
	if err != nil {
		lg.Error("failed to read result document", "path", path, "error", err)
		return errors.NewCommandError(errors.NewValidationError("failed to read %q: %v", path, err))
	}

	dedupe := inspectOptions.Output.Dedupe || AppConfig.Output.Dedupe
	result := session.NewResult(op, operation.Resolved{}, doc, dedupe)
	lg.Debug("document loaded", "path", path, "findings", len(result.Findings))

	runner := cli.NewRunner(AppConfig, lg, version.CoreVersion)
	runner.Stdout = cmd.OutOrStdout()
	return runner.Render(result, format, inspectOptions.Output.OutputPath)
}

func init() {
	InspectCmd.Flags().StringVar(&inspectOptions.Operation, "operation", "", "Operation that produced the document, used for titles and file names")
	cli.AddOutputFlags(InspectCmd.Flags(), &inspectOptions.Output)
	InspectCmd.Flags().BoolP("help", "h", false, "Show help for inspect command.")
}
