package scan

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
	AppConfig *config.Config

	repositoryTarget cli.TargetOptions
	repositoryOutput cli.OutputOptions
	filesTarget      cli.TargetOptions
	filesOutput      cli.OutputOptions

	exampleScanUsage = `  # Scan a remote repository
  qadash scan repository --repo https://github.com/user/repo.git --branch main

  # Scan local files and save the findings as a workbook
  qadash scan files --path ./my_project --format xlsx --output ./reports/scan.xlsx`
)

// ScanCmd groups the code scan commands.
var ScanCmd = &cobra.Command{
	Use:                   "scan {repository|files} [flags]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleScanUsage,
	Short:                 "Scan a repository or local files for potential issues",
}

var repositoryCmd = &cobra.Command{
	Use:                   "repository --repo URL [--branch BRANCH] [--format/-f FORMAT] [--output/-o PATH] [--dedupe]",
	Aliases:               []string{"repo"},
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Short:                 "Scan a remote repository for potential issues",
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd, operation.ScanRepository, repositoryTarget, repositoryOutput)
	},
}

var filesCmd = &cobra.Command{
	Use:                   "files --path PATH [--format/-f FORMAT] [--output/-o PATH] [--dedupe]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Short:                 "Scan local files for potential issues",
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd, operation.ScanFiles, filesTarget, filesOutput)
	},
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func runScan(cmd *cobra.Command, id string, target cli.TargetOptions, output cli.OutputOptions) error {
	if !cli.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	lg := logger.NewLogger(AppConfig, "core-scan")
	op, err := operation.Lookup(id)
	if err != nil {
		return errors.NewCommandError(err)
	}

	runner := cli.NewRunner(AppConfig, lg, version.CoreVersion)
	runner.Stdout = cmd.OutOrStdout()
	return runner.Run(cmd.Context(), op, target.Target(), output)
}

func init() {
	cli.AddTargetFlags(repositoryCmd.Flags(), &repositoryTarget, operation.AcceptsRepo)
	cli.AddOutputFlags(repositoryCmd.Flags(), &repositoryOutput)
	cli.AddTargetFlags(filesCmd.Flags(), &filesTarget, operation.AcceptsPath)
	cli.AddOutputFlags(filesCmd.Flags(), &filesOutput)

	ScanCmd.AddCommand(repositoryCmd, filesCmd)
}
