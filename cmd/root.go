package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chandan24042001s/qa-mcp-dashboard/cmd/ai"
	"github.com/chandan24042001s/qa-mcp-dashboard/cmd/dashboard"
	"github.com/chandan24042001s/qa-mcp-dashboard/cmd/inspect"
	"github.com/chandan24042001s/qa-mcp-dashboard/cmd/report"
	"github.com/chandan24042001s/qa-mcp-dashboard/cmd/scan"
	"github.com/chandan24042001s/qa-mcp-dashboard/cmd/serve"
	"github.com/chandan24042001s/qa-mcp-dashboard/cmd/testrun"
	"github.com/chandan24042001s/qa-mcp-dashboard/cmd/version"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/config"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "qadash [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "qadash is a dashboard for the QA MCP analysis server.",
		Long: `qadash triggers AI analyses, code scans, test runs and reports on a QA MCP server
	and presents their findings as a tree and a table, in the terminal or in the browser.
	`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is %s)", config.DefaultConfigFile))

	rootCmd.AddCommand(ai.AICmd)
	rootCmd.AddCommand(scan.ScanCmd)
	rootCmd.AddCommand(testrun.TestCmd)
	rootCmd.AddCommand(report.ReportCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(dashboard.DashboardCmd)
	rootCmd.AddCommand(serve.ServeCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return errors.ExitCode(err)
	}
	return 0
}

func initConfig(cmd *cobra.Command, args []string) error {
	path, explicit := cfgFile, cfgFile != ""
	if !explicit {
		path = config.DefaultConfigFile
	}

	var err error
	AppConfig, err = config.LoadConfig(path, explicit)
	if err != nil {
		return &errors.CommandError{ExitCode: errors.ExitValidation, Err: err}
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		return &errors.CommandError{ExitCode: errors.ExitValidation, Err: fmt.Errorf("invalid config %q: %w", path, err)}
	}
	if !config.ColorEnabled(AppConfig) {
		color.NoColor = true
	}

	ai.Init(AppConfig)
	scan.Init(AppConfig)
	testrun.Init(AppConfig)
	report.Init(AppConfig)
	inspect.Init(AppConfig)
	dashboard.Init(AppConfig)
	serve.Init(AppConfig)
	version.Init(AppConfig)
	return nil
}
