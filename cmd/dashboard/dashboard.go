package dashboard

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/banner"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/client"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/config"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/logger"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
)

// Global variables for configuration and command arguments
var (
	AppConfig *config.Config
	dedupe    bool
)

// DashboardCmd represents the interactive terminal dashboard.
var DashboardCmd = &cobra.Command{
	Use:                   "dashboard [--dedupe]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Short:                 "Open the interactive terminal dashboard",
	Args:                  cobra.NoArgs,
	RunE:                  runDashboardCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runDashboardCommand executes the dashboard command.
func runDashboardCommand(cmd *cobra.Command, args []string) error {
	lg := logger.NewLogger(AppConfig, "core-dashboard")
	colored := config.ColorEnabled(AppConfig) && !color.NoColor

	out := cmd.OutOrStdout()
	banner.Print(out, AppConfig.Dashboard.Title)

	caller := client.New(AppConfig, lg.Named("client"))
	d := session.NewDashboard(caller, lg, dedupe || AppConfig.Output.Dedupe)
	shell := NewShell(d, promptuiPrompter{stdin: os.Stdin, stdout: os.Stdout}, out, colored, true)

	if err := shell.Run(cmd.Context()); err != nil {
		lg.Error("dashboard stopped", "error", err)
		return errors.NewCommandError(err)
	}
	return nil
}

func init() {
	DashboardCmd.Flags().BoolVar(&dedupe, "dedupe", false, "Drop repeated findings")
}
