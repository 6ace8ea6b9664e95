package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/client"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/config"
	qaerrors "github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/logger"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/server"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
)

// shutdownTimeout bounds the graceful shutdown of the HTTP server.
const shutdownTimeout = 10 * time.Second

// RunOptionsServe holds the arguments for the serve command.
type RunOptionsServe struct {
	Listen string
	Dedupe bool
}

// Global variables for configuration and command arguments
var (
	AppConfig    *config.Config
	serveOptions RunOptionsServe

	exampleServeUsage = `  # Serve the dashboard on the configured address
  qadash serve

  # Serve the dashboard on all interfaces
  qadash serve --listen 0.0.0.0:3000`
)

// ServeCmd represents the serve command.
var ServeCmd = &cobra.Command{
	Use:                   "serve [--listen ADDR] [--dedupe]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleServeUsage,
	Short:                 "Serve the dashboard in the browser",
	Args:                  cobra.NoArgs,
	RunE:                  runServeCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runServeCommand executes the serve command.
func runServeCommand(cmd *cobra.Command, args []string) error {
	lg := logger.NewLogger(AppConfig, "core-serve")

	listen, err := validateServeArgs(&serveOptions, AppConfig)
	if err != nil {
		lg.Error("invalid serve arguments", "error", err)
		return qaerrors.NewCommandError(qaerrors.NewValidationError("invalid arguments: %v", err))
	}

	ln, err := net.Listen("tcp", listen)
	if err != nil {
		lg.Error("failed to listen", "address", listen, "error", err)
		return qaerrors.NewCommandError(fmt.Errorf("failed to listen on %s: %w", listen, err))
	}

	if err := serve(cmd.Context(), ln, lg); err != nil {
		return qaerrors.NewCommandError(err)
	}
	return nil
}

// serve runs the dashboard on ln until ctx is cancelled, then shuts down gracefully.
func serve(ctx context.Context, ln net.Listener, lg hclog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	caller := client.New(AppConfig, lg.Named("client"))
	dashboard := session.NewDashboard(caller, lg, serveOptions.Dedupe || AppConfig.Output.Dedupe)
	srv, err := server.New(ctx, dashboard, lg.Named("http"), AppConfig.Dashboard.Title)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("dashboard listening", "url", "http://"+ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("dashboard server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		lg.Info("shutting down dashboard")
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		err := httpServer.Shutdown(shutdownCtx)
		cancel()
		srv.Wait()
		return err
	})

	return g.Wait()
}

func init() {
	ServeCmd.Flags().StringVar(&serveOptions.Listen, "listen", "", "Address to listen on (defaults to dashboard.listen)")
	ServeCmd.Flags().BoolVar(&serveOptions.Dedupe, "dedupe", false, "Drop repeated findings")
}
