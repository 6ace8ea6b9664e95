package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/client"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/config"
	qaerrors "github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/export"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/files"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/git"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/progress"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
)

// Runner executes operations and renders their results.
type Runner struct {
	Config  *config.Config
	Logger  hclog.Logger
	Caller  client.Caller
	Stdout  io.Writer
	Version string
	// Progress enables the spinner on interactive terminals.
	Progress bool
}

// NewRunner creates a runner calling the configured backend and writing to stdout.
func NewRunner(cfg *config.Config, logger hclog.Logger, version string) *Runner {
	return &Runner{
		Config:   cfg,
		Logger:   logger,
		Caller:   client.New(cfg, logger.Named("client")),
		Stdout:   os.Stdout,
		Version:  version,
		Progress: true,
	}
}

// Run executes op on target and renders the result as requested by out. Failures are
// returned as *errors.CommandError carrying the exit code.
func (r *Runner) Run(ctx context.Context, op operation.Operation, target operation.Target, out OutputOptions) error {
	format, err := ValidateOutput(&out)
	if err != nil {
		return qaerrors.NewCommandError(qaerrors.NewValidationError("invalid arguments: %v", err))
	}

	dedupe := out.Dedupe || r.Config.Output.Dedupe
	dashboard := session.NewDashboard(r.Caller, r.Logger, dedupe)

	indicator := progress.New(r.Progress && !out.NoProgress, session.LoadingMessage+" "+op.Name)
	result, err := dashboard.Run(ctx, op, target)
	indicator.Done()
	if err != nil {
		r.Logger.Error("operation failed", "operation", op.ID, "error", err)
		return qaerrors.NewCommandError(err)
	}

	return r.Render(result, format, out.OutputPath)
}

// Render writes result in format to outputPath, or to stdout when outputPath is empty.
func (r *Runner) Render(result *session.Result, format export.Format, outputPath string) error {
	opts := export.Options{
		Repository: RepositoryFor(result.Target, r.Logger),
		Version:    r.Version,
	}

	if outputPath == "" {
		opts.Colored = config.ColorEnabled(r.Config) && !color.NoColor
		return export.Write(r.Stdout, format, result, opts)
	}

	path, _, err := files.DetermineFileFullPath(outputPath, DefaultFileName(result, format, time.Now()))
	if err != nil {
		return qaerrors.NewCommandError(err)
	}
	if err := files.WriteFile(path, func(w io.Writer) error {
		return export.Write(w, format, result, opts)
	}); err != nil {
		r.Logger.Error("failed to save result", "path", path, "error", err)
		return qaerrors.NewCommandError(fmt.Errorf("failed to save result to %q: %w", path, err))
	}

	r.Logger.Info("result saved", "path", path, "format", format, "findings", len(result.Findings))
	return nil
}

// RepositoryFor collects git metadata for a local path target. It returns nil for
// repository targets and for paths outside a git checkout.
func RepositoryFor(target operation.Resolved, logger hclog.Logger) *git.RepositoryMetadata {
	if !target.IsPath() || strings.TrimSpace(target.Path) == "" {
		return nil
	}
	md, err := git.CollectRepositoryMetadata(target.Path)
	if err != nil {
		logger.Debug("unable to collect repository metadata", "path", target.Path, "error", err)
		return nil
	}
	return md
}

// DefaultFileName names an output file written into a folder.
func DefaultFileName(result *session.Result, format export.Format, now time.Time) string {
	name := result.Operation.ID
	if name == "" {
		name = "result"
	}
	return fmt.Sprintf("%s-%s.%s", name, now.UTC().Format("20060102-150405"), fileExtension(format))
}

func fileExtension(format export.Format) string {
	if format == export.FormatText || format == "" {
		return "txt"
	}
	return string(format)
}
