// Package cli holds the flag handling and the run-and-render flow shared by the operation
// commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/export"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
)

// TargetOptions holds the target flags of an operation command.
type TargetOptions struct {
	RepoURL string `json:"repo_url,omitempty"`
	Branch  string `json:"branch,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Target converts the flags into an operation target.
func (o TargetOptions) Target() operation.Target {
	return operation.Target{RepoURL: o.RepoURL, Branch: o.Branch, Path: o.Path}
}

// OutputOptions holds the output flags of an operation command.
type OutputOptions struct {
	Format     string `json:"format,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
	Dedupe     bool   `json:"dedupe,omitempty"`
	NoProgress bool   `json:"no_progress,omitempty"`
}

// AddTargetFlags registers the target flags accepted by kinds.
func AddTargetFlags(fs *pflag.FlagSet, o *TargetOptions, kinds operation.TargetKinds) {
	if kinds&operation.AcceptsRepo != 0 {
		fs.StringVar(&o.RepoURL, "repo", "", "URL of the repository to analyse")
		fs.StringVar(&o.Branch, "branch", operation.DefaultBranch, "Branch of the repository")
	}
	if kinds&operation.AcceptsPath != 0 {
		fs.StringVar(&o.Path, "path", "", "Local path to analyse")
	}
}

// AddOutputFlags registers the output flags.
func AddOutputFlags(fs *pflag.FlagSet, o *OutputOptions) {
	fs.StringVarP(&o.Format, "format", "f", string(export.FormatText), fmt.Sprintf("Output format: %s", strings.Join(export.Formats(), ", ")))
	fs.StringVarP(&o.OutputPath, "output", "o", "", "File or folder to write the result to (stdout when empty)")
	fs.BoolVar(&o.Dedupe, "dedupe", false, "Drop repeated findings")
	fs.BoolVar(&o.NoProgress, "no-progress", false, "Do not show the progress spinner")
}

// HasFlags reports whether any flag of fs was set on the command line.
func HasFlags(fs *pflag.FlagSet) bool {
	changed := false
	fs.Visit(func(*pflag.Flag) { changed = true })
	return changed
}
