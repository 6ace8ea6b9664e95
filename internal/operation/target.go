package operation

import (
	"strings"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
)

// DefaultBranch is used when a repository is given without a branch.
const DefaultBranch = "main"

// Target is the user input of an operation as entered.
type Target struct {
	RepoURL string `json:"repoUrl,omitempty"`
	Branch  string `json:"branch,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Resolved is a validated target in exactly one form.
type Resolved struct {
	Kind    TargetKinds
	RepoURL string
	Branch  string
	Path    string
}

// IsPath reports whether the target is a local path.
func (r Resolved) IsPath() bool { return r.Kind == AcceptsPath }

// String describes the target for titles and logs.
func (r Resolved) String() string {
	if r.IsPath() {
		return r.Path
	}
	return r.RepoURL + "@" + r.Branch
}

// Resolve trims the input and picks the form used by op. A path wins over a repository when
// op accepts both. It returns a ValidationError when no usable form was given.
func (t Target) Resolve(op Operation) (Resolved, error) {
	path := strings.TrimSpace(t.Path)
	repo := strings.TrimSpace(t.RepoURL)

	if path != "" && op.AcceptsKind(AcceptsPath) {
		return Resolved{Kind: AcceptsPath, Path: path}, nil
	}
	if repo != "" && op.AcceptsKind(AcceptsRepo) {
		branch := strings.TrimSpace(t.Branch)
		if branch == "" {
			branch = DefaultBranch
		}
		return Resolved{Kind: AcceptsRepo, RepoURL: repo, Branch: branch}, nil
	}

	msg := op.Missing
	if msg == "" {
		msg = missingAny
	}
	return Resolved{}, &errors.ValidationError{Message: msg}
}
