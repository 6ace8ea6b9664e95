package operation

import (
	"path/filepath"
	"strings"

	"github.com/gitsight/go-vcsurl"
)

// DescribeRepository returns a short display name for a repository URL, "owner/name" when the
// URL can be parsed and the trimmed input otherwise.
func DescribeRepository(repoURL string) string {
	repoURL = strings.TrimSpace(repoURL)
	if repoURL == "" {
		return ""
	}

	info, err := vcsurl.Parse(repoURL)
	if err != nil || info == nil {
		return strings.TrimSuffix(repoURL, ".git")
	}
	if info.FullName != "" {
		return info.FullName
	}
	return info.Name
}

// Describe returns a short display name for a resolved target.
func Describe(r Resolved) string {
	if r.IsPath() {
		return filepath.Base(filepath.Clean(r.Path))
	}
	return DescribeRepository(r.RepoURL) + " (" + r.Branch + ")"
}
