package git

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// RepositoryMetadata describes the git checkout a local path target lives in.
type RepositoryMetadata struct {
	BranchName     *string
	CommitHash     *string
	RemoteURL      *string
	Subfolder      string
	RepoRootFolder string
}

// ShortCommit returns the first seven characters of the commit hash.
func (md *RepositoryMetadata) ShortCommit() string {
	if md == nil || md.CommitHash == nil {
		return ""
	}
	if len(*md.CommitHash) > 7 {
		return (*md.CommitHash)[:7]
	}
	return *md.CommitHash
}

// Branch returns the checked out branch, or "" for a detached head.
func (md *RepositoryMetadata) Branch() string {
	if md == nil || md.BranchName == nil {
		return ""
	}
	return *md.BranchName
}

// Remote returns the origin URL without a ".git" suffix.
func (md *RepositoryMetadata) Remote() string {
	if md == nil || md.RemoteURL == nil {
		return ""
	}
	return *md.RemoteURL
}

// String describes the checkout as "branch@commit".
func (md *RepositoryMetadata) String() string {
	branch, commit := md.Branch(), md.ShortCommit()
	switch {
	case branch != "" && commit != "":
		return branch + "@" + commit
	case commit != "":
		return commit
	default:
		return branch
	}
}

// CollectRepositoryMetadata collects the branch, commit, origin remote and subfolder of the
// repository containing sourceFolder. The returned metadata is never nil; on error only the
// root folder is set.
func CollectRepositoryMetadata(sourceFolder string) (*RepositoryMetadata, error) {
	if sourceFolder == "" {
		return &RepositoryMetadata{}, fmt.Errorf("source folder is not set")
	}

	if absSource, err := filepath.Abs(sourceFolder); err == nil {
		sourceFolder = absSource
	}

	md := &RepositoryMetadata{
		RepoRootFolder: filepath.Clean(sourceFolder),
	}

	repoRootFolder, err := findGitRepositoryPath(sourceFolder)
	if err != nil {
		return md, err
	}

	md.RepoRootFolder = filepath.Clean(repoRootFolder)

	repo, err := git.PlainOpen(repoRootFolder)
	if err != nil {
		return md, fmt.Errorf("failed to open repository: %w", err)
	}

	if rel, err := filepath.Rel(repoRootFolder, sourceFolder); err == nil && rel != "." {
		md.Subfolder = filepath.ToSlash(rel)
	}

	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			branchName := head.Name().Short()
			md.BranchName = &branchName
		}

		hash := head.Hash().String()
		md.CommitHash = &hash
	}

	if remote, err := repo.Remote("origin"); err == nil {
		if cfg := remote.Config(); cfg != nil && len(cfg.URLs) > 0 {
			remoteURL := strings.TrimSuffix(cfg.URLs[0], ".git")
			md.RemoteURL = &remoteURL
		}
	}

	return md, nil
}
