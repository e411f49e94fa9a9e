// Package git provides the narrow set of Git command executions used for
// project checkouts and workspace worktrees.
package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// CreateBranchFromParams contains parameters for CreateBranchFrom.
type CreateBranchFromParams struct {
	RepoPath   string
	NewBranch  string
	FromBranch string
}

// CloneParams contains parameters for Clone.
type CloneParams struct {
	RepoURL    string
	TargetPath string
}

// Git interface provides Git command execution capabilities.
type Git interface {
	// Clone clones a repository to the specified path.
	Clone(params CloneParams) error

	// IsClean checks if the repository has no uncommitted changes.
	IsClean(repoPath string) (bool, error)

	// BranchExists checks if a branch exists locally or remotely.
	BranchExists(repoPath, branch string) (bool, error)

	// CreateBranchFrom creates a new branch from a specific branch.
	CreateBranchFrom(params CreateBranchFromParams) error

	// CreateWorktree creates a new worktree for the specified branch.
	CreateWorktree(repoPath, worktreePath, branch string) error

	// RemoveWorktree removes a worktree from Git's tracking.
	RemoveWorktree(repoPath, worktreePath string, force bool) error

	// GetDefaultBranch gets the default branch name from a remote repository.
	GetDefaultBranch(remoteURL string) (string, error)

	// GetRemoteURL gets the URL of a remote.
	GetRemoteURL(repoPath, remoteName string) (string, error)
}

type realGit struct{}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
