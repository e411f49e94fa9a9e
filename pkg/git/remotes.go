package git

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Clone clones a repository to the specified path.
func (g *realGit) Clone(params CloneParams) error {
	args := []string{"clone", params.RepoURL, params.TargetPath}

	cmd := exec.Command("git", args...)
	// A neutral working directory avoids running inside another worktree
	cmd.Dir = os.TempDir()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git clone failed: %w (command: git %s, output: %s)",
			err, strings.Join(args, " "), string(output))
	}
	return nil
}

// GetDefaultBranch gets the default branch name from a remote repository.
func (g *realGit) GetDefaultBranch(remoteURL string) (string, error) {
	cmd := exec.Command("git", "ls-remote", "--symref", remoteURL, "HEAD")
	cmd.Dir = os.TempDir()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git ls-remote failed: %w (command: git ls-remote --symref %s HEAD, output: %s)",
			err, remoteURL, string(output))
	}

	// Output format: "ref: refs/heads/main\tHEAD"
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "ref:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 2 && strings.HasPrefix(parts[1], "refs/heads/") {
			return strings.TrimPrefix(parts[1], "refs/heads/"), nil
		}
	}

	return "", fmt.Errorf("could not determine default branch from remote URL: %s", remoteURL)
}

// GetRemoteURL gets the URL of a remote.
func (g *realGit) GetRemoteURL(repoPath, remoteName string) (string, error) {
	cmd := exec.Command("git", "remote", "get-url", remoteName)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git remote get-url failed: %w (command: git remote get-url %s, output: %s)",
			err, remoteName, string(output))
	}
	return strings.TrimSpace(string(output)), nil
}
