package forge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain for URL validation.
	GitHubDomain = "github.com"
)

// requestTimeout bounds every GitHub API call.
const requestTimeout = 10 * time.Second

// githubURLRegexp matches HTTPS, SSH and short owner/repo GitHub URLs.
var githubURLRegexp = regexp.MustCompile(
	`^(?:https://github\.com/|git@github\.com:|github\.com/)([^/]+)/([^/]+?)(?:\.git)?/?$`)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub() *GitHub {
	var client *github.Client

	// Add authentication if available
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{
		client: client,
	}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// SupportsURL reports whether the URL points at a GitHub repository. This
// handles both HTTPS (https://github.com/owner/repo.git) and SSH
// (git@github.com:owner/repo.git) URLs.
func (g *GitHub) SupportsURL(repoURL string) bool {
	return strings.Contains(repoURL, GitHubDomain)
}

// GetRepositoryInfo fetches repository metadata from the GitHub API.
func (g *GitHub) GetRepositoryInfo(repoURL string) (*RepositoryInfo, error) {
	owner, name, err := g.parseRepositoryURL(repoURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo, resp, err := g.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, owner, name)
	}

	return &RepositoryInfo{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		DefaultBranch: repo.GetDefaultBranch(),
		Private:       repo.GetPrivate(),
	}, nil
}

// parseRepositoryURL extracts owner and repository name from a GitHub URL.
func (g *GitHub) parseRepositoryURL(repoURL string) (string, string, error) {
	matches := githubURLRegexp.FindStringSubmatch(strings.TrimSpace(repoURL))
	if matches == nil {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidRepositoryURL, repoURL)
	}
	return matches[1], matches[2], nil
}

// handleGitHubError maps GitHub API failures to forge errors.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, owner, name string) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s/%s", ErrRepositoryNotFound, owner, name)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			// Check if it's rate limiting
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to fetch repository: %w", err)
}
