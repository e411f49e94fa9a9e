// Package forgemod contributes clone-target resolution to the project:clone
// pipeline: normalizing the repository URL into the project identity and
// resolving the default branch, preferring the hosting service's API and
// falling back to a Git remote query for unsupported hosts.
package forgemod

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/workdeck/pkg/config"
	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/forge"
	"github.com/lerenn/workdeck/pkg/git"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/logger"
)

const moduleName = "forge"

// Params contains parameters for creating the forge module.
type Params struct {
	Forge  forge.ManagerInterface
	Git    git.Git
	Config config.Config
	Logger logger.Logger
}

// Module contributes the clone-target resolution handler.
type Module struct {
	forge  forge.ManagerInterface
	git    git.Git
	config config.Config
	logger logger.Logger
}

// New creates the forge module.
func New(params Params) *Module {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Module{
		forge:  params.Forge,
		git:    params.Git,
		config: params.Config,
		logger: log,
	}
}

// Module returns the dispatch contributions.
func (m *Module) Module() dispatch.Module {
	return dispatch.Module{
		Name: moduleName,
		Hooks: []dispatch.HookRegistration{
			{Intent: intents.ProjectClone, Point: intents.PointValidate, Handler: m.cloneTargetResolve()},
		},
	}
}

// cloneTargetResolve normalizes the requested URL into the project identity
// and resolves the repository metadata needed by the later hooks.
func (m *Module) cloneTargetResolve() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "clone-target-resolve",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.ProjectClonePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: project:clone", ErrUnexpectedPayload)
			}
			if payload.RepositoryURL == "" {
				return dispatch.HandlerResult{}, ErrRepositoryURLEmpty
			}

			projectID, err := NormalizeProjectID(payload.RepositoryURL)
			if err != nil {
				return dispatch.HandlerResult{}, err
			}

			fields := map[string]any{
				intents.FieldProjectID:   projectID,
				intents.FieldProjectPath: filepath.Join(m.config.ProjectsDir, projectID),
			}

			defaultBranch, info, err := m.resolveMetadata(payload.RepositoryURL)
			if err != nil {
				return dispatch.HandlerResult{}, err
			}
			fields[intents.FieldDefaultBranch] = defaultBranch
			if info != nil {
				fields[intents.FieldRepoInfo] = info
			}

			return dispatch.HandlerResult{Fields: fields}, nil
		},
	}
}

// resolveMetadata answers the default branch, via the forge API when the
// host is supported and a plain remote query otherwise.
func (m *Module) resolveMetadata(repoURL string) (string, *forge.RepositoryInfo, error) {
	hostForge, err := m.forge.GetForgeForURL(repoURL)
	if err == nil {
		info, infoErr := hostForge.GetRepositoryInfo(repoURL)
		if infoErr != nil {
			return "", nil, fmt.Errorf("failed to fetch repository info: %w", infoErr)
		}
		return info.DefaultBranch, info, nil
	}

	m.logger.Logf("no forge supports %s, querying remote directly", repoURL)
	defaultBranch, err := m.git.GetDefaultBranch(repoURL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve default branch: %w", err)
	}
	return defaultBranch, nil, nil
}

// NormalizeProjectID reduces a repository URL to the host/owner/name form
// used as the project identifier and local path segment. It accepts https,
// ssh scp-like and bare host forms, with or without a .git suffix.
func NormalizeProjectID(repoURL string) (string, error) {
	normalized := strings.TrimSpace(repoURL)
	normalized = strings.TrimSuffix(normalized, "/")
	normalized = strings.TrimSuffix(normalized, ".git")

	for _, prefix := range []string{"https://", "http://", "ssh://", "git://"} {
		if strings.HasPrefix(normalized, prefix) {
			normalized = strings.TrimPrefix(normalized, prefix)
			break
		}
	}

	// scp-like form: git@host:owner/name
	if at := strings.Index(normalized, "@"); at >= 0 {
		normalized = normalized[at+1:]
		normalized = strings.Replace(normalized, ":", "/", 1)
	}

	parts := strings.Split(normalized, "/")
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", fmt.Errorf("%w: %s", ErrRepositoryURLInvalid, repoURL)
	}
	return strings.Join(parts[:3], "/"), nil
}
