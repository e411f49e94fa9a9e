package intents

// Field names contributed to the hook context by handlers. Field names are
// claimed once per dispatch; two modules writing the same field is a wiring
// bug the engine rejects at runtime.
const (
	FieldProject       = "project"       // *state.Project loaded by the persistence module
	FieldProjectID     = "projectID"     // normalized project identifier
	FieldProjectPath   = "projectPath"   // local checkout path of the project
	FieldWorkspace     = "workspace"     // *state.Workspace loaded by the persistence module
	FieldWorkspacePath = "workspacePath" // worktree directory of the workspace
	FieldBranch        = "branch"        // branch the workspace checks out
	FieldBaseBranch    = "baseBranch"    // branch the workspace forks from
	FieldAgentPort     = "agentPort"     // port of the workspace agent server
	FieldEnvVars       = "envVars"       // map[string]string for the workspace URL
	FieldWorkspaceURL  = "workspaceUrl"  // URL loaded into the workspace view
	FieldRepoInfo      = "repoInfo"      // *forge.RepositoryInfo of a clone target
	FieldDefaultBranch = "defaultBranch" // default branch of a clone target
	FieldActiveProject = "activeProject" // project identifier restored on start
)
