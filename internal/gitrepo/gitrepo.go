// Package gitrepo drives the version-control side of a run: checking that
// the GitHub remote exists, and turning the finished package directory into
// a committed repository.
package gitrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/inlavigo/ggcreate/internal/errors"
	"github.com/inlavigo/ggcreate/internal/exec"
)

// MainBranch is the branch name every new repository is renamed to.
const MainBranch = "main"

// CommitMessage is the message of the initial commit.
const CommitMessage = "Initial commit"

// Repo invokes git through a CommandRunner.
type Repo struct {
	runner exec.CommandRunner
}

type gitStep struct {
	name string
	args []string
}

// NewRepo creates a Repo backed by the given runner.
func NewRepo(runner exec.CommandRunner) *Repo {
	return &Repo{runner: runner}
}

// CheckOrigin verifies that the remote repository at repoURL exists by
// listing its refs. A missing repository yields a NotFound error telling the
// user where to create it; any other failure is an ExternalTool error with
// the captured stderr.
func (r *Repo) CheckOrigin(ctx context.Context, repoURL string) error {
	result, err := r.runner.Run(ctx, "git", []string{"ls-remote", repoURL + ".git"}, "")
	if err != nil {
		return errors.Wrap(errors.ExternalTool, "running git ls-remote", err)
	}
	if result.ExitCode == 0 {
		return nil
	}

	// GitHub answers "remote: Repository not found." for missing repos.
	if strings.Contains(strings.ToLower(result.Stderr), "not found") {
		return errors.Newf(errors.NotFound,
			"remote repository %s does not exist yet, create it at https://github.com/new first",
			repoURL)
	}
	return errors.Tool(
		fmt.Sprintf("git ls-remote %s failed with exit code %d", repoURL, result.ExitCode),
		result.Stderr)
}

// InitRepo initializes a git repository in packageDir: init, rename the
// default branch to main, suppress the ignored-file advice, stage
// everything, and commit. When repoURL is non-empty it also registers the
// origin remote and performs a dry-run push of main.
func (r *Repo) InitRepo(ctx context.Context, packageDir, repoURL string) error {
	steps := []gitStep{
		{"git init", []string{"init"}},
		{"git branch rename", []string{"branch", "-M", MainBranch}},
		{"git config", []string{"config", "advice.addIgnoredFile", "false"}},
		{"git add", []string{"add", "."}},
		{"git commit", []string{"commit", "-m", CommitMessage}},
	}
	if repoURL != "" {
		steps = append(steps,
			gitStep{"git remote add", []string{"remote", "add", "origin", repoURL + ".git"}},
			gitStep{"git push dry-run", []string{"push", "--dry-run", "origin", MainBranch}},
		)
	}

	for _, step := range steps {
		result, err := r.runner.Run(ctx, "git", step.args, packageDir)
		if err != nil {
			return errors.Wrap(errors.ExternalTool, "running "+step.name, err)
		}
		if result.ExitCode != 0 {
			return errors.Tool(
				fmt.Sprintf("%s failed with exit code %d", step.name, result.ExitCode),
				result.Output())
		}
	}
	return nil
}
