// Package exec provides a narrow, substitutable interface for running
// external commands. Every tool the pipeline delegates to (flutter, dart,
// git) is invoked through a CommandRunner so tests can script results
// without spawning processes.
package exec

import (
	"bytes"
	"context"
	"os/exec"
)

// Result holds the outcome of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Output returns stderr if non-empty, otherwise stdout. Failed tools report
// on either stream depending on the tool.
func (r Result) Output() string {
	if r.Stderr != "" {
		return r.Stderr
	}
	return r.Stdout
}

// CommandRunner runs an external command to completion.
//
// Run returns a Result with ExitCode set whenever the process ran, even if
// it exited non-zero. The error return is reserved for spawn failures:
// binary not found, context canceled, I/O errors.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, dir string) (Result, error)
}

// Runner is the production CommandRunner backed by os/exec.
type Runner struct{}

// NewRunner creates a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the command in dir (or the process cwd if dir is empty) and
// captures stdout and stderr.
func (r *Runner) Run(ctx context.Context, name string, args []string, dir string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}
