// Package dart wraps the flutter and dart tool invocations the pipeline
// delegates to: skeleton generation, dev-dependency installation, and the
// fix/analyze/format quality gate.
package dart

import (
	"context"
	"fmt"

	"github.com/inlavigo/ggcreate/internal/errors"
	"github.com/inlavigo/ggcreate/internal/exec"
)

// devDependencies are added to every generated package.
var devDependencies = []string{"gg_check", "pana"}

// Tool invokes flutter/dart through a CommandRunner.
type Tool struct {
	runner exec.CommandRunner
}

// NewTool creates a Tool backed by the given runner.
func NewTool(runner exec.CommandRunner) *Tool {
	return &Tool{runner: runner}
}

// CreatePackage generates the base package skeleton in outputDir using
// flutter's library template. Dependency resolution is deferred to the
// install stage (--no-pub).
func (t *Tool) CreatePackage(ctx context.Context, outputDir, packageName string) error {
	args := []string{"create", "--template", "package", "--no-pub", packageName}
	return t.run(ctx, "flutter", args, outputDir, "flutter create")
}

// AddDevDependencies installs the fixed set of development dependencies in
// packageDir.
func (t *Tool) AddDevDependencies(ctx context.Context, packageDir string) error {
	args := append([]string{"pub", "add", "--dev"}, devDependencies...)
	return t.run(ctx, "dart", args, packageDir, "dart pub add")
}

// FixAnalyzeFormat runs the quality gate in packageDir: auto-fix, static
// analysis, formatting, and a formatting-drift check. The first non-zero
// exit aborts.
func (t *Tool) FixAnalyzeFormat(ctx context.Context, packageDir string) error {
	steps := []struct {
		name string
		args []string
	}{
		{"dart fix", []string{"fix", "--apply"}},
		{"dart analyze", []string{"analyze", "--fatal-infos"}},
		{"dart format", []string{"format", "."}},
		// Drift check: formatting must have left nothing to change.
		{"dart format check", []string{"format", "--set-exit-if-changed", "."}},
	}

	for _, step := range steps {
		if err := t.run(ctx, "dart", step.args, packageDir, step.name); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tool) run(ctx context.Context, name string, args []string, dir, label string) error {
	result, err := t.runner.Run(ctx, name, args, dir)
	if err != nil {
		return errors.Wrap(errors.ExternalTool, "running "+label, err)
	}
	if result.ExitCode != 0 {
		return errors.Tool(
			fmt.Sprintf("%s failed with exit code %d", label, result.ExitCode),
			result.Output())
	}
	return nil
}
