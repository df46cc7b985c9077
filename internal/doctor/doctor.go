// Package doctor verifies that the external tools the pipeline delegates to
// are installed and recent enough.
package doctor

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/inlavigo/ggcreate/internal/exec"
)

// ToolCheck names an external tool and the minimum version the pipeline
// needs.
type ToolCheck struct {
	Name       string
	MinVersion string
}

// Checks lists every tool the pipeline invokes.
var Checks = []ToolCheck{
	{Name: "flutter", MinVersion: "3.0.0"},
	{Name: "dart", MinVersion: "3.0.0"},
	{Name: "git", MinVersion: "2.28.0"}, // first release with init.defaultBranch
}

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// Run executes `<tool> --version` for every check, writes one status line
// per tool to w, and returns an error if any tool is missing or outdated.
func Run(ctx context.Context, runner exec.CommandRunner, w io.Writer) error {
	problems := 0

	for _, check := range Checks {
		if err := runCheck(ctx, runner, w, check); err != nil {
			problems++
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d tool check(s) failed", problems)
	}
	return nil
}

func runCheck(ctx context.Context, runner exec.CommandRunner, w io.Writer, check ToolCheck) error {
	result, err := runner.Run(ctx, check.Name, []string{"--version"}, "")
	if err != nil || result.ExitCode != 0 {
		fmt.Fprintf(w, "  [MISS] %s not found\n", check.Name)
		return fmt.Errorf("%s not found", check.Name)
	}

	raw := versionPattern.FindString(result.Output())
	if raw == "" {
		fmt.Fprintf(w, "  [WARN] %s: could not parse version output\n", check.Name)
		return nil
	}

	installed, err := semver.NewVersion(raw)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s: unparseable version %q\n", check.Name, raw)
		return nil
	}

	minimum := semver.MustParse(check.MinVersion)
	if installed.LessThan(minimum) {
		fmt.Fprintf(w, "  [OLD ] %s %s found, need >= %s\n", check.Name, installed, minimum)
		return fmt.Errorf("%s too old", check.Name)
	}

	fmt.Fprintf(w, "  [ OK ] %s %s\n", check.Name, installed)
	return nil
}
