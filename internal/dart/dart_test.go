package dart

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/inlavigo/ggcreate/internal/errors"
	"github.com/inlavigo/ggcreate/internal/exec"
)

func TestCreatePackage(t *testing.T) {
	runner := exec.NewScriptedRunner()
	tool := NewTool(runner)

	err := tool.CreatePackage(context.Background(), "/work", "gg_widgets")
	if err != nil {
		t.Fatalf("CreatePackage() error: %v", err)
	}

	if len(runner.Calls) != 1 {
		t.Fatalf("recorded %d calls, want 1", len(runner.Calls))
	}
	call := runner.Calls[0]
	if call.String() != "flutter create --template package --no-pub gg_widgets" {
		t.Errorf("call = %q", call.String())
	}
	if call.Dir != "/work" {
		t.Errorf("Dir = %q, want %q", call.Dir, "/work")
	}
}

func TestCreatePackageNonZeroExitIsFatal(t *testing.T) {
	runner := exec.NewScriptedRunner()
	runner.Script("flutter create", exec.Result{ExitCode: 1, Stderr: "no such template"})
	tool := NewTool(runner)

	err := tool.CreatePackage(context.Background(), "/work", "gg_widgets")
	if !errors.IsKind(err, errors.ExternalTool) {
		t.Fatalf("CreatePackage() = %v, want ExternalTool error", err)
	}
	if !strings.Contains(err.Error(), "no such template") {
		t.Errorf("error should carry captured output, got %q", err)
	}
}

func TestCreatePackageSpawnFailure(t *testing.T) {
	runner := exec.NewScriptedRunner()
	runner.ScriptError("flutter", stderrors.New("executable file not found"))
	tool := NewTool(runner)

	err := tool.CreatePackage(context.Background(), "/work", "gg_widgets")
	if !errors.IsKind(err, errors.ExternalTool) {
		t.Fatalf("CreatePackage() = %v, want ExternalTool error", err)
	}
}

func TestAddDevDependencies(t *testing.T) {
	runner := exec.NewScriptedRunner()
	tool := NewTool(runner)

	err := tool.AddDevDependencies(context.Background(), "/work/gg_widgets")
	if err != nil {
		t.Fatalf("AddDevDependencies() error: %v", err)
	}

	call := runner.Calls[0]
	if call.String() != "dart pub add --dev gg_check pana" {
		t.Errorf("call = %q", call.String())
	}
	if call.Dir != "/work/gg_widgets" {
		t.Errorf("Dir = %q, want package dir", call.Dir)
	}
}

func TestFixAnalyzeFormatRunsAllStepsInOrder(t *testing.T) {
	runner := exec.NewScriptedRunner()
	tool := NewTool(runner)

	if err := tool.FixAnalyzeFormat(context.Background(), "/work/gg_widgets"); err != nil {
		t.Fatalf("FixAnalyzeFormat() error: %v", err)
	}

	want := []string{
		"dart fix --apply",
		"dart analyze --fatal-infos",
		"dart format .",
		"dart format --set-exit-if-changed .",
	}
	got := runner.CommandLines()
	if len(got) != len(want) {
		t.Fatalf("recorded %d calls %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFixAnalyzeFormatAbortsOnFirstFailure(t *testing.T) {
	runner := exec.NewScriptedRunner()
	runner.Script("dart analyze", exec.Result{ExitCode: 2, Stdout: "error: undefined name"})
	tool := NewTool(runner)

	err := tool.FixAnalyzeFormat(context.Background(), "/work/gg_widgets")
	if !errors.IsKind(err, errors.ExternalTool) {
		t.Fatalf("FixAnalyzeFormat() = %v, want ExternalTool error", err)
	}
	if !strings.Contains(err.Error(), "undefined name") {
		t.Errorf("error should carry analyzer output, got %q", err)
	}

	// Formatting must not run after a failed analysis.
	if len(runner.Calls) != 2 {
		t.Errorf("recorded %d calls %v, want 2 (fix, analyze)", len(runner.Calls), runner.CommandLines())
	}
}

func TestDriftCheckFailure(t *testing.T) {
	runner := exec.NewScriptedRunner()
	runner.Script("dart format --set-exit-if-changed", exec.Result{ExitCode: 1, Stdout: "Changed lib/gg_widgets.dart"})
	tool := NewTool(runner)

	err := tool.FixAnalyzeFormat(context.Background(), "/work/gg_widgets")
	if !errors.IsKind(err, errors.ExternalTool) {
		t.Fatalf("FixAnalyzeFormat() = %v, want ExternalTool error", err)
	}
	if !strings.Contains(err.Error(), "dart format check") {
		t.Errorf("error should name the drift check step, got %q", err)
	}
}
