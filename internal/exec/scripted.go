package exec

import (
	"context"
	"strings"
)

// Call records one invocation seen by a ScriptedRunner.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// String renders the call as a shell-like line, used for match keys and
// test failure messages.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// ScriptedRunner is a CommandRunner test double. It records every call and
// returns scripted results keyed by command line prefix. Calls with no
// matching script succeed with empty output.
type ScriptedRunner struct {
	Calls   []Call
	results map[string]Result
	errs    map[string]error
	hooks   map[string]func(Call)
}

// NewScriptedRunner creates an empty ScriptedRunner.
func NewScriptedRunner() *ScriptedRunner {
	return &ScriptedRunner{
		results: make(map[string]Result),
		errs:    make(map[string]error),
		hooks:   make(map[string]func(Call)),
	}
}

// Script registers a Result for every call whose command line starts with
// prefix (e.g., "git ls-remote" or "dart format --set-exit-if-changed").
func (s *ScriptedRunner) Script(prefix string, result Result) {
	s.results[prefix] = result
}

// ScriptError registers a spawn failure for calls matching prefix.
func (s *ScriptedRunner) ScriptError(prefix string, err error) {
	s.errs[prefix] = err
}

// Hook registers a function run for every call matching prefix, letting
// tests emulate filesystem side effects of external tools.
func (s *ScriptedRunner) Hook(prefix string, fn func(Call)) {
	s.hooks[prefix] = fn
}

// Run records the call, fires any matching hook, and returns the scripted
// result, if any.
func (s *ScriptedRunner) Run(_ context.Context, name string, args []string, dir string) (Result, error) {
	call := Call{Name: name, Args: args, Dir: dir}
	s.Calls = append(s.Calls, call)

	line := call.String()
	for prefix, fn := range s.hooks {
		if strings.HasPrefix(line, prefix) {
			fn(call)
		}
	}
	for prefix, err := range s.errs {
		if strings.HasPrefix(line, prefix) {
			return Result{}, err
		}
	}
	for prefix, result := range s.results {
		if strings.HasPrefix(line, prefix) {
			return result, nil
		}
	}
	return Result{}, nil
}

// CommandLines returns every recorded call rendered as a command line, in
// invocation order.
func (s *ScriptedRunner) CommandLines() []string {
	lines := make([]string, len(s.Calls))
	for i, c := range s.Calls {
		lines[i] = c.String()
	}
	return lines
}
