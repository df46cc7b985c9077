package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", New(Validation, "bad name"), Validation},
		{"not found", New(NotFound, "missing"), NotFound},
		{"already exists", New(AlreadyExists, "collision"), AlreadyExists},
		{"external tool", Tool("git failed", "fatal: oops"), ExternalTool},
		{"plain error", stderrors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := New(AlreadyExists, "directory exists")
	outer := fmt.Errorf("running pipeline: %w", inner)

	if KindOf(outer) != AlreadyExists {
		t.Errorf("KindOf(wrapped) = %q, want %q", KindOf(outer), AlreadyExists)
	}
	if !IsKind(outer, AlreadyExists) {
		t.Error("IsKind(wrapped, AlreadyExists) = false, want true")
	}
}

func TestToolOutputInMessage(t *testing.T) {
	err := Tool("dart analyze failed", "lib/a.dart:1:1: error\n")

	msg := err.Error()
	if !strings.Contains(msg, "dart analyze failed") {
		t.Errorf("message missing summary: %q", msg)
	}
	if !strings.Contains(msg, "lib/a.dart:1:1: error") {
		t.Errorf("message missing captured output: %q", msg)
	}
	if strings.HasSuffix(msg, "\n") {
		t.Errorf("message has trailing newline: %q", msg)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(NotFound, "pattern missing", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}
