package assets

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestCopyOverlay(t *testing.T) {
	dir := t.TempDir()

	if err := CopyOverlay(dir); err != nil {
		t.Fatalf("CopyOverlay() error: %v", err)
	}

	expected := []string{
		".gitignore",
		"analysis_options.yaml",
		filepath.Join(".vscode", "settings.json"),
		filepath.Join(".vscode", "extensions.json"),
		filepath.Join(".github", "workflows", "pipeline.yaml"),
	}
	for _, rel := range expected {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("overlay file %s missing: %v", rel, err)
		}
	}
}

func TestWriteLicenseSubstitutesYear(t *testing.T) {
	year := time.Now().Year()

	t.Run("open source", func(t *testing.T) {
		dir := t.TempDir()
		if err := WriteLicense(dir, true, year); err != nil {
			t.Fatalf("WriteLicense() error: %v", err)
		}
		content := readFile(t, filepath.Join(dir, "LICENSE"))
		if strings.Contains(content, "<year>") {
			t.Error("year placeholder was not substituted")
		}
		if !strings.Contains(content, "Permission is hereby granted") {
			t.Error("open-source variant not selected")
		}
	})

	t.Run("proprietary", func(t *testing.T) {
		dir := t.TempDir()
		if err := WriteLicense(dir, false, year); err != nil {
			t.Fatalf("WriteLicense() error: %v", err)
		}
		content := readFile(t, filepath.Join(dir, "LICENSE"))
		if !strings.Contains(content, "All rights reserved") {
			t.Error("proprietary variant not selected")
		}
		if !strings.Contains(content, "(c) "+strconv.Itoa(year)) {
			t.Errorf("license missing substituted year %d:\n%s", year, content)
		}
	})
}

func TestCopyCheckScripts(t *testing.T) {
	dir := t.TempDir()

	if err := CopyCheckScripts(dir); err != nil {
		t.Fatalf("CopyCheckScripts() error: %v", err)
	}

	for _, name := range []string{"check", "check.ps1"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("check script %s missing: %v", name, err)
			continue
		}
		if runtime.GOOS != "windows" && info.Mode().Perm()&0100 == 0 {
			t.Errorf("check script %s is not executable: %v", name, info.Mode())
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
