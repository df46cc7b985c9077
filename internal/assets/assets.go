// Package assets holds the static files overlaid onto every generated
// package skeleton: editor settings, CI workflows, ignore rules, analysis
// config, license variants, and check scripts. The files ship inside the
// binary via go:embed and are copied out preserving relative paths.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

//go:embed all:overlay licenses checks
var assetFS embed.FS

const (
	overlayRoot  = "overlay"
	licensesRoot = "licenses"
	checksRoot   = "checks"

	// checkPrefix selects which embedded root scripts are flattened into the
	// package directory.
	checkPrefix = "check"

	// yearPlaceholder is replaced with the current year in license texts.
	yearPlaceholder = "<year>"
)

// CopyOverlay mirrors the embedded overlay tree (editor settings, CI
// workflows, ignore rules, analysis config) into packageDir. Intermediate
// directories are created before any file is copied.
func CopyOverlay(packageDir string) error {
	return fs.WalkDir(assetFS, overlayRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(p, overlayRoot)
		rel = strings.TrimPrefix(rel, "/")
		dst := filepath.Join(packageDir, filepath.FromSlash(rel))

		if d.IsDir() {
			if err := os.MkdirAll(dst, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", dst, err)
			}
			return nil
		}

		data, err := assetFS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading embedded asset %s: %w", p, err)
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		return nil
	})
}

// WriteLicense writes the LICENSE file for the chosen variant into
// packageDir, substituting the year placeholder with year.
func WriteLicense(packageDir string, isOpenSource bool, year int) error {
	name := "private.md"
	if isOpenSource {
		name = "open_source.md"
	}

	data, err := assetFS.ReadFile(path.Join(licensesRoot, name))
	if err != nil {
		return fmt.Errorf("reading embedded license %s: %w", name, err)
	}

	text := strings.ReplaceAll(string(data), yearPlaceholder, strconv.Itoa(year))
	dst := filepath.Join(packageDir, "LICENSE")
	if err := os.WriteFile(dst, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// CopyCheckScripts flattens every embedded script whose name starts with
// "check" into the package directory root, marked executable.
func CopyCheckScripts(packageDir string) error {
	entries, err := fs.ReadDir(assetFS, checksRoot)
	if err != nil {
		return fmt.Errorf("reading embedded check scripts: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), checkPrefix) {
			continue
		}
		data, err := assetFS.ReadFile(path.Join(checksRoot, entry.Name()))
		if err != nil {
			return fmt.Errorf("reading embedded script %s: %w", entry.Name(), err)
		}
		dst := filepath.Join(packageDir, entry.Name())
		if err := os.WriteFile(dst, data, 0755); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
	}
	return nil
}
