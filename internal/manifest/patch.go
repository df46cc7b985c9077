// Package manifest patches and validates the pubspec.yaml produced by the
// package generator.
package manifest

import (
	"fmt"
	"os"
	"regexp"

	"github.com/inlavigo/ggcreate/internal/errors"
)

// FileName is the manifest file name inside a package directory.
const FileName = "pubspec.yaml"

var (
	// The generator emits the repository field commented out.
	repositoryPattern  = regexp.MustCompile(`(?m)^#\s*repository:.*$`)
	descriptionPattern = regexp.MustCompile(`(?m)^description:.*$`)
)

// ReplaceLine replaces every match of pattern in content with replacement.
// If the pattern matches nowhere it fails with a NotFound error naming the
// pattern, guarding against silent no-ops when the generator's output
// format changes.
func ReplaceLine(content, file string, pattern *regexp.Regexp, replacement string) (string, error) {
	if !pattern.MatchString(content) {
		return "", errors.Newf(errors.NotFound,
			"pattern %q not found in %s", pattern.String(), file)
	}
	return pattern.ReplaceAllString(content, replacement), nil
}

// PatchFile rewrites the repository and description fields of the manifest
// at path. Both replacements are applied in memory first; if either pattern
// is missing the file is left unmodified.
func PatchFile(path, repoURL, description string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.NotFound, "reading manifest "+path, err)
	}

	content, err := ReplaceLine(string(data), path, repositoryPattern,
		"repository: "+repoURL)
	if err != nil {
		return err
	}

	content, err = ReplaceLine(content, path, descriptionPattern,
		"description: "+description)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
