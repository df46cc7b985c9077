// Package pkgspec defines the immutable description of the package to
// create and validates it before any stage runs.
package pkgspec

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/inlavigo/ggcreate/internal/branding"
	"github.com/inlavigo/ggcreate/internal/errors"
)

// MinDescriptionLen is the minimum accepted description length. Short
// descriptions are penalized by pub.dev scoring, so they are rejected here.
const MinDescriptionLen = 60

// Spec describes one package-creation run. Construct it with New and treat
// it as immutable afterwards; PackageDir is derived once and reused by every
// stage.
type Spec struct {
	OutputDir     string // parent directory, must pre-exist
	PackageName   string
	Description   string
	IsOpenSource  bool
	PrepareGitHub bool
	Force         bool

	PackageDir string // OutputDir/PackageName, derived
}

// New builds a Spec and derives PackageDir.
func New(outputDir, packageName, description string, isOpenSource, prepareGitHub, force bool) *Spec {
	return &Spec{
		OutputDir:     outputDir,
		PackageName:   packageName,
		Description:   description,
		IsOpenSource:  isOpenSource,
		PrepareGitHub: prepareGitHub,
		Force:         force,
		PackageDir:    filepath.Join(outputDir, packageName),
	}
}

// RepoURL returns the canonical GitHub URL for the package.
func (s *Spec) RepoURL() string {
	return branding.RepoURL(s.PackageName)
}

// Validate checks the spec against the input rules. When Force is set and
// the target directory already exists, it is deleted first; this is the only
// filesystem mutation validation may perform.
func (s *Spec) Validate() error {
	info, err := os.Stat(s.OutputDir)
	if err != nil || !info.IsDir() {
		return errors.Newf(errors.NotFound, "output directory %s does not exist", s.OutputDir)
	}

	if s.Force {
		if _, err := os.Stat(s.PackageDir); err == nil {
			if err := os.RemoveAll(s.PackageDir); err != nil {
				return errors.Wrap(errors.AlreadyExists,
					"removing existing directory "+s.PackageDir, err)
			}
		}
	}

	if _, err := os.Stat(s.PackageDir); err == nil {
		return errors.Newf(errors.AlreadyExists,
			"directory %s already exists, use --force to replace it", s.PackageDir)
	}

	if err := s.validateName(); err != nil {
		return err
	}

	if len(s.Description) < MinDescriptionLen {
		return errors.Newf(errors.Validation,
			"description must be at least %d characters, got %d",
			MinDescriptionLen, len(s.Description))
	}

	return nil
}

func (s *Spec) validateName() error {
	openPrefix := branding.OpenSourcePrefix()
	privPrefix := branding.PrivatePrefix()

	if s.IsOpenSource {
		if !strings.HasPrefix(s.PackageName, openPrefix) {
			return errors.Newf(errors.Validation,
				"open-source package names must start with %q, got %q",
				openPrefix, s.PackageName)
		}
		return nil
	}
	if !strings.HasPrefix(s.PackageName, privPrefix) {
		return errors.Newf(errors.Validation,
			"proprietary package names must start with %q, got %q",
			privPrefix, s.PackageName)
	}
	return nil
}
