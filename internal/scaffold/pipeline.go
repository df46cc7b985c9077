// Package scaffold orchestrates the package-creation pipeline: validation,
// skeleton generation, asset overlay, manifest patching, generated files,
// dependency installation, the quality gate, and repository initialization.
// Stages run in a fixed order and the first error aborts the run.
package scaffold

import (
	"context"
	"path/filepath"
	"time"

	"github.com/inlavigo/ggcreate/internal/assets"
	"github.com/inlavigo/ggcreate/internal/dart"
	"github.com/inlavigo/ggcreate/internal/exec"
	"github.com/inlavigo/ggcreate/internal/gitrepo"
	"github.com/inlavigo/ggcreate/internal/manifest"
	"github.com/inlavigo/ggcreate/internal/pkgspec"
)

// Log is the injected sink for human-readable progress messages, one line
// per stage. Its lifecycle spans exactly one pipeline run.
type Log func(msg string)

// Pipeline runs the package-creation stages for one spec.
type Pipeline struct {
	spec *pkgspec.Spec
	dart *dart.Tool
	git  *gitrepo.Repo
	log  Log
	now  func() time.Time
}

// NewPipeline creates a pipeline for the given spec. All external tools are
// invoked through runner; progress goes to log.
func NewPipeline(spec *pkgspec.Spec, runner exec.CommandRunner, log Log) *Pipeline {
	if log == nil {
		log = func(string) {}
	}
	return &Pipeline{
		spec: spec,
		dart: dart.NewTool(runner),
		git:  gitrepo.NewRepo(runner),
		log:  log,
		now:  time.Now,
	}
}

// SetNowFunc overrides the time source for testing.
func (p *Pipeline) SetNowFunc(fn func() time.Time) {
	p.now = fn
}

// Run executes all stages in order and stops at the first error. There is
// no rollback: whatever state exists at the point of failure is left on
// disk, except for the optional forced pre-delete during validation.
func (p *Pipeline) Run(ctx context.Context) error {
	s := p.spec

	p.log("Validating package spec")
	if err := s.Validate(); err != nil {
		return err
	}

	if s.PrepareGitHub {
		p.log("Checking that " + s.RepoURL() + " exists")
		if err := p.git.CheckOrigin(ctx, s.RepoURL()); err != nil {
			return err
		}
	}

	p.log("Generating package skeleton")
	if err := p.dart.CreatePackage(ctx, s.OutputDir, s.PackageName); err != nil {
		return err
	}

	p.log("Copying template assets")
	if err := p.overlayAssets(); err != nil {
		return err
	}

	p.log("Patching " + manifest.FileName)
	if err := p.patchManifest(); err != nil {
		return err
	}

	p.log("Writing README.md and CHANGELOG.md")
	if err := WriteReadme(s.PackageDir, s.PackageName, s.Description); err != nil {
		return err
	}
	if err := WriteChangelog(s.PackageDir); err != nil {
		return err
	}

	p.log("Installing dev dependencies")
	if err := p.dart.AddDevDependencies(ctx, s.PackageDir); err != nil {
		return err
	}

	p.log("Seeding source file")
	if err := WriteSourceFile(s.PackageDir, s.PackageName, p.now().Year()); err != nil {
		return err
	}

	p.log("Running quality gate")
	if err := p.dart.FixAnalyzeFormat(ctx, s.PackageDir); err != nil {
		return err
	}

	p.log("Initializing git repository")
	remoteURL := ""
	if s.PrepareGitHub {
		remoteURL = s.RepoURL()
	}
	if err := p.git.InitRepo(ctx, s.PackageDir, remoteURL); err != nil {
		return err
	}

	p.log("")
	p.log("Success! Open the package with:")
	p.log("  code " + s.PackageDir)
	if s.PrepareGitHub {
		p.log("Push the initial commit with:")
		p.log("  git push origin " + gitrepo.MainBranch)
	}
	return nil
}

func (p *Pipeline) overlayAssets() error {
	s := p.spec
	if err := assets.CopyOverlay(s.PackageDir); err != nil {
		return err
	}
	if err := assets.WriteLicense(s.PackageDir, s.IsOpenSource, p.now().Year()); err != nil {
		return err
	}
	return assets.CopyCheckScripts(s.PackageDir)
}

func (p *Pipeline) patchManifest() error {
	s := p.spec
	path := filepath.Join(s.PackageDir, manifest.FileName)
	if err := manifest.PatchFile(path, s.RepoURL(), s.Description); err != nil {
		return err
	}

	// A schema violation after patching means the generator's format moved
	// under us; surface it without failing the run.
	result, err := manifest.ValidateFile(path)
	if err != nil {
		p.log("Warning: could not validate " + manifest.FileName + ": " + err.Error())
		return nil
	}
	for _, issue := range result.Issues {
		p.log("Warning: " + manifest.FileName + ": " + issue.String())
	}
	return nil
}
