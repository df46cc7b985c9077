// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild. Go's //go:embed
// bakes the values into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	GitHubOrg        string `yaml:"github_org"`
	OpenSourcePrefix string `yaml:"open_source_prefix"`
	PrivatePrefix    string `yaml:"private_prefix"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:          "ggcreate",
			DisplayName:      "GgCreate",
			Description:      "Scaffolds new Dart and Flutter packages the inlavigo way",
			HomeDir:          ".ggcreate",
			EnvPrefix:        "GGCREATE",
			GitHubOrg:        "inlavigo",
			OpenSourcePrefix: "gg_",
			PrivatePrefix:    "aud_",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "ggcreate").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".ggcreate").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "GGCREATE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubOrg returns the GitHub organization every package is published under.
func GitHubOrg() string { load(); return defaults.GitHubOrg }

// OpenSourcePrefix returns the required name prefix for open-source packages.
func OpenSourcePrefix() string { load(); return defaults.OpenSourcePrefix }

// PrivatePrefix returns the required name prefix for proprietary packages.
func PrivatePrefix() string { load(); return defaults.PrivatePrefix }

// RepoURL returns the canonical GitHub URL for a package name,
// e.g., RepoURL("gg_widgets") → "https://github.com/inlavigo/gg_widgets".
func RepoURL(packageName string) string {
	load()
	return "https://github.com/" + defaults.GitHubOrg + "/" + packageName
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("OUTPUT") → "GGCREATE_OUTPUT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
