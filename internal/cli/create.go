package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inlavigo/ggcreate/internal/branding"
	"github.com/inlavigo/ggcreate/internal/config"
	"github.com/inlavigo/ggcreate/internal/exec"
	"github.com/inlavigo/ggcreate/internal/pkgspec"
	"github.com/inlavigo/ggcreate/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	createOutput        string
	createDescription   string
	createOpenSource    bool
	createPrepareGitHub bool
	createForce         bool
)

func init() {
	createCmd.Flags().StringVar(&createOutput, "output", "", "Parent directory for the new package (default: config output_dir, then cwd)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Package description, at least 60 characters (required)")
	createCmd.Flags().BoolVar(&createOpenSource, "open-source", false, "Create an open-source package (MIT license, gg_ prefix)")
	createCmd.Flags().BoolVar(&createPrepareGitHub, "prepare-github", true, "Check the GitHub remote and register origin")
	createCmd.Flags().BoolVar(&createForce, "force", false, "Delete a pre-existing target directory before generating")
	_ = createCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new Dart/Flutter package",
	Long: `Create a new package under the ` + branding.GitHubOrg() + ` organization.

Open-source packages must be named ` + branding.OpenSourcePrefix() + `*, proprietary ones ` + branding.PrivatePrefix() + `*.

Examples:
  ggcreate create gg_widgets --open-source --description "..."
  ggcreate create aud_widgets --prepare-github=false --description "..."`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		outputDir, err := resolveOutputDir(createOutput)
		if err != nil {
			return err
		}

		prepareGitHub := createPrepareGitHub
		if !cmd.Flags().Changed("prepare-github") {
			prepareGitHub = config.GetBool(config.KeyPrepareGitHub)
		}

		spec := pkgspec.New(outputDir, args[0], createDescription,
			createOpenSource, prepareGitHub, createForce)

		pipeline := scaffold.NewPipeline(spec, exec.NewRunner(), func(msg string) {
			fmt.Println(msg)
		})
		return pipeline.Run(cmd.Context())
	},
}

// resolveOutputDir picks the output directory from the flag, the config
// file, or the working directory, in that order, and makes it absolute.
func resolveOutputDir(flagValue string) (string, error) {
	dir := flagValue
	if dir == "" {
		dir = config.Get(config.KeyOutputDir)
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory %s: %w", dir, err)
	}
	return abs, nil
}
