package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// initialVersion is the version the generated CHANGELOG starts at.
var initialVersion = semver.MustParse("1.0.0")

// WriteReadme writes README.md with the package name as H1 heading followed
// by the description. Any existing file is overwritten.
func WriteReadme(packageDir, packageName, description string) error {
	content := fmt.Sprintf("# %s\n\n%s\n", packageName, description)
	return writeFile(filepath.Join(packageDir, "README.md"), content)
}

// WriteChangelog writes CHANGELOG.md with the fixed heading and the initial
// version entry. Any existing file is overwritten.
func WriteChangelog(packageDir string) error {
	content := fmt.Sprintf("# Change Log\n\n## %s - Initial version\n", initialVersion)
	return writeFile(filepath.Join(packageDir, "CHANGELOG.md"), content)
}

// WriteSourceFile seeds lib/<packageName>.dart with the license header and
// the boilerplate snippet.
func WriteSourceFile(packageDir, packageName string, year int) error {
	dir := filepath.Join(packageDir, "lib")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating lib directory: %w", err)
	}

	header := "// Copyright (c) " + strconv.Itoa(year) + " inlavigo.\n" +
		"// Use of this source code is governed by the terms found in the LICENSE file.\n"

	snippet := "\n" +
		"/// Entry point of the " + packageName + " package.\n" +
		"library " + packageName + ";\n" +
		"\n" +
		"/// Adds two numbers. Replace this with the package implementation.\n" +
		"int add(int a, int b) => a + b;\n"

	return writeFile(filepath.Join(dir, packageName+".dart"), header+snippet)
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
