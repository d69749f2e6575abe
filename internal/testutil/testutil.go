// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content, creating parent
// directories as needed.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ScaffoldWorkspace creates a minimal pnpm workspace in a temp dir and
// returns its root. Libraries live under <root>/libs.
func ScaffoldWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	WriteFile(t, root, "pnpm-workspace.yaml", "packages:\n  - libs/*\n  - apps/*\n")
	WriteFile(t, root, "package.json", `{"name":"fixture-workspace","private":true}`)
	if err := os.MkdirAll(filepath.Join(root, "libs"), 0o755); err != nil {
		t.Fatalf("failed to create libs dir: %v", err)
	}
	return root
}

// WriteProject adds a project.json with the given tags under
// <root>/libs/<libType>/<name>, mimicking a generated library.
func WriteProject(t *testing.T, root, libType, name string, tags ...string) {
	t.Helper()
	tagJSON := "["
	for i, tag := range tags {
		if i > 0 {
			tagJSON += ","
		}
		tagJSON += fmt.Sprintf("%q", tag)
	}
	tagJSON += "]"
	WriteFile(t, filepath.Join(root, "libs", libType, name), "project.json",
		fmt.Sprintf(`{"name":%q,"tags":%s}`, name, tagJSON))
}
