// Package workspace detects the monorepo workspace and scans project
// metadata used by the wizard.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	oerrors "github.com/samuelho-dev/monorepo-library-generator-sub003/internal/errors"
)

// Workspace describes a detected monorepo.
type Workspace struct {
	// Root is the workspace root directory.
	Root string

	// LibrariesRoot is the directory libraries live in, typically
	// <root>/libs.
	LibrariesRoot string
}

// pnpmWorkspace mirrors the parts of pnpm-workspace.yaml we read.
type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// rootPackage mirrors the parts of package.json we read.
type rootPackage struct {
	Workspaces []string `json:"workspaces"`
}

// Detect walks upward from startDir looking for a workspace marker:
// pnpm-workspace.yaml, nx.json, or a package.json with a "workspaces"
// field. It returns ErrNotFound when no marker is found.
func Detect(startDir string) (Workspace, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Workspace{}, fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		if root, ok := detectAt(dir); ok {
			return root, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Workspace{}, oerrors.NewNotFoundError(
				fmt.Sprintf("no workspace found above %s", startDir),
				startDir,
				"Run inside a monorepo, or run `libgen init` to scaffold one.",
			)
		}
		dir = parent
	}
}

func detectAt(dir string) (Workspace, bool) {
	pnpmFile := filepath.Join(dir, "pnpm-workspace.yaml")
	if data, err := os.ReadFile(pnpmFile); err == nil {
		var ws pnpmWorkspace
		if err := yaml.Unmarshal(data, &ws); err == nil {
			return Workspace{Root: dir, LibrariesRoot: librariesRootFromGlobs(dir, ws.Packages)}, true
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "nx.json")); err == nil {
		return Workspace{Root: dir, LibrariesRoot: filepath.Join(dir, "libs")}, true
	}

	pkgFile := filepath.Join(dir, "package.json")
	if data, err := os.ReadFile(pkgFile); err == nil {
		var pkg rootPackage
		if err := json.Unmarshal(data, &pkg); err == nil && len(pkg.Workspaces) > 0 {
			return Workspace{Root: dir, LibrariesRoot: librariesRootFromGlobs(dir, pkg.Workspaces)}, true
		}
	}

	return Workspace{}, false
}

// librariesRootFromGlobs picks the libraries directory out of workspace
// package globs. A glob rooted at "libs" wins; otherwise the first
// glob's leading path segment is used, falling back to "libs".
func librariesRootFromGlobs(root string, globs []string) string {
	for _, g := range globs {
		if first := firstSegment(g); first == "libs" {
			return filepath.Join(root, "libs")
		}
	}
	for _, g := range globs {
		if first := firstSegment(g); first != "" {
			return filepath.Join(root, first)
		}
	}
	return filepath.Join(root, "libs")
}

func firstSegment(glob string) string {
	glob = strings.TrimPrefix(filepath.ToSlash(glob), "./")
	seg, _, _ := strings.Cut(glob, "/")
	if strings.ContainsAny(seg, "*?[") {
		return ""
	}
	return seg
}
