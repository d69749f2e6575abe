package workspace

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/output"
)

// projectConfig mirrors the parts of project.json we read.
type projectConfig struct {
	Tags []string `json:"tags"`
}

// TagScanner collects the tags already declared across the workspace's
// project.json files. The scan runs once per scanner; tag selection is
// optional metadata, so scan failures degrade silently to an empty list.
type TagScanner struct {
	root string

	once sync.Once
	tags []string
}

// NewTagScanner creates a scanner rooted at the workspace directory.
func NewTagScanner(root string) *TagScanner {
	return &TagScanner{root: root}
}

// ScanTags returns the deduplicated, sorted tags found in the workspace.
// The result is cached for the scanner's lifetime.
func (s *TagScanner) ScanTags(ctx context.Context) []string {
	s.once.Do(func() {
		s.tags = scan(ctx, s.root)
	})
	return append([]string(nil), s.tags...)
}

func scan(ctx context.Context, root string) []string {
	seen := map[string]struct{}{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories are skipped, not fatal.
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if d.Name() == "node_modules" || d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != "project.json" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		var cfg projectConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil
		}
		for _, t := range cfg.Tags {
			if t != "" {
				seen[t] = struct{}{}
			}
		}
		return nil
	})
	if err != nil {
		output.Debug("tag scan aborted", "root", root, "error", err)
		return nil
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
