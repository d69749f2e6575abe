package workspace

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanTags(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "libs", "contract", "orders", "project.json"),
		`{"name":"orders","tags":["type:contract","scope:orders"]}`)
	writeFile(t, filepath.Join(root, "libs", "feature", "checkout", "project.json"),
		`{"name":"checkout","tags":["type:feature","scope:orders"]}`)
	// Malformed files are skipped silently.
	writeFile(t, filepath.Join(root, "libs", "broken", "project.json"), "{not json")

	tags := NewTagScanner(root).ScanTags(context.Background())

	assert.Equal(t, []string{"scope:orders", "type:contract", "type:feature"}, tags)
}

func TestScanTagsMissingRootIsSilent(t *testing.T) {
	s := NewTagScanner(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Empty(t, s.ScanTags(context.Background()))
}

func TestScanTagsCachesResult(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "project.json"), `{"tags":["one"]}`)

	s := NewTagScanner(root)
	first := s.ScanTags(context.Background())

	// New files after the first scan are not picked up.
	writeFile(t, filepath.Join(root, "b", "project.json"), `{"tags":["two"]}`)
	second := s.ScanTags(context.Background())

	assert.Equal(t, first, second)
}

func TestCasing(t *testing.T) {
	assert.Equal(t, "MyLib", PascalCase("my-lib"))
	assert.Equal(t, "MyService", PascalCase("my_service"))
	assert.Equal(t, "myLib2", CamelCase("my-lib-2"))
	assert.Equal(t, "MY_LIB", ConstantCase("my-lib"))
	assert.Equal(t, "my-lib", KebabCase("MyLib"))
	assert.Equal(t, "my-lib", KebabCase("my_lib"))
	assert.Equal(t, "", PascalCase(""))
}
