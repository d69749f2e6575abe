package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

// Render renders a single embedded template asset with the given data.
// The asset path is relative to the assets root, e.g.
// "contract/types.ts.tmpl".
func Render(asset string, data Data) ([]byte, error) {
	content, err := fs.ReadFile(FS, path.Join("assets", asset))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", asset, err)
	}

	tmpl, err := template.New(asset).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", asset, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", asset, err)
	}

	return buf.Bytes(), nil
}

// List returns the asset paths under one template directory, relative to
// the assets root, with the .tmpl suffix intact.
func List(dir string) ([]string, error) {
	var assets []string

	root := path.Join("assets", dir)
	err := fs.WalkDir(FS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".tmpl") {
			return nil
		}
		assets = append(assets, strings.TrimPrefix(p, "assets/"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates %s: %w", dir, err)
	}

	return assets, nil
}
