package midgard

import (
	"io"
	"os"
	"path/filepath"
)

// Export compiles the document and writes the standalone HTML document to w.
func Export(doc Document, w io.Writer, opts ...Option) error {
	app := New(doc, opts...)
	page, err := app.Page()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, RenderDocument(page, app.cssHref))
	return err
}

// ExportFile writes the compiled page to path, creating parent
// directories as needed.
func ExportFile(doc Document, path string, opts ...Option) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Export(doc, f, opts...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
