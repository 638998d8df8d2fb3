// Package docx renders a composed résumé to a DOCX document.
//
// Like the pdf package it is an adapter over the shared composer: it
// walks the block stream and emits WordprocessingML paragraphs, then
// packs the parts into the OOXML zip container. The container is
// written with fixed header metadata so identical inputs produce
// identical bytes.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/cvf"
)

// Config controls page geometry.
type Config struct {
	// PageSize is "letter" or "a4". Case-insensitive.
	PageSize string
}

// DefaultConfig returns the default rendering configuration.
func DefaultConfig() Config {
	return Config{PageSize: "letter"}
}

// RenderRequest contains inputs for DOCX rendering.
type RenderRequest struct {
	Writer io.Writer
	Resume *cvf.Resume
	Theme  cvf.Theme
	Config Config
}

// Render writes the résumé as a DOCX to req.Writer.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("docx render: writer is nil")
	}
	if req.Resume == nil {
		return fmt.Errorf("docx render: resume is nil")
	}
	page, err := pageDimensions(req.Config.PageSize)
	if err != nil {
		return fmt.Errorf("docx render: %w", err)
	}

	d := documentBuilder{theme: req.Theme, page: page}
	for _, block := range cvf.Compose(req.Resume) {
		d.block(block)
	}

	zw := zip.NewWriter(req.Writer)
	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", d.documentXML()},
		{"word/_rels/document.xml.rels", d.relsXML()},
		{"word/styles.xml", stylesXML(req.Theme)},
	}
	for _, part := range parts {
		// A zeroed Modified field keeps the archive reproducible.
		w, err := zw.CreateHeader(&zip.FileHeader{Name: part.name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("docx render: %w", err)
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return fmt.Errorf("docx render: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("docx render: %w", err)
	}
	return nil
}

// Generate renders the résumé to a file, creating the parent
// directory if needed. The document is assembled fully in memory, so a
// failing render leaves no partial file at the target path.
func Generate(path string, resume *cvf.Resume, theme cvf.Theme, cfg Config) error {
	var buf bytes.Buffer
	if err := Render(RenderRequest{Writer: &buf, Resume: resume, Theme: theme, Config: cfg}); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("docx render: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("docx render: %w", err)
	}
	return nil
}

// pageDims holds page geometry in twips.
type pageDims struct {
	width  int
	height int
}

func pageDimensions(name string) (pageDims, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "letter":
		return pageDims{width: 12240, height: 15840}, nil
	case "a4":
		return pageDims{width: 11906, height: 16838}, nil
	default:
		return pageDims{}, fmt.Errorf("unknown page size %q", name)
	}
}
