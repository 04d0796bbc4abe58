// Package textextract converts documents to plain text with external tools
// (pdftotext for PDF, LibreOffice for Word) before compression.
package textextract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adilg123/huffpack/internal/fileio"
)

// MaxOutputSize is the default limit on extracted text.
const MaxOutputSize = 1 << 20 // 1 MiB

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrOutputTooLarge    = errors.New("extracted text too large")
)

// CommandRunner runs an external program and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// Extractor turns .pdf, .doc and .docx files into text.
type Extractor struct {
	Run           CommandRunner
	TempDir       string // LibreOffice output directory, os.TempDir() if empty
	MaxOutputSize int    // MaxOutputSize if zero
}

// New returns an Extractor backed by real processes.
func New() *Extractor {
	return &Extractor{Run: ExecRunner}
}

// NeedsExtraction reports whether path has a document extension.
func NeedsExtraction(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".doc", ".docx":
		return true
	}
	return false
}

// Extract returns the plain text of the document at path.
func (e *Extractor) Extract(ctx context.Context, path string) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var (
		text []byte
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = e.run(ctx, "pdftotext", "-q", path, "-")
	case ".doc", ".docx":
		text, err = e.convertWithLibreOffice(ctx, path)
	case "":
		return nil, fmt.Errorf("%s: no file extension: %w", path, ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%s: %w", ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}
	if limit := e.limit(); len(text) > limit {
		return nil, fmt.Errorf("%s: %d bytes, limit %d: %w", path, len(text), limit, ErrOutputTooLarge)
	}
	return text, nil
}

func (e *Extractor) convertWithLibreOffice(ctx context.Context, path string) ([]byte, error) {
	outDir := e.TempDir
	if outDir == "" {
		outDir = os.TempDir()
	}
	if _, err := e.run(ctx, "libreoffice", "--headless", "--convert-to", "txt:Text", "--outdir", outDir, path); err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return fileio.ReadAll(filepath.Join(outDir, base+".txt"))
}

func (e *Extractor) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	run := e.Run
	if run == nil {
		run = ExecRunner
	}
	return run(ctx, name, args...)
}

func (e *Extractor) limit() int {
	if e.MaxOutputSize > 0 {
		return e.MaxOutputSize
	}
	return MaxOutputSize
}
