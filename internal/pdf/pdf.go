// Package pdf converts generated documents to fixed-layout PDF through
// a headless LibreOffice, one file per invocation.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound reports that no usable soffice binary exists on this
// system; the message carries the install remediation the operator sees.
var ErrNotFound = errors.New("LibreOffice (soffice) not found; install it with `brew install --cask libreoffice` or your distribution's package manager, then re-run")

// DefaultTimeout bounds a single conversion. LibreOffice can wedge on
// one bad document and the rest of the batch must outlive it.
const DefaultTimeout = 120 * time.Second

// Well-known install locations checked after PATH.
var knownPaths = []string{
	"/Applications/LibreOffice.app/Contents/MacOS/soffice",
	"/usr/local/bin/soffice",
	"/usr/bin/soffice",
	"/opt/libreoffice/program/soffice",
}

// Find locates the soffice executable.
func Find() (string, error) {
	if p, err := exec.LookPath("soffice"); err == nil {
		return p, nil
	}
	for _, p := range knownPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", ErrNotFound
}

// Converter runs soffice in headless mode.
type Converter struct {
	Binary  string
	Timeout time.Duration // per file; DefaultTimeout when zero
}

// New returns a Converter bound to the soffice binary discovered on
// this system.
func New() (*Converter, error) {
	bin, err := Find()
	if err != nil {
		return nil, err
	}
	return &Converter{Binary: bin, Timeout: DefaultTimeout}, nil
}

// Convert renders one .docx to PDF inside outDir and returns the path
// of the produced file.
func (c *Converter) Convert(ctx context.Context, docxPath, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", outDir, err)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Binary,
		"--headless", "--convert-to", "pdf", "--outdir", outDir, docxPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	name := filepath.Base(docxPath)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("convert %s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}

	pdfPath := filepath.Join(outDir, strings.TrimSuffix(name, filepath.Ext(name))+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("convert %s: soffice exited 0 but produced no PDF: %s",
			name, strings.TrimSpace(stderr.String()))
	}
	return pdfPath, nil
}

// Failure records one document the batch could not convert.
type Failure struct {
	Path string
	Err  error
}

// Stats summarizes one conversion batch.
type Stats struct {
	Attempted int
	Converted int
	Failures  []Failure
}

// ConvertAll converts every file into outDir, isolating failures: a bad
// document is recorded and the batch moves on to its siblings. The
// optional progress callback fires after each file.
func (c *Converter) ConvertAll(ctx context.Context, files []string, outDir string, progress func(i, n int, pdfPath string, err error)) Stats {
	stats := Stats{Attempted: len(files)}
	for i, f := range files {
		pdfPath, err := c.Convert(ctx, f, outDir)
		if err != nil {
			stats.Failures = append(stats.Failures, Failure{Path: f, Err: err})
		} else {
			stats.Converted++
		}
		if progress != nil {
			progress(i+1, len(files), pdfPath, err)
		}
	}
	return stats
}
