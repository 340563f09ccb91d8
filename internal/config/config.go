// Package config loads the run configuration for mailmerge.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iyefymov/mailmerge/internal/merge"
)

// DefaultPath is the config file looked up when none is named.
const DefaultPath = "mailmerge.yml"

// Config drives one generation run. The defaults match the conventional
// project layout: dataset and template next to the config file.
type Config struct {
	Excel     string `yaml:"excel"`
	Sheet     string `yaml:"sheet"` // empty selects the first sheet
	Template  string `yaml:"template"`
	OutputDir string `yaml:"output_dir"`
	PDFDir    string `yaml:"pdf_dir"`

	// Record fields the output identifier is built from; when every one
	// is blank for a record the row number names it instead.
	FilenameColumns []string `yaml:"filename_columns"`

	PDFTimeoutSeconds int `yaml:"pdf_timeout_seconds"`

	// Ordered placeholder-to-column rules.
	Placeholders merge.Mapping `yaml:"placeholders"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Excel:             "dataset.xlsx",
		Template:          "template.docx",
		OutputDir:         "output",
		PDFDir:            "output_pdf",
		PDFTimeoutSeconds: 120,
	}
}

// Load reads the configuration at path. An empty path falls back to
// DefaultPath, and its absence is not an error - the defaults apply; a
// file named explicitly must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	// a file that clears a path field falls back to the default
	def := Default()
	if cfg.Excel == "" {
		cfg.Excel = def.Excel
	}
	if cfg.Template == "" {
		cfg.Template = def.Template
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.PDFDir == "" {
		cfg.PDFDir = def.PDFDir
	}
	if cfg.PDFTimeoutSeconds <= 0 {
		cfg.PDFTimeoutSeconds = def.PDFTimeoutSeconds
	}

	return cfg, nil
}

// PDFTimeout - per-file conversion bound as a duration
func (c Config) PDFTimeout() time.Duration {
	return time.Duration(c.PDFTimeoutSeconds) * time.Second
}
