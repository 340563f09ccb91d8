package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iyefymov/mailmerge/internal/config"
	"github.com/iyefymov/mailmerge/internal/merge"
)

func TestLoadFile(t *testing.T) {
	body := `
excel: eois.xlsx
sheet: "2. Filtered-Complete EOIs"
template: nomination.docx
output_dir: generated
pdf_dir: generated_pdf
pdf_timeout_seconds: 30
filename_columns:
  - PI Name
  - Nominee name
placeholders:
  - placeholder: PI_Name
    column: PI Name
  - placeholder: Project_Title
    column: Project Title
`
	path := filepath.Join(t.TempDir(), "mailmerge.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "eois.xlsx", cfg.Excel)
	assert.Equal(t, "2. Filtered-Complete EOIs", cfg.Sheet)
	assert.Equal(t, "nomination.docx", cfg.Template)
	assert.Equal(t, "generated", cfg.OutputDir)
	assert.Equal(t, "generated_pdf", cfg.PDFDir)
	assert.Equal(t, 30*time.Second, cfg.PDFTimeout())
	assert.Equal(t, []string{"PI Name", "Nominee name"}, cfg.FilenameColumns)
	assert.Equal(t, merge.Mapping{
		{Placeholder: "PI_Name", Column: "PI Name"},
		{Placeholder: "Project_Title", Column: "Project Title"},
	}, cfg.Placeholders, "mapping rules keep file order")
}

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "dataset.xlsx", cfg.Excel)
	assert.Equal(t, "template.docx", cfg.Template)
	assert.Equal(t, 120*time.Second, cfg.PDFTimeout())
}

func TestLoadDefaultPathWhenPresent(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(config.DefaultPath, []byte("excel: other.xlsx\n"), 0o644))

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "other.xlsx", cfg.Excel)
	assert.Equal(t, "template.docx", cfg.Template, "unset fields keep defaults")
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err, "a file named explicitly must exist")
}

func TestLoadBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("excel: [unclosed"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
