package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iyefymov/mailmerge/internal/config"
	"github.com/iyefymov/mailmerge/internal/docx"
	"github.com/iyefymov/mailmerge/internal/filename"
	"github.com/iyefymov/mailmerge/internal/merge"
	"github.com/iyefymov/mailmerge/internal/xlsx"
)

func newGenerateCmd() *cobra.Command {
	var dryRun, toPDF bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one document per data row",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg, dryRun, toPDF)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be generated without creating files")
	cmd.Flags().BoolVar(&toPDF, "pdf", false, "convert generated documents to PDF afterwards")

	return cmd
}

func runGenerate(cmd *cobra.Command, cfg config.Config, dryRun, toPDF bool) error {
	out := cmd.OutOrStdout()

	src, err := xlsx.Open(cfg.Excel, cfg.Sheet)
	if err != nil {
		return err
	}
	defer src.Close()

	tpl, err := docx.OpenTemplate(cfg.Template)
	if err != nil {
		return err
	}
	defer tpl.Close()

	records := src.Records()
	fmt.Fprintf(out, "Generating %d documents...\n", len(records))
	fmt.Fprintf(out, "Output directory: %s\n", cfg.OutputDir)

	if dryRun {
		fmt.Fprintf(out, "\n[DRY RUN - no files will be created]\n\n")
	} else if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", cfg.OutputDir, err)
	}

	var generated []string
	for i, rec := range records {
		parts := make([]string, 0, len(cfg.FilenameColumns))
		for _, col := range cfg.FilenameColumns {
			parts = append(parts, rec[col])
		}
		name := filename.Identifier(parts, i+1) + ".docx"
		outPath := filepath.Join(cfg.OutputDir, name)

		if dryRun {
			fmt.Fprintf(out, "  would create: %s\n", outPath)
			if toPDF {
				pdfName := strings.TrimSuffix(name, ".docx") + ".pdf"
				fmt.Fprintf(out, "  would convert to: %s\n", filepath.Join(cfg.PDFDir, pdfName))
			}
			continue
		}

		// Fresh instance per row so rows never see each other's state.
		doc, err := merge.Render(tpl, rec, cfg.Placeholders)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := tpl.Save(doc, outPath); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		fmt.Fprintf(out, "  %s %s\n", color.GreenString("created:"), outPath)
		generated = append(generated, outPath)
	}

	if dryRun {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, summaryStyle.Render(fmt.Sprintf("Done! Generated %d documents in %s", len(generated), cfg.OutputDir)))

	if !toPDF || len(generated) == 0 {
		return nil
	}
	return convertBatch(cmd, cfg, generated)
}
