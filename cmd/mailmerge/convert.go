package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iyefymov/mailmerge/internal/config"
	"github.com/iyefymov/mailmerge/internal/pdf"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Convert existing documents in the output directory to PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			files, err := filepath.Glob(filepath.Join(cfg.OutputDir, "*.docx"))
			if err != nil {
				return err
			}
			sort.Strings(files)

			if len(files) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No .docx files found in %s\n", cfg.OutputDir)
				return nil
			}
			return convertBatch(cmd, cfg, files)
		},
	}
}

// convertBatch drives the per-file PDF conversion. One failing document
// is reported and the batch continues; only a missing LibreOffice
// aborts, and already-generated documents are kept either way.
func convertBatch(cmd *cobra.Command, cfg config.Config, files []string) error {
	out := cmd.OutOrStdout()

	conv, err := pdf.New()
	if err != nil {
		return err
	}
	conv.Timeout = cfg.PDFTimeout()

	fmt.Fprintf(out, "\nConverting %d documents to PDF...\n", len(files))
	fmt.Fprintf(out, "Output PDF directory: %s\n", cfg.PDFDir)
	fmt.Fprintf(out, "Using LibreOffice: %s\n", conv.Binary)

	stats := conv.ConvertAll(cmd.Context(), files, cfg.PDFDir, func(i, n int, pdfPath string, err error) {
		if err != nil {
			fmt.Fprintf(out, "  [%d/%d] %s\n", i, n, color.RedString("FAILED: %v", err))
			return
		}
		fmt.Fprintf(out, "  [%d/%d] Converted: %s\n", i, n, filepath.Base(pdfPath))
	})

	fmt.Fprintln(out)
	fmt.Fprintln(out, summaryStyle.Render(fmt.Sprintf("Done! Converted %d/%d files to PDF.", stats.Converted, stats.Attempted)))
	return nil
}
