package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iyefymov/mailmerge/internal/config"
	"github.com/iyefymov/mailmerge/internal/docx"
	"github.com/iyefymov/mailmerge/internal/merge"
	"github.com/iyefymov/mailmerge/internal/xlsx"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show data columns, template placeholders and the mapping check",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runInspect(cmd.OutOrStdout(), cfg)
		},
	}
}

func runInspect(out io.Writer, cfg config.Config) error {
	src, err := xlsx.Open(cfg.Excel, cfg.Sheet)
	if err != nil {
		return err
	}
	defer src.Close()

	section(out, "DATA SOURCE")
	fmt.Fprintf(out, "\nFile: %s\n", cfg.Excel)
	fmt.Fprintf(out, "Sheet: %s\n", src.Sheet())
	fmt.Fprintf(out, "Total rows: %d\n", len(src.Records()))

	cols := src.Columns()
	fmt.Fprintf(out, "\nColumns (%d):\n", len(cols))
	for i, col := range cols {
		fmt.Fprintf(out, "  %2d. %s\n", i+1, col)
	}

	if records := src.Records(); len(records) > 0 {
		fmt.Fprintf(out, "\nFirst row sample:\n")
		for _, col := range cols {
			fmt.Fprintf(out, "  %s: %s\n", col, truncate(records[0][col], 60))
		}
	}

	tpl, err := docx.OpenTemplate(cfg.Template)
	if err != nil {
		return err
	}
	defer tpl.Close()

	doc, err := tpl.Instance()
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	section(out, "TEMPLATE")
	fmt.Fprintf(out, "\nFile: %s\n", cfg.Template)
	fmt.Fprintf(out, "Paragraphs: %d, tables: %d\n", len(doc.Paragraphs()), len(doc.Tables()))

	names := merge.Placeholders(doc)
	fmt.Fprintf(out, "\nPlaceholders found (%d):\n", len(names))
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", merge.Token(name))
	}

	fmt.Fprintln(out)
	section(out, "PLACEHOLDER MAPPING")

	colSet := map[string]bool{}
	for _, col := range cols {
		colSet[col] = true
	}
	for _, name := range names {
		col, ok := cfg.Placeholders.Column(name)
		switch {
		case !ok:
			fmt.Fprintf(out, "  %s %s -> NOT MAPPED\n", color.RedString("✗"), merge.Token(name))
		case !colSet[col]:
			fmt.Fprintf(out, "  %s %s -> %q (COLUMN NOT FOUND)\n", color.RedString("✗"), merge.Token(name), col)
		default:
			fmt.Fprintf(out, "  %s %s -> %q\n", color.GreenString("✓"), merge.Token(name), col)
		}
	}

	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
