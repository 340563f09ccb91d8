// Package main provides the entry point for the mailmerge CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/iyefymov/mailmerge/internal/config"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(buildVersion())); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the mailmerge CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mailmerge",
		Short: "Generate Word documents from spreadsheet data",
		Long: `Mailmerge fills a .docx template once per spreadsheet row.

Placeholders are written «Like_This» in the template and bound to sheet
columns in mailmerge.yml. Each row produces one document named from its
designated fields; optionally every document is converted to PDF through
a headless LibreOffice.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "", "config file (default mailmerge.yml when present)")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newConvertCmd())

	return cmd
}

// loadConfig resolves the run configuration from the persistent flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
