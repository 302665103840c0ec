package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/report"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Write the readiness report to a file",
	Long:  "Renders the composite report for an entry (the latest when no id is given) and writes it to --out, or report-<id>.txt in the configured export directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	history, closeStore, err := openHistory(logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	idArg := ""
	if len(args) > 0 {
		idArg = args[0]
	}
	entry, err := resolveEntry(history, idArg)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = filepath.Join(cfg.ExportDir, fmt.Sprintf("report-%s.txt", shortID(entry.ID)))
	}

	if err := os.WriteFile(out, []byte(report.CompleteReport(entry)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}
