package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade legacy history entries to the current schema",
	Long:  "Backfills baseScore/finalScore/updatedAt on entries written under the old schema and remaps their category labels. Safe to run repeatedly; already-current entries are untouched.",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	history, closeStore, err := openHistory(logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	migrated, err := history.MigrateLegacyEntries()
	if err != nil {
		return err
	}
	if migrated == 0 {
		fmt.Println("Nothing to migrate.")
		return nil
	}
	fmt.Printf("Migrated %d entries.\n", migrated)
	return nil
}
