package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	history, closeStore, err := openHistory(logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	entry, err := resolveEntry(history, args[0])
	if err != nil {
		return err
	}
	if err := history.DeleteEntry(entry.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", entry.ID)
	return nil
}
