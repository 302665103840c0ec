package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses",
	Long:  "Prints a table of all saved analyses, newest first. Entries that fail schema validation are skipped.",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	history, closeStore, err := openHistory(logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	entries, err := history.History()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No analyses yet. Run `prepkit analyze` first.")
		return nil
	}

	fmt.Printf("%-10s %-17s %-25s %-20s %s\n", "ID", "Date", "Company", "Role", "Score")
	fmt.Println(strings.Repeat("─", 80))
	for _, e := range entries {
		fmt.Printf("%-10s %-17s %-25s %-20s %d/100\n",
			shortID(e.ID),
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(orDash(e.Company), 25),
			truncate(orDash(e.Role), 20),
			e.FinalScore,
		)
	}
	fmt.Printf("\nTotal: %d analyses\n", len(entries))
	return nil
}

// resolveEntry finds an entry by full id or unique prefix. An empty idArg
// resolves to the latest entry.
func resolveEntry(history *store.History, idArg string) (model.Entry, error) {
	if idArg == "" {
		latest, ok, err := history.Latest()
		if err != nil {
			return model.Entry{}, err
		}
		if !ok {
			return model.Entry{}, fmt.Errorf("history is empty")
		}
		return latest, nil
	}

	entries, err := history.History()
	if err != nil {
		return model.Entry{}, err
	}

	var matches []model.Entry
	for _, e := range entries {
		if e.ID == idArg {
			return e, nil
		}
		if strings.HasPrefix(e.ID, idArg) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Entry{}, fmt.Errorf("no entry matches %q", idArg)
	default:
		return model.Entry{}, fmt.Errorf("%q is ambiguous, matches %d entries", idArg, len(matches))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
