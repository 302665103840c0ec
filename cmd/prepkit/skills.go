package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/tui"
)

var skillsCmd = &cobra.Command{
	Use:   "skills [id]",
	Short: "Toggle skill confidence interactively (TUI)",
	Long:  "Opens the skill list for an entry (the latest when no id is given). Toggling a skill between know and practice recomputes and persists the live score.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSkills,
}

var skillsSetCmd = &cobra.Command{
	Use:   "set <id> <keyword> <know|practice>",
	Short: "Set one skill's confidence without the TUI",
	Args:  cobra.ExactArgs(3),
	RunE:  runSkillsSet,
}

func init() {
	skillsCmd.AddCommand(skillsSetCmd)
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

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

	final, err := tui.RunSkillToggle(entry, history)
	if err != nil {
		return err
	}
	fmt.Printf("Readiness score: %d/100 (base %d)\n", final.FinalScore, final.BaseScore)
	return nil
}

func runSkillsSet(cmd *cobra.Command, args []string) error {
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

	updated, err := history.UpdateSkillConfidence(entry.ID, args[1], model.Confidence(args[2]))
	if err != nil {
		return err
	}
	fmt.Printf("%s → %s, readiness score: %d/100\n", args[1], args[2], updated.FinalScore)
	return nil
}
