package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/report"
)

var (
	showPlan      bool
	showChecklist bool
	showQuestions bool
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print an analysis report",
	Long:  "Prints the full readiness report for an entry (the latest when no id is given). Use --plan, --checklist or --questions for a single section.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showPlan, "plan", false, "print only the 7-day plan")
	showCmd.Flags().BoolVar(&showChecklist, "checklist", false, "print only the round-wise checklist")
	showCmd.Flags().BoolVar(&showQuestions, "questions", false, "print only the interview questions")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	switch {
	case showPlan:
		fmt.Print(report.PlanText(entry.Plan))
	case showChecklist:
		fmt.Print(report.ChecklistText(entry.Checklist))
	case showQuestions:
		fmt.Print(report.QuestionsText(entry.Questions))
	default:
		fmt.Print(report.CompleteReport(entry))
	}
	return nil
}
