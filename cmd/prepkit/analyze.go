package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/analysis"
	"github.com/amishk599/prepkit/internal/taxonomy"
)

var (
	analyzeCompany string
	analyzeRole    string
	analyzeFile    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description",
	Long:  "Reads a job description from --file (or stdin), derives the skill inventory, readiness score, checklist, plan and questions, and saves the result to history.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "company label (optional)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "role label (optional)")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "read the job description from this file instead of stdin")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	jdText, err := readJD(analyzeFile)
	if err != nil {
		return err
	}

	submission := analysis.Submission{
		Company: analyzeCompany,
		Role:    analyzeRole,
		JDText:  jdText,
	}

	result := analysis.Validate(submission)
	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	if !result.OK() {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, "error:", e)
		}
		os.Exit(1)
	}

	entry := analysis.NewRunner().Run(analysis.Sanitize(submission))

	history, closeStore, err := openHistory(logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	if err := history.Save(entry); err != nil {
		// A failed write loses durability, not the analysis itself.
		logger.Error("failed to save entry, printing result anyway", "error", err)
	}

	fmt.Printf("Readiness score: %d/100\n\n", entry.FinalScore)
	for _, c := range taxonomy.Categories {
		matched := entry.ExtractedSkills[c.Key]
		if len(matched) == 0 {
			continue
		}
		fmt.Printf("%-14s %s\n", c.Label, strings.Join(matched, ", "))
	}
	fmt.Printf("\nSaved as %s\n", entry.ID)
	fmt.Printf("Run `prepkit show %s` for the full report, `prepkit skills` to toggle skills.\n", shortID(entry.ID))
	return nil
}

func readJD(path string) (string, error) {
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read job description: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read job description from stdin: %w", err)
	}
	return string(data), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
