package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/config"
	"github.com/amishk599/prepkit/internal/store"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:          "prepkit",
	Short:        "Placement prep from a pasted job description",
	Long:         "Prepkit analyzes a job description into a skill inventory, readiness score, round-wise checklist, 7-day plan and likely interview questions, and keeps the history locally.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: PREPKIT_CONFIG env var or ./prepkit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > PREPKIT_CONFIG env var > "./prepkit.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("PREPKIT_CONFIG"); env != "" {
			path = env
		} else {
			path = "prepkit.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// openHistory opens the SQLite-backed history store from config.
// The returned close func must be called when done.
func openHistory(logger *slog.Logger) (*store.History, func(), error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	kv, err := store.NewSQLiteKV(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return store.NewHistory(kv, logger), func() { kv.Close() }, nil
}
