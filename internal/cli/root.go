package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:          "sudoku",
		Short:        "Sudoku — solve, generate, and serve 9x9 puzzles",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: parseLevel(level),
			}))
		},
	}
	cmd.PersistentFlags().StringVar(&level, "log-level", "info", "debug|info|warn|error")

	cmd.AddCommand(
		solveCmd(),
		generateCmd(),
		validateCmd(),
		countCmd(),
		hintCmd(),
		serveCmd(),
	)
	return cmd
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
