package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/flashdeck/internal/config"
	"github.com/Iron-Ham/flashdeck/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the flashdeck debug log",
	Long: `View and filter the flashdeck debug log.

Logging is off by default; enable it with:
  flashdeck config set logging.enabled true

Examples:
  # Show the last 50 entries
  flashdeck logs

  # Show everything logged for one deck
  flashdeck logs --deck Spanish -n 0

  # Warnings and errors from the last hour
  flashdeck logs --level warn --since 1h`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsTail      int
	logsLevel     string
	logsSince     string
	logsDeck      string
	logsComponent string
	logsGrep      string
	logsJSON      bool
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show entries since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsDeck, "deck", "", "Filter by deck name")
	logsCmd.Flags().StringVar(&logsComponent, "component", "", "Filter by component (menu/store/study/tui)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter entries whose message contains this text")
	logsCmd.Flags().BoolVar(&logsJSON, "json", false, "Print entries as JSON lines")
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	filter := logging.LogFilter{
		Level:           logsLevel,
		Deck:            logsDeck,
		Component:       logsComponent,
		MessageContains: logsGrep,
	}
	if logsSince != "" {
		d, err := time.ParseDuration(logsSince)
		if err != nil {
			return fmt.Errorf("invalid --since duration %q: %w", logsSince, err)
		}
		filter.Since = time.Now().Add(-d)
	}

	path := filepath.Join(cfg.Logging.ResolveDir(), logging.FileName)
	entries, err := logging.ReadLogs(path)
	if err != nil {
		return err
	}
	entries = logging.Tail(logging.FilterLogs(entries, filter), logsTail)

	out := cmd.OutOrStdout()
	if logsJSON {
		enc := json.NewEncoder(out)
		for _, e := range entries {
			if err := enc.Encode(e); err != nil {
				return fmt.Errorf("failed to encode entry: %w", err)
			}
		}
		return nil
	}
	for _, e := range entries {
		fmt.Fprintln(out, logging.FormatEntry(e))
	}
	return nil
}
