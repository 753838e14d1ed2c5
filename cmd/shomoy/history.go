package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/banglasoft/shomoy/internal/history"
)

var historyOpts struct {
	limit int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent announcements",
	Long: `Show recent announcements from the history log, newest first.

Each line shows when the announcement happened and which clips were
played. Clips skipped because of missing files or playback errors are
called out separately.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyOpts.limit, "limit", 20,
		"Maximum announcements to show (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	log, err := history.Open(cfg.History.File)
	if err != nil {
		return fmt.Errorf("failed to open history log: %w", err)
	}
	defer func() { _ = log.Close() }()

	entries, err := log.Entries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No announcements recorded.")
		return nil
	}

	// Newest first
	shown := 0
	for i := len(entries) - 1; i >= 0; i-- {
		if historyOpts.limit > 0 && shown == historyOpts.limit {
			break
		}
		e := entries[i]

		line := fmt.Sprintf("%s  %-12s  %s",
			e.Time().Format("2006-01-02 15:04"),
			humanize.Time(e.Time()),
			strings.Join(e.Clips, " "))
		if len(e.Skipped) > 0 {
			line += fmt.Sprintf("  (%d skipped)", len(e.Skipped))
		}
		fmt.Println(line)
		shown++
	}

	return nil
}
