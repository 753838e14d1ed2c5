package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/banglasoft/shomoy/internal/audio"
	"github.com/banglasoft/shomoy/internal/clip"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that all required audio clips are present",
	Long: `Run the startup preflight check without announcing anything.

Lists any required audio clips that have no backing file in the clips
directory.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	lib, err := audio.NewLibrary(cfg.Audio.Dir, logger)
	if err != nil {
		return err
	}

	missing := lib.Missing()
	if len(missing) == 0 {
		fmt.Printf("All %d clips present in %s\n", len(clip.Required()), lib.Dir())
		return nil
	}

	printMissing(lib.Dir(), missing)
	return nil
}
