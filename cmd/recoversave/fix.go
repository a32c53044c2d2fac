package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projectpokemon/recoversave/internal/logger"
	"github.com/projectpokemon/recoversave/pkg/save"
	"github.com/projectpokemon/recoversave/pkg/types"
)

var (
	fixDryRun    bool
	fixSuffix    string
	fixOverwrite bool
	fixDiagnose  bool
)

var fixCmd = &cobra.Command{
	Use:   "fix <save-file>...",
	Short: "Rebuild one or more save files",
	Long: `Rebuilds each save file and writes the result next to it.

For every file the fix command:
1. Rejects files that cannot be a save image (too small or too big)
2. Picks the best copy of each of the 14 blocks
3. Fails if any of blocks 0..3 (trainer, team, world state) is lost
4. Replaces lost box blocks with empty ones
5. Writes <file>.fixed with both save slots identical

The original file is never modified. Existing output files are kept unless
--overwrite is given.`,
	Example: `  # Fix a single save
  recoversave fix game.sav

  # Preview without writing anything
  recoversave fix --dry-run *.sav

  # Machine-readable results
  recoversave fix --json game.sav other.sav`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFix(args)
	},
}

func init() {
	fixCmd.Flags().BoolVarP(&fixDryRun, "dry-run", "n", false,
		"Rebuild but do not write output files")
	fixCmd.Flags().StringVarP(&fixSuffix, "suffix", "s", "",
		"Suffix appended to the input name (default from config, else .fixed)")
	fixCmd.Flags().BoolVarP(&fixOverwrite, "overwrite", "f", false,
		"Replace existing output files")
	fixCmd.Flags().BoolVarP(&fixDiagnose, "diagnose", "d", false,
		"Include a diagnostic report for each file")

	rootCmd.AddCommand(fixCmd)
}

type fixEntry struct {
	*save.FileResult
	Error string `json:"error,omitempty"`
}

func runFix(args []string) error {
	suffix := fixSuffix
	if suffix == "" {
		suffix = cfg.OutputSuffix
	}
	opts := &save.Options{
		Logger:       logger.L,
		OutputSuffix: suffix,
		Overwrite:    fixOverwrite || cfg.Overwrite,
		DryRun:       fixDryRun,
		Diagnose:     fixDiagnose,
	}

	entries := make([]fixEntry, 0, len(args))
	failed := 0
	for _, path := range args {
		fr, err := save.FixFile(path, opts)
		entry := fixEntry{FileResult: fr}
		if err != nil {
			failed++
			entry.Error = err.Error()
			logger.Warn("fix failed", "file", path, "result", fr.Result, "err", err)
		} else {
			logger.Info("fixed", "file", path, "output", fr.Output, "result", fr.Result)
		}
		entries = append(entries, entry)

		if !jsonOut {
			printFixEntry(entry, err)
		}
	}

	if jsonOut {
		if err := printJSON(entries); err != nil {
			return err
		}
	} else if len(args) > 1 {
		printInfo("\n%d fixed, %d failed\n", len(args)-failed, failed)
	}

	if failed > 0 {
		return &exitError{code: 1, msg: fmt.Sprintf("%d of %d file(s) could not be fixed", failed, len(args))}
	}
	return nil
}

func printFixEntry(e fixEntry, err error) {
	fr := e.FileResult
	if fr.Report != nil {
		printInfo("%s\n", formatReport(fr.Report, false))
	}
	if err != nil {
		printError("%s: %v\n", fr.Input, err)
		if fr.Result.Has(types.MissingCriticalBlocks) {
			printVerbose("  trainer, team or world data is gone; nothing was written\n")
		}
		return
	}

	action := "wrote"
	if fixDryRun {
		action = "would write"
	}
	printInfo("✓ %s: %s %s\n", fr.Input, action, fr.Output)
	printVerbose("  size:   %s\n", bytesLabel(fr.Size))
	printVerbose("  result: %s\n", fr.Result)
	if fr.Result.Has(types.Inflated) {
		printInfo("  half-size input was inflated to a full image\n")
	}
	if fr.Result.Has(types.MissingBoxBlocks) {
		printInfo("  some PC box blocks were lost and are now empty\n")
	}
	if fr.Result.Has(types.MissingExtraBlocks) {
		printInfo("  some supplemental data (Hall of Fame, records) was dropped\n")
	}
}
