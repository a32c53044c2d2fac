package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/projectpokemon/recoversave/internal/logger"
	"github.com/projectpokemon/recoversave/pkg/save"
	"github.com/projectpokemon/recoversave/pkg/types"
)

var inspectSummary bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <save-file>",
	Short: "Report on a save file without changing anything",
	Long: `Scans a save file and reports which copy of each block would be used,
every sector that is damaged or foreign, and what fixing the file would do.

Exit status is 2 when the file cannot be fixed and 1 when blocks would be
lost. Warnings alone exit 0.`,
	Example: `  # Human-readable report
  recoversave inspect game.sav

  # Full report as JSON
  recoversave inspect --json game.sav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args)
	},
}

func init() {
	inspectCmd.Flags().BoolVarP(&inspectSummary, "summary", "s", false,
		"Show only the summary (no block table or diagnostics)")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(args []string) error {
	path := args[0]
	report, err := save.InspectFile(path, &save.Options{Logger: logger.L})
	if err != nil {
		logger.Error("inspect failed", "file", path, "err", err)
		return fmt.Errorf("inspect %s: %w", path, err)
	}

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
	} else {
		fmt.Print(formatReport(report, inspectSummary))
	}

	switch {
	case report.HasCriticalIssues():
		return &exitError{code: 2, msg: "critical issues found"}
	case report.HasErrors():
		return &exitError{code: 1, msg: "errors found"}
	}
	if jsonOut {
		return nil
	}
	if report.Summary.Warnings > 0 {
		printInfo("\n✓ Warnings found (non-critical)\n")
	} else {
		printInfo("\n✓ No issues found\n")
	}
	return nil
}

func formatReport(r *types.DiagnosticReport, summaryOnly bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "File:        %s\n", r.FilePath)
	fmt.Fprintf(&b, "Size:        %s (%s)\n", bytesLabel(int64(r.Size)), r.SizeClass)
	fmt.Fprintf(&b, "Result:      %s\n", r.Result)
	fmt.Fprintf(&b, "Max counter: %d\n", r.MaxCounter)
	fmt.Fprintf(&b, "Scan time:   %v\n\n", r.ScanTime)

	if !summaryOnly && len(r.Blocks) > 0 {
		b.WriteString("Blocks:\n")
		fmt.Fprintf(&b, "  %-3s %-13s %-7s %-8s %s\n", "ID", "STATE", "SECTOR", "COUNTER", "COPIES")
		for _, blk := range r.Blocks {
			sector := "-"
			if blk.State != types.StateMissing {
				sector = fmt.Sprint(blk.Sector)
			}
			critical := ""
			if blk.Critical {
				critical = "critical"
			}
			row := fmt.Sprintf("  %-3d %-13s %-7s %-8d %-7d %s",
				blk.ID, blk.State, sector, blk.Counter, blk.Copies, critical)
			b.WriteString(strings.TrimRight(row, " ") + "\n")
		}
		b.WriteString("\n")
	}

	if !summaryOnly && len(r.Diagnostics) > 0 {
		fmt.Fprintf(&b, "Diagnostics (%d):\n", len(r.Diagnostics))
		for _, d := range r.Diagnostics {
			b.WriteString("  " + formatDiagnostic(d) + "\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Critical:  %d\n", r.Summary.Critical)
	fmt.Fprintf(&b, "Errors:    %d\n", r.Summary.Errors)
	fmt.Fprintf(&b, "Warnings:  %d\n", r.Summary.Warnings)
	fmt.Fprintf(&b, "Info:      %d\n", r.Summary.Info)
	return b.String()
}

func formatDiagnostic(d types.Diagnostic) string {
	var where []string
	if d.Sector >= 0 {
		where = append(where, fmt.Sprintf("sector %d", d.Sector))
	}
	if d.Block >= 0 {
		where = append(where, fmt.Sprintf("block %d", d.Block))
	}
	line := fmt.Sprintf("[%s] 0x%05X", d.Severity, d.Offset)
	if len(where) > 0 {
		line += " " + strings.Join(where, " ")
	}
	line += ": " + d.Issue
	if d.Expected != nil || d.Actual != nil {
		line += fmt.Sprintf(" (expected %v, got %v)", fmtValue(d.Expected), fmtValue(d.Actual))
	}
	if d.Repair != nil {
		line += fmt.Sprintf(" -> %s: %s", d.Repair.Type, d.Repair.Description)
	}
	return line
}

func fmtValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case uint16:
		return fmt.Sprintf("0x%04X", x)
	case uint32:
		return fmt.Sprintf("0x%08X", x)
	default:
		return fmt.Sprint(x)
	}
}
