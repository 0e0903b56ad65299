package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"draftline/internal/quality"
)

// renderReport prints the run verdict as a summary table followed by any
// failure, warning, and degradation lines.
func renderReport(out io.Writer, report quality.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Run", report.RunID},
		{"Season", report.Season},
		{"Week", report.Week},
		{"Status", strings.ToUpper(string(report.Status))},
		{"Match rate", fmt.Sprintf("%.2f%%", report.MatchRate)},
		{"Roster", report.Counts.Roster},
		{"ADP candidates", report.Counts.ADPCandidates},
		{"Matched ADP", report.Counts.MatchedADP},
		{"Week stats", report.Counts.WeekStats},
		{"Consolidated", report.Counts.Consolidated},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()

	for _, f := range report.Failures {
		fmt.Fprintf(out, "FAIL: %s\n", f)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(out, "WARN: %s\n", w)
	}
	for _, d := range report.Degraded {
		fmt.Fprintf(out, "DEGRADED: %s\n", d)
	}
}
