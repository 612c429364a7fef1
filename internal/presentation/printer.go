package presentation

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"phostamp/internal/domain"
)

var (
	colorGreen  = color.New(color.FgGreen).Add(color.Bold).SprintFunc()
	colorRed    = color.New(color.FgRed).Add(color.Bold).SprintFunc()
	colorYellow = color.New(color.FgYellow).SprintFunc()
)

const displayLayout = "2006-01-02 15:04:05"

type Printer struct {
	Writer io.Writer
}

// PrintHeader reports what the run is about to do: how many files matched,
// where the timestamps start, and how far apart they are.
func (p Printer) PrintHeader(plan domain.Plan) {
	fmt.Fprintf(p.Writer, "Found %d image files\n", len(plan.Items))
	fmt.Fprintf(p.Writer, "Starting date: %s\n", plan.Start.Format(displayLayout))
	fmt.Fprintf(p.Writer, "Increment: %d minutes\n", int(plan.Increment.Minutes()))
}

// PrintProgress emits one per-file line with the completed percentage.
func (p Printer) PrintProgress(done, total int, entry domain.FileEntry, at time.Time) {
	percent := float64(done) / float64(total) * 100
	fmt.Fprintf(p.Writer, "[%5.1f%%] Updated %s to %s\n", percent, entry.Name, at.Format(displayLayout))
}

// PrintDryRun lists the planned assignments without side effects.
func (p Printer) PrintDryRun(plan domain.Plan) {
	p.PrintHeader(plan)
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, "Would assign:")
	for _, line := range formatAssignmentLines(plan.Items) {
		fmt.Fprintln(p.Writer, line)
	}
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, colorYellow("Dry run - no timestamps were changed."))
}

func (p Printer) PrintDone(plan domain.Plan) {
	fmt.Fprintln(p.Writer, colorGreen(fmt.Sprintf("Updated %d files.", len(plan.Items))))
}

func (p Printer) PrintEmpty() {
	fmt.Fprintln(p.Writer, "No image files found in the directory")
}

func (p Printer) PrintError(msg string) {
	fmt.Fprintln(p.Writer, colorRed(msg))
}

// formatAssignmentLines keeps long plans readable: past six entries only the
// first and last two are shown.
func formatAssignmentLines(items []domain.Assignment) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s  %s", item.Entry.Name, item.At.Format(displayLayout)))
	}

	if len(lines) <= 6 {
		return lines
	}
	head := lines[:2]
	tail := lines[len(lines)-2:]
	middle := fmt.Sprintf("... %d more files ...", len(lines)-4)
	return append(append(head, middle), tail...)
}
