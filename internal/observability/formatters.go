// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jonathan/study-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Content is
// largely Korean, so truncation and padding go by display width, not bytes.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", runewidth.FillRight(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = runewidth.Truncate(line, boxWidth-4, "...")
		fmt.Fprintf(p.out, "│ %s │\n", runewidth.FillRight(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRunLog outputs a human-readable summary of one pipeline run log.
func (p *Printer) PrintRunLog(log *types.RunLog) {
	if log == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:      %s\n", log.ID))
	sb.WriteString(fmt.Sprintf("Service:  %s\n", log.ServiceLabel))
	sb.WriteString(fmt.Sprintf("Started:  %s\n", log.StartedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Status:   %s\n", log.Status))
	if log.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("Error:    %s\n", log.ErrorMessage))
	}
	sb.WriteString("\n")
	for i, step := range log.Steps {
		sb.WriteString(fmt.Sprintf("%d. %s (%s) %s\n", i+1, step.Expert, step.Action, step.Timestamp.Format("15:04:05")))
	}

	p.printBox("Workflow Log", strings.TrimRight(sb.String(), "\n"))
}

// PrintServiceCatalog outputs the available service types with required fields.
func (p *Printer) PrintServiceCatalog() {
	var sb strings.Builder
	for _, st := range types.AllServiceTypes() {
		sb.WriteString(fmt.Sprintf("%s (%s)\n", st.Label(), st))
		sb.WriteString(fmt.Sprintf("  %s\n", st.Description()))
		sb.WriteString(fmt.Sprintf("  fields: %s\n", strings.Join(st.RequiredInputKeys(), ", ")))
	}

	p.printBox("Services", strings.TrimRight(sb.String(), "\n"))
}

// PrintGuide outputs the final guide text under a banner, without boxing the
// body: guides are long and line truncation would lose content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGuide(text string) {
	border := strings.Repeat("═", boxWidth)
	fmt.Fprintf(p.out, "%s\n", border)
	fmt.Fprintf(p.out, "전문가 팀 학습 가이드\n")
	fmt.Fprintf(p.out, "%s\n", border)
	fmt.Fprintf(p.out, "%s\n", text)
}
