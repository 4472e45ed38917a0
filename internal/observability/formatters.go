// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/match-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of an evaluation.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:      %.0f%%\n", result.Score*100))
	sb.WriteString(fmt.Sprintf("Confidence: %s\n", result.Confidence))
	sb.WriteString("\n")

	if len(result.Matches) > 0 {
		sb.WriteString("Matched:\n")
		count := min(len(result.Matches), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := result.Matches[i]
			sb.WriteString(fmt.Sprintf("  • %s", m.Name))
			if !m.ProficiencyMatch {
				sb.WriteString(" (below the proficiency bar)")
			}
			sb.WriteString("\n")
		}
		if len(result.Matches) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Matches)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Gaps) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(result.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			g := result.Gaps[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)", g.Name, g.Importance))
			if len(g.AlternativeSkills) > 0 {
				sb.WriteString(fmt.Sprintf(" — you hold: %s", strings.Join(g.AlternativeSkills, ", ")))
			}
			sb.WriteString("\n")
		}
		if len(result.Gaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Gaps)-maxItemsToShow))
		}
	}

	p.printBox("Match Result", strings.TrimRight(sb.String(), "\n"))
}

// PrintRecommendations outputs the ranked recommendation list.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("%d. [%s/%s] %s\n", i+1, rec.Impact, rec.Effort, rec.Type))
		sb.WriteString(fmt.Sprintf("   %s\n", rec.Suggestion))
	}

	p.printBox("Recommendations", strings.TrimRight(sb.String(), "\n"))
}

// PrintFeedback outputs the overall feedback paragraph.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFeedback(feedback string) {
	if feedback == "" {
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", feedback)
}
