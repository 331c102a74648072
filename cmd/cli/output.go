package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/amirasaad/aifinance/pkg/domain/document"
	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/amirasaad/aifinance/pkg/service/ingestion"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle = map[string]lipgloss.Style{
		"PENDING":        lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"UNDER_REVIEW":   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		"CONFIRMED":      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		"FALSE_POSITIVE": lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

func printIngestResult(w io.Writer, res ingestion.Result) {
	fmt.Fprintln(w, titleStyle.Render("Ingestion finished"))
	fmt.Fprintf(w, "  processed: %d\n  skipped:   %d\n  failed:    %d\n", res.Processed, res.Skipped, res.Failed)
	for _, err := range res.Failures {
		fmt.Fprintln(w, "  "+errorStyle.Render(err.Error()))
	}
}

func printChunks(w io.Writer, query string, chunks []*document.Chunk) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d results for %q", len(chunks), query)))
	for i, ch := range chunks {
		fmt.Fprintf(w, "\n%d. %s %s\n", i+1, ch.DocumentName,
			mutedStyle.Render(fmt.Sprintf("(chunk %d/%d)", ch.Metadata.ChunkIndex+1, ch.Metadata.TotalChunks)))
		fmt.Fprintln(w, indent(ch.Content, "   "))
	}
}

func printAdvice(w io.Writer, resp *dto.AdvisorResponse) {
	fmt.Fprintln(w, titleStyle.Render("Advice")+" "+mutedStyle.Render("via "+resp.Provider))
	fmt.Fprintln(w)
	fmt.Fprintln(w, resp.Advice)
	if len(resp.RelevantDocuments) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, mutedStyle.Render("Sources: "+strings.Join(resp.RelevantDocuments, ", ")))
	}
}

func printAlerts(w io.Writer, alerts []*dto.FraudAlertRead) {
	if len(alerts) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No fraud alerts"))
		return
	}
	for _, a := range alerts {
		style, ok := statusStyle[a.Status]
		if !ok {
			style = mutedStyle
		}
		fmt.Fprintf(w, "%s  %s  score %s  %s\n",
			a.ID, style.Render(a.Status), a.FraudScore.StringFixed(2),
			mutedStyle.Render(a.DetectedAt.Format(time.DateTime)))
		fmt.Fprintln(w, indent(a.Reason, "  "))
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
