package ui

import (
	"fmt"
	"strings"

	styles "github.com/charmbracelet/lipgloss"
	plot "github.com/chriskim06/drawille-go"

	"leadscore/internal/keywords"
	"leadscore/internal/leads"
)

// statsBlock renders the summary numbers the way the stats card shows
// them: totals, high-intent share, and the rerank delta.
func statsBlock(stats *leads.LeadStats) []string {
	if stats == nil {
		return []string{mutedFg.Render("No statistics available yet.")}
	}
	pct := "0%"
	if stats.TotalLeads > 0 {
		pct = fmt.Sprintf("%.1f%%", float64(stats.HighIntentLeads)/float64(stats.TotalLeads)*100)
	}
	delta := "same as initial"
	switch {
	case stats.AvgRerankedScore > stats.AvgInitialScore:
		delta = fmt.Sprintf("+%.1f from initial", stats.AvgRerankedScore-stats.AvgInitialScore)
	case stats.AvgRerankedScore < stats.AvgInitialScore:
		delta = fmt.Sprintf("-%.1f from initial", stats.AvgInitialScore-stats.AvgRerankedScore)
	}
	return []string{
		fmt.Sprintf("total leads: %d", stats.TotalLeads),
		fmt.Sprintf("high intent: %d (%s)", stats.HighIntentLeads, pct),
		fmt.Sprintf("avg initial score: %.1f", stats.AvgInitialScore),
		fmt.Sprintf("avg reranked score: %.1f (%s)", stats.AvgRerankedScore, delta),
	}
}

// scoreChart plots the reranked score curve (best first) against the
// initial scores of the same leads, on a braille canvas.
func scoreChart(ls []leads.Lead, width, height int) string {
	if len(ls) == 0 || width < 4 || height < 3 {
		return ""
	}
	ordered := leads.SortLeads(ls, leads.DefaultOrder())
	reranked := make([]float64, len(ordered))
	initial := make([]float64, len(ordered))
	for i, l := range ordered {
		reranked[i] = l.RerankedScore
		initial[i] = l.InitialScore
	}

	var highlight, dim plot.Color
	if styles.DefaultRenderer().HasDarkBackground() {
		highlight, dim = plot.Red, plot.DimGray
	} else {
		highlight, dim = plot.Black, plot.LightGray
	}

	p := plot.NewCanvas(width, height)
	p.NumDataPoints = len(ordered)
	p.ShowAxis = false
	p.LineColors = []plot.Color{dim, highlight}
	p.Fill([][]float64{initial, reranked})
	return p.String()
}

func formatLastScore(s *leads.LeadScore) string {
	return fmt.Sprintf("lead #%d scored %.1f (initial %.1f)", s.LeadID, s.RerankedScore, s.InitialScore)
}

// keywordsLine renders the intent-signal leaderboard as one line.
func keywordsLine(board *keywords.Board, width int) string {
	top := board.Top()
	if len(top) == 0 {
		return mutedFg.Render("intent signals: none")
	}
	parts := make([]string, 0, len(top))
	for _, s := range top {
		parts = append(parts, fmt.Sprintf("%s (%d)", s.Keyword, s.Count))
	}
	line := "intent signals: " + strings.Join(parts, "  ")
	if width > 3 && len(line) > width {
		line = line[:width-1] + "…"
	}
	return line
}
