package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"leadscore/internal/leads"
)

// sortColumns maps the 1-4 sort keys to lead columns, in header order.
var sortColumns = []leads.Column{
	leads.ColumnID,
	leads.ColumnEmail,
	leads.ColumnInitialScore,
	leads.ColumnRerankedScore,
}

func sortGlyph(o leads.Order, c leads.Column) string {
	if o.Column != c {
		return "⇅"
	}
	if o.Direction == leads.Ascending {
		return "↑"
	}
	return "↓"
}

func newLeadsTable() table.Model {
	t := table.New(
		table.WithColumns(leadColumns(80, leads.DefaultOrder())),
		table.WithHeight(8),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(borderColor)
	s.Selected = s.Selected.Foreground(accentColor).Bold(false)
	t.SetStyles(s)
	return t
}

// leadColumns sizes the header for the given pane width. Email and
// comments share whatever the fixed columns leave over.
func leadColumns(width int, o leads.Order) []table.Column {
	const (
		idW       = 8
		initialW  = 17
		rerankedW = 19
	)
	rest := width - idW - initialW - rerankedW - 10
	if rest < 20 {
		rest = 20
	}
	emailW := rest / 2
	commentsW := rest - emailW
	return []table.Column{
		{Title: fmt.Sprintf("ID %s", sortGlyph(o, leads.ColumnID)), Width: idW},
		{Title: fmt.Sprintf("Email %s", sortGlyph(o, leads.ColumnEmail)), Width: emailW},
		{Title: fmt.Sprintf("Initial Score %s", sortGlyph(o, leads.ColumnInitialScore)), Width: initialW},
		{Title: fmt.Sprintf("Reranked Score %s", sortGlyph(o, leads.ColumnRerankedScore)), Width: rerankedW},
		{Title: "Comments", Width: commentsW},
	}
}

func leadRows(ls []leads.Lead) []table.Row {
	rows := make([]table.Row, len(ls))
	for i, l := range ls {
		rows[i] = table.Row{
			strconv.Itoa(l.LeadID),
			l.Email,
			fmt.Sprintf("%.1f", l.InitialScore),
			fmt.Sprintf("%.1f", l.RerankedScore),
			l.Comments,
		}
	}
	return rows
}
