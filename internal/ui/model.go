// Package ui is the Bubble Tea presentation layer: a submission form, the
// sortable scored-leads table, the stats pane with its score chart, and
// the status plumbing. It owns no data; every mutation goes through the
// state.Coordinator, and every network call runs as a command off the
// update loop.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tui "github.com/charmbracelet/bubbletea"
	styles "github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"leadscore/internal/form"
	"leadscore/internal/keywords"
	"leadscore/internal/leads"
	"leadscore/internal/scoring"
	"leadscore/internal/state"
)

type healthMsg struct {
	health scoring.HealthStatus
	err    error
}

type refreshMsg struct {
	token uint64
	leads []leads.Lead
	stats leads.LeadStats
	err   error
}

type submitMsg struct {
	score leads.LeadScore
	err   error
}

// Model is the root dashboard model.
type Model struct {
	width, height  int
	leftPaneWidth  int
	rightPaneWidth int

	client  *scoring.Client
	co      *state.Coordinator
	board   *keywords.Board
	checker *form.Validator
	logger  *zap.Logger
	timeout time.Duration

	form  formModel
	table table.Model
	spin  spinner.Model
	help  help.Model

	focusTable bool
	submitting bool
}

// New builds the dashboard and hydrates the coordinator from the local
// cache before any network call happens.
func New(client *scoring.Client, co *state.Coordinator, board *keywords.Board, logger *zap.Logger, timeout time.Duration) *Model {
	const (
		defaultWidth  = 100
		defaultHeight = 40
	)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentFg

	m := &Model{
		client:  client,
		co:      co,
		board:   board,
		checker: form.New(),
		logger:  logger,
		timeout: timeout,
		form:    newFormModel(),
		table:   newLeadsTable(),
		spin:    sp,
		help:    help.New(),
	}
	m.width, m.height = defaultWidth, defaultHeight
	m.leftPaneWidth, m.rightPaneWidth = computePaneWidths(defaultWidth)

	m.co.HydrateFromCache()
	m.rebuildKeywords()
	m.syncTable()
	m.form.setFocused(true)
	return m
}

func (m *Model) Init() tui.Cmd {
	return tui.Batch(m.checkHealthCmd(), m.spin.Tick)
}

func (m *Model) checkHealthCmd() tui.Cmd {
	return func() tui.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		h, err := m.client.Health(ctx)
		return healthMsg{health: h, err: err}
	}
}

// refreshCmd fetches leads and stats concurrently; a partial result is a
// total failure for the cycle, so the coordinator never applies a torn
// view.
func (m *Model) refreshCmd(token uint64) tui.Cmd {
	return func() tui.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		var (
			ls []leads.Lead
			st leads.LeadStats
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			ls, err = m.client.Leads(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			st, err = m.client.Stats(gctx)
			return err
		})
		err := g.Wait()
		return refreshMsg{token: token, leads: ls, stats: st, err: err}
	}
}

func (m *Model) submitCmd(payload leads.LeadForm) tui.Cmd {
	return func() tui.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		score, err := m.client.Submit(ctx, payload)
		return submitMsg{score: score, err: err}
	}
}

func (m *Model) beginRefresh() tui.Cmd {
	token := m.co.BeginRefresh()
	return m.refreshCmd(token)
}

func (m *Model) Update(msg tui.Msg) (tui.Model, tui.Cmd) {
	switch msg := msg.(type) {
	case healthMsg:
		if m.co.ApplyHealth(msg.health, msg.err) {
			return m, m.beginRefresh()
		}
		return m, nil

	case refreshMsg:
		if m.co.ApplyRefresh(msg.token, msg.leads, msg.stats, msg.err) {
			m.rebuildKeywords()
		}
		m.syncTable()
		return m, nil

	case submitMsg:
		m.submitting = false
		if m.co.ApplySubmit(msg.score, msg.err) {
			m.form.reset()
			return m, m.beginRefresh()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tui.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tui.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.leftPaneWidth, m.rightPaneWidth = computePaneWidths(m.width)
		m.table.SetWidth(max(20, m.width-4))
		m.table.SetHeight(m.tableHeight())
		m.syncTable()
		return m, nil

	case tui.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) updateKeys(msg tui.KeyMsg) (tui.Model, tui.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tui.Quit
	case key.Matches(msg, keys.Focus):
		m.focusTable = !m.focusTable
		m.form.setFocused(!m.focusTable)
		if m.focusTable {
			m.table.Focus()
		} else {
			m.table.Blur()
		}
		return m, nil
	case key.Matches(msg, keys.Retry):
		return m, m.checkHealthCmd()
	}

	if m.focusTable {
		if key.Matches(msg, keys.Sort) {
			idx := int(msg.String()[0] - '1')
			if idx >= 0 && idx < len(sortColumns) {
				m.co.ToggleSort(sortColumns[idx])
				m.syncTable()
			}
			return m, nil
		}
		var cmd tui.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	submit, cmd := m.form.update(msg)
	if submit {
		return m, m.submitForm()
	}
	return m, cmd
}

// submitForm validates the whole form as a unit; field errors block the
// submission before any network call is made.
func (m *Model) submitForm() tui.Cmd {
	payload, errs := m.form.build()
	if len(errs) == 0 {
		errs = m.checker.Validate(payload)
	}
	if len(errs) > 0 {
		m.form.errs = errs
		m.logger.Debug("submission blocked", zap.Int("field_errors", len(errs)))
		return nil
	}
	m.form.errs = nil
	m.submitting = true
	return m.submitCmd(payload)
}

func (m *Model) rebuildKeywords() {
	snap := m.co.Snapshot()
	comments := make([]string, 0, len(snap.Leads))
	for _, l := range snap.Leads {
		comments = append(comments, l.Comments)
	}
	m.board.Rebuild(comments)
}

func (m *Model) syncTable() {
	snap := m.co.Snapshot()
	m.table.SetColumns(leadColumns(max(40, m.width-6), snap.Order))
	m.table.SetRows(leadRows(snap.Leads))
}

func (m *Model) tableHeight() int {
	h := m.height - m.formPaneHeight() - 8
	return max(3, min(h, 14))
}

func (m *Model) formPaneHeight() int {
	// field lines + room for a couple of error lines
	return len(m.form.fields) + 3
}

func (m *Model) View() string {
	snap := m.co.Snapshot()

	header := paneTitle.Render("Lead Scoring Dashboard")

	banner := ""
	switch {
	case snap.Err != "":
		banner = errorFg.Render("ERROR: "+snap.Err) + mutedFg.Render("  (ctrl+r to retry)")
	case snap.Health != nil && !snap.Health.ModelLoaded:
		banner = warnFg.Render("The scoring model is not loaded; submissions will be rejected until the backend finishes setup.")
	}

	left := m.formPane(snap)
	right := m.statsPane(snap)
	row := styles.JoinHorizontal(styles.Top, left, right)

	tablePane := m.tablePane(snap)
	kw := keywordsLine(m.board, m.width-2)
	status := m.statusLine(snap)

	parts := []string{header}
	if banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, row, tablePane, kw, status, m.help.View(keys))
	return styles.JoinVertical(styles.Left, parts...)
}

func (m *Model) formPane(snap state.Snapshot) string {
	title := paneTitle.Render("Submit Lead Information")
	body := m.form.view(m.leftPaneWidth - 2)
	if snap.SubmitErr != "" {
		body = errorFg.Render(snap.SubmitErr) + "\n" + body
	}
	return paneStyle.Width(m.leftPaneWidth - 2).Render(styles.JoinVertical(styles.Left, title, body))
}

func (m *Model) statsPane(snap state.Snapshot) string {
	title := paneTitle.Render("Lead Statistics")
	lines := statsBlock(snap.Stats)
	block := styles.JoinVertical(styles.Left, lines...)

	chartH := m.formPaneHeight() - len(lines) - 3
	chart := scoreChart(snap.Leads, m.rightPaneWidth-4, chartH)
	if chart != "" {
		legend := mutedFg.Render("score curve: ") + accentFg.Render("reranked") + mutedFg.Render(" vs initial, best first")
		block = styles.JoinVertical(styles.Left, block, chart, legend)
	}
	return paneStyle.Width(m.rightPaneWidth - 2).Render(styles.JoinVertical(styles.Left, title, block))
}

func (m *Model) tablePane(snap state.Snapshot) string {
	title := paneTitle.Render("Scored Leads")
	if len(snap.Leads) == 0 {
		empty := mutedFg.Render("No leads available. Submit a lead to see results.")
		return paneStyle.Width(m.width - 2).Render(styles.JoinVertical(styles.Left, title, empty))
	}
	hint := mutedFg.Render("1-4 selects the sort column; selecting it again flips the direction")
	return paneStyle.Width(m.width - 2).Render(styles.JoinVertical(styles.Left, title, m.table.View(), hint))
}

func (m *Model) statusLine(snap state.Snapshot) string {
	status := mutedFg.Render("service: unknown")
	if snap.Health != nil {
		status = mutedFg.Render("service: " + snap.Health.Status)
	}
	if snap.Busy || m.submitting {
		status += "  " + m.spin.View() + mutedFg.Render("working…")
	}
	if snap.LastScore != nil {
		s := snap.LastScore
		status += "  " + scoreStyle(s.RerankedScore).Render(
			formatLastScore(s))
	}
	return status
}

func computePaneWidths(totalWidth int) (left, right int) {
	if totalWidth <= 1 {
		return 1, 1
	}
	left = totalWidth / 2
	right = totalWidth - left

	const minPane = 30
	if totalWidth >= minPane*2 {
		if left < minPane {
			left = minPane
			right = totalWidth - left
		}
		if right < minPane {
			right = minPane
			left = totalWidth - right
		}
	}
	return max(1, left), max(1, right)
}
