// Package state owns the canonical view state: which leads and stats the
// UI currently believes are true, and the flags around them. The
// Coordinator is a pure state machine; all I/O except cache persistence
// happens outside (the UI layer runs the scoring client in commands and
// feeds results back through the Apply methods).
package state

import (
	"go.uber.org/zap"

	"leadscore/internal/cache"
	"leadscore/internal/leads"
	"leadscore/internal/scoring"
)

// Banner messages for the two recoverable failure classes.
const (
	connectivityMessage = "Cannot connect to the API. Please ensure the backend server is running."
	fetchMessage        = "Failed to fetch data from the API."
)

// Snapshot is an immutable view of the coordinator state for rendering.
type Snapshot struct {
	Leads  []leads.Lead // display order
	Stats  *leads.LeadStats
	Order  leads.Order
	Busy   bool
	Err    string // connectivity/fetch banner, "" when healthy
	Health *scoring.HealthStatus

	LastScore *leads.LeadScore // most recent successful submission
	SubmitErr string           // form-adjacent submission error
}

// Coordinator reconciles the in-memory leads and stats with the local
// cache and the remote service.
type Coordinator struct {
	cache  *cache.File
	logger *zap.Logger

	leads  []leads.Lead
	stats  *leads.LeadStats
	order  leads.Order
	sorted []leads.Lead

	busy   bool
	errMsg string
	health *scoring.HealthStatus

	lastScore *leads.LeadScore
	submitErr string

	// Monotonic refresh token. A completion whose token is not the latest
	// issued one is discarded, so a superseded in-flight refresh can never
	// overwrite a newer result.
	seq uint64
}

// New builds a coordinator backed by the given cache.
func New(c *cache.File, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		cache:  c,
		logger: logger,
		order:  leads.DefaultOrder(),
	}
}

// HydrateFromCache loads both slots. Parse failures are absorbed inside
// the cache layer; an unreadable slot is simply a cold start for that
// slot. Runs once, before any network call.
func (co *Coordinator) HydrateFromCache() {
	var ls []leads.Lead
	if co.cache.Get(cache.SlotLeads, &ls) && len(ls) > 0 {
		co.leads = ls
		co.resort(leads.DefaultOrder())
		co.logger.Info("hydrated leads from cache", zap.Int("count", len(ls)))
	}
	var st leads.LeadStats
	if co.cache.Get(cache.SlotStats, &st) {
		co.stats = &st
		co.logger.Info("hydrated stats from cache", zap.Int("total_leads", st.TotalLeads))
	}
}

// ApplyHealth records a health probe result. On failure the connectivity
// banner is raised and existing data is kept. It reports whether a full
// refresh should be triggered.
func (co *Coordinator) ApplyHealth(h scoring.HealthStatus, err error) (refresh bool) {
	if err != nil {
		co.errMsg = connectivityMessage
		co.logger.Warn("health check failed", zap.Error(err))
		return false
	}
	co.health = &h
	co.errMsg = ""
	co.logger.Info("health check ok",
		zap.String("status", h.Status),
		zap.Bool("model_loaded", h.ModelLoaded))
	return h.Healthy()
}

// BeginRefresh marks a refresh in flight and returns its token.
func (co *Coordinator) BeginRefresh() uint64 {
	co.seq++
	co.busy = true
	return co.seq
}

// ApplyRefresh applies a refresh completion. Both leads and stats replace
// the canonical state atomically; on failure the previous state is left
// untouched (stale-but-consistent over empty-but-broken). A stale token
// means a newer refresh superseded this one and the result is discarded.
func (co *Coordinator) ApplyRefresh(token uint64, ls []leads.Lead, st leads.LeadStats, err error) (applied bool) {
	if token != co.seq {
		co.logger.Debug("discarding superseded refresh",
			zap.Uint64("token", token), zap.Uint64("latest", co.seq))
		return false
	}
	co.busy = false
	if err != nil {
		co.errMsg = fetchMessage
		co.logger.Warn("refresh failed", zap.Error(err))
		return false
	}
	co.leads = ls
	co.stats = &st
	co.errMsg = ""
	co.resort(leads.DefaultOrder())
	co.persist()
	co.logger.Info("refreshed",
		zap.Int("leads", len(ls)),
		zap.Int("total_leads", st.TotalLeads))
	return true
}

// ApplySubmit records a submission result. The score is never applied to
// the in-memory collection (the server owns ranking and ordering); a
// successful submission reports true so the caller triggers a refresh.
func (co *Coordinator) ApplySubmit(score leads.LeadScore, err error) (refresh bool) {
	if err != nil {
		co.submitErr = scoring.Detail(err)
		co.logger.Warn("submission failed", zap.Error(err))
		return false
	}
	co.lastScore = &score
	co.submitErr = ""
	co.logger.Info("lead scored",
		zap.Int("lead_id", score.LeadID),
		zap.Float64("initial", score.InitialScore),
		zap.Float64("reranked", score.RerankedScore))
	return true
}

// ToggleSort cycles the sort on a column: same column flips direction,
// new column starts ascending.
func (co *Coordinator) ToggleSort(c leads.Column) {
	co.resort(co.order.Toggle(c))
}

// Snapshot returns the current view state.
func (co *Coordinator) Snapshot() Snapshot {
	view := make([]leads.Lead, len(co.sorted))
	copy(view, co.sorted)
	return Snapshot{
		Leads:     view,
		Stats:     co.stats,
		Order:     co.order,
		Busy:      co.busy,
		Err:       co.errMsg,
		Health:    co.health,
		LastScore: co.lastScore,
		SubmitErr: co.submitErr,
	}
}

func (co *Coordinator) resort(o leads.Order) {
	co.order = o
	co.sorted = leads.SortLeads(co.leads, o)
}

// persist writes both snapshots back to the cache. The leads slot is only
// written when the collection is non-empty, so an empty render can never
// clobber a previously cached snapshot; stats are written whenever
// present.
func (co *Coordinator) persist() {
	if len(co.leads) > 0 {
		co.cache.Set(cache.SlotLeads, co.leads)
	}
	if co.stats != nil {
		co.cache.Set(cache.SlotStats, *co.stats)
	}
}
