package state

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"leadscore/internal/cache"
	"leadscore/internal/leads"
	"leadscore/internal/scoring"
)

func newCoordinator(t *testing.T) (*Coordinator, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.json")
	return New(cache.Open(path, zap.NewNop()), zap.NewNop()), path
}

func threeLeads() []leads.Lead {
	return []leads.Lead{
		{LeadID: 1, Email: "a@example.com", RerankedScore: 50},
		{LeadID: 2, Email: "b@example.com", RerankedScore: 90},
		{LeadID: 3, Email: "c@example.com", RerankedScore: 70},
	}
}

func fiveLeads() []leads.Lead {
	return append(threeLeads(),
		leads.Lead{LeadID: 4, Email: "d@example.com", RerankedScore: 95},
		leads.Lead{LeadID: 5, Email: "e@example.com", RerankedScore: 10},
	)
}

// Cache empty, health check fails: connectivity banner, no leads, nothing
// fatal.
func TestScenario_ColdStartUnreachable(t *testing.T) {
	co, _ := newCoordinator(t)
	co.HydrateFromCache()

	refresh := co.ApplyHealth(scoring.HealthStatus{}, errors.New("dial tcp: connection refused"))
	assert.False(t, refresh)

	snap := co.Snapshot()
	assert.Empty(t, snap.Leads)
	assert.Nil(t, snap.Stats)
	assert.Equal(t, "Cannot connect to the API. Please ensure the backend server is running.", snap.Err)
}

// Cache holds 3 leads, health succeeds, refresh returns 5: the fetched 5
// win, sorted by reranked score descending.
func TestScenario_RefreshReplacesCachedLeads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	seed := cache.Open(path, zap.NewNop())
	seed.Set(cache.SlotLeads, threeLeads())

	co := New(cache.Open(path, zap.NewNop()), zap.NewNop())
	co.HydrateFromCache()
	require.Len(t, co.Snapshot().Leads, 3)

	refresh := co.ApplyHealth(scoring.HealthStatus{Status: "healthy", ModelLoaded: true}, nil)
	require.True(t, refresh)

	token := co.BeginRefresh()
	assert.True(t, co.Snapshot().Busy)

	st := leads.LeadStats{TotalLeads: 5, HighIntentLeads: 2, AvgInitialScore: 55, AvgRerankedScore: 63}
	applied := co.ApplyRefresh(token, fiveLeads(), st, nil)
	require.True(t, applied)

	snap := co.Snapshot()
	require.Len(t, snap.Leads, 5)
	assert.Equal(t, []int{4, 2, 3, 1, 5}, leadIDs(snap.Leads))
	assert.False(t, snap.Busy)
	assert.Empty(t, snap.Err)
	require.NotNil(t, snap.Stats)
	assert.Equal(t, 5, snap.Stats.TotalLeads)
	// Published stats never contradict the published batch.
	assert.LessOrEqual(t, snap.Stats.HighIntentLeads, snap.Stats.TotalLeads)
}

// A successful submission does not touch the collection; it only requests
// a refresh. The new lead appears once the server includes it.
func TestScenario_SubmitTriggersRefresh(t *testing.T) {
	co, _ := newCoordinator(t)

	refresh := co.ApplySubmit(leads.LeadScore{LeadID: 6, InitialScore: 60, RerankedScore: 80}, nil)
	require.True(t, refresh)
	assert.Empty(t, co.Snapshot().Leads)

	token := co.BeginRefresh()
	ls := append(fiveLeads(), leads.Lead{LeadID: 6, Email: "f@example.com", RerankedScore: 80})
	co.ApplyRefresh(token, ls, leads.LeadStats{TotalLeads: 6}, nil)
	assert.Len(t, co.Snapshot().Leads, 6)

	snap := co.Snapshot()
	require.NotNil(t, snap.LastScore)
	assert.Equal(t, 6, snap.LastScore.LeadID)
}

func TestApplySubmit_ErrorKeepsState(t *testing.T) {
	co, _ := newCoordinator(t)
	token := co.BeginRefresh()
	co.ApplyRefresh(token, threeLeads(), leads.LeadStats{TotalLeads: 3}, nil)

	refresh := co.ApplySubmit(leads.LeadScore{}, errors.New("rejected"))
	assert.False(t, refresh)

	snap := co.Snapshot()
	assert.Len(t, snap.Leads, 3)
	assert.Equal(t, "rejected", snap.SubmitErr)
}

func TestApplyRefresh_FailureKeepsPreviousState(t *testing.T) {
	co, _ := newCoordinator(t)
	token := co.BeginRefresh()
	require.True(t, co.ApplyRefresh(token, threeLeads(), leads.LeadStats{TotalLeads: 3}, nil))

	token = co.BeginRefresh()
	applied := co.ApplyRefresh(token, nil, leads.LeadStats{}, errors.New("boom"))
	assert.False(t, applied)

	snap := co.Snapshot()
	assert.Len(t, snap.Leads, 3)
	assert.Equal(t, 3, snap.Stats.TotalLeads)
	assert.Equal(t, "Failed to fetch data from the API.", snap.Err)
	assert.False(t, snap.Busy)
}

func TestApplyRefresh_StaleTokenDiscarded(t *testing.T) {
	co, _ := newCoordinator(t)
	stale := co.BeginRefresh()
	latest := co.BeginRefresh()

	applied := co.ApplyRefresh(stale, threeLeads(), leads.LeadStats{TotalLeads: 3}, nil)
	assert.False(t, applied)
	assert.Empty(t, co.Snapshot().Leads)
	// The newer refresh is still in flight.
	assert.True(t, co.Snapshot().Busy)

	require.True(t, co.ApplyRefresh(latest, fiveLeads(), leads.LeadStats{TotalLeads: 5}, nil))
	assert.Len(t, co.Snapshot().Leads, 5)
	assert.False(t, co.Snapshot().Busy)
}

func TestPersist_EmptyLeadsNeverClobberCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	c := cache.Open(path, zap.NewNop())
	co := New(c, zap.NewNop())

	token := co.BeginRefresh()
	require.True(t, co.ApplyRefresh(token, threeLeads(), leads.LeadStats{TotalLeads: 3}, nil))

	// A later refresh legitimately returns zero leads; the cached snapshot
	// stays as a guard against a failed-then-empty initial render.
	token = co.BeginRefresh()
	require.True(t, co.ApplyRefresh(token, nil, leads.LeadStats{TotalLeads: 0}, nil))

	reopened := cache.Open(path, zap.NewNop())
	var cached []leads.Lead
	require.True(t, reopened.Get(cache.SlotLeads, &cached))
	assert.Len(t, cached, 3)

	// Stats are written whenever present.
	var st leads.LeadStats
	require.True(t, reopened.Get(cache.SlotStats, &st))
	assert.Equal(t, 0, st.TotalLeads)
}

func TestToggleSort(t *testing.T) {
	co, _ := newCoordinator(t)
	token := co.BeginRefresh()
	require.True(t, co.ApplyRefresh(token, threeLeads(), leads.LeadStats{TotalLeads: 3}, nil))

	// Default: reranked descending.
	assert.Equal(t, []int{2, 3, 1}, leadIDs(co.Snapshot().Leads))

	// First selection of a new column sorts ascending, second flips.
	co.ToggleSort(leads.ColumnID)
	assert.Equal(t, []int{1, 2, 3}, leadIDs(co.Snapshot().Leads))
	co.ToggleSort(leads.ColumnID)
	assert.Equal(t, []int{3, 2, 1}, leadIDs(co.Snapshot().Leads))

	// A data refresh discards the user's sort in favor of best-first.
	token = co.BeginRefresh()
	require.True(t, co.ApplyRefresh(token, threeLeads(), leads.LeadStats{TotalLeads: 3}, nil))
	snap := co.Snapshot()
	assert.Equal(t, leads.DefaultOrder(), snap.Order)
	assert.Equal(t, []int{2, 3, 1}, leadIDs(snap.Leads))
}

func TestApplyHealth_RecoveryClearsBanner(t *testing.T) {
	co, _ := newCoordinator(t)
	co.ApplyHealth(scoring.HealthStatus{}, errors.New("down"))
	require.NotEmpty(t, co.Snapshot().Err)

	refresh := co.ApplyHealth(scoring.HealthStatus{Status: "healthy", ModelLoaded: false}, nil)
	assert.True(t, refresh)
	snap := co.Snapshot()
	assert.Empty(t, snap.Err)
	require.NotNil(t, snap.Health)
	assert.False(t, snap.Health.ModelLoaded)
}

func leadIDs(ls []leads.Lead) []int {
	out := make([]int, len(ls))
	for i, l := range ls {
		out[i] = l.LeadID
	}
	return out
}
