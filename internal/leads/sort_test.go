package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLeads() []Lead {
	return []Lead{
		{LeadID: 3, Email: "carol@example.com", InitialScore: 41.5, RerankedScore: 55},
		{LeadID: 1, Email: "alice@example.com", InitialScore: 88.2, RerankedScore: 93.1},
		{LeadID: 4, Email: "dave@example.com", InitialScore: 12.0, RerankedScore: 7.5},
		{LeadID: 2, Email: "bob@example.com", InitialScore: 67.3, RerankedScore: 61.0},
	}
}

func TestSortLeads_DefaultOrder(t *testing.T) {
	got := SortLeads(sampleLeads(), DefaultOrder())
	require.Len(t, got, 4)
	ids := []int{got[0].LeadID, got[1].LeadID, got[2].LeadID, got[3].LeadID}
	assert.Equal(t, []int{1, 2, 3, 4}, ids)
}

func TestSortLeads_ReversalWithoutTies(t *testing.T) {
	for _, col := range []Column{ColumnID, ColumnEmail, ColumnInitialScore, ColumnRerankedScore} {
		asc := SortLeads(sampleLeads(), Order{Column: col, Direction: Ascending})
		desc := SortLeads(sampleLeads(), Order{Column: col, Direction: Descending})
		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i], "column %v index %d", col, i)
		}
	}
}

func TestSortLeads_Idempotent(t *testing.T) {
	o := Order{Column: ColumnEmail, Direction: Ascending}
	once := SortLeads(sampleLeads(), o)
	twice := SortLeads(once, o)
	assert.Equal(t, once, twice)
}

func TestSortLeads_DoesNotMutateInput(t *testing.T) {
	in := sampleLeads()
	SortLeads(in, DefaultOrder())
	assert.Equal(t, sampleLeads(), in)
}

func TestOrder_Toggle(t *testing.T) {
	o := DefaultOrder()

	// Selecting a new column resets to ascending.
	o = o.Toggle(ColumnEmail)
	assert.Equal(t, Order{Column: ColumnEmail, Direction: Ascending}, o)

	// Selecting the same column again flips the direction.
	o = o.Toggle(ColumnEmail)
	assert.Equal(t, Order{Column: ColumnEmail, Direction: Descending}, o)
	o = o.Toggle(ColumnEmail)
	assert.Equal(t, Order{Column: ColumnEmail, Direction: Ascending}, o)
}

func TestScoreBucket(t *testing.T) {
	assert.Equal(t, BucketVeryHigh, ScoreBucket(80))
	assert.Equal(t, BucketHigh, ScoreBucket(79.9))
	assert.Equal(t, BucketHigh, ScoreBucket(60))
	assert.Equal(t, BucketMedium, ScoreBucket(40))
	assert.Equal(t, BucketLow, ScoreBucket(20))
	assert.Equal(t, BucketVeryLow, ScoreBucket(19.99))
	assert.Equal(t, BucketVeryLow, ScoreBucket(0))
}
