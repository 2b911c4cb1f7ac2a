package leads

import "sort"

// Column is a sortable lead attribute.
type Column int

const (
	ColumnID Column = iota
	ColumnEmail
	ColumnInitialScore
	ColumnRerankedScore
)

var columnTitles = map[Column]string{
	ColumnID:            "ID",
	ColumnEmail:         "Email",
	ColumnInitialScore:  "Initial Score",
	ColumnRerankedScore: "Reranked Score",
}

func (c Column) String() string { return columnTitles[c] }

// Direction orders a column ascending or descending.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Order is the last-applied sort: one column, one direction.
type Order struct {
	Column    Column
	Direction Direction
}

// DefaultOrder is reapplied whenever the canonical collection is replaced:
// best leads first, regardless of what the user had selected.
func DefaultOrder() Order {
	return Order{Column: ColumnRerankedScore, Direction: Descending}
}

// Toggle cycles direction when the same column is selected again and
// resets to ascending when a new column is selected.
func (o Order) Toggle(c Column) Order {
	if o.Column == c {
		if o.Direction == Ascending {
			o.Direction = Descending
		} else {
			o.Direction = Ascending
		}
		return o
	}
	return Order{Column: c, Direction: Ascending}
}

// SortLeads returns a new slice ordered by the given column and direction.
// Numeric columns compare numerically, email lexicographically. Ties carry
// no secondary key; relative order among equal keys is unspecified.
func SortLeads(in []Lead, o Order) []Lead {
	out := make([]Lead, len(in))
	copy(out, in)
	less := lessFunc(o.Column)
	if o.Direction == Descending {
		inner := less
		less = func(a, b Lead) bool { return inner(b, a) }
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func lessFunc(c Column) func(a, b Lead) bool {
	switch c {
	case ColumnEmail:
		return func(a, b Lead) bool { return a.Email < b.Email }
	case ColumnInitialScore:
		return func(a, b Lead) bool { return a.InitialScore < b.InitialScore }
	case ColumnRerankedScore:
		return func(a, b Lead) bool { return a.RerankedScore < b.RerankedScore }
	default:
		return func(a, b Lead) bool { return a.LeadID < b.LeadID }
	}
}
