// Package leads holds the dashboard's data model: scored lead records,
// aggregate statistics, the submission payload, and the table sort engine.
// The JSON shapes mirror the remote scoring API exactly.
package leads

// Lead is a scored prospect record. Leads are created server-side; the
// client never mutates one, it only replaces the whole collection on
// refetch.
type Lead struct {
	LeadID        int     `json:"lead_id"`
	Email         string  `json:"email"`
	InitialScore  float64 `json:"initial_score"`
	RerankedScore float64 `json:"reranked_score"`
	Comments      string  `json:"comments"`
}

// LeadScore is the result of one scoring call. It triggers a refresh but
// is not stored itself.
type LeadScore struct {
	InitialScore  float64 `json:"initial_score"`
	RerankedScore float64 `json:"reranked_score"`
	LeadID        int     `json:"lead_id"`
}

// LeadStats is the aggregate view computed by the remote service. The
// client never derives it locally.
type LeadStats struct {
	TotalLeads       int     `json:"total_leads"`
	HighIntentLeads  int     `json:"high_intent_leads"`
	AvgInitialScore  float64 `json:"avg_initial_score"`
	AvgRerankedScore float64 `json:"avg_reranked_score"`
}

// LeadForm is the user-entered submission payload. It is transient: owned
// by the form for the duration of one submission, never persisted.
// Validation tags are enforced by internal/form before any network call;
// the server remains authoritative.
type LeadForm struct {
	PhoneNumber         string `json:"phone_number" validate:"required,inphone"`
	Email               string `json:"email" validate:"required,email"`
	CreditScore         int    `json:"credit_score" validate:"min=300,max=850"`
	AgeGroup            string `json:"age_group" validate:"oneof=18-25 26-35 36-50 51+"`
	FamilyBackground    string `json:"family_background" validate:"oneof=Single Married 'Married with Kids' Divorced Widowed"`
	Income              int    `json:"income" validate:"min=100000,max=1000000"`
	PropertyType        string `json:"property_type" validate:"oneof=Apartment House Villa Penthouse Studio"`
	Budget              int    `json:"budget" validate:"min=0"`
	Location            string `json:"location" validate:"oneof=Urban Suburban Rural"`
	PreviousInquiries   int    `json:"previous_inquiries" validate:"min=0"`
	TimeOnMarket        int    `json:"time_on_market" validate:"min=1"`
	ResponseTimeMinutes int    `json:"response_time_minutes" validate:"min=1"`
	Comments            string `json:"comments"`
	Consent             bool   `json:"consent" validate:"eq=true"`
}

// Bucket is a coarse display tier for a score.
type Bucket int

const (
	BucketVeryLow Bucket = iota
	BucketLow
	BucketMedium
	BucketHigh
	BucketVeryHigh
)

// ScoreBucket tiers a score for display at the 80/60/40/20 thresholds.
func ScoreBucket(score float64) Bucket {
	switch {
	case score >= 80:
		return BucketVeryHigh
	case score >= 60:
		return BucketHigh
	case score >= 40:
		return BucketMedium
	case score >= 20:
		return BucketLow
	default:
		return BucketVeryLow
	}
}
