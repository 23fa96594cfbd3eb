package ports

import "context"

// PrepareSimpleInput is the simplified quotation request a reseller submits
// from the dashboard: a free-form project description rather than an
// itemised bill of materials.
type PrepareSimpleInput struct {
	ProjectType string
	Address     string
	Materials   []string
	Quantity    string
	SiteLat     *float64
	SiteLng     *float64
}

// QuoteCandidate is one ranked vendor offer returned by the quote service.
type QuoteCandidate struct {
	VendorID       int                `json:"vendor_id"`
	VendorName     string             `json:"vendor_name"`
	LandedCost     float64            `json:"landed_cost"`
	Breakdown      map[string]float64 `json:"breakdown"`
	ETAMinutes     int                `json:"eta_minutes"`
	OnTimeRate     float64            `json:"on_time_rate"`
	QualityScore   float64            `json:"quality_score"`
	AcceptanceProb float64            `json:"acceptance_prob"`
	DistanceKm     float64            `json:"distance_km"`
}

// QuoteResult is the quote service response: a narrative summary plus the
// ranked candidate list.
type QuoteResult struct {
	Summary    string           `json:"summary"`
	Candidates []QuoteCandidate `json:"candidates"`
}

// QuoteService prepares vendor quotations. The implementation delegates to
// the external smart-quote service; its pricing internals are out of scope.
type QuoteService interface {
	PrepareSimple(ctx context.Context, input PrepareSimpleInput) (*QuoteResult, error)
}
