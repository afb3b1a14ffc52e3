package response_models

// BudgetSummary is derived from an itinerary and a stated budget. Remaining is
// deliberately unclamped: negative means over budget, which is a valid state.
// PercentUsed is clamped to 0..100 so it can drive a progress indicator.
type BudgetSummary struct {
	Budget      int64 `json:"budget"`
	TripTotal   int64 `json:"trip_total"`
	Remaining   int64 `json:"remaining"`
	PercentUsed int   `json:"percent_used"`
}
