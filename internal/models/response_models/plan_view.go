package response_models

// ActivityView decorates a canonical activity with presentational extras. The
// map link never persists; it is derived from the name on every render.
type ActivityView struct {
	Activity
	MapLink string `json:"map_link,omitempty"`
}

type DayView struct {
	Day          int            `json:"day"`
	DayTotal     int64          `json:"dayTotal"`
	DisplayTotal string         `json:"display_total,omitempty"`
	Activities   []ActivityView `json:"activities"`
}

// PlanResponse is the full render of the current itinerary plus its budget
// reconciliation, with totals optionally formatted in a display currency.
type PlanResponse struct {
	Days             []DayView     `json:"days"`
	Budget           BudgetSummary `json:"budget"`
	DisplayCurrency  string        `json:"display_currency,omitempty"`
	DisplayTripTotal string        `json:"display_trip_total,omitempty"`
	DisplayRemaining string        `json:"display_remaining,omitempty"`
}

// SavedPlan is one append-only snapshot in the saved-plans collection.
type SavedPlan struct {
	ID        string    `json:"id"`
	SavedAt   int64     `json:"saved_at"`
	TripTotal int64     `json:"trip_total"`
	Days      Itinerary `json:"days"`
}

// RateTableView exposes the active conversion table and where it came from
// ("live", "snapshot" or "fallback").
type RateTableView struct {
	Base   string             `json:"base"`
	Source string             `json:"source"`
	Rates  map[string]float64 `json:"rates"`
}

// ConvertedAmount is the convert-then-format result for one base amount.
type ConvertedAmount struct {
	BaseAmount int64   `json:"base_amount"`
	Currency   string  `json:"currency"`
	Amount     float64 `json:"amount"`
	Formatted  string  `json:"formatted"`
}
