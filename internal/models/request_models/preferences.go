package request_models

// TripPreferences are the user-editable generation inputs. Budget is a
// non-negative amount in the base currency; CustomStops keeps the user's
// ordering, which is meaningful.
type TripPreferences struct {
	DurationDays  int      `json:"duration"`
	Interests     []string `json:"interests"`
	Budget        int64    `json:"budget"`
	GroupSize     int      `json:"group_size"`
	StartLocation string   `json:"start_location"`
	CustomStops   []string `json:"custom_stops"`
}
