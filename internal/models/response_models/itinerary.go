package response_models

// TimeOfDay is the three-slot schedule bucket an activity belongs to.
type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
)

// Activity is one scheduled item of a day. EstimatedCost is an integer amount
// in the base currency (INR); display conversion happens at render time only.
type Activity struct {
	Name          string    `json:"name"`
	TimeOfDay     TimeOfDay `json:"time"`
	Description   string    `json:"description,omitempty"`
	EstimatedCost int64     `json:"estimatedCost"`
}

// ItineraryDay groups the activities of one trip day. DayTotal is either the
// plausible total declared by the source or the sum of the activity costs.
type ItineraryDay struct {
	Day        int        `json:"day"`
	DayTotal   int64      `json:"dayTotal"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the canonical validated plan, serialized as the day array the
// export document promises. A failed generation never produces one.
type Itinerary []ItineraryDay

func (it Itinerary) TripTotal() int64 {
	var total int64
	for _, day := range it {
		total += day.DayTotal
	}
	return total
}
