package services

import (
	"testing"

	"yatra/internal/models/response_models"
)

func sampleItinerary(dayTotals ...int64) response_models.Itinerary {
	itinerary := make(response_models.Itinerary, 0, len(dayTotals))
	for i, total := range dayTotals {
		itinerary = append(itinerary, response_models.ItineraryDay{Day: i + 1, DayTotal: total})
	}
	return itinerary
}

func TestSummarize(t *testing.T) {
	aggregator := NewBudgetAggregator()

	cases := []struct {
		name        string
		itinerary   response_models.Itinerary
		budget      int64
		wantTotal   int64
		wantRemain  int64
		wantPercent int
	}{
		{
			name:        "under budget",
			itinerary:   sampleItinerary(2500, 3800, 2500),
			budget:      9000,
			wantTotal:   8800,
			wantRemain:  200,
			wantPercent: 98,
		},
		{
			name:        "over budget clamps percent only",
			itinerary:   sampleItinerary(6000, 6000),
			budget:      9000,
			wantTotal:   12000,
			wantRemain:  -3000,
			wantPercent: 100,
		},
		{
			name:        "zero budget does not divide by zero",
			itinerary:   sampleItinerary(500),
			budget:      0,
			wantTotal:   500,
			wantRemain:  -500,
			wantPercent: 100,
		},
		{
			name:        "empty itinerary",
			itinerary:   response_models.Itinerary{},
			budget:      9000,
			wantTotal:   0,
			wantRemain:  9000,
			wantPercent: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := aggregator.Summarize(tc.itinerary, tc.budget)
			if got.TripTotal != tc.wantTotal {
				t.Errorf("TripTotal = %d, want %d", got.TripTotal, tc.wantTotal)
			}
			if got.Remaining != tc.wantRemain {
				t.Errorf("Remaining = %d, want %d", got.Remaining, tc.wantRemain)
			}
			if got.PercentUsed != tc.wantPercent {
				t.Errorf("PercentUsed = %d, want %d", got.PercentUsed, tc.wantPercent)
			}
			if got.Budget != tc.budget {
				t.Errorf("Budget = %d, want %d", got.Budget, tc.budget)
			}
		})
	}
}
