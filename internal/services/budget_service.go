package services

import (
	"math"

	"yatra/internal/models/response_models"
)

// BudgetAggregatorInterface derives trip-level budget figures from a canonical
// itinerary and a stated budget. Pure; recomputed on every change of either.
type BudgetAggregatorInterface interface {
	Summarize(itinerary response_models.Itinerary, budget int64) response_models.BudgetSummary
}

type BudgetAggregator struct{}

func NewBudgetAggregator() BudgetAggregatorInterface {
	return &BudgetAggregator{}
}

func (a *BudgetAggregator) Summarize(itinerary response_models.Itinerary, budget int64) response_models.BudgetSummary {
	tripTotal := itinerary.TripTotal()

	// Denominator floor of 1 keeps a zero budget from dividing by zero; the
	// clamp keeps the percentage usable as a bounded progress value while
	// Remaining stays unclamped and may go negative.
	denominator := budget
	if denominator < 1 {
		denominator = 1
	}
	percent := int(math.Round(float64(tripTotal) / float64(denominator) * 100))
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	return response_models.BudgetSummary{
		Budget:      budget,
		TripTotal:   tripTotal,
		Remaining:   budget - tripTotal,
		PercentUsed: percent,
	}
}
