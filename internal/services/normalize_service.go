package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// NormalizerInterface turns the loosely-typed candidate list recovered by the
// extractor into a canonical Itinerary. Validation is all-or-nothing: a single
// structurally invalid day rejects the whole payload.
type NormalizerInterface interface {
	NormalizeDays(candidates []interface{}) (response_models.Itinerary, error)
}

type Normalizer struct{}

func NewNormalizer() NormalizerInterface {
	return &Normalizer{}
}

func (n *Normalizer) NormalizeDays(candidates []interface{}) (response_models.Itinerary, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: payload has no days", utils.ErrValidationFailure)
	}

	itinerary := make(response_models.Itinerary, 0, len(candidates))
	for i, candidate := range candidates {
		dayMap, ok := candidate.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: day %d is not an object", utils.ErrValidationFailure, i+1)
		}

		// A day with no activities list is meaningless, and a hard failure
		// rather than a defaultable field.
		rawActivities, ok := dayMap["activities"].([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: day %d has no activities list", utils.ErrValidationFailure, i+1)
		}

		day := response_models.ItineraryDay{
			Day:        coerceDayNumber(dayMap["day"], i+1),
			Activities: make([]response_models.Activity, 0, len(rawActivities)),
		}

		var activitySum int64
		for _, rawActivity := range rawActivities {
			activity := normalizeActivity(rawActivity)
			activitySum += activity.EstimatedCost
			day.Activities = append(day.Activities, activity)
		}

		// Trust a plausible declared total: it may legitimately include costs
		// not broken out per activity. Anything else is recomputed.
		if declared, ok := coerceAmount(dayMap["dayTotal"]); ok && declared >= 0 {
			day.DayTotal = declared
		} else {
			day.DayTotal = activitySum
		}

		itinerary = append(itinerary, day)
	}

	return itinerary, nil
}

func normalizeActivity(raw interface{}) response_models.Activity {
	activity := response_models.Activity{TimeOfDay: response_models.Morning}

	m, ok := raw.(map[string]interface{})
	if !ok {
		return activity
	}

	if name, ok := m["name"].(string); ok {
		activity.Name = name
	}
	if desc, ok := m["description"].(string); ok {
		activity.Description = desc
	}
	activity.TimeOfDay = coerceTimeOfDay(m["time"])

	if cost, ok := coerceAmount(m["estimatedCost"]); ok && cost > 0 {
		activity.EstimatedCost = cost
	}

	return activity
}

func coerceTimeOfDay(raw interface{}) response_models.TimeOfDay {
	s, _ := raw.(string)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "afternoon":
		return response_models.Afternoon
	case "evening":
		return response_models.Evening
	default:
		return response_models.Morning
	}
}

// coerceAmount accepts the numeric forms a generated payload plausibly uses
// for money: JSON numbers and numeric strings. Rounds to the nearest integer.
func coerceAmount(raw interface{}) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		return int64(math.Round(v)), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return int64(math.Round(f)), true
	default:
		return 0, false
	}
}

func coerceDayNumber(raw interface{}, fallback int) int {
	if n, ok := coerceAmount(raw); ok && n > 0 {
		return int(n)
	}
	return fallback
}
