package services

import (
	"fmt"
	"strings"

	"yatra/internal/models/request_models"
)

// PromptBuilderInterface renders trip preferences into the single prompt
// handed to the text-generation collaborator. Pure; same input, same prompt.
type PromptBuilderInterface interface {
	BuildItineraryPrompt(prefs request_models.TripPreferences) string
}

type PromptBuilder struct{}

func NewPromptBuilder() PromptBuilderInterface {
	return &PromptBuilder{}
}

const (
	defaultInterests   = "General sightseeing"
	defaultCustomStops = "None"
)

func (b *PromptBuilder) BuildItineraryPrompt(prefs request_models.TripPreferences) string {
	var prompt strings.Builder

	prompt.WriteString("You are a Jharkhand travel expert creating detailed day-by-day itineraries ")
	prompt.WriteString("with realistic cost estimates for Indian travellers.\n\n")

	prompt.WriteString("Return a JSON array of day objects in EXACTLY this shape:\n")
	prompt.WriteString(`[
  {
    "day": 1,
    "dayTotal": 2500,
    "activities": [
      {
        "name": "Hundru Falls",
        "time": "Morning",
        "description": "98m waterfall, 45km from Ranchi",
        "estimatedCost": 800
      },
      {
        "name": "Jagannath Temple",
        "time": "Afternoon",
        "description": "17th century hilltop temple",
        "estimatedCost": 200
      }
    ]
  }
]`)
	prompt.WriteString("\n\n")

	interests := strings.Join(prefs.Interests, ", ")
	if interests == "" {
		interests = defaultInterests
	}
	stops := strings.Join(prefs.CustomStops, ", ")
	if stops == "" {
		stops = defaultCustomStops
	}

	prompt.WriteString("Trip preferences:\n")
	prompt.WriteString(fmt.Sprintf("- Duration: %d days\n", prefs.DurationDays))
	prompt.WriteString(fmt.Sprintf("- Interests: %s\n", interests))
	prompt.WriteString(fmt.Sprintf("- Total budget: %d INR\n", prefs.Budget))
	prompt.WriteString(fmt.Sprintf("- Group size: %d\n", prefs.GroupSize))
	prompt.WriteString(fmt.Sprintf("- Starting from: %s\n", prefs.StartLocation))
	prompt.WriteString(fmt.Sprintf("- Must-visit stops, in order: %s\n\n", stops))

	prompt.WriteString("Rules:\n")
	prompt.WriteString("1. Return ONLY the JSON array, no extra text\n")
	prompt.WriteString("2. Estimate costs as numbers in INR, rounded to the nearest 50\n")
	prompt.WriteString("3. \"time\" must be one of Morning, Afternoon, Evening\n")
	prompt.WriteString("4. Group nearby activities on the same day to minimize travel\n")

	return prompt.String()
}
