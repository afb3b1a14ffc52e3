package services

import (
	"strings"
	"testing"

	"yatra/internal/models/request_models"
)

func TestBuildItineraryPromptCarriesAllPreferences(t *testing.T) {
	builder := NewPromptBuilder()

	prompt := builder.BuildItineraryPrompt(request_models.TripPreferences{
		DurationDays:  4,
		Interests:     []string{"Waterfalls", "Temples"},
		Budget:        15000,
		GroupSize:     3,
		StartLocation: "Jamshedpur",
		CustomStops:   []string{"Dimna Lake", "Dalma Hills"},
	})

	for _, want := range []string{
		"Duration: 4 days",
		"Interests: Waterfalls, Temples",
		"Total budget: 15000 INR",
		"Group size: 3",
		"Starting from: Jamshedpur",
		"Must-visit stops, in order: Dimna Lake, Dalma Hills",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildItineraryPromptDefaults(t *testing.T) {
	builder := NewPromptBuilder()

	prompt := builder.BuildItineraryPrompt(request_models.TripPreferences{
		DurationDays: 2,
		GroupSize:    1,
		Budget:       5000,
	})

	if !strings.Contains(prompt, "Interests: General sightseeing") {
		t.Error("expected default interests placeholder")
	}
	if !strings.Contains(prompt, "Must-visit stops, in order: None") {
		t.Error("expected default custom stops placeholder")
	}
}

func TestBuildItineraryPromptShapeAndRules(t *testing.T) {
	builder := NewPromptBuilder()

	prompt := builder.BuildItineraryPrompt(request_models.TripPreferences{
		DurationDays: 3, GroupSize: 2, Budget: 10000,
	})

	for _, want := range []string{
		`"dayTotal"`,
		`"estimatedCost"`,
		"Return ONLY the JSON array",
		"rounded to the nearest 50",
		"Morning, Afternoon, Evening",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildItineraryPromptIsDeterministic(t *testing.T) {
	builder := NewPromptBuilder()
	prefs := request_models.TripPreferences{
		DurationDays: 3, GroupSize: 2, Budget: 10000, StartLocation: "Ranchi",
	}

	if builder.BuildItineraryPrompt(prefs) != builder.BuildItineraryPrompt(prefs) {
		t.Error("same preferences should render the same prompt")
	}
}
