package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"yatra/internal/models/request_models"
	"yatra/pkg/utils"
)

// fakeGenerator returns canned model output; block, when set, holds the
// generation open until released and signals entry on started.
type fakeGenerator struct {
	output  string
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	return f.output, f.err
}

func (f *fakeGenerator) Close() error { return nil }

func newTestItineraryService(generator utils.TextGeneratorInterface) ItineraryServiceInterface {
	return NewItineraryService(NewPromptBuilder(), generator, NewExtractor(), NewNormalizer())
}

func validPrefs() request_models.TripPreferences {
	return request_models.TripPreferences{DurationDays: 2, GroupSize: 2, Budget: 9000, StartLocation: "Ranchi"}
}

func TestGenerateFullCycle(t *testing.T) {
	generator := &fakeGenerator{output: `Here is your Jharkhand plan:
[
  {"day": 1, "dayTotal": 1000, "activities": [
    {"name": "Hundru Falls", "time": "Morning", "estimatedCost": 800,},
    {"name": "Jagannath Temple", "time": "Afternoon", "estimatedCost": 200}
  ]}
]
Enjoy the trip!`}
	service := newTestItineraryService(generator)

	itinerary, err := service.Generate(context.Background(), validPrefs())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(itinerary) != 1 || len(itinerary[0].Activities) != 2 {
		t.Fatalf("unexpected itinerary shape: %+v", itinerary)
	}
	if itinerary[0].DayTotal != 1000 {
		t.Errorf("DayTotal = %d, want 1000", itinerary[0].DayTotal)
	}

	current, ok := service.Current()
	if !ok {
		t.Fatal("expected a current itinerary after a successful cycle")
	}
	if current[0].Activities[0].Name != "Hundru Falls" {
		t.Errorf("unexpected current itinerary: %+v", current)
	}
}

func TestGenerateRecomputesMissingDayTotal(t *testing.T) {
	generator := &fakeGenerator{output: "Sure! Here's your plan:\n" +
		`[{"day":1,"activities":[{"name":"X","time":"Morning","estimatedCost":500,}]}]` +
		"\nEnjoy!"}
	service := newTestItineraryService(generator)

	itinerary, err := service.Generate(context.Background(), validPrefs())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(itinerary) != 1 || len(itinerary[0].Activities) != 1 {
		t.Fatalf("unexpected shape: %+v", itinerary)
	}
	if itinerary[0].Activities[0].EstimatedCost != 500 || itinerary[0].DayTotal != 500 {
		t.Errorf("expected cost and recomputed total of 500, got %+v", itinerary[0])
	}
}

func TestGenerateRejectsBadPreferences(t *testing.T) {
	service := newTestItineraryService(&fakeGenerator{})

	cases := []request_models.TripPreferences{
		{DurationDays: 0, GroupSize: 2, Budget: 1000},
		{DurationDays: 2, GroupSize: 0, Budget: 1000},
		{DurationDays: 2, GroupSize: 2, Budget: -1},
	}

	for _, prefs := range cases {
		if _, err := service.Generate(context.Background(), prefs); !errors.Is(err, utils.ErrInvalidInput) {
			t.Errorf("prefs %+v: expected ErrInvalidInput, got %v", prefs, err)
		}
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	service := newTestItineraryService(&fakeGenerator{err: errors.New("quota exceeded")})

	_, err := service.Generate(context.Background(), validPrefs())
	if !errors.Is(err, utils.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if !utils.IsGenerationFailure(err) {
		t.Error("upstream failure should read as a generation failure")
	}
}

// A failed cycle never replaces the itinerary from an earlier good cycle.
func TestGenerateFailureKeepsPriorItinerary(t *testing.T) {
	generator := &fakeGenerator{output: `[{"day": 1, "dayTotal": 500, "activities": []}]`}
	service := newTestItineraryService(generator)

	if _, err := service.Generate(context.Background(), validPrefs()); err != nil {
		t.Fatalf("seed generation: %v", err)
	}

	generator.output = "I cannot produce an itinerary right now."
	if _, err := service.Generate(context.Background(), validPrefs()); !errors.Is(err, utils.ErrExtractionFailure) {
		t.Fatalf("expected ErrExtractionFailure, got %v", err)
	}

	current, ok := service.Current()
	if !ok || current[0].DayTotal != 500 {
		t.Errorf("prior itinerary should survive the failed cycle, got %v, %v", current, ok)
	}
}

func TestGenerateValidationFailure(t *testing.T) {
	service := newTestItineraryService(&fakeGenerator{output: `[{"day": 1}]`})

	_, err := service.Generate(context.Background(), validPrefs())
	if !errors.Is(err, utils.ErrValidationFailure) {
		t.Fatalf("expected ErrValidationFailure, got %v", err)
	}
	if _, ok := service.Current(); ok {
		t.Error("a failed first cycle must not install an itinerary")
	}
}

func TestGenerateInFlightGuard(t *testing.T) {
	generator := &fakeGenerator{
		output:  `[{"day": 1, "dayTotal": 100, "activities": []}]`,
		block:   make(chan struct{}),
		started: make(chan struct{}, 2),
	}
	service := newTestItineraryService(generator)

	done := make(chan error, 1)
	go func() {
		_, err := service.Generate(context.Background(), validPrefs())
		done <- err
	}()

	// Wait for the first cycle to take the in-flight slot.
	select {
	case <-generator.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first cycle never started")
	}

	if _, err := service.Generate(context.Background(), validPrefs()); !errors.Is(err, utils.ErrGenerationInFlight) {
		t.Fatalf("expected ErrGenerationInFlight, got %v", err)
	}

	close(generator.block)
	if err := <-done; err != nil {
		t.Fatalf("first cycle should finish cleanly: %v", err)
	}

	// The slot is free again.
	if _, err := service.Generate(context.Background(), validPrefs()); err != nil {
		t.Errorf("generation after release failed: %v", err)
	}
}

// Clearing while a cycle is in flight invalidates its token, so the late
// result cannot resurrect the cleared state.
func TestClearDiscardsInFlightResult(t *testing.T) {
	generator := &fakeGenerator{
		output:  `[{"day": 1, "dayTotal": 100, "activities": []}]`,
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	service := newTestItineraryService(generator)

	done := make(chan error, 1)
	go func() {
		_, err := service.Generate(context.Background(), validPrefs())
		done <- err
	}()

	select {
	case <-generator.started:
	case <-time.After(2 * time.Second):
		t.Fatal("cycle never became in-flight")
	}

	service.Clear()
	close(generator.block)

	if err := <-done; err != nil {
		t.Fatalf("cycle itself still succeeds: %v", err)
	}
	if _, ok := service.Current(); ok {
		t.Error("stale result must not be installed after Clear")
	}
}
