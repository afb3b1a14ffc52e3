package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// ItineraryServiceInterface runs the full generation cycle: prompt, text
// generation, extraction, normalization, then an atomic replace of the single
// in-memory itinerary. A failed cycle yields no itinerary and leaves the prior
// one untouched; there is never a partial result.
type ItineraryServiceInterface interface {
	Generate(ctx context.Context, prefs request_models.TripPreferences) (response_models.Itinerary, error)
	Current() (response_models.Itinerary, bool)
	Clear()
}

type ItineraryService struct {
	prompts    PromptBuilderInterface
	generator  utils.TextGeneratorInterface
	extractor  ExtractorInterface
	normalizer NormalizerInterface

	mu       sync.Mutex
	inFlight bool
	genToken string
	current  response_models.Itinerary
}

func NewItineraryService(
	prompts PromptBuilderInterface,
	generator utils.TextGeneratorInterface,
	extractor ExtractorInterface,
	normalizer NormalizerInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		prompts:    prompts,
		generator:  generator,
		extractor:  extractor,
		normalizer: normalizer,
	}
}

func (s *ItineraryService) Generate(ctx context.Context, prefs request_models.TripPreferences) (response_models.Itinerary, error) {
	if prefs.DurationDays < 1 || prefs.GroupSize < 1 || prefs.Budget < 0 {
		return nil, utils.ErrInvalidInput
	}

	token, err := s.begin()
	if err != nil {
		return nil, err
	}
	defer s.finish()

	prompt := s.prompts.BuildItineraryPrompt(prefs)

	raw, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("text generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamUnavailable, err)
	}

	candidates, err := s.extractor.ExtractPayload(raw)
	if err != nil {
		// The raw text goes to the log for diagnosis; the user only ever
		// sees the generic retry prompt.
		log.Printf("extraction failed: %v; raw model output: %q", err, raw)
		return nil, err
	}

	itinerary, err := s.normalizer.NormalizeDays(candidates)
	if err != nil {
		log.Printf("normalization rejected payload: %v", err)
		return nil, err
	}

	if !s.install(token, itinerary) {
		log.Printf("discarding stale generation result (state changed mid-flight)")
	}
	return itinerary, nil
}

func (s *ItineraryService) Current() (response_models.Itinerary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current != nil
}

// Clear drops the current itinerary and invalidates any in-flight generation
// so its late result cannot resurrect the cleared state.
func (s *ItineraryService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.genToken = ""
}

func (s *ItineraryService) begin() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return "", utils.ErrGenerationInFlight
	}
	s.inFlight = true
	s.genToken = uuid.New().String()
	return s.genToken, nil
}

func (s *ItineraryService) finish() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// install replaces the current itinerary only when the cycle's token is still
// the newest one issued (last-request-wins).
func (s *ItineraryService) install(token string, itinerary response_models.Itinerary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.genToken != token {
		return false
	}
	s.current = itinerary
	return true
}
