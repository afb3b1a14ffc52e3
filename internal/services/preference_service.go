package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

const (
	keyPreferences = "trip_preferences"
	keySavedPlans  = "saved_plans"
)

// DefaultPreferences is what loads when nothing was saved yet or the stored
// value is unreadable.
func DefaultPreferences() request_models.TripPreferences {
	return request_models.TripPreferences{
		DurationDays:  3,
		Interests:     []string{},
		Budget:        10000,
		GroupSize:     2,
		StartLocation: "Ranchi",
		CustomStops:   []string{},
	}
}

// GatewayServiceInterface is the persistence gateway: preferences round-trip,
// the append-only saved-plans collection, and nothing else. Reads never fail
// outward; they substitute documented defaults.
type GatewayServiceInterface interface {
	SavePreferences(ctx context.Context, prefs request_models.TripPreferences) error
	LoadPreferences(ctx context.Context) request_models.TripPreferences
	AppendSavedPlan(ctx context.Context, itinerary response_models.Itinerary) (response_models.SavedPlan, error)
	ListSavedPlans(ctx context.Context) []response_models.SavedPlan
}

type GatewayService struct {
	kv repositories.KVRepository
}

func NewGatewayService(kv repositories.KVRepository) GatewayServiceInterface {
	return &GatewayService{kv: kv}
}

func (g *GatewayService) SavePreferences(ctx context.Context, prefs request_models.TripPreferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := g.kv.Set(ctx, keyPreferences, raw); err != nil {
		log.Printf("saving preferences failed: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (g *GatewayService) LoadPreferences(ctx context.Context) request_models.TripPreferences {
	raw, found, err := g.kv.Get(ctx, keyPreferences)
	if err != nil || !found {
		if err != nil {
			log.Printf("loading preferences failed, using defaults: %v", err)
		}
		return DefaultPreferences()
	}

	var prefs request_models.TripPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		log.Printf("stored preferences are corrupt, using defaults: %v", err)
		return DefaultPreferences()
	}
	if prefs.Interests == nil {
		prefs.Interests = []string{}
	}
	if prefs.CustomStops == nil {
		prefs.CustomStops = []string{}
	}
	return prefs
}

// AppendSavedPlan snapshots the itinerary onto the end of the collection and
// persists the whole updated list. Existing entries are never touched.
func (g *GatewayService) AppendSavedPlan(ctx context.Context, itinerary response_models.Itinerary) (response_models.SavedPlan, error) {
	plans := g.ListSavedPlans(ctx)

	snapshot := response_models.SavedPlan{
		ID:        uuid.New().String(),
		SavedAt:   time.Now().Unix(),
		TripTotal: itinerary.TripTotal(),
		Days:      itinerary,
	}
	plans = append(plans, snapshot)

	raw, err := json.Marshal(plans)
	if err != nil {
		return response_models.SavedPlan{}, utils.ErrDatabaseError
	}
	if err := g.kv.Set(ctx, keySavedPlans, raw); err != nil {
		log.Printf("persisting saved plans failed: %v", err)
		return response_models.SavedPlan{}, utils.ErrDatabaseError
	}
	return snapshot, nil
}

func (g *GatewayService) ListSavedPlans(ctx context.Context) []response_models.SavedPlan {
	raw, found, err := g.kv.Get(ctx, keySavedPlans)
	if err != nil || !found {
		if err != nil {
			log.Printf("loading saved plans failed, treating as empty: %v", err)
		}
		return []response_models.SavedPlan{}
	}

	var plans []response_models.SavedPlan
	if err := json.Unmarshal(raw, &plans); err != nil {
		log.Printf("stored plans are corrupt, treating as empty: %v", err)
		return []response_models.SavedPlan{}
	}
	return plans
}
