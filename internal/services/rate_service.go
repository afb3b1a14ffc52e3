package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	mem "yatra/pkg/memcache"
	"yatra/pkg/utils"
)

// BaseCurrency is the single currency all canonical amounts are stored in.
const BaseCurrency = "INR"

// FallbackRates are the static per-currency multipliers (units of the display
// currency per one INR) used whenever live data is unavailable for a code.
var FallbackRates = map[string]float64{
	"USD": 0.012,
	"EUR": 0.011,
	"GBP": 0.0095,
	"JPY": 1.80,
	"AUD": 0.018,
	"AED": 0.044,
}

// RateFetcher is the external rate collaborator. Any failure is treated the
// same as "no data".
type RateFetcher interface {
	FetchRates(ctx context.Context) (map[string]float64, error)
}

type HTTPRateFetcher struct {
	url        string
	httpClient *http.Client
}

func NewHTTPRateFetcher(url string) *HTTPRateFetcher {
	return &HTTPRateFetcher{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (f *HTTPRateFetcher) FetchRates(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("malformed rate response: %w", err)
	}
	if len(parsed.Rates) == 0 {
		return nil, fmt.Errorf("rate response carries no rates")
	}

	return parsed.Rates, nil
}

// RateServiceInterface owns the session's RateTable. Refresh runs once at
// startup; lookups always resolve for supported codes because the table is
// seeded with fallbacks that only positive live values may overwrite.
type RateServiceInterface interface {
	Refresh(ctx context.Context)
	Lookup(code string) (float64, error)
	Table() response_models.RateTableView
}

type RateService struct {
	store    *mem.RateTableStore
	fetcher  RateFetcher
	snapshot repositories.RateSnapshotRepository
}

func NewRateService(store *mem.RateTableStore, fetcher RateFetcher, snapshot repositories.RateSnapshotRepository) RateServiceInterface {
	return &RateService{
		store:    store,
		fetcher:  fetcher,
		snapshot: snapshot,
	}
}

// Refresh attempts one live fetch. Every failure path recovers silently:
// currency conversion must never hard-fail the itinerary feature.
func (s *RateService) Refresh(ctx context.Context) {
	live, err := s.fetcher.FetchRates(ctx)
	if err == nil {
		s.store.ApplyRates(live, "live")
		if storeErr := s.snapshot.Store(ctx, live); storeErr != nil {
			log.Printf("could not snapshot live rates: %v", storeErr)
		}
		return
	}

	log.Printf("live rate fetch failed, trying last-good snapshot: %v", err)
	if cached, ok := s.snapshot.Load(ctx); ok {
		s.store.ApplyRates(cached, "snapshot")
		return
	}
	// Static fallback table stays in effect.
}

func (s *RateService) Lookup(code string) (float64, error) {
	if code == BaseCurrency {
		return 1.0, nil
	}
	if rate, ok := s.store.Lookup(code); ok {
		return rate, nil
	}
	return 0, utils.ErrUnknownCurrency
}

func (s *RateService) Table() response_models.RateTableView {
	rates, source := s.store.Snapshot()
	return response_models.RateTableView{
		Base:   BaseCurrency,
		Source: source,
		Rates:  rates,
	}
}
