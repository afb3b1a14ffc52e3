package mem

import "sync"

// RateTableStore holds the currency conversion multipliers for the session.
// It is seeded with static fallback values and only ever overwritten by
// ApplyRates, so every supported code always resolves to a positive rate.
type RateTableStore struct {
	mu     sync.RWMutex
	rates  map[string]float64
	source string
}

func NewRateTableStore(fallback map[string]float64) *RateTableStore {
	rates := make(map[string]float64, len(fallback))
	for code, rate := range fallback {
		rates[code] = rate
	}
	return &RateTableStore{
		rates:  rates,
		source: "fallback",
	}
}

func (s *RateTableStore) Lookup(code string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rate, ok := s.rates[code]
	return rate, ok
}

// ApplyRates overwrites only codes already in the table, and only with
// positive values; everything else keeps its seeded fallback. Source records
// where the applied rates came from ("live" or "snapshot").
func (s *RateTableStore) ApplyRates(rates map[string]float64, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := false
	for code, rate := range rates {
		if rate <= 0 {
			continue
		}
		if _, supported := s.rates[code]; supported {
			s.rates[code] = rate
			applied = true
		}
	}
	if applied {
		s.source = source
	}
}

func (s *RateTableStore) Snapshot() (map[string]float64, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]float64, len(s.rates))
	for code, rate := range s.rates {
		out[code] = rate
	}
	return out, s.source
}
