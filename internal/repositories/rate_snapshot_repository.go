package repositories

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	rateSnapshotKey = "rates:last_good"
	rateSnapshotTTL = 24 * time.Hour
)

// RateSnapshotRepository remembers the last successfully fetched live rates so
// a later session whose fetch fails can fall back to something fresher than
// the static defaults. Load reports found=false on any failure; rate handling
// never hard-fails.
type RateSnapshotRepository interface {
	Load(ctx context.Context) (map[string]float64, bool)
	Store(ctx context.Context, rates map[string]float64) error
}

type redisRateSnapshotRepository struct {
	client *redis.Client
}

func NewRedisRateSnapshotRepository(addr string) RateSnapshotRepository {
	return &redisRateSnapshotRepository{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *redisRateSnapshotRepository) Load(ctx context.Context) (map[string]float64, bool) {
	raw, err := r.client.Get(ctx, rateSnapshotKey).Result()
	if err != nil {
		return nil, false
	}
	var rates map[string]float64
	if err := json.Unmarshal([]byte(raw), &rates); err != nil || len(rates) == 0 {
		return nil, false
	}
	return rates, true
}

func (r *redisRateSnapshotRepository) Store(ctx context.Context, rates map[string]float64) error {
	raw, err := json.Marshal(rates)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, rateSnapshotKey, raw, rateSnapshotTTL).Err()
}

// MemoryRateSnapshotRepository backs tests and redis-less deployments.
type MemoryRateSnapshotRepository struct {
	mu    sync.RWMutex
	rates map[string]float64
}

func NewMemoryRateSnapshotRepository() *MemoryRateSnapshotRepository {
	return &MemoryRateSnapshotRepository{}
}

func (m *MemoryRateSnapshotRepository) Load(ctx context.Context) (map[string]float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.rates) == 0 {
		return nil, false
	}
	out := make(map[string]float64, len(m.rates))
	for code, rate := range m.rates {
		out[code] = rate
	}
	return out, true
}

func (m *MemoryRateSnapshotRepository) Store(ctx context.Context, rates map[string]float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rates = make(map[string]float64, len(rates))
	for code, rate := range rates {
		m.rates[code] = rate
	}
	return nil
}
