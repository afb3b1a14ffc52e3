package rates_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"yatra/internal/api/controllers"
	"yatra/internal/repositories"
	"yatra/internal/services"
	mem "yatra/pkg/memcache"
	"yatra/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		provideRateTableStore,
		provideRateFetcher,
		provideSnapshotRepository,
		ProvideRateService,
		ProvideCurrencyPresenter,
		ProvideRatesController),
	fx.Invoke(refreshOnStart),
)

func provideRateTableStore() *mem.RateTableStore {
	return mem.NewRateTableStore(services.FallbackRates)
}

func provideRateFetcher() services.RateFetcher {
	url := utils.GetEnvWithDefault("RATES_API_URL", "https://open.er-api.com/v6/latest/INR")
	return services.NewHTTPRateFetcher(url)
}

// provideSnapshotRepository uses redis for the last-good rates snapshot when
// REDIS_ADDR is set, otherwise an in-process store.
func provideSnapshotRepository() repositories.RateSnapshotRepository {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		log.Printf("Using redis rate snapshots at %s", addr)
		return repositories.NewRedisRateSnapshotRepository(addr)
	}
	return repositories.NewMemoryRateSnapshotRepository()
}

func ProvideRateService(
	store *mem.RateTableStore,
	fetcher services.RateFetcher,
	snapshot repositories.RateSnapshotRepository,
) services.RateServiceInterface {
	return services.NewRateService(store, fetcher, snapshot)
}

func ProvideCurrencyPresenter(
	rateService services.RateServiceInterface,
) services.CurrencyPresenterInterface {
	return services.NewCurrencyPresenter(rateService)
}

func ProvideRatesController(
	rateService services.RateServiceInterface,
	presenter services.CurrencyPresenterInterface,
) *controllers.RatesController {
	return controllers.NewRatesController(rateService, presenter)
}

func refreshOnStart(lc fx.Lifecycle, rateService services.RateServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			rateService.Refresh(ctx)
			return nil
		},
	})
}
