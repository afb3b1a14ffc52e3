package storage_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/api/controllers"
	"yatra/internal/infra"
	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	provideDB,
	ProvideKVRepository,
	ProvideGatewayService,
	ProvideExporter,
	ProvidePreferencesController)

func provideDB(lc fx.Lifecycle) *gorm.DB {
	db := infra.InitPostgresql()
	lc.Append(fx.StopHook(func() {
		infra.ClosePostgresql(db)
	}))
	return db
}

func ProvideKVRepository(db *gorm.DB) repositories.KVRepository {
	return repositories.NewKVRepository(db)
}

func ProvideGatewayService(kv repositories.KVRepository) services.GatewayServiceInterface {
	return services.NewGatewayService(kv)
}

func ProvideExporter(presenter services.CurrencyPresenterInterface) services.ExporterInterface {
	return services.NewExporter(presenter)
}

func ProvidePreferencesController(
	gatewayService services.GatewayServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *controllers.PreferencesController {
	return controllers.NewPreferencesController(gatewayService, itineraryService)
}
