package itinerary_fx

import (
	"go.uber.org/fx"

	"yatra/internal/api/controllers"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

var Module = fx.Provide(
	services.NewPromptBuilder,
	services.NewExtractor,
	services.NewNormalizer,
	services.NewBudgetAggregator,
	ProvideItineraryService,
	ProvideItineraryController)

func ProvideItineraryService(
	prompts services.PromptBuilderInterface,
	generator utils.TextGeneratorInterface,
	extractor services.ExtractorInterface,
	normalizer services.NormalizerInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(prompts, generator, extractor, normalizer)
}

func ProvideItineraryController(
	itineraryService services.ItineraryServiceInterface,
	gatewayService services.GatewayServiceInterface,
	aggregator services.BudgetAggregatorInterface,
	presenter services.CurrencyPresenterInterface,
	exporter services.ExporterInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService, gatewayService, aggregator, presenter, exporter)
}
