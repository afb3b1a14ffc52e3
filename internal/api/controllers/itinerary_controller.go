package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	gatewayService   services.GatewayServiceInterface
	aggregator       services.BudgetAggregatorInterface
	presenter        services.CurrencyPresenterInterface
	exporter         services.ExporterInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	gatewayService services.GatewayServiceInterface,
	aggregator services.BudgetAggregatorInterface,
	presenter services.CurrencyPresenterInterface,
	exporter services.ExporterInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		gatewayService:   gatewayService,
		aggregator:       aggregator,
		presenter:        presenter,
		exporter:         exporter,
	}
}

func (ctrl *ItineraryController) GenerateHandler(c *gin.Context) {
	var prefs request_models.TripPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := ctrl.itineraryService.Generate(c.Request.Context(), prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp, err := ctrl.buildPlanResponse(itinerary, prefs.Budget, c.Query("currency"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Itinerary generated")
}

func (ctrl *ItineraryController) CurrentHandler(c *gin.Context) {
	itinerary, ok := ctrl.itineraryService.Current()
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "No itinerary has been generated yet")
		return
	}

	prefs := ctrl.gatewayService.LoadPreferences(c.Request.Context())
	resp, err := ctrl.buildPlanResponse(itinerary, prefs.Budget, c.Query("currency"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

func (ctrl *ItineraryController) ClearHandler(c *gin.Context) {
	ctrl.itineraryService.Clear()
	utils.RespondSuccess(c, nil, "Itinerary cleared")
}

// BudgetHandler reconciles the current itinerary against an arbitrary budget
// without touching the stored preferences.
func (ctrl *ItineraryController) BudgetHandler(c *gin.Context) {
	itinerary, ok := ctrl.itineraryService.Current()
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "No itinerary has been generated yet")
		return
	}

	var query struct {
		Budget int64 `form:"budget" binding:"min=0"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "budget must be a non-negative number")
		return
	}

	utils.RespondSuccess(c, ctrl.aggregator.Summarize(itinerary, query.Budget), "")
}

func (ctrl *ItineraryController) ExportJSONHandler(c *gin.Context) {
	itinerary, ok := ctrl.itineraryService.Current()
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "No itinerary to export")
		return
	}

	doc, err := ctrl.exporter.ExportJSON(itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.ExportJSONFilename+`"`)
	c.Data(http.StatusOK, "application/json", doc)
}

func (ctrl *ItineraryController) ExportPDFHandler(c *gin.Context) {
	itinerary, ok := ctrl.itineraryService.Current()
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "No itinerary to export")
		return
	}

	prefs := ctrl.gatewayService.LoadPreferences(c.Request.Context())
	doc, err := ctrl.exporter.ExportPDF(itinerary, prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.ExportPDFFilename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

func (ctrl *ItineraryController) buildPlanResponse(
	itinerary response_models.Itinerary,
	budget int64,
	currency string,
) (response_models.PlanResponse, error) {
	resp := response_models.PlanResponse{
		Days:   make([]response_models.DayView, 0, len(itinerary)),
		Budget: ctrl.aggregator.Summarize(itinerary, budget),
	}

	for _, day := range itinerary {
		view := response_models.DayView{
			Day:        day.Day,
			DayTotal:   day.DayTotal,
			Activities: make([]response_models.ActivityView, 0, len(day.Activities)),
		}
		for _, activity := range day.Activities {
			view.Activities = append(view.Activities, response_models.ActivityView{
				Activity: activity,
				MapLink:  utils.MapSearchLink(activity.Name),
			})
		}
		resp.Days = append(resp.Days, view)
	}

	if currency == "" {
		return resp, nil
	}

	// Every display amount comes straight from the base integer through the
	// presenter; day and trip figures are never derived from each other.
	resp.DisplayCurrency = currency
	for i := range resp.Days {
		formatted, err := ctrl.presenter.Present(resp.Days[i].DayTotal, currency)
		if err != nil {
			return response_models.PlanResponse{}, err
		}
		resp.Days[i].DisplayTotal = formatted
	}

	tripTotal, err := ctrl.presenter.Present(resp.Budget.TripTotal, currency)
	if err != nil {
		return response_models.PlanResponse{}, err
	}
	remaining, err := ctrl.presenter.Present(resp.Budget.Remaining, currency)
	if err != nil {
		return response_models.PlanResponse{}, err
	}
	resp.DisplayTripTotal = tripTotal
	resp.DisplayRemaining = remaining

	return resp, nil
}
