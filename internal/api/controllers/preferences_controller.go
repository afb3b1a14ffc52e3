package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type PreferencesController struct {
	gatewayService   services.GatewayServiceInterface
	itineraryService services.ItineraryServiceInterface
}

func NewPreferencesController(
	gatewayService services.GatewayServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *PreferencesController {
	return &PreferencesController{
		gatewayService:   gatewayService,
		itineraryService: itineraryService,
	}
}

func (ctrl *PreferencesController) GetPreferencesHandler(c *gin.Context) {
	prefs := ctrl.gatewayService.LoadPreferences(c.Request.Context())
	utils.RespondSuccess(c, prefs, "")
}

func (ctrl *PreferencesController) SavePreferencesHandler(c *gin.Context) {
	var prefs request_models.TripPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.gatewayService.SavePreferences(c.Request.Context(), prefs); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, prefs, "Preferences saved")
}

func (ctrl *PreferencesController) ListPlansHandler(c *gin.Context) {
	utils.RespondSuccess(c, ctrl.gatewayService.ListSavedPlans(c.Request.Context()), "")
}

// SavePlanHandler snapshots the current itinerary into the saved-plans
// collection. The snapshot keeps base-currency amounts only.
func (ctrl *PreferencesController) SavePlanHandler(c *gin.Context) {
	itinerary, ok := ctrl.itineraryService.Current()
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "No itinerary to save")
		return
	}

	plan, err := ctrl.gatewayService.AppendSavedPlan(c.Request.Context(), itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Plan saved")
}
