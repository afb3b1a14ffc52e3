package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/response_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type RatesController struct {
	rateService services.RateServiceInterface
	presenter   services.CurrencyPresenterInterface
}

func NewRatesController(
	rateService services.RateServiceInterface,
	presenter services.CurrencyPresenterInterface,
) *RatesController {
	return &RatesController{
		rateService: rateService,
		presenter:   presenter,
	}
}

func (ctrl *RatesController) TableHandler(c *gin.Context) {
	utils.RespondSuccess(c, ctrl.rateService.Table(), "")
}

func (ctrl *RatesController) ConvertHandler(c *gin.Context) {
	var query struct {
		Amount   int64  `form:"amount" binding:"min=0"`
		Currency string `form:"currency" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "amount and currency query parameters are required")
		return
	}

	converted, err := ctrl.presenter.Convert(query.Amount, query.Currency)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	formatted, err := ctrl.presenter.Present(query.Amount, query.Currency)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ConvertedAmount{
		BaseAmount: query.Amount,
		Currency:   query.Currency,
		Amount:     converted,
		Formatted:  formatted,
	}, "")
}

func (ctrl *RatesController) RefreshHandler(c *gin.Context) {
	ctrl.rateService.Refresh(c.Request.Context())
	utils.RespondSuccess(c, ctrl.rateService.Table(), "Rates refreshed")
}
