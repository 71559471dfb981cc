package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"motomart-api/services"
	"motomart-api/utils"
)

type PriceController struct {
	prices *services.PriceService
}

func NewPriceController(prices *services.PriceService) *PriceController {
	return &PriceController{prices: prices}
}

type SuggestPriceRequest struct {
	Make      string `json:"make" binding:"required,min=2"`
	Model     string `json:"model" binding:"required"`
	Year      int    `json:"year" binding:"required,min=1900"`
	Condition string `json:"condition" binding:"required,oneof=Excellent Good Fair Poor"`
	KmDriven  int    `json:"km_driven" binding:"min=0"`
}

// SuggestPrice returns an AI-suggested listing price with reasoning. The
// provider error message is surfaced verbatim, without retry.
func (pc *PriceController) SuggestPrice(c *gin.Context) {
	var req SuggestPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	suggestion, err := pc.prices.SuggestPrice(c.Request.Context(), services.PriceInput{
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
		Condition: req.Condition,
		KmDriven:  req.KmDriven,
	})
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.SendValidationError(c, vErr.Error())
			return
		}
		utils.SendError(c, http.StatusBadGateway, err.Error())
		return
	}

	c.JSON(http.StatusOK, suggestion)
}
