package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grihom/grihom-api/internal/models"
	"github.com/grihom/grihom-api/internal/services"
	"github.com/grihom/grihom-api/internal/utils"
	"github.com/grihom/grihom-api/internal/valuation"
)

// ValuationHandler handles the stateless valuation route
type ValuationHandler struct {
	Store *services.Store
}

type valuationInput struct {
	PropertyData models.PropertyData  `json:"propertyData"`
	Implemented  []models.Improvement `json:"implementedImprovements"`
}

type valuationResult struct {
	ValorScore      int                  `json:"valorScore"`
	Recommendations []models.Improvement `json:"recommendations"`
}

// Evaluate handles POST /api/valuation
// @Summary Compute valor score and recommendations
// @Description Score the submitted property and rank catalog recommendations; nothing is persisted
// @Tags Valuation
// @Accept json
// @Produce json
// @Param body body valuationInput true "Property attributes and optionally implemented improvements"
// @Success 200 {object} valuationResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /valuation [post]
func (h *ValuationHandler) Evaluate(c *fiber.Ctx) error {
	var body valuationInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "valuation.validation.input")
	}

	catalog, err := h.Store.ListImprovements(c.Context(), models.CatalogFilters{})
	if err != nil {
		return serviceErrorResponse(c, err, "valuation.catalog")
	}

	result := valuationResult{
		ValorScore:      valuation.CalculateValorScore(body.PropertyData, body.Implemented),
		Recommendations: valuation.GenerateRecommendations(body.PropertyData, catalog),
	}
	return utils.SuccessResponse(c, result, fiber.StatusOK)
}
