package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/grihom/grihom-api/internal/models"
	"github.com/grihom/grihom-api/internal/services"
	"github.com/grihom/grihom-api/internal/utils"
	"gorm.io/datatypes"
)

// ReportsHandler handles the shared report collection routes
type ReportsHandler struct {
	Store *services.Store
}

type reportInput struct {
	Title           string               `json:"title"`
	ValorScore      int                  `json:"valorScore"`
	PropertyData    models.PropertyData  `json:"propertyData"`
	Recommendations []models.Improvement `json:"recommendations"`
}

// CreateReport handles POST /api/reports
// @Summary Save a generated report
// @Description Store the submitted report data with a generated id and creation timestamp
// @Tags Reports
// @Accept json
// @Produce json
// @Param body body reportInput true "Report data"
// @Success 201 {object} models.Report
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /reports [post]
func (h *ReportsHandler) CreateReport(c *fiber.Ctx) error {
	var body reportInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "reports.validation.input")
	}

	propertyData, err := json.Marshal(body.PropertyData)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "reports.validation.input")
	}
	recommendations, err := json.Marshal(body.Recommendations)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "reports.validation.input")
	}

	report, err := h.Store.CreateReport(c.Context(), models.Report{
		Title:           body.Title,
		ValorScore:      body.ValorScore,
		PropertyData:    datatypes.JSON(propertyData),
		Recommendations: datatypes.JSON(recommendations),
	})
	if err != nil {
		return serviceErrorResponse(c, err, "reports.create")
	}
	return utils.SuccessResponse(c, report, fiber.StatusCreated)
}

// ListReports handles GET /api/reports
// @Summary List reports
// @Description All saved reports, newest first (one shared collection)
// @Tags Reports
// @Produce json
// @Success 200 {array} models.Report
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /reports [get]
func (h *ReportsHandler) ListReports(c *fiber.Ctx) error {
	reports, err := h.Store.ListReports(c.Context())
	if err != nil {
		return serviceErrorResponse(c, err, "reports.list")
	}
	return utils.SuccessResponse(c, reports, fiber.StatusOK)
}

// DeleteReport handles DELETE /api/reports/:id
// @Summary Delete a report
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} utils.OkResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /reports/{id} [delete]
func (h *ReportsHandler) DeleteReport(c *fiber.Ctx) error {
	if err := h.Store.DeleteReport(c.Context(), c.Params("id")); err != nil {
		return serviceErrorResponse(c, err, "reports.delete")
	}
	return utils.OkResponse(c)
}
