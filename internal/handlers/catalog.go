package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grihom/grihom-api/internal/services"
	"github.com/grihom/grihom-api/internal/utils"
)

// CatalogHandler handles the public improvement catalog routes
type CatalogHandler struct {
	Store *services.Store
}

// ListImprovements handles GET /api/improvements
// @Summary List the merged improvement catalog
// @Description Admin-authored improvements first (newest first, normalized), then the static catalog; optional room/cost/effort equality filters
// @Tags Catalog
// @Produce json
// @Param room query string false "Room filter"
// @Param cost query string false "Cost filter (Low/Medium/High)"
// @Param effort query string false "Effort filter (Low/Medium/High)"
// @Success 200 {array} models.Improvement
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /improvements [get]
func (h *CatalogHandler) ListImprovements(c *fiber.Ctx) error {
	items, err := h.Store.ListImprovements(c.Context(), parseCatalogFilters(c))
	if err != nil {
		return serviceErrorResponse(c, err, "catalog.list")
	}
	return utils.SuccessResponse(c, items, fiber.StatusOK)
}
