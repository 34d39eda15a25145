package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/grihom/grihom-api/internal/services"
	"github.com/grihom/grihom-api/internal/types"
	"github.com/grihom/grihom-api/internal/utils"
	"github.com/grihom/grihom-api/internal/validation"
)

// PrefsHandler handles the per-user preference routes: the miscellaneous
// preferences object, the UI theme, the improvement plan and favorites.
type PrefsHandler struct {
	Store *services.Store
}

type themeInput struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type idInput struct {
	ID types.FlexInt64 `json:"id"`
}

type idListInput struct {
	IDs types.FlexList[types.FlexInt64] `json:"ids"`
}

func (in idListInput) int64s() []int64 {
	ids := make([]int64, 0, len(in.IDs))
	for _, id := range in.IDs {
		ids = append(ids, id.Int64())
	}
	return ids
}

// GetPreferences handles GET /api/user/preferences
// @Summary Get the preferences object
// @Tags Prefs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/preferences [get]
func (h *PrefsHandler) GetPreferences(c *fiber.Ctx) error {
	prefs, err := h.Store.Preferences(c.Context(), currentUser(c).ID)
	if err != nil {
		return serviceErrorResponse(c, err, "prefs.get")
	}
	return utils.SuccessResponse(c, prefs, fiber.StatusOK)
}

// SetPreferences handles PUT /api/user/preferences
// @Summary Replace the preferences object
// @Tags Prefs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body map[string]interface{} true "Preferences"
// @Success 200 {object} utils.OkResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/preferences [put]
func (h *PrefsHandler) SetPreferences(c *fiber.Ctx) error {
	prefs := map[string]interface{}{}
	if err := c.BodyParser(&prefs); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "prefs.validation.input")
	}
	if err := h.Store.SetPreferences(c.Context(), currentUser(c).ID, prefs); err != nil {
		return serviceErrorResponse(c, err, "prefs.set")
	}
	return utils.OkResponse(c)
}

// GetTheme handles GET /api/user/theme
// @Summary Get the UI theme
// @Tags Prefs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/theme [get]
func (h *PrefsHandler) GetTheme(c *fiber.Ctx) error {
	theme, err := h.Store.Theme(c.Context(), currentUser(c).ID)
	if err != nil {
		return serviceErrorResponse(c, err, "prefs.theme.get")
	}
	return utils.SuccessResponse(c, fiber.Map{"theme": theme}, fiber.StatusOK)
}

// SetTheme handles PUT /api/user/theme
// @Summary Set the UI theme (light/dark)
// @Tags Prefs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body themeInput true "Theme"
// @Success 200 {object} utils.OkResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/theme [put]
func (h *PrefsHandler) SetTheme(c *fiber.Ctx) error {
	var body themeInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "prefs.validation.input")
	}
	if err := validation.Struct(body); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "prefs.validation.input")
	}
	if err := h.Store.SetTheme(c.Context(), currentUser(c).ID, body.Theme); err != nil {
		return serviceErrorResponse(c, err, "prefs.theme.set")
	}
	return utils.OkResponse(c)
}

// GetPlan handles GET /api/user/plan
// @Summary Get the planned-improvement id list
// @Tags Prefs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} int
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/plan [get]
func (h *PrefsHandler) GetPlan(c *fiber.Ctx) error {
	ids, err := h.Store.Plan(c.Context(), currentUser(c).ID)
	if err != nil {
		return serviceErrorResponse(c, err, "prefs.plan.get")
	}
	return utils.SuccessResponse(c, ids, fiber.StatusOK)
}

// AddToPlan handles POST /api/user/plan
// @Summary Add an improvement to the plan
// @Tags Prefs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body idInput true "Improvement id (number or string)"
// @Success 200 {array} int
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/plan [post]
func (h *PrefsHandler) AddToPlan(c *fiber.Ctx) error {
	var body idInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "prefs.validation.input")
	}
	ids, err := h.Store.AddToPlan(c.Context(), currentUser(c).ID, body.ID.Int64())
	if err != nil {
		return serviceErrorResponse(c, err, "prefs.plan.add")
	}
	return utils.SuccessResponse(c, ids, fiber.StatusOK)
}

// SetPlan handles PUT /api/user/plan
// @Summary Replace the plan id list
// @Tags Prefs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body idListInput true "Improvement ids"
// @Success 200 {array} int
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/plan [put]
func (h *PrefsHandler) SetPlan(c *fiber.Ctx) error {
	var body idListInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "prefs.validation.input")
	}
	ids := body.int64s()
	if err := h.Store.SetPlan(c.Context(), currentUser(c).ID, ids); err != nil {
		return serviceErrorResponse(c, err, "prefs.plan.set")
	}
	return utils.SuccessResponse(c, ids, fiber.StatusOK)
}

// RemoveFromPlan handles DELETE /api/user/plan/:id
// @Summary Remove an improvement from the plan
// @Tags Prefs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Improvement ID"
// @Success 200 {array} int
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/plan/{id} [delete]
func (h *PrefsHandler) RemoveFromPlan(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid improvement id", fiber.StatusBadRequest, "prefs.validation.input")
	}
	ids, err := h.Store.RemoveFromPlan(c.Context(), currentUser(c).ID, id)
	if err != nil {
		return serviceErrorResponse(c, err, "prefs.plan.remove")
	}
	return utils.SuccessResponse(c, ids, fiber.StatusOK)
}

// GetFavorites handles GET /api/user/favorites
// @Summary Get the favorite idea id list
// @Tags Prefs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} int
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/favorites [get]
func (h *PrefsHandler) GetFavorites(c *fiber.Ctx) error {
	ids, err := h.Store.Favorites(c.Context(), currentUser(c).ID)
	if err != nil {
		return serviceErrorResponse(c, err, "prefs.favorites.get")
	}
	return utils.SuccessResponse(c, ids, fiber.StatusOK)
}

// AddFavorite handles POST /api/user/favorites
// @Summary Mark an idea as favorite
// @Tags Prefs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body idInput true "Idea id (number or string)"
// @Success 200 {array} int
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/favorites [post]
func (h *PrefsHandler) AddFavorite(c *fiber.Ctx) error {
	var body idInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "prefs.validation.input")
	}
	ids, err := h.Store.AddFavorite(c.Context(), currentUser(c).ID, body.ID.Int64())
	if err != nil {
		return serviceErrorResponse(c, err, "prefs.favorites.add")
	}
	return utils.SuccessResponse(c, ids, fiber.StatusOK)
}

// SetFavorites handles PUT /api/user/favorites
// @Summary Replace the favorite id list
// @Tags Prefs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body idListInput true "Idea ids"
// @Success 200 {array} int
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/favorites [put]
func (h *PrefsHandler) SetFavorites(c *fiber.Ctx) error {
	var body idListInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "prefs.validation.input")
	}
	ids := body.int64s()
	if err := h.Store.SetFavorites(c.Context(), currentUser(c).ID, ids); err != nil {
		return serviceErrorResponse(c, err, "prefs.favorites.set")
	}
	return utils.SuccessResponse(c, ids, fiber.StatusOK)
}

// RemoveFavorite handles DELETE /api/user/favorites/:id
// @Summary Unmark a favorite idea
// @Tags Prefs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Idea ID"
// @Success 200 {array} int
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/favorites/{id} [delete]
func (h *PrefsHandler) RemoveFavorite(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid idea id", fiber.StatusBadRequest, "prefs.validation.input")
	}
	ids, err := h.Store.RemoveFavorite(c.Context(), currentUser(c).ID, id)
	if err != nil {
		return serviceErrorResponse(c, err, "prefs.favorites.remove")
	}
	return utils.SuccessResponse(c, ids, fiber.StatusOK)
}
