package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/grihom/grihom-api/internal/models"
	"github.com/grihom/grihom-api/internal/services"
	"github.com/grihom/grihom-api/internal/utils"
	"github.com/grihom/grihom-api/internal/validation"
	"gorm.io/datatypes"
)

// AdminHandler handles the admin panel routes: roster management, the
// admin-authored improvement catalog, stats and the audit history.
type AdminHandler struct {
	Store *services.Store
}

type roleInput struct {
	IsAdmin bool `json:"isAdmin"`
}

type statusInput struct {
	IsActive bool `json:"isActive"`
}

type improvementInput struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	Cost           string   `json:"cost" validate:"required,oneof=Low Medium High"`
	Effort         string   `json:"effort" validate:"required,oneof=Low Medium High"`
	ROI            string   `json:"roi" validate:"required,oneof=Low Medium High"`
	Impact         int      `json:"impact" validate:"gte=0"`
	Room           string   `json:"room" validate:"required"`
	Duration       string   `json:"duration"`
	BudgetRange    string   `json:"budgetRange"`
	Tags           []string `json:"tags"`
	IndianSpecific *bool    `json:"indianSpecific"`
	ImageURL       string   `json:"imageUrl"`
}

func (in improvementInput) toModel() (models.Improvement, error) {
	imp := models.Improvement{
		Title:          in.Title,
		Description:    in.Description,
		Cost:           in.Cost,
		Effort:         in.Effort,
		ROI:            in.ROI,
		Impact:         in.Impact,
		Room:           in.Room,
		Duration:       in.Duration,
		BudgetRange:    in.BudgetRange,
		IndianSpecific: in.IndianSpecific,
		ImageURL:       in.ImageURL,
	}
	if in.Tags != nil {
		raw, err := json.Marshal(in.Tags)
		if err != nil {
			return models.Improvement{}, err
		}
		imp.Tags = datatypes.JSON(raw)
	}
	return imp, nil
}

// logHistory appends an audit entry for a completed admin mutation. The write
// follows the mutation; it is not atomic with it. A failed history write is
// logged and swallowed, as in the original.
func (h *AdminHandler) logHistory(c *fiber.Ctx, action, details string) {
	admin := currentUser(c)
	_, err := h.Store.AppendHistory(c.Context(), models.HistoryEntry{
		Action:     action,
		Details:    details,
		AdminName:  admin.Name,
		AdminEmail: admin.Email,
	})
	if err != nil {
		log.Printf("Failed to append admin history entry: %v", err)
	}
}

// Stats handles GET /api/admin/stats
// @Summary Admin dashboard counters
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.AdminStats
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.Store.Stats(c.Context())
	if err != nil {
		return serviceErrorResponse(c, err, "admin.stats")
	}
	return utils.SuccessResponse(c, stats, fiber.StatusOK)
}

// ListUsers handles GET /api/admin/users
// @Summary List the user roster
// @Description Every account without its password field
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SafeUser
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Store.ListUsers(c.Context())
	if err != nil {
		return serviceErrorResponse(c, err, "admin.users.list")
	}
	return utils.SuccessResponse(c, users, fiber.StatusOK)
}

// UpdateUserRole handles PUT /api/admin/users/:id/role
// @Summary Toggle a user's admin role
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param body body roleInput true "New role"
// @Success 200 {object} models.SafeUser
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateUserRole(c *fiber.Ctx) error {
	var body roleInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "admin.validation.input")
	}
	user, err := h.Store.UpdateUserRole(c.Context(), c.Params("id"), body.IsAdmin)
	if err != nil {
		return serviceErrorResponse(c, err, "admin.users.role")
	}
	h.logHistory(c, "Updated user role", fmt.Sprintf("%s (admin=%t)", user.Email, body.IsAdmin))
	return utils.SuccessResponse(c, user, fiber.StatusOK)
}

// UpdateUserStatus handles PUT /api/admin/users/:id/status
// @Summary Toggle a user's active status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param body body statusInput true "New status"
// @Success 200 {object} models.SafeUser
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/users/{id}/status [put]
func (h *AdminHandler) UpdateUserStatus(c *fiber.Ctx) error {
	var body statusInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "admin.validation.input")
	}
	user, err := h.Store.UpdateUserStatus(c.Context(), c.Params("id"), body.IsActive)
	if err != nil {
		return serviceErrorResponse(c, err, "admin.users.status")
	}
	h.logHistory(c, "Updated user status", fmt.Sprintf("%s (active=%t)", user.Email, body.IsActive))
	return utils.SuccessResponse(c, user, fiber.StatusOK)
}

// DeleteUser handles DELETE /api/admin/users/:id
// @Summary Delete a user
// @Description Removes the account and returns the refreshed sanitized roster
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} models.SafeUser
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	users, err := h.Store.DeleteUser(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err, "admin.users.delete")
	}
	h.logHistory(c, "Deleted user", id)
	return utils.SuccessResponse(c, users, fiber.StatusOK)
}

// ListAdminImprovements handles GET /api/admin/improvements
// @Summary List admin-authored improvements
// @Description Raw admin-authored catalog entries, newest first, without read-time normalization
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Improvement
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/improvements [get]
func (h *AdminHandler) ListAdminImprovements(c *fiber.Ctx) error {
	items, err := h.Store.AdminImprovements(c.Context())
	if err != nil {
		return serviceErrorResponse(c, err, "admin.improvements.list")
	}
	return utils.SuccessResponse(c, items, fiber.StatusOK)
}

// CreateImprovement handles POST /api/admin/improvements
// @Summary Add a catalog suggestion
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body improvementInput true "Suggestion"
// @Success 201 {object} models.Improvement
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/improvements [post]
func (h *AdminHandler) CreateImprovement(c *fiber.Ctx) error {
	var body improvementInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "admin.validation.input")
	}
	if err := validation.Struct(body); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "admin.validation.input")
	}
	imp, err := body.toModel()
	if err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "admin.validation.input")
	}
	saved, err := h.Store.SaveAdminImprovement(c.Context(), imp)
	if err != nil {
		return serviceErrorResponse(c, err, "admin.improvements.create")
	}
	h.logHistory(c, "Added suggestion", fmt.Sprintf("%s (%s)", saved.Title, saved.Room))
	return utils.SuccessResponse(c, saved, fiber.StatusCreated)
}

// UpdateImprovement handles PUT /api/admin/improvements/:id
// @Summary Update a catalog suggestion
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Improvement ID"
// @Param body body improvementInput true "Suggestion"
// @Success 200 {object} models.Improvement
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/improvements/{id} [put]
func (h *AdminHandler) UpdateImprovement(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid improvement id", fiber.StatusBadRequest, "admin.validation.input")
	}
	var body improvementInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "admin.validation.input")
	}
	if err := validation.Struct(body); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "admin.validation.input")
	}
	imp, err := body.toModel()
	if err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "admin.validation.input")
	}
	updated, err := h.Store.UpdateAdminImprovement(c.Context(), id, imp)
	if err != nil {
		return serviceErrorResponse(c, err, "admin.improvements.update")
	}
	h.logHistory(c, "Updated suggestion", fmt.Sprintf("%s (%s)", updated.Title, updated.Room))
	return utils.SuccessResponse(c, updated, fiber.StatusOK)
}

// DeleteImprovement handles DELETE /api/admin/improvements/:id
// @Summary Delete a catalog suggestion
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Improvement ID"
// @Success 200 {object} models.Improvement
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/improvements/{id} [delete]
func (h *AdminHandler) DeleteImprovement(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid improvement id", fiber.StatusBadRequest, "admin.validation.input")
	}
	deleted, err := h.Store.DeleteAdminImprovement(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err, "admin.improvements.delete")
	}
	h.logHistory(c, "Deleted suggestion", fmt.Sprintf("%s (%s)", deleted.Title, deleted.Room))
	return utils.SuccessResponse(c, deleted, fiber.StatusOK)
}

// ListHistory handles GET /api/admin/history
// @Summary List the admin audit history
// @Description Append-only log of admin catalog and roster mutations, newest first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.HistoryEntry
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/history [get]
func (h *AdminHandler) ListHistory(c *fiber.Ctx) error {
	entries, err := h.Store.ListHistory(c.Context())
	if err != nil {
		return serviceErrorResponse(c, err, "admin.history.list")
	}
	return utils.SuccessResponse(c, entries, fiber.StatusOK)
}
