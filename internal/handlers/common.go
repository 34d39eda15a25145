package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/grihom/grihom-api/internal/middleware"
	"github.com/grihom/grihom-api/internal/models"
	"github.com/grihom/grihom-api/internal/services"
	"github.com/grihom/grihom-api/internal/utils"
)

// parseCatalogFilters extracts the optional room/cost/effort equality filters
// from query parameters. "All" is the client's no-filter sentinel.
func parseCatalogFilters(c *fiber.Ctx) models.CatalogFilters {
	filters := models.CatalogFilters{
		Room:   c.Query("room"),
		Cost:   c.Query("cost"),
		Effort: c.Query("effort"),
	}
	if filters.Room == "All" {
		filters.Room = ""
	}
	if filters.Cost == "All" {
		filters.Cost = ""
	}
	if filters.Effort == "All" {
		filters.Effort = ""
	}
	return filters
}

// currentUser returns the authenticated user stashed by the auth middleware.
func currentUser(c *fiber.Ctx) models.User {
	if user, ok := c.Locals(middleware.LocalsUser).(models.User); ok {
		return user
	}
	return models.User{}
}

// serviceErrorResponse maps record-store failures onto the JSON error
// envelope. Every failure carries its user-facing message; nothing is retried.
func serviceErrorResponse(c *fiber.Ctx, err error, errorType string) error {
	switch {
	case errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrImprovementNotFound),
		errors.Is(err, services.ErrReportNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrAccountInactive):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, errorType)
	case errors.Is(err, services.ErrInvalidPassword):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, errorType)
	case errors.Is(err, services.ErrEmailExists):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, errorType)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}
