package handlers

import (
	"errors"

	"movie-catalog/internal/repository"
	"movie-catalog/internal/services"
	"movie-catalog/internal/tmdb"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps the service error taxonomy onto HTTP statuses. The
// fallback message is what a caller sees for unclassified failures, so
// internal error chains stay out of responses.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrDuplicate):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "already exists")
	case errors.Is(err, repository.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, tmdb.ErrUpstream):
		logger.WithError(err).Error("Upstream provider failure")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, fallback)
	default:
		logger.WithError(err).Error("Unhandled request failure")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, fallback)
	}
}
