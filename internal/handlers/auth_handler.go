package handlers

import (
	"movie-catalog/internal/auth"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorBody
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.service.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to register user")
	}

	return utils.JSONResponse(c, fiber.StatusCreated, fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// Login godoc
// @Summary Authenticate and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login payload"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	token, user, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to log in")
	}

	return utils.JSONResponse(c, fiber.StatusOK, fiber.Map{
		"token":    token,
		"id":       user.ID,
		"username": user.Username,
	})
}

// Me godoc
// @Summary The authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorBody
// @Router /auth/me [get]
// @Security BearerAuth
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	return utils.JSONResponse(c, fiber.StatusOK, user)
}
