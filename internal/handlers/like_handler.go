package handlers

import (
	"movie-catalog/internal/auth"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LikeHandler struct {
	service services.LikeService
	logger  *logrus.Logger
}

func NewLikeHandler(service services.LikeService, logger *logrus.Logger) *LikeHandler {
	return &LikeHandler{
		service: service,
		logger:  logger,
	}
}

// GetLikedMovies godoc
// @Summary Movies the caller has liked
// @Tags likes
// @Produce json
// @Success 200 {object} map[string]interface{} "results"
// @Router /users/me/movies [get]
// @Security BearerAuth
func (h *LikeHandler) GetLikedMovies(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	movies, err := h.service.LikedMovies(c.Context(), user.ID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch liked movies")
	}
	return utils.ResultsResponse(c, fiber.StatusOK, movies)
}

// GetLikedActorSuggestions godoc
// @Summary Movie suggestions from a random liked actor
// @Tags likes
// @Produce json
// @Success 200 {object} services.Suggestions
// @Router /users/me/actors [get]
// @Security BearerAuth
func (h *LikeHandler) GetLikedActorSuggestions(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	suggestions, err := h.service.LikedActorSuggestions(c.Context(), user.ID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch liked actor movies")
	}
	return utils.JSONResponse(c, fiber.StatusOK, suggestions)
}

// GetLikedDirectorSuggestions godoc
// @Summary Movie suggestions from a random liked director
// @Tags likes
// @Produce json
// @Success 200 {object} services.Suggestions
// @Router /users/me/directors [get]
// @Security BearerAuth
func (h *LikeHandler) GetLikedDirectorSuggestions(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	suggestions, err := h.service.LikedDirectorSuggestions(c.Context(), user.ID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch liked director movies")
	}
	return utils.JSONResponse(c, fiber.StatusOK, suggestions)
}

// GetLikedGenreSuggestions godoc
// @Summary Movie suggestions from a random liked genre
// @Tags likes
// @Produce json
// @Success 200 {object} map[string]interface{} "results"
// @Router /users/me/genres [get]
// @Security BearerAuth
func (h *LikeHandler) GetLikedGenreSuggestions(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	shelves, err := h.service.LikedGenreSuggestions(c.Context(), user.ID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch liked genre movies")
	}
	return utils.ResultsResponse(c, fiber.StatusOK, shelves)
}

// LikeMovie godoc
// @Summary Like a movie
// @Description Creates the movie row when unknown; liking twice is a conflict
// @Tags likes
// @Accept json
// @Produce json
// @Param like body services.MovieLike true "Movie like payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.ErrorBody
// @Router /likes/movies [post]
// @Security BearerAuth
func (h *LikeHandler) LikeMovie(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	var like services.MovieLike
	if err := c.BodyParser(&like); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.LikeMovie(c.Context(), user.ID, like); err != nil {
		return respondError(c, h.logger, err, "Failed to like movie")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Movie liked successfully")
}

// UnlikeMovie godoc
// @Summary Remove a movie like
// @Tags likes
// @Accept json
// @Produce json
// @Param like body services.MovieLike true "Movie id payload"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorBody
// @Router /likes/movies [delete]
// @Security BearerAuth
func (h *LikeHandler) UnlikeMovie(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	var like services.MovieLike
	if err := c.BodyParser(&like); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.UnlikeMovie(c.Context(), user.ID, like.MovieID); err != nil {
		return respondError(c, h.logger, err, "Failed to unlike movie")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Movie unliked successfully")
}

func (h *LikeHandler) LikeActor(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	var like services.PersonLike
	if err := c.BodyParser(&like); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.LikeActor(c.Context(), user.ID, like); err != nil {
		return respondError(c, h.logger, err, "Failed to like actor")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Actor liked successfully")
}

func (h *LikeHandler) UnlikeActor(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	var like services.PersonLike
	if err := c.BodyParser(&like); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.UnlikeActor(c.Context(), user.ID, like.ID); err != nil {
		return respondError(c, h.logger, err, "Failed to unlike actor")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Actor unliked successfully")
}

func (h *LikeHandler) LikeDirector(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	var like services.PersonLike
	if err := c.BodyParser(&like); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.LikeDirector(c.Context(), user.ID, like); err != nil {
		return respondError(c, h.logger, err, "Failed to like director")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Director liked successfully")
}

func (h *LikeHandler) UnlikeDirector(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	var like services.PersonLike
	if err := c.BodyParser(&like); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.UnlikeDirector(c.Context(), user.ID, like.ID); err != nil {
		return respondError(c, h.logger, err, "Failed to unlike director")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Director unliked successfully")
}

// LikeGenres accepts a batch; entries already liked are skipped silently.
func (h *LikeHandler) LikeGenres(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	var req GenreLikesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	likes := make([]services.GenreLike, 0, len(req.Genres))
	for _, g := range req.Genres {
		likes = append(likes, services.GenreLike{GenreID: g.GenreID, Name: g.Name})
	}

	if err := h.service.LikeGenres(c.Context(), user.ID, likes); err != nil {
		return respondError(c, h.logger, err, "Failed to like genres")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Genres liked successfully")
}

func (h *LikeHandler) UnlikeGenre(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	var req GenreUnlikeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.UnlikeGenre(c.Context(), user.ID, req.GenreID); err != nil {
		return respondError(c, h.logger, err, "Failed to unlike genre")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Genre unliked successfully")
}
