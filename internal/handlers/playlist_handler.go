package handlers

import (
	"strconv"

	"movie-catalog/internal/auth"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PlaylistHandler struct {
	service services.PlaylistService
	logger  *logrus.Logger
}

func NewPlaylistHandler(service services.PlaylistService, logger *logrus.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		service: service,
		logger:  logger,
	}
}

// ListPlaylists godoc
// @Summary Playlists owned by the caller
// @Tags playlists
// @Produce json
// @Success 200 {object} map[string]interface{} "results"
// @Router /playlists [get]
// @Security BearerAuth
func (h *PlaylistHandler) ListPlaylists(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	playlists, err := h.service.ListByUser(c.Context(), user.ID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch playlists")
	}
	return utils.ResultsResponse(c, fiber.StatusOK, playlists)
}

// CreatePlaylist godoc
// @Summary Create a playlist
// @Description Unknown movie ids in the initial list are dropped silently
// @Tags playlists
// @Accept json
// @Produce json
// @Param playlist body PlaylistRequest true "Playlist payload"
// @Success 201 {object} models.Playlist
// @Failure 400 {object} utils.ErrorBody
// @Router /playlists [post]
// @Security BearerAuth
func (h *PlaylistHandler) CreatePlaylist(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	var req PlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	playlist, err := h.service.Create(c.Context(), user.ID, req.Title, req.Description, req.CoverURL, req.Movies)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create playlist")
	}
	return utils.JSONResponse(c, fiber.StatusCreated, playlist)
}

// UpdatePlaylist godoc
// @Summary Update playlist metadata
// @Tags playlists
// @Accept json
// @Produce json
// @Param playlistId path int true "Playlist ID"
// @Param playlist body PlaylistRequest true "Fields to update"
// @Success 200 {object} models.Playlist
// @Failure 404 {object} utils.ErrorBody
// @Router /playlists/{playlistId} [put]
// @Security BearerAuth
func (h *PlaylistHandler) UpdatePlaylist(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	playlistID, err := playlistParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid playlist ID")
	}

	var req PlaylistUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	playlist, err := h.service.Update(c.Context(), user.ID, playlistID, services.PlaylistUpdate{
		Title:       req.Title,
		Description: req.Description,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update playlist")
	}
	return utils.JSONResponse(c, fiber.StatusOK, playlist)
}

// DeletePlaylist godoc
// @Summary Delete a playlist
// @Tags playlists
// @Produce json
// @Param playlistId path int true "Playlist ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorBody
// @Router /playlists/{playlistId} [delete]
// @Security BearerAuth
func (h *PlaylistHandler) DeletePlaylist(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	playlistID, err := playlistParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid playlist ID")
	}

	if err := h.service.Delete(c.Context(), user.ID, playlistID); err != nil {
		return respondError(c, h.logger, err, "Failed to delete playlist")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Playlist deleted successfully")
}

// GetPlaylistMovies godoc
// @Summary Movies in a playlist
// @Tags playlists
// @Produce json
// @Param playlistId path int true "Playlist ID"
// @Success 200 {object} map[string]interface{} "results"
// @Failure 404 {object} utils.ErrorBody
// @Router /playlists/{playlistId}/movies [get]
// @Security BearerAuth
func (h *PlaylistHandler) GetPlaylistMovies(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	playlistID, err := playlistParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid playlist ID")
	}

	movies, err := h.service.Movies(c.Context(), user.ID, playlistID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch playlist movies")
	}
	return utils.ResultsResponse(c, fiber.StatusOK, movies)
}

// AddPlaylistMovies godoc
// @Summary Add movies to a playlist
// @Description Unknown movie ids are dropped silently
// @Tags playlists
// @Accept json
// @Produce json
// @Param playlistId path int true "Playlist ID"
// @Param movies body PlaylistMoviesRequest true "Movie ids"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorBody
// @Router /playlists/{playlistId}/movies [post]
// @Security BearerAuth
func (h *PlaylistHandler) AddPlaylistMovies(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	playlistID, err := playlistParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid playlist ID")
	}

	var req PlaylistMoviesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.AddMovies(c.Context(), user.ID, playlistID, req.Movies); err != nil {
		return respondError(c, h.logger, err, "Failed to add playlist movies")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Movies added successfully")
}

// RemovePlaylistMovies godoc
// @Summary Remove movies from a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Param playlistId path int true "Playlist ID"
// @Param movies body PlaylistMoviesRequest true "Movie ids"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorBody
// @Router /playlists/{playlistId}/movies [delete]
// @Security BearerAuth
func (h *PlaylistHandler) RemovePlaylistMovies(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	playlistID, err := playlistParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid playlist ID")
	}

	var req PlaylistMoviesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.RemoveMovies(c.Context(), user.ID, playlistID, req.Movies); err != nil {
		return respondError(c, h.logger, err, "Failed to remove playlist movies")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Movies removed successfully")
}

func playlistParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("playlistId"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
