package handlers

import (
	"strconv"

	"movie-catalog/internal/auth"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewCatalogHandler(service services.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// GetTopRated godoc
// @Summary Top-rated movies
// @Description Fetch the provider's top-rated movies, cache them locally, and return the persisted entities
// @Tags movies
// @Produce json
// @Success 200 {object} map[string]interface{} "results"
// @Failure 500 {object} utils.ErrorBody
// @Router /movies/top-rated [get]
func (h *CatalogHandler) GetTopRated(c *fiber.Ctx) error {
	movies, err := h.service.TopRated(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch top-rated movies")
	}
	return utils.ResultsResponse(c, fiber.StatusOK, movies)
}

// GetPopular godoc
// @Summary Popular movies
// @Description Provider passthrough of the current popular movies, not persisted
// @Tags movies
// @Produce json
// @Success 200 {object} map[string]interface{} "results"
// @Failure 500 {object} utils.ErrorBody
// @Router /movies/popular [get]
func (h *CatalogHandler) GetPopular(c *fiber.Ctx) error {
	movies, err := h.service.Popular(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch popular movies")
	}
	return utils.ResultsResponse(c, fiber.StatusOK, movies)
}

// GetNowPlaying godoc
// @Summary Recently released movies
// @Description Provider now-playing results filtered to released titles, newest first
// @Tags movies
// @Produce json
// @Success 200 {object} map[string]interface{} "results"
// @Failure 500 {object} utils.ErrorBody
// @Router /movies/now-playing [get]
func (h *CatalogHandler) GetNowPlaying(c *fiber.Ctx) error {
	movies, err := h.service.NowPlaying(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch now playing movies")
	}
	return utils.ResultsResponse(c, fiber.StatusOK, movies)
}

// GetGenreDiscovery godoc
// @Summary Genre discovery shelves
// @Description Anonymous callers get five random genres; authenticated callers get one genre they have not liked
// @Tags movies
// @Produce json
// @Success 200 {object} map[string]interface{} "results"
// @Failure 500 {object} utils.ErrorBody
// @Router /movies/genres [get]
func (h *CatalogHandler) GetGenreDiscovery(c *fiber.Ctx) error {
	var userID *uint
	if user := auth.CurrentUser(c); user != nil {
		userID = &user.ID
	}

	shelves, err := h.service.GenreDiscovery(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch genres")
	}
	return utils.ResultsResponse(c, fiber.StatusOK, shelves)
}

// GetMovieDetail godoc
// @Summary Movie detail
// @Description Serve from the local cache, or fetch, persist and merge the provider payload on a miss
// @Tags movies
// @Produce json
// @Param movieId path int true "Movie ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /movies/{movieId} [get]
// @Security BearerAuth
func (h *CatalogHandler) GetMovieDetail(c *fiber.Ctx) error {
	movieID, err := strconv.ParseInt(c.Params("movieId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid movie id")
	}

	detail, err := h.service.GetMovieDetail(c.Context(), movieID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch movie details")
	}
	return utils.JSONResponse(c, fiber.StatusOK, detail)
}

// GetActorDetail godoc
// @Summary Actor detail with filmography
// @Tags people
// @Produce json
// @Param actorId path int true "Actor ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorBody
// @Router /actors/{actorId} [get]
func (h *CatalogHandler) GetActorDetail(c *fiber.Ctx) error {
	actorID, err := strconv.ParseInt(c.Params("actorId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid actor id")
	}

	detail, err := h.service.ActorDetail(c.Context(), actorID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch actor details")
	}
	return utils.JSONResponse(c, fiber.StatusOK, detail)
}

// GetDirectorDetail godoc
// @Summary Director detail with filmography
// @Tags people
// @Produce json
// @Param directorId path int true "Director ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorBody
// @Router /directors/{directorId} [get]
func (h *CatalogHandler) GetDirectorDetail(c *fiber.Ctx) error {
	directorID, err := strconv.ParseInt(c.Params("directorId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid director id")
	}

	detail, err := h.service.DirectorDetail(c.Context(), directorID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch director details")
	}
	return utils.JSONResponse(c, fiber.StatusOK, detail)
}
