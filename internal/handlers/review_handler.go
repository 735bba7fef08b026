package handlers

import (
	"strconv"

	"movie-catalog/internal/auth"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// ListReviews godoc
// @Summary Reviews for one movie
// @Tags reviews
// @Produce json
// @Param movieId path int true "Movie ID"
// @Success 200 {object} map[string]interface{} "results"
// @Failure 400 {object} utils.ErrorBody
// @Router /movies/{movieId}/reviews [get]
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	movieID, err := strconv.ParseInt(c.Params("movieId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid movie ID")
	}

	reviews, err := h.service.ListByMovie(c.Context(), movieID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to fetch reviews")
	}
	return utils.ResultsResponse(c, fiber.StatusOK, reviews)
}

// CreateReview godoc
// @Summary Create a review for a movie
// @Description Creates the movie row on the fly when it is not cached yet
// @Tags reviews
// @Accept json
// @Produce json
// @Param movieId path int true "Movie ID"
// @Param review body ReviewRequest true "Review payload"
// @Success 201 {object} models.Review
// @Failure 400 {object} utils.ErrorBody
// @Router /movies/{movieId}/reviews [post]
// @Security BearerAuth
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	movieID, err := strconv.ParseInt(c.Params("movieId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid movie ID")
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	review, err := h.service.Create(c.Context(), user.ID, movieID, req.Content, req.PosterPath)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create review")
	}
	return utils.JSONResponse(c, fiber.StatusCreated, review)
}

// UpdateReview godoc
// @Summary Update a review's content
// @Tags reviews
// @Accept json
// @Produce json
// @Param movieId path int true "Movie ID"
// @Param reviewId path int true "Review ID"
// @Param review body ReviewRequest true "Review payload"
// @Success 200 {object} models.Review
// @Failure 404 {object} utils.ErrorBody
// @Router /movies/{movieId}/reviews/{reviewId} [put]
// @Security BearerAuth
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	movieID, reviewID, err := reviewParams(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	review, err := h.service.Update(c.Context(), user.ID, movieID, reviewID, req.Content)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update review")
	}
	return utils.JSONResponse(c, fiber.StatusOK, review)
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Param movieId path int true "Movie ID"
// @Param reviewId path int true "Review ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorBody
// @Router /movies/{movieId}/reviews/{reviewId} [delete]
// @Security BearerAuth
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	movieID, reviewID, err := reviewParams(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), user.ID, movieID, reviewID); err != nil {
		return respondError(c, h.logger, err, "Failed to delete review")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Review deleted successfully")
}

// LikeReview godoc
// @Summary Like a review
// @Description Idempotent, liking an already liked review is a no-op
// @Tags reviews
// @Produce json
// @Param movieId path int true "Movie ID"
// @Param reviewId path int true "Review ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorBody
// @Router /movies/{movieId}/reviews/{reviewId}/like [post]
// @Security BearerAuth
func (h *ReviewHandler) LikeReview(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	movieID, reviewID, err := reviewParams(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Like(c.Context(), user.ID, movieID, reviewID); err != nil {
		return respondError(c, h.logger, err, "Failed to like review")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Review liked successfully")
}

func reviewParams(c *fiber.Ctx) (int64, uint, error) {
	movieID, err := strconv.ParseInt(c.Params("movieId"), 10, 64)
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid movie ID")
	}
	reviewID, err := strconv.ParseUint(c.Params("reviewId"), 10, 32)
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid review ID")
	}
	return movieID, uint(reviewID), nil
}
