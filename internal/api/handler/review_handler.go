package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace-api/internal/api/metrics"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// ReviewHandler exposes review endpoints.
type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	CreatorID string `json:"creator_id" validate:"required"`
	JobID     string `json:"job_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"omitempty,max=2000"`
}

// Create godoc
// @Summary      Review a creator
// @Description  One review per business+creator+job; the creator's aggregate rating is refreshed.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      createReviewRequest  true  "Review payload"
// @Success      201      {object}  domain.Review
// @Failure      403      {object}  errorResponse
// @Failure      409      {object}  errorResponse
// @Failure      422      {object}  errorResponse
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.reviews.Create(c.Request().Context(), principal, ports.CreateReviewInput{
		CreatorID: req.CreatorID,
		JobID:     req.JobID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsSubmittedTotal.WithLabelValues(strconv.Itoa(review.Rating)).Inc()

	return c.JSON(http.StatusCreated, review)
}

// ListForCreator godoc
// @Summary      List a creator's reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Creator profile id"
// @Param        page   query     int     false  "Page number (1-based)"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Success      200    {object}  ports.ListReviewsResult
// @Router       /api/v1/creators/{id}/reviews [get]
func (h *ReviewHandler) ListForCreator(c echo.Context) error {
	result, err := h.reviews.ListForCreator(c.Request().Context(),
		c.Param("id"), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Delete godoc
// @Summary      Delete a review
// @Tags         reviews
// @Security     BearerAuth
// @Param        id  path  string  true  "Review id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	if err := h.reviews.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
