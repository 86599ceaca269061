package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace-api/internal/api/metrics"
	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// JobHandler exposes job posting endpoints.
type JobHandler struct {
	jobs ports.JobService
}

func NewJobHandler(jobs ports.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type createJobRequest struct {
	Title       string   `json:"title" validate:"required,max=140"`
	Description string   `json:"description" validate:"required,max=5000"`
	ContentType string   `json:"content_type" validate:"required,oneof=video photo testimonial unboxing"`
	BudgetUSD   float64  `json:"budget_usd" validate:"required,gt=0"`
	Niches      []string `json:"niches" validate:"omitempty,max=10,dive,max=40"`
	Draft       bool     `json:"draft"`
}

type changeJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open closed"`
}

// Create godoc
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      createJobRequest  true  "Job payload"
// @Success      201      {object}  domain.Job
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Router       /api/v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.jobs.Create(c.Request().Context(), principal, ports.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
		BudgetUSD:   req.BudgetUSD,
		Niches:      req.Niches,
		Draft:       req.Draft,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(job.ContentType).Inc()

	return c.JSON(http.StatusCreated, job)
}

// Get godoc
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.jobs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// List godoc
// @Summary      Browse job postings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        business_id   query     string  false  "Filter by posting business"
// @Param        status        query     string  false  "Filter by status"
// @Param        content_type  query     string  false  "Filter by content type"
// @Param        niche         query     string  false  "Filter by niche"
// @Param        page          query     int     false  "Page number (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Success      200           {object}  ports.ListJobsResult
// @Router       /api/v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	filter := ports.JobFilter{
		BusinessID:  c.QueryParam("business_id"),
		Status:      c.QueryParam("status"),
		ContentType: c.QueryParam("content_type"),
		Niche:       c.QueryParam("niche"),
		Page:        queryInt(c, "page"),
		Limit:       queryInt(c, "limit"),
	}

	result, err := h.jobs.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// ChangeStatus godoc
// @Summary      Change a job's status
// @Description  Allowed transitions: draft→open, draft→closed, open→closed.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                  true  "Job id"
// @Param        request  body      changeJobStatusRequest  true  "Target status"
// @Success      200      {object}  domain.Job
// @Failure      403      {object}  errorResponse
// @Failure      422      {object}  errorResponse
// @Router       /api/v1/jobs/{id}/status [patch]
func (h *JobHandler) ChangeStatus(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req changeJobStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.jobs.ChangeStatus(c.Request().Context(), principal,
		c.Param("id"), domain.JobStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary      Delete a job posting
// @Tags         jobs
// @Security     BearerAuth
// @Param        id  path  string  true  "Job id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	if err := h.jobs.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
