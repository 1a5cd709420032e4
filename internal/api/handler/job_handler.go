package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// JobHandler handles job posting, listing and search.
type JobHandler struct {
	jobService ports.JobService
}

func NewJobHandler(jobService ports.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

type createJobRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
}

type createJobResponse struct {
	Message string      `json:"message"`
	Job     interface{} `json:"job"`
}

// List handles GET /api/jobs — all jobs, newest first.
//
// @Summary      List all jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {array}   domain.Job
// @Failure      500  {object}  messageResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.jobService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Create handles POST /api/jobs — post a new job (clients only).
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  createJobResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, err := identity(c)
	if err != nil {
		return err
	}

	job, err := h.jobService.Create(c.Request().Context(), ports.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		ClientID:    claims.UserID,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createJobResponse{
		Message: "job posted successfully",
		Job:     job,
	})
}

// MyJobs handles GET /api/jobs/my-jobs — jobs owned by the caller.
//
// @Summary      List the caller's own jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Job
// @Failure      401  {object}  messageResponse
// @Router       /api/jobs/my-jobs [get]
func (h *JobHandler) MyJobs(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	jobs, err := h.jobService.ListByOwner(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Search handles GET /api/jobs/search — filtered job search. Absent query
// parameters add no constraint; an empty result set is a 200.
//
// @Summary      Search jobs by title and budget range
// @Tags         jobs
// @Produce      json
// @Param        title      query     string  false  "Case-insensitive title substring"
// @Param        minBudget  query     number  false  "Inclusive lower budget bound"
// @Param        maxBudget  query     number  false  "Inclusive upper budget bound"
// @Success      200  {array}   domain.Job
// @Failure      400  {object}  messageResponse
// @Router       /api/jobs/search [get]
func (h *JobHandler) Search(c echo.Context) error {
	filter := ports.JobFilter{Title: c.QueryParam("title")}

	var err error
	if filter.MinBudget, err = budgetParam(c, "minBudget"); err != nil {
		return err
	}
	if filter.MaxBudget, err = budgetParam(c, "maxBudget"); err != nil {
		return err
	}

	jobs, err := h.jobService.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

func budgetParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a number")
	}
	return &v, nil
}
