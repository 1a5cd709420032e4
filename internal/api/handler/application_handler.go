package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// ApplicationHandler handles applying to jobs and reviewing applications.
type ApplicationHandler struct {
	appService ports.ApplicationService
}

func NewApplicationHandler(appService ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

type applyRequest struct {
	JobID       string `json:"jobId" validate:"required"`
	CoverLetter string `json:"coverLetter" validate:"required"`
}

type applyResponse struct {
	Message     string              `json:"message"`
	Application *domain.Application `json:"application"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type updateStatusResponse struct {
	Message     string              `json:"message"`
	Application *domain.Application `json:"application"`
}

// Apply handles POST /api/applications/apply (freelancers only).
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyRequest  true  "Application details"
// @Success      201   {object}  applyResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/applications/apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	var req applyRequest
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

	app, err := h.appService.Apply(c.Request().Context(), ports.ApplyInput{
		JobID:        req.JobID,
		FreelancerID: claims.UserID,
		CoverLetter:  req.CoverLetter,
	})
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, applyResponse{
		Message:     "application submitted successfully",
		Application: app,
	})
}

// ListForJob handles GET /api/applications/job/:jobId — the review list for
// a job's owner. An unknown job is a 404; a job with no applications is an
// empty 200.
//
// @Summary      List applications for a job
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path      string  true  "Job id"
// @Success      200    {array}   ports.JobApplication
// @Failure      404    {object}  messageResponse
// @Router       /api/applications/job/{jobId} [get]
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	apps, err := h.appService.ListForJob(c.Request().Context(), c.Param("jobId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// My handles GET /api/applications/my — the caller's own applications.
//
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.OwnApplication
// @Failure      401  {object}  messageResponse
// @Router       /api/applications/my [get]
func (h *ApplicationHandler) My(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	apps, err := h.appService.ListForApplicant(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// UpdateStatus handles PUT /api/applications/:id — accept or reject an
// application (job owner only).
//
// @Summary      Update an application's status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Application id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  updateStatusResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/applications/{id} [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
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

	app, err := h.appService.UpdateStatus(c.Request().Context(), claims.UserID, c.Param("id"), domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.ApplicationStatusUpdatesTotal.WithLabelValues(string(app.Status)).Inc()
	return c.JSON(http.StatusOK, updateStatusResponse{
		Message:     "application " + string(app.Status) + " successfully",
		Application: app,
	})
}
