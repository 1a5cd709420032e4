package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// UserHandler exposes the freelancer directory and profile updates.
type UserHandler struct {
	profileService ports.ProfileService
}

func NewUserHandler(profileService ports.ProfileService) *UserHandler {
	return &UserHandler{profileService: profileService}
}

type updateProfileRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Skills   []string `json:"skills"`
	Bio      string   `json:"bio"`
}

type updateProfileResponse struct {
	Message    string      `json:"message"`
	Freelancer interface{} `json:"freelancer"`
}

// List handles GET /api/freelancers.
//
// @Summary      List all freelancers
// @Tags         freelancers
// @Produce      json
// @Success      200  {array}  domain.PublicProfile
// @Router       /api/freelancers [get]
func (h *UserHandler) List(c echo.Context) error {
	profiles, err := h.profileService.ListFreelancers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// Get handles GET /api/freelancers/:id.
//
// @Summary      Get one freelancer's public profile
// @Tags         freelancers
// @Produce      json
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  domain.PublicProfile
// @Failure      404  {object}  messageResponse
// @Router       /api/freelancers/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	profile, err := h.profileService.GetFreelancer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Search handles GET /api/freelancers/search?q= — matches username or skills.
//
// @Summary      Search freelancers by name or skill
// @Tags         freelancers
// @Produce      json
// @Param        q  query     string  true  "Search term"
// @Success      200  {array}   domain.PublicProfile
// @Failure      400  {object}  messageResponse
// @Router       /api/freelancers/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	profiles, err := h.profileService.SearchFreelancers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// Update handles PUT /api/freelancers/:id — self-service profile update.
// Absent fields keep their stored value.
//
// @Summary      Update own profile
// @Tags         freelancers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  updateProfileResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/freelancers/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	claims, err := identity(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.UpdateProfile(c.Request().Context(), claims.UserID, c.Param("id"), ports.ProfilePatch{
		Username: req.Username,
		Email:    req.Email,
		Skills:   req.Skills,
		Bio:      req.Bio,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateProfileResponse{
		Message:    "profile updated successfully",
		Freelancer: profile,
	})
}
