package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"internmatch/internal/errors"
	"internmatch/internal/service"
)

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	authService service.AuthService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(authService service.AuthService) *ProfileHandler {
	return &ProfileHandler{authService: authService}
}

// AdminProfile is what GET /profile returns for an admin token.
type AdminProfile struct {
	Username   string `json:"username"`
	SchoolName string `json:"school_name"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"is_admin"`
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Description Students get their full profile; admins get their account with is_admin set.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identity := identityFrom(c)
	switch {
	case identity.IsStudent():
		return c.JSON(http.StatusOK, echo.Map{"success": true, "user": identity.Student})
	case identity.IsAdmin():
		return c.JSON(http.StatusOK, echo.Map{"success": true, "user": AdminProfile{
			Username:   identity.Admin.Username,
			SchoolName: identity.Admin.SchoolName,
			Email:      identity.Admin.Email,
			IsAdmin:    true,
		}})
	default:
		return respondError(c, errors.Unauthorized("Invalid or missing auth token"))
	}
}

// UpdateProfile godoc
// @Summary Update the caller's student profile
// @Description Only first_name, last_name, school, email_personal, email_school, age, grade, extracurriculars, interests, gpa and courses are applied.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile [patch]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	fields := make(map[string]interface{})
	if err := c.Bind(&fields); err != nil {
		return badRequest("Malformed request: expected a JSON object")
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), tokenFrom(c), fields)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}
