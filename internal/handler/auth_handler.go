package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"internmatch/internal/model"
	"internmatch/internal/service"
)

// AuthHandler handles signup and login for students and admins.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by both signup endpoints.
type TokenResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	AuthToken string `json:"auth_token"`
}

// LoginUser is the profile subset returned on student login.
type LoginUser struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	School    string `json:"school"`
}

// LoginResponse represents a student login response.
type LoginResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	AuthToken string    `json:"auth_token"`
	User      LoginUser `json:"user"`
}

// LoginAdmin is the admin subset returned on admin login.
type LoginAdmin struct {
	Username   string `json:"username"`
	SchoolName string `json:"school_name"`
	Email      string `json:"email"`
}

// AdminLoginResponse represents an admin login response.
type AdminLoginResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	AuthToken string     `json:"auth_token"`
	Admin     LoginAdmin `json:"admin"`
}

// Signup godoc
// @Summary Create a student account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.SignupInput true "Student profile"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req service.SignupInput
	if err := c.Bind(&req); err != nil {
		return badRequest("Malformed request: invalid JSON or invalid data format")
	}

	token, err := h.authService.Signup(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, TokenResponse{
		Success:   true,
		Message:   "Signup completed successfully",
		AuthToken: token,
	})
}

// Login godoc
// @Summary Log in as a student
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("Malformed request: invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success:   true,
		Message:   "Login successful",
		AuthToken: token,
		User:      loginUser(user),
	})
}

// AdminSignup godoc
// @Summary Create an admin account
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.AdminSignupInput true "Admin account"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/signup [post]
func (h *AuthHandler) AdminSignup(c echo.Context) error {
	var req service.AdminSignupInput
	if err := c.Bind(&req); err != nil {
		return badRequest("Malformed request: invalid JSON")
	}

	token, err := h.authService.AdminSignup(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, TokenResponse{
		Success:   true,
		Message:   "Admin account created successfully",
		AuthToken: token,
	})
}

// AdminLogin godoc
// @Summary Log in as an admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AdminLoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("Malformed request: invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	token, admin, err := h.authService.AdminLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, AdminLoginResponse{
		Success:   true,
		Message:   "Admin login successful",
		AuthToken: token,
		Admin: LoginAdmin{
			Username:   admin.Username,
			SchoolName: admin.SchoolName,
			Email:      admin.Email,
		},
	})
}

func loginUser(u *model.User) LoginUser {
	return LoginUser{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		School:    u.School,
	}
}
