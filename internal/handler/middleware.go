package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"internmatch/internal/auth"
	"internmatch/internal/errors"
	"internmatch/internal/service"
)

const (
	identityContextKey = "identity"
	tokenContextKey    = "auth_token"
)

// Authenticate resolves "Authorization: Bearer <token>" to an identity stored on the context.
func Authenticate(authService service.AuthService) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(token string, c echo.Context) (bool, error) {
			identity, err := authService.ResolveToken(c.Request().Context(), token)
			if err != nil {
				return false, err
			}
			c.Set(identityContextKey, identity)
			c.Set(tokenContextKey, token)
			return true, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			var appErr *errors.Error
			if stderrors.As(err, &appErr) {
				return respondError(c, appErr)
			}
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Success: false,
				Error:   string(errors.KindUnauthorized),
				Details: "Missing or malformed Authorization header",
			})
		},
	})
}

// RequireAdmin rejects callers that are not admins.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !identityFrom(c).IsAdmin() {
			return respondError(c, errors.Unauthorized("Invalid or missing admin auth token"))
		}
		return next(c)
	}
}

// RequireStudent rejects admins on student-only routes.
func RequireStudent(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := identityFrom(c)
		if identity.IsAdmin() {
			return respondError(c, errors.Forbidden("This endpoint is only available to students"))
		}
		if !identity.IsStudent() {
			return respondError(c, errors.Unauthorized("Invalid or missing auth token"))
		}
		return next(c)
	}
}

func identityFrom(c echo.Context) *auth.Identity {
	identity, _ := c.Get(identityContextKey).(*auth.Identity)
	return identity
}

func tokenFrom(c echo.Context) string {
	token, _ := c.Get(tokenContextKey).(string)
	return token
}
