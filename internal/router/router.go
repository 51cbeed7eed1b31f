package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	"internmatch/internal/config"
	"internmatch/internal/errors"
	"internmatch/internal/handler"
	"internmatch/internal/service"
	"internmatch/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	internshipHandler *handler.InternshipHandler,
	trackerHandler *handler.TrackerHandler,
	recommendationHandler *handler.RecommendationHandler,
) {
	e.HTTPErrorHandler = ErrorHandler
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= http.StatusInternalServerError {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
	}))

	e.Validator = &CustomValidator{validator: validation.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authenticated := handler.Authenticate(authService)

	api := e.Group("/api")

	// Public routes
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.POST("/admin/signup", authHandler.AdminSignup)
	api.POST("/admin/login", authHandler.AdminLogin)
	api.GET("/internships", internshipHandler.ListInternships)

	// Any valid token
	api.GET("/profile", profileHandler.GetProfile, authenticated)
	api.PATCH("/profile", profileHandler.UpdateProfile, authenticated)

	// Admin only
	api.POST("/internships", internshipHandler.CreateInternship, authenticated, handler.RequireAdmin)

	// Students only. Middleware is attached per route so unknown /api paths still 404.
	api.GET("/recommendations", recommendationHandler.GetRecommendations, authenticated, handler.RequireStudent)
	api.GET("/tracker", trackerHandler.ListTrackers, authenticated, handler.RequireStudent)
	api.POST("/tracker", trackerHandler.CreateTracker, authenticated, handler.RequireStudent)
	api.PATCH("/tracker", trackerHandler.UpdateTracker, authenticated, handler.RequireStudent)
}

// ErrorHandler renders every error as the JSON error envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var body errors.ErrorResponse

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		switch msg := he.Message.(type) {
		case errors.ErrorResponse:
			body = msg
		case string:
			body = errors.ErrorResponse{Error: string(errors.KindForStatus(status)), Details: msg}
		default:
			body = errors.ErrorResponse{Error: string(errors.KindForStatus(status)), Details: http.StatusText(status)}
		}
	} else {
		httpErr := errors.MapErrorToHTTP(err)
		status = httpErr.StatusCode
		body = httpErr.ToErrorResponse()
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}
	}
	body.Success = false

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		log.Error().Err(writeErr).Msg("write error response")
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return validation.Translate(cv.validator.Struct(i))
}
