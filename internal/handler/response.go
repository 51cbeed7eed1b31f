package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"internmatch/internal/errors"
)

// respondError converts a domain error into the JSON error envelope.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request failed")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(details string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Success: false,
		Error:   string(errors.KindValidation),
		Details: details,
	})
}
