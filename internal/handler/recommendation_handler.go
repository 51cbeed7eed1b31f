package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"internmatch/internal/errors"
	"internmatch/internal/service"
)

// RecommendationHandler serves ranked internship suggestions.
type RecommendationHandler struct {
	recommendationService service.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// RecommendationResponse is the successful recommendation payload.
type RecommendationResponse struct {
	Success bool `json:"success"`
	service.Recommendation
}

// GetRecommendations godoc
// @Summary Rank internships for the calling student
// @Description Pipeline failures (empty catalog, ranking model errors) are reported as 400.
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RecommendationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /recommendations [get]
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	rec, err := h.recommendationService.Recommend(c.Request().Context(), identityFrom(c))
	if err != nil {
		switch errors.KindOf(err) {
		case errors.KindNotFound, errors.KindUpstream:
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(http.StatusBadRequest, httpErr.ToErrorResponse())
		default:
			return respondError(c, err)
		}
	}

	return c.JSON(http.StatusOK, RecommendationResponse{Success: true, Recommendation: *rec})
}
