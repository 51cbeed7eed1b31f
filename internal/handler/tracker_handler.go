package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"internmatch/internal/model"
	"internmatch/internal/service"
)

// TrackerHandler handles the application tracker.
type TrackerHandler struct {
	trackerService service.TrackerService
}

// NewTrackerHandler creates a new tracker handler.
func NewTrackerHandler(trackerService service.TrackerService) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService}
}

// TrackerListResponse lists the caller's trackers.
type TrackerListResponse struct {
	Success  bool            `json:"success"`
	Trackers []model.Tracker `json:"trackers"`
}

// TrackerCreatedResponse is returned after creating a tracker.
type TrackerCreatedResponse struct {
	Success bool           `json:"success"`
	ID      string         `json:"id"`
	Tracker *model.Tracker `json:"tracker"`
}

// TrackerResponse wraps a single tracker.
type TrackerResponse struct {
	Success bool           `json:"success"`
	Tracker *model.Tracker `json:"tracker"`
}

// ListTrackers godoc
// @Summary List the caller's trackers
// @Tags tracker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TrackerListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /tracker [get]
func (h *TrackerHandler) ListTrackers(c echo.Context) error {
	trackers, err := h.trackerService.List(c.Request().Context(), identityFrom(c).Username())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, TrackerListResponse{Success: true, Trackers: trackers})
}

// CreateTracker godoc
// @Summary Start tracking an internship
// @Tags tracker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateTrackerInput true "Tracker"
// @Success 201 {object} TrackerCreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /tracker [post]
func (h *TrackerHandler) CreateTracker(c echo.Context) error {
	var req service.CreateTrackerInput
	if err := c.Bind(&req); err != nil {
		return badRequest("Malformed request: invalid JSON")
	}

	tracker, err := h.trackerService.Create(c.Request().Context(), identityFrom(c).Username(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, TrackerCreatedResponse{
		Success: true,
		ID:      tracker.ID.String(),
		Tracker: tracker,
	})
}

// UpdateTracker godoc
// @Summary Update status and/or notes of a tracker
// @Tags tracker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.UpdateTrackerInput true "Changes"
// @Success 200 {object} TrackerResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tracker [patch]
func (h *TrackerHandler) UpdateTracker(c echo.Context) error {
	var req service.UpdateTrackerInput
	if err := c.Bind(&req); err != nil {
		return badRequest("Malformed request: invalid JSON")
	}

	tracker, err := h.trackerService.Update(c.Request().Context(), identityFrom(c).Username(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, TrackerResponse{Success: true, Tracker: tracker})
}
