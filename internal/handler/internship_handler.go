package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"internmatch/internal/model"
	"internmatch/internal/service"
)

// InternshipHandler handles the catalog endpoints.
type InternshipHandler struct {
	catalogService service.CatalogService
}

// NewInternshipHandler creates a new internship handler.
func NewInternshipHandler(catalogService service.CatalogService) *InternshipHandler {
	return &InternshipHandler{catalogService: catalogService}
}

// InternshipListResponse wraps a catalog listing.
type InternshipListResponse struct {
	Success     bool               `json:"success"`
	Internships []model.Internship `json:"internships"`
}

// InternshipResponse wraps a single internship.
type InternshipResponse struct {
	Success    bool              `json:"success"`
	Internship *model.Internship `json:"internship"`
}

// ListInternships godoc
// @Summary List, search or filter internships
// @Description q takes precedence over category when both are given.
// @Tags internships
// @Produce json
// @Param q query string false "Keyword matched against name, organization and description"
// @Param category query string false "Exact category"
// @Success 200 {object} InternshipListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /internships [get]
func (h *InternshipHandler) ListInternships(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		internships []model.Internship
		err         error
	)
	switch q, category := c.QueryParam("q"), c.QueryParam("category"); {
	case q != "":
		internships, err = h.catalogService.Search(ctx, q)
	case category != "":
		internships, err = h.catalogService.FilterByCategory(ctx, category)
	default:
		internships, err = h.catalogService.ListAll(ctx)
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, InternshipListResponse{Success: true, Internships: internships})
}

// CreateInternship godoc
// @Summary Publish an internship
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateInternshipInput true "Internship"
// @Success 201 {object} InternshipResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /internships [post]
func (h *InternshipHandler) CreateInternship(c echo.Context) error {
	var req service.CreateInternshipInput
	if err := c.Bind(&req); err != nil {
		return badRequest("Malformed request: invalid JSON")
	}

	internship, err := h.catalogService.Create(c.Request().Context(), identityFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, InternshipResponse{Success: true, Internship: internship})
}
