package handlers

import (
	"net/http"
	"strconv"

	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/services"

	"github.com/labstack/echo/v4"
)

// UnitHandlers serves the paginated unit listing for a project.
type UnitHandlers struct {
	listingSvc services.UnitListingService
}

func NewUnitHandlers(listingSvc services.UnitListingService) *UnitHandlers {
	return &UnitHandlers{listingSvc: listingSvc}
}

// ListUnits handles GET /api/projects/:id/units.
func (h *UnitHandlers) ListUnits(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID")
	}

	var page models.PageRequest
	if err := c.Bind(&page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	result, err := h.listingSvc.GetUnitsForProject(ctx, projectID, page, principal)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
