package handlers

import (
	"net/http"
	"strconv"

	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/services"

	"github.com/labstack/echo/v4"
)

// ProvisioningHandlers exposes the bulk unit-provisioning engine over HTTP.
type ProvisioningHandlers struct {
	provisioningSvc services.ProvisioningService
}

func NewProvisioningHandlers(provisioningSvc services.ProvisioningService) *ProvisioningHandlers {
	return &ProvisioningHandlers{provisioningSvc: provisioningSvc}
}

// BulkCreateUnitsRequest is the deserialized batch of range specifications.
type BulkCreateUnitsRequest struct {
	Items []models.UnitRangeSpec `json:"items"`
}

// BulkCreateUnits handles POST /api/projects/:id/units/bulk.
func (h *ProvisioningHandlers) BulkCreateUnits(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID")
	}

	var req BulkCreateUnitsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	result, err := h.provisioningSvc.CreateUnitsInBulk(ctx, projectID, req.Items, principal)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}
