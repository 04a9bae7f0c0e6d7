package handlers

import (
	"net/http"
	"strconv"

	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/services"

	"github.com/labstack/echo/v4"
)

type SellerHandlers struct {
	sellerSvc services.SellerService
}

func NewSellerHandlers(sellerSvc services.SellerService) *SellerHandlers {
	return &SellerHandlers{sellerSvc: sellerSvc}
}

func (h *SellerHandlers) CreateSeller(c echo.Context) error {
	ctx := c.Request().Context()

	var req services.CreateSellerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	seller, err := h.sellerSvc.Create(ctx, &req, principal.Identity)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusCreated, seller)
}

func (h *SellerHandlers) GetSeller(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid seller ID")
	}

	seller, err := h.sellerSvc.GetByID(ctx, id)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, seller)
}

func (h *SellerHandlers) UpdateSeller(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid seller ID")
	}

	var seller models.Seller
	if err := c.Bind(&seller); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	seller.ID = id

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	if err := h.sellerSvc.Update(ctx, &seller, principal.Identity); err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, seller)
}

func (h *SellerHandlers) DeleteSeller(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid seller ID")
	}

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	if err := h.sellerSvc.Delete(ctx, id, principal.Identity); err != nil {
		return common.RespondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SellerHandlers) ListSellers(c echo.Context) error {
	ctx := c.Request().Context()

	var page models.PageRequest
	if err := c.Bind(&page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	page = page.Normalize()

	sellers, err := h.sellerSvc.List(ctx, page.Size, page.Offset())
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sellers": sellers,
		"page":    page.Page,
		"size":    page.Size,
	})
}

// ListSellersWithProjects returns the joined seller/project records decoded
// through the projection layer.
func (h *SellerHandlers) ListSellersWithProjects(c echo.Context) error {
	ctx := c.Request().Context()

	var page models.PageRequest
	if err := c.Bind(&page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	page = page.Normalize()

	records, err := h.sellerSvc.ListWithProjects(ctx, page.Size, page.Offset())
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sellers": records,
		"page":    page.Page,
		"size":    page.Size,
	})
}
