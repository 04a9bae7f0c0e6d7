package handlers

import (
	"net/http"
	"strconv"

	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/services"

	"github.com/labstack/echo/v4"
)

type ProjectHandlers struct {
	projectSvc services.ProjectService
}

func NewProjectHandlers(projectSvc services.ProjectService) *ProjectHandlers {
	return &ProjectHandlers{projectSvc: projectSvc}
}

func (h *ProjectHandlers) CreateProject(c echo.Context) error {
	ctx := c.Request().Context()

	var req services.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	project, err := h.projectSvc.Create(ctx, &req, principal.Identity)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandlers) GetProject(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID")
	}

	project, err := h.projectSvc.GetByID(ctx, id)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandlers) UpdateProject(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID")
	}

	var project models.Project
	if err := c.Bind(&project); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	project.ID = id

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	if err := h.projectSvc.Update(ctx, &project, principal.Identity); err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandlers) DeleteProject(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID")
	}

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	if err := h.projectSvc.Delete(ctx, id, principal.Identity); err != nil {
		return common.RespondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProjectHandlers) ListProjects(c echo.Context) error {
	ctx := c.Request().Context()

	var page models.PageRequest
	if err := c.Bind(&page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	page = page.Normalize()

	sellerIDParam := c.QueryParam("seller_id")
	if sellerIDParam != "" {
		sellerID, err := strconv.ParseInt(sellerIDParam, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid seller ID")
		}
		projects, err := h.projectSvc.ListBySeller(ctx, sellerID, page.Size, page.Offset())
		if err != nil {
			return common.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"projects": projects,
			"page":     page.Page,
			"size":     page.Size,
		})
	}

	projects, err := h.projectSvc.List(ctx, page.Size, page.Offset())
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"projects": projects,
		"page":     page.Page,
		"size":     page.Size,
	})
}
