package handlers

import (
	"net/http"
	"strconv"
	"time"

	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/services"

	"github.com/labstack/echo/v4"
)

const photoURLExpiry = 1 * time.Hour

type ComplaintHandlers struct {
	complaintSvc services.ComplaintService
}

func NewComplaintHandlers(complaintSvc services.ComplaintService) *ComplaintHandlers {
	return &ComplaintHandlers{complaintSvc: complaintSvc}
}

func (h *ComplaintHandlers) CreateComplaint(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID")
	}

	var req services.CreateComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	complaint, err := h.complaintSvc.Create(ctx, projectID, &req, principal.Identity)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusCreated, complaint)
}

func (h *ComplaintHandlers) GetComplaint(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, complaintID, err := complaintPath(c)
	if err != nil {
		return err
	}

	complaint, err := h.complaintSvc.GetByID(ctx, projectID, complaintID)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, complaint)
}

type UpdateComplaintStatusRequest struct {
	Status models.ComplaintStatus `json:"status" validate:"required"`
}

func (h *ComplaintHandlers) UpdateComplaintStatus(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, complaintID, err := complaintPath(c)
	if err != nil {
		return err
	}

	var req UpdateComplaintStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	if err := h.complaintSvc.UpdateStatus(ctx, projectID, complaintID, req.Status, principal.Identity); err != nil {
		return common.RespondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ComplaintHandlers) DeleteComplaint(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, complaintID, err := complaintPath(c)
	if err != nil {
		return err
	}

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	if err := h.complaintSvc.Delete(ctx, projectID, complaintID, principal.Identity); err != nil {
		return common.RespondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ComplaintHandlers) ListComplaints(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID")
	}

	var page models.PageRequest
	if err := c.Bind(&page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	result, err := h.complaintSvc.ListByProject(ctx, projectID, page)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ComplaintHandlers) UploadPhoto(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, complaintID, err := complaintPath(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Photo file is required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read photo file")
	}
	defer src.Close()

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.complaintSvc.UploadPhoto(ctx, projectID, complaintID, file.Filename, contentType, src, file.Size, principal.Identity); err != nil {
		return common.RespondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ComplaintHandlers) GetPhotoURL(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, complaintID, err := complaintPath(c)
	if err != nil {
		return err
	}

	url, err := h.complaintSvc.GetPhotoURL(ctx, projectID, complaintID, photoURLExpiry)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

func complaintPath(c echo.Context) (int64, int64, error) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID")
	}
	complaintID, err := strconv.ParseInt(c.Param("complaintId"), 10, 64)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid complaint ID")
	}
	return projectID, complaintID, nil
}
