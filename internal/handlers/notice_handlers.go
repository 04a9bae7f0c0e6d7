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

const attachmentURLExpiry = 1 * time.Hour

type NoticeHandlers struct {
	noticeSvc services.NoticeService
}

func NewNoticeHandlers(noticeSvc services.NoticeService) *NoticeHandlers {
	return &NoticeHandlers{noticeSvc: noticeSvc}
}

func (h *NoticeHandlers) CreateNotice(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID")
	}

	var req services.CreateNoticeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	notice, err := h.noticeSvc.Create(ctx, projectID, &req, principal.Identity)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusCreated, notice)
}

func (h *NoticeHandlers) GetNotice(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, noticeID, err := noticePath(c)
	if err != nil {
		return err
	}

	notice, err := h.noticeSvc.GetByID(ctx, projectID, noticeID)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, notice)
}

func (h *NoticeHandlers) DeleteNotice(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, noticeID, err := noticePath(c)
	if err != nil {
		return err
	}

	principal, ok := common.GetPrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Caller identity not found")
	}

	if err := h.noticeSvc.Delete(ctx, projectID, noticeID, principal.Identity); err != nil {
		return common.RespondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NoticeHandlers) ListNotices(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID")
	}

	var page models.PageRequest
	if err := c.Bind(&page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	page = page.Normalize()

	notices, err := h.noticeSvc.ListByProject(ctx, projectID, page.Size, page.Offset())
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"notices": notices,
		"page":    page.Page,
		"size":    page.Size,
	})
}

func (h *NoticeHandlers) UploadAttachment(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, noticeID, err := noticePath(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("attachment")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Attachment file is required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read attachment file")
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

	if err := h.noticeSvc.UploadAttachment(ctx, projectID, noticeID, file.Filename, contentType, src, file.Size, principal.Identity); err != nil {
		return common.RespondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NoticeHandlers) GetAttachmentURL(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, noticeID, err := noticePath(c)
	if err != nil {
		return err
	}

	url, err := h.noticeSvc.GetAttachmentURL(ctx, projectID, noticeID, attachmentURLExpiry)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

func noticePath(c echo.Context) (int64, int64, error) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID")
	}
	noticeID, err := strconv.ParseInt(c.Param("noticeId"), 10, 64)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid notice ID")
	}
	return projectID, noticeID, nil
}
