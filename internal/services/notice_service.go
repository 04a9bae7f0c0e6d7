package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const noticeAttachmentBucket = "notice-attachments"

type NoticeService interface {
	Create(ctx context.Context, projectID int64, req *CreateNoticeRequest, createdBy string) (*models.Notice, error)
	GetByID(ctx context.Context, projectID, id int64) (*models.Notice, error)
	Delete(ctx context.Context, projectID, id int64, deletedBy string) error
	ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]*models.Notice, error)
	UploadAttachment(ctx context.Context, projectID, id int64, filename, contentType string, reader io.Reader, size int64, modifiedBy string) error
	GetAttachmentURL(ctx context.Context, projectID, id int64, expiry time.Duration) (string, error)
}

type noticeService struct {
	noticeRepo  repositories.NoticeRepository
	projectRepo repositories.ProjectRepository
	storage     StorageService
}

func NewNoticeService(noticeRepo repositories.NoticeRepository, projectRepo repositories.ProjectRepository, storage StorageService) NoticeService {
	return &noticeService{noticeRepo: noticeRepo, projectRepo: projectRepo, storage: storage}
}

type CreateNoticeRequest struct {
	Title     string     `json:"title" validate:"required"`
	Body      *string    `json:"body"`
	ExpiresOn *time.Time `json:"expires_on"`
}

func (s *noticeService) Create(ctx context.Context, projectID int64, req *CreateNoticeRequest, createdBy string) (*models.Notice, error) {
	if req.Title == "" {
		return nil, common.Validationf("Notice title is required")
	}
	exists, err := s.projectRepo.Exists(ctx, projectID)
	if err != nil {
		return nil, common.Internal("failed to check project existence", err)
	}
	if !exists {
		return nil, common.NotFoundf("Project not found with ID: %d", projectID)
	}

	notice := &models.Notice{
		ProjectID: projectID,
		Title:     req.Title,
		Body:      req.Body,
		ExpiresOn: req.ExpiresOn,
		CreatedBy: &createdBy,
	}
	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, common.Internal("failed to create notice", err)
	}
	return notice, nil
}

func (s *noticeService) GetByID(ctx context.Context, projectID, id int64) (*models.Notice, error) {
	notice, err := s.noticeRepo.GetByID(ctx, projectID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("Notice not found with ID: %d", id)
		}
		return nil, common.Internal("failed to load notice", err)
	}
	return notice, nil
}

func (s *noticeService) Delete(ctx context.Context, projectID, id int64, deletedBy string) error {
	if err := s.noticeRepo.SoftDelete(ctx, projectID, id, deletedBy); err != nil {
		return common.Internal("failed to delete notice", err)
	}
	return nil
}

func (s *noticeService) ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]*models.Notice, error) {
	notices, err := s.noticeRepo.ListByProject(ctx, projectID, limit, offset)
	if err != nil {
		return nil, common.Internal("failed to list notices", err)
	}
	return notices, nil
}

func (s *noticeService) UploadAttachment(ctx context.Context, projectID, id int64, filename, contentType string, reader io.Reader, size int64, modifiedBy string) error {
	notice, err := s.GetByID(ctx, projectID, id)
	if err != nil {
		return err
	}

	if err := s.storage.EnsureBucketExists(ctx, noticeAttachmentBucket); err != nil {
		return common.Internal("failed to ensure bucket exists", err)
	}

	objectKey := fmt.Sprintf("%d/%d/%s%s", projectID, id, uuid.New().String(), filepath.Ext(filename))
	if err := s.storage.Upload(ctx, noticeAttachmentBucket, objectKey, contentType, reader, size); err != nil {
		return common.Internal("failed to upload attachment", err)
	}

	notice.AttachmentKey = &objectKey
	notice.LastModifiedBy = &modifiedBy
	if err := s.noticeRepo.Update(ctx, notice); err != nil {
		return common.Internal("failed to save attachment reference", err)
	}
	return nil
}

func (s *noticeService) GetAttachmentURL(ctx context.Context, projectID, id int64, expiry time.Duration) (string, error) {
	notice, err := s.GetByID(ctx, projectID, id)
	if err != nil {
		return "", err
	}
	if notice.AttachmentKey == nil {
		return "", common.NotFoundf("Notice %d has no attachment", id)
	}
	url, err := s.storage.GetPresignedURL(ctx, noticeAttachmentBucket, *notice.AttachmentKey, expiry)
	if err != nil {
		return "", common.Internal("failed to generate attachment URL", err)
	}
	return url, nil
}
