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

const complaintPhotoBucket = "complaint-photos"

type ComplaintService interface {
	Create(ctx context.Context, projectID int64, req *CreateComplaintRequest, createdBy string) (*models.Complaint, error)
	GetByID(ctx context.Context, projectID, id int64) (*models.Complaint, error)
	UpdateStatus(ctx context.Context, projectID, id int64, status models.ComplaintStatus, modifiedBy string) error
	Delete(ctx context.Context, projectID, id int64, deletedBy string) error
	ListByProject(ctx context.Context, projectID int64, page models.PageRequest) (*models.Page[*models.Complaint], error)
	UploadPhoto(ctx context.Context, projectID, id int64, filename, contentType string, reader io.Reader, size int64, modifiedBy string) error
	GetPhotoURL(ctx context.Context, projectID, id int64, expiry time.Duration) (string, error)
}

type complaintService struct {
	complaintRepo repositories.ComplaintRepository
	projectRepo   repositories.ProjectRepository
	storage       StorageService
}

func NewComplaintService(complaintRepo repositories.ComplaintRepository, projectRepo repositories.ProjectRepository, storage StorageService) ComplaintService {
	return &complaintService{complaintRepo: complaintRepo, projectRepo: projectRepo, storage: storage}
}

type CreateComplaintRequest struct {
	Title string  `json:"title" validate:"required"`
	Body  *string `json:"body"`
}

func (s *complaintService) Create(ctx context.Context, projectID int64, req *CreateComplaintRequest, createdBy string) (*models.Complaint, error) {
	if req.Title == "" {
		return nil, common.Validationf("Complaint title is required")
	}
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		ProjectID: projectID,
		Title:     req.Title,
		Body:      req.Body,
		Status:    models.ComplaintOpen,
		CreatedBy: &createdBy,
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, common.Internal("failed to create complaint", err)
	}
	return complaint, nil
}

func (s *complaintService) GetByID(ctx context.Context, projectID, id int64) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, projectID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("Complaint not found with ID: %d", id)
		}
		return nil, common.Internal("failed to load complaint", err)
	}
	return complaint, nil
}

func (s *complaintService) UpdateStatus(ctx context.Context, projectID, id int64, status models.ComplaintStatus, modifiedBy string) error {
	switch status {
	case models.ComplaintOpen, models.ComplaintInProgress, models.ComplaintResolved:
	default:
		return common.Validationf("Invalid complaint status: %s", status)
	}

	complaint, err := s.GetByID(ctx, projectID, id)
	if err != nil {
		return err
	}
	complaint.Status = status
	complaint.LastModifiedBy = &modifiedBy
	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return common.Internal("failed to update complaint", err)
	}
	return nil
}

func (s *complaintService) Delete(ctx context.Context, projectID, id int64, deletedBy string) error {
	if err := s.complaintRepo.SoftDelete(ctx, projectID, id, deletedBy); err != nil {
		return common.Internal("failed to delete complaint", err)
	}
	return nil
}

func (s *complaintService) ListByProject(ctx context.Context, projectID int64, page models.PageRequest) (*models.Page[*models.Complaint], error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	page = page.Normalize()
	complaints, err := s.complaintRepo.ListByProject(ctx, projectID, page.Size, page.Offset())
	if err != nil {
		return nil, common.Internal("failed to list complaints", err)
	}
	total, err := s.complaintRepo.CountByProject(ctx, projectID)
	if err != nil {
		return nil, common.Internal("failed to count complaints", err)
	}
	return &models.Page[*models.Complaint]{
		Items:      complaints,
		TotalCount: total,
		Page:       page.Page,
		Size:       page.Size,
	}, nil
}

func (s *complaintService) UploadPhoto(ctx context.Context, projectID, id int64, filename, contentType string, reader io.Reader, size int64, modifiedBy string) error {
	complaint, err := s.GetByID(ctx, projectID, id)
	if err != nil {
		return err
	}

	if err := s.storage.EnsureBucketExists(ctx, complaintPhotoBucket); err != nil {
		return common.Internal("failed to ensure bucket exists", err)
	}

	objectKey := fmt.Sprintf("%d/%d/%s%s", projectID, id, uuid.New().String(), filepath.Ext(filename))
	if err := s.storage.Upload(ctx, complaintPhotoBucket, objectKey, contentType, reader, size); err != nil {
		return common.Internal("failed to upload photo", err)
	}

	complaint.PhotoKey = &objectKey
	complaint.LastModifiedBy = &modifiedBy
	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return common.Internal("failed to save photo reference", err)
	}
	return nil
}

func (s *complaintService) GetPhotoURL(ctx context.Context, projectID, id int64, expiry time.Duration) (string, error) {
	complaint, err := s.GetByID(ctx, projectID, id)
	if err != nil {
		return "", err
	}
	if complaint.PhotoKey == nil {
		return "", common.NotFoundf("Complaint %d has no photo", id)
	}
	url, err := s.storage.GetPresignedURL(ctx, complaintPhotoBucket, *complaint.PhotoKey, expiry)
	if err != nil {
		return "", common.Internal("failed to generate photo URL", err)
	}
	return url, nil
}

func (s *complaintService) requireProject(ctx context.Context, projectID int64) error {
	exists, err := s.projectRepo.Exists(ctx, projectID)
	if err != nil {
		return common.Internal("failed to check project existence", err)
	}
	if !exists {
		return common.NotFoundf("Project not found with ID: %d", projectID)
	}
	return nil
}
