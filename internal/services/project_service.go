package services

import (
	"context"
	"errors"
	"log"
	"time"

	"estatehub/internal/caching"
	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/repositories"

	"github.com/jackc/pgx/v5"
)

const projectCacheTTL = 15 * time.Minute

type ProjectService interface {
	Create(ctx context.Context, req *CreateProjectRequest, createdBy string) (*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Update(ctx context.Context, project *models.Project, modifiedBy string) error
	Delete(ctx context.Context, id int64, deletedBy string) error
	List(ctx context.Context, limit, offset int) ([]*models.Project, error)
	ListBySeller(ctx context.Context, sellerID int64, limit, offset int) ([]*models.Project, error)
}

type projectService struct {
	projectRepo repositories.ProjectRepository
	sellerRepo  repositories.SellerRepository
	cache       caching.CacheService
}

func NewProjectService(projectRepo repositories.ProjectRepository, sellerRepo repositories.SellerRepository, cache caching.CacheService) ProjectService {
	return &projectService{projectRepo: projectRepo, sellerRepo: sellerRepo, cache: cache}
}

type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	UnitCount   int     `json:"unit_count"`
	SellerID    int64   `json:"seller_id" validate:"required"`
}

func (s *projectService) Create(ctx context.Context, req *CreateProjectRequest, createdBy string) (*models.Project, error) {
	if req.Name == "" {
		return nil, common.Validationf("Project name is required")
	}
	if req.UnitCount < 0 {
		return nil, common.Validationf("Unit count cannot be negative")
	}

	if _, err := s.sellerRepo.GetByID(ctx, req.SellerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("Seller not found with ID: %d", req.SellerID)
		}
		return nil, common.Internal("failed to load seller", err)
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      models.ProjectActive,
		UnitCount:   req.UnitCount,
		SellerID:    req.SellerID,
		CreatedBy:   &createdBy,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, common.Internal("failed to create project", err)
	}
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	if cached, err := s.cache.GetProject(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("Cache error for project %d: %v", id, err)
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("Project not found with ID: %d", id)
		}
		return nil, common.Internal("failed to load project", err)
	}

	if err := s.cache.SetProject(ctx, project, projectCacheTTL); err != nil {
		log.Printf("Failed to cache project %d: %v", id, err)
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, project *models.Project, modifiedBy string) error {
	if _, err := s.GetByID(ctx, project.ID); err != nil {
		return err
	}
	project.LastModifiedBy = &modifiedBy
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return common.Internal("failed to update project", err)
	}
	if err := s.cache.DeleteProject(ctx, project.ID); err != nil {
		log.Printf("Failed to invalidate cache for project %d: %v", project.ID, err)
	}
	return nil
}

func (s *projectService) Delete(ctx context.Context, id int64, deletedBy string) error {
	if err := s.projectRepo.SoftDelete(ctx, id, deletedBy); err != nil {
		return common.Internal("failed to delete project", err)
	}
	if err := s.cache.DeleteProject(ctx, id); err != nil {
		log.Printf("Failed to invalidate cache for project %d: %v", id, err)
	}
	return nil
}

func (s *projectService) List(ctx context.Context, limit, offset int) ([]*models.Project, error) {
	projects, err := s.projectRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, common.Internal("failed to list projects", err)
	}
	return projects, nil
}

func (s *projectService) ListBySeller(ctx context.Context, sellerID int64, limit, offset int) ([]*models.Project, error) {
	projects, err := s.projectRepo.ListBySeller(ctx, sellerID, limit, offset)
	if err != nil {
		return nil, common.Internal("failed to list projects for seller", err)
	}
	return projects, nil
}
