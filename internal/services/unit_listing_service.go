package services

import (
	"context"

	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/projection"
	"estatehub/internal/repositories"
)

// UnitListingService serves authorization-scoped, paginated unit listings
// for a project, decoding the native join rows through the projection layer.
type UnitListingService interface {
	GetUnitsForProject(ctx context.Context, projectID int64, page models.PageRequest, principal common.Principal) (*models.Page[*models.UnitInfo], error)
}

type unitListingService struct {
	projectRepo repositories.ProjectRepository
	unitRepo    repositories.UnitRepository
	authorizer  ProjectAuthorizer
}

func NewUnitListingService(projectRepo repositories.ProjectRepository, unitRepo repositories.UnitRepository, authorizer ProjectAuthorizer) UnitListingService {
	return &unitListingService{
		projectRepo: projectRepo,
		unitRepo:    unitRepo,
		authorizer:  authorizer,
	}
}

func (s *unitListingService) GetUnitsForProject(ctx context.Context, projectID int64, page models.PageRequest, principal common.Principal) (*models.Page[*models.UnitInfo], error) {
	exists, err := s.projectRepo.Exists(ctx, projectID)
	if err != nil {
		return nil, common.Internal("failed to check project existence", err)
	}
	if !exists {
		return nil, common.NotFoundf("Project not found with ID: %d", projectID)
	}

	// Ownership is checked after the project is confirmed to exist, so a
	// denied seller learns the project exists but not its contents.
	if _, err := s.authorizer.AuthorizeProjectID(ctx, projectID, principal); err != nil {
		return nil, err
	}

	page = page.Normalize()

	rows, err := s.unitRepo.ListRowsForProject(ctx, projectID, page.Size, page.Offset())
	if err != nil {
		return nil, common.Internal("failed to list units", err)
	}

	items := make([]*models.UnitInfo, 0, len(rows))
	for _, row := range rows {
		info, err := projection.UnitInfoRow(row)
		if err != nil {
			return nil, &common.Error{Kind: common.KindProjection, Message: "failed to map unit row", Err: err}
		}
		items = append(items, info)
	}

	total, err := s.unitRepo.CountByProject(ctx, projectID)
	if err != nil {
		return nil, common.Internal("failed to count units", err)
	}

	return &models.Page[*models.UnitInfo]{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		Size:       page.Size,
	}, nil
}
