package services

import (
	"context"
	"errors"

	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/repositories"

	"github.com/jackc/pgx/v5"
)

// ProjectAuthorizer decides whether a caller may act on a project. It is the
// single source of truth for ownership semantics; both the provisioning
// engine and the listing service go through it.
type ProjectAuthorizer interface {
	// Authorize checks the caller against an already-loaded project. Admins
	// bypass the lookup; sellers are resolved by phone and matched against
	// the project's owner. Returns the resolved seller for seller callers.
	Authorize(ctx context.Context, project *models.Project, principal common.Principal) (*models.Seller, error)

	// AuthorizeProjectID checks the caller against a project by identity,
	// using the dedicated ownership query. Used where only the project id is
	// known (the listing path after an existence check).
	AuthorizeProjectID(ctx context.Context, projectID int64, principal common.Principal) (*models.Seller, error)
}

type projectAuthorizer struct {
	sellerRepo  repositories.SellerRepository
	projectRepo repositories.ProjectRepository
}

func NewProjectAuthorizer(sellerRepo repositories.SellerRepository, projectRepo repositories.ProjectRepository) ProjectAuthorizer {
	return &projectAuthorizer{sellerRepo: sellerRepo, projectRepo: projectRepo}
}

func (a *projectAuthorizer) Authorize(ctx context.Context, project *models.Project, principal common.Principal) (*models.Seller, error) {
	if principal.IsAdmin() {
		return nil, nil
	}

	seller, err := a.resolveSeller(ctx, principal)
	if err != nil {
		return nil, err
	}
	if seller.ID != project.SellerID {
		return nil, common.AccessDeniedf("Seller does not own project with ID: %d", project.ID)
	}
	return seller, nil
}

func (a *projectAuthorizer) AuthorizeProjectID(ctx context.Context, projectID int64, principal common.Principal) (*models.Seller, error) {
	if principal.IsAdmin() {
		return nil, nil
	}

	seller, err := a.resolveSeller(ctx, principal)
	if err != nil {
		return nil, err
	}
	owned, err := a.projectRepo.IsOwnedBySeller(ctx, projectID, seller.ID)
	if err != nil {
		return nil, common.Internal("failed to check project ownership", err)
	}
	if !owned {
		return nil, common.AccessDeniedf("Seller does not own project with ID: %d", projectID)
	}
	return seller, nil
}

func (a *projectAuthorizer) resolveSeller(ctx context.Context, principal common.Principal) (*models.Seller, error) {
	seller, err := a.sellerRepo.GetActiveByPhone(ctx, principal.Identity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("Seller not found with phone number: %s", principal.Identity)
		}
		return nil, common.Internal("failed to resolve seller", err)
	}
	return seller, nil
}
