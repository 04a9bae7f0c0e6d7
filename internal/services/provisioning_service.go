package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/repositories"

	"github.com/jackc/pgx/v5"
)

// MaxRangeSize caps how many units a single range specification may request.
const MaxRangeSize = 1000

// ProvisioningService is the bulk unit-provisioning engine: it validates a
// batch of range specifications, authorizes the caller, reconciles blocks and
// unit types idempotently, creates the missing units and reports a structured
// partial-success outcome. The whole reconciliation runs in one transaction;
// duplicate units are warnings, not aborts.
type ProvisioningService interface {
	CreateUnitsInBulk(ctx context.Context, projectID int64, items []models.UnitRangeSpec, principal common.Principal) (*models.BulkProvisionResult, error)
}

type provisioningService struct {
	db           repositories.TxBeginner
	projectRepo  repositories.ProjectRepository
	blockRepo    repositories.BlockRepository
	unitTypeRepo repositories.UnitTypeRepository
	unitRepo     repositories.UnitRepository
	authorizer   ProjectAuthorizer
}

func NewProvisioningService(db repositories.TxBeginner, projectRepo repositories.ProjectRepository,
	blockRepo repositories.BlockRepository, unitTypeRepo repositories.UnitTypeRepository,
	unitRepo repositories.UnitRepository, authorizer ProjectAuthorizer) ProvisioningService {
	return &provisioningService{
		db:           db,
		projectRepo:  projectRepo,
		blockRepo:    blockRepo,
		unitTypeRepo: unitTypeRepo,
		unitRepo:     unitRepo,
		authorizer:   authorizer,
	}
}

func (s *provisioningService) CreateUnitsInBulk(ctx context.Context, projectID int64, items []models.UnitRangeSpec, principal common.Principal) (*models.BulkProvisionResult, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("Project not found with ID: %d", projectID)
		}
		return nil, common.Internal("failed to load project", err)
	}

	if _, err := s.authorizer.Authorize(ctx, project, principal); err != nil {
		return nil, err
	}

	if err := validateItems(items); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, common.Internal("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	blockRepo := s.blockRepo.WithTx(tx)
	unitTypeRepo := s.unitTypeRepo.WithTx(tx)
	unitRepo := s.unitRepo.WithTx(tx)

	var createdBy *string
	if principal.Identity != "" {
		createdBy = &principal.Identity
	}

	result := &models.BulkProvisionResult{
		CreatedBlocks:    []string{},
		CreatedUnitTypes: []string{},
		Warnings:         []string{},
	}

	for _, item := range items {
		block, blockCreated, err := s.findOrCreateBlock(ctx, blockRepo, item.BlockName, projectID, createdBy)
		if err != nil {
			return nil, err
		}
		if blockCreated {
			result.CreatedBlocks = append(result.CreatedBlocks, block.Name)
			result.TotalBlocksCreated++
		}

		unitType, typeCreated, err := s.findOrCreateUnitType(ctx, unitTypeRepo, item.UnitTypeName, createdBy)
		if err != nil {
			return nil, err
		}
		if typeCreated {
			result.CreatedUnitTypes = append(result.CreatedUnitTypes, unitType.Name)
			result.TotalUnitTypesCreated++
		}

		for n := item.Start; n <= item.End; n++ {
			unitNumber := strconv.Itoa(n)
			exists, err := unitRepo.ExistsByNumberAndBlock(ctx, unitNumber, block.ID)
			if err != nil {
				return nil, common.Internal("failed to check unit existence", err)
			}
			if exists {
				result.Warnings = append(result.Warnings, fmt.Sprintf("Unit '%d' in block '%s' already exists", n, item.BlockName))
				continue
			}

			unit := &models.Unit{
				UnitNumber: unitNumber,
				BlockID:    block.ID,
				UnitTypeID: unitType.ID,
				CreatedBy:  createdBy,
			}
			inserted, err := unitRepo.Create(ctx, unit)
			if err != nil {
				return nil, common.Internal("failed to create unit", err)
			}
			if !inserted {
				// A concurrent batch created the same unit between the
				// existence check and the insert. Expected on retries.
				result.Warnings = append(result.Warnings, fmt.Sprintf("Unit '%d' in block '%s' already exists", n, item.BlockName))
				continue
			}
			result.TotalUnitsCreated++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, common.Internal("failed to commit transaction", err)
	}

	result.Success = true
	result.Message = fmt.Sprintf("Bulk unit creation completed. Created %d units, %d blocks, %d unit types.",
		result.TotalUnitsCreated, result.TotalBlocksCreated, result.TotalUnitTypesCreated)
	if len(result.Warnings) > 0 {
		result.Message += fmt.Sprintf(" Skipped %d existing units.", len(result.Warnings))
		log.Printf("Bulk unit creation for project %d skipped %d existing units", projectID, len(result.Warnings))
	}

	return result, nil
}

// validateItems runs the structural batch checks, in order: empty list, range
// sanity and size per item, then duplicate (block, unit type) pairs across
// the batch. All checks happen before any store mutation.
func validateItems(items []models.UnitRangeSpec) error {
	if len(items) == 0 {
		return common.Validationf("Items list cannot be empty")
	}

	for _, item := range items {
		if item.Start > item.End {
			return common.Validationf("Invalid unit range for block '%s': start (%d) cannot be greater than end (%d)",
				item.BlockName, item.Start, item.End)
		}
		if item.Count() > MaxRangeSize {
			return common.Validationf("Unit range too large for block '%s': %d units. Maximum allowed is %d.",
				item.BlockName, item.Count(), MaxRangeSize)
		}
	}

	type specKey struct {
		block    string
		unitType string
	}
	seen := make(map[specKey]struct{}, len(items))
	for _, item := range items {
		key := specKey{block: item.BlockName, unitType: item.UnitTypeName}
		if _, dup := seen[key]; dup {
			return common.Validationf("Duplicate entry found for block '%s' and unit type '%s'",
				item.BlockName, item.UnitTypeName)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// findOrCreateBlock reuses an existing block by (name, project) or creates
// it. A uniqueness conflict from a concurrent transaction falls back to a
// re-read and counts as reuse.
func (s *provisioningService) findOrCreateBlock(ctx context.Context, repo repositories.BlockRepository, name string, projectID int64, createdBy *string) (*models.Block, bool, error) {
	block, err := repo.GetByNameAndProject(ctx, name, projectID)
	if err == nil {
		return block, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, common.Internal("failed to look up block", err)
	}

	block = &models.Block{Name: name, ProjectID: projectID, CreatedBy: createdBy}
	if err := repo.Create(ctx, block); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict-tolerant insert returned no row: a concurrent
			// transaction won the insert, so reuse its block.
			existing, readErr := repo.GetByNameAndProject(ctx, name, projectID)
			if readErr != nil {
				return nil, false, common.Internal("failed to re-read block after conflict", readErr)
			}
			return existing, false, nil
		}
		return nil, false, common.Internal("failed to create block", err)
	}
	return block, true, nil
}

// findOrCreateUnitType reuses or creates a global catalog entry by name, with
// the same conflict fallback as blocks.
func (s *provisioningService) findOrCreateUnitType(ctx context.Context, repo repositories.UnitTypeRepository, name string, createdBy *string) (*models.UnitType, bool, error) {
	unitType, err := repo.GetByName(ctx, name)
	if err == nil {
		return unitType, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, common.Internal("failed to look up unit type", err)
	}

	unitType = &models.UnitType{Name: name, CreatedBy: createdBy}
	if err := repo.Create(ctx, unitType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			existing, readErr := repo.GetByName(ctx, name)
			if readErr != nil {
				return nil, false, common.Internal("failed to re-read unit type after conflict", readErr)
			}
			return existing, false, nil
		}
		return nil, false, common.Internal("failed to create unit type", err)
	}
	return unitType, true, nil
}
