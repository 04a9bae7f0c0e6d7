package repositories

import (
	"context"

	"estatehub/internal/models"

	"github.com/jackc/pgx/v5"
)

type BlockRepository interface {
	WithTx(tx pgx.Tx) BlockRepository
	Create(ctx context.Context, block *models.Block) error
	GetByID(ctx context.Context, id int64) (*models.Block, error)
	GetByNameAndProject(ctx context.Context, name string, projectID int64) (*models.Block, error)
	ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]*models.Block, error)
}

type blockRepo struct {
	db DB
}

func NewBlockRepo(db DB) BlockRepository {
	return &blockRepo{db: db}
}

func (r *blockRepo) WithTx(tx pgx.Tx) BlockRepository {
	return &blockRepo{db: tx}
}

const blockColumns = "id, name, project_id, created_by, created_date, last_modified_by, last_modified_date, deleted_on"

// Create inserts the block. A concurrent insert of the same (name,
// project_id) makes the statement insert nothing, so Scan reports
// pgx.ErrNoRows without aborting an open transaction; callers performing
// find-or-create re-read the winner's row in that case.
func (r *blockRepo) Create(ctx context.Context, block *models.Block) error {
	query := `
		INSERT INTO blocks (name, project_id, created_by, created_date, last_modified_by, last_modified_date)
		VALUES ($1, $2, $3, NOW(), $3, NOW())
		ON CONFLICT (name, project_id) DO NOTHING
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, block.Name, block.ProjectID, block.CreatedBy).Scan(&block.ID)
}

func (r *blockRepo) GetByID(ctx context.Context, id int64) (*models.Block, error) {
	block := &models.Block{}
	query := `
		SELECT ` + blockColumns + `
		FROM blocks
		WHERE id = $1 AND ` + liveFilter + `
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&block.ID, &block.Name, &block.ProjectID,
		&block.CreatedBy, &block.CreatedDate, &block.LastModifiedBy, &block.LastModifiedDate, &block.DeletedOn)
	if err != nil {
		return nil, err
	}
	return block, nil
}

// GetByNameAndProject resolves a block by its natural key. Name matching is
// exact; uniqueness holds within a project only.
func (r *blockRepo) GetByNameAndProject(ctx context.Context, name string, projectID int64) (*models.Block, error) {
	block := &models.Block{}
	query := `
		SELECT ` + blockColumns + `
		FROM blocks
		WHERE name = $1 AND project_id = $2 AND ` + liveFilter + `
	`
	err := r.db.QueryRow(ctx, query, name, projectID).Scan(&block.ID, &block.Name, &block.ProjectID,
		&block.CreatedBy, &block.CreatedDate, &block.LastModifiedBy, &block.LastModifiedDate, &block.DeletedOn)
	if err != nil {
		return nil, err
	}
	return block, nil
}

func (r *blockRepo) ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]*models.Block, error) {
	query := `
		SELECT ` + blockColumns + `
		FROM blocks
		WHERE project_id = $1 AND ` + liveFilter + `
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []*models.Block
	for rows.Next() {
		block := &models.Block{}
		if err := rows.Scan(&block.ID, &block.Name, &block.ProjectID,
			&block.CreatedBy, &block.CreatedDate, &block.LastModifiedBy, &block.LastModifiedDate, &block.DeletedOn); err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, rows.Err()
}
