package repositories

import (
	"context"

	"estatehub/internal/models"

	"github.com/jackc/pgx/v5"
)

type UnitRepository interface {
	WithTx(tx pgx.Tx) UnitRepository
	Create(ctx context.Context, unit *models.Unit) (bool, error)
	ExistsByNumberAndBlock(ctx context.Context, unitNumber string, blockID int64) (bool, error)
	ListRowsForProject(ctx context.Context, projectID int64, limit, offset int) ([][]any, error)
	CountByProject(ctx context.Context, projectID int64) (int64, error)
}

type unitRepo struct {
	db DB
}

func NewUnitRepo(db DB) UnitRepository {
	return &unitRepo{db: db}
}

func (r *unitRepo) WithTx(tx pgx.Tx) UnitRepository {
	return &unitRepo{db: tx}
}

// Create inserts the unit unless the (unit_number, block_id) pair already
// exists, reporting whether a row went in. The conflict inserts nothing
// instead of erroring, so a concurrent duplicate never aborts an open
// transaction.
func (r *unitRepo) Create(ctx context.Context, unit *models.Unit) (bool, error) {
	query := `
		INSERT INTO units (unit_number, block_id, unit_type_id, created_by, created_date, last_modified_by, last_modified_date)
		VALUES ($1, $2, $3, $4, NOW(), $4, NOW())
		ON CONFLICT (unit_number, block_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, unit.UnitNumber, unit.BlockID, unit.UnitTypeID, unit.CreatedBy)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *unitRepo) ExistsByNumberAndBlock(ctx context.Context, unitNumber string, blockID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM units WHERE unit_number = $1 AND block_id = $2 AND ` + liveFilter + `)`
	if err := r.db.QueryRow(ctx, query, unitNumber, blockID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListRowsForProject runs the flattened unit/block/type/project join and
// returns the raw column values untyped; the projection layer decodes them.
func (r *unitRepo) ListRowsForProject(ctx context.Context, projectID int64, limit, offset int) ([][]any, error) {
	query := `
		SELECT u.id, u.unit_number, b.id, b.name, t.id, t.name, p.id, p.name, u.created_by, u.created_date
		FROM units u
		JOIN blocks b ON b.id = u.block_id
		JOIN unit_types t ON t.id = u.unit_type_id
		JOIN projects p ON p.id = b.project_id
		WHERE p.id = $1 AND (u.deleted_on IS NULL OR u.deleted_on > NOW())
		ORDER BY b.name ASC, length(u.unit_number) ASC, u.unit_number ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var raw [][]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		raw = append(raw, values)
	}
	return raw, rows.Err()
}

func (r *unitRepo) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*)
		FROM units u
		JOIN blocks b ON b.id = u.block_id
		WHERE b.project_id = $1 AND (u.deleted_on IS NULL OR u.deleted_on > NOW())
	`
	if err := r.db.QueryRow(ctx, query, projectID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
