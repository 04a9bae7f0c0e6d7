package repositories

import (
	"context"

	"estatehub/internal/models"

	"github.com/jackc/pgx/v5"
)

type UnitTypeRepository interface {
	WithTx(tx pgx.Tx) UnitTypeRepository
	Create(ctx context.Context, unitType *models.UnitType) error
	GetByID(ctx context.Context, id int64) (*models.UnitType, error)
	GetByName(ctx context.Context, name string) (*models.UnitType, error)
	List(ctx context.Context, limit, offset int) ([]*models.UnitType, error)
}

type unitTypeRepo struct {
	db DB
}

func NewUnitTypeRepo(db DB) UnitTypeRepository {
	return &unitTypeRepo{db: db}
}

func (r *unitTypeRepo) WithTx(tx pgx.Tx) UnitTypeRepository {
	return &unitTypeRepo{db: tx}
}

const unitTypeColumns = "id, name, created_by, created_date, last_modified_by, last_modified_date, deleted_on"

// Create inserts the catalog entry. A concurrent duplicate of the global
// name key makes the statement insert nothing, so Scan reports pgx.ErrNoRows
// without aborting an open transaction; the caller re-reads the winner's row.
func (r *unitTypeRepo) Create(ctx context.Context, unitType *models.UnitType) error {
	query := `
		INSERT INTO unit_types (name, created_by, created_date, last_modified_by, last_modified_date)
		VALUES ($1, $2, NOW(), $2, NOW())
		ON CONFLICT (name) DO NOTHING
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, unitType.Name, unitType.CreatedBy).Scan(&unitType.ID)
}

func (r *unitTypeRepo) GetByID(ctx context.Context, id int64) (*models.UnitType, error) {
	unitType := &models.UnitType{}
	query := `
		SELECT ` + unitTypeColumns + `
		FROM unit_types
		WHERE id = $1 AND ` + liveFilter + `
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&unitType.ID, &unitType.Name, &unitType.CreatedBy,
		&unitType.CreatedDate, &unitType.LastModifiedBy, &unitType.LastModifiedDate, &unitType.DeletedOn)
	if err != nil {
		return nil, err
	}
	return unitType, nil
}

// GetByName resolves a unit type by its global natural key.
func (r *unitTypeRepo) GetByName(ctx context.Context, name string) (*models.UnitType, error) {
	unitType := &models.UnitType{}
	query := `
		SELECT ` + unitTypeColumns + `
		FROM unit_types
		WHERE name = $1 AND ` + liveFilter + `
	`
	err := r.db.QueryRow(ctx, query, name).Scan(&unitType.ID, &unitType.Name, &unitType.CreatedBy,
		&unitType.CreatedDate, &unitType.LastModifiedBy, &unitType.LastModifiedDate, &unitType.DeletedOn)
	if err != nil {
		return nil, err
	}
	return unitType, nil
}

func (r *unitTypeRepo) List(ctx context.Context, limit, offset int) ([]*models.UnitType, error) {
	query := `
		SELECT ` + unitTypeColumns + `
		FROM unit_types
		WHERE ` + liveFilter + `
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unitTypes []*models.UnitType
	for rows.Next() {
		unitType := &models.UnitType{}
		if err := rows.Scan(&unitType.ID, &unitType.Name, &unitType.CreatedBy,
			&unitType.CreatedDate, &unitType.LastModifiedBy, &unitType.LastModifiedDate, &unitType.DeletedOn); err != nil {
			return nil, err
		}
		unitTypes = append(unitTypes, unitType)
	}
	return unitTypes, rows.Err()
}
