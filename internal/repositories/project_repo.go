package repositories

import (
	"context"

	"estatehub/internal/models"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Exists(ctx context.Context, id int64) (bool, error)
	IsOwnedBySeller(ctx context.Context, projectID, sellerID int64) (bool, error)
	Update(ctx context.Context, project *models.Project) error
	SoftDelete(ctx context.Context, id int64, deletedBy string) error
	List(ctx context.Context, limit, offset int) ([]*models.Project, error)
	ListBySeller(ctx context.Context, sellerID int64, limit, offset int) ([]*models.Project, error)
}

type projectRepo struct {
	db DB
}

func NewProjectRepo(db DB) ProjectRepository {
	return &projectRepo{db: db}
}

const projectColumns = "id, name, description, status, unit_count, seller_id, created_by, created_date, last_modified_by, last_modified_date, deleted_on"

func (r *projectRepo) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (name, description, status, unit_count, seller_id, created_by, created_date, last_modified_by, last_modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), $6, NOW())
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, project.Name, project.Description, project.Status,
		project.UnitCount, project.SellerID, project.CreatedBy).Scan(&project.ID)
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	project := &models.Project{}
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1 AND ` + liveFilter + `
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&project.ID, &project.Name, &project.Description,
		&project.Status, &project.UnitCount, &project.SellerID, &project.CreatedBy, &project.CreatedDate,
		&project.LastModifiedBy, &project.LastModifiedDate, &project.DeletedOn)
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (r *projectRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1 AND ` + liveFilter + `)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// IsOwnedBySeller is the dedicated ownership check the listing path uses
// after confirming the project exists.
func (r *projectRepo) IsOwnedBySeller(ctx context.Context, projectID, sellerID int64) (bool, error) {
	var owned bool
	query := `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1 AND seller_id = $2 AND ` + liveFilter + `)`
	if err := r.db.QueryRow(ctx, query, projectID, sellerID).Scan(&owned); err != nil {
		return false, err
	}
	return owned, nil
}

func (r *projectRepo) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET name = $1, description = $2, status = $3, unit_count = $4, last_modified_by = $5, last_modified_date = NOW()
		WHERE id = $6 AND ` + liveFilter + `
	`
	_, err := r.db.Exec(ctx, query, project.Name, project.Description, project.Status,
		project.UnitCount, project.LastModifiedBy, project.ID)
	return err
}

func (r *projectRepo) SoftDelete(ctx context.Context, id int64, deletedBy string) error {
	query := `
		UPDATE projects
		SET deleted_on = NOW(), last_modified_by = $1, last_modified_date = NOW()
		WHERE id = $2 AND ` + liveFilter + `
	`
	_, err := r.db.Exec(ctx, query, deletedBy, id)
	return err
}

func (r *projectRepo) List(ctx context.Context, limit, offset int) ([]*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE ` + liveFilter + `
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`
	return r.queryProjects(ctx, query, limit, offset)
}

func (r *projectRepo) ListBySeller(ctx context.Context, sellerID int64, limit, offset int) ([]*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE seller_id = $1 AND ` + liveFilter + `
		ORDER BY id ASC
		LIMIT $2 OFFSET $3
	`
	return r.queryProjects(ctx, query, sellerID, limit, offset)
}

func (r *projectRepo) queryProjects(ctx context.Context, query string, args ...any) ([]*models.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		if err := rows.Scan(&project.ID, &project.Name, &project.Description,
			&project.Status, &project.UnitCount, &project.SellerID, &project.CreatedBy, &project.CreatedDate,
			&project.LastModifiedBy, &project.LastModifiedDate, &project.DeletedOn); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}
