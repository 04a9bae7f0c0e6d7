package repositories

import (
	"context"

	"estatehub/internal/models"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, projectID, id int64) (*models.Complaint, error)
	Update(ctx context.Context, complaint *models.Complaint) error
	SoftDelete(ctx context.Context, projectID, id int64, deletedBy string) error
	ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]*models.Complaint, error)
	CountByProject(ctx context.Context, projectID int64) (int64, error)
}

type complaintRepo struct {
	db DB
}

func NewComplaintRepo(db DB) ComplaintRepository {
	return &complaintRepo{db: db}
}

const complaintColumns = "id, project_id, title, body, status, photo_key, created_by, created_date, last_modified_by, last_modified_date, deleted_on"

func (r *complaintRepo) Create(ctx context.Context, complaint *models.Complaint) error {
	query := `
		INSERT INTO complaints (project_id, title, body, status, photo_key, created_by, created_date, last_modified_by, last_modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), $6, NOW())
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, complaint.ProjectID, complaint.Title, complaint.Body,
		complaint.Status, complaint.PhotoKey, complaint.CreatedBy).Scan(&complaint.ID)
}

func (r *complaintRepo) GetByID(ctx context.Context, projectID, id int64) (*models.Complaint, error) {
	complaint := &models.Complaint{}
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints
		WHERE project_id = $1 AND id = $2 AND ` + liveFilter + `
	`
	err := r.db.QueryRow(ctx, query, projectID, id).Scan(&complaint.ID, &complaint.ProjectID, &complaint.Title,
		&complaint.Body, &complaint.Status, &complaint.PhotoKey, &complaint.CreatedBy, &complaint.CreatedDate,
		&complaint.LastModifiedBy, &complaint.LastModifiedDate, &complaint.DeletedOn)
	if err != nil {
		return nil, err
	}
	return complaint, nil
}

func (r *complaintRepo) Update(ctx context.Context, complaint *models.Complaint) error {
	query := `
		UPDATE complaints
		SET title = $1, body = $2, status = $3, photo_key = $4, last_modified_by = $5, last_modified_date = NOW()
		WHERE project_id = $6 AND id = $7 AND ` + liveFilter + `
	`
	_, err := r.db.Exec(ctx, query, complaint.Title, complaint.Body, complaint.Status,
		complaint.PhotoKey, complaint.LastModifiedBy, complaint.ProjectID, complaint.ID)
	return err
}

func (r *complaintRepo) SoftDelete(ctx context.Context, projectID, id int64, deletedBy string) error {
	query := `
		UPDATE complaints
		SET deleted_on = NOW(), last_modified_by = $1, last_modified_date = NOW()
		WHERE project_id = $2 AND id = $3 AND ` + liveFilter + `
	`
	_, err := r.db.Exec(ctx, query, deletedBy, projectID, id)
	return err
}

func (r *complaintRepo) ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]*models.Complaint, error) {
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints
		WHERE project_id = $1 AND ` + liveFilter + `
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		complaint := &models.Complaint{}
		if err := rows.Scan(&complaint.ID, &complaint.ProjectID, &complaint.Title,
			&complaint.Body, &complaint.Status, &complaint.PhotoKey, &complaint.CreatedBy, &complaint.CreatedDate,
			&complaint.LastModifiedBy, &complaint.LastModifiedDate, &complaint.DeletedOn); err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}
	return complaints, rows.Err()
}

func (r *complaintRepo) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM complaints WHERE project_id = $1 AND ` + liveFilter
	if err := r.db.QueryRow(ctx, query, projectID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
