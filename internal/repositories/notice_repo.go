package repositories

import (
	"context"

	"estatehub/internal/models"
)

type NoticeRepository interface {
	Create(ctx context.Context, notice *models.Notice) error
	GetByID(ctx context.Context, projectID, id int64) (*models.Notice, error)
	Update(ctx context.Context, notice *models.Notice) error
	SoftDelete(ctx context.Context, projectID, id int64, deletedBy string) error
	ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]*models.Notice, error)
	SoftDeleteExpired(ctx context.Context) (int64, error)
}

type noticeRepo struct {
	db DB
}

func NewNoticeRepo(db DB) NoticeRepository {
	return &noticeRepo{db: db}
}

const noticeColumns = "id, project_id, title, body, expires_on, attachment_key, created_by, created_date, last_modified_by, last_modified_date, deleted_on"

func (r *noticeRepo) Create(ctx context.Context, notice *models.Notice) error {
	query := `
		INSERT INTO notices (project_id, title, body, expires_on, attachment_key, created_by, created_date, last_modified_by, last_modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), $6, NOW())
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, notice.ProjectID, notice.Title, notice.Body,
		notice.ExpiresOn, notice.AttachmentKey, notice.CreatedBy).Scan(&notice.ID)
}

func (r *noticeRepo) GetByID(ctx context.Context, projectID, id int64) (*models.Notice, error) {
	notice := &models.Notice{}
	query := `
		SELECT ` + noticeColumns + `
		FROM notices
		WHERE project_id = $1 AND id = $2 AND ` + liveFilter + `
	`
	err := r.db.QueryRow(ctx, query, projectID, id).Scan(&notice.ID, &notice.ProjectID, &notice.Title,
		&notice.Body, &notice.ExpiresOn, &notice.AttachmentKey, &notice.CreatedBy, &notice.CreatedDate,
		&notice.LastModifiedBy, &notice.LastModifiedDate, &notice.DeletedOn)
	if err != nil {
		return nil, err
	}
	return notice, nil
}

func (r *noticeRepo) Update(ctx context.Context, notice *models.Notice) error {
	query := `
		UPDATE notices
		SET title = $1, body = $2, expires_on = $3, attachment_key = $4, last_modified_by = $5, last_modified_date = NOW()
		WHERE project_id = $6 AND id = $7 AND ` + liveFilter + `
	`
	_, err := r.db.Exec(ctx, query, notice.Title, notice.Body, notice.ExpiresOn,
		notice.AttachmentKey, notice.LastModifiedBy, notice.ProjectID, notice.ID)
	return err
}

func (r *noticeRepo) SoftDelete(ctx context.Context, projectID, id int64, deletedBy string) error {
	query := `
		UPDATE notices
		SET deleted_on = NOW(), last_modified_by = $1, last_modified_date = NOW()
		WHERE project_id = $2 AND id = $3 AND ` + liveFilter + `
	`
	_, err := r.db.Exec(ctx, query, deletedBy, projectID, id)
	return err
}

func (r *noticeRepo) ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]*models.Notice, error) {
	query := `
		SELECT ` + noticeColumns + `
		FROM notices
		WHERE project_id = $1 AND ` + liveFilter + `
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []*models.Notice
	for rows.Next() {
		notice := &models.Notice{}
		if err := rows.Scan(&notice.ID, &notice.ProjectID, &notice.Title,
			&notice.Body, &notice.ExpiresOn, &notice.AttachmentKey, &notice.CreatedBy, &notice.CreatedDate,
			&notice.LastModifiedBy, &notice.LastModifiedDate, &notice.DeletedOn); err != nil {
			return nil, err
		}
		notices = append(notices, notice)
	}
	return notices, rows.Err()
}

// SoftDeleteExpired retires notices whose expires_on has passed. Run by the
// background sweep.
func (r *noticeRepo) SoftDeleteExpired(ctx context.Context) (int64, error) {
	query := `
		UPDATE notices
		SET deleted_on = NOW(), last_modified_date = NOW()
		WHERE expires_on IS NOT NULL AND expires_on <= NOW() AND ` + liveFilter + `
	`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
