package repositories

import (
	"context"

	"estatehub/internal/models"
	"estatehub/internal/projection"
)

type SellerRepository interface {
	Create(ctx context.Context, seller *models.Seller) error
	GetByID(ctx context.Context, id int64) (*models.Seller, error)
	GetActiveByPhone(ctx context.Context, phoneNumber string) (*models.Seller, error)
	Update(ctx context.Context, seller *models.Seller) error
	SoftDelete(ctx context.Context, id int64, deletedBy string) error
	List(ctx context.Context, limit, offset int) ([]*models.Seller, error)
	ListWithProjects(ctx context.Context, limit, offset int) ([]*projection.SellerRecord, error)
	ReactivateExpiredDisables(ctx context.Context) (int64, error)
}

type sellerRepo struct {
	db DB
}

func NewSellerRepo(db DB) SellerRepository {
	return &sellerRepo{db: db}
}

const sellerColumns = "id, first_name, last_name, email, phone_number, status, is_union_head, disabled_until, created_by, created_date, last_modified_by, last_modified_date, deleted_on"

func (r *sellerRepo) Create(ctx context.Context, seller *models.Seller) error {
	query := `
		INSERT INTO sellers (first_name, last_name, email, phone_number, status, is_union_head, disabled_until, created_by, created_date, last_modified_by, last_modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), $8, NOW())
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, seller.FirstName, seller.LastName, seller.Email, seller.PhoneNumber,
		seller.Status, seller.IsUnionHead, seller.DisabledUntil, seller.CreatedBy).Scan(&seller.ID)
}

func (r *sellerRepo) GetByID(ctx context.Context, id int64) (*models.Seller, error) {
	seller := &models.Seller{}
	query := `
		SELECT ` + sellerColumns + `
		FROM sellers
		WHERE id = $1 AND ` + liveFilter + `
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&seller.ID, &seller.FirstName, &seller.LastName, &seller.Email,
		&seller.PhoneNumber, &seller.Status, &seller.IsUnionHead, &seller.DisabledUntil, &seller.CreatedBy,
		&seller.CreatedDate, &seller.LastModifiedBy, &seller.LastModifiedDate, &seller.DeletedOn)
	if err != nil {
		return nil, err
	}
	return seller, nil
}

// GetActiveByPhone resolves a live, ACTIVE seller by the phone number used as
// login. pgx.ErrNoRows when no such seller exists.
func (r *sellerRepo) GetActiveByPhone(ctx context.Context, phoneNumber string) (*models.Seller, error) {
	seller := &models.Seller{}
	query := `
		SELECT ` + sellerColumns + `
		FROM sellers
		WHERE phone_number = $1 AND status = 'ACTIVE' AND ` + liveFilter + `
	`
	err := r.db.QueryRow(ctx, query, phoneNumber).Scan(&seller.ID, &seller.FirstName, &seller.LastName, &seller.Email,
		&seller.PhoneNumber, &seller.Status, &seller.IsUnionHead, &seller.DisabledUntil, &seller.CreatedBy,
		&seller.CreatedDate, &seller.LastModifiedBy, &seller.LastModifiedDate, &seller.DeletedOn)
	if err != nil {
		return nil, err
	}
	return seller, nil
}

func (r *sellerRepo) Update(ctx context.Context, seller *models.Seller) error {
	query := `
		UPDATE sellers
		SET first_name = $1, last_name = $2, email = $3, phone_number = $4, status = $5, is_union_head = $6, disabled_until = $7, last_modified_by = $8, last_modified_date = NOW()
		WHERE id = $9 AND ` + liveFilter + `
	`
	_, err := r.db.Exec(ctx, query, seller.FirstName, seller.LastName, seller.Email, seller.PhoneNumber,
		seller.Status, seller.IsUnionHead, seller.DisabledUntil, seller.LastModifiedBy, seller.ID)
	return err
}

func (r *sellerRepo) SoftDelete(ctx context.Context, id int64, deletedBy string) error {
	query := `
		UPDATE sellers
		SET deleted_on = NOW(), last_modified_by = $1, last_modified_date = NOW()
		WHERE id = $2 AND ` + liveFilter + `
	`
	_, err := r.db.Exec(ctx, query, deletedBy, id)
	return err
}

func (r *sellerRepo) List(ctx context.Context, limit, offset int) ([]*models.Seller, error) {
	query := `
		SELECT ` + sellerColumns + `
		FROM sellers
		WHERE ` + liveFilter + `
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sellers []*models.Seller
	for rows.Next() {
		seller := &models.Seller{}
		if err := rows.Scan(&seller.ID, &seller.FirstName, &seller.LastName, &seller.Email,
			&seller.PhoneNumber, &seller.Status, &seller.IsUnionHead, &seller.DisabledUntil, &seller.CreatedBy,
			&seller.CreatedDate, &seller.LastModifiedBy, &seller.LastModifiedDate, &seller.DeletedOn); err != nil {
			return nil, err
		}
		sellers = append(sellers, seller)
	}
	return sellers, rows.Err()
}

// ListWithProjects runs the native seller/project join and maps each raw row
// through the defensive projector. The project columns come from a LEFT JOIN
// and may be null.
func (r *sellerRepo) ListWithProjects(ctx context.Context, limit, offset int) ([]*projection.SellerRecord, error) {
	query := `
		SELECT s.id, s.first_name, s.last_name, s.email, s.phone_number, s.created_by, s.created_date, s.last_modified_by, s.last_modified_date, s.deleted_on, s.is_union_head, p.id, p.name, p.description
		FROM sellers s
		LEFT JOIN projects p ON p.seller_id = s.id AND (p.deleted_on IS NULL OR p.deleted_on > NOW())
		WHERE (s.deleted_on IS NULL OR s.deleted_on > NOW())
		ORDER BY s.id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*projection.SellerRecord
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		record, err := projection.SellerRow(values)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ReactivateExpiredDisables flips temporarily disabled sellers back to ACTIVE
// once their disabled_until has passed. Returns the number of rows updated.
func (r *sellerRepo) ReactivateExpiredDisables(ctx context.Context) (int64, error) {
	query := `
		UPDATE sellers
		SET status = 'ACTIVE', disabled_until = NULL, last_modified_date = NOW()
		WHERE status = 'DISABLED_TEMPORARILY' AND disabled_until IS NOT NULL AND disabled_until <= NOW() AND ` + liveFilter + `
	`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
