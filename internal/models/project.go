package models

import "time"

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "ACTIVE"
	ProjectInactive ProjectStatus = "INACTIVE"
)

// Project is the top-level subdivision a seller administers. Blocks and
// units hang off it.
type Project struct {
	ID               int64         `json:"id" db:"id"`
	Name             string        `json:"name" db:"name"`
	Description      *string       `json:"description,omitempty" db:"description"`
	Status           ProjectStatus `json:"status" db:"status"`
	UnitCount        int           `json:"unit_count" db:"unit_count"`
	SellerID         int64         `json:"seller_id" db:"seller_id"`
	CreatedBy        *string       `json:"created_by,omitempty" db:"created_by"`
	CreatedDate      *time.Time    `json:"created_date,omitempty" db:"created_date"`
	LastModifiedBy   *string       `json:"last_modified_by,omitempty" db:"last_modified_by"`
	LastModifiedDate *time.Time    `json:"last_modified_date,omitempty" db:"last_modified_date"`
	DeletedOn        *time.Time    `json:"deleted_on,omitempty" db:"deleted_on"`
}
