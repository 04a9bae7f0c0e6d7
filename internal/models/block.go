package models

import "time"

// Block groups units inside a project. Names are unique per project, not
// globally.
type Block struct {
	ID               int64      `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	ProjectID        int64      `json:"project_id" db:"project_id"`
	CreatedBy        *string    `json:"created_by,omitempty" db:"created_by"`
	CreatedDate      *time.Time `json:"created_date,omitempty" db:"created_date"`
	LastModifiedBy   *string    `json:"last_modified_by,omitempty" db:"last_modified_by"`
	LastModifiedDate *time.Time `json:"last_modified_date,omitempty" db:"last_modified_date"`
	DeletedOn        *time.Time `json:"deleted_on,omitempty" db:"deleted_on"`
}
