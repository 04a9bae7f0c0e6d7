package models

import "time"

// Notice is a project-scoped announcement with an optional expiry and an
// optional attachment in object storage.
type Notice struct {
	ID               int64      `json:"id" db:"id"`
	ProjectID        int64      `json:"project_id" db:"project_id"`
	Title            string     `json:"title" db:"title"`
	Body             *string    `json:"body,omitempty" db:"body"`
	ExpiresOn        *time.Time `json:"expires_on,omitempty" db:"expires_on"`
	AttachmentKey    *string    `json:"attachment_key,omitempty" db:"attachment_key"`
	CreatedBy        *string    `json:"created_by,omitempty" db:"created_by"`
	CreatedDate      *time.Time `json:"created_date,omitempty" db:"created_date"`
	LastModifiedBy   *string    `json:"last_modified_by,omitempty" db:"last_modified_by"`
	LastModifiedDate *time.Time `json:"last_modified_date,omitempty" db:"last_modified_date"`
	DeletedOn        *time.Time `json:"deleted_on,omitempty" db:"deleted_on"`
}
