package models

import "time"

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "OPEN"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
)

// Complaint is an auxiliary record filed against a project, optionally with
// a photo stored in object storage (PhotoKey is the object key, not a URL).
type Complaint struct {
	ID               int64           `json:"id" db:"id"`
	ProjectID        int64           `json:"project_id" db:"project_id"`
	Title            string          `json:"title" db:"title"`
	Body             *string         `json:"body,omitempty" db:"body"`
	Status           ComplaintStatus `json:"status" db:"status"`
	PhotoKey         *string         `json:"photo_key,omitempty" db:"photo_key"`
	CreatedBy        *string         `json:"created_by,omitempty" db:"created_by"`
	CreatedDate      *time.Time      `json:"created_date,omitempty" db:"created_date"`
	LastModifiedBy   *string         `json:"last_modified_by,omitempty" db:"last_modified_by"`
	LastModifiedDate *time.Time      `json:"last_modified_date,omitempty" db:"last_modified_date"`
	DeletedOn        *time.Time      `json:"deleted_on,omitempty" db:"deleted_on"`
}
