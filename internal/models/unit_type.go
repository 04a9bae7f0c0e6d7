package models

import "time"

// UnitType is a global catalog entry ("5 bed", "studio"). Uniqueness is by
// name alone, independent of project.
type UnitType struct {
	ID               int64      `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	CreatedBy        *string    `json:"created_by,omitempty" db:"created_by"`
	CreatedDate      *time.Time `json:"created_date,omitempty" db:"created_date"`
	LastModifiedBy   *string    `json:"last_modified_by,omitempty" db:"last_modified_by"`
	LastModifiedDate *time.Time `json:"last_modified_date,omitempty" db:"last_modified_date"`
	DeletedOn        *time.Time `json:"deleted_on,omitempty" db:"deleted_on"`
}
