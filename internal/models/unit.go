package models

import "time"

// Unit is a leaf record: one numbered unit inside a block. The store
// enforces uniqueness of (unit_number, block_id).
type Unit struct {
	ID               int64      `json:"id" db:"id"`
	UnitNumber       string     `json:"unit_number" db:"unit_number"`
	BlockID          int64      `json:"block_id" db:"block_id"`
	UnitTypeID       int64      `json:"unit_type_id" db:"unit_type_id"`
	CreatedBy        *string    `json:"created_by,omitempty" db:"created_by"`
	CreatedDate      *time.Time `json:"created_date,omitempty" db:"created_date"`
	LastModifiedBy   *string    `json:"last_modified_by,omitempty" db:"last_modified_by"`
	LastModifiedDate *time.Time `json:"last_modified_date,omitempty" db:"last_modified_date"`
	DeletedOn        *time.Time `json:"deleted_on,omitempty" db:"deleted_on"`
}

// UnitInfo is the flattened listing row joined across unit, block, unit type
// and project.
type UnitInfo struct {
	UnitID       int64      `json:"unit_id"`
	UnitNumber   string     `json:"unit_number"`
	BlockID      int64      `json:"block_id"`
	BlockName    string     `json:"block_name"`
	UnitTypeID   int64      `json:"unit_type_id"`
	UnitTypeName string     `json:"unit_type_name"`
	ProjectID    int64      `json:"project_id"`
	ProjectName  string     `json:"project_name"`
	CreatedBy    *string    `json:"created_by,omitempty"`
	CreatedDate  *time.Time `json:"created_date,omitempty"`
}
