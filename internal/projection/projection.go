// Package projection turns native-query result rows (ordered, loosely-typed
// column slices of variable length) into typed records. Every accessor checks
// the row length up front and decodes positionally; a malformed row yields a
// typed error instead of an index fault.
package projection

import (
	"errors"
	"fmt"
	"time"

	"estatehub/internal/models"
)

// ErrNilRow is returned when the row itself is nil.
var ErrNilRow = errors.New("Null row cannot be mapped")

// InsufficientColumnsError reports a row shorter than the fixed column
// prefix a projector requires.
type InsufficientColumnsError struct {
	Minimum  int
	Observed int
}

func (e *InsufficientColumnsError) Error() string {
	return fmt.Sprintf("Row has insufficient columns: expected at least %d but got %d", e.Minimum, e.Observed)
}

// ColumnTypeError reports a column whose wire type does not match the
// projector's expectation.
type ColumnTypeError struct {
	Column   int
	Expected string
	Value    any
}

func (e *ColumnTypeError) Error() string {
	return fmt.Sprintf("Column %d: expected %s but got %T", e.Column, e.Expected, e.Value)
}

// IsProjectionError reports whether err originated in this package's row
// decoding rather than in the store.
func IsProjectionError(err error) bool {
	var insufficient *InsufficientColumnsError
	var columnType *ColumnTypeError
	return errors.Is(err, ErrNilRow) || errors.As(err, &insufficient) || errors.As(err, &columnType)
}

const (
	sellerRowMinColumns = 11
	unitRowColumns      = 10
)

// ProjectSummary is the optional nested project sub-record of a seller row.
type ProjectSummary struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SellerRecord is the typed projection of a seller join row.
type SellerRecord struct {
	ID               int64           `json:"id"`
	FirstName        *string         `json:"first_name,omitempty"`
	LastName         *string         `json:"last_name,omitempty"`
	Email            *string         `json:"email,omitempty"`
	PhoneNumber      *string         `json:"phone_number,omitempty"`
	CreatedBy        *string         `json:"created_by,omitempty"`
	CreatedDate      *time.Time      `json:"created_date,omitempty"`
	LastModifiedBy   *string         `json:"last_modified_by,omitempty"`
	LastModifiedDate *time.Time      `json:"last_modified_date,omitempty"`
	DeletedOn        *time.Time      `json:"deleted_on,omitempty"`
	IsUnionHead      bool            `json:"is_union_head"`
	Project          *ProjectSummary `json:"project,omitempty"`
}

// SellerRow maps a seller join row. Columns 0-10 are fixed: id, first name,
// last name, email, phone number, created by, created date, last modified by,
// last modified date, deleted on, union-head flag. Columns 11-13 (project id,
// name, description) are optional; a null project id means no nested project
// regardless of trailing columns.
func SellerRow(row []any) (*SellerRecord, error) {
	if row == nil {
		return nil, ErrNilRow
	}
	if len(row) < sellerRowMinColumns {
		return nil, &InsufficientColumnsError{Minimum: sellerRowMinColumns, Observed: len(row)}
	}

	rec := &SellerRecord{}
	var err error
	if rec.ID, err = int64Column(row, 0); err != nil {
		return nil, err
	}
	if rec.FirstName, err = stringColumn(row, 1); err != nil {
		return nil, err
	}
	if rec.LastName, err = stringColumn(row, 2); err != nil {
		return nil, err
	}
	if rec.Email, err = stringColumn(row, 3); err != nil {
		return nil, err
	}
	if rec.PhoneNumber, err = stringColumn(row, 4); err != nil {
		return nil, err
	}
	if rec.CreatedBy, err = stringColumn(row, 5); err != nil {
		return nil, err
	}
	if rec.CreatedDate, err = timeColumn(row, 6); err != nil {
		return nil, err
	}
	if rec.LastModifiedBy, err = stringColumn(row, 7); err != nil {
		return nil, err
	}
	if rec.LastModifiedDate, err = timeColumn(row, 8); err != nil {
		return nil, err
	}
	if rec.DeletedOn, err = timeColumn(row, 9); err != nil {
		return nil, err
	}
	if rec.IsUnionHead, err = boolColumn(row, 10); err != nil {
		return nil, err
	}

	if len(row) > 11 && row[11] != nil {
		project := &ProjectSummary{}
		if project.ID, err = int64Column(row, 11); err != nil {
			return nil, err
		}
		if len(row) > 12 {
			if project.Name, err = stringColumn(row, 12); err != nil {
				return nil, err
			}
		}
		if len(row) > 13 {
			if project.Description, err = stringColumn(row, 13); err != nil {
				return nil, err
			}
		}
		rec.Project = project
	}

	return rec, nil
}

// UnitInfoRow maps a flattened unit listing row: unit id, unit number, block
// id, block name, unit type id, unit type name, project id, project name,
// created by, created date.
func UnitInfoRow(row []any) (*models.UnitInfo, error) {
	if row == nil {
		return nil, ErrNilRow
	}
	if len(row) < unitRowColumns {
		return nil, &InsufficientColumnsError{Minimum: unitRowColumns, Observed: len(row)}
	}

	info := &models.UnitInfo{}
	var err error
	if info.UnitID, err = int64Column(row, 0); err != nil {
		return nil, err
	}
	unitNumber, err := stringColumn(row, 1)
	if err != nil {
		return nil, err
	}
	if unitNumber != nil {
		info.UnitNumber = *unitNumber
	}
	if info.BlockID, err = int64Column(row, 2); err != nil {
		return nil, err
	}
	blockName, err := stringColumn(row, 3)
	if err != nil {
		return nil, err
	}
	if blockName != nil {
		info.BlockName = *blockName
	}
	if info.UnitTypeID, err = int64Column(row, 4); err != nil {
		return nil, err
	}
	typeName, err := stringColumn(row, 5)
	if err != nil {
		return nil, err
	}
	if typeName != nil {
		info.UnitTypeName = *typeName
	}
	if info.ProjectID, err = int64Column(row, 6); err != nil {
		return nil, err
	}
	projectName, err := stringColumn(row, 7)
	if err != nil {
		return nil, err
	}
	if projectName != nil {
		info.ProjectName = *projectName
	}
	if info.CreatedBy, err = stringColumn(row, 8); err != nil {
		return nil, err
	}
	if info.CreatedDate, err = timeColumn(row, 9); err != nil {
		return nil, err
	}

	return info, nil
}

func int64Column(row []any, idx int) (int64, error) {
	switch v := row[idx].(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	default:
		return 0, &ColumnTypeError{Column: idx, Expected: "integer", Value: row[idx]}
	}
}

func stringColumn(row []any, idx int) (*string, error) {
	if row[idx] == nil {
		return nil, nil
	}
	s, ok := row[idx].(string)
	if !ok {
		return nil, &ColumnTypeError{Column: idx, Expected: "string", Value: row[idx]}
	}
	return &s, nil
}

// timeColumn accepts the two timestamp wire shapes native queries produce:
// a decoded time.Time or an RFC 3339 text value. Null passes through as
// absent.
func timeColumn(row []any, idx int) (*time.Time, error) {
	switch v := row[idx].(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, &ColumnTypeError{Column: idx, Expected: "timestamp", Value: row[idx]}
		}
		return &t, nil
	default:
		return nil, &ColumnTypeError{Column: idx, Expected: "timestamp", Value: row[idx]}
	}
}

// boolColumn defaults a null flag to false so the projected record never
// carries an unset flag.
func boolColumn(row []any, idx int) (bool, error) {
	if row[idx] == nil {
		return false, nil
	}
	b, ok := row[idx].(bool)
	if !ok {
		return false, &ColumnTypeError{Column: idx, Expected: "boolean", Value: row[idx]}
	}
	return b, nil
}
