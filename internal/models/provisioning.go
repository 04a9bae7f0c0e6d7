package models

// UnitRangeSpec is one entry of a bulk provisioning request: a contiguous run
// of unit numbers to create under a named block with a named unit type.
type UnitRangeSpec struct {
	BlockName    string `json:"block" validate:"required"`
	UnitTypeName string `json:"unit_type" validate:"required"`
	Start        int    `json:"start"`
	End          int    `json:"end"`
}

// Count returns the number of unit numbers the range covers.
func (r UnitRangeSpec) Count() int {
	return r.End - r.Start + 1
}

// BulkProvisionResult aggregates the outcome of one bulk provisioning call.
// Duplicate units are reported in Warnings and do not flip Success; only the
// hard validation/authorization failures abort the call before this result
// exists.
type BulkProvisionResult struct {
	Success               bool     `json:"success"`
	Message               string   `json:"message"`
	CreatedBlocks         []string `json:"created_blocks"`
	CreatedUnitTypes      []string `json:"created_unit_types"`
	TotalUnitsCreated     int      `json:"total_units_created"`
	TotalBlocksCreated    int      `json:"total_blocks_created"`
	TotalUnitTypesCreated int      `json:"total_unit_types_created"`
	Warnings              []string `json:"warnings"`
}
