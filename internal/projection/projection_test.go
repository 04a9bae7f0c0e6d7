package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sellerBase() []any {
	created := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	modified := created.Add(48 * time.Hour)
	return []any{
		int64(7),          // id
		"Asha",            // first name
		"Rao",             // last name
		"asha@example.in", // email
		"+15550001111",    // phone number
		"admin@hq",        // created by
		created,           // created date
		"admin@hq",        // last modified by
		modified,          // last modified date
		nil,               // deleted on
		true,              // union-head flag
	}
}

func TestSellerRow_NilRow(t *testing.T) {
	rec, err := SellerRow(nil)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrNilRow)
	assert.EqualError(t, err, "Null row cannot be mapped")
}

func TestSellerRow_InsufficientColumns(t *testing.T) {
	for _, row := range [][]any{{}, {int64(7)}, sellerBase()[:10]} {
		rec, err := SellerRow(row)
		assert.Nil(t, rec)
		var insufficient *InsufficientColumnsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 11, insufficient.Minimum)
		assert.Equal(t, len(row), insufficient.Observed)
	}
}

func TestSellerRow_FixedColumnsOnly(t *testing.T) {
	rec, err := SellerRow(sellerBase())
	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, "Asha", *rec.FirstName)
	assert.Equal(t, "+15550001111", *rec.PhoneNumber)
	assert.Nil(t, rec.DeletedOn)
	assert.True(t, rec.IsUnionHead)
	assert.Nil(t, rec.Project)
}

func TestSellerRow_NullProjectIDMeansNoProject(t *testing.T) {
	row := append(sellerBase(), nil, "Sunrise Gardens", "desc")
	rec, err := SellerRow(row)
	require.NoError(t, err)
	assert.Nil(t, rec.Project)
}

func TestSellerRow_ProjectWithoutDescription(t *testing.T) {
	row := append(sellerBase(), int64(42), "Sunrise Gardens")
	rec, err := SellerRow(row)
	require.NoError(t, err)
	require.NotNil(t, rec.Project)
	assert.Equal(t, int64(42), rec.Project.ID)
	assert.Equal(t, "Sunrise Gardens", *rec.Project.Name)
	assert.Nil(t, rec.Project.Description)
}

func TestSellerRow_FullProject(t *testing.T) {
	row := append(sellerBase(), int64(42), "Sunrise Gardens", "Gated community off the ring road")
	rec, err := SellerRow(row)
	require.NoError(t, err)
	require.NotNil(t, rec.Project)
	assert.Equal(t, "Gated community off the ring road", *rec.Project.Description)
}

func TestSellerRow_NullFlagDefaultsFalse(t *testing.T) {
	row := sellerBase()
	row[10] = nil
	rec, err := SellerRow(row)
	require.NoError(t, err)
	assert.False(t, rec.IsUnionHead)
}

func TestSellerRow_TimestampAsText(t *testing.T) {
	created := time.Date(2026, 1, 10, 8, 0, 0, 123456000, time.UTC)
	row := sellerBase()
	row[6] = created.Format(time.RFC3339Nano)
	rec, err := SellerRow(row)
	require.NoError(t, err)
	assert.True(t, created.Equal(*rec.CreatedDate))
}

func TestSellerRow_BadTimestampText(t *testing.T) {
	row := sellerBase()
	row[6] = "not-a-timestamp"
	rec, err := SellerRow(row)
	assert.Nil(t, rec)
	var columnType *ColumnTypeError
	require.ErrorAs(t, err, &columnType)
	assert.Equal(t, 6, columnType.Column)
	assert.Equal(t, "timestamp", columnType.Expected)
}

func TestSellerRow_WrongColumnType(t *testing.T) {
	row := sellerBase()
	row[0] = "seven"
	rec, err := SellerRow(row)
	assert.Nil(t, rec)
	var columnType *ColumnTypeError
	require.ErrorAs(t, err, &columnType)
	assert.Equal(t, 0, columnType.Column)
	assert.EqualError(t, err, "Column 0: expected integer but got string")
}

func TestSellerRow_Int32ID(t *testing.T) {
	row := sellerBase()
	row[0] = int32(7)
	rec, err := SellerRow(row)
	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.ID)
}

func unitBase() []any {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return []any{
		int64(1),          // unit id
		"1",               // unit number
		int64(101),        // block id
		"A",               // block name
		int64(201),        // unit type id
		"5 bed",           // unit type name
		int64(42),         // project id
		"Sunrise Gardens", // project name
		"admin@hq",        // created by
		created,           // created date
	}
}

func TestUnitInfoRow_NilRow(t *testing.T) {
	info, err := UnitInfoRow(nil)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, ErrNilRow)
}

func TestUnitInfoRow_InsufficientColumns(t *testing.T) {
	info, err := UnitInfoRow(unitBase()[:9])
	assert.Nil(t, info)
	var insufficient *InsufficientColumnsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 10, insufficient.Minimum)
	assert.Equal(t, 9, insufficient.Observed)
}

func TestUnitInfoRow_CompleteRow(t *testing.T) {
	info, err := UnitInfoRow(unitBase())
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.UnitID)
	assert.Equal(t, "1", info.UnitNumber)
	assert.Equal(t, int64(101), info.BlockID)
	assert.Equal(t, "A", info.BlockName)
	assert.Equal(t, "5 bed", info.UnitTypeName)
	assert.Equal(t, int64(42), info.ProjectID)
	assert.Equal(t, "Sunrise Gardens", info.ProjectName)
	assert.Equal(t, "admin@hq", *info.CreatedBy)
	require.NotNil(t, info.CreatedDate)
}

func TestUnitInfoRow_NullableColumns(t *testing.T) {
	row := unitBase()
	row[8] = nil
	row[9] = nil
	info, err := UnitInfoRow(row)
	require.NoError(t, err)
	assert.Nil(t, info.CreatedBy)
	assert.Nil(t, info.CreatedDate)
}

func TestIsProjectionError(t *testing.T) {
	assert.True(t, IsProjectionError(ErrNilRow))
	assert.True(t, IsProjectionError(&InsufficientColumnsError{Minimum: 10, Observed: 3}))
	assert.True(t, IsProjectionError(&ColumnTypeError{Column: 0, Expected: "integer"}))
	assert.False(t, IsProjectionError(assert.AnError))
}
