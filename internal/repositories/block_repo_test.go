package repositories

import (
	"context"
	"testing"
	"time"

	"estatehub/internal/models"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type BlockRepoTestSuite struct {
	suite.Suite
	mockPool pgxmock.PgxPoolIface
	repo     BlockRepository
	ctx      context.Context
}

func (suite *BlockRepoTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mockPool = pool
	suite.repo = NewBlockRepo(pool)
	suite.ctx = context.Background()
}

func (suite *BlockRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mockPool.ExpectationsWereMet())
	suite.mockPool.Close()
}

func TestBlockRepoTestSuite(t *testing.T) {
	suite.Run(t, new(BlockRepoTestSuite))
}

func (suite *BlockRepoTestSuite) TestCreate_AssignsGeneratedID() {
	createdBy := "admin@hq"
	block := &models.Block{Name: "A", ProjectID: 42, CreatedBy: &createdBy}

	suite.mockPool.ExpectQuery("INSERT INTO blocks").
		WithArgs("A", int64(42), &createdBy).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(101)))

	err := suite.repo.Create(suite.ctx, block)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(101), block.ID)
}

func (suite *BlockRepoTestSuite) TestCreate_ConflictReturnsNoRows() {
	block := &models.Block{Name: "A", ProjectID: 42}

	// ON CONFLICT DO NOTHING suppresses the RETURNING row, so the caller
	// observes pgx.ErrNoRows rather than an error that would abort an open
	// transaction.
	suite.mockPool.ExpectQuery("INSERT INTO blocks").
		WithArgs("A", int64(42), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	err := suite.repo.Create(suite.ctx, block)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func (suite *BlockRepoTestSuite) TestGetByNameAndProject_Found() {
	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	createdBy := "admin@hq"
	rows := pgxmock.NewRows([]string{"id", "name", "project_id", "created_by", "created_date", "last_modified_by", "last_modified_date", "deleted_on"}).
		AddRow(int64(101), "A", int64(42), &createdBy, &created, &createdBy, &created, (*time.Time)(nil))

	suite.mockPool.ExpectQuery("SELECT (.+) FROM blocks").
		WithArgs("A", int64(42)).
		WillReturnRows(rows)

	block, err := suite.repo.GetByNameAndProject(suite.ctx, "A", 42)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(101), block.ID)
	assert.Equal(suite.T(), "A", block.Name)
	assert.Equal(suite.T(), int64(42), block.ProjectID)
	assert.Nil(suite.T(), block.DeletedOn)
}

func (suite *BlockRepoTestSuite) TestGetByNameAndProject_NoRows() {
	suite.mockPool.ExpectQuery("SELECT (.+) FROM blocks").
		WithArgs("Z", int64(42)).
		WillReturnError(pgx.ErrNoRows)

	block, err := suite.repo.GetByNameAndProject(suite.ctx, "Z", 42)
	assert.Nil(suite.T(), block)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func (suite *BlockRepoTestSuite) TestListByProject() {
	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "name", "project_id", "created_by", "created_date", "last_modified_by", "last_modified_date", "deleted_on"}).
		AddRow(int64(101), "A", int64(42), (*string)(nil), &created, (*string)(nil), &created, (*time.Time)(nil)).
		AddRow(int64(102), "B", int64(42), (*string)(nil), &created, (*string)(nil), &created, (*time.Time)(nil))

	suite.mockPool.ExpectQuery("SELECT (.+) FROM blocks").
		WithArgs(int64(42), 20, 0).
		WillReturnRows(rows)

	blocks, err := suite.repo.ListByProject(suite.ctx, 42, 20, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), blocks, 2)
	assert.Equal(suite.T(), "A", blocks[0].Name)
	assert.Equal(suite.T(), "B", blocks[1].Name)
}
