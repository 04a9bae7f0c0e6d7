package services

import (
	"context"
	"testing"

	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/projection"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SellerServiceTestSuite struct {
	suite.Suite
	sellerRepo *MockSellerRepository
	cache      *MockCacheService
	service    SellerService
	ctx        context.Context
}

func (suite *SellerServiceTestSuite) SetupTest() {
	suite.sellerRepo = &MockSellerRepository{}
	suite.cache = &MockCacheService{}
	suite.service = NewSellerService(suite.sellerRepo, suite.cache)
	suite.ctx = context.Background()
}

func TestSellerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SellerServiceTestSuite))
}

func (suite *SellerServiceTestSuite) TestCreate_Valid() {
	req := &CreateSellerRequest{
		FirstName:   "Asha",
		LastName:    "Rao",
		Email:       "asha@example.in",
		PhoneNumber: "+15550001111",
		IsUnionHead: true,
	}
	suite.sellerRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.Seller")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Seller).ID = 7
	})

	seller, err := suite.service.Create(suite.ctx, req, "admin@hq")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), seller.ID)
	assert.Equal(suite.T(), models.SellerActive, seller.Status)
	assert.True(suite.T(), seller.IsUnionHead)
	assert.Equal(suite.T(), "admin@hq", *seller.CreatedBy)
}

func (suite *SellerServiceTestSuite) TestCreate_MissingName() {
	req := &CreateSellerRequest{PhoneNumber: "+15550001111"}

	seller, err := suite.service.Create(suite.ctx, req, "admin@hq")
	assert.Nil(suite.T(), seller)
	assert.Equal(suite.T(), common.KindValidation, common.KindOf(err))
	suite.sellerRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *SellerServiceTestSuite) TestCreate_DuplicatePhone() {
	req := &CreateSellerRequest{FirstName: "Asha", LastName: "Rao", PhoneNumber: "+15550001111"}
	suite.sellerRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.Seller")).
		Return(&pgconn.PgError{Code: "23505"})

	seller, err := suite.service.Create(suite.ctx, req, "admin@hq")
	assert.Nil(suite.T(), seller)
	assert.EqualError(suite.T(), err, "Seller with phone number '+15550001111' already exists")
	assert.Equal(suite.T(), common.KindValidation, common.KindOf(err))
}

func (suite *SellerServiceTestSuite) TestGetByID_CacheHit() {
	cached := &models.Seller{ID: 7, FirstName: "Asha"}
	suite.cache.On("GetSeller", suite.ctx, int64(7)).Return(cached, nil)

	seller, err := suite.service.GetByID(suite.ctx, 7)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), cached, seller)
	suite.sellerRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

func (suite *SellerServiceTestSuite) TestGetByID_CacheMissFillsCache() {
	stored := &models.Seller{ID: 7, FirstName: "Asha"}
	suite.cache.On("GetSeller", suite.ctx, int64(7)).Return(nil, nil)
	suite.sellerRepo.On("GetByID", suite.ctx, int64(7)).Return(stored, nil)
	suite.cache.On("SetSeller", suite.ctx, stored, sellerCacheTTL).Return(nil)

	seller, err := suite.service.GetByID(suite.ctx, 7)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), stored, seller)
	suite.cache.AssertCalled(suite.T(), "SetSeller", suite.ctx, stored, sellerCacheTTL)
}

func (suite *SellerServiceTestSuite) TestGetByID_CacheErrorFallsThrough() {
	stored := &models.Seller{ID: 7}
	suite.cache.On("GetSeller", suite.ctx, int64(7)).Return(nil, assert.AnError)
	suite.sellerRepo.On("GetByID", suite.ctx, int64(7)).Return(stored, nil)
	suite.cache.On("SetSeller", suite.ctx, stored, sellerCacheTTL).Return(nil)

	seller, err := suite.service.GetByID(suite.ctx, 7)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), stored, seller)
}

func (suite *SellerServiceTestSuite) TestGetByID_NotFound() {
	suite.cache.On("GetSeller", suite.ctx, int64(99)).Return(nil, nil)
	suite.sellerRepo.On("GetByID", suite.ctx, int64(99)).Return(nil, pgx.ErrNoRows)

	seller, err := suite.service.GetByID(suite.ctx, 99)
	assert.Nil(suite.T(), seller)
	assert.EqualError(suite.T(), err, "Seller not found with ID: 99")
	assert.Equal(suite.T(), common.KindNotFound, common.KindOf(err))
}

func (suite *SellerServiceTestSuite) TestUpdate_InvalidatesCache() {
	existing := &models.Seller{ID: 7, FirstName: "Asha"}
	suite.cache.On("GetSeller", suite.ctx, int64(7)).Return(existing, nil)
	suite.sellerRepo.On("Update", suite.ctx, mock.AnythingOfType("*models.Seller")).Return(nil)
	suite.cache.On("DeleteSeller", suite.ctx, int64(7)).Return(nil)

	updated := &models.Seller{ID: 7, FirstName: "Asha", LastName: "Rao-Iyer"}
	err := suite.service.Update(suite.ctx, updated, "admin@hq")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "admin@hq", *updated.LastModifiedBy)
	suite.cache.AssertCalled(suite.T(), "DeleteSeller", suite.ctx, int64(7))
}

func (suite *SellerServiceTestSuite) TestDelete_InvalidatesCache() {
	suite.sellerRepo.On("SoftDelete", suite.ctx, int64(7), "admin@hq").Return(nil)
	suite.cache.On("DeleteSeller", suite.ctx, int64(7)).Return(nil)

	err := suite.service.Delete(suite.ctx, 7, "admin@hq")
	assert.NoError(suite.T(), err)
}

func (suite *SellerServiceTestSuite) TestListWithProjects_MapsErrorKinds() {
	suite.sellerRepo.On("ListWithProjects", suite.ctx, 10, 0).
		Return(nil, &projection.InsufficientColumnsError{Minimum: 11, Observed: 3}).Once()
	records, err := suite.service.ListWithProjects(suite.ctx, 10, 0)
	assert.Nil(suite.T(), records)
	assert.Equal(suite.T(), common.KindProjection, common.KindOf(err))

	suite.sellerRepo.On("ListWithProjects", suite.ctx, 10, 0).Return(nil, assert.AnError).Once()
	records, err = suite.service.ListWithProjects(suite.ctx, 10, 0)
	assert.Nil(suite.T(), records)
	assert.Equal(suite.T(), common.KindInternal, common.KindOf(err))
}
