package services

import (
	"context"
	"testing"

	"estatehub/internal/common"
	"estatehub/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProjectAuthorizerTestSuite struct {
	suite.Suite
	sellerRepo  *MockSellerRepository
	projectRepo *MockProjectRepository
	authorizer  ProjectAuthorizer
	ctx         context.Context

	project *models.Project
	owner   *models.Seller
	admin   common.Principal
	seller  common.Principal
}

func (suite *ProjectAuthorizerTestSuite) SetupTest() {
	suite.sellerRepo = &MockSellerRepository{}
	suite.projectRepo = &MockProjectRepository{}
	suite.authorizer = NewProjectAuthorizer(suite.sellerRepo, suite.projectRepo)
	suite.ctx = context.Background()

	suite.project = &models.Project{ID: 42, Name: "Sunrise Gardens", SellerID: 7}
	suite.owner = &models.Seller{ID: 7, PhoneNumber: "+15550001111", Status: models.SellerActive}
	suite.admin = common.Principal{Identity: "admin@hq", Role: common.RoleAdmin}
	suite.seller = common.Principal{Identity: "+15550001111", Role: common.RoleSeller}
}

func TestProjectAuthorizerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectAuthorizerTestSuite))
}

func (suite *ProjectAuthorizerTestSuite) TestAuthorize_AdminBypassesLookup() {
	seller, err := suite.authorizer.Authorize(suite.ctx, suite.project, suite.admin)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), seller)
	suite.sellerRepo.AssertNotCalled(suite.T(), "GetActiveByPhone", mock.Anything, mock.Anything)
}

func (suite *ProjectAuthorizerTestSuite) TestAuthorize_OwnerAllowed() {
	suite.sellerRepo.On("GetActiveByPhone", suite.ctx, "+15550001111").Return(suite.owner, nil)

	seller, err := suite.authorizer.Authorize(suite.ctx, suite.project, suite.seller)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.owner, seller)
}

func (suite *ProjectAuthorizerTestSuite) TestAuthorize_UnknownSeller() {
	suite.sellerRepo.On("GetActiveByPhone", suite.ctx, "+15550001111").Return(nil, pgx.ErrNoRows)

	seller, err := suite.authorizer.Authorize(suite.ctx, suite.project, suite.seller)
	assert.Nil(suite.T(), seller)
	assert.EqualError(suite.T(), err, "Seller not found with phone number: +15550001111")
	assert.Equal(suite.T(), common.KindNotFound, common.KindOf(err))
}

func (suite *ProjectAuthorizerTestSuite) TestAuthorize_NonOwnerDenied() {
	other := &models.Seller{ID: 8, PhoneNumber: "+15550001111", Status: models.SellerActive}
	suite.sellerRepo.On("GetActiveByPhone", suite.ctx, "+15550001111").Return(other, nil)

	seller, err := suite.authorizer.Authorize(suite.ctx, suite.project, suite.seller)
	assert.Nil(suite.T(), seller)
	assert.EqualError(suite.T(), err, "Seller does not own project with ID: 42")
	assert.Equal(suite.T(), common.KindAccessDenied, common.KindOf(err))
}

func (suite *ProjectAuthorizerTestSuite) TestAuthorize_StoreError() {
	suite.sellerRepo.On("GetActiveByPhone", suite.ctx, "+15550001111").Return(nil, assert.AnError)

	_, err := suite.authorizer.Authorize(suite.ctx, suite.project, suite.seller)
	assert.Equal(suite.T(), common.KindInternal, common.KindOf(err))
}

func (suite *ProjectAuthorizerTestSuite) TestAuthorizeProjectID_AdminBypassesLookup() {
	seller, err := suite.authorizer.AuthorizeProjectID(suite.ctx, suite.project.ID, suite.admin)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), seller)
	suite.projectRepo.AssertNotCalled(suite.T(), "IsOwnedBySeller", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectAuthorizerTestSuite) TestAuthorizeProjectID_OwnerAllowed() {
	suite.sellerRepo.On("GetActiveByPhone", suite.ctx, "+15550001111").Return(suite.owner, nil)
	suite.projectRepo.On("IsOwnedBySeller", suite.ctx, suite.project.ID, suite.owner.ID).Return(true, nil)

	seller, err := suite.authorizer.AuthorizeProjectID(suite.ctx, suite.project.ID, suite.seller)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.owner, seller)
}

func (suite *ProjectAuthorizerTestSuite) TestAuthorizeProjectID_NonOwnerDenied() {
	suite.sellerRepo.On("GetActiveByPhone", suite.ctx, "+15550001111").Return(suite.owner, nil)
	suite.projectRepo.On("IsOwnedBySeller", suite.ctx, suite.project.ID, suite.owner.ID).Return(false, nil)

	seller, err := suite.authorizer.AuthorizeProjectID(suite.ctx, suite.project.ID, suite.seller)
	assert.Nil(suite.T(), seller)
	assert.Equal(suite.T(), common.KindAccessDenied, common.KindOf(err))
}
