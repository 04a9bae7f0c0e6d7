package services

import (
	"context"
	"io"
	"time"

	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/projection"
	"estatehub/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	args := m.Called(ctx, seller)
	return args.Error(0)
}

func (m *MockSellerRepository) GetByID(ctx context.Context, id int64) (*models.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerRepository) GetActiveByPhone(ctx context.Context, phoneNumber string) (*models.Seller, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerRepository) Update(ctx context.Context, seller *models.Seller) error {
	args := m.Called(ctx, seller)
	return args.Error(0)
}

func (m *MockSellerRepository) SoftDelete(ctx context.Context, id int64, deletedBy string) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

func (m *MockSellerRepository) List(ctx context.Context, limit, offset int) ([]*models.Seller, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Seller), args.Error(1)
}

func (m *MockSellerRepository) ListWithProjects(ctx context.Context, limit, offset int) ([]*projection.SellerRecord, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*projection.SellerRecord), args.Error(1)
}

func (m *MockSellerRepository) ReactivateExpiredDisables(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) IsOwnedBySeller(ctx context.Context, projectID, sellerID int64) (bool, error) {
	args := m.Called(ctx, projectID, sellerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) SoftDelete(ctx context.Context, id int64, deletedBy string) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

func (m *MockProjectRepository) List(ctx context.Context, limit, offset int) ([]*models.Project, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

func (m *MockProjectRepository) ListBySeller(ctx context.Context, sellerID int64, limit, offset int) ([]*models.Project, error) {
	args := m.Called(ctx, sellerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

type MockBlockRepository struct {
	mock.Mock
}

func (m *MockBlockRepository) WithTx(tx pgx.Tx) repositories.BlockRepository {
	return m
}

func (m *MockBlockRepository) Create(ctx context.Context, block *models.Block) error {
	args := m.Called(ctx, block)
	return args.Error(0)
}

func (m *MockBlockRepository) GetByID(ctx context.Context, id int64) (*models.Block, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Block), args.Error(1)
}

func (m *MockBlockRepository) GetByNameAndProject(ctx context.Context, name string, projectID int64) (*models.Block, error) {
	args := m.Called(ctx, name, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Block), args.Error(1)
}

func (m *MockBlockRepository) ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]*models.Block, error) {
	args := m.Called(ctx, projectID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Block), args.Error(1)
}

type MockUnitTypeRepository struct {
	mock.Mock
}

func (m *MockUnitTypeRepository) WithTx(tx pgx.Tx) repositories.UnitTypeRepository {
	return m
}

func (m *MockUnitTypeRepository) Create(ctx context.Context, unitType *models.UnitType) error {
	args := m.Called(ctx, unitType)
	return args.Error(0)
}

func (m *MockUnitTypeRepository) GetByID(ctx context.Context, id int64) (*models.UnitType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UnitType), args.Error(1)
}

func (m *MockUnitTypeRepository) GetByName(ctx context.Context, name string) (*models.UnitType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UnitType), args.Error(1)
}

func (m *MockUnitTypeRepository) List(ctx context.Context, limit, offset int) ([]*models.UnitType, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UnitType), args.Error(1)
}

type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) WithTx(tx pgx.Tx) repositories.UnitRepository {
	return m
}

func (m *MockUnitRepository) Create(ctx context.Context, unit *models.Unit) (bool, error) {
	args := m.Called(ctx, unit)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnitRepository) ExistsByNumberAndBlock(ctx context.Context, unitNumber string, blockID int64) (bool, error) {
	args := m.Called(ctx, unitNumber, blockID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnitRepository) ListRowsForProject(ctx context.Context, projectID int64, limit, offset int) ([][]any, error) {
	args := m.Called(ctx, projectID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]any), args.Error(1)
}

func (m *MockUnitRepository) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

type MockProjectAuthorizer struct {
	mock.Mock
}

func (m *MockProjectAuthorizer) Authorize(ctx context.Context, project *models.Project, principal common.Principal) (*models.Seller, error) {
	args := m.Called(ctx, project, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockProjectAuthorizer) AuthorizeProjectID(ctx context.Context, projectID int64, principal common.Principal) (*models.Seller, error) {
	args := m.Called(ctx, projectID, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetProject(ctx context.Context, projectID int64) (*models.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockCacheService) SetProject(ctx context.Context, project *models.Project, ttl time.Duration) error {
	args := m.Called(ctx, project, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteProject(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockCacheService) GetSeller(ctx context.Context, sellerID int64) (*models.Seller, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockCacheService) SetSeller(ctx context.Context, seller *models.Seller, ttl time.Duration) error {
	args := m.Called(ctx, seller, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteSeller(ctx context.Context, sellerID int64) error {
	args := m.Called(ctx, sellerID)
	return args.Error(0)
}

func (m *MockCacheService) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) Upload(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, objectSize int64) error {
	args := m.Called(ctx, bucketName, objectName, contentType, reader, objectSize)
	return args.Error(0)
}

func (m *MockStorageService) GetPresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockStorageService) Delete(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

func (m *MockStorageService) EnsureBucketExists(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}
