package services

import (
	"context"
	"errors"
	"log"
	"time"

	"estatehub/internal/caching"
	"estatehub/internal/common"
	"estatehub/internal/models"
	"estatehub/internal/projection"
	"estatehub/internal/repositories"

	"github.com/jackc/pgx/v5"
)

const sellerCacheTTL = 15 * time.Minute

type SellerService interface {
	Create(ctx context.Context, req *CreateSellerRequest, createdBy string) (*models.Seller, error)
	GetByID(ctx context.Context, id int64) (*models.Seller, error)
	Update(ctx context.Context, seller *models.Seller, modifiedBy string) error
	Delete(ctx context.Context, id int64, deletedBy string) error
	List(ctx context.Context, limit, offset int) ([]*models.Seller, error)
	ListWithProjects(ctx context.Context, limit, offset int) ([]*projection.SellerRecord, error)
}

type sellerService struct {
	sellerRepo repositories.SellerRepository
	cache      caching.CacheService
}

func NewSellerService(sellerRepo repositories.SellerRepository, cache caching.CacheService) SellerService {
	return &sellerService{sellerRepo: sellerRepo, cache: cache}
}

type CreateSellerRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	IsUnionHead bool   `json:"is_union_head"`
}

func (s *sellerService) Create(ctx context.Context, req *CreateSellerRequest, createdBy string) (*models.Seller, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, common.Validationf("First and last name are required")
	}
	if req.PhoneNumber == "" {
		return nil, common.Validationf("Phone number is required")
	}

	seller := &models.Seller{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		IsUnionHead: req.IsUnionHead,
		Status:      models.SellerActive,
		CreatedBy:   &createdBy,
	}
	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, common.Validationf("Seller with phone number '%s' already exists", req.PhoneNumber)
		}
		return nil, common.Internal("failed to create seller", err)
	}
	return seller, nil
}

func (s *sellerService) GetByID(ctx context.Context, id int64) (*models.Seller, error) {
	if cached, err := s.cache.GetSeller(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("Cache error for seller %d: %v", id, err)
	}

	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("Seller not found with ID: %d", id)
		}
		return nil, common.Internal("failed to load seller", err)
	}

	if err := s.cache.SetSeller(ctx, seller, sellerCacheTTL); err != nil {
		log.Printf("Failed to cache seller %d: %v", id, err)
	}
	return seller, nil
}

func (s *sellerService) Update(ctx context.Context, seller *models.Seller, modifiedBy string) error {
	if _, err := s.GetByID(ctx, seller.ID); err != nil {
		return err
	}
	seller.LastModifiedBy = &modifiedBy
	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return common.Internal("failed to update seller", err)
	}
	if err := s.cache.DeleteSeller(ctx, seller.ID); err != nil {
		log.Printf("Failed to invalidate cache for seller %d: %v", seller.ID, err)
	}
	return nil
}

func (s *sellerService) Delete(ctx context.Context, id int64, deletedBy string) error {
	if err := s.sellerRepo.SoftDelete(ctx, id, deletedBy); err != nil {
		return common.Internal("failed to delete seller", err)
	}
	if err := s.cache.DeleteSeller(ctx, id); err != nil {
		log.Printf("Failed to invalidate cache for seller %d: %v", id, err)
	}
	return nil
}

func (s *sellerService) List(ctx context.Context, limit, offset int) ([]*models.Seller, error) {
	sellers, err := s.sellerRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, common.Internal("failed to list sellers", err)
	}
	return sellers, nil
}

func (s *sellerService) ListWithProjects(ctx context.Context, limit, offset int) ([]*projection.SellerRecord, error) {
	records, err := s.sellerRepo.ListWithProjects(ctx, limit, offset)
	if err != nil {
		if projection.IsProjectionError(err) {
			return nil, &common.Error{Kind: common.KindProjection, Message: "failed to map seller row", Err: err}
		}
		return nil, common.Internal("failed to list sellers with projects", err)
	}
	return records, nil
}
