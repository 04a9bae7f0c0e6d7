package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"estatehub/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService is a read-through cache for the hot Project and Seller
// lookups. Cache failures are reported to callers but never treated as
// operation failures.
type CacheService interface {
	GetProject(ctx context.Context, projectID int64) (*models.Project, error)
	SetProject(ctx context.Context, project *models.Project, ttl time.Duration) error
	DeleteProject(ctx context.Context, projectID int64) error

	GetSeller(ctx context.Context, sellerID int64) (*models.Seller, error)
	SetSeller(ctx context.Context, seller *models.Seller, ttl time.Duration) error
	DeleteSeller(ctx context.Context, sellerID int64) error

	Close() error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port as well as bare host:port.
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "rediss://"), "redis://")

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})
	return &redisCacheService{client: client}
}

func projectKey(projectID int64) string {
	return fmt.Sprintf("project:%d", projectID)
}

func sellerKey(sellerID int64) string {
	return fmt.Sprintf("seller:%d", sellerID)
}

func (c *redisCacheService) GetProject(ctx context.Context, projectID int64) (*models.Project, error) {
	data, err := c.client.Get(ctx, projectKey(projectID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	project := &models.Project{}
	if err := json.Unmarshal(data, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (c *redisCacheService) SetProject(ctx context.Context, project *models.Project, ttl time.Duration) error {
	data, err := json.Marshal(project)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, projectKey(project.ID), data, ttl).Err()
}

func (c *redisCacheService) DeleteProject(ctx context.Context, projectID int64) error {
	return c.client.Del(ctx, projectKey(projectID)).Err()
}

func (c *redisCacheService) GetSeller(ctx context.Context, sellerID int64) (*models.Seller, error) {
	data, err := c.client.Get(ctx, sellerKey(sellerID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	seller := &models.Seller{}
	if err := json.Unmarshal(data, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

func (c *redisCacheService) SetSeller(ctx context.Context, seller *models.Seller, ttl time.Duration) error {
	data, err := json.Marshal(seller)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sellerKey(seller.ID), data, ttl).Err()
}

func (c *redisCacheService) DeleteSeller(ctx context.Context, sellerID int64) error {
	return c.client.Del(ctx, sellerKey(sellerID)).Err()
}

func (c *redisCacheService) Close() error {
	return c.client.Close()
}
