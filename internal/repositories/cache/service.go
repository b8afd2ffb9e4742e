package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"estatien/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Apartment caching. Listings are read far more often than they change,
// so browse traffic is served from Redis until a write invalidates it.
func (s *CacheService) CacheApartment(ctx context.Context, apartment *models.Apartment) error {
	if apartment == nil {
		return errors.New("cannot cache nil apartment")
	}
	return s.Set(ctx, s.GenerateKey("apartment", "id", apartment.ID), apartment)
}

func (s *CacheService) GetApartment(ctx context.Context, id uint) (*models.Apartment, error) {
	var apartment models.Apartment
	found, err := s.Get(ctx, s.GenerateKey("apartment", "id", id), &apartment)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("apartment not found in cache")
	}
	return &apartment, nil
}

func (s *CacheService) InvalidateApartment(ctx context.Context, id uint) error {
	return s.Delete(ctx, s.GenerateKey("apartment", "id", id), listingKey)
}

const listingKey = "apartment:list:approved"

func (s *CacheService) CacheListings(ctx context.Context, apartments []models.Apartment) error {
	return s.SetWithTTL(ctx, listingKey, apartments, 5*time.Minute)
}

func (s *CacheService) GetListings(ctx context.Context) ([]models.Apartment, bool, error) {
	var apartments []models.Apartment
	found, err := s.Get(ctx, listingKey, &apartments)
	return apartments, found, err
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}
