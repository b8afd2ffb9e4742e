// Package apartment serves the listing browse and moderation flows.
// Reads go through the Redis cache; any write invalidates it.
package apartment

import (
	"context"
	"errors"
	"fmt"
	"log"

	"estatien/internal/models"
	"estatien/internal/repositories"
	"estatien/internal/repositories/cache"
	"estatien/internal/validation"
)

var (
	ErrNotFound     = errors.New("apartment not found")
	ErrInvalidInput = errors.New("invalid apartment data")
)

type Service interface {
	Create(ctx context.Context, agentID uint, input CreateInput) (*models.Apartment, error)
	Get(ctx context.Context, id uint) (*models.Apartment, error)
	ListApproved(ctx context.Context) ([]models.Apartment, error)
	ListByAgent(ctx context.Context, agentID uint) ([]models.Apartment, error)
	Moderate(ctx context.Context, id uint, approve bool) error
}

type CreateInput struct {
	Title          string   `json:"title"`
	Location       string   `json:"location"`
	Address        string   `json:"address"`
	State          string   `json:"state"`
	PricePerDay    float64  `json:"pricePerDay"`
	TotalRooms     int      `json:"totalRooms"`
	PropertyType   string   `json:"propertyType"`
	Facilities     string   `json:"facilities"`
	Description    string   `json:"description"`
	ParkingSpace   bool     `json:"parkingSpace"`
	PartiesAllowed bool     `json:"partiesAllowed"`
	Images         []string `json:"images"`
	Video          string   `json:"video"`
}

type service struct {
	repo  repositories.ApartmentRepository
	cache *cache.CacheService
}

func NewService(repo repositories.ApartmentRepository, cacheSvc *cache.CacheService) Service {
	if repo == nil {
		panic("apartment repository is required")
	}
	return &service{repo: repo, cache: cacheSvc}
}

func (s *service) Create(ctx context.Context, agentID uint, input CreateInput) (*models.Apartment, error) {
	v := validation.New()
	v.Check(len(input.Title) >= 3, "title", "title must be at least 3 characters long")
	v.Check(input.Location != "", "location", "location is required")
	v.Check(input.Address != "", "address", "address is required")
	v.Check(input.State != "", "state", "state is required")
	v.Check(input.PricePerDay >= 1, "pricePerDay", "price must be at least 1 naira")
	v.Check(input.TotalRooms >= 1, "totalRooms", "must have at least 1 room")
	v.Check(len(input.Images) > 0, "images", "at least one image is required")
	switch input.PropertyType {
	case models.PropertyTypeSingleRoom, models.PropertyTypeTwoBedroom,
		models.PropertyTypeDuplex, models.PropertyTypeStudio:
	default:
		v.AddError("propertyType", "invalid property type")
	}
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, v.First())
	}

	images := make([]interface{}, len(input.Images))
	for i, img := range input.Images {
		images[i] = img
	}

	apartment := &models.Apartment{
		AgentID:        agentID,
		Title:          input.Title,
		Location:       input.Location,
		Address:        input.Address,
		State:          input.State,
		PricePerDay:    input.PricePerDay,
		TotalRooms:     input.TotalRooms,
		PropertyType:   input.PropertyType,
		Facilities:     input.Facilities,
		Description:    input.Description,
		ParkingSpace:   input.ParkingSpace,
		PartiesAllowed: input.PartiesAllowed,
		Images:         models.JSON{"urls": images},
		Video:          input.Video,
		Status:         models.ApartmentStatusPending,
		Availability:   models.AvailabilityAvailable,
	}
	if err := s.repo.Create(ctx, apartment); err != nil {
		return nil, fmt.Errorf("failed to create apartment: %w", err)
	}
	return apartment, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Apartment, error) {
	if s.cache != nil {
		if apartment, err := s.cache.GetApartment(ctx, id); err == nil {
			return apartment, nil
		}
	}

	apartment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrApartmentNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get apartment: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.CacheApartment(ctx, apartment); err != nil {
			log.Printf("failed to cache apartment %d: %v", id, err)
		}
	}
	return apartment, nil
}

func (s *service) ListApproved(ctx context.Context) ([]models.Apartment, error) {
	if s.cache != nil {
		if apartments, found, err := s.cache.GetListings(ctx); err == nil && found {
			return apartments, nil
		}
	}

	apartments, err := s.repo.ListApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list apartments: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.CacheListings(ctx, apartments); err != nil {
			log.Printf("failed to cache listings: %v", err)
		}
	}
	return apartments, nil
}

func (s *service) ListByAgent(ctx context.Context, agentID uint) ([]models.Apartment, error) {
	return s.repo.ListByAgent(ctx, agentID)
}

func (s *service) Moderate(ctx context.Context, id uint, approve bool) error {
	status := models.ApartmentStatusDeclined
	if approve {
		status = models.ApartmentStatusApproved
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrApartmentNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update apartment status: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateApartment(ctx, id); err != nil {
			log.Printf("failed to invalidate apartment cache: %v", err)
		}
	}
	return nil
}
