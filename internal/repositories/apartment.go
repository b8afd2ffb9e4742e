package repositories

import (
	"context"
	"errors"

	"estatien/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApartmentNotFound = errors.New("apartment not found")
	ErrApartmentTaken    = errors.New("apartment no longer available")
)

// ApartmentRepository persists apartment listings.
type ApartmentRepository interface {
	Create(ctx context.Context, apartment *models.Apartment) error
	GetByID(ctx context.Context, id uint) (*models.Apartment, error)
	ListApproved(ctx context.Context) ([]models.Apartment, error)
	ListByAgent(ctx context.Context, agentID uint) ([]models.Apartment, error)
	UpdateStatus(ctx context.Context, id uint, status string) error

	// MarkRented flips the apartment to Unavailable and records the
	// renter, guarded on the current availability so a second settlement
	// cannot overwrite the occupant.
	MarkRented(ctx context.Context, id uint, userID uint) error
}

type apartmentRepository struct {
	db *gorm.DB
}

func NewApartmentRepository(db *gorm.DB) ApartmentRepository {
	return &apartmentRepository{db: db}
}

func (r *apartmentRepository) Create(ctx context.Context, apartment *models.Apartment) error {
	return r.db.WithContext(ctx).Create(apartment).Error
}

func (r *apartmentRepository) GetByID(ctx context.Context, id uint) (*models.Apartment, error) {
	var apartment models.Apartment
	err := r.db.WithContext(ctx).Preload("Agent").First(&apartment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApartmentNotFound
		}
		return nil, err
	}
	return &apartment, nil
}

func (r *apartmentRepository) ListApproved(ctx context.Context) ([]models.Apartment, error) {
	var apartments []models.Apartment
	err := r.db.WithContext(ctx).
		Where("status = ?", models.ApartmentStatusApproved).
		Order("created_at DESC").
		Find(&apartments).Error
	return apartments, err
}

func (r *apartmentRepository) ListByAgent(ctx context.Context, agentID uint) ([]models.Apartment, error) {
	var apartments []models.Apartment
	err := r.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Find(&apartments).Error
	return apartments, err
}

func (r *apartmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).Model(&models.Apartment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApartmentNotFound
	}
	return nil
}

func (r *apartmentRepository) MarkRented(ctx context.Context, id uint, userID uint) error {
	res := r.db.WithContext(ctx).Model(&models.Apartment{}).
		Where("id = ? AND availability = ?", id, models.AvailabilityAvailable).
		Updates(map[string]interface{}{
			"availability": models.AvailabilityUnavailable,
			"rented_by":    userID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApartmentTaken
	}
	return nil
}
