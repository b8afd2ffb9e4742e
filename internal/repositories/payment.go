package repositories

import (
	"context"
	"errors"
	"time"

	"estatien/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrPaymentAlreadySettled = errors.New("payment already settled")
)

// PaymentRepository persists payment transaction records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByReference(ctx context.Context, reference string) (*models.Payment, error)

	// CompletePending transitions the record from pending to completed
	// in a single conditional update. It returns ErrPaymentAlreadySettled
	// when the record exists but is no longer pending, which makes the
	// settlement procedure safe against concurrent verify/webhook calls.
	CompletePending(ctx context.Context, reference string, paidAt time.Time,
		adminCommission, agentAmount float64, metadata models.JSON) error

	ListByUser(ctx context.Context, userID uint) ([]models.Payment, error)
	ListCommissions(ctx context.Context) ([]models.Payment, error)
	ListAgentShares(ctx context.Context, agentID uint) ([]models.Payment, error)
	SumAgentShares(ctx context.Context, agentID uint, status string) (float64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) GetByReference(ctx context.Context, reference string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Preload("Apartment").
		Preload("Apartment.Agent").
		Preload("User").
		Where("transaction_reference = ?", reference).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) CompletePending(ctx context.Context, reference string, paidAt time.Time,
	adminCommission, agentAmount float64, metadata models.JSON) error {

	res := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("transaction_reference = ? AND status = ?", reference, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":           models.PaymentStatusCompleted,
			"type":             models.PaymentTypeBooking,
			"payment_date":     paidAt,
			"admin_commission": adminCommission,
			"agent_amount":     agentAmount,
			"metadata":         metadata,
		})
	if res.Error != nil {
		return res.Error
	}
	// The caller has already loaded the record, so zero rows here means
	// another settlement path won the transition.
	if res.RowsAffected == 0 {
		return ErrPaymentAlreadySettled
	}
	return nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Preload("Apartment").
		Preload("Apartment.Agent").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) ListCommissions(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Preload("Apartment").
		Preload("User").
		Where("type = ? AND status = ? AND metadata ->> 'isAdminCommission' = 'true'",
			models.PaymentTypeCommission, models.PaymentStatusCompleted).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) ListAgentShares(ctx context.Context, agentID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Preload("Apartment").
		Preload("User").
		Joins("JOIN apartments ON apartments.id = payments.apartment_id").
		Where("apartments.agent_id = ? AND payments.type = ? AND payments.status = ? AND payments.metadata ->> 'isAgentPayment' = 'true'",
			agentID, models.PaymentTypeBooking, models.PaymentStatusCompleted).
		Order("payments.created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) SumAgentShares(ctx context.Context, agentID uint, status string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Joins("JOIN apartments ON apartments.id = payments.apartment_id").
		Where("apartments.agent_id = ? AND payments.status = ? AND payments.metadata ->> 'isAgentPayment' = 'true'",
			agentID, status).
		Select("COALESCE(SUM(payments.agent_amount), 0)").
		Scan(&total).Error
	return total, err
}
