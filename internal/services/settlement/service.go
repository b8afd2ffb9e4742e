// Package settlement implements the payment lifecycle: initialize a
// booking charge on the gateway, confirm it via the verify pull path or
// the webhook push path, split the commission, flip the apartment to
// rented and notify both parties.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"estatien/internal/models"
	"estatien/internal/repositories"
	"estatien/internal/services/paystack"
	"estatien/internal/validation"
)

// Config carries the engine's tunables. It is built once at startup;
// the engine never reads the environment.
type Config struct {
	CommissionRate float64
	FrontendURL    string
	Currency       string
}

type service struct {
	payments   repositories.PaymentRepository
	apartments repositories.ApartmentRepository
	users      repositories.UserRepository
	gateway    Gateway
	notifier   Notifier
	cache      ApartmentCache
	config     Config
}

// NewService creates the settlement engine.
func NewService(
	payments repositories.PaymentRepository,
	apartments repositories.ApartmentRepository,
	users repositories.UserRepository,
	gateway Gateway,
	notifier Notifier,
	cache ApartmentCache,
	config Config,
) Service {
	if payments == nil {
		panic("payment repository is required")
	}
	if apartments == nil {
		panic("apartment repository is required")
	}
	if users == nil {
		panic("user repository is required")
	}
	if gateway == nil {
		panic("gateway is required")
	}

	if config.CommissionRate == 0 {
		config.CommissionRate = DefaultCommissionRate
	}
	if config.Currency == "" {
		config.Currency = models.CurrencyNGN
	}

	return &service{
		payments:   payments,
		apartments: apartments,
		users:      users,
		gateway:    gateway,
		notifier:   notifier,
		cache:      cache,
		config:     config,
	}
}

func (s *service) Initialize(ctx context.Context, userEmail string, req InitializeRequest) (*InitializeResult, error) {
	apartment, err := s.apartments.GetByID(ctx, req.ApartmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrApartmentNotFound) {
			return nil, ErrApartmentNotFound
		}
		return nil, fmt.Errorf("failed to load apartment: %w", err)
	}
	if !apartment.Bookable() {
		return nil, ErrApartmentUnavailable
	}

	user, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	v := validation.New()
	v.Booking(req.Booking)
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBooking, v.First())
	}

	payment := &models.Payment{
		UserID:               user.ID,
		ApartmentID:          apartment.ID,
		BookingData:          req.Booking,
		Amount:               req.Booking.TotalAmount,
		Type:                 models.PaymentTypeBooking,
		Currency:             s.config.Currency,
		Status:               models.PaymentStatusPending,
		PaymentMethod:        models.PaymentMethodCard,
		TransactionReference: NewReference(),
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment record: %w", err)
	}

	lineItem := apartment.Title
	if lineItem == "" {
		lineItem = apartment.Location
	}

	// The gateway deals in kobo; stored amounts stay in naira. The
	// pending record is intentionally not rolled back when the gateway
	// rejects: it stays pending and is superseded by a retry.
	data, err := s.gateway.Initialize(ctx, paystack.InitializeRequest{
		Email:       user.Email,
		Amount:      int64(math.Round(payment.Amount * 100)),
		Reference:   payment.TransactionReference,
		CallbackURL: fmt.Sprintf("%s/payment/verify/%s", s.config.FrontendURL, payment.TransactionReference),
		Metadata: paystack.Metadata{
			PaymentID:   strconv.FormatUint(uint64(payment.ID), 10),
			ApartmentID: strconv.FormatUint(uint64(apartment.ID), 10),
			UserID:      strconv.FormatUint(uint64(user.ID), 10),
			CustomFields: []paystack.CustomField{{
				DisplayName:  "Apartment",
				VariableName: "apartment",
				Value:        lineItem,
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment: %w", err)
	}

	return &InitializeResult{
		AccessCode: data.AccessCode,
		Reference:  data.Reference,
		Amount:     payment.Amount,
	}, nil
}

func (s *service) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	payment, err := s.payments.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	data, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to verify payment: %w", err)
	}

	// A non-success gateway status is a legitimate "not yet paid"
	// answer, not an error. Nothing is mutated.
	if !data.Success() {
		return &VerifyResult{
			Completed:     false,
			GatewayStatus: data.Status,
			Payment:       payment,
		}, nil
	}

	apartment, err := s.settle(ctx, payment, data)
	if err != nil {
		return nil, err
	}

	payment, err = s.payments.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to reload payment: %w", err)
	}

	return &VerifyResult{
		Completed: true,
		Payment:   payment,
		Apartment: apartment,
	}, nil
}

func (s *service) HandleWebhook(ctx context.Context, event paystack.WebhookEvent) error {
	if event.Event != paystack.EventChargeSuccess {
		return nil
	}

	payment, err := s.payments.GetByReference(ctx, event.Data.Reference)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("failed to load payment: %w", err)
	}

	// Both confirmation paths run the same completion procedure, so a
	// webhook-settled booking carries its commission split even when the
	// client never calls verify.
	if _, err := s.settle(ctx, payment, &event.Data); err != nil {
		return err
	}
	return nil
}

// settle runs the completion procedure. The pending-to-completed
// transition is a single conditional update: of any number of
// concurrent verify and webhook calls exactly one proceeds past it,
// and the rest see ErrPaymentAlreadySettled from the repository and
// stop, which callers treat as success.
func (s *service) settle(ctx context.Context, payment *models.Payment, data *paystack.VerifyData) (*models.Apartment, error) {
	if payment.Settled() {
		apartment, err := s.apartments.GetByID(ctx, payment.ApartmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load apartment: %w", err)
		}
		return apartment, nil
	}

	adminCommission := payment.Amount * s.config.CommissionRate
	agentAmount := payment.Amount - adminCommission
	now := time.Now()

	meta := models.JSON{
		models.MetaGatewayReference: data.Reference,
		models.MetaChannel:          data.Channel,
		models.MetaCardType:         data.Authorization.CardType,
		models.MetaLast4:            data.Authorization.Last4,
		models.MetaBank:             data.Authorization.Bank,
	}

	err := s.payments.CompletePending(ctx, payment.TransactionReference, now, adminCommission, agentAmount, meta)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentAlreadySettled) {
			apartment, aerr := s.apartments.GetByID(ctx, payment.ApartmentID)
			if aerr != nil {
				return nil, fmt.Errorf("failed to load apartment: %w", aerr)
			}
			return apartment, nil
		}
		return nil, fmt.Errorf("failed to complete payment: %w", err)
	}

	if err := s.createDerivedRecords(ctx, payment, adminCommission, agentAmount, now); err != nil {
		return nil, err
	}

	if err := s.apartments.MarkRented(ctx, payment.ApartmentID, payment.UserID); err != nil {
		if !errors.Is(err, repositories.ErrApartmentTaken) {
			return nil, fmt.Errorf("failed to update apartment: %w", err)
		}
		log.Printf("apartment %d already marked rented for reference %s",
			payment.ApartmentID, payment.TransactionReference)
	}
	if s.cache != nil {
		if err := s.cache.InvalidateApartment(ctx, payment.ApartmentID); err != nil {
			log.Printf("failed to invalidate apartment cache: %v", err)
		}
	}

	apartment, err := s.apartments.GetByID(ctx, payment.ApartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load apartment: %w", err)
	}

	s.sendNotifications(ctx, payment, apartment, adminCommission, agentAmount)

	return apartment, nil
}

func (s *service) createDerivedRecords(ctx context.Context, payment *models.Payment,
	adminCommission, agentAmount float64, paidAt time.Time) error {

	linkage := func(extra models.JSON) models.JSON {
		meta := models.JSON{
			models.MetaOriginalPaymentID: payment.ID,
			models.MetaOriginalReference: payment.TransactionReference,
		}
		for k, v := range extra {
			meta[k] = v
		}
		return meta
	}

	commission := &models.Payment{
		UserID:               payment.UserID,
		ApartmentID:          payment.ApartmentID,
		BookingData:          payment.BookingData,
		Amount:               adminCommission,
		AdminCommission:      adminCommission,
		AgentAmount:          0,
		Type:                 models.PaymentTypeCommission,
		Currency:             payment.Currency,
		Status:               models.PaymentStatusCompleted,
		TransactionReference: CommissionReference(payment.TransactionReference),
		PaymentMethod:        payment.PaymentMethod,
		PaymentDate:          &paidAt,
		Metadata:             linkage(models.JSON{models.MetaIsAdminCommission: true}),
	}
	if err := s.payments.Create(ctx, commission); err != nil {
		return fmt.Errorf("failed to create commission record: %w", err)
	}

	agentShare := &models.Payment{
		UserID:               payment.UserID,
		ApartmentID:          payment.ApartmentID,
		BookingData:          payment.BookingData,
		Amount:               agentAmount,
		AdminCommission:      0,
		AgentAmount:          agentAmount,
		Type:                 models.PaymentTypeBooking,
		Currency:             payment.Currency,
		Status:               models.PaymentStatusCompleted,
		TransactionReference: AgentShareReference(payment.TransactionReference),
		PaymentMethod:        payment.PaymentMethod,
		PaymentDate:          &paidAt,
		Metadata:             linkage(models.JSON{models.MetaIsAgentPayment: true}),
	}
	if err := s.payments.Create(ctx, agentShare); err != nil {
		return fmt.Errorf("failed to create agent share record: %w", err)
	}

	return nil
}

// sendNotifications is best-effort: the settlement is durable before it
// runs, and delivery failures are logged and swallowed.
func (s *service) sendNotifications(ctx context.Context, payment *models.Payment,
	apartment *models.Apartment, adminCommission, agentAmount float64) {

	if s.notifier == nil {
		return
	}

	guestName, guestEmail := "", ""
	if payment.User != nil {
		guestName = payment.User.FullName
		guestEmail = payment.User.Email
	}

	if guestEmail != "" {
		err := s.notifier.SendBookingConfirmation(ctx, BookingNotice{
			To:       guestEmail,
			Name:     guestName,
			Location: apartment.Location,
			CheckIn:  payment.BookingData.CheckIn,
			CheckOut: payment.BookingData.CheckOut,
			Amount:   payment.Amount,
			Currency: payment.Currency,
		})
		if err != nil {
			log.Printf("failed to send booking confirmation for %s: %v",
				payment.TransactionReference, err)
		}
	}

	if apartment.Agent == nil || apartment.Agent.Email == "" {
		return
	}
	err := s.notifier.SendAgentSettlement(ctx, AgentNotice{
		To:              apartment.Agent.Email,
		Name:            apartment.Agent.FullName,
		Location:        apartment.Location,
		CheckIn:         payment.BookingData.CheckIn,
		CheckOut:        payment.BookingData.CheckOut,
		Amount:          payment.Amount,
		AdminCommission: adminCommission,
		AgentAmount:     agentAmount,
		GuestName:       guestName,
		GuestEmail:      guestEmail,
		Guests:          payment.BookingData.Guests(),
	})
	if err != nil {
		log.Printf("failed to send agent settlement notice for %s: %v",
			payment.TransactionReference, err)
	}
}

func (s *service) History(ctx context.Context, claims *models.UserClaims) (*History, error) {
	switch claims.Role {
	case models.RoleAdmin:
		payments, err := s.payments.ListCommissions(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load commission history: %w", err)
		}
		return &History{Payments: payments}, nil

	case models.RoleAgent:
		payments, err := s.payments.ListAgentShares(ctx, claims.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load agent history: %w", err)
		}
		available, err := s.payments.SumAgentShares(ctx, claims.UserID, models.PaymentStatusCompleted)
		if err != nil {
			return nil, fmt.Errorf("failed to sum agent earnings: %w", err)
		}
		pending, err := s.payments.SumAgentShares(ctx, claims.UserID, models.PaymentStatusPending)
		if err != nil {
			return nil, fmt.Errorf("failed to sum pending earnings: %w", err)
		}
		return &History{
			Payments: payments,
			Summary:  &AgentSummary{TotalAvailable: available, TotalPending: pending},
		}, nil

	default:
		payments, err := s.payments.ListByUser(ctx, claims.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load payment history: %w", err)
		}
		return &History{Payments: payments}, nil
	}
}
