package settlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"estatien/internal/models"
	"estatien/internal/repositories"
	"estatien/internal/services/paystack"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockPaymentRepo) GetByReference(ctx context.Context, reference string) (*models.Payment, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentRepo) CompletePending(ctx context.Context, reference string, paidAt time.Time,
	adminCommission, agentAmount float64, metadata models.JSON) error {
	args := m.Called(ctx, reference, paidAt, adminCommission, agentAmount, metadata)
	return args.Error(0)
}

func (m *mockPaymentRepo) ListByUser(ctx context.Context, userID uint) ([]models.Payment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *mockPaymentRepo) ListCommissions(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *mockPaymentRepo) ListAgentShares(ctx context.Context, agentID uint) ([]models.Payment, error) {
	args := m.Called(ctx, agentID)
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *mockPaymentRepo) SumAgentShares(ctx context.Context, agentID uint, status string) (float64, error) {
	args := m.Called(ctx, agentID, status)
	return args.Get(0).(float64), args.Error(1)
}

type mockApartmentRepo struct{ mock.Mock }

func (m *mockApartmentRepo) Create(ctx context.Context, apartment *models.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *mockApartmentRepo) GetByID(ctx context.Context, id uint) (*models.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Apartment), args.Error(1)
}

func (m *mockApartmentRepo) ListApproved(ctx context.Context) ([]models.Apartment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Apartment), args.Error(1)
}

func (m *mockApartmentRepo) ListByAgent(ctx context.Context, agentID uint) ([]models.Apartment, error) {
	args := m.Called(ctx, agentID)
	return args.Get(0).([]models.Apartment), args.Error(1)
}

func (m *mockApartmentRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockApartmentRepo) MarkRented(ctx context.Context, id uint, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) IncrementTokenVersion(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) Initialize(ctx context.Context, req paystack.InitializeRequest) (*paystack.InitializeData, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paystack.InitializeData), args.Error(1)
}

func (m *mockGateway) VerifyTransaction(ctx context.Context, reference string) (*paystack.VerifyData, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paystack.VerifyData), args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) SendBookingConfirmation(ctx context.Context, notice BookingNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *mockNotifier) SendAgentSettlement(ctx context.Context, notice AgentNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) InvalidateApartment(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type fixture struct {
	payments   *mockPaymentRepo
	apartments *mockApartmentRepo
	users      *mockUserRepo
	gateway    *mockGateway
	notifier   *mockNotifier
	cache      *mockCache
	service    Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		payments:   new(mockPaymentRepo),
		apartments: new(mockApartmentRepo),
		users:      new(mockUserRepo),
		gateway:    new(mockGateway),
		notifier:   new(mockNotifier),
		cache:      new(mockCache),
	}
	f.service = NewService(f.payments, f.apartments, f.users, f.gateway, f.notifier, f.cache, Config{
		FrontendURL: "http://localhost:5173",
	})
	return f
}

func agentUser() *models.User {
	agent := &models.User{Email: "agent@example.com", FullName: "Ada Agent", Role: models.RoleAgent}
	agent.ID = 7
	return agent
}

func availableApartment() *models.Apartment {
	apt := &models.Apartment{
		AgentID:      7,
		Agent:        agentUser(),
		Title:        "Lekki Duplex",
		Location:     "Lekki Phase 1, Lagos",
		Status:       models.ApartmentStatusApproved,
		Availability: models.AvailabilityAvailable,
	}
	apt.ID = 42
	return apt
}

func renter() *models.User {
	user := &models.User{Email: "guest@example.com", FullName: "Gbenga Guest", Role: models.RoleUser}
	user.ID = 3
	return user
}

func booking(total float64) models.BookingData {
	checkIn := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
	return models.BookingData{
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, 5),
		Adults:      2,
		Children:    1,
		TotalAmount: total,
	}
}

func pendingPayment(amount float64) *models.Payment {
	p := &models.Payment{
		UserID:               3,
		User:                 renter(),
		ApartmentID:          42,
		Apartment:            availableApartment(),
		BookingData:          booking(amount),
		Amount:               amount,
		Type:                 models.PaymentTypeBooking,
		Currency:             models.CurrencyNGN,
		Status:               models.PaymentStatusPending,
		PaymentMethod:        models.PaymentMethodCard,
		TransactionReference: "TXN-1700000000000-ab12cd34",
	}
	p.ID = 11
	return p
}

func successData(reference string) *paystack.VerifyData {
	return &paystack.VerifyData{
		Status:    "success",
		Reference: reference,
		Amount:    5_000_000,
		Currency:  models.CurrencyNGN,
		Channel:   "card",
		Authorization: paystack.Authorization{
			CardType: "visa",
			Last4:    "4081",
			Bank:     "TEST BANK",
		},
	}
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending payment and returns gateway access code", func(t *testing.T) {
		f := newFixture(t)

		f.apartments.On("GetByID", mock.Anything, uint(42)).Return(availableApartment(), nil)
		f.users.On("GetByEmail", mock.Anything, "guest@example.com").Return(renter(), nil)
		f.payments.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.PaymentStatusPending &&
				p.Amount == 50_000 &&
				p.Currency == models.CurrencyNGN &&
				IsOriginal(p.TransactionReference)
		})).Return(nil)
		f.gateway.On("Initialize", mock.Anything, mock.MatchedBy(func(req paystack.InitializeRequest) bool {
			return req.Email == "guest@example.com" &&
				req.Amount == 5_000_000 && // kobo
				IsOriginal(req.Reference) &&
				req.Metadata.CustomFields[0].Value == "Lekki Duplex"
		})).Return(&paystack.InitializeData{AccessCode: "acc_123", Reference: "TXN-1-x"}, nil)

		result, err := f.service.Initialize(ctx, "guest@example.com", InitializeRequest{
			ApartmentID: 42,
			Booking:     booking(50_000),
		})

		require.NoError(t, err)
		assert.Equal(t, "acc_123", result.AccessCode)
		assert.Equal(t, float64(50_000), result.Amount)
		f.payments.AssertExpectations(t)
		f.gateway.AssertExpectations(t)
	})

	t.Run("rejects unavailable apartment without creating a record", func(t *testing.T) {
		f := newFixture(t)

		apt := availableApartment()
		apt.Availability = models.AvailabilityUnavailable
		f.apartments.On("GetByID", mock.Anything, uint(42)).Return(apt, nil)

		_, err := f.service.Initialize(ctx, "guest@example.com", InitializeRequest{
			ApartmentID: 42,
			Booking:     booking(50_000),
		})

		assert.ErrorIs(t, err, ErrApartmentUnavailable)
		f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects missing apartment", func(t *testing.T) {
		f := newFixture(t)

		f.apartments.On("GetByID", mock.Anything, uint(99)).Return(nil, repositories.ErrApartmentNotFound)

		_, err := f.service.Initialize(ctx, "guest@example.com", InitializeRequest{
			ApartmentID: 99,
			Booking:     booking(50_000),
		})

		assert.ErrorIs(t, err, ErrApartmentNotFound)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		f := newFixture(t)

		f.apartments.On("GetByID", mock.Anything, uint(42)).Return(availableApartment(), nil)
		f.users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repositories.ErrUserNotFound)

		_, err := f.service.Initialize(ctx, "nobody@example.com", InitializeRequest{
			ApartmentID: 42,
			Booking:     booking(50_000),
		})

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("rejects invalid booking dates", func(t *testing.T) {
		f := newFixture(t)

		f.apartments.On("GetByID", mock.Anything, uint(42)).Return(availableApartment(), nil)
		f.users.On("GetByEmail", mock.Anything, "guest@example.com").Return(renter(), nil)

		b := booking(50_000)
		b.CheckOut = b.CheckIn.AddDate(0, 0, -1)

		_, err := f.service.Initialize(ctx, "guest@example.com", InitializeRequest{
			ApartmentID: 42,
			Booking:     b,
		})

		assert.ErrorIs(t, err, ErrInvalidBooking)
		f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("surfaces gateway rejection and keeps the pending record", func(t *testing.T) {
		f := newFixture(t)

		f.apartments.On("GetByID", mock.Anything, uint(42)).Return(availableApartment(), nil)
		f.users.On("GetByEmail", mock.Anything, "guest@example.com").Return(renter(), nil)
		f.payments.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.gateway.On("Initialize", mock.Anything, mock.Anything).
			Return(nil, paystack.ErrGatewayRejected)

		_, err := f.service.Initialize(ctx, "guest@example.com", InitializeRequest{
			ApartmentID: 42,
			Booking:     booking(50_000),
		})

		assert.ErrorIs(t, err, paystack.ErrGatewayRejected)
		// The pending record was created before the gateway call and is
		// intentionally not rolled back.
		f.payments.AssertNumberOfCalls(t, "Create", 1)
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("settles a successful charge with a 10/90 split", func(t *testing.T) {
		f := newFixture(t)
		payment := pendingPayment(50_000)
		ref := payment.TransactionReference

		completed := pendingPayment(50_000)
		completed.Status = models.PaymentStatusCompleted
		completed.AdminCommission = 5_000
		completed.AgentAmount = 45_000

		f.payments.On("GetByReference", mock.Anything, ref).Return(payment, nil).Once()
		f.gateway.On("VerifyTransaction", mock.Anything, ref).Return(successData(ref), nil)
		f.payments.On("CompletePending", mock.Anything, ref, mock.Anything,
			float64(5_000), float64(45_000), mock.MatchedBy(func(meta models.JSON) bool {
				return meta.GetString(models.MetaLast4) == "4081" &&
					meta.GetString(models.MetaChannel) == "card"
			})).Return(nil)
		f.payments.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.TransactionReference == "COM-"+ref &&
				p.Type == models.PaymentTypeCommission &&
				p.Amount == 5_000 && p.AdminCommission == 5_000 && p.AgentAmount == 0 &&
				p.Status == models.PaymentStatusCompleted &&
				p.Metadata.GetBool(models.MetaIsAdminCommission)
		})).Return(nil).Once()
		f.payments.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.TransactionReference == "AGT-"+ref &&
				p.Type == models.PaymentTypeBooking &&
				p.Amount == 45_000 && p.AdminCommission == 0 && p.AgentAmount == 45_000 &&
				p.Metadata.GetBool(models.MetaIsAgentPayment)
		})).Return(nil).Once()
		f.apartments.On("MarkRented", mock.Anything, uint(42), uint(3)).Return(nil)
		f.cache.On("InvalidateApartment", mock.Anything, uint(42)).Return(nil)

		rented := availableApartment()
		rented.Availability = models.AvailabilityUnavailable
		userID := uint(3)
		rented.RentedBy = &userID
		f.apartments.On("GetByID", mock.Anything, uint(42)).Return(rented, nil)

		f.notifier.On("SendBookingConfirmation", mock.Anything, mock.MatchedBy(func(n BookingNotice) bool {
			return n.To == "guest@example.com" && n.Amount == 50_000
		})).Return(nil)
		f.notifier.On("SendAgentSettlement", mock.Anything, mock.MatchedBy(func(n AgentNotice) bool {
			return n.To == "agent@example.com" &&
				n.AdminCommission == 5_000 && n.AgentAmount == 45_000 &&
				n.AdminCommission+n.AgentAmount == n.Amount &&
				n.Guests == 3
		})).Return(nil)

		f.payments.On("GetByReference", mock.Anything, ref).Return(completed, nil).Once()

		result, err := f.service.Verify(ctx, ref)

		require.NoError(t, err)
		assert.True(t, result.Completed)
		assert.Equal(t, models.PaymentStatusCompleted, result.Payment.Status)
		assert.Equal(t, result.Payment.Amount, result.Payment.AdminCommission+result.Payment.AgentAmount)
		require.NotNil(t, result.Apartment)
		assert.Equal(t, models.AvailabilityUnavailable, result.Apartment.Availability)
		require.NotNil(t, result.Apartment.RentedBy)
		assert.Equal(t, uint(3), *result.Apartment.RentedBy)

		f.payments.AssertExpectations(t)
		f.apartments.AssertExpectations(t)
		f.notifier.AssertExpectations(t)
	})

	t.Run("returns gateway status without mutation when not yet paid", func(t *testing.T) {
		f := newFixture(t)
		payment := pendingPayment(50_000)
		ref := payment.TransactionReference

		f.payments.On("GetByReference", mock.Anything, ref).Return(payment, nil)
		data := successData(ref)
		data.Status = "abandoned"
		f.gateway.On("VerifyTransaction", mock.Anything, ref).Return(data, nil)

		result, err := f.service.Verify(ctx, ref)

		require.NoError(t, err)
		assert.False(t, result.Completed)
		assert.Equal(t, "abandoned", result.GatewayStatus)
		f.payments.AssertNotCalled(t, "CompletePending",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.apartments.AssertNotCalled(t, "MarkRented", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("second verify of a settled payment is a no-op", func(t *testing.T) {
		f := newFixture(t)
		payment := pendingPayment(50_000)
		payment.Status = models.PaymentStatusCompleted
		ref := payment.TransactionReference

		f.payments.On("GetByReference", mock.Anything, ref).Return(payment, nil)
		f.gateway.On("VerifyTransaction", mock.Anything, ref).Return(successData(ref), nil)
		f.apartments.On("GetByID", mock.Anything, uint(42)).Return(availableApartment(), nil)

		result, err := f.service.Verify(ctx, ref)

		require.NoError(t, err)
		assert.True(t, result.Completed)
		f.payments.AssertNotCalled(t, "CompletePending",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.notifier.AssertNotCalled(t, "SendBookingConfirmation", mock.Anything, mock.Anything)
	})

	t.Run("conditional update loser creates no derived records", func(t *testing.T) {
		// Simulates the verify/webhook race: this caller loaded the
		// payment while still pending, but the other path won the
		// pending-to-completed transition first.
		f := newFixture(t)
		payment := pendingPayment(50_000)
		ref := payment.TransactionReference

		f.payments.On("GetByReference", mock.Anything, ref).Return(payment, nil)
		f.gateway.On("VerifyTransaction", mock.Anything, ref).Return(successData(ref), nil)
		f.payments.On("CompletePending", mock.Anything, ref, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).
			Return(repositories.ErrPaymentAlreadySettled)
		f.apartments.On("GetByID", mock.Anything, uint(42)).Return(availableApartment(), nil)

		result, err := f.service.Verify(ctx, ref)

		require.NoError(t, err)
		assert.True(t, result.Completed)
		f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.apartments.AssertNotCalled(t, "MarkRented", mock.Anything, mock.Anything, mock.Anything)
		f.notifier.AssertNotCalled(t, "SendAgentSettlement", mock.Anything, mock.Anything)
	})

	t.Run("unknown reference", func(t *testing.T) {
		f := newFixture(t)

		f.payments.On("GetByReference", mock.Anything, "TXN-0-missing").
			Return(nil, repositories.ErrPaymentNotFound)

		_, err := f.service.Verify(ctx, "TXN-0-missing")
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("notification failure does not fail the settlement", func(t *testing.T) {
		f := newFixture(t)
		payment := pendingPayment(50_000)
		ref := payment.TransactionReference

		f.payments.On("GetByReference", mock.Anything, ref).Return(payment, nil)
		f.gateway.On("VerifyTransaction", mock.Anything, ref).Return(successData(ref), nil)
		f.payments.On("CompletePending", mock.Anything, ref, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.payments.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.apartments.On("MarkRented", mock.Anything, uint(42), uint(3)).Return(nil)
		f.cache.On("InvalidateApartment", mock.Anything, uint(42)).Return(nil)
		f.apartments.On("GetByID", mock.Anything, uint(42)).Return(availableApartment(), nil)
		f.notifier.On("SendBookingConfirmation", mock.Anything, mock.Anything).
			Return(errors.New("smtp: connection refused"))
		f.notifier.On("SendAgentSettlement", mock.Anything, mock.Anything).
			Return(errors.New("smtp: connection refused"))

		result, err := f.service.Verify(ctx, ref)

		require.NoError(t, err)
		assert.True(t, result.Completed)
	})
}

func TestHandleWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("charge.success settles with the full completion procedure", func(t *testing.T) {
		f := newFixture(t)
		payment := pendingPayment(50_000)
		ref := payment.TransactionReference

		f.payments.On("GetByReference", mock.Anything, ref).Return(payment, nil)
		f.payments.On("CompletePending", mock.Anything, ref, mock.Anything,
			float64(5_000), float64(45_000), mock.Anything).Return(nil)
		f.payments.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.TransactionReference == "COM-"+ref
		})).Return(nil).Once()
		f.payments.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.TransactionReference == "AGT-"+ref
		})).Return(nil).Once()
		f.apartments.On("MarkRented", mock.Anything, uint(42), uint(3)).Return(nil)
		f.cache.On("InvalidateApartment", mock.Anything, uint(42)).Return(nil)
		f.apartments.On("GetByID", mock.Anything, uint(42)).Return(availableApartment(), nil)
		f.notifier.On("SendBookingConfirmation", mock.Anything, mock.Anything).Return(nil)
		f.notifier.On("SendAgentSettlement", mock.Anything, mock.Anything).Return(nil)

		err := f.service.HandleWebhook(ctx, paystack.WebhookEvent{
			Event: paystack.EventChargeSuccess,
			Data:  *successData(ref),
		})

		require.NoError(t, err)
		f.payments.AssertExpectations(t)
		f.apartments.AssertExpectations(t)
	})

	t.Run("ignores other event types", func(t *testing.T) {
		f := newFixture(t)

		err := f.service.HandleWebhook(ctx, paystack.WebhookEvent{Event: "transfer.success"})

		require.NoError(t, err)
		f.payments.AssertNotCalled(t, "GetByReference", mock.Anything, mock.Anything)
	})

	t.Run("repeated delivery is idempotent", func(t *testing.T) {
		f := newFixture(t)
		payment := pendingPayment(50_000)
		payment.Status = models.PaymentStatusCompleted
		ref := payment.TransactionReference

		f.payments.On("GetByReference", mock.Anything, ref).Return(payment, nil)
		f.apartments.On("GetByID", mock.Anything, uint(42)).Return(availableApartment(), nil)

		err := f.service.HandleWebhook(ctx, paystack.WebhookEvent{
			Event: paystack.EventChargeSuccess,
			Data:  *successData(ref),
		})

		require.NoError(t, err)
		f.payments.AssertNotCalled(t, "CompletePending",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.notifier.AssertNotCalled(t, "SendBookingConfirmation", mock.Anything, mock.Anything)
	})

	t.Run("unknown reference", func(t *testing.T) {
		f := newFixture(t)

		f.payments.On("GetByReference", mock.Anything, "TXN-0-missing").
			Return(nil, repositories.ErrPaymentNotFound)

		err := f.service.HandleWebhook(ctx, paystack.WebhookEvent{
			Event: paystack.EventChargeSuccess,
			Data:  paystack.VerifyData{Status: "success", Reference: "TXN-0-missing"},
		})

		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("regular user sees only their own transactions", func(t *testing.T) {
		f := newFixture(t)
		own := []models.Payment{*pendingPayment(50_000)}

		f.payments.On("ListByUser", mock.Anything, uint(3)).Return(own, nil)

		history, err := f.service.History(ctx, &models.UserClaims{UserID: 3, Role: models.RoleUser})

		require.NoError(t, err)
		assert.Len(t, history.Payments, 1)
		assert.Nil(t, history.Summary)
	})

	t.Run("admin sees completed commission records", func(t *testing.T) {
		f := newFixture(t)

		f.payments.On("ListCommissions", mock.Anything).Return([]models.Payment{}, nil)

		_, err := f.service.History(ctx, &models.UserClaims{UserID: 1, Role: models.RoleAdmin})

		require.NoError(t, err)
		f.payments.AssertCalled(t, "ListCommissions", mock.Anything)
		f.payments.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	})

	t.Run("agent sees shares and earnings summary", func(t *testing.T) {
		f := newFixture(t)

		f.payments.On("ListAgentShares", mock.Anything, uint(7)).Return([]models.Payment{}, nil)
		f.payments.On("SumAgentShares", mock.Anything, uint(7), models.PaymentStatusCompleted).
			Return(float64(45_000), nil)
		f.payments.On("SumAgentShares", mock.Anything, uint(7), models.PaymentStatusPending).
			Return(float64(0), nil)

		history, err := f.service.History(ctx, &models.UserClaims{UserID: 7, Role: models.RoleAgent})

		require.NoError(t, err)
		require.NotNil(t, history.Summary)
		assert.Equal(t, float64(45_000), history.Summary.TotalAvailable)
	})
}
