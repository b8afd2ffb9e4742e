package settlement

import (
	"context"

	"estatien/internal/models"
	"estatien/internal/services/paystack"
)

// Service is the settlement engine: it turns a booking payment request
// into a confirmed, commission-split, apartment-mutating, notified
// transaction.
type Service interface {
	Initialize(ctx context.Context, userEmail string, req InitializeRequest) (*InitializeResult, error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
	HandleWebhook(ctx context.Context, event paystack.WebhookEvent) error
	History(ctx context.Context, claims *models.UserClaims) (*History, error)
}

// Gateway is the slice of the card processor the engine depends on.
// *paystack.Client satisfies it.
type Gateway interface {
	Initialize(ctx context.Context, req paystack.InitializeRequest) (*paystack.InitializeData, error)
	VerifyTransaction(ctx context.Context, reference string) (*paystack.VerifyData, error)
}

// Notifier delivers the post-settlement messages. Failures are logged by
// the engine and never fail the settlement.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, notice BookingNotice) error
	SendAgentSettlement(ctx context.Context, notice AgentNotice) error
}

// ApartmentCache invalidates cached apartment reads after the
// availability flip. *cache.CacheService satisfies it.
type ApartmentCache interface {
	InvalidateApartment(ctx context.Context, id uint) error
}
