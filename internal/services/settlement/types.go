package settlement

import (
	"time"

	"estatien/internal/models"
)

// InitializeRequest starts a booking payment for an apartment.
type InitializeRequest struct {
	ApartmentID uint               `json:"apartmentId"`
	Booking     models.BookingData `json:"bookingData"`
}

// InitializeResult hands the client what it needs to complete the charge
// on the gateway. Amount is in major units.
type InitializeResult struct {
	AccessCode string  `json:"access_code"`
	Reference  string  `json:"reference"`
	Amount     float64 `json:"amount"`
}

// VerifyResult reports the outcome of a pull-path verification. When the
// gateway has not confirmed the charge yet, Completed is false and
// GatewayStatus carries the gateway's own status string; nothing was
// mutated.
type VerifyResult struct {
	Completed     bool              `json:"completed"`
	GatewayStatus string            `json:"gatewayStatus,omitempty"`
	Payment       *models.Payment   `json:"payment"`
	Apartment     *models.Apartment `json:"apartment,omitempty"`
}

// AgentSummary aggregates an agent's earnings across settled bookings.
type AgentSummary struct {
	TotalAvailable float64 `json:"totalAvailable"`
	TotalPending   float64 `json:"totalPending"`
}

// History is the role-dependent transaction view.
type History struct {
	Payments []models.Payment `json:"transactions"`
	Summary  *AgentSummary    `json:"summary,omitempty"`
}

// BookingNotice is the confirmation sent to the payer.
type BookingNotice struct {
	To       string
	Name     string
	Location string
	CheckIn  time.Time
	CheckOut time.Time
	Amount   float64
	Currency string
}

// AgentNotice is the settlement breakdown sent to the listing agent.
type AgentNotice struct {
	To              string
	Name            string
	Location        string
	CheckIn         time.Time
	CheckOut        time.Time
	Amount          float64
	AdminCommission float64
	AgentAmount     float64
	GuestName       string
	GuestEmail      string
	Guests          int
}
