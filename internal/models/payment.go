package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment record types
const (
	PaymentTypeBooking    = "booking"
	PaymentTypeCommission = "commission"
)

// Payment methods
const (
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodUSSD         = "ussd"
)

// CurrencyNGN is the only supported settlement currency.
const CurrencyNGN = "NGN"

// Metadata keys used to cross-link derived settlement records.
const (
	MetaOriginalPaymentID = "originalPaymentId"
	MetaOriginalReference = "originalReference"
	MetaIsAdminCommission = "isAdminCommission"
	MetaIsAgentPayment    = "isAgentPayment"
	MetaGatewayReference  = "gatewayReference"
	MetaChannel           = "channel"
	MetaCardType          = "cardType"
	MetaLast4             = "last4"
	MetaBank              = "bank"
)

// BookingData is embedded in a payment record and snapshots the stay
// the renter paid for.
type BookingData struct {
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	Adults         int       `json:"adults"`
	Children       int       `json:"children"`
	AdditionalInfo string    `json:"additionalInfo,omitempty"`
	TotalAmount    float64   `json:"totalAmount"`
}

// Guests returns the total occupant count.
func (b BookingData) Guests() int { return b.Adults + b.Children }

// Payment is one transaction row. A settled booking is represented by
// three rows sharing a reference prefix: the original TXN- booking, a
// COM- commission record and an AGT- agent-share record.
type Payment struct {
	gorm.Model
	UserID      uint       `gorm:"index;not null"`
	User        *User      `gorm:"foreignKey:UserID"`
	ApartmentID uint       `gorm:"index;not null"`
	Apartment   *Apartment `gorm:"foreignKey:ApartmentID"`

	BookingData BookingData `gorm:"embedded;embeddedPrefix:booking_"`

	// Amounts are stored in major units (naira); conversion to kobo
	// happens only at the gateway boundary.
	Amount          float64 `gorm:"not null"`
	AdminCommission float64 `gorm:"not null;default:0"`
	AgentAmount     float64 `gorm:"not null;default:0"`

	Type     string `gorm:"type:varchar(16);default:'booking';index:idx_payments_type_status"`
	Currency string `gorm:"type:varchar(8);default:'NGN'"`
	Status   string `gorm:"type:varchar(16);default:'pending';index:idx_payments_type_status"`

	TransactionReference string `gorm:"uniqueIndex;not null"`
	PaymentMethod        string `gorm:"type:varchar(16);not null"`
	PaymentDate          *time.Time
	Metadata             JSON `gorm:"type:jsonb"`
}

// Settled reports whether the payment has been confirmed.
func (p *Payment) Settled() bool { return p.Status == PaymentStatusCompleted }
