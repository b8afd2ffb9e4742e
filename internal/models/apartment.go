package models

import (
	"gorm.io/gorm"
)

// Listing moderation statuses
const (
	ApartmentStatusPending  = "pending"
	ApartmentStatusApproved = "approved"
	ApartmentStatusDeclined = "declined"
)

// Availability states
const (
	AvailabilityAvailable   = "Available"
	AvailabilityUnavailable = "Unavailable"
)

// Property types accepted for a listing
const (
	PropertyTypeSingleRoom = "Single Room"
	PropertyTypeTwoBedroom = "2-Bedroom"
	PropertyTypeDuplex     = "Duplex"
	PropertyTypeStudio     = "Studio"
)

type Apartment struct {
	gorm.Model
	AgentID        uint    `gorm:"index;not null"`
	Agent          *User   `gorm:"foreignKey:AgentID"`
	Title          string  `gorm:"not null"`
	Location       string  `gorm:"not null"`
	Address        string  `gorm:"not null"`
	State          string  `gorm:"not null"`
	PricePerDay    float64 `gorm:"not null"`
	TotalRooms     int     `gorm:"not null"`
	PropertyType   string  `gorm:"not null"`
	Facilities     string
	Description    string
	ParkingSpace   bool   `gorm:"default:false"`
	PartiesAllowed bool   `gorm:"default:false"`
	Images         JSON   `gorm:"type:jsonb"`
	Video          string
	Status         string `gorm:"type:varchar(16);default:'pending';index"`
	Availability   string `gorm:"type:varchar(16);default:'Available'"`
	// RentedBy is set exactly once, when a booking settles. An
	// Unavailable apartment always carries a non-nil RentedBy.
	RentedBy *uint
	Renter   *User `gorm:"foreignKey:RentedBy"`
}

// Bookable reports whether the apartment can accept a new booking.
func (a *Apartment) Bookable() bool {
	return a.Status == ApartmentStatusApproved && a.Availability == AvailabilityAvailable
}
