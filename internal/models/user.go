package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of account roles. Handlers and services branch
// on the typed constants, never on raw strings from a request.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known constants.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// CanListApartments reports whether the role may create listings.
func (r Role) CanListApartments() bool { return r == RoleAgent || r == RoleAdmin }

// CanModerate reports whether the role may approve or decline listings
// and view platform commission records.
func (r Role) CanModerate() bool { return r == RoleAdmin }

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null" json:"-"`
	FullName      string `gorm:"not null"`
	Phone         string
	Role          Role   `gorm:"type:varchar(16);default:'user';not null"`
	Status        string `gorm:"default:'active'"`
	EmailVerified bool   `gorm:"default:false"`
	LastLoginAt   time.Time
	TokenVersion  int `gorm:"default:1"`
}
