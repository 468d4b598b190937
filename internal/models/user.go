package models

import (
	"gorm.io/gorm"
)

// User represents an account on the platform. Doctors and pharmacies are
// users with the matching role; doctor-specific fields live on the same row.
type User struct {
	gorm.Model
	Username string   `gorm:"uniqueIndex;not null" json:"username"`
	Password string   `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Role     UserRole `gorm:"not null" json:"role"`
	FullName string   `json:"full_name"`
	Phone    string   `json:"phone"`

	// Doctor profile fields, zero-valued for other roles
	Speciality      string `json:"speciality,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty"`
	ConsultationFee int    `json:"consultation_fee,omitempty"`
}

// UserRole defines the account role type
type UserRole string

const (
	RolePatient  UserRole = "patient"
	RoleDoctor   UserRole = "doctor"
	RolePharmacy UserRole = "pharmacy"
)

// ValidRole reports whether r is one of the roles accepted at registration.
func ValidRole(r UserRole) bool {
	switch r {
	case RolePatient, RoleDoctor, RolePharmacy:
		return true
	}
	return false
}
