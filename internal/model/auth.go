package model

import (
	"github.com/google/uuid"
)

// LoginRequest carries user credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RegisterRequest carries the identity fields plus the role-specific
// extension fields. Doctor fields apply when role is DOCTOR, patient
// fields when role is PATIENT.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     Role   `json:"role" binding:"required,oneof=ADMIN DOCTOR PATIENT"`

	// Doctor specific
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience" binding:"min=0"`

	// Patient specific
	DateOfBirth string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	BloodGroup  string `json:"bloodGroup" binding:"omitempty,bloodgroup"`
}

// AuthResponse is returned from register and login
type AuthResponse struct {
	Token string    `json:"token"`
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}
