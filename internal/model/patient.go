package model

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the role extension for users with RolePatient.
// It shares its ID with the owning user row.
type Patient struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	DateOfBirth *time.Time `json:"dob" db:"dob"`
	BloodGroup  string     `json:"blood_group" db:"blood_group"`
}
