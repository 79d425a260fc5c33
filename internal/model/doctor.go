package model

import (
	"github.com/google/uuid"
)

// Doctor is the role extension for users with RoleDoctor.
// It shares its ID with the owning user row.
type Doctor struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Specialization string    `json:"specialization" db:"specialization"`
	Experience     int       `json:"experience" db:"experience"`
	Availability   bool      `json:"availability" db:"availability"`
}

// DoctorDetail is a doctor row joined with its identity fields,
// used for the patient-facing directory.
type DoctorDetail struct {
	Doctor
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}
