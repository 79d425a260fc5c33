package model

import (
	"github.com/google/uuid"
)

// MedicalRecord holds uploaded record metadata for a patient. The file
// itself lives elsewhere; FileURL is an opaque reference.
type MedicalRecord struct {
	Base
	PatientID   uuid.UUID `json:"patient_id" db:"patient_id"`
	FileURL     string    `json:"file_url" db:"file_url"`
	Description string    `json:"description" db:"description"`
}
