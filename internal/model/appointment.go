package model

import (
	"time"

	"github.com/google/uuid"
)

// Suggested status values. The status column is an open string and no
// transition table is enforced; these are conventions, not constraints.
const (
	AppointmentStatusPending   = "PENDING"
	AppointmentStatusConfirmed = "CONFIRMED"
	AppointmentStatusCancelled = "CANCELLED"
	AppointmentStatusCompleted = "COMPLETED"
)

// Appointment links one doctor and one patient at a point in time.
// CreatedAt is set once at insert and never updated.
type Appointment struct {
	Base
	DoctorID        uuid.UUID `json:"doctor_id" db:"doctor_id"`
	PatientID       uuid.UUID `json:"patient_id" db:"patient_id"`
	AppointmentDate time.Time `json:"appointment_date" db:"appointment_date"`
	Status          string    `json:"status" db:"status"`
	Notes           string    `json:"notes,omitempty" db:"notes"`
}

// AppointmentDetail is an appointment joined with the identity fields of
// its doctor and patient, returned fully materialized to API callers.
type AppointmentDetail struct {
	Appointment
	DoctorName           string `json:"doctor_name" db:"doctor_name"`
	DoctorEmail          string `json:"doctor_email" db:"doctor_email"`
	DoctorSpecialization string `json:"doctor_specialization" db:"doctor_specialization"`
	PatientName          string `json:"patient_name" db:"patient_name"`
	PatientEmail         string `json:"patient_email" db:"patient_email"`
}

// BookAppointmentRequest is the booking request body. Date stays a string
// here: the handler parses it with a fallback layout before calling the
// service.
type BookAppointmentRequest struct {
	DoctorID uuid.UUID `json:"doctorId" binding:"required"`
	Date     string    `json:"date" binding:"required"`
	Notes    string    `json:"notes"`
}

// BookAppointmentResponse preserves the response contract of the booking
// endpoint.
type BookAppointmentResponse struct {
	Success       bool      `json:"success"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	Message       string    `json:"message"`
}
