package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/medvault/booking-api/internal/model"
)

// All repository interfaces in one file
type (
	// UserRepository handles identity rows. Registration creates the
	// identity and its role extension in one transaction.
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		CreateWithDoctor(ctx context.Context, user *model.User, doctor *model.Doctor) error
		CreateWithPatient(ctx context.Context, user *model.User, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		ExistsByEmail(ctx context.Context, email string) (bool, error)
		List(ctx context.Context) ([]*model.User, error)
		Delete(ctx context.Context, id uuid.UUID) error
		Count(ctx context.Context) (int64, error)
	}

	DoctorRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
		ListWithIdentity(ctx context.Context) ([]*model.DoctorDetail, error)
		Count(ctx context.Context) (int64, error)
	}

	PatientRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		Count(ctx context.Context) (int64, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.AppointmentDetail, error)
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.AppointmentDetail, error)
		Count(ctx context.Context) (int64, error)
	}

	MedicalRecordRepository interface {
		Create(ctx context.Context, record *model.MedicalRecord) error
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.MedicalRecord, error)
	}
)
