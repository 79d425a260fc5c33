package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medvault/booking-api/internal/email"
	"github.com/medvault/booking-api/internal/model"
	"github.com/medvault/booking-api/internal/repository"
	"github.com/medvault/booking-api/pkg/logger"
	"github.com/medvault/booking-api/pkg/messaging"
	"github.com/medvault/booking-api/pkg/metrics"
)

// Service implements booking, status transitions and appointment queries.
// Broker, mailer and metrics are optional; their failures never surface to
// callers.
type Service struct {
	repo        repository.AppointmentRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
	broker      messaging.Broker
	mailer      email.Service
	metrics     *metrics.Metrics
	logger      *logger.Logger
}

func NewService(
	repo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	broker messaging.Broker,
	mailer email.Service,
	m *metrics.Metrics,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:        repo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		userRepo:    userRepo,
		broker:      broker,
		mailer:      mailer,
		metrics:     m,
		logger:      log,
	}
}

// Book creates a new appointment. Both references must resolve; the status
// is always forced to PENDING. No past-date, availability or double-booking
// checks: concurrent bookings of the same slot both succeed.
func (s *Service) Book(ctx context.Context, doctorID, patientID uuid.UUID, date time.Time, notes string) (*model.Appointment, error) {
	if _, err := s.doctorRepo.Get(ctx, doctorID); err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	if _, err := s.patientRepo.Get(ctx, patientID); err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	appointment := &model.Appointment{
		DoctorID:        doctorID,
		PatientID:       patientID,
		AppointmentDate: date,
		Status:          model.AppointmentStatusPending,
		Notes:           notes,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.AppointmentsBooked.Inc()
	}
	s.publish(ctx, messaging.ChannelAppointmentCreated, appointment)
	s.sendConfirmation(ctx, appointment)

	return appointment, nil
}

// UpdateStatus overwrites the appointment status unconditionally; there is
// no transition table. Notes are replaced only when notes is non-nil, so an
// omitted parameter keeps the stored value while an empty string clears it.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status string, notes *string) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	appointment.Status = status
	if notes != nil {
		appointment.Notes = *notes
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.StatusTransitions.WithLabelValues(status).Inc()
	}
	s.publish(ctx, messaging.ChannelAppointmentStatusChanged, appointment)

	return appointment, nil
}

// ListByDoctor returns the doctor's appointments fully materialized with
// doctor and patient identity fields.
func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.AppointmentDetail, error) {
	appointments, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// ListByPatient is the patient-side counterpart of ListByDoctor.
func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.AppointmentDetail, error) {
	appointments, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (s *Service) publish(ctx context.Context, channel string, appointment *model.Appointment) {
	if s.broker == nil {
		return
	}
	msg := messaging.Message{Type: channel, Payload: appointment}
	if err := s.broker.Publish(ctx, channel, msg); err != nil && s.logger != nil {
		s.logger.Error(err, "failed to publish appointment event",
			"channel", channel, "appointment_id", appointment.ID)
	}
}

func (s *Service) sendConfirmation(ctx context.Context, appointment *model.Appointment) {
	if s.mailer == nil {
		return
	}
	patient, err := s.userRepo.Get(ctx, appointment.PatientID)
	if err != nil {
		if s.logger != nil {
			s.logger.Error(err, "failed to look up patient for confirmation email",
				"appointment_id", appointment.ID)
		}
		return
	}
	if err := s.mailer.SendBookingConfirmation(ctx, patient.Email, patient.Name, appointment.AppointmentDate); err != nil && s.logger != nil {
		s.logger.Error(err, "failed to send booking confirmation",
			"appointment_id", appointment.ID)
	}
}
