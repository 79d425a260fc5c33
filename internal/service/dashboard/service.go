package dashboard

import (
	"context"
	"fmt"

	"github.com/medvault/booking-api/internal/model"
	"github.com/medvault/booking-api/internal/repository"
)

// Service computes the admin dashboard counts. The four counts are taken
// with independent queries; they are individually consistent but may be
// mutually skewed under concurrent writes.
type Service struct {
	userRepo        repository.UserRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
}

func NewService(
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
) *Service {
	return &Service{
		userRepo:        userRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (s *Service) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	doctors, err := s.doctorRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count doctors: %w", err)
	}
	patients, err := s.patientRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	appointments, err := s.appointmentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}

	return &model.DashboardStats{
		TotalUsers:        users,
		TotalDoctors:      doctors,
		TotalPatients:     patients,
		TotalAppointments: appointments,
	}, nil
}
