package bootstrap

import (
	"context"
	"fmt"

	"github.com/medvault/booking-api/internal/model"
	"github.com/medvault/booking-api/internal/repository"
	"github.com/medvault/booking-api/pkg/logger"
	"github.com/medvault/booking-api/pkg/security"
)

// Default bootstrap credentials, overridable through config
const (
	DefaultAdminEmail    = "admin@medvault.com"
	DefaultAdminPassword = "Admin@123"

	sampleDoctorPassword = "Doctor@123"
)

type sampleDoctor struct {
	name           string
	email          string
	specialization string
	experience     int
}

var sampleDoctors = []sampleDoctor{
	{"Dr. Sarah Wilson", "sarah@medvault.com", "Cardiologist", 12},
	{"Dr. James Chen", "james@medvault.com", "Neurologist", 8},
	{"Dr. Elena Rossi", "elena@medvault.com", "Pediatrician", 15},
}

// Seeder performs one-shot startup seeding. Every step is guarded by an
// existence check, so re-running it is safe.
type Seeder struct {
	userRepo   repository.UserRepository
	doctorRepo repository.DoctorRepository
	hasher     security.PasswordHasher
	logger     *logger.Logger

	adminEmail    string
	adminPassword string
}

func NewSeeder(
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	hasher security.PasswordHasher,
	log *logger.Logger,
	adminEmail, adminPassword string,
) *Seeder {
	if adminEmail == "" {
		adminEmail = DefaultAdminEmail
	}
	if adminPassword == "" {
		adminPassword = DefaultAdminPassword
	}
	return &Seeder{
		userRepo:      userRepo,
		doctorRepo:    doctorRepo,
		hasher:        hasher,
		logger:        log,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// Seed creates the default admin and the sample doctors when missing
func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	if err := s.seedDoctors(ctx); err != nil {
		return fmt.Errorf("failed to seed doctors: %w", err)
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, s.adminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := s.hasher.Hash(s.adminPassword)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:         "System Admin",
		Email:        s.adminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("admin user created", "email", s.adminEmail)
	}
	return nil
}

func (s *Seeder) seedDoctors(ctx context.Context) error {
	count, err := s.doctorRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := s.hasher.Hash(sampleDoctorPassword)
	if err != nil {
		return err
	}

	for _, d := range sampleDoctors {
		user := &model.User{
			Name:         d.name,
			Email:        d.email,
			PasswordHash: hash,
			Role:         model.RoleDoctor,
		}
		doctor := &model.Doctor{
			Specialization: d.specialization,
			Experience:     d.experience,
			Availability:   true,
		}
		if err := s.userRepo.CreateWithDoctor(ctx, user, doctor); err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("sample doctors initialized", "count", len(sampleDoctors))
	}
	return nil
}
