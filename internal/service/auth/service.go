package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/medvault/booking-api/internal/email"
	"github.com/medvault/booking-api/internal/model"
	"github.com/medvault/booking-api/internal/repository"
	"github.com/medvault/booking-api/pkg/auth"
	apperrors "github.com/medvault/booking-api/pkg/errors"
	"github.com/medvault/booking-api/pkg/logger"
	"github.com/medvault/booking-api/pkg/metrics"
	"github.com/medvault/booking-api/pkg/security"
)

const dobLayout = "2006-01-02"

// Service handles registration and login
type Service struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
	jwtSvc   auth.JWTService
	mailer   email.Service
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

func NewService(
	userRepo repository.UserRepository,
	hasher security.PasswordHasher,
	jwtSvc auth.JWTService,
	mailer email.Service,
	m *metrics.Metrics,
	log *logger.Logger,
) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		jwtSvc:   jwtSvc,
		mailer:   mailer,
		metrics:  m,
		logger:   log,
	}
}

// Register creates the identity row and, for DOCTOR/PATIENT roles, its role
// extension in a single transaction: both rows are created or neither.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if !req.Role.Valid() {
		return nil, apperrors.BadRequest("invalid role", nil)
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user email: %w", err)
	}
	if exists {
		return nil, apperrors.Conflict("email already registered", nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}

	switch req.Role {
	case model.RoleDoctor:
		doctor := &model.Doctor{
			Specialization: req.Specialization,
			Experience:     req.Experience,
			Availability:   true,
		}
		if err := s.userRepo.CreateWithDoctor(ctx, user, doctor); err != nil {
			return nil, err
		}
	case model.RolePatient:
		patient := &model.Patient{
			BloodGroup: req.BloodGroup,
		}
		if req.DateOfBirth != "" {
			dob, err := time.Parse(dobLayout, req.DateOfBirth)
			if err != nil {
				return nil, apperrors.BadRequest("invalid date of birth", err)
			}
			patient.DateOfBirth = &dob
		}
		if err := s.userRepo.CreateWithPatient(ctx, user, patient); err != nil {
			return nil, err
		}
	default:
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	if s.metrics != nil {
		s.metrics.UsersRegistered.WithLabelValues(string(user.Role)).Inc()
	}
	if s.mailer != nil {
		if err := s.mailer.SendWelcome(ctx, user.Email, user.Name); err != nil && s.logger != nil {
			s.logger.Error(err, "failed to send welcome email", "user_id", user.ID)
		}
	}

	return s.authResponse(user)
}

// Login verifies credentials and issues a token
func (s *Service) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid credentials", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials", err)
	}

	return s.authResponse(user)
}

func (s *Service) authResponse(user *model.User) (*model.AuthResponse, error) {
	token, err := s.jwtSvc.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &model.AuthResponse{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
