package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/medvault/booking-api/internal/model"
	"github.com/medvault/booking-api/internal/repository"
	apperrors "github.com/medvault/booking-api/pkg/errors"
)

type userRepository struct {
	BaseRepository
}

func NewUserRepository(base BaseRepository) repository.UserRepository {
	return &userRepository{base}
}

const insertUserQuery = `
	INSERT INTO users (id, name, email, password_hash, role, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, insertUserQuery,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("email already registered", err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// CreateWithDoctor inserts the identity row and its doctor extension in one
// transaction. Both succeed or both are rolled back.
func (r *userRepository) CreateWithDoctor(ctx context.Context, user *model.User, doctor *model.Doctor) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	doctor.ID = user.ID

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, insertUserQuery,
			user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt,
		); err != nil {
			if isUniqueViolation(err) {
				return apperrors.Conflict("email already registered", err)
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		query := `
			INSERT INTO doctors (id, specialization, experience, availability)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.ExecContext(ctx, query,
			doctor.ID, doctor.Specialization, doctor.Experience, doctor.Availability,
		); err != nil {
			return fmt.Errorf("failed to create doctor: %w", err)
		}
		return nil
	})
}

// CreateWithPatient inserts the identity row and its patient extension in
// one transaction.
func (r *userRepository) CreateWithPatient(ctx context.Context, user *model.User, patient *model.Patient) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	patient.ID = user.ID

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, insertUserQuery,
			user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt,
		); err != nil {
			if isUniqueViolation(err) {
				return apperrors.Conflict("email already registered", err)
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		query := `
			INSERT INTO patients (id, dob, blood_group)
			VALUES ($1, $2, $3)
		`
		if _, err := tx.ExecContext(ctx, query,
			patient.ID, patient.DateOfBirth, patient.BloodGroup,
		); err != nil {
			return fmt.Errorf("failed to create patient: %w", err)
		}
		return nil
	})
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, mapNotFound(err, "user")
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, mapNotFound(err, "user")
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("failed to check user email: %w", err)
	}
	return exists, nil
}

func (r *userRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		ORDER BY created_at
	`
	var users []*model.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes the identity row only. No cascade: doctor/patient extension
// rows and appointments referencing the user are left in place.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("user", nil)
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
