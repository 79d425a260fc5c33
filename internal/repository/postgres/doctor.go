package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medvault/booking-api/internal/model"
	"github.com/medvault/booking-api/internal/repository"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(base BaseRepository) repository.DoctorRepository {
	return &doctorRepository{base}
}

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `
		SELECT id, specialization, experience, availability
		FROM doctors
		WHERE id = $1
	`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id); err != nil {
		return nil, mapNotFound(err, "doctor")
	}
	return &doctor, nil
}

// ListWithIdentity returns every doctor joined with its identity fields,
// in insertion order.
func (r *doctorRepository) ListWithIdentity(ctx context.Context) ([]*model.DoctorDetail, error) {
	query := `
		SELECT d.id, d.specialization, d.experience, d.availability,
			   u.name, u.email
		FROM doctors d
		JOIN users u ON u.id = d.id
		ORDER BY u.created_at
	`
	var doctors []*model.DoctorDetail
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM doctors`); err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return count, nil
}
