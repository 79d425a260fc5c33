package doctor

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/medvault/booking-api/internal/model"
	"github.com/medvault/booking-api/internal/repository"
)

const (
	directoryCacheKey = "doctor_directory"
	directoryCacheTTL = time.Minute
)

// Service serves the patient-facing doctor directory. The listing is
// read-heavy and tolerates short staleness, so it sits behind a TTL cache.
type Service struct {
	repo  repository.DoctorRepository
	cache *gocache.Cache
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(directoryCacheTTL, 5*time.Minute),
	}
}

// ListDoctors returns every doctor joined with its identity fields
func (s *Service) ListDoctors(ctx context.Context) ([]*model.DoctorDetail, error) {
	if cached, ok := s.cache.Get(directoryCacheKey); ok {
		return cached.([]*model.DoctorDetail), nil
	}

	doctors, err := s.repo.ListWithIdentity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	s.cache.Set(directoryCacheKey, doctors, gocache.DefaultExpiration)
	return doctors, nil
}
