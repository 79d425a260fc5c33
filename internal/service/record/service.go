package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medvault/booking-api/internal/model"
	"github.com/medvault/booking-api/internal/repository"
	"github.com/medvault/booking-api/pkg/metrics"
)

// Service handles medical record metadata uploads and listings
type Service struct {
	repo        repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
	metrics     *metrics.Metrics
}

func NewService(repo repository.MedicalRecordRepository, patientRepo repository.PatientRepository, m *metrics.Metrics) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		metrics:     m,
	}
}

// UploadRecord stores record metadata for an existing patient
func (s *Service) UploadRecord(ctx context.Context, patientID uuid.UUID, fileURL, description string) (*model.MedicalRecord, error) {
	if _, err := s.patientRepo.Get(ctx, patientID); err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	record := &model.MedicalRecord{
		PatientID:   patientID,
		FileURL:     fileURL,
		Description: description,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create medical record: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordsUploaded.Inc()
	}
	return record, nil
}

// ListRecords returns all records for a patient
func (s *Service) ListRecords(ctx context.Context, patientID uuid.UUID) ([]*model.MedicalRecord, error) {
	records, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	return records, nil
}
