package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"protomilk/internal/models"
)

type TreatmentStore interface {
	List(ctx context.Context, animalID *int64) ([]models.Treatment, error)
	GetByID(ctx context.Context, id int64) (*models.Treatment, error)
	Create(ctx context.Context, t *models.Treatment) error
	Delete(ctx context.Context, id int64) error
}

type TreatmentService struct {
	treatmentRepo TreatmentStore
}

func NewTreatmentService(treatmentRepo TreatmentStore) *TreatmentService {
	return &TreatmentService{treatmentRepo: treatmentRepo}
}

// TreatmentRequest carries the medication by name only; it is not checked
// against the medications catalog.
type TreatmentRequest struct {
	AnimalID           int64       `json:"animal_id" binding:"required,max=2147483647"`
	Reason             *string     `json:"reason"`
	MedicationName     *string     `json:"medication_name"`
	StartDate          pgtype.Date `json:"start_date"`
	MilkWithdrawalDays *int32      `json:"milk_withdrawal_days"`
}

func (s *TreatmentService) ListTreatments(ctx context.Context, animalID *int64) ([]models.Treatment, error) {
	treatments, err := s.treatmentRepo.List(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}
	return treatments, nil
}

func (s *TreatmentService) GetTreatment(ctx context.Context, id int64) (*models.Treatment, error) {
	treatment, err := s.treatmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get treatment %d: %w", id, err)
	}
	return treatment, nil
}

func (s *TreatmentService) CreateTreatment(ctx context.Context, req TreatmentRequest) (*models.Treatment, error) {
	treatment := &models.Treatment{
		AnimalID:           req.AnimalID,
		Reason:             req.Reason,
		MedicationName:     req.MedicationName,
		StartDate:          req.StartDate,
		MilkWithdrawalDays: req.MilkWithdrawalDays,
	}
	if err := s.treatmentRepo.Create(ctx, treatment); err != nil {
		return nil, fmt.Errorf("failed to create treatment: %w", err)
	}
	return treatment, nil
}

func (s *TreatmentService) DeleteTreatment(ctx context.Context, id int64) error {
	if err := s.treatmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete treatment %d: %w", id, err)
	}
	return nil
}
