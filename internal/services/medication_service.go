package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"protomilk/internal/models"
)

type MedicationStore interface {
	List(ctx context.Context) ([]models.Medication, error)
	GetByID(ctx context.Context, id int64) (*models.Medication, error)
	Create(ctx context.Context, m *models.Medication) error
	Update(ctx context.Context, m *models.Medication) error
	Delete(ctx context.Context, id int64) error
}

type MedicationService struct {
	medicationRepo MedicationStore
}

func NewMedicationService(medicationRepo MedicationStore) *MedicationService {
	return &MedicationService{medicationRepo: medicationRepo}
}

// MedicationRequest accepts dates as "YYYY-MM-DD" and numbers either as JSON
// numbers or numeric strings.
type MedicationRequest struct {
	Name           string              `json:"name" binding:"required"`
	DosagePerKg    decimal.NullDecimal `json:"dosage_per_kg"`
	WithdrawalDays *int32              `json:"withdrawal_days"`
	Price          decimal.NullDecimal `json:"price"`
	PurchaseDate   pgtype.Date         `json:"purchase_date"`
	ExpirationDate pgtype.Date         `json:"expiration_date"`
}

func (req MedicationRequest) toModel(id int64) *models.Medication {
	return &models.Medication{
		ID:             id,
		Name:           req.Name,
		DosagePerKg:    req.DosagePerKg,
		WithdrawalDays: req.WithdrawalDays,
		Price:          req.Price,
		PurchaseDate:   req.PurchaseDate,
		ExpirationDate: req.ExpirationDate,
	}
}

func (s *MedicationService) ListMedications(ctx context.Context) ([]models.Medication, error) {
	medications, err := s.medicationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return medications, nil
}

func (s *MedicationService) GetMedication(ctx context.Context, id int64) (*models.Medication, error) {
	medication, err := s.medicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get medication %d: %w", id, err)
	}
	return medication, nil
}

func (s *MedicationService) CreateMedication(ctx context.Context, req MedicationRequest) (*models.Medication, error) {
	medication := req.toModel(0)
	if err := s.medicationRepo.Create(ctx, medication); err != nil {
		return nil, fmt.Errorf("failed to create medication: %w", err)
	}
	return medication, nil
}

func (s *MedicationService) UpdateMedication(ctx context.Context, id int64, req MedicationRequest) (*models.Medication, error) {
	medication := req.toModel(id)
	if err := s.medicationRepo.Update(ctx, medication); err != nil {
		return nil, fmt.Errorf("failed to update medication %d: %w", id, err)
	}
	return medication, nil
}

func (s *MedicationService) DeleteMedication(ctx context.Context, id int64) error {
	if err := s.medicationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete medication %d: %w", id, err)
	}
	return nil
}
