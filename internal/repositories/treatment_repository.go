package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"protomilk/internal/database"
	"protomilk/internal/models"
)

const treatmentColumns = `id, animal_id, reason, medication_name, start_date, milk_withdrawal_days`

type TreatmentRepository struct {
	db database.DB
}

func NewTreatmentRepository(db database.DB) *TreatmentRepository {
	return &TreatmentRepository{db: db}
}

func scanTreatment(row pgx.Row, t *models.Treatment) error {
	return row.Scan(
		&t.ID,
		&t.AnimalID,
		&t.Reason,
		&t.MedicationName,
		&t.StartDate,
		&t.MilkWithdrawalDays,
	)
}

// List returns treatments, most recent start date first. A nil animalID lists
// every treatment.
func (r *TreatmentRepository) List(ctx context.Context, animalID *int64) ([]models.Treatment, error) {
	query := `
		SELECT ` + treatmentColumns + `
		FROM treatments
		WHERE ($1::int IS NULL OR animal_id = $1)
		ORDER BY start_date DESC NULLS LAST, id DESC
	`

	rows, err := r.db.Query(ctx, query, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	treatments := []models.Treatment{}
	for rows.Next() {
		var t models.Treatment
		if err := scanTreatment(rows, &t); err != nil {
			return nil, err
		}
		treatments = append(treatments, t)
	}

	return treatments, rows.Err()
}

func (r *TreatmentRepository) GetByID(ctx context.Context, id int64) (*models.Treatment, error) {
	query := `SELECT ` + treatmentColumns + ` FROM treatments WHERE id = $1`

	var t models.Treatment
	if err := scanTreatment(r.db.QueryRow(ctx, query, id), &t); err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *TreatmentRepository) Create(ctx context.Context, t *models.Treatment) error {
	query := `
		INSERT INTO treatments (animal_id, reason, medication_name, start_date, milk_withdrawal_days)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + treatmentColumns

	row := r.db.QueryRow(ctx, query,
		t.AnimalID,
		t.Reason,
		t.MedicationName,
		t.StartDate,
		t.MilkWithdrawalDays,
	)
	return scanTreatment(row, t)
}

func (r *TreatmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM treatments WHERE id = $1`, id)
	return err
}
