package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"protomilk/internal/database"
	"protomilk/internal/models"
)

const medicationColumns = `id, name, dosage_per_kg, withdrawal_days, price, purchase_date, expiration_date`

type MedicationRepository struct {
	db database.DB
}

func NewMedicationRepository(db database.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

func scanMedication(row pgx.Row, m *models.Medication) error {
	return row.Scan(
		&m.ID,
		&m.Name,
		&m.DosagePerKg,
		&m.WithdrawalDays,
		&m.Price,
		&m.PurchaseDate,
		&m.ExpirationDate,
	)
}

func (r *MedicationRepository) List(ctx context.Context) ([]models.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications ORDER BY name, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	medications := []models.Medication{}
	for rows.Next() {
		var m models.Medication
		if err := scanMedication(rows, &m); err != nil {
			return nil, err
		}
		medications = append(medications, m)
	}

	return medications, rows.Err()
}

func (r *MedicationRepository) GetByID(ctx context.Context, id int64) (*models.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE id = $1`

	var m models.Medication
	if err := scanMedication(r.db.QueryRow(ctx, query, id), &m); err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func (r *MedicationRepository) Create(ctx context.Context, m *models.Medication) error {
	query := `
		INSERT INTO medications (name, dosage_per_kg, withdrawal_days, price, purchase_date, expiration_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + medicationColumns

	row := r.db.QueryRow(ctx, query,
		m.Name,
		m.DosagePerKg,
		m.WithdrawalDays,
		m.Price,
		m.PurchaseDate,
		m.ExpirationDate,
	)
	return scanMedication(row, m)
}

func (r *MedicationRepository) Update(ctx context.Context, m *models.Medication) error {
	query := `
		UPDATE medications SET
			name = $2, dosage_per_kg = $3, withdrawal_days = $4, price = $5,
			purchase_date = $6, expiration_date = $7
		WHERE id = $1
		RETURNING ` + medicationColumns

	row := r.db.QueryRow(ctx, query,
		m.ID,
		m.Name,
		m.DosagePerKg,
		m.WithdrawalDays,
		m.Price,
		m.PurchaseDate,
		m.ExpirationDate,
	)
	return notFound(scanMedication(row, m))
}

func (r *MedicationRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM medications WHERE id = $1`, id)
	return err
}
