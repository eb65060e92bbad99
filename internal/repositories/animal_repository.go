package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"protomilk/internal/database"
	"protomilk/internal/models"
)

const animalColumns = `id, producer_id, name_or_id, breed, sex, in_lactation, is_covered, mother_id, father_id`

type AnimalRepository struct {
	db database.DB
}

func NewAnimalRepository(db database.DB) *AnimalRepository {
	return &AnimalRepository{db: db}
}

func scanAnimal(row pgx.Row, a *models.Animal) error {
	return row.Scan(
		&a.ID,
		&a.ProducerID,
		&a.NameOrID,
		&a.Breed,
		&a.Sex,
		&a.InLactation,
		&a.IsCovered,
		&a.MotherID,
		&a.FatherID,
	)
}

func (r *AnimalRepository) ListByProducer(ctx context.Context, producerID int64) ([]models.Animal, error) {
	query := `
		SELECT ` + animalColumns + `
		FROM animals WHERE producer_id = $1
		ORDER BY name_or_id, id
	`

	rows, err := r.db.Query(ctx, query, producerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	animals := []models.Animal{}
	for rows.Next() {
		var a models.Animal
		if err := scanAnimal(rows, &a); err != nil {
			return nil, err
		}
		animals = append(animals, a)
	}

	return animals, rows.Err()
}

func (r *AnimalRepository) Create(ctx context.Context, a *models.Animal) error {
	query := `
		INSERT INTO animals (producer_id, name_or_id, breed, sex, in_lactation, is_covered, mother_id, father_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + animalColumns

	row := r.db.QueryRow(ctx, query,
		a.ProducerID,
		a.NameOrID,
		a.Breed,
		a.Sex,
		a.InLactation,
		a.IsCovered,
		a.MotherID,
		a.FatherID,
	)
	return scanAnimal(row, a)
}

func (r *AnimalRepository) Update(ctx context.Context, a *models.Animal) error {
	query := `
		UPDATE animals SET
			producer_id = $2, name_or_id = $3, breed = $4, sex = $5,
			in_lactation = $6, is_covered = $7, mother_id = $8, father_id = $9
		WHERE id = $1
		RETURNING ` + animalColumns

	row := r.db.QueryRow(ctx, query,
		a.ID,
		a.ProducerID,
		a.NameOrID,
		a.Breed,
		a.Sex,
		a.InLactation,
		a.IsCovered,
		a.MotherID,
		a.FatherID,
	)
	return notFound(scanAnimal(row, a))
}

func (r *AnimalRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM animals WHERE id = $1`, id)
	return err
}
