package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"protomilk/internal/database"
	"protomilk/internal/models"
)

const producerColumns = `id, name, property, phone`

type ProducerRepository struct {
	db database.DB
}

func NewProducerRepository(db database.DB) *ProducerRepository {
	return &ProducerRepository{db: db}
}

func scanProducer(row pgx.Row, p *models.Producer) error {
	return row.Scan(&p.ID, &p.Name, &p.Property, &p.Phone)
}

func (r *ProducerRepository) List(ctx context.Context) ([]models.Producer, error) {
	query := `SELECT ` + producerColumns + ` FROM producers ORDER BY name, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	producers := []models.Producer{}
	for rows.Next() {
		var p models.Producer
		if err := scanProducer(rows, &p); err != nil {
			return nil, err
		}
		producers = append(producers, p)
	}

	return producers, rows.Err()
}

func (r *ProducerRepository) GetByID(ctx context.Context, id int64) (*models.Producer, error) {
	query := `SELECT ` + producerColumns + ` FROM producers WHERE id = $1`

	var p models.Producer
	if err := scanProducer(r.db.QueryRow(ctx, query, id), &p); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// Create inserts the producer and overwrites p with the stored row, including
// the generated id.
func (r *ProducerRepository) Create(ctx context.Context, p *models.Producer) error {
	query := `
		INSERT INTO producers (name, property, phone)
		VALUES ($1, $2, $3)
		RETURNING ` + producerColumns

	return scanProducer(r.db.QueryRow(ctx, query, p.Name, p.Property, p.Phone), p)
}

func (r *ProducerRepository) Update(ctx context.Context, p *models.Producer) error {
	query := `
		UPDATE producers SET
			name = $2, property = $3, phone = $4
		WHERE id = $1
		RETURNING ` + producerColumns

	err := scanProducer(r.db.QueryRow(ctx, query, p.ID, p.Name, p.Property, p.Phone), p)
	return notFound(err)
}

// Delete removes the producer if present. Deleting a missing id is not an error.
func (r *ProducerRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM producers WHERE id = $1`, id)
	return err
}
