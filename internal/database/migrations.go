package database

import (
	"context"
	"fmt"
	"log"
)

func RunMigrations(ctx context.Context, db DB) error {
	migrations := []string{
		createProducersTable,
		createAnimalsTable,
		createMedicationsTable,
		createTreatmentsTable,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := db.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createProducersTable = `
CREATE TABLE IF NOT EXISTS producers (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  property TEXT,
  phone TEXT
);

CREATE INDEX IF NOT EXISTS idx_producers_name ON producers(name);
`

const createAnimalsTable = `
CREATE TABLE IF NOT EXISTS animals (
  id SERIAL PRIMARY KEY,
  producer_id INT NOT NULL REFERENCES producers(id),
  name_or_id TEXT NOT NULL,
  breed TEXT,
  sex TEXT,
  in_lactation BOOLEAN NOT NULL DEFAULT FALSE,
  is_covered BOOLEAN NOT NULL DEFAULT FALSE,
  mother_id INT REFERENCES animals(id) ON DELETE SET NULL,
  father_id INT REFERENCES animals(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_animals_producer_id ON animals(producer_id);
`

const createMedicationsTable = `
CREATE TABLE IF NOT EXISTS medications (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  dosage_per_kg NUMERIC(10,3),
  withdrawal_days INT,
  price NUMERIC(10,2),
  purchase_date DATE,
  expiration_date DATE
);

CREATE INDEX IF NOT EXISTS idx_medications_name ON medications(name);
`

const createTreatmentsTable = `
CREATE TABLE IF NOT EXISTS treatments (
  id SERIAL PRIMARY KEY,
  animal_id INT NOT NULL REFERENCES animals(id),
  reason TEXT,
  medication_name TEXT,
  start_date DATE,
  milk_withdrawal_days INT
);

CREATE INDEX IF NOT EXISTS idx_treatments_animal_id ON treatments(animal_id);
CREATE INDEX IF NOT EXISTS idx_treatments_start_date ON treatments(start_date);
`
