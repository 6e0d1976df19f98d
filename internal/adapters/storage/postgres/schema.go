package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// The cross-field vaccine/allergy rules are validation-layer only; storage
// enforces just the column-level enums and the cascade.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS pets (
		id            BIGSERIAL PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		animal_type   VARCHAR(100) NOT NULL,
		owner_name    VARCHAR(255) NOT NULL,
		date_of_birth DATE NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS medical_records (
		id          BIGSERIAL PRIMARY KEY,
		pet_id      BIGINT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		record_type VARCHAR(20) NOT NULL CHECK (record_type IN ('vaccine', 'allergy')),
		name        VARCHAR(255) NOT NULL,
		date        DATE,
		reactions   TEXT,
		severity    VARCHAR(10) CHECK (severity IN ('mild', 'severe')),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_medical_records_pet_id ON medical_records (pet_id)`,
	`CREATE INDEX IF NOT EXISTS idx_pets_created_at ON pets (created_at DESC)`,
}

// Migrate applies the schema. Statements are idempotent, so running it on
// every deploy is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
