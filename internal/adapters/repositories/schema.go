package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite shipments schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, []string{
		`
	CREATE TABLE IF NOT EXISTS shipments (
		shipment_id INTEGER PRIMARY KEY,
		origin_city TEXT NOT NULL,
		destination_city TEXT NOT NULL,
		distance_km INTEGER NOT NULL,
		weight_tons REAL NOT NULL,
		volume_m3 REAL NOT NULL,
		cargo_type TEXT NOT NULL,
		transport_type TEXT NOT NULL,
		season TEXT NOT NULL,
		day_of_week TEXT NOT NULL,
		fuel_price REAL NOT NULL,
		price_rub REAL NOT NULL
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_shipments_cargo_transport
	ON shipments(cargo_type, transport_type);
	`,
	})
}

// Initialize the Postgres shipments schema. Decimals are stored as NUMERIC
// so the two-digit values survive without binary float error.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, []string{
		`
	CREATE TABLE IF NOT EXISTS shipments (
		shipment_id INTEGER PRIMARY KEY,
		origin_city TEXT NOT NULL,
		destination_city TEXT NOT NULL,
		distance_km INTEGER NOT NULL,
		weight_tons NUMERIC(6, 2) NOT NULL,
		volume_m3 NUMERIC(6, 2) NOT NULL,
		cargo_type TEXT NOT NULL,
		transport_type TEXT NOT NULL,
		season TEXT NOT NULL,
		day_of_week TEXT NOT NULL,
		fuel_price NUMERIC(6, 2) NOT NULL,
		price_rub NUMERIC(12, 2) NOT NULL
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_shipments_cargo_transport
	ON shipments(cargo_type, transport_type);
	`,
	})
}

func initSchema(ctx context.Context, db *sql.DB, statements []string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
