package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"transport-dataset/internal/domain"

	"github.com/shopspring/decimal"
)

func money(x float64) decimal.Decimal {
	return decimal.NewFromFloat(x).Round(2)
}

// Column values for one row, keyed by the record's position in the dataset.
func shipmentArgs(id int, s domain.Shipment) []any {
	return []any{
		id,
		s.OriginCity.String(),
		s.DestinationCity.String(),
		s.DistanceKm,
		money(s.WeightTons),
		money(s.VolumeM3),
		s.CargoType.String(),
		s.TransportType.String(),
		s.Season.String(),
		s.DayOfWeek.String(),
		money(s.FuelPrice),
		money(s.PriceRub),
	}
}

// replaceShipments swaps the table contents for shipments inside one transaction.
func replaceShipments(ctx context.Context, db *sql.DB, insertQuery string, shipments []domain.Shipment) error {
	if db == nil {
		return errors.New("save shipments: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save shipments: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shipments;`); err != nil {
		return fmt.Errorf("save shipments: clear table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("save shipments: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range shipments {
		if _, err := stmt.ExecContext(ctx, shipmentArgs(i, s)...); err != nil {
			return fmt.Errorf("save shipments: insert shipment_id=%d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save shipments: commit tx: %w", err)
	}

	return nil
}

func countShipments(ctx context.Context, db *sql.DB) (int, error) {
	if db == nil {
		return 0, errors.New("count shipments: DB is nil")
	}

	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shipments;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count shipments: %w", err)
	}
	return n, nil
}
