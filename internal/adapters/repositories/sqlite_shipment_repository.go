package repositories

import (
	"context"
	"database/sql"
	"transport-dataset/internal/domain"
	"transport-dataset/internal/platform/obs"
)

// SQLite-backed implementation of the ShipmentRepository port.
type SqliteShipmentRepository struct{ DB *sql.DB }

func NewSqliteShipmentRepository(db *sql.DB) *SqliteShipmentRepository {
	return &SqliteShipmentRepository{DB: db}
}

// Replace the stored dataset with shipments.
func (s *SqliteShipmentRepository) SaveShipments(ctx context.Context, shipments []domain.Shipment) (err error) {
	defer obs.Time(ctx, "shipments.sqlite.Save")(&err)

	query := `
	INSERT INTO shipments (
		shipment_id,
		origin_city,
		destination_city,
		distance_km,
		weight_tons,
		volume_m3,
		cargo_type,
		transport_type,
		season,
		day_of_week,
		fuel_price,
		price_rub
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	return replaceShipments(ctx, s.DB, query, shipments)
}

func (s *SqliteShipmentRepository) CountShipments(ctx context.Context) (int, error) {
	return countShipments(ctx, s.DB)
}
