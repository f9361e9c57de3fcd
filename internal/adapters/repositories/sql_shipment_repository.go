package repositories

import (
	"context"
	"database/sql"
	"transport-dataset/internal/domain"
	"transport-dataset/internal/platform/obs"
)

// SQLShipmentRepository stores shipments in Postgres.
type SQLShipmentRepository struct {
	DB *sql.DB
}

func NewSQLShipmentRepository(db *sql.DB) *SQLShipmentRepository {
	return &SQLShipmentRepository{DB: db}
}

func (s *SQLShipmentRepository) SaveShipments(ctx context.Context, shipments []domain.Shipment) (err error) {
	defer obs.Time(ctx, "shipments.postgres.Save")(&err)

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
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	return replaceShipments(ctx, s.DB, query, shipments)
}

func (s *SQLShipmentRepository) CountShipments(ctx context.Context) (int, error) {
	return countShipments(ctx, s.DB)
}
