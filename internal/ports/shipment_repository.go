package ports

import (
	"context"
	"transport-dataset/internal/domain"
)

// Port: a boundary for loading generated shipments into a database.
type ShipmentRepository interface {
	// Insert all shipments in order, atomically.
	SaveShipments(ctx context.Context, shipments []domain.Shipment) error
	// Return the number of stored shipments.
	CountShipments(ctx context.Context) (int, error)
}
