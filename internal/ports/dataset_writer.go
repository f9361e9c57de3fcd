package ports

import (
	"context"
	"transport-dataset/internal/domain"
)

// Contract for persisting a complete, ordered shipment dataset.
type DatasetWriter interface {
	// Write all shipments and return the location they were written to.
	WriteDataset(ctx context.Context, shipments []domain.Shipment) (string, error)
}
