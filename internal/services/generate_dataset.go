package services

import (
	"context"
	"errors"
	"fmt"
	"transport-dataset/internal/domain"
	"transport-dataset/internal/platform/obs"
	"transport-dataset/internal/ports"
)

type GenerateDatasetRequest struct {
	Samples int
}

// GenerateDataset runs the sample → price → write pipeline once and returns
// the location reported by the writer. Nothing is written unless every record priced.
func GenerateDataset(
	ctx context.Context,
	req GenerateDatasetRequest,
	rng ports.RandomSource,
	writer ports.DatasetWriter,
) (string, error) {
	if writer == nil {
		return "", errors.New("generate dataset: writer is nil")
	}

	sampled, err := sampleStage(ctx, rng, req.Samples)
	if err != nil {
		return "", fmt.Errorf("generate dataset: %w", err)
	}

	priced, err := priceStage(ctx, sampled)
	if err != nil {
		return "", fmt.Errorf("generate dataset: %w", err)
	}

	path, err := writeStage(ctx, writer, priced)
	if err != nil {
		return "", fmt.Errorf("generate dataset: %w", err)
	}

	return path, nil
}

func sampleStage(ctx context.Context, rng ports.RandomSource, n int) (_ []domain.Shipment, err error) {
	defer obs.Time(ctx, "dataset.sample")(&err)
	return SampleShipments(rng, n)
}

func priceStage(ctx context.Context, shipments []domain.Shipment) (_ []domain.Shipment, err error) {
	defer obs.Time(ctx, "dataset.price")(&err)
	return PriceShipments(shipments)
}

func writeStage(ctx context.Context, writer ports.DatasetWriter, shipments []domain.Shipment) (_ string, err error) {
	defer obs.Time(ctx, "dataset.write")(&err)
	return writer.WriteDataset(ctx, shipments)
}
