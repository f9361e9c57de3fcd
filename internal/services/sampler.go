package services

import (
	"errors"
	"fmt"
	"transport-dataset/internal/domain"
	"transport-dataset/internal/ports"
)

// Sampling domains. Distance is a half-open integer range; decimal ranges are closed.
const (
	MinDistanceKm = 100
	MaxDistanceKm = 3000

	MinWeightTons = 0.5
	MaxWeightTons = 20.0
	MinVolumeM3   = 1.0
	MaxVolumeM3   = 100.0
	MinFuelPrice  = 40.0
	MaxFuelPrice  = 80.0
)

// SampleShipments draws n unpriced shipments from rng.
//
// Columns are drawn one after another, each as n consecutive draws, in field order.
// The same rng state therefore always yields the same dataset.
func SampleShipments(rng ports.RandomSource, n int) ([]domain.Shipment, error) {
	if rng == nil {
		return nil, errors.New("sample shipments: random source is nil")
	}
	if n < 0 {
		return nil, fmt.Errorf("sample shipments: negative sample count %d", n)
	}

	origins := choose(rng, n, domain.Cities)
	destinations := choose(rng, n, domain.Cities)
	distances := make([]int, n)
	for i := range distances {
		distances[i] = MinDistanceKm + rng.IntN(MaxDistanceKm-MinDistanceKm)
	}
	weights := uniform(rng, n, MinWeightTons, MaxWeightTons)
	volumes := uniform(rng, n, MinVolumeM3, MaxVolumeM3)
	cargo := choose(rng, n, domain.CargoTypes)
	transport := choose(rng, n, domain.TransportTypes)
	seasons := choose(rng, n, domain.Seasons)
	days := choose(rng, n, domain.Weekdays)
	fuel := uniform(rng, n, MinFuelPrice, MaxFuelPrice)

	shipments := make([]domain.Shipment, n)
	for i := range shipments {
		shipments[i] = domain.Shipment{
			OriginCity:      origins[i],
			DestinationCity: destinations[i],
			DistanceKm:      distances[i],
			WeightTons:      weights[i],
			VolumeM3:        volumes[i],
			CargoType:       cargo[i],
			TransportType:   transport[i],
			Season:          seasons[i],
			DayOfWeek:       days[i],
			FuelPrice:       fuel[i],
		}
	}

	return shipments, nil
}

// Uniform choice with replacement.
func choose[T any](rng ports.RandomSource, n int, set []T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = set[rng.IntN(len(set))]
	}
	return out
}

func uniform(rng ports.RandomSource, n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = Round2(lo + (hi-lo)*rng.Float64())
	}
	return out
}
