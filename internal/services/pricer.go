package services

import (
	"errors"
	"fmt"
	"transport-dataset/internal/domain"
)

var (
	ErrUnknownCargoType     = errors.New("unknown cargo type")
	ErrUnknownTransportType = errors.New("unknown transport type")
)

// Base cost rates.
const (
	RatePerKm       = 2.0
	RatePerTon      = 10.0
	RatePerM3       = 0.5
	FuelPriceFactor = 1.2
)

func CargoModifier(c domain.CargoType) (float64, error) {
	switch c {
	case domain.CargoGeneral:
		return 1.0, nil
	case domain.CargoPerishable:
		return 1.2, nil
	case domain.CargoHazardous:
		return 1.5, nil
	case domain.CargoFragile:
		return 1.1, nil
	}
	return 0, fmt.Errorf("cargo modifier: %w: %d", ErrUnknownCargoType, int(c))
}

func TransportModifier(t domain.TransportType) (float64, error) {
	switch t {
	case domain.TransportTruck:
		return 1.0, nil
	case domain.TransportRail:
		return 0.9, nil
	case domain.TransportAir:
		return 2.0, nil
	case domain.TransportSea:
		return 0.8, nil
	}
	return 0, fmt.Errorf("transport modifier: %w: %d", ErrUnknownTransportType, int(t))
}

// PriceShipment computes price_rub from the other fields of s. PriceRub itself is ignored.
func PriceShipment(s domain.Shipment) (float64, error) {
	cargo, err := CargoModifier(s.CargoType)
	if err != nil {
		return 0, fmt.Errorf("price shipment: %w", err)
	}
	transport, err := TransportModifier(s.TransportType)
	if err != nil {
		return 0, fmt.Errorf("price shipment: %w", err)
	}

	distanceCost := RatePerKm * float64(s.DistanceKm)
	weightCost := RatePerTon * s.WeightTons
	volumeCost := RatePerM3 * s.VolumeM3
	fuelCost := FuelPriceFactor * s.FuelPrice

	return Round2((distanceCost + weightCost + volumeCost + fuelCost) * (cargo * transport)), nil
}

// PriceShipments returns a copy of shipments with PriceRub filled in, preserving order.
func PriceShipments(shipments []domain.Shipment) ([]domain.Shipment, error) {
	priced := make([]domain.Shipment, len(shipments))
	for i, s := range shipments {
		p, err := PriceShipment(s)
		if err != nil {
			return nil, fmt.Errorf("price shipments: record %d: %w", i, err)
		}
		s.PriceRub = p
		priced[i] = s
	}
	return priced, nil
}
