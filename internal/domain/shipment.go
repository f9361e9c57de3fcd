package domain

// Represents one synthetic freight shipment observation.
// Decimal fields hold values already rounded to two fractional digits.
// PriceRub is derived from the other ten fields and is never sampled.
type Shipment struct {
	OriginCity      City
	DestinationCity City
	DistanceKm      int
	WeightTons      float64
	VolumeM3        float64
	CargoType       CargoType
	TransportType   TransportType
	Season          Season
	DayOfWeek       Weekday
	FuelPrice       float64
	PriceRub        float64
}

// Columns is the dataset header, in field order.
var Columns = []string{
	"origin_city",
	"destination_city",
	"distance_km",
	"weight_tons",
	"volume_m3",
	"cargo_type",
	"transport_type",
	"season",
	"day_of_week",
	"fuel_price",
	"price_rub",
}
