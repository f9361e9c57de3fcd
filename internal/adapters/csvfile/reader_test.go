package csvfile

import (
	"errors"
	"strings"
	"testing"
	"transport-dataset/internal/domain"
)

const header = "origin_city,destination_city,distance_km,weight_tons,volume_m3,cargo_type,transport_type,season,day_of_week,fuel_price,price_rub\n"

func TestReadAcceptsBOM(t *testing.T) {
	in := "\ufeff" + header + "Казань,Казань,100,0.50,1.00,хрупкий,морской,осень,Вс,40.00,216.04\n"

	shipments, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shipments) != 1 {
		t.Fatalf("len = %d, want 1", len(shipments))
	}

	s := shipments[0]
	if s.OriginCity != domain.Kazan || s.DestinationCity != domain.Kazan {
		t.Errorf("cities = %v -> %v, want same-city Казань shipment", s.OriginCity, s.DestinationCity)
	}
	if s.CargoType != domain.CargoFragile || s.TransportType != domain.TransportSea {
		t.Errorf("categories = %v/%v", s.CargoType, s.TransportType)
	}
	if s.DayOfWeek != domain.Sunday || s.Season != domain.Autumn {
		t.Errorf("calendar = %v/%v", s.Season, s.DayOfWeek)
	}
	if s.PriceRub != 216.04 {
		t.Errorf("price_rub = %v, want 216.04", s.PriceRub)
	}
}

func TestReadRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"wrong header", strings.Replace(header, "price_rub", "price", 1)},
		{"short row", header + "Москва,Казань,100\n"},
		{"unknown cargo", header + "Москва,Казань,100,0.50,1.00,cargo,авто,зима,Пн,40.00,1.00\n"},
		{"bad distance", header + "Москва,Казань,abc,0.50,1.00,общий,авто,зима,Пн,40.00,1.00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.in)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestReadWrongHeaderIsBadHeader(t *testing.T) {
	in := strings.Replace(header, "season", "month", 1)
	if _, err := Read(strings.NewReader(in)); !errors.Is(err, ErrBadHeader) {
		t.Fatalf("err = %v, want ErrBadHeader", err)
	}
}
