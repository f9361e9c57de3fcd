package csvfile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"transport-dataset/internal/adapters/random"
	"transport-dataset/internal/domain"
	"transport-dataset/internal/services"
)

func generate(t *testing.T, path string, n int) string {
	t.Helper()
	out, err := services.GenerateDataset(
		context.Background(),
		services.GenerateDatasetRequest{Samples: n},
		random.NewSeededSource(42),
		NewWriter(path),
	)
	if err != nil {
		t.Fatalf("generate dataset: %v", err)
	}
	return out
}

func TestEncodeFormatsRow(t *testing.T) {
	s := domain.Shipment{
		OriginCity:      domain.Moscow,
		DestinationCity: domain.Kazan,
		DistanceKm:      1500,
		WeightTons:      5,
		VolumeM3:        10.5,
		CargoType:       domain.CargoGeneral,
		TransportType:   domain.TransportTruck,
		Season:          domain.Winter,
		DayOfWeek:       domain.Monday,
		FuelPrice:       50,
		PriceRub:        3115,
	}

	var buf bytes.Buffer
	if err := Encode(&buf, []domain.Shipment{s}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "origin_city,destination_city,distance_km,weight_tons,volume_m3,cargo_type,transport_type,season,day_of_week,fuel_price,price_rub\n" +
		"Москва,Казань,1500,5.00,10.50,общий,авто,зима,Пн,50.00,3115.00\n"
	if got := buf.String(); got != want {
		t.Fatalf("encoded =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteDatasetShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	if got := generate(t, path, 500); got != path {
		t.Fatalf("reported path = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 501 {
		t.Fatalf("lines = %d, want 501", len(lines))
	}
	for i, l := range lines {
		if n := len(strings.Split(l, ",")); n != 11 {
			t.Fatalf("line %d has %d fields, want 11: %q", i+1, n, l)
		}
	}
}

func TestWriteDatasetRoundTripPrices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	generate(t, path, 500)

	shipments, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(shipments) != 500 {
		t.Fatalf("read %d records, want 500", len(shipments))
	}

	for i, s := range shipments {
		want, err := services.PriceShipment(s)
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		if s.PriceRub != want {
			t.Fatalf("record %d: stored price %v, recomputed %v", i, s.PriceRub, want)
		}
	}
}

func TestWriteDatasetByteIdenticalRuns(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	generate(t, a, 300)
	generate(t, b, 300)

	da, err := os.ReadFile(a)
	if err != nil {
		t.Fatal(err)
	}
	db, err := os.ReadFile(b)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(da, db) {
		t.Fatal("two runs with the same seed differ")
	}
}

func TestWriteDatasetOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("stale contents that are longer than nothing\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewWriter(path).WriteDataset(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := strings.Join(domain.Columns, ",") + "\n"; string(data) != want {
		t.Fatalf("contents = %q, want header only", data)
	}
}

func TestWriteDatasetUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "out.csv")

	_, err := NewWriter(path).WriteDataset(context.Background(), []domain.Shipment{{}})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("no file should exist, stat err = %v", statErr)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("leftover files: %v", entries)
	}
}

func TestWriteDatasetEmptyPath(t *testing.T) {
	if _, err := NewWriter("  ").WriteDataset(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty path")
	}
}
