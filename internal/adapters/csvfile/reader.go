package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"transport-dataset/internal/domain"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrBadHeader = errors.New("unexpected dataset header")

// ReadFile parses a dataset previously produced by Writer.
func ReadFile(path string) ([]domain.Shipment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: open %q: %w", path, err)
	}
	defer f.Close()

	shipments, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %q: %w", path, err)
	}
	return shipments, nil
}

// Read decodes a header row and shipment rows. A leading UTF-8 BOM is tolerated.
func Read(r io.Reader) ([]domain.Shipment, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	cr.FieldsPerRecord = len(domain.Columns)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, col := range domain.Columns {
		if header[i] != col {
			return nil, fmt.Errorf("read header: column %d is %q, want %q: %w", i+1, header[i], col, ErrBadHeader)
		}
	}

	shipments := make([]domain.Shipment, 0, 1024)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		s, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

func parseRecord(rec []string) (domain.Shipment, error) {
	var (
		s   domain.Shipment
		err error
	)

	if s.OriginCity, err = domain.ParseCity(rec[0]); err != nil {
		return s, err
	}
	if s.DestinationCity, err = domain.ParseCity(rec[1]); err != nil {
		return s, err
	}
	if s.DistanceKm, err = strconv.Atoi(rec[2]); err != nil {
		return s, fmt.Errorf("parse distance_km: %w", err)
	}
	if s.WeightTons, err = strconv.ParseFloat(rec[3], 64); err != nil {
		return s, fmt.Errorf("parse weight_tons: %w", err)
	}
	if s.VolumeM3, err = strconv.ParseFloat(rec[4], 64); err != nil {
		return s, fmt.Errorf("parse volume_m3: %w", err)
	}
	if s.CargoType, err = domain.ParseCargoType(rec[5]); err != nil {
		return s, err
	}
	if s.TransportType, err = domain.ParseTransportType(rec[6]); err != nil {
		return s, err
	}
	if s.Season, err = domain.ParseSeason(rec[7]); err != nil {
		return s, err
	}
	if s.DayOfWeek, err = domain.ParseWeekday(rec[8]); err != nil {
		return s, err
	}
	if s.FuelPrice, err = strconv.ParseFloat(rec[9], 64); err != nil {
		return s, fmt.Errorf("parse fuel_price: %w", err)
	}
	if s.PriceRub, err = strconv.ParseFloat(rec[10], 64); err != nil {
		return s, fmt.Errorf("parse price_rub: %w", err)
	}

	return s, nil
}
