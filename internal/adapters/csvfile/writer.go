package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"transport-dataset/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const DefaultPath = "transport_dataset_ml.csv"

// Writer is a file-backed implementation of the DatasetWriter port.
// Output is comma separated UTF-8 with a header row; decimals carry exactly two digits.
type Writer struct {
	Path string
	Perm os.FileMode
}

func NewWriter(path string) *Writer {
	return &Writer{Path: path, Perm: 0o644}
}

// WriteDataset replaces the file at w.Path with the encoded shipments.
// The data goes to a temp file in the same directory which is renamed over the
// target only after a successful sync, so a failed run leaves no partial file.
func (w *Writer) WriteDataset(ctx context.Context, shipments []domain.Shipment) (string, error) {
	if strings.TrimSpace(w.Path) == "" {
		return "", errors.New("write dataset: path must not be empty")
	}

	dir := filepath.Dir(w.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(w.Path)+".tmp.*")
	if err != nil {
		return "", fmt.Errorf("write dataset: create temp file in %q: %w", dir, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	buf := bufio.NewWriter(tmp)
	enc := transform.NewWriter(buf, unicode.UTF8.NewEncoder())
	if err := Encode(enc, shipments); err != nil {
		return "", fmt.Errorf("write dataset: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("write dataset: flush encoder: %w", err)
	}
	if err := buf.Flush(); err != nil {
		return "", fmt.Errorf("write dataset: flush %q: %w", tmpName, err)
	}

	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := tmp.Chmod(perm); err != nil {
		return "", fmt.Errorf("write dataset: chmod %q: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("write dataset: sync %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write dataset: close %q: %w", tmpName, err)
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("write dataset: %w", err)
	}

	if err := os.Rename(tmpName, w.Path); err != nil {
		return "", fmt.Errorf("write dataset: rename to %q: %w", w.Path, err)
	}
	committed = true

	return w.Path, nil
}

// Encode writes the header row followed by one row per shipment.
func Encode(dst io.Writer, shipments []domain.Shipment) error {
	cw := csv.NewWriter(dst)

	if err := cw.Write(domain.Columns); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	row := make([]string, len(domain.Columns))
	for i, s := range shipments {
		row[0] = s.OriginCity.String()
		row[1] = s.DestinationCity.String()
		row[2] = strconv.Itoa(s.DistanceKm)
		row[3] = fixed2(s.WeightTons)
		row[4] = fixed2(s.VolumeM3)
		row[5] = s.CargoType.String()
		row[6] = s.TransportType.String()
		row[7] = s.Season.String()
		row[8] = s.DayOfWeek.String()
		row[9] = fixed2(s.FuelPrice)
		row[10] = fixed2(s.PriceRub)

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode flush: %w", err)
	}
	return nil
}

// Period radix, no grouping, exactly two fractional digits.
func fixed2(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}
