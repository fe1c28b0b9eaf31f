package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jusunglee/metro-go/internal/models"
)

var csvColumns = []string{"station", "line", "lat", "lon"}

// ReadCSV parses a station table with a station,line,lat,lon header.
// Columns may appear in any order and header names are case-insensitive.
func ReadCSV(r io.Reader) ([]models.StationRow, error) {
	csvr := csv.NewReader(r)
	csvr.TrimLeadingSpace = true
	rec, err := csvr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rec) == 0 {
		return nil, ErrEmptyTable
	}

	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}

	cols := make(map[string]int, len(csvColumns))
	for _, col := range csvColumns {
		i := idx(col)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
		cols[col] = i
	}

	rows := make([]models.StationRow, 0, len(rec)-1)
	for n, fields := range rec[1:] {
		row, err := parseCSVRow(n+1, fields, cols)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if err := Validate(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func parseCSVRow(n int, fields []string, cols map[string]int) (models.StationRow, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[cols["lat"]]), 64)
	if err != nil {
		return models.StationRow{}, fmt.Errorf("%w: row %d: bad lat %q", ErrInvalidRow, n, fields[cols["lat"]])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[cols["lon"]]), 64)
	if err != nil {
		return models.StationRow{}, fmt.Errorf("%w: row %d: bad lon %q", ErrInvalidRow, n, fields[cols["lon"]])
	}

	return models.StationRow{
		Station: strings.TrimSpace(fields[cols["station"]]),
		Line:    strings.TrimSpace(fields[cols["line"]]),
		Lat:     lat,
		Lon:     lon,
	}, nil
}
