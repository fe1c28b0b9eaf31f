// Package loader reads the station table from CSV, YAML or protobuf
// snapshot files and validates every row.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jusunglee/metro-go/internal/models"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported station table format")
	ErrEmptyTable        = errors.New("station table is empty")
	ErrInvalidRow        = errors.New("invalid station row")
	ErrMissingColumn     = errors.New("missing column")
)

var validate = validator.New()

// LoadFile reads a station table, choosing the format by file extension
func LoadFile(path string) ([]models.StationRow, error) {
	var read func(*os.File) ([]models.StationRow, error)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		read = func(f *os.File) ([]models.StationRow, error) { return ReadCSV(f) }
	case ".yaml", ".yml":
		read = func(f *os.File) ([]models.StationRow, error) { return ReadYAML(f) }
	case ".pb":
		read = func(f *os.File) ([]models.StationRow, error) { return ReadSnapshot(f) }
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open station table: %w", err)
	}
	defer f.Close()

	rows, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return rows, nil
}

// Validate checks that the table is non-empty and every row is well formed
func Validate(rows []models.StationRow) error {
	if len(rows) == 0 {
		return ErrEmptyTable
	}
	for i, row := range rows {
		if err := validateRow(i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func validateRow(n int, row models.StationRow) error {
	err := validate.Struct(row)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: row %d: %v", ErrInvalidRow, n, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%w: row %d: %s", ErrInvalidRow, n, strings.Join(msgs, ", "))
}
