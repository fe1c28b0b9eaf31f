package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jusunglee/metro-go/internal/models"
)

// yamlTable accepts either a flat row list or stations grouped by line
type yamlTable struct {
	Stations []models.StationRow `yaml:"stations"`
	Lines    []yamlLine          `yaml:"lines"`
}

type yamlLine struct {
	Name     string        `yaml:"name"`
	Stations []yamlStation `yaml:"stations"`
}

type yamlStation struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

// ReadYAML parses a station table document. Rows listed under stations come
// first, followed by the stations of each entry under lines in order.
func ReadYAML(r io.Reader) ([]models.StationRow, error) {
	var doc yamlTable
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	rows := append([]models.StationRow(nil), doc.Stations...)
	for _, line := range doc.Lines {
		for _, s := range line.Stations {
			rows = append(rows, models.StationRow{
				Station: s.Name,
				Line:    line.Name,
				Lat:     s.Lat,
				Lon:     s.Lon,
			})
		}
	}

	if err := Validate(rows); err != nil {
		return nil, err
	}
	return rows, nil
}
