package store

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jusunglee/metro-go/internal/graph"
	"github.com/jusunglee/metro-go/internal/models"
)

var (
	ErrLineNotFound     = errors.New("line not found")
	ErrStationsNotFound = errors.New("no stations found for given names")
)

// Store indexes the stations of a graph for lookup queries.
// It never changes after NewStore returns.
type Store struct {
	graph    *graph.Graph
	stations map[string]*models.Station
	names    []string
}

// NewStore creates a store over g
func NewStore(g *graph.Graph) *Store {
	s := &Store{
		graph:    g,
		stations: make(map[string]*models.Station, g.NodeCount()),
		names:    g.Nodes(),
	}

	for _, name := range s.names {
		n, _ := g.Node(name)
		s.stations[name] = &models.Station{
			Name:     n.Name,
			Line:     n.Line,
			Lines:    n.Lines,
			Location: n.Location,
		}
	}

	return s
}

// GetStations returns all station names sorted alphabetically
func (s *Store) GetStations() []string {
	result := make([]string, len(s.names))
	copy(result, s.names)
	return result
}

// GetStation returns a single station by name
func (s *Store) GetStation(name string) (models.Station, bool) {
	station, ok := s.stations[name]
	if !ok {
		return models.Station{}, false
	}
	return copyStation(station), true
}

// GetStationsByLocation returns stations near a location
func (s *Store) GetStationsByLocation(lat, lon float64, limit int) []models.Station {
	type stationDist struct {
		station  *models.Station
		distance float64
	}

	var stations []stationDist
	for _, name := range s.names {
		station := s.stations[name]
		dist := distance(lat, lon, station.Location.Lat, station.Location.Lon)
		stations = append(stations, stationDist{station, dist})
	}

	// names are pre-sorted, so a stable sort breaks ties alphabetically
	sort.SliceStable(stations, func(i, j int) bool {
		return stations[i].distance < stations[j].distance
	})

	if limit < 0 {
		limit = 0
	}
	result := make([]models.Station, 0, limit)
	for i := 0; i < limit && i < len(stations); i++ {
		result = append(result, copyStation(stations[i].station))
	}

	return result
}

// GetStationsByLine returns all stations on a line in travel order.
// The line name is matched case-insensitively.
func (s *Store) GetStationsByLine(line string) ([]models.Station, error) {
	name, ok := s.lookupLine(line)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLineNotFound, line)
	}

	seq, _ := s.graph.LineStations(name)
	result := make([]models.Station, 0, len(seq))
	seen := make(map[string]bool, len(seq))
	for _, station := range seq {
		if seen[station] {
			continue
		}
		seen[station] = true
		result = append(result, copyStation(s.stations[station]))
	}

	return result, nil
}

// GetStationsByNames returns stations by their names, skipping unknown ones
func (s *Store) GetStationsByNames(names []string) ([]models.Station, error) {
	result := make([]models.Station, 0, len(names))
	for _, name := range names {
		if station, ok := s.stations[strings.TrimSpace(name)]; ok {
			result = append(result, copyStation(station))
		}
	}

	if len(result) == 0 {
		return nil, ErrStationsNotFound
	}

	return result, nil
}

// GetLines returns all line names in the order they appear in the table
func (s *Store) GetLines() []string {
	return s.graph.Lines()
}

func (s *Store) lookupLine(line string) (string, bool) {
	for _, l := range s.graph.Lines() {
		if strings.EqualFold(l, line) {
			return l, true
		}
	}
	return "", false
}

func copyStation(st *models.Station) models.Station {
	cp := *st
	cp.Lines = append([]string(nil), st.Lines...)
	return cp
}

// distance calculates the distance between two points using the Haversine formula
func distance(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371 // Earth's radius in kilometers

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}
