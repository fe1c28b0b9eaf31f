package metro

import (
	"errors"
	"log/slog"
	"time"

	"github.com/jusunglee/metro-go/internal/models"
)

// ErrStationRequired is returned when a route query omits a station name
var ErrStationRequired = errors.New("start and destination stations are required")

// Client defines the interface for querying the metro network
// Abstracts different data sources behind common interface
type Client interface {
	GetStations() ([]string, error)
	GetStationsByLocation(lat, lon float64, limit int) ([]models.Station, error)
	GetStationsByLine(line string) ([]models.Station, error)
	GetStationsByNames(names []string) ([]models.Station, error)

	GetLines() ([]string, error)

	PlanRoute(from, to string) (models.Itinerary, error)

	GetLoadedAt() time.Time
}

// Config holds configuration for the metro client
type Config struct {
	StationsFile string
	CacheSize    int
	CacheTTL     time.Duration
	Logger       *slog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		StationsFile: "data/hyderabad_metro_stations.csv",
		CacheSize:    1024,
		CacheTTL:     10 * time.Minute,
	}
}
