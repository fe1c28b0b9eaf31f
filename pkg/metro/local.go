package metro

import (
	"log/slog"
	"strings"
	"time"

	"github.com/jusunglee/metro-go/internal/graph"
	"github.com/jusunglee/metro-go/internal/loader"
	"github.com/jusunglee/metro-go/internal/models"
	"github.com/jusunglee/metro-go/internal/planner"
	"github.com/jusunglee/metro-go/internal/store"
)

// LocalClient implements the Client interface over an in-memory graph
// built once from the station table
type LocalClient struct {
	graph    *graph.Graph
	store    *store.Store
	planner  *planner.Planner
	loadedAt time.Time
}

// NewLocal loads the station table named by config and builds the graph
func NewLocal(config Config) (*LocalClient, error) {
	rows, err := loader.LoadFile(config.StationsFile)
	if err != nil {
		return nil, err
	}
	return NewLocalFromRows(rows, config)
}

// NewLocalFromRows builds a client from already loaded rows
func NewLocalFromRows(rows []models.StationRow, config Config) (*LocalClient, error) {
	if err := loader.Validate(rows); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := graph.Build(rows)
	logger.Info("metro graph loaded",
		"stations", g.NodeCount(),
		"connections", g.EdgeCount(),
		"lines", len(g.Lines()),
	)

	return &LocalClient{
		graph: g,
		store: store.NewStore(g),
		planner: planner.New(g,
			planner.WithCache(config.CacheSize, config.CacheTTL),
			planner.WithLogger(logger),
		),
		loadedAt: time.Now(),
	}, nil
}

// Close releases client resources
func (c *LocalClient) Close() {}

// Graph returns the network graph
func (c *LocalClient) Graph() *graph.Graph {
	return c.graph
}

func (c *LocalClient) GetStations() ([]string, error) {
	return c.store.GetStations(), nil
}

func (c *LocalClient) GetStationsByLocation(lat, lon float64, limit int) ([]models.Station, error) {
	return c.store.GetStationsByLocation(lat, lon, limit), nil
}

func (c *LocalClient) GetStationsByLine(line string) ([]models.Station, error) {
	return c.store.GetStationsByLine(line)
}

func (c *LocalClient) GetStationsByNames(names []string) ([]models.Station, error) {
	return c.store.GetStationsByNames(names)
}

func (c *LocalClient) GetLines() ([]string, error) {
	return c.store.GetLines(), nil
}

// PlanRoute plans a trip between two stations. Unknown or disconnected
// stations produce a no_route itinerary rather than an error.
func (c *LocalClient) PlanRoute(from, to string) (models.Itinerary, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return models.Itinerary{}, ErrStationRequired
	}
	return c.planner.Plan(from, to), nil
}

func (c *LocalClient) GetLoadedAt() time.Time {
	return c.loadedAt
}
