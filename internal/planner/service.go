package planner

import (
	"log/slog"
	"time"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"

	"github.com/jusunglee/metro-go/internal/graph"
	"github.com/jusunglee/metro-go/internal/models"
)

// Planner answers trip queries over a fixed graph, optionally caching
// itineraries. It is safe for concurrent use.
type Planner struct {
	graph  *graph.Graph
	cache  gcache.Cache
	group  singleflight.Group
	logger *slog.Logger
}

// Option configures a Planner
type Option func(*Planner)

// WithCache keeps up to size itineraries in an LRU cache for ttl.
// A size of zero or less disables caching.
func WithCache(size int, ttl time.Duration) Option {
	return func(p *Planner) {
		if size <= 0 {
			p.cache = nil
			return
		}
		b := gcache.New(size).LRU()
		if ttl > 0 {
			b = b.Expiration(ttl)
		}
		p.cache = b.Build()
	}
}

// WithLogger sets the logger used for query tracing
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a planner over g
func New(g *graph.Graph, opts ...Option) *Planner {
	p := &Planner{
		graph:  g,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Graph returns the graph the planner routes over
func (p *Planner) Graph() *graph.Graph {
	return p.graph
}

// Plan answers a trip query, consulting the cache first. Cached itineraries
// are shared between callers and must not be modified.
func (p *Planner) Plan(start, end string) models.Itinerary {
	key := cacheKey(start, end)

	if p.cache != nil {
		if v, err := p.cache.Get(key); err == nil {
			if it, ok := v.(models.Itinerary); ok {
				p.logger.Debug("route cache hit", "from", start, "to", end)
				return it
			}
		}
	}

	v, _, shared := p.group.Do(key, func() (interface{}, error) {
		it := Plan(p.graph, start, end)
		if p.cache != nil {
			if err := p.cache.Set(key, it); err != nil {
				p.logger.Warn("route cache set failed", "error", err)
			}
		}
		return it, nil
	})

	it := v.(models.Itinerary)
	p.logger.Debug("route planned",
		"from", start,
		"to", end,
		"status", it.Status,
		"stations", it.TotalStations,
		"shared", shared,
	)
	return it
}

func cacheKey(start, end string) string {
	return start + "\x00" + end
}
