// Package planner computes routes, fares and travel times over a station graph.
package planner

import (
	"github.com/jusunglee/metro-go/internal/graph"
	"github.com/jusunglee/metro-go/internal/models"
)

// Minutes per station used by EstimateTravelTime
const minutesPerStation = 2

const (
	MessageSameStation = "Start and destination are the same."
	MessageNoRoute     = "No route found between selected stations."
)

// FindRoute returns a minimum-hop route from start to end, inclusive.
// An unknown station or a disconnected pair yields an empty route.
func FindRoute(g *graph.Graph, start, end string) []string {
	return g.ShortestPath(start, end)
}

// EstimateFare returns the fare for a route of n stations
func EstimateFare(n int) int {
	switch {
	case n <= 3:
		return 10
	case n <= 8:
		return 20
	case n <= 15:
		return 30
	default:
		return 40
	}
}

// EstimateTravelTime returns the travel time in minutes for n stations
func EstimateTravelTime(n int) int {
	return n * minutesPerStation
}

// Coordinates returns the location of each route station in route order.
// Stations missing from the graph are skipped.
func Coordinates(g *graph.Graph, route []string) []models.Location {
	locs := make([]models.Location, 0, len(route))
	for _, name := range route {
		if n, ok := g.Node(name); ok {
			locs = append(locs, n.Location)
		}
	}
	return locs
}

// Plan answers a trip query between two stations
func Plan(g *graph.Graph, start, end string) models.Itinerary {
	it := models.Itinerary{
		From:         start,
		To:           end,
		Stations:     []string{},
		Stops:        []models.Stop{},
		Legs:         []models.Leg{},
		Interchanges: []string{},
	}

	if start == end {
		it.Status = models.StatusSameStation
		it.Message = MessageSameStation
		return it
	}

	route := FindRoute(g, start, end)
	if len(route) == 0 {
		it.Status = models.StatusNoRoute
		it.Message = MessageNoRoute
		return it
	}

	it.Status = models.StatusFound
	it.Stations = route
	it.Legs = legs(g, route)
	it.Interchanges = interchanges(it.Legs)
	it.Stops = stops(g, route, it.Legs)
	it.TotalStations = len(route)
	it.TravelTimeMinutes = EstimateTravelTime(len(route))
	it.Fare = EstimateFare(len(route))
	return it
}

// legs groups consecutive hops that can be ridden on one line. A hop
// served by several lines stays on the current line when possible.
func legs(g *graph.Graph, route []string) []models.Leg {
	var out []models.Leg
	for i := 0; i+1 < len(route); i++ {
		a, b := route[i], route[i+1]
		lines := g.EdgeLines(a, b)
		if len(lines) == 0 {
			continue
		}

		if n := len(out); n > 0 && contains(lines, out[n-1].Line) {
			out[n-1].To = b
			out[n-1].Stations = append(out[n-1].Stations, b)
			continue
		}

		line := pickLine(g, route[i:], lines)
		out = append(out, models.Leg{
			Line:     line,
			From:     a,
			To:       b,
			Stations: []string{a, b},
		})
	}
	return out
}

// pickLine chooses, among the lines serving the first hop of rest, the one
// that covers the most following hops.
func pickLine(g *graph.Graph, rest []string, lines []string) string {
	best, bestRun := lines[0], 0
	for _, line := range lines {
		run := 0
		for i := 0; i+1 < len(rest); i++ {
			if !contains(g.EdgeLines(rest[i], rest[i+1]), line) {
				break
			}
			run++
		}
		if run > bestRun {
			best, bestRun = line, run
		}
	}
	return best
}

func interchanges(legs []models.Leg) []string {
	out := []string{}
	for i := 1; i < len(legs); i++ {
		out = append(out, legs[i].From)
	}
	return out
}

func stops(g *graph.Graph, route []string, legs []models.Leg) []models.Stop {
	lineAt := make(map[string]string, len(route))
	for _, leg := range legs {
		for _, s := range leg.Stations {
			if _, ok := lineAt[s]; !ok {
				lineAt[s] = leg.Line
			}
		}
	}

	out := make([]models.Stop, 0, len(route))
	for _, name := range route {
		n, _ := g.Node(name)
		line := lineAt[name]
		if line == "" {
			line = n.Line
		}
		out = append(out, models.Stop{Name: name, Line: line, Location: n.Location})
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
