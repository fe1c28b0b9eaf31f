// Package graph builds the undirected station graph from the station table.
//
// A Graph is constructed once by Build and is read-only afterwards, so a
// single value can be shared by any number of goroutines without locking.
package graph

import (
	"sort"

	"github.com/jusunglee/metro-go/internal/models"
)

// Node is a station in the graph
type Node struct {
	Name     string
	Line     string
	Lines    []string
	Location models.Location
}

type edgeKey struct {
	a, b string
}

func newEdgeKey(a, b string) edgeKey {
	if b < a {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Graph is an undirected, unweighted station graph
type Graph struct {
	nodes     map[string]*Node
	order     []string            // node names in first-seen order
	adj       map[string][]string // neighbors in insertion order
	edgeLines map[edgeKey][]string
	lines     []string            // line ids in first-seen order
	lineSeq   map[string][]string // line id -> stations in travel order
}

// Build constructs the graph from station rows. Rows of one line must be
// listed in travel order; lines need not be contiguous in the table.
// When a station repeats with different coordinates, the first row wins.
func Build(rows []models.StationRow) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node),
		adj:       make(map[string][]string),
		edgeLines: make(map[edgeKey][]string),
		lineSeq:   make(map[string][]string),
	}

	for _, row := range rows {
		g.addNode(row)
		if _, ok := g.lineSeq[row.Line]; !ok {
			g.lines = append(g.lines, row.Line)
		}
		g.lineSeq[row.Line] = append(g.lineSeq[row.Line], row.Station)
	}

	for _, line := range g.lines {
		seq := g.lineSeq[line]
		for i := 0; i+1 < len(seq); i++ {
			g.addEdge(seq[i], seq[i+1], line)
		}
	}

	return g
}

func (g *Graph) addNode(row models.StationRow) {
	n, ok := g.nodes[row.Station]
	if !ok {
		g.nodes[row.Station] = &Node{
			Name:     row.Station,
			Line:     row.Line,
			Lines:    []string{row.Line},
			Location: models.Location{Lat: row.Lat, Lon: row.Lon},
		}
		g.order = append(g.order, row.Station)
		return
	}
	for _, l := range n.Lines {
		if l == row.Line {
			return
		}
	}
	n.Lines = append(n.Lines, row.Line)
}

func (g *Graph) addEdge(a, b, line string) {
	if a == b {
		return
	}
	key := newEdgeKey(a, b)
	lines, exists := g.edgeLines[key]
	for _, l := range lines {
		if l == line {
			return
		}
	}
	g.edgeLines[key] = append(lines, line)
	if !exists {
		g.adj[a] = append(g.adj[a], b)
		g.adj[b] = append(g.adj[b], a)
	}
}

// Has reports whether the station is a node of the graph
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Node returns a copy of the named node
func (g *Graph) Node(name string) (Node, bool) {
	n, ok := g.nodes[name]
	if !ok {
		return Node{}, false
	}
	cp := *n
	cp.Lines = append([]string(nil), n.Lines...)
	return cp, true
}

// Nodes returns all station names sorted alphabetically
func (g *Graph) Nodes() []string {
	names := make([]string, len(g.order))
	copy(names, g.order)
	sort.Strings(names)
	return names
}

// Neighbors returns the stations adjacent to name, in insertion order
func (g *Graph) Neighbors(name string) []string {
	nb := g.adj[name]
	out := make([]string, len(nb))
	copy(out, nb)
	return out
}

// HasEdge reports whether a and b are adjacent
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.edgeLines[newEdgeKey(a, b)]
	return ok
}

// EdgeLines returns the lines on which a and b are consecutive stations
func (g *Graph) EdgeLines(a, b string) []string {
	lines := g.edgeLines[newEdgeKey(a, b)]
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// Lines returns line ids in the order they first appear in the table
func (g *Graph) Lines() []string {
	out := make([]string, len(g.lines))
	copy(out, g.lines)
	return out
}

// LineStations returns the stations of a line in travel order
func (g *Graph) LineStations(line string) ([]string, bool) {
	seq, ok := g.lineSeq[line]
	if !ok {
		return nil, false
	}
	out := make([]string, len(seq))
	copy(out, seq)
	return out, true
}

// NodeCount returns the number of distinct stations
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct connections
func (g *Graph) EdgeCount() int {
	return len(g.edgeLines)
}
