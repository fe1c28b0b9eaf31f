package models

// Location represents a geographic coordinate
type Location struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// StationRow is one row of the station table: a station on a line.
// A station served by several lines appears once per line.
type StationRow struct {
	Station string  `json:"station" yaml:"station" validate:"required"`
	Line    string  `json:"line" yaml:"line" validate:"required"`
	Lat     float64 `json:"lat" yaml:"lat" validate:"gte=-90,lte=90"`
	Lon     float64 `json:"lon" yaml:"lon" validate:"gte=-180,lte=180"`
}

// Station represents a metro station
type Station struct {
	Name     string   `json:"name"`
	Line     string   `json:"line"`
	Lines    []string `json:"lines"`
	Location Location `json:"location"`
}

// StationResponse is the API response format for a station
type StationResponse struct {
	Name        string     `json:"name"`
	Line        string     `json:"line"`
	Lines       []string   `json:"lines"`
	Location    [2]float64 `json:"location"`
	Interchange bool       `json:"interchange"`
}

// ConvertToResponse converts a Station to StationResponse format
func (s *Station) ConvertToResponse() StationResponse {
	return StationResponse{
		Name:        s.Name,
		Line:        s.Line,
		Lines:       s.Lines,
		Location:    [2]float64{s.Location.Lat, s.Location.Lon},
		Interchange: len(s.Lines) > 1,
	}
}

// RouteStatus classifies the outcome of a route query
type RouteStatus string

const (
	StatusFound       RouteStatus = "found"
	StatusSameStation RouteStatus = "same_station"
	StatusNoRoute     RouteStatus = "no_route"
)

// Stop is a station along an itinerary
type Stop struct {
	Name     string   `json:"name"`
	Line     string   `json:"line"`
	Location Location `json:"location"`
}

// Leg is a run of consecutive hops on a single line
type Leg struct {
	Line     string   `json:"line"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Stations []string `json:"stations"`
}

// Itinerary is the result of planning a trip between two stations
type Itinerary struct {
	From              string      `json:"from"`
	To                string      `json:"to"`
	Status            RouteStatus `json:"status"`
	Message           string      `json:"message,omitempty"`
	Stations          []string    `json:"stations"`
	Stops             []Stop      `json:"stops"`
	Legs              []Leg       `json:"legs"`
	Interchanges      []string    `json:"interchanges"`
	TotalStations     int         `json:"total_stations"`
	TravelTimeMinutes int         `json:"travel_time_minutes"`
	Fare              int         `json:"fare"`
}

// Found reports whether the itinerary holds a route
func (it Itinerary) Found() bool {
	return it.Status == StatusFound
}
