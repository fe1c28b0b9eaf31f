package models

import (
	"testing"
)

func TestStationConvertToResponse(t *testing.T) {
	station := &Station{
		Name:     "Ameerpet",
		Line:     "Red",
		Lines:    []string{"Red", "Blue"},
		Location: Location{Lat: 17.4374, Lon: 78.4482},
	}

	response := station.ConvertToResponse()

	if response.Name != station.Name {
		t.Errorf("Expected Name %s, got %s", station.Name, response.Name)
	}
	if response.Line != station.Line {
		t.Errorf("Expected Line %s, got %s", station.Line, response.Line)
	}

	// Check location conversion
	if response.Location[0] != station.Location.Lat || response.Location[1] != station.Location.Lon {
		t.Errorf("Location mismatch: expected [%f, %f], got %v",
			station.Location.Lat, station.Location.Lon, response.Location)
	}

	if !response.Interchange {
		t.Error("Station on two lines should be an interchange")
	}
}

func TestStationConvertToResponseSingleLine(t *testing.T) {
	station := &Station{
		Name:     "Miyapur",
		Line:     "Red",
		Lines:    []string{"Red"},
		Location: Location{Lat: 17.4968, Lon: 78.3614},
	}

	if station.ConvertToResponse().Interchange {
		t.Error("Station on one line should not be an interchange")
	}
}

func TestItineraryFound(t *testing.T) {
	tests := []struct {
		status RouteStatus
		want   bool
	}{
		{StatusFound, true},
		{StatusSameStation, false},
		{StatusNoRoute, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			it := Itinerary{Status: tt.status}
			if got := it.Found(); got != tt.want {
				t.Errorf("Found() = %v, want %v", got, tt.want)
			}
		})
	}
}
