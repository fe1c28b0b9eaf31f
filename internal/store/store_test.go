package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jusunglee/metro-go/internal/graph"
	"github.com/jusunglee/metro-go/internal/models"
)

func TestStore(t *testing.T) {
	// Test data: Red runs Ameerpet-Punjagutta-Khairatabad, Blue runs Begumpet-Ameerpet-Madhura Nagar
	rows := []models.StationRow{
		{Station: "Ameerpet", Line: "Red", Lat: 17.4375, Lon: 78.4482},
		{Station: "Punjagutta", Line: "Red", Lat: 17.4282, Lon: 78.4512},
		{Station: "Khairatabad", Line: "Red", Lat: 17.4112, Lon: 78.4603},
		{Station: "Begumpet", Line: "Blue", Lat: 17.4430, Lon: 78.4575},
		{Station: "Ameerpet", Line: "Blue", Lat: 17.4375, Lon: 78.4482},
		{Station: "Madhura Nagar", Line: "Blue", Lat: 17.4371, Lon: 78.4386},
	}
	s := NewStore(graph.Build(rows))

	t.Run("GetStations", func(t *testing.T) {
		names := s.GetStations()
		expected := []string{"Ameerpet", "Begumpet", "Khairatabad", "Madhura Nagar", "Punjagutta"}
		if !reflect.DeepEqual(names, expected) {
			t.Errorf("Expected %v, got %v", expected, names)
		}
	})

	t.Run("GetStation", func(t *testing.T) {
		station, ok := s.GetStation("Ameerpet")
		if !ok {
			t.Fatal("Expected Ameerpet to exist")
		}
		if !reflect.DeepEqual(station.Lines, []string{"Red", "Blue"}) {
			t.Errorf("Expected Ameerpet on [Red Blue], got %v", station.Lines)
		}

		if _, ok := s.GetStation("Gotham"); ok {
			t.Error("Expected unknown station to be missing")
		}
	})

	t.Run("GetStationsByLocation", func(t *testing.T) {
		// Near Ameerpet
		results := s.GetStationsByLocation(17.4375, 78.4482, 2)
		if len(results) != 2 {
			t.Fatalf("Expected 2 stations, got %d", len(results))
		}
		if results[0].Name != "Ameerpet" {
			t.Errorf("Expected nearest station to be Ameerpet, got %s", results[0].Name)
		}
		if results[1].Name != "Madhura Nagar" {
			t.Errorf("Expected second nearest to be Madhura Nagar, got %s", results[1].Name)
		}

		if got := s.GetStationsByLocation(0, 0, 0); len(got) != 0 {
			t.Errorf("Expected no stations for zero limit, got %d", len(got))
		}
		if got := s.GetStationsByLocation(0, 0, 100); len(got) != 5 {
			t.Errorf("Expected all 5 stations for large limit, got %d", len(got))
		}
	})

	t.Run("GetStationsByLine", func(t *testing.T) {
		results, err := s.GetStationsByLine("blue")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		var names []string
		for _, st := range results {
			names = append(names, st.Name)
		}
		expected := []string{"Begumpet", "Ameerpet", "Madhura Nagar"}
		if !reflect.DeepEqual(names, expected) {
			t.Errorf("Expected travel order %v, got %v", expected, names)
		}

		// Test non-existent line
		_, err = s.GetStationsByLine("Purple")
		if !errors.Is(err, ErrLineNotFound) {
			t.Errorf("Expected ErrLineNotFound, got %v", err)
		}
	})

	t.Run("GetStationsByNames", func(t *testing.T) {
		results, err := s.GetStationsByNames([]string{"Punjagutta", " Begumpet", "Gotham"})
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Errorf("Expected 2 stations, got %d", len(results))
		}

		// Test non-existent names
		_, err = s.GetStationsByNames([]string{"Gotham"})
		if !errors.Is(err, ErrStationsNotFound) {
			t.Errorf("Expected ErrStationsNotFound, got %v", err)
		}
	})

	t.Run("GetLines", func(t *testing.T) {
		lines := s.GetLines()
		if !reflect.DeepEqual(lines, []string{"Red", "Blue"}) {
			t.Errorf("Expected [Red Blue], got %v", lines)
		}
	})

	t.Run("ResultsAreCopies", func(t *testing.T) {
		station, _ := s.GetStation("Ameerpet")
		station.Lines[0] = "Purple"
		again, _ := s.GetStation("Ameerpet")
		if again.Lines[0] != "Red" {
			t.Error("Store must not expose internal state")
		}
	})
}

func TestDistance(t *testing.T) {
	// Ameerpet to Punjagutta (approximately 1.1 km)
	dist := distance(17.4375, 78.4482, 17.4282, 78.4512)
	if dist < 0.9 || dist > 1.3 {
		t.Errorf("Expected distance ~1.1 km, got %.2f km", dist)
	}

	// Same location
	dist = distance(17.4375, 78.4482, 17.4375, 78.4482)
	if dist != 0 {
		t.Errorf("Expected distance 0, got %.2f", dist)
	}
}
