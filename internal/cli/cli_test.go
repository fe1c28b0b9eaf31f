package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jusunglee/metro-go/internal/config"
	"github.com/jusunglee/metro-go/internal/models"
)

var bundledTable = filepath.Join("..", "..", "data", "hyderabad_metro_stations.csv")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvPort, "")
	t.Setenv(config.EnvStationsFile, "")
	t.Setenv(config.EnvLogLevel, "")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--stations", bundledTable}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestRouteJSON(t *testing.T) {
	out, err := execute(t, "route", "Miyapur", "Nagole", "--format", "json")
	if err != nil {
		t.Fatalf("route failed: %v", err)
	}

	var it models.Itinerary
	if err := json.Unmarshal([]byte(out), &it); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, out)
	}
	if it.TotalStations != 24 || it.Fare != 40 {
		t.Errorf("Unexpected itinerary: %d stations, fare %d", it.TotalStations, it.Fare)
	}
	if len(it.Legs) != 2 || it.Legs[0].Line != "Red" || it.Legs[1].Line != "Blue" {
		t.Errorf("Expected Red then Blue legs, got %+v", it.Legs)
	}
}

func TestRouteFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"pretty", "Punjagutta"},
		{"text", "Estimated fare: ₹10"},
		{"html", "Route from Ameerpet to Punjagutta"},
		{"map", "L.polyline"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := execute(t, "route", "Ameerpet", "Punjagutta", "-f", tt.format)
			if err != nil {
				t.Fatalf("route failed: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Expected %q in output:\n%s", tt.want, out)
			}
		})
	}

	if _, err := execute(t, "route", "Ameerpet", "Punjagutta", "-f", "yaml"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestRouteStatuses(t *testing.T) {
	out, err := execute(t, "route", "Ameerpet", "Ameerpet", "-f", "text")
	if err != nil {
		t.Errorf("same station should not fail: %v", err)
	}
	if !strings.Contains(out, "Start and destination are the same.") {
		t.Errorf("Unexpected output %q", out)
	}

	out, err = execute(t, "route", "Ameerpet", "Gotham", "-f", "text")
	if !errors.Is(err, errNoRoute) {
		t.Errorf("Expected errNoRoute, got %v", err)
	}
	if !strings.Contains(out, "No route found between selected stations.") {
		t.Errorf("Unexpected output %q", out)
	}
}

func TestRouteOutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.html")
	if _, err := execute(t, "route", "Ameerpet", "Punjagutta", "-f", "map", "-o", path); err != nil {
		t.Fatalf("route failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<!DOCTYPE html>") {
		t.Errorf("Expected an HTML page, got %q", string(data))
	}
}

func TestStations(t *testing.T) {
	out, err := execute(t, "stations")
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 56 || lines[0] != "Ameerpet" {
		t.Errorf("Expected 56 sorted stations, got %d", len(lines))
	}

	out, err = execute(t, "stations", "--line", "green")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Parade Ground\tBlue/Green") {
		t.Errorf("Expected Green line to start at Parade Ground, got %q", out)
	}

	out, err = execute(t, "stations", "--near", "17.4375,78.4482", "-n", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Ameerpet\tRed/Blue") {
		t.Errorf("Expected Ameerpet nearest, got %q", out)
	}

	if _, err := execute(t, "stations", "--near", "north"); err == nil {
		t.Error("Expected error for malformed --near")
	}
}

func TestLines(t *testing.T) {
	out, err := execute(t, "lines")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Red\t27 stations\tMiyapur → LB Nagar",
		"Blue\t23 stations\tNagole → Raidurg",
		"Green\t9 stations\tParade Ground → MG Bus Station",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestSnapshot(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "stations.pb")
	if _, err := execute(t, "snapshot", bundledTable, dst); err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--stations", dst, "route", "Miyapur", "LB Nagar", "-f", "text"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("route over snapshot failed: %v", err)
	}
	if !strings.Contains(out.String(), "Total stations: 27") {
		t.Errorf("Unexpected output:\n%s", out.String())
	}
}

func TestParseLatLon(t *testing.T) {
	cases := []struct {
		input   string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{"17.4,78.4", 17.4, 78.4, false},
		{" 17.4 , 78.4 ", 17.4, 78.4, false},
		{"17.4", 0, 0, true},
		{"a,78.4", 0, 0, true},
		{"17.4,b", 0, 0, true},
	}
	for _, c := range cases {
		lat, lon, err := parseLatLon(c.input)
		if (err != nil) != c.wantErr {
			t.Errorf("parseLatLon(%q) error = %v, wantErr %v", c.input, err, c.wantErr)
			continue
		}
		if lat != c.lat || lon != c.lon {
			t.Errorf("parseLatLon(%q) = %v,%v, want %v,%v", c.input, lat, lon, c.lat, c.lon)
		}
	}
}
