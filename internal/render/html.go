package render

import (
	"bytes"
	"html/template"

	"github.com/jusunglee/metro-go/internal/models"
)

const (
	noRouteToRender = "<p>No route found to render.</p>"
	noMapToDisplay  = "<p>No map to display.</p>"
)

var infoTmpl = template.Must(template.New("info").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`
{{- if eq .Status "same_station" -}}
<div style="color: orange; font-size: 16px;">⚠️ {{.Message}}</div>
{{- else if eq .Status "no_route" -}}
<div style="color: red; font-size: 16px;">❌ {{.Message}}</div>
{{- else -}}
<div style="font-family: Arial; font-size: 16px; line-height: 1.6;">
  <h3 style="color: green;">✅ Route from {{.From}} to {{.To}}</h3>
  <p><strong>🛤️ Stations:</strong><br>
  {{- range $i, $s := .Stations}}{{if $i}}<br>{{end}}{{inc $i}}. 🚉 {{$s}}{{end}}</p>
  <p>📍 <strong>Total Stations:</strong> {{.TotalStations}}<br>
  ⏱ <strong>Estimated Time:</strong> {{.TravelTimeMinutes}} mins<br>
  💰 <strong>Estimated Fare:</strong> ₹{{.Fare}}</p>
</div>
{{- end}}
`))

var mapTmpl = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var stops = {{.Stops}};
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], 12);
L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
var coords = [];
stops.forEach(function (s) {
  coords.push([s.location.lat, s.location.lon]);
  L.circleMarker([s.location.lat, s.location.lon], {
    radius: 6, color: 'blue', fill: true, fillColor: 'blue'
  }).bindPopup(s.name).addTo(map);
});
L.polyline(coords, {color: 'red', weight: 4.5, opacity: 0.8}).addTo(map);
</script>
</body>
</html>
`))

// InfoHTML renders the route information block, or the status message when
// no route was found.
func InfoHTML(it models.Itinerary) (string, error) {
	var buf bytes.Buffer
	if err := infoTmpl.Execute(&buf, it); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MapHTML renders a standalone Leaflet page with a marker per station and
// a polyline in route order.
func MapHTML(it models.Itinerary) (string, error) {
	if len(it.Stops) == 0 {
		return noRouteToRender, nil
	}

	var lat, lon float64
	for _, s := range it.Stops {
		lat += s.Location.Lat
		lon += s.Location.Lon
	}
	n := float64(len(it.Stops))

	data := struct {
		Title     string
		Stops     []models.Stop
		CenterLat float64
		CenterLon float64
	}{
		Title:     Summary(it),
		Stops:     it.Stops,
		CenterLat: lat / n,
		CenterLon: lon / n,
	}

	var buf bytes.Buffer
	if err := mapTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// NoMap is the placeholder shown beside an itinerary without a route
func NoMap() string {
	return noMapToDisplay
}
