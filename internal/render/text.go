// Package render formats itineraries as text, styled terminal output,
// JSON and HTML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jusunglee/metro-go/internal/models"
)

const currency = "₹"

// Summary returns a one-line description such as "A → B (5 stations)".
// It is empty unless a route was found.
func Summary(it models.Itinerary) string {
	if !it.Found() {
		return ""
	}
	return fmt.Sprintf("%s → %s (%d stations)", it.From, it.To, it.TotalStations)
}

// Text writes a plain numbered itinerary
func Text(w io.Writer, it models.Itinerary) error {
	var b strings.Builder

	if !it.Found() {
		fmt.Fprintln(&b, it.Message)
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "Route from %s to %s\n", it.From, it.To)
	for i, stop := range it.Stops {
		fmt.Fprintf(&b, "%3d. %s (%s)\n", i+1, stop.Name, stop.Line)
	}
	for _, change := range changes(it) {
		fmt.Fprintln(&b, change)
	}
	fmt.Fprintf(&b, "Total stations: %d\n", it.TotalStations)
	fmt.Fprintf(&b, "Estimated time: %d mins\n", it.TravelTimeMinutes)
	fmt.Fprintf(&b, "Estimated fare: %s%d\n", currency, it.Fare)

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes the itinerary as indented JSON
func JSON(w io.Writer, it models.Itinerary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(it)
}

// changes describes each line change along the route
func changes(it models.Itinerary) []string {
	var out []string
	for i := 1; i < len(it.Legs); i++ {
		out = append(out, fmt.Sprintf("Change at %s: %s → %s",
			it.Legs[i].From, it.Legs[i-1].Line, it.Legs[i].Line))
	}
	return out
}
