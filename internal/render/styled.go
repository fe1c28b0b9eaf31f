package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jusunglee/metro-go/internal/models"
)

type theme struct {
	Title   lipgloss.Style
	Warning lipgloss.Style
	Failure lipgloss.Style
	Muted   lipgloss.Style
	Label   lipgloss.Style
	Card    lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Muted:   lipgloss.NewStyle().Faint(true),
		Label:   lipgloss.NewStyle().Bold(true),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
	}
}

// lineColors maps common line names to terminal colors
var lineColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("1"),
	"blue":   lipgloss.Color("4"),
	"green":  lipgloss.Color("2"),
	"yellow": lipgloss.Color("3"),
	"purple": lipgloss.Color("5"),
}

func lineStyle(line string) lipgloss.Style {
	c, ok := lineColors[strings.ToLower(line)]
	if !ok {
		c = lipgloss.Color("63")
	}
	return lipgloss.NewStyle().Foreground(c)
}

// Styled writes a boxed, colored itinerary for terminals
func Styled(w io.Writer, it models.Itinerary) error {
	th := defaultTheme()

	switch it.Status {
	case models.StatusSameStation:
		_, err := fmt.Fprintln(w, th.Warning.Render("⚠ "+it.Message))
		return err
	case models.StatusNoRoute:
		_, err := fmt.Fprintln(w, th.Failure.Render("✗ "+it.Message))
		return err
	}

	var b strings.Builder
	b.WriteString(th.Title.Render(fmt.Sprintf("Route from %s to %s", it.From, it.To)))
	b.WriteString("\n\n")

	interchange := make(map[string]bool, len(it.Interchanges))
	for _, name := range it.Interchanges {
		interchange[name] = true
	}

	for i, stop := range it.Stops {
		marker := lineStyle(stop.Line).Render("●")
		line := fmt.Sprintf("%s %2d. %s %s", marker, i+1, stop.Name, th.Muted.Render(stop.Line))
		if interchange[stop.Name] {
			line += " " + th.Warning.Render("change")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d\n", th.Label.Render("Total stations:"), it.TotalStations)
	fmt.Fprintf(&b, "%s %d mins\n", th.Label.Render("Estimated time:"), it.TravelTimeMinutes)
	fmt.Fprintf(&b, "%s %s%d", th.Label.Render("Estimated fare:"), currency, it.Fare)

	_, err := fmt.Fprintln(w, th.Card.Render(b.String()))
	return err
}
