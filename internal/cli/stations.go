package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jusunglee/metro-go/internal/models"
)

func stationsCmd(opts *options) *cobra.Command {
	var line string
	var near string
	var limit int

	c := &cobra.Command{
		Use:   "stations",
		Short: "List stations, optionally by line or nearest to a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			defer client.Close()

			w := cmd.OutOrStdout()

			switch {
			case near != "":
				lat, lon, err := parseLatLon(near)
				if err != nil {
					return err
				}
				stations, err := client.GetStationsByLocation(lat, lon, limit)
				if err != nil {
					return err
				}
				printStations(w, stations)
			case line != "":
				stations, err := client.GetStationsByLine(line)
				if err != nil {
					return err
				}
				printStations(w, stations)
			default:
				names, err := client.GetStations()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(w, name)
				}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&line, "line", "l", "", "Only stations on this line, in travel order")
	c.Flags().StringVar(&near, "near", "", "Nearest stations to LAT,LON")
	c.Flags().IntVarP(&limit, "limit", "n", 5, "Number of stations for --near")
	return c
}

func linesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "List lines with their station counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			defer client.Close()

			lines, err := client.GetLines()
			if err != nil {
				return err
			}
			for _, line := range lines {
				stations, err := client.GetStationsByLine(line)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d stations\t%s → %s\n",
					line, len(stations), stations[0].Name, stations[len(stations)-1].Name)
			}
			return nil
		},
	}
}

func printStations(w io.Writer, stations []models.Station) {
	for _, s := range stations {
		fmt.Fprintf(w, "%s\t%s\t%.4f,%.4f\n", s.Name, strings.Join(s.Lines, "/"), s.Location.Lat, s.Location.Lon)
	}
}

func parseLatLon(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid --near %q (expected LAT,LON)", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q", parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q", parts[1])
	}
	return lat, lon, nil
}
