package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jusunglee/metro-go/internal/models"
	"github.com/jusunglee/metro-go/internal/render"
)

var errNoRoute = errors.New("no route found")

func routeCmd(opts *options) *cobra.Command {
	var format string
	var out string

	c := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Find the shortest route between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			defer client.Close()

			it, err := client.PlanRoute(args[0], args[1])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if err := printItinerary(w, it, format); err != nil {
				return err
			}
			if it.Status == models.StatusNoRoute {
				return fmt.Errorf("%w: %s to %s", errNoRoute, it.From, it.To)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "pretty", "Output format: pretty|text|json|html|map")
	c.Flags().StringVarP(&out, "out", "o", "", "Write output to a file instead of stdout")
	return c
}

func printItinerary(w io.Writer, it models.Itinerary, format string) error {
	switch format {
	case "pretty", "":
		return render.Styled(w, it)
	case "text":
		return render.Text(w, it)
	case "json":
		return render.JSON(w, it)
	case "html":
		page, err := render.InfoHTML(it)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, page)
		return err
	case "map":
		page, err := render.MapHTML(it)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, page)
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|text|json|html|map)", format)
	}
}
