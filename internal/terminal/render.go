// Package terminal prints a panel view as plain text.
package terminal

import (
	"fmt"
	"io"
	"text/tabwriter"
	"ulascansenturk/weather-panel/internal/panel"
)

// Render writes the visible panel of view to w.
func Render(w io.Writer, view panel.View) error {
	if view.Notice != "" {
		if _, err := fmt.Fprintf(w, "! %s\n\n", view.Notice); err != nil {
			return err
		}
	}

	switch view.Phase {
	case panel.PhaseLoading:
		_, err := fmt.Fprintln(w, "Loading...")
		return err
	case panel.PhaseError:
		_, err := fmt.Fprintf(w, "Error: %s\n", view.ErrorMessage)
		return err
	}

	d := view.Display
	if d == nil {
		return nil
	}

	if _, err := fmt.Fprintf(w, "%s\n%s\n\n%s%s  %s\n\n", d.Location, view.Clock, d.Temperature, d.Unit, d.Description); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Feels like", d.FeelsLike},
		{"Humidity", d.Humidity},
		{"Wind", d.Wind},
		{"Condition", d.Condition},
	}
	if d.IconURL != "" {
		rows = append(rows, [2]string{"Icon", d.IconURL})
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}

	return tw.Flush()
}
