// Package render turns configured clocks into table rows for one instant.
package render

import (
	"time"

	"github.com/SmitUplenchwar2687/worldclock/internal/config"
)

// TimeFormat is the wall-clock layout of the time column: 24-hour HH:MM:SS.
const TimeFormat = "15:04:05"

// LocalLabel is the fallback label of a clock without a time zone.
const LocalLabel = "Local"

// Row is one rendered line of the table.
type Row struct {
	Label string
	Time  string
}

// Render computes one row per clock, in order, all from the same instant.
// Clocks without a zone are shown in local.
func Render(clocks []config.Clock, instant time.Time, local *time.Location) []Row {
	rows := make([]Row, 0, len(clocks))
	for _, c := range clocks {
		var wall time.Time
		var label string

		if c.Zone != nil {
			wall = c.Zone.In(instant)
			label = c.Zone.Name()
		} else {
			wall = instant.In(local)
			label = LocalLabel
		}

		// A configured name wins even when it is empty.
		if c.Name != nil {
			label = *c.Name
		}

		rows = append(rows, Row{
			Label: label,
			Time:  wall.Format(TimeFormat),
		})
	}
	return rows
}
