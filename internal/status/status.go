// Package status derives the lifecycle phase and duration text of a contest
// from its schedule.
package status

import (
	"fmt"
	"time"

	"github.com/yukikurage/contest-tracker/internal/models"
)

// Derive returns the phase of a contest running from start to end as seen at now.
// Both boundaries belong to the ongoing phase.
func Derive(start, end, now time.Time) models.ContestStatus {
	switch {
	case now.Before(start):
		return models.ContestStatusUpcoming
	case now.After(end):
		return models.ContestStatusCompleted
	default:
		return models.ContestStatusOngoing
	}
}

// Duration formats end-start as whole days and hours, e.g. "2 days 3 hours".
// The hour part is omitted when zero and hours are floored.
func Duration(start, end time.Time) string {
	totalHours := int(end.Sub(start) / time.Hour)
	if totalHours < 0 {
		totalHours = 0
	}

	days := totalHours / 24
	hours := totalHours % 24

	if days >= 1 {
		if hours > 0 {
			return fmt.Sprintf("%s %s", plural(days, "day"), plural(hours, "hour"))
		}
		return plural(days, "day")
	}

	return plural(hours, "hour")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
