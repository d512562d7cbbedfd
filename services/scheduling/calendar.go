package scheduling

import (
	"fmt"
	"time"

	"practiva/models"
)

// ListPageSize caps the unbounded list view at a fixed page, newest first.
const ListPageSize = 50

// ResolveRange maps a calendar view and anchor date onto the inclusive
// query range, the anchors one navigation step backward and forward, and a
// display label. Weeks start on Monday. Stepping forward then backward
// lands back in the original period at the same granularity.
func ResolveRange(view models.CalendarView, anchor time.Time) (models.CalendarRange, error) {
	anchor = Midnight(anchor)
	cr := models.CalendarRange{View: view, Bounded: true}

	switch view {
	case models.ViewDay:
		cr.Start = anchor
		cr.End = anchor
		cr.PrevAnchor = anchor.AddDate(0, 0, -1)
		cr.NextAnchor = anchor.AddDate(0, 0, 1)
		cr.Label = anchor.Format("Monday, 2 January 2006")

	case models.ViewWeek:
		start := mondayOf(anchor)
		cr.Start = start
		cr.End = start.AddDate(0, 0, 6)
		cr.PrevAnchor = anchor.AddDate(0, 0, -7)
		cr.NextAnchor = anchor.AddDate(0, 0, 7)
		cr.Label = fmt.Sprintf("%s – %s", start.Format("2 Jan"), cr.End.Format("2 Jan 2006"))

	case models.ViewMonth:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		cr.Start = start
		cr.End = start.AddDate(0, 1, 0).AddDate(0, 0, -1)
		cr.PrevAnchor = start.AddDate(0, -1, 0)
		cr.NextAnchor = start.AddDate(0, 1, 0)
		cr.Label = anchor.Format("January 2006")

	case models.ViewList:
		// List is a paged recent-history query, not date-bounded.
		cr.Bounded = false
		cr.PrevAnchor = anchor
		cr.NextAnchor = anchor
		cr.Label = "Recent appointments"

	default:
		return models.CalendarRange{}, NewValidationError("unknown calendar view %q", view)
	}
	return cr, nil
}

func mondayOf(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
