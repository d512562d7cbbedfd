package models

import "time"

// CalendarView selects how the practitioner calendar is framed.
type CalendarView string

const (
	ViewDay   CalendarView = "day"
	ViewWeek  CalendarView = "week"
	ViewMonth CalendarView = "month"
	ViewList  CalendarView = "list"
)

// Valid reports whether v is a known calendar view.
func (v CalendarView) Valid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth, ViewList:
		return true
	}
	return false
}

// CalendarRange is a resolved calendar query: the inclusive date range to
// load, the anchors one navigation step away, and a display label.
// Bounded is false for the list view, which is paged rather than
// date-bounded.
type CalendarRange struct {
	View       CalendarView `json:"view"`
	Start      time.Time    `json:"start,omitzero"`
	End        time.Time    `json:"end,omitzero"`
	Bounded    bool         `json:"bounded"`
	PrevAnchor time.Time    `json:"prevAnchor"`
	NextAnchor time.Time    `json:"nextAnchor"`
	Label      string       `json:"label"`
}
