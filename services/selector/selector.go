// File: services/selector/selector.go
//
// Package selector interprets pointer-drag gestures over a vertical time
// axis, snapping freeform drags into discrete time ranges and separating
// a tap (single-slot intent) from a drag (range intent). It is pure
// gesture logic with no UI dependency; the calendar client feeds it
// pointer events and renders the preview and results it returns.
package selector

import (
	"math"
	"time"
)

// Phase is the recognizer's state. One gesture flows
// idle → tracking → (dragging) → idle; classification happens on release.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTracking
	PhaseDragging
)

// Defaults for gesture classification and snapping.
const (
	DefaultTapMaxDuration = 150 * time.Millisecond
	DefaultTapMaxMovement = 5.0 // pixels
	DefaultSnapMinutes    = 15
)

// Config bounds the time axis and tunes gesture classification.
type Config struct {
	StartHour  int     // first hour shown on the axis
	EndHour    int     // exclusive last hour
	AxisHeight float64 // pixels spanned by [StartHour, EndHour]

	TapMaxDuration time.Duration // zero means DefaultTapMaxDuration
	TapMaxMovement float64       // zero means DefaultTapMaxMovement
	SnapMinutes    int           // zero means DefaultSnapMinutes
}

// PointerEvent is one pointer sample delivered by the UI layer.
type PointerEvent struct {
	Y  float64
	At time.Time
	// OnInteractive marks events originating on an appointment block or
	// control; a gesture must never start there.
	OnInteractive bool
}

// ResultKind classifies a completed gesture.
type ResultKind int

const (
	KindNone ResultKind = iota
	KindTap
	KindRange
)

// Range is a snapped [Start, End) selection in minutes from midnight.
type Range struct {
	Start int
	End   int
}

// Result is the outcome of a released gesture: a tap at one snapped
// minute, a drag range, or nothing (gesture never tracked). Token
// identifies the gesture the result belongs to, so a client holding a
// stale preview can discard results from a gesture it no longer tracks.
type Result struct {
	Kind   ResultKind
	Token  uint64
	Minute int   // tap position, KindTap only
	Range  Range // KindRange only
}

// Recognizer is a single-gesture pointer state machine. The UI layer owns
// pointer capture, so between PointerDown and PointerUp every event
// belongs to the one in-flight gesture identified by token.
type Recognizer struct {
	cfg   Config
	phase Phase
	token uint64

	originY   float64
	startedAt time.Time
	minY      float64
	maxY      float64
}

// New builds a recognizer, filling zero config fields with defaults.
func New(cfg Config) *Recognizer {
	if cfg.TapMaxDuration == 0 {
		cfg.TapMaxDuration = DefaultTapMaxDuration
	}
	if cfg.TapMaxMovement == 0 {
		cfg.TapMaxMovement = DefaultTapMaxMovement
	}
	if cfg.SnapMinutes == 0 {
		cfg.SnapMinutes = DefaultSnapMinutes
	}
	return &Recognizer{cfg: cfg}
}

// Phase exposes the current state for rendering decisions.
func (r *Recognizer) Phase() Phase { return r.phase }

// PointerDown begins tracking a gesture. It refuses events originating on
// interactive elements and events arriving while a gesture is already in
// flight, returning whether tracking began.
func (r *Recognizer) PointerDown(ev PointerEvent) bool {
	if r.phase != PhaseIdle || ev.OnInteractive {
		return false
	}
	r.phase = PhaseTracking
	r.token++
	r.originY = ev.Y
	r.startedAt = ev.At
	r.minY = ev.Y
	r.maxY = ev.Y
	return true
}

// PointerMove extends the in-flight gesture. Once displacement exceeds
// the tap threshold the gesture is a drag and a live preview range is
// available from Preview.
func (r *Recognizer) PointerMove(ev PointerEvent) {
	if r.phase == PhaseIdle {
		return
	}
	if ev.Y < r.minY {
		r.minY = ev.Y
	}
	if ev.Y > r.maxY {
		r.maxY = ev.Y
	}
	if r.phase == PhaseTracking && r.displacement(ev.Y) >= r.cfg.TapMaxMovement {
		r.phase = PhaseDragging
	}
}

// Preview returns the live selection range while dragging. The second
// return is false outside a drag.
func (r *Recognizer) Preview() (Range, bool) {
	if r.phase != PhaseDragging {
		return Range{}, false
	}
	return r.rangeFromExtremes(), true
}

// PointerUp completes the gesture and resets to idle. The selection
// preview is cleared unconditionally, whatever the outcome. A short,
// near-still gesture that never left tracking is a tap at its snapped
// origin. Once the gesture has entered dragging it stays a drag: the
// release produces the [min, max] range of its extremes, regardless of
// direction, even if the pointer returned to its origin.
func (r *Recognizer) PointerUp(ev PointerEvent) Result {
	if r.phase == PhaseIdle {
		return Result{Kind: KindNone}
	}
	defer r.reset()

	if ev.Y < r.minY {
		r.minY = ev.Y
	}
	if ev.Y > r.maxY {
		r.maxY = ev.Y
	}

	elapsed := ev.At.Sub(r.startedAt)
	if r.phase == PhaseTracking && elapsed < r.cfg.TapMaxDuration && r.displacement(ev.Y) < r.cfg.TapMaxMovement {
		return Result{Kind: KindTap, Token: r.token, Minute: r.snapMinute(r.originY)}
	}
	return Result{Kind: KindRange, Token: r.token, Range: r.rangeFromExtremes()}
}

// Cancel aborts the in-flight gesture, clearing any preview.
func (r *Recognizer) Cancel() {
	r.reset()
}

func (r *Recognizer) reset() {
	r.phase = PhaseIdle
	r.originY = 0
	r.startedAt = time.Time{}
	r.minY = 0
	r.maxY = 0
}

func (r *Recognizer) displacement(y float64) float64 {
	d := y - r.originY
	if d < 0 {
		d = -d
	}
	return d
}

func (r *Recognizer) rangeFromExtremes() Range {
	start := r.snapMinute(r.minY)
	end := r.snapMinute(r.maxY)
	if end <= start {
		// A drag collapsing onto one snap point still selects one unit.
		end = start + r.cfg.SnapMinutes
		if end > r.axisEndMinute() {
			end = r.axisEndMinute()
			start = end - r.cfg.SnapMinutes
		}
	}
	return Range{Start: start, End: end}
}

func (r *Recognizer) axisStartMinute() int { return r.cfg.StartHour * 60 }
func (r *Recognizer) axisEndMinute() int   { return r.cfg.EndHour * 60 }

// snapMinute maps a vertical pixel position onto the axis by linear
// interpolation, snaps to the nearest multiple of SnapMinutes and clamps
// into the bounded range.
func (r *Recognizer) snapMinute(y float64) int {
	startMin := r.axisStartMinute()
	endMin := r.axisEndMinute()
	span := float64(endMin - startMin)

	minute := float64(startMin)
	if r.cfg.AxisHeight > 0 {
		minute += (y / r.cfg.AxisHeight) * span
	}

	snapped := int(math.Round(minute/float64(r.cfg.SnapMinutes))) * r.cfg.SnapMinutes
	if snapped < startMin {
		snapped = startMin
	}
	if snapped > endMin {
		snapped = endMin
	}
	return snapped
}
