// Package position computes where an anchored popup should be drawn and
// delivers recomputed coordinates through a callback. The geometry engine is
// pluggable: the Adapter only cares that exactly one delivery happens per
// Update call unless a newer call supersedes it, so engines may settle
// synchronously or on a later turn of the event loop.
package position

import (
	"errors"

	"github.com/marcus/dropdown/pkg/dropdown/mouse"
)

// Placement describes where a popup sits relative to its anchor.
type Placement string

const (
	TopStart    Placement = "top-start"
	TopEnd      Placement = "top-end"
	BottomStart Placement = "bottom-start"
	BottomEnd   Placement = "bottom-end"
	LeftStart   Placement = "left-start"
	RightStart  Placement = "right-start"
)

// ErrDetached is reported by engines when an element involved in the
// computation has no usable geometry (zero-area anchor or viewport).
var ErrDetached = errors.New("position: element detached from layout")

// Bounded is implemented by element handles that can report their on-screen
// rectangle.
type Bounded interface {
	Bounds() mouse.Rect
}

// Request describes one positioning computation. Target carries the popup's
// desired size; its X/Y are ignored.
type Request struct {
	Anchor    mouse.Rect
	Target    mouse.Rect
	Viewport  mouse.Rect
	Placement Placement
	Flip      bool
}

// Result is the outcome of a computation. Placement is the placement that
// was actually used, which differs from the requested one when the engine
// flipped to the opposite side.
type Result struct {
	X, Y      int
	Placement Placement
}

// Engine computes popup coordinates. Implementations call deliver exactly
// once per Compute call, either synchronously or later; on failure they call
// it with a non-nil error instead.
type Engine interface {
	Compute(req Request, deliver func(Result, error))
}

// Adapter wraps an Engine with supersession and teardown semantics. The
// dropdown controller owns one Adapter for its lifetime.
//
// Each Update call bumps a sequence number that is captured by the delivery
// closure; when the engine settles, deliveries carrying a stale sequence are
// dropped. This is the only cancellation mechanism: a newer Update wins, and
// Destroy wins over everything. Engine failures produce no callback, leaving
// the caller's last known result in place.
//
// The adapter assumes the single-threaded cooperative model of a TUI event
// loop; it is not safe for concurrent use.
type Adapter struct {
	engine    Engine
	onUpdate  func(Result)
	seq       uint64
	destroyed bool
}

// NewAdapter creates an adapter delivering results to onUpdate.
func NewAdapter(engine Engine, onUpdate func(Result)) *Adapter {
	return &Adapter{engine: engine, onUpdate: onUpdate}
}

// Update schedules a recomputation. The result callback fires exactly once
// unless a newer Update supersedes this one, Destroy is called first, or the
// engine fails.
func (a *Adapter) Update(req Request) {
	if a.destroyed || a.engine == nil {
		return
	}
	a.seq++
	seq := a.seq
	a.engine.Compute(req, func(res Result, err error) {
		if a.destroyed || seq != a.seq || err != nil {
			return
		}
		if a.onUpdate != nil {
			a.onUpdate(res)
		}
	})
}

// Destroy tears the adapter down. Any in-flight delivery is dropped and
// further Update calls are no-ops.
func (a *Adapter) Destroy() {
	a.destroyed = true
}
