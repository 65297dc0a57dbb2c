package position

import "github.com/marcus/dropdown/pkg/dropdown/mouse"

// TerminalEngine is a synchronous geometry engine over the terminal cell
// grid. It places the popup on the requested side of the anchor, flips to
// the opposite side when the popup would overflow the viewport and the
// opposite side has room, then clamps the final rectangle into the viewport.
type TerminalEngine struct{}

// NewTerminalEngine creates a terminal-grid engine.
func NewTerminalEngine() *TerminalEngine {
	return &TerminalEngine{}
}

// Compute implements Engine. Delivery is synchronous.
func (e *TerminalEngine) Compute(req Request, deliver func(Result, error)) {
	if req.Anchor.Empty() || req.Viewport.Empty() || req.Target.Empty() {
		deliver(Result{}, ErrDetached)
		return
	}

	placement := req.Placement
	rect := anchoredRect(req.Anchor, req.Target, placement)

	if req.Flip && overflowsPrimary(rect, req.Viewport, placement) {
		alt := opposite(placement)
		altRect := anchoredRect(req.Anchor, req.Target, alt)
		if !overflowsPrimary(altRect, req.Viewport, alt) {
			placement = alt
			rect = altRect
		}
	}

	rect = clampInto(rect, req.Viewport)
	deliver(Result{X: rect.X, Y: rect.Y, Placement: placement}, nil)
}

// anchoredRect returns the popup rectangle for a placement before any flip
// or clamp. "start" aligns leading edges with the anchor, "end" aligns
// trailing edges.
func anchoredRect(anchor, target mouse.Rect, p Placement) mouse.Rect {
	r := mouse.Rect{W: target.W, H: target.H}

	switch p {
	case TopStart:
		r.X = anchor.X
		r.Y = anchor.Y - target.H
	case TopEnd:
		r.X = anchor.X + anchor.W - target.W
		r.Y = anchor.Y - target.H
	case BottomEnd:
		r.X = anchor.X + anchor.W - target.W
		r.Y = anchor.Y + anchor.H
	case LeftStart:
		r.X = anchor.X - target.W
		r.Y = anchor.Y
	case RightStart:
		r.X = anchor.X + anchor.W
		r.Y = anchor.Y
	default: // BottomStart
		r.X = anchor.X
		r.Y = anchor.Y + anchor.H
	}
	return r
}

// overflowsPrimary reports whether the popup sticks out of the viewport on
// the axis the placement extends along.
func overflowsPrimary(r, viewport mouse.Rect, p Placement) bool {
	switch p {
	case TopStart, TopEnd:
		return r.Y < viewport.Y
	case LeftStart:
		return r.X < viewport.X
	case RightStart:
		return r.X+r.W > viewport.X+viewport.W
	default:
		return r.Y+r.H > viewport.Y+viewport.H
	}
}

// opposite mirrors a placement across the anchor, preserving alignment.
func opposite(p Placement) Placement {
	switch p {
	case TopStart:
		return BottomStart
	case TopEnd:
		return BottomEnd
	case BottomStart:
		return TopStart
	case BottomEnd:
		return TopEnd
	case LeftStart:
		return RightStart
	case RightStart:
		return LeftStart
	}
	return p
}

// clampInto shifts the rectangle so it lies within the viewport where
// possible. Oversized popups pin to the viewport origin.
func clampInto(r, viewport mouse.Rect) mouse.Rect {
	if r.X+r.W > viewport.X+viewport.W {
		r.X = viewport.X + viewport.W - r.W
	}
	if r.X < viewport.X {
		r.X = viewport.X
	}
	if r.Y+r.H > viewport.Y+viewport.H {
		r.Y = viewport.Y + viewport.H - r.H
	}
	if r.Y < viewport.Y {
		r.Y = viewport.Y
	}
	return r
}
