package position

import (
	"testing"

	"github.com/marcus/dropdown/pkg/dropdown/mouse"
)

// computeSync runs the terminal engine and returns the delivered result.
func computeSync(t *testing.T, req Request) Result {
	t.Helper()
	var got Result
	delivered := false
	NewTerminalEngine().Compute(req, func(res Result, err error) {
		if err != nil {
			t.Fatalf("unexpected engine error: %v", err)
		}
		got = res
		delivered = true
	})
	if !delivered {
		t.Fatal("engine did not deliver a result")
	}
	return got
}

func TestEnginePlacements(t *testing.T) {
	// Anchor in the middle of an 80x24 viewport, popup 10x5.
	anchor := mouse.Rect{X: 30, Y: 10, W: 8, H: 1}
	target := mouse.Rect{W: 10, H: 5}
	viewport := mouse.Rect{X: 0, Y: 0, W: 80, H: 24}

	cases := []struct {
		placement Placement
		wantX     int
		wantY     int
	}{
		{TopStart, 30, 5},
		{TopEnd, 28, 5},
		{BottomStart, 30, 11},
		{BottomEnd, 28, 11},
		{LeftStart, 20, 10},
		{RightStart, 38, 10},
	}

	for _, tc := range cases {
		got := computeSync(t, Request{
			Anchor:    anchor,
			Target:    target,
			Viewport:  viewport,
			Placement: tc.placement,
		})
		if got.X != tc.wantX || got.Y != tc.wantY {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", tc.placement, got.X, got.Y, tc.wantX, tc.wantY)
		}
		if got.Placement != tc.placement {
			t.Errorf("%s: placement changed to %s without flip", tc.placement, got.Placement)
		}
	}
}

func TestEngineFlip(t *testing.T) {
	viewport := mouse.Rect{X: 0, Y: 0, W: 80, H: 24}
	target := mouse.Rect{W: 10, H: 5}

	// Anchor near the top: top-start does not fit, flips below.
	got := computeSync(t, Request{
		Anchor:    mouse.Rect{X: 10, Y: 1, W: 8, H: 1},
		Target:    target,
		Viewport:  viewport,
		Placement: TopStart,
		Flip:      true,
	})
	if got.Placement != BottomStart {
		t.Errorf("expected flip to bottom-start, got %s", got.Placement)
	}
	if got.Y != 2 {
		t.Errorf("flipped popup should open below anchor at y=2, got %d", got.Y)
	}

	// Same anchor without the flip flag: stays on top, clamped into view.
	got = computeSync(t, Request{
		Anchor:    mouse.Rect{X: 10, Y: 1, W: 8, H: 1},
		Target:    target,
		Viewport:  viewport,
		Placement: TopStart,
	})
	if got.Placement != TopStart {
		t.Errorf("without flip, placement should stay top-start, got %s", got.Placement)
	}
	if got.Y != 0 {
		t.Errorf("clamped popup should pin to viewport top, got y=%d", got.Y)
	}

	// Anchor near the top but no room below either: flip is abandoned.
	got = computeSync(t, Request{
		Anchor:    mouse.Rect{X: 10, Y: 1, W: 8, H: 1},
		Target:    mouse.Rect{W: 10, H: 30},
		Viewport:  viewport,
		Placement: TopStart,
		Flip:      true,
	})
	if got.Placement != TopStart {
		t.Errorf("flip with no room on either side should keep top-start, got %s", got.Placement)
	}
}

func TestEngineFlipHorizontal(t *testing.T) {
	viewport := mouse.Rect{X: 0, Y: 0, W: 80, H: 24}

	got := computeSync(t, Request{
		Anchor:    mouse.Rect{X: 75, Y: 10, W: 4, H: 1},
		Target:    mouse.Rect{W: 15, H: 5},
		Viewport:  viewport,
		Placement: RightStart,
		Flip:      true,
	})
	if got.Placement != LeftStart {
		t.Errorf("expected flip to left-start, got %s", got.Placement)
	}
	if got.X != 60 {
		t.Errorf("flipped popup should sit left of anchor at x=60, got %d", got.X)
	}
}

func TestEngineDetached(t *testing.T) {
	cases := []struct {
		name string
		req  Request
	}{
		{"empty anchor", Request{Target: mouse.Rect{W: 10, H: 5}, Viewport: mouse.Rect{W: 80, H: 24}}},
		{"empty viewport", Request{Anchor: mouse.Rect{W: 8, H: 1}, Target: mouse.Rect{W: 10, H: 5}}},
		{"empty target", Request{Anchor: mouse.Rect{W: 8, H: 1}, Viewport: mouse.Rect{W: 80, H: 24}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			NewTerminalEngine().Compute(tc.req, func(_ Result, err error) {
				if err == nil {
					t.Fatal("expected ErrDetached, got nil error")
				}
			})
		})
	}
}

// deferredEngine captures deliveries so tests can settle them out of order.
type deferredEngine struct {
	pending []func()
}

func (e *deferredEngine) Compute(req Request, deliver func(Result, error)) {
	res := Result{X: req.Anchor.X, Y: req.Anchor.Y, Placement: req.Placement}
	e.pending = append(e.pending, func() { deliver(res, nil) })
}

func (e *deferredEngine) settleAll() {
	for _, fn := range e.pending {
		fn()
	}
	e.pending = nil
}

func TestAdapterLastWriteWins(t *testing.T) {
	engine := &deferredEngine{}
	var results []Result
	a := NewAdapter(engine, func(res Result) { results = append(results, res) })

	a.Update(Request{Anchor: mouse.Rect{X: 1, Y: 1, W: 1, H: 1}, Placement: BottomStart})
	a.Update(Request{Anchor: mouse.Rect{X: 2, Y: 2, W: 1, H: 1}, Placement: BottomStart})
	engine.settleAll()

	if len(results) != 1 {
		t.Fatalf("expected exactly 1 delivery, got %d", len(results))
	}
	if results[0].X != 2 {
		t.Errorf("stale update delivered: got x=%d, want 2", results[0].X)
	}
}

func TestAdapterDestroyDropsInFlight(t *testing.T) {
	engine := &deferredEngine{}
	delivered := 0
	a := NewAdapter(engine, func(Result) { delivered++ })

	a.Update(Request{Anchor: mouse.Rect{X: 1, Y: 1, W: 1, H: 1}})
	a.Destroy()
	engine.settleAll()

	if delivered != 0 {
		t.Errorf("destroyed adapter delivered %d results, want 0", delivered)
	}

	// Updates after destroy are no-ops.
	a.Update(Request{Anchor: mouse.Rect{X: 3, Y: 3, W: 1, H: 1}})
	engine.settleAll()
	if delivered != 0 {
		t.Errorf("update after destroy delivered %d results, want 0", delivered)
	}
}

// failingEngine always reports a detached element.
type failingEngine struct{}

func (failingEngine) Compute(_ Request, deliver func(Result, error)) {
	deliver(Result{}, ErrDetached)
}

func TestAdapterWithholdsFailedComputation(t *testing.T) {
	delivered := 0
	a := NewAdapter(failingEngine{}, func(Result) { delivered++ })

	a.Update(Request{Anchor: mouse.Rect{W: 1, H: 1}})
	if delivered != 0 {
		t.Errorf("failed computation delivered %d results, want 0", delivered)
	}
}
