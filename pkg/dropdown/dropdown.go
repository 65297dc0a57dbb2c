// Package dropdown implements the interaction state machine behind a
// dropdown menu: placement derivation, show/hide transitions coordinated
// with focus movement, and keyboard dispatch between a toggle control and
// the focusable items of its popup menu.
//
// The controller does not own the open flag. The host supplies the
// authoritative value on every Update call and receives change requests
// through the OnToggle callback; see Managed for a wrapper that stores the
// flag itself. Rendering is likewise external: the render layer registers
// concrete element handles via SetToggle/SetMenu and consumes the Context
// the controller exposes.
//
// Operations are no-ops while required elements are missing. Nothing in
// this package panics over an unregistered menu; the degraded behavior is
// simply that focus or position does not move.
package dropdown

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dropdown/pkg/dropdown/focus"
	"github.com/marcus/dropdown/pkg/dropdown/mouse"
	"github.com/marcus/dropdown/pkg/dropdown/position"
)

// Source tags an open/close request with what triggered it.
type Source string

const (
	SourceClick     Source = "click"
	SourceKeydown   Source = "keydown"
	SourceRootClose Source = "rootClose"
	SourceSelect    Source = "select"
)

// OnToggleFunc receives open/close requests. The host decides whether to
// honor the requested value and feeds the result back through Update.
type OnToggleFunc func(open bool, msg tea.Msg, src Source)

var toggleSeq int

func nextToggleID() string {
	toggleSeq++
	return fmt.Sprintf("dropdown-toggle-%d", toggleSeq)
}

// Controller is the dropdown state machine. Create one per dropdown with
// New, feed it external updates, and tear it down with Destroy.
type Controller struct {
	id        string
	keys      KeyMap
	open      bool
	cfg       Config
	placement position.Placement

	toggle focus.Node
	menu   focus.Node
	scope  *focus.Scope

	matcher  focus.Matcher
	adapter  *position.Adapter
	viewport mouse.Rect
	flip     bool

	// focusInMenu records whether focus sat inside the menu at the moment a
	// close was observed, snapshotted before the render layer unmounts the
	// menu. Cleared once focus has been handed back to the toggle.
	focusInMenu bool

	result   *position.Result
	onToggle OnToggleFunc

	escapePreventsDefault bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithEngine sets the geometry engine. Defaults to the terminal-grid engine.
func WithEngine(engine position.Engine) Option {
	return func(c *Controller) {
		c.adapter = position.NewAdapter(engine, c.storeResult)
	}
}

// WithOnToggle sets the open/close request callback.
func WithOnToggle(fn OnToggleFunc) Option {
	return func(c *Controller) { c.onToggle = fn }
}

// WithItemSelector sets the selector that identifies focusable menu items.
// The default is "menuitem".
func WithItemSelector(selector string) Option {
	return func(c *Controller) { c.matcher = focus.ParseSelector(selector) }
}

// WithMatcher sets the item matcher directly, bypassing selector parsing.
func WithMatcher(m focus.Matcher) Option {
	return func(c *Controller) { c.matcher = m }
}

// WithScope shares a focus scope with other components. By default the
// controller owns a private scope.
func WithScope(s *focus.Scope) Option {
	return func(c *Controller) { c.scope = s }
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(c *Controller) { c.keys = km }
}

// WithFlip makes the positioner flip the menu to the opposite side of the
// toggle when it would overflow the viewport.
func WithFlip(flip bool) Option {
	return func(c *Controller) { c.flip = flip }
}

// WithEscapePreventsDefault controls whether Escape is reported as consumed
// after it requests a close. Defaults to false, leaving the decision to the
// surrounding UI.
func WithEscapePreventsDefault(prevent bool) Option {
	return func(c *Controller) { c.escapePreventsDefault = prevent }
}

// WithInitialOpen sets the open flag the controller starts from. There is
// no open transition when the first Update call carries the same value, so
// a dropdown constructed open does not steal focus on mount.
func WithInitialOpen(open bool) Option {
	return func(c *Controller) { c.open = open }
}

// WithID sets the toggle ID exposed through the context. Default IDs are
// generated.
func WithID(id string) Option {
	return func(c *Controller) { c.id = id }
}

// New creates a controller. The positioner adapter is created here and
// lives until Destroy.
func New(opts ...Option) *Controller {
	c := &Controller{
		id:      nextToggleID(),
		keys:    DefaultKeyMap(),
		matcher: focus.MatchRole("menuitem"),
		scope:   focus.NewScope(),
	}
	c.placement = PlacementFor(c.cfg)
	for _, opt := range opts {
		opt(c)
	}
	if c.adapter == nil {
		c.adapter = position.NewAdapter(position.NewTerminalEngine(), c.storeResult)
	}
	return c
}

// Open reports the open flag as of the last external update.
func (c *Controller) Open() bool { return c.open }

// Placement returns the placement derived from the last configuration.
func (c *Controller) Placement() position.Placement { return c.placement }

// Position returns the last delivered position result, or nil before the
// first successful computation.
func (c *Controller) Position() *position.Result { return c.result }

// Scope returns the focus scope the controller drives.
func (c *Controller) Scope() *focus.Scope { return c.scope }

// ToggleID returns the identifier the render layer should attach to the
// toggle element.
func (c *Controller) ToggleID() string { return c.id }

// SetToggle registers the toggle element handle. Pass nil on unmount.
func (c *Controller) SetToggle(n focus.Node) {
	c.toggle = n
	c.elementsChanged()
}

// SetMenu registers the menu element handle. Pass nil on unmount.
func (c *Controller) SetMenu(n focus.Node) {
	c.menu = n
	c.elementsChanged()
}

// SetViewport tells the positioner how much room it has to work with.
// Call on terminal resize.
func (c *Controller) SetViewport(v mouse.Rect) {
	c.viewport = v
	if c.open {
		c.reposition()
	}
}

func (c *Controller) elementsChanged() {
	if c.open {
		c.reposition()
	}
}

// Update is the external update step. The host calls it on every re-render
// with the authoritative open flag and the current configuration; the
// controller never overrides the supplied value.
//
// Ordering matters on a close: whether focus currently sits inside the menu
// is snapshotted here, synchronously, using the previous render's menu
// contents, strictly before the render layer gets a chance to unmount the
// menu and lose that information.
func (c *Controller) Update(open bool, cfg Config) {
	prevOpen := c.open
	prevPlacement := c.placement
	c.cfg = cfg
	c.placement = PlacementFor(cfg)

	if prevOpen && !open {
		c.focusInMenu = c.menu != nil && focus.Contains(c.menu, c.scope.Current())
	}
	c.open = open

	switch {
	case !prevOpen && open:
		c.reposition()
		if focus.HasMenuRole(c.menu) {
			focus.FocusFirst(c.scope, c.menu, c.matcher)
		}
	case prevOpen && !open:
		if c.focusInMenu {
			c.focusInMenu = false
			if c.toggle != nil {
				c.scope.Focus(c.toggle)
			}
		}
	case open && c.placement != prevPlacement:
		c.reposition()
	}
}

// Toggle requests the inverse of the current open flag. The actual state
// change arrives on the next Update call, if the host honors the request.
func (c *Controller) Toggle(msg tea.Msg, src Source) {
	if c.onToggle != nil {
		c.onToggle(!c.open, msg, src)
	}
}

// RequestClose requests a close regardless of the current flag.
func (c *Controller) RequestClose(msg tea.Msg, src Source) {
	if c.onToggle != nil {
		c.onToggle(false, msg, src)
	}
}

// HandleKey dispatches a key event. Whether the event should be withheld
// from its normal handling afterwards is reported via ev.DefaultPrevented.
func (c *Controller) HandleKey(ev *KeyEvent) {
	if ev == nil {
		return
	}
	target := ev.Target

	// Keys aimed at a text entry stay with the text entry: space always,
	// and everything except Escape while the entry sits inside the menu.
	if target != nil && target.Editable() {
		if isSpaceKey(ev.Msg) ||
			(!key.Matches(ev.Msg, c.keys.Close) && c.menu != nil && focus.Contains(c.menu, target)) {
			return
		}
	}

	switch {
	case key.Matches(ev.Msg, c.keys.Prev):
		ev.PreventDefault()
		if next := focus.NextItem(c.menu, c.matcher, target, -1); next != nil {
			c.scope.Focus(next)
		}

	case key.Matches(ev.Msg, c.keys.Next):
		ev.PreventDefault()
		if !c.open {
			c.Toggle(ev.Msg, SourceKeydown)
		} else if next := focus.NextItem(c.menu, c.matcher, target, 1); next != nil {
			c.scope.Focus(next)
		}

	case key.Matches(ev.Msg, c.keys.Close):
		if c.escapePreventsDefault {
			ev.PreventDefault()
		}
		c.RequestClose(ev.Msg, SourceKeydown)

	case key.Matches(ev.Msg, c.keys.TabOut):
		c.RequestClose(ev.Msg, SourceKeydown)
	}
}

// storeResult is the adapter's delivery callback.
func (c *Controller) storeResult(res position.Result) {
	r := res
	c.result = &r
}

func (c *Controller) reposition() {
	anchor, ok := c.toggle.(position.Bounded)
	if !ok {
		return
	}
	target, ok := c.menu.(position.Bounded)
	if !ok {
		return
	}
	c.adapter.Update(position.Request{
		Anchor:    anchor.Bounds(),
		Target:    target.Bounds(),
		Viewport:  c.viewport,
		Placement: c.placement,
		Flip:      c.flip,
	})
}

// Destroy tears the controller down: the positioner adapter is destroyed so
// no in-flight computation can mutate state, and element handles are
// cleared.
func (c *Controller) Destroy() {
	c.adapter.Destroy()
	c.toggle = nil
	c.menu = nil
	c.scope.Blur()
}
