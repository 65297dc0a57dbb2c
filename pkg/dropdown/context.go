package dropdown

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dropdown/pkg/dropdown/focus"
	"github.com/marcus/dropdown/pkg/dropdown/position"
)

// Context is the snapshot of controller state the render layer consumes,
// plus the callbacks it needs to wire toggle and menu sub-components back
// in. It is cheap to rebuild on every render.
type Context struct {
	// Open is the authoritative open flag as of the last update.
	Open bool
	// Placement is where the menu should render relative to the toggle.
	Placement position.Placement
	// Position is the last computed coordinate bundle, passed through from
	// the positioner unchanged. Nil until the first computation settles.
	Position *position.Result
	// ToggleID identifies the toggle element.
	ToggleID string

	// HandleKey dispatches a key event against the dropdown.
	HandleKey func(*KeyEvent)
	// SetToggle registers the toggle element handle.
	SetToggle func(focus.Node)
	// SetMenu registers the menu element handle.
	SetMenu func(focus.Node)
	// Toggle requests the inverse of the current open flag.
	Toggle func(msg tea.Msg, src Source)
	// RequestClose requests a close.
	RequestClose func(msg tea.Msg, src Source)
}

// Context builds the render-layer view of the controller.
func (c *Controller) Context() Context {
	return Context{
		Open:         c.open,
		Placement:    c.placement,
		Position:     c.result,
		ToggleID:     c.id,
		HandleKey:    c.HandleKey,
		SetToggle:    c.SetToggle,
		SetMenu:      c.SetMenu,
		Toggle:       c.Toggle,
		RequestClose: c.RequestClose,
	}
}
