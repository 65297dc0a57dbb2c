package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dropdown/pkg/dropdown/focus"
)

// KeyMap holds the key bindings the controller dispatches on.
type KeyMap struct {
	// Prev moves focus to the previous menu item.
	Prev key.Binding
	// Next opens the menu when closed, otherwise moves focus to the next item.
	Next key.Binding
	// Close requests a close.
	Close key.Binding
	// TabOut requests a close without suppressing the key, so normal
	// tab-order continuation still happens in the host UI.
	TabOut key.Binding
}

// DefaultKeyMap returns the standard dropdown bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous item")),
		Next:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next item / open")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		TabOut: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "close and move on")),
	}
}

// KeyEvent wraps a key message with the element it targeted and a
// default-suppression flag. The rendering layer checks DefaultPrevented
// after dispatch to decide whether the key should still reach its normal
// handling (e.g. text entry, tab-order movement).
type KeyEvent struct {
	Msg       tea.KeyMsg
	Target    focus.Node
	prevented bool
}

// NewKeyEvent builds a key event targeting the given node. A nil target
// means the key was pressed with nothing relevant focused.
func NewKeyEvent(msg tea.KeyMsg, target focus.Node) *KeyEvent {
	return &KeyEvent{Msg: msg, Target: target}
}

// PreventDefault marks the event as consumed by the dropdown.
func (e *KeyEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether the dropdown consumed the event.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.prevented
}

// isSpaceKey reports whether the message is a plain space press, which must
// reach text inputs untouched.
func isSpaceKey(msg tea.KeyMsg) bool {
	return msg.String() == " "
}
