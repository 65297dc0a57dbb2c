package menu

import (
	"github.com/marcus/dropdown/pkg/dropdown/focus"
	"github.com/marcus/dropdown/pkg/dropdown/mouse"
)

// Item is one entry in the menu.
type Item struct {
	ID       string
	Label    string
	Disabled bool
	Data     any // Optional associated data
}

// The node types below expose the rendered widgets to the dropdown
// controller as an interactive-element tree. The model is the single owner;
// nodes delegate focus notifications back to it so the visuals track the
// controller's focus scope.

type toggleNode struct {
	m *Model
}

func (n *toggleNode) ID() string             { return n.m.dd.ToggleID() }
func (n *toggleNode) Role() string           { return "button" }
func (n *toggleNode) Editable() bool         { return false }
func (n *toggleNode) Focusable() bool        { return true }
func (n *toggleNode) Children() []focus.Node { return nil }
func (n *toggleNode) Focus() {
	n.m.focusedID = n.ID()
	n.m.filter.Blur()
}
func (n *toggleNode) Bounds() mouse.Rect { return n.m.toggleAt }

type menuNode struct {
	m        *Model
	role     string
	children []focus.Node
	size     mouse.Rect
}

func (n *menuNode) ID() string             { return "menu" }
func (n *menuNode) Role() string           { return n.role }
func (n *menuNode) Editable() bool         { return false }
func (n *menuNode) Focusable() bool        { return false }
func (n *menuNode) Children() []focus.Node { return n.children }
func (n *menuNode) Focus()                 {}
func (n *menuNode) Bounds() mouse.Rect     { return n.size }

type itemNode struct {
	m    *Model
	item Item
}

func (n *itemNode) ID() string             { return n.item.ID }
func (n *itemNode) Role() string           { return "menuitem" }
func (n *itemNode) Editable() bool         { return false }
func (n *itemNode) Focusable() bool        { return !n.item.Disabled }
func (n *itemNode) Children() []focus.Node { return nil }
func (n *itemNode) Focus() {
	n.m.focusedID = n.item.ID
	n.m.filter.Blur()
}

type filterNode struct {
	m *Model
}

func (n *filterNode) ID() string             { return "filter" }
func (n *filterNode) Role() string           { return "textbox" }
func (n *filterNode) Editable() bool         { return true }
func (n *filterNode) Focusable() bool        { return true }
func (n *filterNode) Children() []focus.Node { return nil }
func (n *filterNode) Focus() {
	n.m.focusedID = n.ID()
	n.m.filter.Focus()
}
