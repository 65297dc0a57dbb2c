// Package focus enumerates and traverses focusable elements in an abstract
// interactive-element tree. It is backend-agnostic: any UI layer that can
// express its surfaces as a Node tree (terminal widgets here, but nothing in
// the package assumes a terminal) gets item traversal, role gating and
// active-element tracking for free.
package focus

// Node is one element in the interactive tree. Implementations are expected
// to be pointer-shaped so that two handles to the same element compare equal.
type Node interface {
	// ID returns a stable identifier, unique within the tree.
	ID() string
	// Role returns the element's semantic role ("button", "menu",
	// "menuitem", "textbox", ...), or "" for plain containers.
	Role() string
	// Editable reports whether the element accepts free text entry.
	Editable() bool
	// Focusable reports whether the element can receive focus.
	Focusable() bool
	// Children returns child nodes in document order.
	Children() []Node
	// Focus is called when the element gains focus, letting the backend
	// update its visual state.
	Focus()
}

// Contains reports whether n is root or a descendant of root.
func Contains(root, n Node) bool {
	if root == nil || n == nil {
		return false
	}
	if root == n {
		return true
	}
	for _, child := range root.Children() {
		if Contains(child, n) {
			return true
		}
	}
	return false
}

// Scope tracks the active (focused) element of a tree. The dropdown
// controller is the single writer; render layers only read.
type Scope struct {
	current Node
}

// NewScope creates a scope with nothing focused.
func NewScope() *Scope {
	return &Scope{}
}

// Current returns the active node, or nil when nothing holds focus.
func (s *Scope) Current() Node {
	return s.current
}

// Focus makes n the active node and notifies it. Focusing nil is a Blur.
func (s *Scope) Focus(n Node) {
	s.current = n
	if n != nil {
		n.Focus()
	}
}

// Blur clears the active node.
func (s *Scope) Blur() {
	s.current = nil
}
