package mouse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ActionType classifies a resolved mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
)

// Action is the result of resolving a mouse event against the hit map.
// Region is nil when the event landed outside every registered region.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler resolves Bubble Tea mouse events against a hit map and tracks the
// hovered region between events.
type Handler struct {
	HitMap  *HitMap
	hoverID string
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HoverID returns the ID of the region currently under the pointer, or ""
// when the pointer is outside all regions.
func (h *Handler) HoverID() string {
	return h.hoverID
}

// HandleMouse resolves a mouse event. Left-button presses become ActionClick,
// motion becomes ActionHover; everything else is ActionNone.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	region := h.HitMap.Test(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return Action{Type: ActionClick, Region: region, X: msg.X, Y: msg.Y}

	case msg.Action == tea.MouseActionMotion:
		if region != nil {
			h.hoverID = region.ID
		} else {
			h.hoverID = ""
		}
		return Action{Type: ActionHover, Region: region, X: msg.X, Y: msg.Y}
	}

	return Action{Type: ActionNone, Region: region, X: msg.X, Y: msg.Y}
}
