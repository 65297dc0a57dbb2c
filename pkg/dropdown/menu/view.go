package menu

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/dropdown/pkg/dropdown/mouse"
)

// View implements tea.Model. Hit regions are re-registered from what was
// actually drawn, so Update's mouse handling always works against the
// current frame.
func (m *Model) View() string {
	m.handler.HitMap.Clear()
	c := newCanvas(m.width, m.height)

	toggle := m.toggleView()
	tw, th := lipgloss.Width(toggle), lipgloss.Height(toggle)
	m.toggleAt = mouse.Rect{X: m.tx, Y: m.ty, W: tw, H: th}
	c.draw(m.tx, m.ty, toggle)
	m.handler.HitMap.AddRect("toggle", m.tx, m.ty, tw, th, nil)

	if m.dd.Open() {
		popup := m.menuView()
		mw, mh := lipgloss.Width(popup), lipgloss.Height(popup)

		// Fall back under the toggle until the positioner has settled.
		x, y := m.tx, m.ty+th
		if pos := m.dd.Position(); pos != nil {
			x, y = pos.X, pos.Y
		}
		c.draw(x, y, popup)
		m.handler.HitMap.AddRect("menu", x, y, mw, mh, nil)

		// One hit row per visible item, inside the border and padding.
		row := y + 1
		if m.filterOn {
			row++
		}
		for _, it := range m.visible {
			m.handler.HitMap.AddRect("item:"+it.ID, x+1, row, max(mw-2, 1), 1, it)
			row++
		}
	}

	return c.String()
}

func (m *Model) toggleView() string {
	style := m.styles.Toggle
	switch {
	case m.dd.Open():
		style = m.styles.ToggleOpen
	case m.focusedID == m.dd.ToggleID():
		style = m.styles.ToggleFocused
	}
	marker := " ▾"
	if m.dd.Open() {
		marker = " ▴"
	}
	return style.Render(m.label + marker)
}

// menuView renders the popup content. rebuildMenuTree measures this same
// string to size the positioner target, keeping geometry and pixels in
// agreement.
func (m *Model) menuView() string {
	var lines []string

	if m.filterOn {
		lines = append(lines, m.styles.Filter.Render(m.filter.View()))
	}

	if len(m.visible) == 0 {
		lines = append(lines, m.styles.ItemMuted.Render("(no items)"))
	}

	for _, it := range m.visible {
		cursor := "  "
		style := m.styles.Item
		switch {
		case it.Disabled:
			style = m.styles.ItemMuted
		case it.ID == m.focusedID:
			style = m.styles.ItemFocused
			cursor = m.styles.Cursor.Render("> ")
		case m.handler.HoverID() == "item:"+it.ID:
			style = m.styles.ItemHovered
		}
		label := ansi.Truncate(it.Label, maxItemWidth(m.width), "…")
		lines = append(lines, cursor+style.Render(label))
	}

	return m.styles.Menu.Render(strings.Join(lines, "\n"))
}

// maxItemWidth keeps item labels from pushing the popup past a sane share
// of the viewport.
func maxItemWidth(viewportWidth int) int {
	w := viewportWidth / 2
	if w < 10 {
		w = 10
	}
	return w
}

// canvas is a plain-text screen buffer that styled blocks are drawn onto.
type canvas struct {
	lines []string
	width int
}

func newCanvas(width, height int) *canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	return &canvas{lines: lines, width: width}
}

// draw overlays a possibly styled, possibly multi-line block at (x, y).
// Rows outside the canvas are dropped; overlong rows are clipped.
func (c *canvas) draw(x, y int, block string) {
	if x < 0 || x >= c.width {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(c.lines) {
			continue
		}
		c.lines[row] = overlayLine(c.lines[row], line, x, c.width)
	}
}

// overlayLine splices over into base at column x, using cell widths so ANSI
// sequences in either string survive intact.
func overlayLine(base, over string, x, width int) string {
	w := ansi.StringWidth(over)
	if x+w > width {
		over = ansi.Truncate(over, width-x, "")
		w = width - x
	}
	if w <= 0 {
		return base
	}

	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(base, x+w, "")
	return left + over + right
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}
