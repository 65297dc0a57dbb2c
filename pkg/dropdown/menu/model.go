// Package menu is a Bubble Tea rendering layer for the dropdown controller:
// a toggle button plus an anchored popup menu with keyboard navigation,
// mouse support and optional typeahead filtering. It is also the reference
// wiring for the controller's registration contract: anything the package
// does through dropdown.Managed a custom render layer can do too.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/marcus/dropdown/pkg/dropdown"
	"github.com/marcus/dropdown/pkg/dropdown/focus"
	"github.com/marcus/dropdown/pkg/dropdown/mouse"
)

// Model renders a dropdown toggle and its popup menu.
type Model struct {
	dd     *dropdown.Managed
	label  string
	items  []Item
	styles Styles

	// visible is the filtered view of items, in match-rank order while a
	// query is active.
	visible []Item

	width, height int
	tx, ty        int // toggle position on screen
	toggleAt      mouse.Rect

	handler  *mouse.Handler
	filter   textinput.Model
	filterOn bool
	panel    bool

	onSelect func(Item)
	selected *Item

	// focusedID mirrors the controller's focus scope for styling.
	focusedID string

	tNode *toggleNode
	mNode *menuNode
	fNode *filterNode
	// itemNodes caches nodes per item ID so handles stay identical across
	// rebuilds; the focus scope tracks elements by identity.
	itemNodes map[string]*itemNode

	ddOpts []dropdown.Option
}

// Option configures a Model.
type Option func(*Model)

// WithStyles overrides the default styling.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithFilter adds a typeahead filter row at the top of the menu.
func WithFilter() Option {
	return func(m *Model) { m.filterOn = true }
}

// WithPanel drops the menu role from the popup. Panels still position and
// hit-test like menus but opt out of automatic focus management.
func WithPanel() Option {
	return func(m *Model) { m.panel = true }
}

// WithOnSelect sets the selection callback.
func WithOnSelect(fn func(Item)) Option {
	return func(m *Model) { m.onSelect = fn }
}

// WithTogglePosition places the toggle on screen. Default is (4, 2).
func WithTogglePosition(x, y int) Option {
	return func(m *Model) { m.tx, m.ty = x, y }
}

// WithDropdownOptions passes options through to the underlying controller
// (flip, key map, escape suppression, ...).
func WithDropdownOptions(opts ...dropdown.Option) Option {
	return func(m *Model) { m.ddOpts = append(m.ddOpts, opts...) }
}

// New creates a dropdown menu model.
func New(label string, items []Item, cfg dropdown.Config, opts ...Option) *Model {
	m := &Model{
		label:   label,
		items:   items,
		visible: items,
		styles:  DefaultStyles(),
		width:   80,
		height:  24,
		tx:      4,
		ty:      2,
		handler: mouse.NewHandler(),
	}
	m.filter = textinput.New()
	m.filter.Prompt = "/ "
	m.filter.Placeholder = "filter"
	m.filter.CharLimit = 64

	for _, opt := range opts {
		opt(m)
	}

	m.dd = dropdown.NewManaged(cfg, m.ddOpts...)
	m.tNode = &toggleNode{m: m}
	role := focus.MenuRole
	if m.panel {
		role = ""
	}
	m.mNode = &menuNode{m: m, role: role}
	m.fNode = &filterNode{m: m}
	m.itemNodes = make(map[string]*itemNode)

	m.rebuildMenuTree()
	m.dd.SetToggle(m.tNode)
	m.dd.SetMenu(m.mNode)
	m.dd.SetViewport(mouse.Rect{W: m.width, H: m.height})
	return m
}

// Dropdown exposes the underlying controller wrapper, mainly for tests and
// embedding hosts that want to drive state themselves.
func (m *Model) Dropdown() *dropdown.Managed { return m.dd }

// Selected returns the most recently selected item, or nil.
func (m *Model) Selected() *Item { return m.selected }

// SetConfig changes direction/alignment at runtime.
func (m *Model) SetConfig(cfg dropdown.Config) { m.dd.SetConfig(cfg) }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.dd.SetViewport(mouse.Rect{W: msg.Width, H: msg.Height})
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ev := dropdown.NewKeyEvent(msg, m.dd.Scope().Current())
	m.dd.HandleKey(ev)
	if ev.DefaultPrevented() {
		return nil
	}

	if msg.String() == "enter" {
		cur := m.dd.Scope().Current()
		if m.dd.Open() {
			if n, ok := cur.(*itemNode); ok {
				m.selectItem(n.item, msg)
				return nil
			}
		}
		m.dd.Toggle(msg, dropdown.SourceClick)
		return nil
	}

	// Everything the dropdown left alone feeds the typeahead filter.
	if m.filterOn && m.dd.Open() {
		var cmds []tea.Cmd
		if !m.filter.Focused() {
			cmds = append(cmds, m.filter.Focus())
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		cmds = append(cmds, cmd)
		m.applyFilter()
		m.rebuildMenuTree()
		return tea.Batch(cmds...)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	action := m.handler.HandleMouse(msg)
	if action.Type != mouse.ActionClick {
		return
	}

	switch {
	case action.Region == nil:
		// Click landed outside everything we drew.
		if m.dd.Open() {
			m.dd.RequestClose(msg, dropdown.SourceRootClose)
		}

	case action.Region.ID == "toggle":
		m.dd.Toggle(msg, dropdown.SourceClick)

	case strings.HasPrefix(action.Region.ID, "item:"):
		if it, ok := action.Region.Data.(Item); ok {
			m.selectItem(it, msg)
		}
	}
}

func (m *Model) selectItem(it Item, msg tea.Msg) {
	if it.Disabled {
		return
	}
	sel := it
	m.selected = &sel
	if m.onSelect != nil {
		m.onSelect(it)
	}
	m.dd.RequestClose(msg, dropdown.SourceSelect)
}

// applyFilter narrows visible items by fuzzy-matching labels against the
// filter query. An empty query restores the full list in original order.
func (m *Model) applyFilter() {
	query := m.filter.Value()
	if query == "" {
		m.visible = m.items
		return
	}

	labels := make([]string, len(m.items))
	for i, it := range m.items {
		labels[i] = it.Label
	}

	matches := fuzzy.Find(query, labels)
	filtered := make([]Item, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, m.items[match.Index])
	}
	m.visible = filtered
}

// rebuildMenuTree refreshes the element tree and the menu's measured size,
// then re-registers the menu so the controller repositions if it is open.
func (m *Model) rebuildMenuTree() {
	children := make([]focus.Node, 0, len(m.visible)+1)
	if m.filterOn {
		children = append(children, m.fNode)
	}
	for _, it := range m.visible {
		node, ok := m.itemNodes[it.ID]
		if !ok {
			node = &itemNode{m: m, item: it}
			m.itemNodes[it.ID] = node
		}
		children = append(children, node)
	}
	m.mNode.children = children

	rendered := m.menuView()
	m.mNode.size = mouse.Rect{
		W: lipgloss.Width(rendered),
		H: lipgloss.Height(rendered),
	}
	m.dd.SetMenu(m.mNode)
}
