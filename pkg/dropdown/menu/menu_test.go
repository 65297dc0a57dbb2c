package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dropdown/pkg/dropdown"
	"github.com/marcus/dropdown/pkg/dropdown/mouse"
)

func testItems() []Item {
	return []Item{
		{ID: "open", Label: "Open"},
		{ID: "save", Label: "Save"},
		{ID: "close", Label: "Close"},
	}
}

func sized(m *Model) *Model {
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func pressKey(m *Model, t tea.KeyType) {
	m.Update(tea.KeyMsg{Type: t})
}

func clickAt(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func TestToggleClickOpensAndCloses(t *testing.T) {
	m := sized(New("File", testItems(), dropdown.Config{}))
	m.View() // register hit regions

	clickAt(m, 5, 2) // default toggle position is (4, 2)
	if !m.Dropdown().Open() {
		t.Fatal("click on toggle should open the menu")
	}

	m.View()
	clickAt(m, 5, 2)
	if m.Dropdown().Open() {
		t.Fatal("second click on toggle should close the menu")
	}
}

func TestOutsideClickClosesWithRootCloseSource(t *testing.T) {
	var sources []dropdown.Source
	m := sized(New("File", testItems(), dropdown.Config{},
		WithDropdownOptions(dropdown.WithOnToggle(func(_ bool, _ tea.Msg, src dropdown.Source) {
			sources = append(sources, src)
		}))))
	m.View()

	clickAt(m, 5, 2)
	m.View()
	clickAt(m, 70, 20)

	if m.Dropdown().Open() {
		t.Fatal("outside click should close the menu")
	}
	if len(sources) != 2 || sources[0] != dropdown.SourceClick || sources[1] != dropdown.SourceRootClose {
		t.Errorf("sources = %v, want [click rootClose]", sources)
	}
}

func TestOutsideClickWhileClosedIsIgnored(t *testing.T) {
	m := sized(New("File", testItems(), dropdown.Config{}))
	m.View()

	clickAt(m, 70, 20)
	if m.Dropdown().Open() {
		t.Fatal("outside click on a closed dropdown must not open it")
	}
}

func TestKeyboardOpenAndNavigate(t *testing.T) {
	m := sized(New("File", testItems(), dropdown.Config{}))

	pressKey(m, tea.KeyDown)
	if !m.Dropdown().Open() {
		t.Fatal("down while closed should open")
	}
	// Menu role: first item took focus.
	if m.focusedID != "open" {
		t.Fatalf("focused = %q, want first item", m.focusedID)
	}

	pressKey(m, tea.KeyDown)
	if m.focusedID != "save" {
		t.Errorf("focused = %q, want save", m.focusedID)
	}
	pressKey(m, tea.KeyUp)
	if m.focusedID != "open" {
		t.Errorf("focused = %q, want open", m.focusedID)
	}
}

func TestEnterSelectsFocusedItem(t *testing.T) {
	var picked []string
	var sources []dropdown.Source
	m := sized(New("File", testItems(), dropdown.Config{},
		WithOnSelect(func(it Item) { picked = append(picked, it.ID) }),
		WithDropdownOptions(dropdown.WithOnToggle(func(_ bool, _ tea.Msg, src dropdown.Source) {
			sources = append(sources, src)
		}))))

	pressKey(m, tea.KeyDown) // open, focus "open"
	pressKey(m, tea.KeyDown) // focus "save"
	pressKey(m, tea.KeyEnter)

	if len(picked) != 1 || picked[0] != "save" {
		t.Fatalf("picked = %v, want [save]", picked)
	}
	if m.Dropdown().Open() {
		t.Error("selection should close the menu")
	}
	if m.Selected() == nil || m.Selected().ID != "save" {
		t.Error("Selected should report the picked item")
	}
	if sources[len(sources)-1] != dropdown.SourceSelect {
		t.Errorf("last source = %s, want select", sources[len(sources)-1])
	}
}

func TestEscapeClosesAndReturnsFocusToToggle(t *testing.T) {
	m := sized(New("File", testItems(), dropdown.Config{}))

	pressKey(m, tea.KeyDown)
	pressKey(m, tea.KeyEscape)

	if m.Dropdown().Open() {
		t.Fatal("escape should close the menu")
	}
	if m.focusedID != m.Dropdown().ToggleID() {
		t.Errorf("focused = %q, want the toggle", m.focusedID)
	}
}

func TestPanelDoesNotStealFocus(t *testing.T) {
	m := sized(New("File", testItems(), dropdown.Config{}, WithPanel()))

	pressKey(m, tea.KeyDown)
	if !m.Dropdown().Open() {
		t.Fatal("down should still open a panel")
	}
	if m.focusedID != "" {
		t.Errorf("panel open must not focus an item, focused = %q", m.focusedID)
	}
}

func TestFilterNarrowsItems(t *testing.T) {
	m := sized(New("File", testItems(), dropdown.Config{}, WithFilter()))

	pressKey(m, tea.KeyDown) // open
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("sav")})

	if len(m.visible) != 1 || m.visible[0].ID != "save" {
		ids := make([]string, len(m.visible))
		for i, it := range m.visible {
			ids[i] = it.ID
		}
		t.Fatalf("visible = %v, want [save]", ids)
	}

	// Clearing the query restores the full list in original order.
	for range "sav" {
		pressKey(m, tea.KeyBackspace)
	}
	if len(m.visible) != 3 {
		t.Errorf("expected all items after clearing filter, got %d", len(m.visible))
	}
}

func TestViewContainsMenuOnlyWhenOpen(t *testing.T) {
	m := sized(New("File", testItems(), dropdown.Config{}))

	if strings.Contains(m.View(), "Save") {
		t.Error("closed dropdown must not render menu items")
	}

	pressKey(m, tea.KeyDown)
	if !strings.Contains(m.View(), "Save") {
		t.Error("open dropdown should render menu items")
	}
}

func TestItemClickSelects(t *testing.T) {
	m := sized(New("File", testItems(), dropdown.Config{}))
	m.View()
	clickAt(m, 5, 2) // open
	m.View()         // register item regions

	region := findRegion(m, "item:close")
	if region == nil {
		t.Fatal("expected a hit region for item close")
	}
	clickAt(m, region.Rect.X, region.Rect.Y)

	if m.Selected() == nil || m.Selected().ID != "close" {
		t.Fatalf("expected close selected, got %v", m.Selected())
	}
}

func TestDisabledItemIsSkippedAndUnselectable(t *testing.T) {
	items := []Item{
		{ID: "a", Label: "A"},
		{ID: "b", Label: "B", Disabled: true},
		{ID: "c", Label: "C"},
	}
	m := sized(New("File", items, dropdown.Config{}))

	pressKey(m, tea.KeyDown) // open, focus a
	pressKey(m, tea.KeyDown) // skips b, lands on c
	if m.focusedID != "c" {
		t.Errorf("focused = %q, want c (disabled item skipped)", m.focusedID)
	}

	m.View()
	region := findRegion(m, "item:b")
	if region == nil {
		t.Fatal("disabled item still occupies a row")
	}
	clickAt(m, region.Rect.X, region.Rect.Y)
	if m.Selected() != nil {
		t.Error("clicking a disabled item must not select it")
	}
}

func findRegion(m *Model, id string) *mouse.Region {
	for _, r := range m.handler.HitMap.Regions() {
		if r.ID == id {
			rr := r
			return &rr
		}
	}
	return nil
}
