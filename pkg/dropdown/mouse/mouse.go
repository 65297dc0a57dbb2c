// Package mouse provides rectangle geometry and hit region management for
// terminal mouse support.
//
// The dropdown layer re-registers its hit regions on every render via a
// render-then-measure pattern: View() records where the toggle, the menu and
// each item actually landed, and Update() resolves incoming mouse events
// against those regions. Overlapping regions resolve topmost-wins, so a menu
// floating over background content claims the clicks inside it.
package mouse

// Rect is an axis-aligned rectangle in cell coordinates. The right and
// bottom edges are exclusive: a Rect at (0,0) with W=10 covers columns 0-9.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Region is a named hit region with optional associated data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap resolves screen coordinates to registered regions. Regions added
// later take priority over earlier ones, matching paint order: whatever was
// drawn last is on top.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Later registrations win on overlap.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.regions = append(hm.regions, Region{
		ID:   id,
		Rect: Rect{X: x, Y: y, W: w, H: h},
		Data: data,
	})
}

// Test returns the topmost region containing (x, y), or nil if none does.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Regions returns all registered regions in registration order.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// Clear removes all regions. Call at the start of each render pass before
// re-registering.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}
