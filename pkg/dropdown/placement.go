package dropdown

import "github.com/marcus/dropdown/pkg/dropdown/position"

// Direction is the side of the toggle the menu opens toward.
type Direction int

const (
	DirectionDown Direction = iota
	DirectionUp
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "down"
	}
}

// ParseDirection maps a direction name to a Direction. Unrecognized names
// fall back to down, mirroring the placement fallback.
func ParseDirection(s string) Direction {
	switch s {
	case "up":
		return DirectionUp
	case "left":
		return DirectionLeft
	case "right":
		return DirectionRight
	default:
		return DirectionDown
	}
}

// Config is the per-update toggle configuration. It is never mutated in
// place; each external update supplies a fresh value and the derived
// placement is recomputed from it.
type Config struct {
	Direction Direction
	// AlignEnd aligns the menu's trailing edge with the toggle's instead of
	// the leading one. It only affects vertical directions; left/right have
	// a single alignment.
	AlignEnd bool
}

// PlacementFor derives the menu placement from the configuration. Unknown
// directions degrade to the down placements rather than failing.
func PlacementFor(cfg Config) position.Placement {
	switch cfg.Direction {
	case DirectionUp:
		if cfg.AlignEnd {
			return position.TopEnd
		}
		return position.TopStart
	case DirectionRight:
		return position.RightStart
	case DirectionLeft:
		return position.LeftStart
	default:
		if cfg.AlignEnd {
			return position.BottomEnd
		}
		return position.BottomStart
	}
}
