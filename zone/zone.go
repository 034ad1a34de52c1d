// Package zone classifies pointer positions against monitor geometry and
// decides when an arrival at a screen corner or edge should trigger.
package zone

import "fmt"

// Zone identifies the screen region a pointer position falls into: one of
// the four corners, one of the four edges, or None.
type Zone int

const (
	TopLeft Zone = iota
	TopRight
	BottomRight
	BottomLeft
	Left
	Top
	Right
	Bottom
	None
)

// NumBindable is the number of zones a command can be bound to. None is a
// classification result, never a binding target.
const NumBindable = 8

var zoneNames = [...]string{
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomRight: "bottom-right",
	BottomLeft:  "bottom-left",
	Left:        "left",
	Top:         "top",
	Right:       "right",
	Bottom:      "bottom",
	None:        "none",
}

func (z Zone) String() string {
	if z < TopLeft || z > None {
		return fmt.Sprintf("zone(%d)", int(z))
	}
	return zoneNames[z]
}

// Bindable reports whether a command can be bound to z.
func (z Zone) Bindable() bool {
	return z >= TopLeft && z <= Bottom
}

// Parse maps a config key like "top-left" to its Zone. None is not a valid
// key.
func Parse(key string) (Zone, error) {
	for i, name := range zoneNames {
		if name == key && Zone(i) != None {
			return Zone(i), nil
		}
	}
	return None, fmt.Errorf("unknown zone %q", key)
}

// Zones returns the bindable zones in config key order.
func Zones() []Zone {
	return []Zone{TopLeft, TopRight, BottomRight, BottomLeft, Left, Top, Right, Bottom}
}

// Position is a pointer location in the unified screen coordinate space.
type Position struct {
	X, Y int
}

// Rectangle describes one monitor's extent in the unified screen space.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies within the rectangle. The right and bottom
// edges are exclusive.
func (r Rectangle) Contains(p Position) bool {
	return r.X <= p.X && p.X < r.X+r.Width &&
		r.Y <= p.Y && p.Y < r.Y+r.Height
}
