package zone

import (
	"errors"
	"fmt"
)

// GeometryError reports a pointer position that lies outside every known
// monitor. It means the monitor set is stale or wrong and is fatal for the
// caller: guessing a fallback monitor would misclassify every sample.
type GeometryError struct {
	Pos Position
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("pointer at (%d,%d) is outside every monitor", e.Pos.X, e.Pos.Y)
}

// Classifier maps pointer positions onto zones for a fixed monitor set.
//
// The dead band that separates corner detection from edge detection is a
// fraction of the vertical extent on both axes: left and right edges use the
// same band thickness as top and bottom. This matches the behavior users of
// the daemon have tuned their commands around and is a contract, not an
// oversight.
type Classifier struct {
	monitors     []Rectangle
	maxX, maxY   int // virtual screen far edge, inclusive
	bandFraction float64
}

// NewClassifier builds a classifier over the given monitor rectangles. The
// set is assumed non-overlapping and tiling the virtual screen; its bounding
// box is the virtual screen extent.
func NewClassifier(monitors []Rectangle, bandFraction float64) (*Classifier, error) {
	if len(monitors) == 0 {
		return nil, errors.New("no monitors")
	}
	if bandFraction < 0 || bandFraction >= 1 {
		return nil, fmt.Errorf("band fraction %v out of range [0, 1)", bandFraction)
	}
	c := &Classifier{
		monitors:     append([]Rectangle(nil), monitors...),
		bandFraction: bandFraction,
	}
	for _, m := range c.monitors {
		if right := m.X + m.Width - 1; right > c.maxX {
			c.maxX = right
		}
		if bottom := m.Y + m.Height - 1; bottom > c.maxY {
			c.maxY = bottom
		}
	}
	return c, nil
}

// EffectiveBounds returns the inclusive far-edge coordinates that apply to
// pos. With a single monitor these are the virtual screen bounds. With
// several, each axis is clamped to the far edge of the monitor containing
// pos whenever that edge is interior to the virtual screen; a monitor flush
// with the global far edge keeps the global bound. Bounds only ever shrink.
func (c *Classifier) EffectiveBounds(pos Position) (maxX, maxY int, err error) {
	maxX, maxY = c.maxX, c.maxY
	if len(c.monitors) == 1 {
		return maxX, maxY, nil
	}

	var mon Rectangle
	found := false
	for _, m := range c.monitors {
		if m.Contains(pos) {
			mon = m
			found = true
			break
		}
	}
	if !found {
		return 0, 0, &GeometryError{Pos: pos}
	}

	if mon.X+mon.Width <= maxX {
		maxX = mon.X + mon.Width - 1
	}
	if mon.Y+mon.Height <= maxY {
		maxY = mon.Y + mon.Height - 1
	}
	return maxX, maxY, nil
}

// Offset returns the dead-band thickness for the given vertical far edge.
func (c *Classifier) Offset(maxY int) int {
	return int(float64(maxY) * c.bandFraction)
}

// Classify returns the zone pos occupies. Corners win over edges at shared
// boundary points; edge points inside the dead band next to a corner are
// None. The result is deterministic and total for any in-bounds position.
func (c *Classifier) Classify(pos Position) (Zone, error) {
	maxX, maxY, err := c.EffectiveBounds(pos)
	if err != nil {
		return None, err
	}
	return classify(pos, maxX, maxY, c.Offset(maxY)), nil
}

func classify(pos Position, maxX, maxY, offset int) Zone {
	x, y := pos.X, pos.Y
	switch {
	case x == 0 && y == 0:
		return TopLeft
	case x == maxX && y == 0:
		return TopRight
	case x == maxX && y == maxY:
		return BottomRight
	case x == 0 && y == maxY:
		return BottomLeft
	case x == 0 && y > offset && y < maxY-offset:
		return Left
	case y == 0 && x > offset && x < maxX-offset:
		return Top
	case x == maxX && y > offset && y < maxY-offset:
		return Right
	case y == maxY && x > offset && x < maxX-offset:
		return Bottom
	default:
		return None
	}
}
