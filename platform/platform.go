// Package platform supplies pointer positions and monitor geometry to the
// daemon. Implementations own every display-server detail; the rest of the
// program only sees plain positions and rectangles.
package platform

import (
	"context"

	"hotedge/zone"
)

// PointerSource delivers pointer samples and the monitor layout.
type PointerSource interface {
	// Monitors returns the monitor rectangles in the unified screen space.
	Monitors() ([]zone.Rectangle, error)

	// Current returns the pointer's position right now.
	Current() (zone.Position, error)

	// Positions streams one position per observed pointer movement until ctx
	// is done, in the order the pointer occupied them. The channel closes
	// when the stream ends.
	Positions(ctx context.Context) (<-chan zone.Position, error)

	// Close releases the display connection.
	Close() error
}
