package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"

	"hotedge/zone"
)

// ErrWayland is returned when a Wayland session is detected: Wayland has no
// global pointer query.
var ErrWayland = errors.New("global pointer query not supported on Wayland")

// X11Source polls the X server for the pointer position and enumerates
// monitors through RandR. Polling at a short interval stands in for XInput2
// raw motion events; unchanged positions are not forwarded, so the stream
// carries one sample per observed movement.
type X11Source struct {
	conn     *xgb.Conn
	root     xproto.Window
	interval time.Duration
}

// NewX11Source connects to the display named by DISPLAY and verifies RandR
// 1.5 is available for monitor enumeration.
func NewX11Source(interval time.Duration) (*X11Source, error) {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return nil, ErrWayland
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to open display: %w", err)
	}

	if err := randr.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("randr extension not available: %w", err)
	}
	version, err := randr.QueryVersion(conn, 1, 5).Reply()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to query randr version: %w", err)
	}
	if version.MajorVersion < 1 || (version.MajorVersion == 1 && version.MinorVersion < 5) {
		conn.Close()
		return nil, fmt.Errorf("randr %d.%d too old, need 1.5", version.MajorVersion, version.MinorVersion)
	}

	if interval <= 0 {
		interval = 10 * time.Millisecond
	}

	return &X11Source{
		conn:     conn,
		root:     xproto.Setup(conn).DefaultScreen(conn).Root,
		interval: interval,
	}, nil
}

// Monitors returns the active RandR monitors as rectangles.
func (s *X11Source) Monitors() ([]zone.Rectangle, error) {
	reply, err := randr.GetMonitors(s.conn, s.root, true).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get monitors: %w", err)
	}
	if len(reply.Monitors) == 0 {
		return nil, errors.New("randr reported no monitors")
	}

	rects := make([]zone.Rectangle, 0, len(reply.Monitors))
	for _, m := range reply.Monitors {
		rects = append(rects, zone.Rectangle{
			X:      int(m.X),
			Y:      int(m.Y),
			Width:  int(m.Width),
			Height: int(m.Height),
		})
	}
	return rects, nil
}

// Current queries the pointer's position in root coordinates.
func (s *X11Source) Current() (zone.Position, error) {
	reply, err := xproto.QueryPointer(s.conn, s.root).Reply()
	if err != nil {
		return zone.Position{}, fmt.Errorf("failed to query pointer: %w", err)
	}
	return zone.Position{X: int(reply.RootX), Y: int(reply.RootY)}, nil
}

// Positions starts the polling sampler.
func (s *X11Source) Positions(ctx context.Context) (<-chan zone.Position, error) {
	// Fail fast if the connection is unusable before handing out a stream.
	if _, err := s.Current(); err != nil {
		return nil, err
	}

	out := make(chan zone.Position)
	go func() {
		defer close(out)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		last := zone.Position{X: -1, Y: -1}
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			pos, err := s.Current()
			if err != nil {
				if ctx.Err() == nil {
					slog.Error("pointer query failed, stopping sampler", "error", err)
				}
				return
			}
			if pos == last {
				continue
			}
			last = pos

			select {
			case out <- pos:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close shuts down the X connection.
func (s *X11Source) Close() error {
	s.conn.Close()
	return nil
}
