package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"hotedge/command"
	"hotedge/platform"
	"hotedge/storage"
	"hotedge/web"
	"hotedge/zone"
)

// Agent coordinates pointer sampling, zone tracking, and command dispatch
type Agent struct {
	source     platform.PointerSource
	classifier *zone.Classifier
	tracker    *zone.Tracker
	bindings   *command.Bindings
	runner     *command.Runner
	delay      time.Duration

	db     *storage.DB // nil when history recording is disabled
	server *web.Server // nil when the web dashboard is disabled

	paused atomic.Bool
}

// Run consumes the pointer stream until ctx is done. A GeometryError from
// the tracker means the monitor set is wrong and is fatal.
func (a *Agent) Run(ctx context.Context) error {
	positions, err := a.source.Positions(ctx)
	if err != nil {
		return fmt.Errorf("failed to start pointer stream: %w", err)
	}

	slog.Info("hotedge started",
		"zones", len(a.bindings.Bound()),
		"blocking", a.runner.Blocking,
		"delay", a.delay,
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case pos, ok := <-positions:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("pointer stream ended unexpectedly")
			}
			if err := a.observe(ctx, pos); err != nil {
				return err
			}
		}
	}
}

// observe runs one pointer sample through the tracker and dispatches on fire
func (a *Agent) observe(ctx context.Context, pos zone.Position) error {
	slog.Debug("pointer", "x", pos.X, "y", pos.Y)

	decision, err := a.tracker.Observe(pos)
	if err != nil {
		return fmt.Errorf("failed to classify pointer: %w", err)
	}
	if !decision.Fire {
		return nil
	}
	if a.paused.Load() {
		slog.Debug("paused, ignoring arrival", "zone", decision.Zone)
		return nil
	}

	args := a.bindings.Lookup(decision.Zone)
	if args == nil {
		slog.Debug("zone has no command", "zone", decision.Zone)
		return nil
	}

	if a.delay > 0 && !a.stillIn(ctx, decision.Zone) {
		slog.Debug("pointer left zone during delay", "zone", decision.Zone)
		return nil
	}

	a.dispatch(ctx, decision.Zone, pos, args)
	return nil
}

// stillIn waits the configured delay and reports whether the pointer still
// classifies to the same zone afterwards. Accidental brushes against a
// corner are discarded this way.
func (a *Agent) stillIn(ctx context.Context, z zone.Zone) bool {
	timer := time.NewTimer(a.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
	}

	pos, err := a.source.Current()
	if err != nil {
		slog.Warn("pointer re-query failed", "error", err)
		return false
	}
	now, err := a.classifier.Classify(pos)
	return err == nil && now == z
}

// dispatch runs the bound command and records the outcome
func (a *Agent) dispatch(ctx context.Context, z zone.Zone, pos zone.Position, args []string) {
	slog.Info("zone arrival", "zone", z, "command", strings.Join(args, " "))

	start := time.Now()
	err := a.runner.Run(ctx, args)
	if err != nil {
		slog.Error("command failed", "zone", z, "error", err)
	}

	trigger := &storage.Trigger{
		Timestamp:  start,
		Zone:       z.String(),
		X:          pos.X,
		Y:          pos.Y,
		Command:    strings.Join(args, " "),
		DurationMs: time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if err != nil {
		trigger.ErrorMessage = err.Error()
	}

	if a.db != nil {
		if dbErr := a.db.SaveTrigger(trigger); dbErr != nil {
			slog.Warn("failed to record trigger", "error", dbErr)
		}
	}
	if a.server != nil {
		a.server.BroadcastTrigger(trigger)
	}
}

// SetPaused toggles command dispatch; the tracker keeps consuming samples
func (a *Agent) SetPaused(paused bool) {
	a.paused.Store(paused)
	if paused {
		slog.Info("dispatch paused")
	} else {
		slog.Info("dispatch resumed")
	}
}

// Status reports the agent state for the dashboard
func (a *Agent) Status() string {
	if a.paused.Load() {
		return "paused"
	}
	return "running"
}
