package zone_test

import (
	"testing"

	"hotedge/zone"
)

func newTracker(t *testing.T) *zone.Tracker {
	t.Helper()
	return zone.NewTracker(singleMonitor(t))
}

func observe(t *testing.T, tr *zone.Tracker, x, y int) zone.Decision {
	t.Helper()
	d, err := tr.Observe(zone.Position{X: x, Y: y})
	if err != nil {
		t.Fatalf("Observe(%d,%d) returned error: %v", x, y, err)
	}
	return d
}

func TestFirstSampleIsNeverSuppressed(t *testing.T) {
	tr := newTracker(t)

	d := observe(t, tr, 0, 0)
	if d.Zone != zone.TopLeft || !d.Fire {
		t.Fatalf("first sample at corner: got %s fire=%v, want top-left fire=true", d.Zone, d.Fire)
	}

	// Samples the original sentinel (1,1) would have wrongly suppressed.
	tr = newTracker(t)
	d = observe(t, tr, 1, 540)
	if d.Fire {
		t.Fatalf("(1,540) is not an edge, must not fire")
	}
	tr = newTracker(t)
	d = observe(t, tr, 0, 540)
	if d.Zone != zone.Left || !d.Fire {
		t.Fatalf("first sample at edge: got %s fire=%v, want left fire=true", d.Zone, d.Fire)
	}
}

func TestRepeatedSampleIsSuppressed(t *testing.T) {
	tr := newTracker(t)

	if d := observe(t, tr, 0, 0); !d.Fire {
		t.Fatal("arrival at top-left must fire")
	}
	d := observe(t, tr, 0, 0)
	if d.Fire {
		t.Fatal("identical sample must be suppressed")
	}
	if d.Zone != zone.TopLeft {
		t.Fatalf("suppressed sample still reports its zone: got %s", d.Zone)
	}
}

func TestVerticalEdgeJitterIsSuppressed(t *testing.T) {
	tr := newTracker(t)

	if d := observe(t, tr, 0, 500); d.Zone != zone.Left || !d.Fire {
		t.Fatalf("arrival at (0,500): got %s fire=%v", d.Zone, d.Fire)
	}
	// Same clamped x, y wiggles inside the band: resting against the edge.
	if d := observe(t, tr, 0, 501); d.Fire {
		t.Fatal("jitter along the left edge must be suppressed")
	}
	if d := observe(t, tr, 0, 500); d.Fire {
		t.Fatal("jitter back must be suppressed")
	}
}

func TestHorizontalEdgeJitterIsSuppressed(t *testing.T) {
	tr := newTracker(t)

	if d := observe(t, tr, 500, 0); d.Zone != zone.Top || !d.Fire {
		t.Fatalf("arrival at (500,0): got %s fire=%v", d.Zone, d.Fire)
	}
	if d := observe(t, tr, 501, 0); d.Fire {
		t.Fatal("jitter along the top edge must be suppressed")
	}
}

func TestLeavingEdgeIntoInteriorDoesNotFire(t *testing.T) {
	tr := newTracker(t)

	observe(t, tr, 0, 500)
	// x moved off the edge; y unchanged but 50 is inside the top band, so
	// the horizontal suppression rule does not apply. The interior is None.
	d := observe(t, tr, 50, 500)
	if d.Fire {
		t.Fatal("interior sample must not fire")
	}
	if d.Zone != zone.None {
		t.Fatalf("(50,500) should classify as none, got %s", d.Zone)
	}
}

func TestReturnToEdgeAfterLeavingFiresAgain(t *testing.T) {
	tr := newTracker(t)

	if d := observe(t, tr, 0, 500); !d.Fire {
		t.Fatal("first arrival must fire")
	}
	observe(t, tr, 600, 500) // interior
	d := observe(t, tr, 0, 501)
	if d.Zone != zone.Left || !d.Fire {
		t.Fatalf("re-arrival at left edge: got %s fire=%v, want left fire=true", d.Zone, d.Fire)
	}
}

func TestCornerJitterIntoDeadBand(t *testing.T) {
	tr := newTracker(t)

	if d := observe(t, tr, 0, 0); !d.Fire {
		t.Fatal("corner arrival must fire")
	}
	// (0,1) shares x with the corner but y=1 is outside the suppression
	// band, so it is classified: the dead band makes it None.
	d := observe(t, tr, 0, 1)
	if d.Fire {
		t.Fatal("dead band sample must not fire")
	}
	if d.Zone != zone.None {
		t.Fatalf("(0,1) should classify as none, got %s", d.Zone)
	}
}

func TestTrackerPropagatesGeometryError(t *testing.T) {
	tr := zone.NewTracker(dualMonitor(t))

	if _, err := tr.Observe(zone.Position{X: 9999, Y: 9999}); err == nil {
		t.Fatal("expected geometry error for out-of-monitor sample")
	}
}
