package zone

// Decision is the outcome of observing one pointer sample.
type Decision struct {
	Zone Zone
	Fire bool
}

// Tracker decides whether a pointer sample is a fresh arrival that should
// trigger its zone's command or jitter that must be suppressed. Raw motion
// samples keep arriving while the pointer rests against a physical edge
// because the unclamped axis still moves by a pixel or two; without
// suppression a bound command would fire many times per second.
//
// A Tracker serves a single ordered stream of samples and is not safe for
// concurrent use.
type Tracker struct {
	classifier *Classifier
	last       Position
}

// NewTracker returns a tracker over c. The initial last position lies
// outside the screen so the first observed sample is never suppressed.
func NewTracker(c *Classifier) *Tracker {
	return &Tracker{
		classifier: c,
		last:       Position{X: -1, Y: -1},
	}
}

// Observe classifies pos and decides whether its zone should fire. A sample
// is suppressed when it equals the previous one, or when only the unclamped
// axis moved while the pointer stayed inside an edge band. Suppressed samples
// still report their zone. The remembered position updates unconditionally.
//
// A pointer that leaves a corner and returns to the exact previous coordinate
// is suppressed once; acceptable for a pointer-driven gesture.
func (t *Tracker) Observe(pos Position) (Decision, error) {
	maxX, maxY, err := t.classifier.EffectiveBounds(pos)
	if err != nil {
		return Decision{Zone: None}, err
	}
	offset := t.classifier.Offset(maxY)

	suppressed := pos == t.last ||
		(pos.X == t.last.X && pos.Y > offset && pos.Y < maxY-offset) ||
		(pos.Y == t.last.Y && pos.X > offset && pos.X < maxX-offset)
	t.last = pos

	z := classify(pos, maxX, maxY, offset)
	if suppressed {
		return Decision{Zone: z, Fire: false}, nil
	}
	return Decision{Zone: z, Fire: z != None}, nil
}
