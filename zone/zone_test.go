package zone_test

import (
	"testing"

	"hotedge/zone"
)

func TestParseRoundTrip(t *testing.T) {
	for _, z := range zone.Zones() {
		got, err := zone.Parse(z.String())
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", z.String(), err)
		}
		if got != z {
			t.Fatalf("Parse(%q) = %s, want %s", z.String(), got, z)
		}
	}
}

func TestParseRejectsUnknownAndNone(t *testing.T) {
	if _, err := zone.Parse("none"); err == nil {
		t.Fatal("none must not be a bindable key")
	}
	if _, err := zone.Parse("topleft"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if _, err := zone.Parse(""); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestBindable(t *testing.T) {
	for _, z := range zone.Zones() {
		if !z.Bindable() {
			t.Fatalf("%s should be bindable", z)
		}
	}
	if zone.None.Bindable() {
		t.Fatal("none must not be bindable")
	}
}

func TestRectangleContains(t *testing.T) {
	r := zone.Rectangle{X: 10, Y: 20, Width: 100, Height: 50}
	cases := []struct {
		x, y int
		want bool
	}{
		{10, 20, true},
		{109, 69, true},
		{110, 69, false}, // right edge exclusive
		{109, 70, false}, // bottom edge exclusive
		{9, 20, false},
		{10, 19, false},
	}
	for _, tc := range cases {
		if got := r.Contains(zone.Position{X: tc.x, Y: tc.y}); got != tc.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}
