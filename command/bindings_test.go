package command_test

import (
	"reflect"
	"testing"

	"hotedge/command"
	"hotedge/zone"
)

func TestNewBindings(t *testing.T) {
	b, err := command.NewBindings(map[zone.Zone]string{
		zone.TopLeft: `notify-send "top left"`,
		zone.Bottom:  "xdg-screensaver activate",
		zone.Right:   "   ", // resolves to nothing
	})
	if err != nil {
		t.Fatalf("NewBindings returned error: %v", err)
	}

	want := []string{"notify-send", "top left"}
	if got := b.Lookup(zone.TopLeft); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lookup(top-left) = %#v, want %#v", got, want)
	}
	if got := b.Lookup(zone.Right); got != nil {
		t.Fatalf("blank command must stay unbound, got %#v", got)
	}
	if got := b.Lookup(zone.TopRight); got != nil {
		t.Fatalf("missing zone must stay unbound, got %#v", got)
	}
	if got := b.Lookup(zone.None); got != nil {
		t.Fatalf("none must never resolve, got %#v", got)
	}

	bound := b.Bound()
	if len(bound) != 2 || bound[0] != zone.TopLeft || bound[1] != zone.Bottom {
		t.Fatalf("Bound() = %v, want [top-left bottom]", bound)
	}
}

func TestNewBindingsRejectsSyntaxError(t *testing.T) {
	_, err := command.NewBindings(map[zone.Zone]string{
		zone.Left: `echo "unterminated`,
	})
	if err == nil {
		t.Fatal("expected error for unbalanced quote")
	}
}

func TestNewBindingsRejectsNone(t *testing.T) {
	_, err := command.NewBindings(map[zone.Zone]string{
		zone.None: "echo nope",
	})
	if err == nil {
		t.Fatal("expected error when binding none")
	}
}

func TestDescribe(t *testing.T) {
	b, err := command.NewBindings(map[zone.Zone]string{
		zone.Top: `echo "a b"`,
	})
	if err != nil {
		t.Fatalf("NewBindings returned error: %v", err)
	}
	if got := b.Describe(zone.Top); got != "echo a b" {
		t.Fatalf("Describe(top) = %q", got)
	}
	if got := b.Describe(zone.Left); got != "" {
		t.Fatalf("Describe(left) = %q, want empty", got)
	}
}
