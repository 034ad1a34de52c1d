package main

import (
	"testing"

	"hotedge/zone"
)

func TestResolveCommandsFlagsOnly(t *testing.T) {
	flags := map[string]string{
		"top-left": "notify-send corner",
		"bottom":   "xset dpms force off",
	}

	raw, err := resolveCommands(flags, map[string]string{"top-left": "other"}, false)
	if err != nil {
		t.Fatalf("resolveCommands: %v", err)
	}
	if got := raw[zone.TopLeft]; got != "notify-send corner" {
		t.Errorf("top-left = %q, want flag value", got)
	}
	if got := raw[zone.Bottom]; got != "xset dpms force off" {
		t.Errorf("bottom = %q, want flag value", got)
	}
	if len(raw) != 2 {
		t.Errorf("got %d bindings, want 2", len(raw))
	}
}

func TestResolveCommandsUseConfigOverrides(t *testing.T) {
	flags := map[string]string{
		"top-left": "from-flag",
		"right":    "flag-only",
	}
	cfg := map[string]string{
		"top-left": "from-config",
		"left":     "config-only",
	}

	raw, err := resolveCommands(flags, cfg, true)
	if err != nil {
		t.Fatalf("resolveCommands: %v", err)
	}
	if got := raw[zone.TopLeft]; got != "from-config" {
		t.Errorf("top-left = %q, want config value to win", got)
	}
	if got := raw[zone.Right]; got != "flag-only" {
		t.Errorf("right = %q, want flag value kept", got)
	}
	if got := raw[zone.Left]; got != "config-only" {
		t.Errorf("left = %q, want config value", got)
	}
}

func TestResolveCommandsBlankConfigValueIgnored(t *testing.T) {
	flags := map[string]string{"top": "from-flag"}
	cfg := map[string]string{"top": "   "}

	raw, err := resolveCommands(flags, cfg, true)
	if err != nil {
		t.Fatalf("resolveCommands: %v", err)
	}
	if got := raw[zone.Top]; got != "from-flag" {
		t.Errorf("top = %q, want blank config value ignored", got)
	}
}

func TestResolveCommandsBadKey(t *testing.T) {
	if _, err := resolveCommands(map[string]string{"middle": "x"}, nil, false); err == nil {
		t.Fatal("expected error for unknown flag zone key")
	}
	if _, err := resolveCommands(nil, map[string]string{"center": "x"}, true); err == nil {
		t.Fatal("expected error for unknown config zone key")
	}
}
