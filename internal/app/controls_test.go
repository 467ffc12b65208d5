package app

import (
	"testing"

	"gol/internal/core"
)

func TestHUDSourceMergesPlayback(t *testing.T) {
	ctrl, _ := newTestController(t)
	src := newHUDSource(ctrl)

	snap := src.Parameters()
	if snap.Groups[0].Name != "Playback" {
		t.Fatalf("playback group should come first, got %q", snap.Groups[0].Name)
	}
	if p, ok := snap.Lookup("tps"); !ok || p.Value != "10" {
		t.Fatalf("tps parameter = %+v %v", p, ok)
	}
	if p, ok := snap.Lookup("state"); !ok || p.Value != "Menu" {
		t.Fatalf("state parameter = %+v %v", p, ok)
	}
	if _, ok := snap.Lookup("rule"); !ok {
		t.Fatal("world parameters should be included")
	}

	controls := src.ParameterControls()
	if len(controls) != 2 || controls[0].Key != "tps" || controls[1].Key != "density" {
		t.Fatalf("unexpected controls: %+v", controls)
	}
}

func TestHUDSourceSetters(t *testing.T) {
	ctrl, world := newTestController(t)
	src := newHUDSource(ctrl)

	if !src.SetIntParameter("tps", 25) || ctrl.TPS() != 25 {
		t.Fatalf("tps not applied, got %d", ctrl.TPS())
	}
	if src.SetIntParameter("unknown", 1) {
		t.Fatal("unknown int parameter should be rejected")
	}
	if !src.SetFloatParameter("density", 0.2) {
		t.Fatal("density should be forwarded to the world")
	}
	if p, _ := world.Parameters().Lookup("density"); p.Value != "0.2" {
		t.Fatalf("density = %s", p.Value)
	}

	ctrl.Execute(ActionStart)
	ctrl.Execute(ActionTogglePause)
	if p, _ := src.Parameters().Lookup("state"); p.Value != "Paused" {
		t.Fatalf("state = %s", p.Value)
	}
	var _ core.IntParameterSetter = src
	var _ core.FloatParameterSetter = src
	var _ core.ParameterControlsProvider = src
}

func TestCellAt(t *testing.T) {
	size := core.Size{W: 10, H: 5}
	if x, y, ok := CellAt(25, 17, 8, size); !ok || x != 3 || y != 2 {
		t.Fatalf("CellAt = %d,%d,%v", x, y, ok)
	}
	if _, _, ok := CellAt(80, 0, 8, size); ok {
		t.Fatal("x beyond the board should miss")
	}
	if _, _, ok := CellAt(-1, 0, 8, size); ok {
		t.Fatal("negative positions should miss")
	}
	if _, _, ok := CellAt(1, 1, 0, size); ok {
		t.Fatal("zero scale should miss")
	}
}
