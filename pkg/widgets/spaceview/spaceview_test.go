package spaceview_test

import (
	"math"
	"testing"

	"github.com/roffe/polyview/pkg/ndim"
	"github.com/roffe/polyview/pkg/polytope"
	"github.com/roffe/polyview/pkg/projection"
	"github.com/roffe/polyview/pkg/widgets/spaceview"
)

func newTesseractView(t *testing.T, size float64) *spaceview.Spaceview {
	t.Helper()
	g, err := polytope.New(polytope.Hypercube, 4, size)
	if err != nil {
		t.Fatal(err)
	}
	return spaceview.New(g)
}

func TestPlaneDefaults(t *testing.T) {
	sv := newTesseractView(t, 1)
	defer sv.Close()

	wantNames := []string{"XY", "XZ", "XW", "YZ", "YW", "ZW"}
	names := sv.PlaneNames()
	if len(names) != len(wantNames) {
		t.Fatalf("got %d planes, want %d", len(names), len(wantNames))
	}
	for i, n := range wantNames {
		if names[i] != n {
			t.Errorf("plane %d = %q, want %q", i, names[i], n)
		}
	}

	// Planes touching the last axis spin by default.
	wantActive := []string{"XW", "YW", "ZW"}
	active := sv.ActivePlanes()
	if len(active) != len(wantActive) {
		t.Fatalf("got active planes %v, want %v", active, wantActive)
	}
	for i, n := range wantActive {
		if active[i] != n {
			t.Errorf("active plane %d = %q, want %q", i, active[i], n)
		}
	}
}

func TestTogglePlane(t *testing.T) {
	sv := newTesseractView(t, 1)
	defer sv.Close()

	if sv.PlaneActive("XY") {
		t.Fatal("XY should start inactive")
	}
	if !sv.TogglePlane("XY") {
		t.Error("toggle should report the new active state")
	}
	if !sv.PlaneActive("XY") {
		t.Error("XY should be active after toggle")
	}
	if sv.TogglePlane("XY") {
		t.Error("second toggle should deactivate")
	}
	if sv.TogglePlane("QQ") {
		t.Error("unknown plane should toggle to false")
	}
}

func TestSetPlaneAngleRotates(t *testing.T) {
	sv := newTesseractView(t, 1)
	defer sv.Close()

	sv.SetPlaneAngle("XW", math.Pi/2)

	// A quarter turn in XW sends (x, y, z, w) to (-w, y, z, x).
	rotated := sv.RotatedGeometry()
	rest := sv.Geometry()
	for i, v := range rest.Vertices {
		want := ndim.New(-v.At(3), v.At(1), v.At(2), v.At(0))
		if !rotated.Vertices[i].EqualsTolerance(want, 1e-9) {
			t.Fatalf("vertex %d = %v, want %v", i, rotated.Vertices[i], want)
		}
	}
}

func TestRotationPreservesMagnitudes(t *testing.T) {
	sv := newTesseractView(t, 1)
	defer sv.Close()

	sv.SetPlaneAngle("XY", 0.3)
	sv.SetPlaneAngle("XW", 1.1)
	sv.SetPlaneAngle("ZW", -0.7)

	rotated := sv.RotatedGeometry()
	rest := sv.Geometry()
	for i := range rest.Vertices {
		got := rotated.Vertices[i].Magnitude()
		want := rest.Vertices[i].Magnitude()
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("vertex %d magnitude %v, want %v", i, got, want)
		}
	}
}

func TestResetViewZeroesAngles(t *testing.T) {
	sv := newTesseractView(t, 1)
	defer sv.Close()

	sv.SetPlaneAngle("XW", 1.0)
	sv.SetPlaneAngle("YZ", 0.5)
	sv.ResetView()

	rotated := sv.RotatedGeometry()
	rest := sv.Geometry()
	for i := range rest.Vertices {
		if !rotated.Vertices[i].EqualsTolerance(rest.Vertices[i], 1e-12) {
			t.Fatalf("vertex %d moved after reset", i)
		}
	}
}

func TestSetGeometryPreservesPlaneState(t *testing.T) {
	sv := newTesseractView(t, 1)
	defer sv.Close()

	sv.SetPlaneActive("XY", true)
	sv.SetPlaneSpeed("XY", 2.5)

	g5, err := polytope.New(polytope.Hypercube, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	sv.SetGeometry(g5)

	if len(sv.PlaneNames()) != 10 {
		t.Fatalf("got %d planes in 5 dimensions, want 10", len(sv.PlaneNames()))
	}
	if !sv.PlaneActive("XY") {
		t.Error("XY activation should survive the dimension change")
	}
	if sv.PlaneActive("XZ") {
		t.Error("XZ should stay inactive")
	}
	if !sv.PlaneActive("WV") {
		t.Error("new planes on the last axis should default to active")
	}
}

func TestSnapshotDrawsShape(t *testing.T) {
	sv := newTesseractView(t, 0.8)
	defer sv.Close()

	img := sv.Snapshot()
	bounds := img.Bounds()
	if bounds.Dx() != 512 || bounds.Dy() != 512 {
		t.Fatalf("snapshot bounds %v, want 512x512", bounds)
	}

	bg := img.RGBAAt(0, 0)
	lit := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				lit++
			}
		}
	}
	if lit < 300 {
		t.Errorf("only %d pixels drawn, wireframe missing", lit)
	}
}

func TestToggleJiggle(t *testing.T) {
	sv := newTesseractView(t, 1)
	defer sv.Close()

	if !sv.ToggleJiggle() {
		t.Error("first toggle should start the jiggle")
	}
	if sv.ToggleJiggle() {
		t.Error("second toggle should stop it")
	}
}

func TestProjectionSetters(t *testing.T) {
	sv := newTesseractView(t, 1)
	defer sv.Close()

	sv.SetProjectionMode(projection.Orthographic)
	sv.SetViewDistance(3)
	cfg := sv.Projection()
	if cfg.Mode != projection.Orthographic {
		t.Errorf("mode = %v, want orthographic", cfg.Mode)
	}
	if cfg.ViewDistance != 3 {
		t.Errorf("view distance = %v, want 3", cfg.ViewDistance)
	}
}

func TestPausedToggle(t *testing.T) {
	sv := newTesseractView(t, 1)
	defer sv.Close()

	if sv.Paused() {
		t.Fatal("should start unpaused")
	}
	if !sv.TogglePaused() {
		t.Error("toggle should pause")
	}
	sv.SetPaused(false)
	if sv.Paused() {
		t.Error("SetPaused(false) should unpause")
	}
}
