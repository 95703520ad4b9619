package game

import (
	"math/rand"
	"testing"

	"github.com/SamuelWeese/rabbit-prison/internal/world"
)

func newCameraGame(t *testing.T, worldW, worldH float64) *Game {
	t.Helper()
	layout := &world.Layout{
		Name:        "test",
		Width:       worldW,
		Height:      worldH,
		WardenSpawn: world.Spawn{X: worldW / 2, Y: worldH / 2},
	}
	w := world.New(layout, rand.New(rand.NewSource(1)))
	return New(w, nil, newFakeInput(), nil, 800, 600)
}

func TestCameraCentersOnWarden(t *testing.T) {
	g := newCameraGame(t, 2000, 2000)
	g.World.Warden.X, g.World.Warden.Y = 1000, 800

	g.UpdateCamera()
	if g.Camera.X != 1000-400 || g.Camera.Y != 800-300 {
		t.Errorf("camera = (%g, %g), want (600, 500)", g.Camera.X, g.Camera.Y)
	}
}

func TestCameraClampsToWorldEdges(t *testing.T) {
	g := newCameraGame(t, 2000, 2000)

	g.World.Warden.X, g.World.Warden.Y = 50, 50
	g.UpdateCamera()
	if g.Camera.X != 0 || g.Camera.Y != 0 {
		t.Errorf("camera = (%g, %g), want clamped to (0, 0)", g.Camera.X, g.Camera.Y)
	}

	g.World.Warden.X, g.World.Warden.Y = 1990, 1990
	g.UpdateCamera()
	if g.Camera.X != 2000-800 || g.Camera.Y != 2000-600 {
		t.Errorf("camera = (%g, %g), want clamped to (1200, 1400)", g.Camera.X, g.Camera.Y)
	}
}

func TestCameraPinsAtOriginInSmallWorld(t *testing.T) {
	// World smaller than the 800x600 view: the camera stays at (0, 0)
	// instead of going negative.
	g := newCameraGame(t, 400, 400)

	g.UpdateCamera()
	if g.Camera.X != 0 || g.Camera.Y != 0 {
		t.Errorf("camera = (%g, %g), want pinned at (0, 0)", g.Camera.X, g.Camera.Y)
	}

	g.Pan(-1, -1)
	if g.Camera.X != 0 || g.Camera.Y != 0 {
		t.Errorf("camera = (%g, %g) after pan, want pinned at (0, 0)", g.Camera.X, g.Camera.Y)
	}

	g.Pan(1, 1)
	if g.Camera.X != 0 || g.Camera.Y != 0 {
		t.Errorf("camera = (%g, %g) after pan, want pinned at (0, 0)", g.Camera.X, g.Camera.Y)
	}
}

func TestCameraIgnoresWardenInFreePanMode(t *testing.T) {
	g := newCameraGame(t, 2000, 2000)
	g.FreeCamera = true
	g.Camera.X, g.Camera.Y = 100, 100

	g.World.Warden.X, g.World.Warden.Y = 1500, 1500
	g.UpdateCamera()
	if g.Camera.X != 100 || g.Camera.Y != 100 {
		t.Errorf("camera = (%g, %g), want untouched (100, 100)", g.Camera.X, g.Camera.Y)
	}
}

func TestPanMovesOneStep(t *testing.T) {
	g := newCameraGame(t, 2000, 2000)
	g.Camera.X, g.Camera.Y = 500, 500

	g.Pan(1, 0)
	if g.Camera.X != 500+CameraPanSpeed || g.Camera.Y != 500 {
		t.Errorf("camera = (%g, %g), want (%g, 500)", g.Camera.X, g.Camera.Y, 500+CameraPanSpeed)
	}

	g.Pan(0, -1)
	if g.Camera.Y != 500-CameraPanSpeed {
		t.Errorf("camera Y = %g, want %g", g.Camera.Y, 500-CameraPanSpeed)
	}
}

func TestPanClampsAtBounds(t *testing.T) {
	g := newCameraGame(t, 2000, 2000)

	g.Camera.X, g.Camera.Y = 0, 0
	g.Pan(-1, -1)
	if g.Camera.X != 0 || g.Camera.Y != 0 {
		t.Errorf("camera = (%g, %g), want pinned at (0, 0)", g.Camera.X, g.Camera.Y)
	}

	g.Camera.X, g.Camera.Y = 1200, 1400
	g.Pan(1, 1)
	if g.Camera.X != 1200 || g.Camera.Y != 1400 {
		t.Errorf("camera = (%g, %g), want pinned at (1200, 1400)", g.Camera.X, g.Camera.Y)
	}
}

func TestScreenToWorld(t *testing.T) {
	g := newCameraGame(t, 2000, 2000)
	g.Camera.X, g.Camera.Y = 300, 200

	wx, wy := g.ScreenToWorld(100, 50)
	if wx != 400 || wy != 250 {
		t.Errorf("world point = (%g, %g), want (400, 250)", wx, wy)
	}

	// Zero camera offset maps screen coordinates straight through.
	g.Camera.X, g.Camera.Y = 0, 0
	wx, wy = g.ScreenToWorld(123, 456)
	if wx != 123 || wy != 456 {
		t.Errorf("world point = (%g, %g), want (123, 456)", wx, wy)
	}
}
