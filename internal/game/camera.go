package game

import "math"

// CameraPanSpeed is the free-pan step in pixels per tick.
const CameraPanSpeed = 5.0

// Pan moves the camera by one step in the given directions and clamps it to
// the world. dx and dy are -1, 0 or 1.
func (g *Game) Pan(dx, dy float64) {
	g.Camera.X += dx * CameraPanSpeed
	g.Camera.Y += dy * CameraPanSpeed
	g.clampCamera()
}

// UpdateCamera centers the camera on the warden and clamps it to the world
// bounds. In free-pan mode the camera is left where the player panned it.
func (g *Game) UpdateCamera() {
	if g.FreeCamera {
		return
	}
	if g.World == nil || g.World.Warden == nil {
		return
	}
	g.Camera.X = g.World.Warden.X - float64(g.ScreenWidth)/2
	g.Camera.Y = g.World.Warden.Y - float64(g.ScreenHeight)/2
	g.clampCamera()
}

// clampCamera keeps the viewport inside the world bounds. Worlds smaller
// than the view pin the camera at the origin.
func (g *Game) clampCamera() {
	worldW, worldH := g.World.Size()

	maxX := worldW - float64(g.ScreenWidth)
	maxY := worldH - float64(g.ScreenHeight)

	g.Camera.X = math.Max(0, math.Min(g.Camera.X, maxX))
	g.Camera.Y = math.Max(0, math.Min(g.Camera.Y, maxY))
}

// ScreenToWorld converts screen coordinates to world coordinates under the
// current camera.
func (g *Game) ScreenToWorld(sx, sy int) (wx, wy float64) {
	return float64(sx) + g.Camera.X, float64(sy) + g.Camera.Y
}
