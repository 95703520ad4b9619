package game

import (
	"image/color"
	"math"

	"github.com/SamuelWeese/rabbit-prison/internal/entity"
	"github.com/SamuelWeese/rabbit-prison/internal/item"
	"github.com/SamuelWeese/rabbit-prison/internal/render"
	"github.com/SamuelWeese/rabbit-prison/internal/world"
)

// Draw renders the game to the screen. World-space elements are drawn at
// their world position minus the camera offset; the HUD and messages are
// drawn in screen space on top.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(color.RGBA{200, 200, 200, 255})

	if g.ShowGrid {
		g.drawGrid(screen)
	}

	g.drawWalls(screen)
	g.drawPassableBlocks(screen)
	g.drawRabbits(screen)
	g.drawWarden(screen)
	g.drawLooseItems(screen)
	g.drawBullets(screen)
	g.drawObstructingBlocks(screen)
	g.drawInteractionHighlights(screen)

	g.GameHUD.SetDebugInfo(60, g.Camera.X, g.Camera.Y)
	g.GameHUD.Draw(screen)
	g.drawMessages(screen)
}

// worldToScreen converts a world position to screen coordinates.
func (g *Game) worldToScreen(wx, wy float64) (sx, sy float32) {
	return float32(wx - g.Camera.X), float32(wy - g.Camera.Y)
}

// drawGrid draws the floor reference grid. Only the lines crossing the
// viewport are drawn.
func (g *Game) drawGrid(screen render.Image) {
	worldW, worldH := g.World.Size()
	gridColor := color.RGBA{180, 180, 180, 255}

	startX := math.Floor(g.Camera.X/world.GridSize) * world.GridSize
	endX := math.Min(g.Camera.X+float64(g.ScreenWidth), worldW)
	for x := startX; x <= endX; x += world.GridSize {
		sx, _ := g.worldToScreen(x, 0)
		top := float32(math.Max(0, -g.Camera.Y))
		bottom := float32(math.Min(float64(g.ScreenHeight), worldH-g.Camera.Y))
		g.Renderer.StrokeLine(screen, sx, top, sx, bottom, 1, gridColor)
	}

	startY := math.Floor(g.Camera.Y/world.GridSize) * world.GridSize
	endY := math.Min(g.Camera.Y+float64(g.ScreenHeight), worldH)
	for y := startY; y <= endY; y += world.GridSize {
		_, sy := g.worldToScreen(0, y)
		left := float32(math.Max(0, -g.Camera.X))
		right := float32(math.Min(float64(g.ScreenWidth), worldW-g.Camera.X))
		g.Renderer.StrokeLine(screen, left, sy, right, sy, 1, gridColor)
	}
}

func (g *Game) drawWalls(screen render.Image) {
	for _, wall := range g.World.Walls {
		sx, sy := g.worldToScreen(wall.Rect.X, wall.Rect.Y)
		g.Renderer.FillRect(screen, sx, sy, float32(wall.Rect.W), float32(wall.Rect.H),
			color.RGBA{80, 80, 80, 255})
		g.Renderer.StrokeRect(screen, sx, sy, float32(wall.Rect.W), float32(wall.Rect.H), 2,
			color.RGBA{100, 100, 100, 255})
	}
}

// drawPassableBlocks draws food and water blocks. They go under the
// characters so rabbits appear on top while using them.
func (g *Game) drawPassableBlocks(screen render.Image) {
	for _, b := range g.World.Blocks {
		switch b.Type {
		case world.BlockFood:
			g.drawFoodBlock(screen, b)
		case world.BlockWater:
			g.drawWaterBlock(screen, b)
		}
	}
}

// drawObstructingBlocks draws walls and doors. They go over the characters,
// matching the original draw order.
func (g *Game) drawObstructingBlocks(screen render.Image) {
	for _, b := range g.World.Blocks {
		switch b.Type {
		case world.BlockWall:
			g.drawWallBlock(screen, b)
		case world.BlockDoor:
			g.drawDoorBlock(screen, b)
		}
	}
}

func (g *Game) drawWallBlock(screen render.Image, b *world.Block) {
	sx, sy := g.worldToScreen(b.X, b.Y)
	size := float32(world.GridSize)
	g.Renderer.FillRect(screen, sx, sy, size, size, color.RGBA{120, 120, 120, 255})
	g.Renderer.StrokeRect(screen, sx, sy, size, size, 2, color.RGBA{80, 80, 80, 255})
	// Stone texture lines
	g.Renderer.StrokeLine(screen, sx+10, sy, sx+10, sy+size, 1, color.RGBA{100, 100, 100, 255})
	g.Renderer.StrokeLine(screen, sx, sy+10, sx+size, sy+10, 1, color.RGBA{100, 100, 100, 255})
}

func (g *Game) drawDoorBlock(screen render.Image, b *world.Block) {
	sx, sy := g.worldToScreen(b.X, b.Y)
	size := float32(world.GridSize)

	if b.Open {
		// Open door: only the frame is visible
		g.Renderer.FillRect(screen, sx, sy, size, size, color.RGBA{80, 50, 30, 200})
		g.Renderer.StrokeRect(screen, sx+3, sy+3, size-6, size-6, 2, color.RGBA{100, 70, 40, 150})
	} else {
		g.Renderer.FillRect(screen, sx, sy, size, size, color.RGBA{101, 67, 33, 255})
		g.Renderer.StrokeRect(screen, sx+2, sy+2, size-4, size-4, 2, color.RGBA{60, 40, 20, 255})
	}

	// Door handle
	handleX := sx + size - 10
	if b.Open {
		handleX = sx + size - 5
	}
	g.Renderer.FillCircle(screen, handleX, sy+size/2, 3, color.RGBA{200, 200, 200, 255})
}

func (g *Game) drawFoodBlock(screen render.Image, b *world.Block) {
	sx, sy := g.worldToScreen(b.X, b.Y)
	size := float32(world.GridSize)

	// Table
	g.Renderer.FillRect(screen, sx, sy+size-8, size, 8, color.RGBA{139, 90, 43, 255})
	// Apples and bread
	g.Renderer.FillCircle(screen, sx+13, sy+15, 5, color.RGBA{255, 100, 100, 255})
	g.Renderer.FillCircle(screen, sx+27, sy+17, 5, color.RGBA{255, 100, 100, 255})
	g.Renderer.FillRect(screen, sx+35, sy+10, 12, 8, color.RGBA{222, 184, 135, 255})
}

func (g *Game) drawWaterBlock(screen render.Image, b *world.Block) {
	sx, sy := g.worldToScreen(b.X, b.Y)
	size := float32(world.GridSize)

	// Base and basin
	g.Renderer.FillRect(screen, sx, sy+size-10, size, 10, color.RGBA{150, 150, 150, 255})
	g.Renderer.FillRect(screen, sx+5, sy+5, size-10, size-15, color.RGBA{100, 180, 255, 200})
	// Water surface waves
	for i := 0; i < 3; i++ {
		waveY := sy + 8 + float32(i)*2
		g.Renderer.StrokeLine(screen, sx+8, waveY, sx+size-8, waveY, 1, color.RGBA{150, 200, 255, 255})
	}
	// Spout
	g.Renderer.FillRect(screen, sx+size/2-3, sy+2, 6, 6, color.RGBA{140, 140, 140, 255})
}

func (g *Game) drawWarden(screen render.Image) {
	warden := g.World.Warden
	if warden == nil {
		return
	}

	sx, sy := g.worldToScreen(warden.X, warden.Y)
	half := float32(warden.Size / 2)

	// Body (denim blue overalls)
	g.Renderer.FillRect(screen, sx-half+2, sy-half+3, float32(warden.Size)-4, float32(warden.Size)-6,
		color.RGBA{60, 90, 150, 255})

	// Head
	headSize := float32(warden.Size) - 6
	headY := sy - half - 2
	g.Renderer.FillCircle(screen, sx, headY+headSize/2, headSize/2, color.RGBA{255, 220, 177, 255})

	// Straw hat: brim and top
	hatWidth := float32(warden.Size) + 4
	g.Renderer.FillRect(screen, sx-hatWidth/2, headY-2, hatWidth, 4, color.RGBA{218, 165, 32, 255})
	g.Renderer.FillRect(screen, sx-hatWidth/2+2, headY-6, hatWidth-4, 4, color.RGBA{184, 134, 11, 255})

	// Eyes
	g.Renderer.FillCircle(screen, sx-3, headY+6, 1, color.RGBA{0, 0, 0, 255})
	g.Renderer.FillCircle(screen, sx+3, headY+6, 1, color.RGBA{0, 0, 0, 255})

	if warden.HeldItem != nil {
		g.drawHeldItem(screen, warden)
	}
}

// drawHeldItem draws the warden's held item rotated toward the aim angle,
// plus the muzzle flash for a just-fired shotgun.
func (g *Game) drawHeldItem(screen render.Image, warden *entity.Character) {
	held := warden.HeldItem
	gx, gy := held.GripPosition(warden.X, warden.Y, warden.AimAngle)
	sx, sy := g.worldToScreen(gx, gy)

	switch held.Kind {
	case item.KindShotgun:
		mx, my := item.MuzzlePosition(warden.X, warden.Y, warden.AimAngle)
		msx, msy := g.worldToScreen(mx, my)
		// Barrel from grip to muzzle
		g.Renderer.StrokeLine(screen, sx, sy, msx, msy, 4, color.RGBA{80, 80, 80, 255})
		// Stock behind the grip
		ssx, ssy := g.worldToScreen(
			gx-math.Cos(warden.AimAngle)*item.ShotgunStockLength,
			gy-math.Sin(warden.AimAngle)*item.ShotgunStockLength)
		g.Renderer.StrokeLine(screen, ssx, ssy, sx, sy, 5, color.RGBA{101, 67, 33, 255})

		// Muzzle flash for a few frames after firing
		frames := warden.FrameCount - held.LastFiredFrame
		if held.LastFiredFrame > 0 && frames >= 0 && frames < item.MuzzleFlashFrames {
			intensity := 1.0 - float64(frames)/float64(item.MuzzleFlashFrames)
			radius := float32(6 * intensity)
			g.Renderer.FillCircle(screen, msx, msy, radius, color.RGBA{255, 255, 0, 255})
			g.Renderer.FillCircle(screen, msx, msy, radius/2, color.RGBA{255, 255, 200, 255})
		}
	case item.KindKey:
		g.Renderer.FillCircle(screen, sx, sy, 4, color.RGBA{255, 215, 0, 255})
	default:
		// Block item preview held in front of the character
		g.Renderer.FillRect(screen, sx-10, sy-10, 20, 20, blockPreviewColor(held.Kind))
	}
}

func blockPreviewColor(kind item.Kind) color.RGBA {
	switch kind {
	case item.KindWallBlock:
		return color.RGBA{120, 120, 120, 255}
	case item.KindDoorBlock:
		return color.RGBA{101, 67, 33, 255}
	case item.KindFoodBlock:
		return color.RGBA{255, 100, 100, 255}
	case item.KindWaterBlock:
		return color.RGBA{100, 180, 255, 255}
	default:
		return color.RGBA{120, 120, 120, 255}
	}
}

func (g *Game) drawRabbits(screen render.Image) {
	for _, r := range g.World.Rabbits {
		g.drawRabbit(screen, r)
	}
}

func (g *Game) drawRabbit(screen render.Image, r *entity.Rabbit) {
	sx, sy := g.worldToScreen(r.X, r.Y)
	half := float32(r.Size / 2)

	bodyColor := color.RGBA{255, 220, 177, 255}
	earColor := color.RGBA{139, 69, 19, 255}

	if r.Sleeping {
		// Flattened sleeping pose with closed eyes
		g.Renderer.FillRect(screen, sx-half, sy-half/2, float32(r.Size), half, bodyColor)
		g.Renderer.StrokeRect(screen, sx-half, sy-half/2, float32(r.Size), half, 2, earColor)
		g.Renderer.StrokeLine(screen, sx-4, sy-2, sx-2, sy-2, 1, color.RGBA{0, 0, 0, 255})
		g.Renderer.StrokeLine(screen, sx+2, sy-2, sx+4, sy-2, 1, color.RGBA{0, 0, 0, 255})
		// Z above the head
		zy := sy - half - 8
		g.Renderer.StrokeLine(screen, sx-3, zy, sx+3, zy, 2, color.RGBA{100, 100, 100, 255})
		g.Renderer.StrokeLine(screen, sx+3, zy, sx-3, zy+4, 2, color.RGBA{100, 100, 100, 255})
		g.Renderer.StrokeLine(screen, sx-3, zy+4, sx+3, zy+4, 2, color.RGBA{100, 100, 100, 255})
	} else {
		var bob float32
		if r.Eating {
			bob = float32(2 * math.Sin(r.ActionTimer*10))
		} else if r.Drinking {
			bob = 2
		}

		g.Renderer.FillCircle(screen, sx, sy+bob, half, bodyColor)
		g.Renderer.StrokeCircle(screen, sx, sy+bob, half, 2, earColor)

		// Ears
		g.Renderer.FillRect(screen, sx-half-2, sy-half-4+bob, 6, 12, earColor)
		g.Renderer.FillRect(screen, sx+half-4, sy-half-4+bob, 6, 12, earColor)

		if r.Eating {
			g.Renderer.FillCircle(screen, sx, sy-half-8+bob, 4, color.RGBA{255, 150, 150, 255})
		} else if r.Drinking {
			for i := 0; i < 3; i++ {
				g.Renderer.FillCircle(screen, sx-4+float32(i)*4, sy-half-10+float32(i)*2+bob, 1.5,
					color.RGBA{150, 200, 255, 150})
			}
		}
	}

	g.drawNeedBars(screen, r, sx, sy)
}

// drawNeedBars draws the food/water/sleep bars stacked above a rabbit.
func (g *Game) drawNeedBars(screen render.Image, r *entity.Rabbit, sx, sy float32) {
	const (
		barWidth   = 30
		barHeight  = 3
		barSpacing = 4
	)

	barX := sx - barWidth/2
	barY := sy - float32(r.Size/2) - 20

	bars := []struct {
		level float64
		fill  color.RGBA
	}{
		{r.Food, color.RGBA{255, 0, 0, 255}},
		{r.Water, color.RGBA{0, 100, 255, 255}},
		{r.Sleep, color.RGBA{150, 50, 200, 255}},
	}

	for _, bar := range bars {
		g.Renderer.FillRect(screen, barX, barY, barWidth, barHeight, color.RGBA{50, 50, 50, 255})
		fillWidth := float32(barWidth * bar.level / entity.NeedMax)
		if fillWidth > 0 {
			g.Renderer.FillRect(screen, barX, barY, fillWidth, barHeight, bar.fill)
		}
		barY += barSpacing
	}
}

func (g *Game) drawLooseItems(screen render.Image) {
	for _, it := range g.World.Items {
		if it.Held {
			continue
		}
		sx, sy := g.worldToScreen(it.X, it.Y)
		switch it.Kind {
		case item.KindShotgun:
			g.Renderer.StrokeLine(screen, sx-12, sy, sx+12, sy, 4, color.RGBA{80, 80, 80, 255})
			g.Renderer.StrokeLine(screen, sx-16, sy, sx-12, sy, 5, color.RGBA{101, 67, 33, 255})
		case item.KindKey:
			g.Renderer.FillCircle(screen, sx, sy-2, 4, color.RGBA{255, 215, 0, 255})
			g.Renderer.FillRect(screen, sx-1, sy+2, 2, 6, color.RGBA{255, 215, 0, 255})
		}
	}
}

func (g *Game) drawBullets(screen render.Image) {
	for _, b := range g.World.Bullets {
		if !b.Active {
			continue
		}
		sx, sy := g.worldToScreen(b.X, b.Y)
		g.Renderer.FillCircle(screen, sx, sy, float32(b.Size), color.RGBA{255, 255, 0, 255})
	}
}

// drawInteractionHighlights outlines doors and items the warden could
// interact with.
func (g *Game) drawInteractionHighlights(screen render.Image) {
	warden := g.World.Warden
	if warden == nil {
		return
	}

	highlight := color.RGBA{255, 255, 0, 255}
	for _, obj := range g.World.InteractivesNear(warden.X, warden.Y, world.HighlightRange) {
		switch {
		case obj.Door != nil:
			sx, sy := g.worldToScreen(obj.Door.X, obj.Door.Y)
			g.Renderer.StrokeRect(screen, sx-3, sy-3, world.GridSize+6, world.GridSize+6, 3, highlight)
		case obj.Item != nil:
			sx, sy := g.worldToScreen(obj.Item.X, obj.Item.Y)
			g.Renderer.StrokeCircle(screen, sx, sy, 15, 3, highlight)
		}
	}
}

// drawMessages draws the transient message stack in the top-left corner.
func (g *Game) drawMessages(screen render.Image) {
	y := 30
	for _, msg := range g.Messages {
		g.Renderer.DrawText(screen, msg.Text, 8, y, color.White, 1.0)
		y += 16
	}
}
