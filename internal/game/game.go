// Package game wires the world, camera, input and HUD into the frame loop
// the engine drives.
package game

import (
	"log"

	"github.com/SamuelWeese/rabbit-prison/internal/item"
	"github.com/SamuelWeese/rabbit-prison/internal/render"
	"github.com/SamuelWeese/rabbit-prison/internal/settings"
	"github.com/SamuelWeese/rabbit-prison/internal/ui/hud"
	"github.com/SamuelWeese/rabbit-prison/internal/world"
)

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	World  *world.World
	Camera Camera

	// FreeCamera switches WASD from moving the warden to panning the
	// camera.
	FreeCamera bool
	ShowGrid   bool

	Hotbar  *item.Hotbar
	GameHUD *hud.HUD

	Renderer render.Renderer
	InputMgr render.InputManager
	Settings *settings.Manager

	// UI state
	Messages []Message

	// Cursor position in screen coordinates, tracked each tick for aiming.
	mouseX, mouseY int

	FrameCount int
}

// New creates the game over a built world, with the warden's starting
// loadout in the hotbar.
func New(w *world.World, renderer render.Renderer, inputMgr render.InputManager, sm *settings.Manager, screenWidth, screenHeight int) *Game {
	g := &Game{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		World:        w,
		Hotbar:       item.NewHotbar(),
		Renderer:     renderer,
		InputMgr:     inputMgr,
		Settings:     sm,
	}

	if sm != nil {
		g.ShowGrid = sm.Settings().ShowGrid
		g.FreeCamera = sm.Settings().FreeCamera
	}

	// Starting loadout: shotgun in hand, a key, and one of each block item.
	shotgun := item.New(item.KindShotgun, 0, 0)
	g.Hotbar.SetSlot(0, shotgun)
	g.Hotbar.SetSlot(1, item.New(item.KindKey, 0, 0))
	g.Hotbar.SetSlot(2, item.New(item.KindWallBlock, 0, 0))
	g.Hotbar.SetSlot(3, item.New(item.KindDoorBlock, 0, 0))
	g.Hotbar.SetSlot(4, item.New(item.KindFoodBlock, 0, 0))
	g.Hotbar.SetSlot(5, item.New(item.KindWaterBlock, 0, 0))
	if w.Warden != nil {
		w.Warden.Equip(shotgun)
	}

	g.GameHUD = hud.New(hud.DefaultConfig(), renderer, screenWidth, screenHeight)
	g.GameHUD.SetHotbar(g.Hotbar)
	if w.Warden != nil {
		g.GameHUD.SetResources(&w.Warden.Resources)
	}

	g.UpdateCamera()

	return g
}

// Update handles one game tick.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 TPS)
	dt := 1.0 / 60.0

	g.FrameCount++
	g.updateMessages(dt)

	g.handleToggles()
	g.handleHotbar()
	g.handleMovement()
	g.handleMouse()

	warden := g.World.Warden
	if warden != nil {
		warden.FrameCount++

		// Toggle a nearby door with Space
		if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
			if door := g.World.NearbyDoor(warden.X, warden.Y, world.DoorReach); door != nil {
				g.World.ToggleDoor(door.X, door.Y)
				if door.Open {
					g.ShowMessage("Door opened")
				} else {
					g.ShowMessage("Door closed")
				}
			}
		}
	}

	g.World.Update(dt)

	if picked := g.World.PickupNearbyItem(); picked != nil {
		g.ShowMessage("Picked up " + string(picked.Kind))
	}

	g.UpdateCamera()

	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// handleToggles processes the grid overlay and camera mode keys.
func (g *Game) handleToggles() {
	if g.InputMgr.IsKeyJustPressed(render.KeyG) {
		g.ShowGrid = !g.ShowGrid
		g.persistSettings()
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyC) {
		g.FreeCamera = !g.FreeCamera
		if g.FreeCamera {
			g.ShowMessage("Free camera")
		} else {
			g.ShowMessage("Camera follows warden")
		}
		g.persistSettings()
	}
}

func (g *Game) persistSettings() {
	if g.Settings == nil {
		return
	}
	g.Settings.Settings().ShowGrid = g.ShowGrid
	g.Settings.Settings().FreeCamera = g.FreeCamera
	if err := g.Settings.Save(); err != nil {
		log.Printf("Warning: failed to save settings: %v", err)
	}
}

// slotKeys maps number keys to hotbar slots.
var slotKeys = [...]render.Key{
	render.Key1, render.Key2, render.Key3,
	render.Key4, render.Key5, render.Key6,
	render.Key7, render.Key8, render.Key9,
}

// handleHotbar processes slot selection from number keys, Tab and the mouse
// wheel, equipping the selected item.
func (g *Game) handleHotbar() {
	changed := false

	for i, key := range slotKeys {
		if g.InputMgr.IsKeyJustPressed(key) {
			g.Hotbar.Select(i)
			changed = true
		}
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyTab) {
		g.Hotbar.SelectNext()
		changed = true
	}

	if _, wy := g.InputMgr.Wheel(); wy != 0 {
		if wy > 0 {
			g.Hotbar.SelectPrev()
		} else {
			g.Hotbar.SelectNext()
		}
		changed = true
	}

	if changed && g.World.Warden != nil {
		// A nil item clears the warden's hands
		g.World.Warden.Equip(g.Hotbar.SelectedItem())
	}
}

// handleMovement applies WASD/arrow input to the warden, or to the camera
// in free-pan mode.
func (g *Game) handleMovement() {
	var dx, dy float64
	if g.InputMgr.IsKeyPressed(render.KeyW) || g.InputMgr.IsKeyPressed(render.KeyUp) {
		dy = -1
	}
	if g.InputMgr.IsKeyPressed(render.KeyS) || g.InputMgr.IsKeyPressed(render.KeyDown) {
		dy = 1
	}
	if g.InputMgr.IsKeyPressed(render.KeyA) || g.InputMgr.IsKeyPressed(render.KeyLeft) {
		dx = -1
	}
	if g.InputMgr.IsKeyPressed(render.KeyD) || g.InputMgr.IsKeyPressed(render.KeyRight) {
		dx = 1
	}

	if dx == 0 && dy == 0 {
		return
	}

	if g.FreeCamera {
		g.Pan(dx, dy)
		return
	}

	warden := g.World.Warden
	if warden == nil {
		return
	}

	// Per-axis movement so the warden slides along walls
	stepX := dx * warden.Speed
	stepY := dy * warden.Speed
	if stepX != 0 && !g.World.Collides(warden, stepX, 0) {
		warden.Move(stepX, 0)
	}
	if stepY != 0 && !g.World.Collides(warden, 0, stepY) {
		warden.Move(0, stepY)
	}
}

// handleMouse tracks the cursor for aiming and processes clicks: the left
// button uses or places the held item, the right button removes blocks.
func (g *Game) handleMouse() {
	g.mouseX, g.mouseY = g.InputMgr.GetCursorPosition()

	warden := g.World.Warden
	if warden == nil {
		return
	}

	worldX, worldY := g.ScreenToWorld(g.mouseX, g.mouseY)
	warden.SetAim(worldX, worldY)

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		held := warden.HeldItem
		switch {
		case held == nil:
			// Empty hands do nothing
		case held.Kind.IsBlock():
			if !g.World.PlaceBlock(worldX, worldY, blockTypeFor(held.Kind)) {
				g.ShowMessage("Can't place block there")
			}
		default:
			if shot, ok := warden.UseItem(); ok {
				g.World.SpawnBullet(shot)
			}
		}
	}

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonRight) {
		g.World.RemoveBlock(worldX, worldY)
	}
}

// blockTypeFor maps a block item kind to the block type it places.
func blockTypeFor(kind item.Kind) world.BlockType {
	switch kind {
	case item.KindWallBlock:
		return world.BlockWall
	case item.KindDoorBlock:
		return world.BlockDoor
	case item.KindFoodBlock:
		return world.BlockFood
	case item.KindWaterBlock:
		return world.BlockWater
	default:
		return world.BlockWall
	}
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
	log.Printf("Message: %s", text)
}
