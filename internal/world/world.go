// Package world manages the prison scene: static walls, placed blocks,
// characters, loose items and bullets, plus the collision and facility
// queries the characters rely on.
package world

import (
	"math"

	"github.com/SamuelWeese/rabbit-prison/internal/entity"
	"github.com/SamuelWeese/rabbit-prison/internal/item"
)

// Wall is a static wall rectangle, immutable after load.
type Wall struct {
	Rect Rect
}

// World holds the complete scene state.
type World struct {
	width  float64
	height float64

	Walls  []Wall
	Blocks []*Block

	Warden  *entity.Character
	Rabbits []*entity.Rabbit

	// Items lying on the ground or held by the warden.
	Items []*item.Item

	Bullets []*Bullet
}

// Size returns the world dimensions in pixels.
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Characters returns all characters, warden first. The slice is rebuilt on
// each call; callers must not retain it across updates.
func (w *World) Characters() []*entity.Character {
	chars := make([]*entity.Character, 0, 1+len(w.Rabbits))
	if w.Warden != nil {
		chars = append(chars, w.Warden)
	}
	for _, r := range w.Rabbits {
		chars = append(chars, &r.Character)
	}
	return chars
}

// characterRect returns the character's footprint moved by (dx, dy).
func characterRect(c *entity.Character, dx, dy float64) Rect {
	return Rect{
		X: c.X + dx - c.Size/2,
		Y: c.Y + dy - c.Size/2,
		W: c.Size,
		H: c.Size,
	}
}

// Collides reports whether moving the character by (dx, dy) would intersect
// a wall, an obstructing block, or leave the world. Implements
// entity.Obstacles.
func (w *World) Collides(c *entity.Character, dx, dy float64) bool {
	test := characterRect(c, dx, dy)

	for _, wall := range w.Walls {
		if test.Intersects(wall.Rect) {
			return true
		}
	}

	for _, b := range w.Blocks {
		if !b.Obstructs() {
			continue
		}
		if test.Intersects(b.Rect()) {
			return true
		}
	}

	return test.X < 0 || test.X+test.W > w.width ||
		test.Y < 0 || test.Y+test.H > w.height
}

// Update advances the world by dt seconds: bullets fly and rabbits act.
func (w *World) Update(dt float64) {
	w.UpdateBullets()

	var wx, wy float64
	if w.Warden != nil {
		wx, wy = w.Warden.X, w.Warden.Y
	}
	for _, r := range w.Rabbits {
		r.Update(dt, w, wx, wy)
	}
}

// PlaceBlock places a block of the given type at a world position, snapped
// to the grid. It fails when the cell already holds a block or a character
// stands in it.
func (w *World) PlaceBlock(x, y float64, t BlockType) bool {
	b := NewBlock(x, y, t)
	rect := b.Rect()

	for _, existing := range w.Blocks {
		if rect.Intersects(existing.Rect()) {
			return false
		}
	}
	for _, c := range w.Characters() {
		if rect.Intersects(characterRect(c, 0, 0)) {
			return false
		}
	}

	w.Blocks = append(w.Blocks, b)
	return true
}

// RemoveBlock removes the block occupying the grid cell at a world
// position. Returns false when the cell is empty.
func (w *World) RemoveBlock(x, y float64) bool {
	sx, sy := snap(x), snap(y)
	for i, b := range w.Blocks {
		if b.X == sx && b.Y == sy {
			w.Blocks = append(w.Blocks[:i], w.Blocks[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleDoor opens or closes the door in the grid cell at a world position.
// Closing a door shoves characters and loose items out of its footprint and
// destroys bullets caught in it. Returns false when the cell has no door.
func (w *World) ToggleDoor(x, y float64) bool {
	sx, sy := snap(x), snap(y)
	for _, b := range w.Blocks {
		if b.Type != BlockDoor || b.X != sx || b.Y != sy {
			continue
		}
		wasOpen := b.Open
		b.Open = !b.Open
		if wasOpen && !b.Open {
			w.pushOutOfDoor(b)
		}
		return true
	}
	return false
}

// pushOutOfDoor moves everything out of a door's cell when it closes.
func (w *World) pushOutOfDoor(door *Block) {
	doorRect := door.Rect()

	for _, c := range w.Characters() {
		if characterRect(c, 0, 0).Intersects(doorRect) {
			c.X, c.Y = w.closestFreeSpace(door, c.X, c.Y)
		}
	}

	for _, it := range w.Items {
		if it.Held {
			continue
		}
		itemRect := Rect{X: it.X - 5, Y: it.Y - 5, W: 10, H: 10}
		if itemRect.Intersects(doorRect) {
			it.X, it.Y = w.closestFreeSpace(door, it.X, it.Y)
		}
	}

	kept := w.Bullets[:0]
	for _, bl := range w.Bullets {
		if bl.Active && bl.Rect().Intersects(doorRect) {
			continue
		}
		kept = append(kept, bl)
	}
	w.Bullets = kept
}

// closestFreeSpace searches outward from a closing door for a free grid
// cell center. When nothing is free within range it pushes directly away
// from the door.
func (w *World) closestFreeSpace(door *Block, fromX, fromY float64) (x, y float64) {
	const maxSearchRadius = 200

	centerX, centerY := door.InteractionPoint()

	for radius := float64(GridSize); radius < maxSearchRadius; radius += GridSize {
		for deg := 0; deg < 360; deg += 45 {
			rad := float64(deg) * math.Pi / 180
			sx := snap(centerX + math.Cos(rad)*radius)
			sy := snap(centerY + math.Sin(rad)*radius)
			test := Rect{X: sx, Y: sy, W: GridSize, H: GridSize}

			if w.cellBlocked(test, door) {
				continue
			}
			return sx + GridSize/2, sy + GridSize/2
		}
	}

	dx := fromX - centerX
	dy := fromY - centerY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return centerX, centerY - GridSize
	}
	return centerX + dx/dist*GridSize*2, centerY + dy/dist*GridSize*2
}

// cellBlocked reports whether a grid cell intersects a wall or an
// obstructing block other than the given door.
func (w *World) cellBlocked(cell Rect, ignore *Block) bool {
	for _, wall := range w.Walls {
		if cell.Intersects(wall.Rect) {
			return true
		}
	}
	for _, b := range w.Blocks {
		if b == ignore || !b.Obstructs() {
			continue
		}
		if cell.Intersects(b.Rect()) {
			return true
		}
	}
	return false
}

// PickupRange is how close the warden must be to grab a loose item.
const PickupRange = 30.0

// PickupNearbyItem equips the first loose item within pickup range of the
// warden, dropping any held item in its place. Returns the picked item, or
// nil when nothing is in reach.
func (w *World) PickupNearbyItem() *item.Item {
	if w.Warden == nil {
		return nil
	}
	for _, it := range w.Items {
		if it.Held {
			continue
		}
		if math.Hypot(it.X-w.Warden.X, it.Y-w.Warden.Y) < PickupRange {
			old := w.Warden.HeldItem
			w.Warden.Equip(it)
			if old != nil {
				old.X = w.Warden.X
				old.Y = w.Warden.Y
				old.Held = false
			}
			return it
		}
	}
	return nil
}
