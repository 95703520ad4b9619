package world

import (
	"math/rand"
	"testing"

	"github.com/SamuelWeese/rabbit-prison/internal/entity"
	"github.com/SamuelWeese/rabbit-prison/internal/item"
)

func testWorld(t *testing.T) *World {
	t.Helper()
	layout := &Layout{
		Name:        "test",
		Width:       1000,
		Height:      1000,
		WardenSpawn: Spawn{X: 500, Y: 500},
	}
	return New(layout, rand.New(rand.NewSource(1)))
}

func TestCollidesWorldBounds(t *testing.T) {
	w := testWorld(t)
	c := w.Warden

	c.X, c.Y = 15, 500
	if w.Collides(c, 0, 0) {
		t.Error("character inside bounds should not collide")
	}
	if !w.Collides(c, -10, 0) {
		t.Error("moving past the left edge should collide")
	}

	c.X, c.Y = 985, 985
	if !w.Collides(c, 10, 0) {
		t.Error("moving past the right edge should collide")
	}
	if !w.Collides(c, 0, 10) {
		t.Error("moving past the bottom edge should collide")
	}
}

func TestCollidesWalls(t *testing.T) {
	w := testWorld(t)
	w.Walls = append(w.Walls, Wall{Rect: Rect{X: 100, Y: 100, W: 50, H: 50}})

	c := w.Warden
	c.X, c.Y = 80, 125

	if w.Collides(c, 0, 0) {
		t.Error("character next to wall should not collide")
	}
	if !w.Collides(c, 15, 0) {
		t.Error("moving into the wall should collide")
	}
}

func TestCollidesBlocks(t *testing.T) {
	w := testWorld(t)
	c := w.Warden

	tests := []struct {
		name      string
		blockType BlockType
		open      bool
		want      bool
	}{
		{"wall block obstructs", BlockWall, false, true},
		{"closed door obstructs", BlockDoor, false, true},
		{"open door passable", BlockDoor, true, false},
		{"food block passable", BlockFood, false, false},
		{"water block passable", BlockWater, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.Blocks = []*Block{{X: 200, Y: 200, Type: tt.blockType, Open: tt.open}}
			c.X, c.Y = 180, 225
			got := w.Collides(c, 15, 0)
			if got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaceBlockSnapsToGrid(t *testing.T) {
	w := testWorld(t)

	if !w.PlaceBlock(127, 163, BlockWall) {
		t.Fatal("PlaceBlock failed on empty cell")
	}

	b := w.Blocks[0]
	if b.X != 100 || b.Y != 150 {
		t.Errorf("block not snapped to grid: got (%g, %g), want (100, 150)", b.X, b.Y)
	}
}

func TestPlaceBlockRejectsOccupiedCell(t *testing.T) {
	w := testWorld(t)

	if !w.PlaceBlock(100, 100, BlockWall) {
		t.Fatal("first placement failed")
	}
	if w.PlaceBlock(120, 120, BlockDoor) {
		t.Error("placement in an occupied cell should fail")
	}
	if len(w.Blocks) != 1 {
		t.Errorf("expected 1 block, got %d", len(w.Blocks))
	}
}

func TestPlaceBlockRejectsCharacterOverlap(t *testing.T) {
	w := testWorld(t)
	w.Warden.X, w.Warden.Y = 525, 525

	if w.PlaceBlock(510, 510, BlockWall) {
		t.Error("placement under a character should fail")
	}
}

func TestRemoveBlock(t *testing.T) {
	w := testWorld(t)
	w.PlaceBlock(100, 100, BlockWall)

	if !w.RemoveBlock(130, 140) {
		t.Error("removal inside the occupied cell should succeed")
	}
	if len(w.Blocks) != 0 {
		t.Errorf("expected 0 blocks after removal, got %d", len(w.Blocks))
	}
	if w.RemoveBlock(130, 140) {
		t.Error("removing an empty cell should fail")
	}
}

func TestToggleDoor(t *testing.T) {
	w := testWorld(t)
	w.PlaceBlock(200, 200, BlockDoor)

	if !w.ToggleDoor(210, 210) {
		t.Fatal("ToggleDoor failed on a door cell")
	}
	if !w.Blocks[0].Open {
		t.Error("door should be open after first toggle")
	}
	if !w.ToggleDoor(210, 210) {
		t.Fatal("second toggle failed")
	}
	if w.Blocks[0].Open {
		t.Error("door should be closed after second toggle")
	}

	if w.ToggleDoor(600, 600) {
		t.Error("toggling an empty cell should fail")
	}
}

func TestClosingDoorPushesCharacterOut(t *testing.T) {
	w := testWorld(t)
	w.PlaceBlock(200, 200, BlockDoor)
	w.ToggleDoor(200, 200) // open

	// Warden stands in the doorway
	w.Warden.X, w.Warden.Y = 225, 225

	w.ToggleDoor(200, 200) // close

	doorRect := w.Blocks[0].Rect()
	if characterRect(w.Warden, 0, 0).Intersects(doorRect) {
		t.Errorf("warden still inside the closed door at (%g, %g)", w.Warden.X, w.Warden.Y)
	}
}

func TestClosingDoorPushesItemsAndDestroysBullets(t *testing.T) {
	w := testWorld(t)
	w.PlaceBlock(200, 200, BlockDoor)
	w.ToggleDoor(200, 200) // open

	key := item.New(item.KindKey, 225, 225)
	w.Items = append(w.Items, key)
	w.SpawnBullet(entity.Shot{X: 225, Y: 225, Angle: 0})
	// Bullets only collide when they overlap; rewind the spawned bullet to
	// sit inside the doorway.
	w.Bullets[0].X, w.Bullets[0].Y = 225, 225

	w.ToggleDoor(200, 200) // close

	doorRect := w.Blocks[0].Rect()
	keyRect := Rect{X: key.X - 5, Y: key.Y - 5, W: 10, H: 10}
	if keyRect.Intersects(doorRect) {
		t.Errorf("item still inside the closed door at (%g, %g)", key.X, key.Y)
	}
	if len(w.Bullets) != 0 {
		t.Errorf("expected bullets in the doorway to be destroyed, %d left", len(w.Bullets))
	}
}

func TestPickupNearbyItem(t *testing.T) {
	w := testWorld(t)
	w.Warden.X, w.Warden.Y = 500, 500

	far := item.New(item.KindKey, 700, 700)
	near := item.New(item.KindKey, 510, 510)
	w.Items = append(w.Items, far, near)

	picked := w.PickupNearbyItem()
	if picked != near {
		t.Fatal("expected the nearby key to be picked up")
	}
	if !near.Held {
		t.Error("picked item should be marked held")
	}
	if w.Warden.HeldItem != near {
		t.Error("warden should hold the picked item")
	}

	// Nothing else in range
	if w.PickupNearbyItem() != nil {
		t.Error("no further item should be in pickup range")
	}
}

func TestPickupDropsHeldItem(t *testing.T) {
	w := testWorld(t)
	w.Warden.X, w.Warden.Y = 500, 500

	shotgun := item.New(item.KindShotgun, 0, 0)
	w.Warden.Equip(shotgun)

	key := item.New(item.KindKey, 505, 505)
	w.Items = append(w.Items, key)

	if w.PickupNearbyItem() != key {
		t.Fatal("expected the key to be picked up")
	}
	if shotgun.Held {
		t.Error("previously held item should be dropped")
	}
	if shotgun.X != 500 || shotgun.Y != 500 {
		t.Errorf("dropped item should land at the warden: got (%g, %g)", shotgun.X, shotgun.Y)
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{49.9, 0},
		{50, 50},
		{127, 100},
		{199.99, 150},
	}
	for _, tt := range tests {
		if got := snap(tt.in); got != tt.want {
			t.Errorf("snap(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 50, H: 50}

	if !a.Intersects(Rect{X: 25, Y: 25, W: 50, H: 50}) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(Rect{X: 50, Y: 0, W: 50, H: 50}) {
		t.Error("touching edges should not count as intersecting")
	}
	if a.Intersects(Rect{X: 100, Y: 100, W: 10, H: 10}) {
		t.Error("disjoint rects should not intersect")
	}
}
