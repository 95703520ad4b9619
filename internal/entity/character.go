// Package entity provides the characters that inhabit the prison: the
// player-controlled warden and the rabbit prisoners.
package entity

import (
	"math"

	"github.com/google/uuid"

	"github.com/SamuelWeese/rabbit-prison/internal/item"
)

// Kind identifies the kind of character.
type Kind string

const (
	KindWarden Kind = "warden"
	KindRabbit Kind = "rabbit"
)

// Character sizes and speeds.
const (
	CharacterSize = 20.0
	WardenSpeed   = 3.0
)

// Starting resources for the warden.
const (
	StartingCarrots = 10
	StartingMoney   = 100
)

// Obstacles reports collisions for character movement. Implemented by the
// world.
type Obstacles interface {
	// Collides reports whether moving the character by (dx, dy) would
	// intersect a wall, an obstructing block, or the world bounds.
	Collides(c *Character, dx, dy float64) bool
}

// Resources tracks the warden's collected goods.
type Resources struct {
	Carrots int
	Money   int
}

// Character represents a character in the game world. Positions are the
// center of the character's square footprint.
type Character struct {
	ID   string
	Kind Kind

	X, Y  float64
	Size  float64
	Speed float64

	// AimAngle is the facing/aim direction in radians.
	AimAngle float64

	// HeldItem is the item currently in hand, or nil.
	HeldItem *item.Item

	// Last movement delta, for sprite facing.
	LastDX, LastDY float64

	// AnimationFrame advances with movement; FrameCount every tick.
	AnimationFrame int
	FrameCount     int

	// Resources are only meaningful for the warden.
	Resources Resources
}

// NewWarden creates the player character at a world position.
func NewWarden(x, y float64) *Character {
	return &Character{
		ID:    uuid.NewString(),
		Kind:  KindWarden,
		X:     x,
		Y:     y,
		Size:  CharacterSize,
		Speed: WardenSpeed,
		Resources: Resources{
			Carrots: StartingCarrots,
			Money:   StartingMoney,
		},
	}
}

// Move moves the character by the given delta and advances its walk
// animation.
func (c *Character) Move(dx, dy float64) {
	c.X += dx
	c.Y += dy
	c.LastDX = dx
	c.LastDY = dy
	if dx != 0 || dy != 0 {
		c.AnimationFrame++
	}
}

// Equip puts an item in the character's hands, releasing any held item.
// A nil item clears the hands.
func (c *Character) Equip(it *item.Item) {
	if c.HeldItem != nil {
		c.HeldItem.Held = false
	}
	c.HeldItem = it
	if it != nil {
		it.Held = true
	}
}

// SetAim points the character's aim at a world-space target.
func (c *Character) SetAim(targetX, targetY float64) {
	dx := targetX - c.X
	dy := targetY - c.Y
	if dx != 0 || dy != 0 {
		c.AimAngle = math.Atan2(dy, dx)
	}
}

// MoveTowards steps the character toward a target at its current speed,
// sliding along obstacles: if the direct step collides, an X-only then a
// Y-only step is tried.
func (c *Character) MoveTowards(targetX, targetY float64, obs Obstacles) {
	dx := targetX - c.X
	dy := targetY - c.Y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return
	}

	moveDX := dx / dist * c.Speed
	moveDY := dy / dist * c.Speed

	if !obs.Collides(c, moveDX, moveDY) {
		c.Move(moveDX, moveDY)
		return
	}
	if math.Abs(moveDX) > 0.1 && !obs.Collides(c, moveDX, 0) {
		c.Move(moveDX, 0)
	} else if math.Abs(moveDY) > 0.1 && !obs.Collides(c, 0, moveDY) {
		c.Move(0, moveDY)
	}
}

// UseItem uses the held item and returns the fired shot, if any. Only the
// shotgun produces one; other items (and empty hands) return false.
func (c *Character) UseItem() (Shot, bool) {
	if c.HeldItem == nil || c.HeldItem.Kind != item.KindShotgun {
		return Shot{}, false
	}
	c.HeldItem.LastFiredFrame = c.FrameCount
	x, y := item.MuzzlePosition(c.X, c.Y, c.AimAngle)
	return Shot{X: x, Y: y, Angle: c.AimAngle}, true
}

// Shot describes a fired projectile's origin and direction.
type Shot struct {
	X, Y  float64
	Angle float64
}
