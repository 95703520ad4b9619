// Package item provides the items the warden can hold and use: tools like
// the shotgun and key, and placeable block items for building.
package item

import (
	"math"

	"github.com/google/uuid"
)

// Kind identifies the type of an item.
type Kind string

const (
	KindShotgun    Kind = "shotgun"
	KindKey        Kind = "key"
	KindWallBlock  Kind = "wall_block"
	KindDoorBlock  Kind = "door_block"
	KindFoodBlock  Kind = "food_block"
	KindWaterBlock Kind = "water_block"
)

// IsBlock reports whether the item kind places a block when used.
func (k Kind) IsBlock() bool {
	switch k {
	case KindWallBlock, KindDoorBlock, KindFoodBlock, KindWaterBlock:
		return true
	default:
		return false
	}
}

// Item represents a single item instance. Items either lie on the ground at
// a world position or are held by a character.
type Item struct {
	ID   string
	Kind Kind

	// World position when lying on the ground
	X, Y float64

	// Held reports whether a character currently holds this item. A held
	// item's X/Y are stale until it is dropped again.
	Held bool

	// LastFiredFrame records the holder's frame counter when the item was
	// last used. Used for the shotgun's muzzle flash animation.
	LastFiredFrame int
}

// New creates a new item of the given kind at a world position.
func New(kind Kind, x, y float64) *Item {
	return &Item{
		ID:   uuid.NewString(),
		Kind: kind,
		X:    x,
		Y:    y,
	}
}

// GripOffset returns the distance from the holder's center at which the
// item is carried.
func (it *Item) GripOffset() float64 {
	switch it.Kind {
	case KindShotgun:
		return 5
	case KindKey:
		return 3
	default:
		// Block items are held in front of the character
		return 8
	}
}

// GripPosition returns the world position where the holder's hands grip the
// item, given the holder's center and aim angle.
func (it *Item) GripPosition(holderX, holderY, aimAngle float64) (x, y float64) {
	off := it.GripOffset()
	return holderX + math.Cos(aimAngle)*off, holderY + math.Sin(aimAngle)*off
}

// Shotgun geometry constants, used for muzzle position and drawing.
const (
	ShotgunLength      = 30.0
	ShotgunStockLength = 10.0
	MuzzleFlashFrames  = 5
)

// MuzzlePosition returns the world position of the shotgun's muzzle for a
// holder at the given center and aim angle.
func MuzzlePosition(holderX, holderY, aimAngle float64) (x, y float64) {
	return holderX + math.Cos(aimAngle)*ShotgunLength,
		holderY + math.Sin(aimAngle)*ShotgunLength
}
