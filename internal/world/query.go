package world

import (
	"math"

	"github.com/SamuelWeese/rabbit-prison/internal/item"
)

// Query ranges in pixels.
const (
	FacilitySeekRange = 500.0 // how far rabbits look for food/water
	DoorReach         = 40.0  // how close the warden must be to toggle a door
	HighlightRange    = 50.0  // interaction highlight radius
)

// nearestBlock returns the closest block of a type within maxDist of (x, y).
func (w *World) nearestBlock(x, y float64, t BlockType, maxDist float64) *Block {
	var nearest *Block
	minDist := maxDist
	for _, b := range w.Blocks {
		if b.Type != t {
			continue
		}
		cx, cy := b.InteractionPoint()
		d := math.Hypot(cx-x, cy-y)
		if d < minDist {
			minDist = d
			nearest = b
		}
	}
	return nearest
}

// NearestFoodBlock returns the closest food block within seeking range.
func (w *World) NearestFoodBlock(x, y float64) *Block {
	return w.nearestBlock(x, y, BlockFood, FacilitySeekRange)
}

// NearestWaterBlock returns the closest water block within seeking range.
func (w *World) NearestWaterBlock(x, y float64) *Block {
	return w.nearestBlock(x, y, BlockWater, FacilitySeekRange)
}

// NearestFoodPoint implements entity.Habitat.
func (w *World) NearestFoodPoint(x, y float64) (px, py float64, ok bool) {
	b := w.NearestFoodBlock(x, y)
	if b == nil {
		return 0, 0, false
	}
	px, py = b.InteractionPoint()
	return px, py, true
}

// NearestWaterPoint implements entity.Habitat.
func (w *World) NearestWaterPoint(x, y float64) (px, py float64, ok bool) {
	b := w.NearestWaterBlock(x, y)
	if b == nil {
		return 0, 0, false
	}
	px, py = b.InteractionPoint()
	return px, py, true
}

// NearbyDoor returns a door within reach of (x, y), or nil.
func (w *World) NearbyDoor(x, y, maxDist float64) *Block {
	for _, b := range w.Blocks {
		if b.Type != BlockDoor {
			continue
		}
		cx, cy := b.InteractionPoint()
		if math.Hypot(cx-x, cy-y) <= maxDist {
			return b
		}
	}
	return nil
}

// Interactive is something near the warden worth highlighting.
type Interactive struct {
	Door *Block     // non-nil for doors
	Item *item.Item // non-nil for loose items
}

// InteractivesNear returns the doors and loose items within maxDist of
// (x, y), doors first.
func (w *World) InteractivesNear(x, y, maxDist float64) []Interactive {
	var out []Interactive

	if door := w.NearbyDoor(x, y, maxDist); door != nil {
		out = append(out, Interactive{Door: door})
	}

	for _, it := range w.Items {
		if it.Held {
			continue
		}
		if math.Hypot(it.X-x, it.Y-y) <= maxDist {
			out = append(out, Interactive{Item: it})
		}
	}

	return out
}
