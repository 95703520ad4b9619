package world

import (
	"math"

	"github.com/SamuelWeese/rabbit-prison/internal/entity"
)

// Bullet movement and size defaults.
const (
	BulletSpeed = 15.0 // pixels per tick
	BulletSize  = 3.0
)

// Bullet is a projectile in flight.
type Bullet struct {
	X, Y   float64
	Angle  float64
	Speed  float64
	Size   float64
	Active bool
}

// NewBullet creates a bullet at a position flying along an angle.
func NewBullet(x, y, angle float64) *Bullet {
	return &Bullet{
		X:      x,
		Y:      y,
		Angle:  angle,
		Speed:  BulletSpeed,
		Size:   BulletSize,
		Active: true,
	}
}

// Step advances the bullet one tick.
func (b *Bullet) Step() {
	if !b.Active {
		return
	}
	b.X += math.Cos(b.Angle) * b.Speed
	b.Y += math.Sin(b.Angle) * b.Speed
}

// Rect returns the bullet's bounding rectangle.
func (b *Bullet) Rect() Rect {
	return Rect{
		X: b.X - b.Size/2,
		Y: b.Y - b.Size/2,
		W: b.Size,
		H: b.Size,
	}
}

// SpawnBullet adds a bullet to the world from a fired shot.
func (w *World) SpawnBullet(shot entity.Shot) *Bullet {
	b := NewBullet(shot.X, shot.Y, shot.Angle)
	w.Bullets = append(w.Bullets, b)
	return b
}

// UpdateBullets steps all bullets and drops the ones that left the world or
// hit a wall.
func (w *World) UpdateBullets() {
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		b.Step()

		if b.X < 0 || b.X > w.width || b.Y < 0 || b.Y > w.height {
			continue
		}

		hit := false
		rect := b.Rect()
		for _, wall := range w.Walls {
			if rect.Intersects(wall.Rect) {
				hit = true
				break
			}
		}
		if hit {
			continue
		}

		kept = append(kept, b)
	}
	w.Bullets = kept
}
