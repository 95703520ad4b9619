package world

import (
	"math"
	"testing"

	"github.com/SamuelWeese/rabbit-prison/internal/entity"
)

func TestBulletStep(t *testing.T) {
	b := NewBullet(100, 100, 0)
	b.Step()
	if b.X != 100+BulletSpeed || b.Y != 100 {
		t.Errorf("bullet at (%g, %g), want (%g, 100)", b.X, b.Y, 100+BulletSpeed)
	}

	b = NewBullet(100, 100, math.Pi/2)
	b.Step()
	if math.Abs(b.Y-(100+BulletSpeed)) > 1e-9 {
		t.Errorf("bullet Y = %g, want %g", b.Y, 100+BulletSpeed)
	}
}

func TestUpdateBulletsLeavesWorld(t *testing.T) {
	w := testWorld(t)
	w.SpawnBullet(entity.Shot{X: 990, Y: 500, Angle: 0})

	w.UpdateBullets()
	if len(w.Bullets) != 0 {
		t.Errorf("bullet leaving the world should be dropped, %d left", len(w.Bullets))
	}
}

func TestUpdateBulletsHitsWall(t *testing.T) {
	w := testWorld(t)
	w.Walls = append(w.Walls, Wall{Rect: Rect{X: 300, Y: 0, W: 20, H: 1000}})
	w.SpawnBullet(entity.Shot{X: 290, Y: 500, Angle: 0})

	w.UpdateBullets()
	if len(w.Bullets) != 0 {
		t.Errorf("bullet hitting a wall should be dropped, %d left", len(w.Bullets))
	}
}

func TestUpdateBulletsKeepsFlying(t *testing.T) {
	w := testWorld(t)
	b := w.SpawnBullet(entity.Shot{X: 100, Y: 100, Angle: 0})

	for i := 0; i < 10; i++ {
		w.UpdateBullets()
	}
	if len(w.Bullets) != 1 {
		t.Fatalf("bullet in open space should survive, %d left", len(w.Bullets))
	}
	if b.X != 100+10*BulletSpeed {
		t.Errorf("bullet X = %g, want %g", b.X, 100+10*BulletSpeed)
	}
}
