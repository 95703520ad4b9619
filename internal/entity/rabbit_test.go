package entity

import (
	"math"
	"math/rand"
	"testing"
)

// stubHabitat is a bare world for rabbit behavior tests.
type stubHabitat struct {
	width, height  float64
	foodX, foodY   float64
	hasFood        bool
	waterX, waterY float64
	hasWater       bool
}

func (s *stubHabitat) Collides(c *Character, dx, dy float64) bool { return false }

func (s *stubHabitat) Size() (float64, float64) { return s.width, s.height }

func (s *stubHabitat) NearestFoodPoint(x, y float64) (float64, float64, bool) {
	return s.foodX, s.foodY, s.hasFood
}

func (s *stubHabitat) NearestWaterPoint(x, y float64) (float64, float64, bool) {
	return s.waterX, s.waterY, s.hasWater
}

func newTestRabbit(x, y float64) *Rabbit {
	return NewRabbit(x, y, rand.New(rand.NewSource(1)))
}

func TestNeedsDecay(t *testing.T) {
	r := newTestRabbit(0, 0)
	r.UpdateNeeds(10)

	if want := NeedMax - 10*FoodDecayRate; r.Food != want {
		t.Errorf("food = %g, want %g", r.Food, want)
	}
	if want := NeedMax - 10*WaterDecayRate; r.Water != want {
		t.Errorf("water = %g, want %g", r.Water, want)
	}
	if want := NeedMax - 10*SleepDecayRate; r.Sleep != want {
		t.Errorf("sleep = %g, want %g", r.Sleep, want)
	}
}

func TestNeedsNeverGoNegative(t *testing.T) {
	r := newTestRabbit(0, 0)
	r.UpdateNeeds(1000)

	if r.Food != 0 || r.Water != 0 || r.Sleep != 0 {
		t.Errorf("needs = %g/%g/%g, want all floored at 0", r.Food, r.Water, r.Sleep)
	}
}

func TestEatingRestoresFood(t *testing.T) {
	r := newTestRabbit(0, 0)
	r.Food = 20
	r.StartEating()

	r.UpdateNeeds(1)
	if want := 20 + EatRestoreRate; r.Food != want {
		t.Errorf("food = %g, want %g", r.Food, want)
	}
	if !r.Eating {
		t.Error("rabbit should still be eating within the action duration")
	}

	r.UpdateNeeds(EatDuration)
	if r.Eating {
		t.Error("eating should end when the timer runs out")
	}
}

func TestDrinkingRestoresWater(t *testing.T) {
	r := newTestRabbit(0, 0)
	r.Water = 10
	r.StartDrinking()

	r.UpdateNeeds(DrinkDuration)
	if want := 10 + DrinkDuration*DrinkRestoreRate; r.Water != want {
		t.Errorf("water = %g, want %g", r.Water, want)
	}
	if r.Drinking {
		t.Error("drinking should end when the timer runs out")
	}
}

func TestSleepRunsUntilRested(t *testing.T) {
	r := newTestRabbit(0, 0)
	r.Sleep = 20
	r.StartSleeping()

	wantTimer := (NeedMax - 20) / SleepRestoreRate
	if math.Abs(r.ActionTimer-wantTimer) > 1e-9 {
		t.Errorf("action timer = %g, want %g", r.ActionTimer, wantTimer)
	}

	// Half the deficit in: still asleep.
	r.UpdateNeeds(wantTimer / 2)
	if !r.Sleeping {
		t.Fatal("rabbit should still be sleeping halfway through")
	}

	// Run well past the deficit.
	for i := 0; i < 10 && r.Sleeping; i++ {
		r.UpdateNeeds(1)
	}
	if r.Sleeping {
		t.Error("rabbit should wake once fully rested")
	}
	if r.Sleep < NeedMax-1 {
		t.Errorf("sleep = %g, want near %g on waking", r.Sleep, NeedMax)
	}
}

func TestSpeedScalesWithCondition(t *testing.T) {
	tests := []struct {
		name        string
		food, water float64
		want        float64
	}{
		{"healthy", 80, 80, RabbitSpeed},
		{"hungry", 25, 80, RabbitSpeed * 0.75},
		{"thirsty", 80, 25, RabbitSpeed * 0.75},
		{"starving", 5, 80, RabbitSpeed * 0.5},
		{"parched", 80, 5, RabbitSpeed * 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRabbit(0, 0)
			r.Food = tt.food
			r.Water = tt.water
			r.UpdateNeeds(0)
			if r.Speed != tt.want {
				t.Errorf("speed = %g, want %g", r.Speed, tt.want)
			}
		})
	}
}

func TestStartActionsAreExclusive(t *testing.T) {
	r := newTestRabbit(0, 0)
	r.StartEating()
	r.StartDrinking()

	if r.Eating {
		t.Error("starting to drink should stop eating")
	}
	if !r.Drinking {
		t.Error("rabbit should be drinking")
	}

	r.StartSleeping()
	if r.Drinking || !r.Sleeping {
		t.Error("starting to sleep should stop drinking")
	}
}

func TestHungryRabbitSeeksFood(t *testing.T) {
	hab := &stubHabitat{width: 1000, height: 1000, foodX: 600, foodY: 500, hasFood: true}
	r := newTestRabbit(500, 500)
	r.Food = 20

	startX := r.X
	r.Update(1.0/60, hab, 0, 0)

	if r.X <= startX {
		t.Errorf("rabbit X = %g, want movement toward the food at x=600", r.X)
	}
	if r.Eating {
		t.Error("rabbit should not eat while still out of range")
	}
}

func TestRabbitEatsInRange(t *testing.T) {
	hab := &stubHabitat{width: 1000, height: 1000, foodX: 510, foodY: 500, hasFood: true}
	r := newTestRabbit(500, 500)
	r.Food = 20

	r.Update(1.0/60, hab, 0, 0)
	if !r.Eating {
		t.Error("rabbit next to food should start eating")
	}
}

func TestThirstTakesPrecedence(t *testing.T) {
	hab := &stubHabitat{
		width: 1000, height: 1000,
		foodX: 600, foodY: 500, hasFood: true,
		waterX: 400, waterY: 500, hasWater: true,
	}
	r := newTestRabbit(500, 500)
	r.Food = 20
	r.Water = 20

	r.Update(1.0/60, hab, 0, 0)
	if r.X >= 500 {
		t.Errorf("rabbit X = %g, want movement toward the water at x=400", r.X)
	}
}

func TestTiredRabbitMovesAwayFromWarden(t *testing.T) {
	hab := &stubHabitat{width: 1000, height: 1000}
	r := newTestRabbit(500, 500)
	r.Sleep = 10
	r.Food = 80
	r.Water = 80

	// Warden to the left; the sleep spot is away from it.
	r.Update(1.0/60, hab, 300, 500)
	if r.X <= 500 {
		t.Errorf("rabbit X = %g, want movement away from the warden", r.X)
	}
}

func TestTiredRabbitSleepsAtSpot(t *testing.T) {
	hab := &stubHabitat{width: 1000, height: 1000}
	r := newTestRabbit(500, 500)
	r.Sleep = 10
	r.Food = 80
	r.Water = 80

	// Warden close by: the spot offset stays under the lie-down range.
	r.Update(1.0/60, hab, 495, 500)
	if !r.Sleeping {
		t.Error("rabbit at its sleep spot should doze off")
	}
}

func TestBusyRabbitHoldsPosition(t *testing.T) {
	hab := &stubHabitat{width: 1000, height: 1000, foodX: 900, foodY: 900, hasFood: true}
	r := newTestRabbit(500, 500)
	r.StartEating()

	r.Update(1.0/60, hab, 0, 0)
	if r.X != 500 || r.Y != 500 {
		t.Errorf("busy rabbit moved to (%g, %g)", r.X, r.Y)
	}
}

func TestContentRabbitWandersInBounds(t *testing.T) {
	hab := &stubHabitat{width: 400, height: 400}
	r := newTestRabbit(200, 200)

	for i := 0; i < 3600; i++ {
		r.Update(1.0/60, hab, 0, 0)

		if r.X < BoundsMargin-WanderArriveDist || r.X > hab.width-BoundsMargin+WanderArriveDist {
			t.Fatalf("tick %d: rabbit X = %g, outside the wander margin", i, r.X)
		}
		if r.Y < BoundsMargin-WanderArriveDist || r.Y > hab.height-BoundsMargin+WanderArriveDist {
			t.Fatalf("tick %d: rabbit Y = %g, outside the wander margin", i, r.Y)
		}
	}
}
