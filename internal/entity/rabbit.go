package entity

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// Need levels and rates, all on a 0..100 scale, in units per second.
const (
	NeedMax = 100.0

	FoodDecayRate  = 0.5
	WaterDecayRate = 0.8
	SleepDecayRate = 0.3

	EatRestoreRate   = 25.0
	DrinkRestoreRate = 50.0
	SleepRestoreRate = 20.0

	EatDuration   = 2.0
	DrinkDuration = 1.0
)

// Behavior thresholds and ranges, in pixels unless noted.
const (
	SeekFoodThreshold  = 30.0
	SeekWaterThreshold = 30.0
	SeekSleepThreshold = 20.0

	FacilityRange    = 30.0 // close enough to use a food/water block
	SleepSpotRange   = 20.0 // close enough to lie down
	WanderArriveDist = 15.0

	WanderMinDist = 50.0
	WanderMaxDist = 150.0
	WanderMinWait = 1.0 // seconds
	WanderMaxWait = 3.0 // seconds

	BoundsMargin = 50.0 // rabbits keep this far inside the world edges
)

// RabbitSpeed is the base rabbit movement speed. Hunger and thirst slow
// rabbits down below it.
const RabbitSpeed = 1.0

// Habitat is the rabbit's view of the world: collision, bounds and the
// facilities it can seek out. Implemented by the world.
type Habitat interface {
	Obstacles

	// Size returns the world dimensions in pixels.
	Size() (width, height float64)

	// NearestFoodPoint returns the interaction point of the nearest food
	// block within seeking range of (x, y), if any.
	NearestFoodPoint(x, y float64) (px, py float64, ok bool)

	// NearestWaterPoint returns the interaction point of the nearest water
	// block within seeking range of (x, y), if any.
	NearestWaterPoint(x, y float64) (px, py float64, ok bool)
}

// Rabbit is a prisoner. On top of the base character it tracks needs that
// decay over time and drive its behavior: seeking food and water, sleeping,
// and wandering its cell otherwise.
type Rabbit struct {
	Character

	// Needs, 0 (desperate) to 100 (satisfied).
	Food  float64
	Water float64
	Sleep float64

	// Current action. At most one is true at a time.
	Eating   bool
	Drinking bool
	Sleeping bool

	// Remaining seconds of the current action.
	ActionTimer float64

	// Wander state: a random target to stroll to, then a pause.
	wanderTargetX float64
	wanderTargetY float64
	hasWanderGoal bool
	waiting       bool
	waitTimer     float64

	rng *rand.Rand
}

// NewRabbit creates a rabbit at a world position with full needs.
func NewRabbit(x, y float64, rng *rand.Rand) *Rabbit {
	return &Rabbit{
		Character: Character{
			ID:    uuid.NewString(),
			Kind:  KindRabbit,
			X:     x,
			Y:     y,
			Size:  CharacterSize,
			Speed: RabbitSpeed,
		},
		Food:  NeedMax,
		Water: NeedMax,
		Sleep: NeedMax,
		rng:   rng,
	}
}

// UpdateNeeds advances need decay, action restoration and the action timer
// by dt seconds, and rescales the rabbit's speed from its condition.
func (r *Rabbit) UpdateNeeds(dt float64) {
	if !r.Eating {
		r.Food = math.Max(0, r.Food-FoodDecayRate*dt)
	}
	if !r.Drinking {
		r.Water = math.Max(0, r.Water-WaterDecayRate*dt)
	}
	if !r.Sleeping {
		r.Sleep = math.Max(0, r.Sleep-SleepDecayRate*dt)
	}

	if r.Eating {
		r.Food = math.Min(NeedMax, r.Food+EatRestoreRate*dt)
	}
	if r.Drinking {
		r.Water = math.Min(NeedMax, r.Water+DrinkRestoreRate*dt)
	}
	if r.Sleeping {
		r.Sleep = math.Min(NeedMax, r.Sleep+SleepRestoreRate*dt)
	}

	if r.Eating || r.Drinking || r.Sleeping {
		r.ActionTimer -= dt
		if r.ActionTimer <= 0 {
			if r.Sleeping && r.Sleep < NeedMax {
				// Not rested yet, keep sleeping until the deficit is gone.
				r.ActionTimer = (NeedMax - r.Sleep) / SleepRestoreRate
			} else {
				r.Eating = false
				r.Drinking = false
				r.Sleeping = false
			}
		}
	}

	// Hungry or thirsty rabbits slow down.
	switch {
	case r.Food < 10 || r.Water < 10:
		r.Speed = RabbitSpeed * 0.5
	case r.Food < 30 || r.Water < 30:
		r.Speed = RabbitSpeed * 0.75
	default:
		r.Speed = RabbitSpeed
	}
}

// StartEating begins an eating action.
func (r *Rabbit) StartEating() {
	r.Eating = true
	r.Drinking = false
	r.Sleeping = false
	r.ActionTimer = EatDuration
}

// StartDrinking begins a drinking action.
func (r *Rabbit) StartDrinking() {
	r.Drinking = true
	r.Eating = false
	r.Sleeping = false
	r.ActionTimer = DrinkDuration
}

// StartSleeping begins sleeping. The duration covers the full sleep deficit.
func (r *Rabbit) StartSleeping() {
	r.Sleeping = true
	r.Eating = false
	r.Drinking = false
	r.ActionTimer = (NeedMax - r.Sleep) / SleepRestoreRate
}

// Busy reports whether the rabbit is occupied with an action and should
// hold position.
func (r *Rabbit) Busy() bool {
	return r.Eating || r.Drinking || r.Sleeping
}

// Update runs one behavior tick: needs first, then either the current
// action, seeking a facility or sleep spot, or wandering.
func (r *Rabbit) Update(dt float64, hab Habitat, wardenX, wardenY float64) {
	r.FrameCount++
	r.UpdateNeeds(dt)
	if r.Busy() {
		return
	}

	worldW, worldH := hab.Size()

	var destX, destY float64
	seeking := false

	if r.Food < SeekFoodThreshold {
		if px, py, ok := hab.NearestFoodPoint(r.X, r.Y); ok {
			if math.Hypot(px-r.X, py-r.Y) < FacilityRange {
				r.StartEating()
				r.resetWander()
				return
			}
			destX, destY = px, py
			seeking = true
			r.resetWander()
		}
	}

	// Thirst takes precedence over hunger when both are low.
	if r.Water < SeekWaterThreshold {
		if px, py, ok := hab.NearestWaterPoint(r.X, r.Y); ok {
			if math.Hypot(px-r.X, py-r.Y) < FacilityRange {
				r.StartDrinking()
				r.resetWander()
				return
			}
			destX, destY = px, py
			seeking = true
			r.resetWander()
		}
	}

	if !seeking && r.Sleep < SeekSleepThreshold {
		// Pick a spot away from the warden to doze.
		sx := clamp(r.X+(r.X-wardenX)*0.3, BoundsMargin, worldW-BoundsMargin)
		sy := clamp(r.Y+(r.Y-wardenY)*0.3, BoundsMargin, worldH-BoundsMargin)
		if math.Hypot(sx-r.X, sy-r.Y) < SleepSpotRange {
			r.StartSleeping()
			r.resetWander()
			return
		}
		destX, destY = sx, sy
		seeking = true
		r.resetWander()
	}

	if seeking {
		r.MoveTowards(destX, destY, hab)
		return
	}

	r.wander(dt, hab, worldW, worldH)
}

// wander strolls to random nearby points with pauses in between.
func (r *Rabbit) wander(dt float64, hab Habitat, worldW, worldH float64) {
	if r.waiting {
		r.waitTimer -= dt
		if r.waitTimer <= 0 {
			r.waiting = false
			r.pickWanderGoal(worldW, worldH)
		}
		return
	}

	if !r.hasWanderGoal {
		r.pickWanderGoal(worldW, worldH)
	}

	if math.Hypot(r.wanderTargetX-r.X, r.wanderTargetY-r.Y) < WanderArriveDist {
		r.waiting = true
		r.waitTimer = WanderMinWait + r.rng.Float64()*(WanderMaxWait-WanderMinWait)
		r.hasWanderGoal = false
		return
	}

	r.MoveTowards(r.wanderTargetX, r.wanderTargetY, hab)
}

func (r *Rabbit) pickWanderGoal(worldW, worldH float64) {
	angle := r.rng.Float64() * 2 * math.Pi
	dist := WanderMinDist + r.rng.Float64()*(WanderMaxDist-WanderMinDist)
	r.wanderTargetX = clamp(r.X+math.Cos(angle)*dist, BoundsMargin, worldW-BoundsMargin)
	r.wanderTargetY = clamp(r.Y+math.Sin(angle)*dist, BoundsMargin, worldH-BoundsMargin)
	r.hasWanderGoal = true
}

func (r *Rabbit) resetWander() {
	r.hasWanderGoal = false
	r.waiting = false
	r.waitTimer = 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
