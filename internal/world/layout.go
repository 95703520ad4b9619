package world

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SamuelWeese/rabbit-prison/internal/entity"
	"github.com/SamuelWeese/rabbit-prison/internal/item"
)

// Spawn is a world position in a layout file.
type Spawn struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WallDef defines a static wall rectangle in a layout file.
type WallDef struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BlockDef defines a pre-placed block in a layout file.
type BlockDef struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Type string  `yaml:"type"`
}

// ItemDef defines a loose item in a layout file.
type ItemDef struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Kind string  `yaml:"kind"`
}

// Layout describes the initial scene: world size, spawns, static walls,
// pre-placed blocks and loose items.
type Layout struct {
	Name        string     `yaml:"name"`
	Width       float64    `yaml:"width"`
	Height      float64    `yaml:"height"`
	WardenSpawn Spawn      `yaml:"warden_spawn"`
	Rabbits     []Spawn    `yaml:"rabbits"`
	Walls       []WallDef  `yaml:"walls"`
	Blocks      []BlockDef `yaml:"blocks"`
	Items       []ItemDef  `yaml:"items"`
}

// LoadLayout loads a layout from a YAML file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout file %s: %w", path, err)
	}

	if err := validateLayout(&layout); err != nil {
		return nil, fmt.Errorf("invalid layout in %s: %w", path, err)
	}

	return &layout, nil
}

// validateLayout checks if the layout is usable.
func validateLayout(l *Layout) error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid world dimensions: %gx%g", l.Width, l.Height)
	}

	if !inBounds(l.WardenSpawn.X, l.WardenSpawn.Y, l) {
		return fmt.Errorf("warden spawn out of bounds: (%g, %g)", l.WardenSpawn.X, l.WardenSpawn.Y)
	}

	for i, s := range l.Rabbits {
		if !inBounds(s.X, s.Y, l) {
			return fmt.Errorf("rabbit spawn %d out of bounds: (%g, %g)", i, s.X, s.Y)
		}
	}

	for i, w := range l.Walls {
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("wall %d has invalid size: %gx%g", i, w.Width, w.Height)
		}
	}

	for i, b := range l.Blocks {
		if !BlockType(b.Type).Valid() {
			return fmt.Errorf("block %d has unknown type %q", i, b.Type)
		}
	}

	for i, it := range l.Items {
		switch item.Kind(it.Kind) {
		case item.KindShotgun, item.KindKey:
		default:
			return fmt.Errorf("item %d has unknown kind %q", i, it.Kind)
		}
	}

	return nil
}

func inBounds(x, y float64, l *Layout) bool {
	return x >= 0 && x <= l.Width && y >= 0 && y <= l.Height
}

// DefaultLayout returns the built-in prison layout: an open 2000x2000 yard
// with six rabbit cells, three food tables, two water fountains and a few
// dropped keys.
func DefaultLayout() *Layout {
	return &Layout{
		Name:        "prison_yard",
		Width:       2000,
		Height:      2000,
		WardenSpawn: Spawn{X: 1000, Y: 500},
		Rabbits: []Spawn{
			{X: 150, Y: 150},
			{X: 370, Y: 150},
			{X: 590, Y: 150},
			{X: 150, Y: 370},
			{X: 370, Y: 370},
			{X: 590, Y: 370},
		},
		Blocks: []BlockDef{
			{X: 300, Y: 300, Type: string(BlockFood)},
			{X: 700, Y: 300, Type: string(BlockFood)},
			{X: 1100, Y: 300, Type: string(BlockFood)},
			{X: 500, Y: 500, Type: string(BlockWater)},
			{X: 900, Y: 500, Type: string(BlockWater)},
		},
		Items: []ItemDef{
			{X: 500, Y: 300, Kind: string(item.KindKey)},
			{X: 800, Y: 400, Kind: string(item.KindKey)},
			{X: 1200, Y: 600, Kind: string(item.KindKey)},
		},
	}
}

// New builds a world from a layout. Rabbits start with randomized needs so
// they do not all rush the same facility at once.
func New(layout *Layout, rng *rand.Rand) *World {
	w := &World{
		width:  layout.Width,
		height: layout.Height,
	}

	for _, wd := range layout.Walls {
		w.Walls = append(w.Walls, Wall{Rect: Rect{X: wd.X, Y: wd.Y, W: wd.Width, H: wd.Height}})
	}

	for _, bd := range layout.Blocks {
		w.Blocks = append(w.Blocks, NewBlock(bd.X, bd.Y, BlockType(bd.Type)))
	}

	w.Warden = entity.NewWarden(layout.WardenSpawn.X, layout.WardenSpawn.Y)

	for _, s := range layout.Rabbits {
		r := entity.NewRabbit(s.X, s.Y, rng)
		r.Food = 50 + rng.Float64()*50
		r.Water = 50 + rng.Float64()*50
		r.Sleep = 50 + rng.Float64()*50
		w.Rabbits = append(w.Rabbits, r)
	}

	for _, id := range layout.Items {
		w.Items = append(w.Items, item.New(item.Kind(id.Kind), id.X, id.Y))
	}

	return w
}
