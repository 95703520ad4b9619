package world

// GridSize is the placement grid spacing in pixels. Blocks snap to it and
// the floor grid overlay is drawn at the same spacing.
const GridSize = 50

// BlockType identifies the type of a placed block.
type BlockType string

const (
	BlockWall  BlockType = "wall"
	BlockDoor  BlockType = "door"
	BlockFood  BlockType = "food"
	BlockWater BlockType = "water"
)

// Valid reports whether the block type is one the game knows.
func (t BlockType) Valid() bool {
	switch t {
	case BlockWall, BlockDoor, BlockFood, BlockWater:
		return true
	default:
		return false
	}
}

// Block is a placed block occupying one grid cell. X and Y are the top-left
// corner, snapped to the grid.
type Block struct {
	X, Y float64
	Type BlockType

	// Open applies to doors only.
	Open bool
}

// NewBlock creates a block at a grid-snapped position.
func NewBlock(x, y float64, t BlockType) *Block {
	return &Block{X: snap(x), Y: snap(y), Type: t}
}

// Rect returns the block's bounding rectangle.
func (b *Block) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: GridSize, H: GridSize}
}

// InteractionPoint returns where a character stands to use the block.
func (b *Block) InteractionPoint() (x, y float64) {
	return b.X + GridSize/2, b.Y + GridSize/2
}

// Obstructs reports whether the block blocks movement in its current state.
// Open doors and food/water facilities can be walked through.
func (b *Block) Obstructs() bool {
	switch b.Type {
	case BlockWall:
		return true
	case BlockDoor:
		return !b.Open
	default:
		return false
	}
}

// snap rounds a coordinate down to the placement grid.
func snap(v float64) float64 {
	n := int(v) / GridSize
	if v < 0 && float64(n*GridSize) > v {
		n--
	}
	return float64(n * GridSize)
}

// Rect is an axis-aligned rectangle with a top-left corner and a size.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
