package game

// Camera tracks the viewport position for scrolling the prison scene.
// X and Y are the top-left corner of the viewport in world coordinates.
type Camera struct {
	X, Y float64
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
