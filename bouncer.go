package main

// Rectangle constants
const (
	RectSize   = 50.0
	RectY      = 100.0
	StartX     = 50.0
	StartSpeed = 2.0
)

// Viewport is the drawing area, fixed at startup
type Viewport struct {
	Width, Height float64
}

// Body holds the moving rectangle's state between frames
type Body struct {
	X     float64 // Left edge
	Speed float64 // Signed horizontal velocity, pixels per frame
}

// NewBody returns the rectangle in its starting state
func NewBody() Body {
	return Body{X: StartX, Speed: StartSpeed}
}

// Advance moves the body one frame and reflects its speed at the edges.
// The bounds check runs on the moved position, so the body may overshoot
// an edge by up to |Speed| before turning around. Touching the right edge
// exactly does not reflect.
func Advance(b Body, vp Viewport) Body {
	b.X += b.Speed
	if b.X+RectSize > vp.Width || b.X < 0 {
		b.Speed = -b.Speed
	}
	return b
}
