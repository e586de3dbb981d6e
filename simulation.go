package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	RectColor       = color.RGBA{255, 0, 0, 255}
)

// Simulation struct: Holds the game state
type Simulation struct {
	Viewport Viewport
	Body     Body
	Frames   int  // Frames painted so far
	painted  bool // Current body has been drawn and may advance
}

// NewSimulation creates a new simulation sized to the viewport
func NewSimulation(width, height float64) *Simulation {
	return &Simulation{
		Viewport: Viewport{Width: width, Height: height},
		Body:     NewBody(),
	}
}

// Render paints one frame: background first, then the rectangle
func (s *Simulation) Render(dst Surface) {
	dst.Fill(BackgroundColor)
	dst.FillRect(s.Body.X, RectY, RectSize, RectSize, RectColor)
}

// Frame renders the current state, then advances it
func (s *Simulation) Frame(dst Surface) {
	s.Render(dst)
	s.Body = Advance(s.Body, s.Viewport)
	s.Frames++
}

// Update is called each tick by Ebitengine.
// Ebitengine calls Update before Draw, so the body advances only once the
// previous state has been painted. This keeps paint-then-move ordering.
func (s *Simulation) Update() error {
	if s.painted {
		s.Body = Advance(s.Body, s.Viewport)
		s.painted = false
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	s.Render(screenSurface{img: screen})
	s.painted = true
	s.Frames++
}

// Layout returns the viewport size; window resizes are ignored
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(s.Viewport.Width), int(s.Viewport.Height)
}
