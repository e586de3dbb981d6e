package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the subset of a 2D canvas the renderer paints with
type Surface interface {
	Fill(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
}

// screenSurface paints onto an Ebitengine image
type screenSurface struct {
	img *ebiten.Image
}

func (s screenSurface) Fill(c color.Color) {
	s.img.Fill(c)
}

func (s screenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}
