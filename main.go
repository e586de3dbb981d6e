package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Fallback size when the monitor cannot be queried
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

func main() {
	width, height := DefaultWidth, DefaultHeight
	if m := ebiten.Monitor(); m != nil {
		if w, h := m.Size(); w > 0 && h > 0 {
			width, height = w, h
		}
	}

	sim := NewSimulation(float64(width), float64(height))

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Bouncing Rectangle")
	ebiten.SetTPS(ebiten.SyncWithFPS) // One update per displayed frame

	if err := ebiten.RunGame(sim); err != nil {
		log.Fatal(err)
	}
}
