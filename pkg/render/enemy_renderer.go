// pkg/render/enemy_renderer.go
package render

import (
	"image/color"

	"layer-defense/internal/component"
	"layer-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LayerSquare is one concentric shell of an enemy sprite.
type LayerSquare struct {
	X, Y, Size float64
	Color      color.RGBA
}

// LayerSquares returns the shells of an enemy from the outermost inwards.
// Each lost layer shrinks the sprite by size/MaxLayers, so a damaged enemy
// keeps the colors of its inner shells.
func LayerSquares(e *component.Enemy, size float64) []LayerSquare {
	if !e.Alive() || e.Layers <= 0 || e.MaxLayers <= 0 {
		return nil
	}

	colors := lookColors(e.Type.Look)
	step := size / float64(e.MaxLayers)
	lost := e.MaxLayers - e.Layers

	out := make([]LayerSquare, 0, e.Layers)
	for j := 0; j < e.Layers; j++ {
		shell := lost + j
		out = append(out, LayerSquare{
			X:     e.Position.X,
			Y:     e.Position.Y,
			Size:  size - float64(shell)*step,
			Color: colors[shell%len(colors)],
		})
	}
	return out
}

func lookColors(look defs.Look) []color.RGBA {
	switch l := look.(type) {
	case defs.Solid:
		return []color.RGBA{l.Color}
	case defs.Striped:
		if len(l.Stripes) > 0 {
			return l.Stripes
		}
	}
	return []color.RGBA{{255, 0, 255, 255}}
}

// DrawEnemy paints the enemy as concentric squares, outermost first.
func DrawEnemy(screen *ebiten.Image, e *component.Enemy, size float64) {
	for _, sq := range LayerSquares(e, size) {
		x := float32(sq.X - sq.Size/2)
		y := float32(sq.Y - sq.Size/2)
		s := float32(sq.Size)
		vector.DrawFilledRect(screen, x, y, s, s, sq.Color, false)
		vector.StrokeRect(screen, x, y, s, s, 1, DarkenColor(sq.Color), false)
	}
}

// DrawSwatch draws a small sample of a look, used by the preview panel.
func DrawSwatch(screen *ebiten.Image, look defs.Look, x, y, size float32) {
	colors := lookColors(look)
	stripe := size / float32(len(colors))
	for i, c := range colors {
		vector.DrawFilledRect(screen, x+float32(i)*stripe, y, stripe, size, c, false)
	}
	vector.StrokeRect(screen, x, y, size, size, 1, color.RGBA{0, 0, 0, 120}, false)
}
