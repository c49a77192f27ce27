// internal/ui/button.go
package ui

import (
	"math"
	"time"

	"layer-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную прямоугольную кнопку в UI.
type Button struct {
	X, Y, W, H    float32
	Label         string
	Enabled       bool
	LastClickTime time.Time
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float32, label string) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label, Enabled: true}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

// HandleClick returns true and plays the press pulse when an enabled button is hit.
func (b *Button) HandleClick(x, y int) bool {
	if !b.Enabled || !b.Contains(x, y) {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	shrink := float32(2 * math.Exp(-elapsed*8))

	bg := config.ButtonColor
	mx, my := ebiten.CursorPosition()
	switch {
	case !b.Enabled:
		bg = config.ButtonDisabled
	case b.Contains(mx, my):
		bg = config.ButtonHoverColor
	}

	x, y, w, h := b.X+shrink, b.Y+shrink, b.W-2*shrink, b.H-2*shrink
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.UIBorderColor, true)

	textColor := config.TextLightColor
	if !b.Enabled {
		textColor = config.TextDimColor
	}
	DrawTextCentered(screen, b.Label, int(b.X+b.W/2), int(b.Y+b.H/2), textColor)
}
