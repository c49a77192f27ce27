// internal/ui/menu_button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuButton — крупная кнопка меню с подписью и подсказкой под ней.
type MenuButton struct {
	X, Y, W, H float32
	Text       string
	Hint       string
	Selected   bool
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(x, y, w, h float32, text, hint string) *MenuButton {
	return &MenuButton{X: x, Y: y, W: w, H: h, Text: text, Hint: hint}
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	bg := color.RGBA{60, 60, 80, 255}
	if b.Selected {
		bg = color.RGBA{70, 130, 180, 255}
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, color.RGBA{200, 200, 200, 255}, true)

	DrawTextCentered(screen, b.Text, int(b.X+b.W/2), int(b.Y+b.H/2), color.White)
	DrawTextCentered(screen, b.Hint, int(b.X+b.W/2), int(b.Y+b.H+14), color.RGBA{150, 150, 170, 255})
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *MenuButton) IsClicked(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}
