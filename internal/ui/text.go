package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face — моноширинный шрифт HUD, не требует файлов ассетов.
var Face font.Face = basicfont.Face7x13

// DrawText draws s with its top-left corner at (x, y).
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	b := text.BoundString(Face, s)
	text.Draw(screen, s, Face, x, y-b.Min.Y, clr)
}

// DrawTextCentered draws s centered on (cx, cy).
func DrawTextCentered(screen *ebiten.Image, s string, cx, cy int, clr color.Color) {
	b := text.BoundString(Face, s)
	text.Draw(screen, s, Face, cx-b.Dx()/2, cy-b.Dy()/2-b.Min.Y, clr)
}
