package ui

import (
	"image/color"
	"strconv"
	"strings"

	"layer-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// waveLabel — "Wave 7 (VII)"; для больших номеров римская запись не нужна.
func waveLabel(wave int) string {
	label := "Wave " + strconv.Itoa(wave)
	if wave > 0 && wave < 4000 {
		label += " (" + toRoman(wave) + ")"
	}
	return label
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int, inProgress bool) {
	if wave <= 0 {
		return
	}
	label := waveLabel(wave)
	if !inProgress {
		label += "  [N] next"
	}

	// Рисуем обводку
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(screen, label, i.X+dx, i.Y+dy, i.OutlineColor)
		}
	}
	DrawText(screen, label, i.X, i.Y, i.Color)
}
