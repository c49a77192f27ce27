// internal/ui/lives_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"layer-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	livesBarWidth  = 160
	livesBarHeight = 10
	livesSegments  = 20
)

// LivesIndicator отображает оставшиеся жизни полоской из сегментов.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// livesColor: красный, когда осталась четверть жизней или меньше.
func livesColor(lives, maxLives int) color.RGBA {
	if maxLives <= 0 || lives*4 <= maxLives {
		return config.LivesCriticalColor
	}
	return config.LivesColor
}

// filledSegments returns how many of n segments represent lives out of maxLives.
func filledSegments(lives, maxLives, n int) int {
	if maxLives <= 0 || lives <= 0 {
		return 0
	}
	if lives >= maxLives {
		return n
	}
	filled := lives * n / maxLives
	if filled == 0 {
		filled = 1 // последняя жизнь всегда видна
	}
	return filled
}

func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	DrawText(screen, fmt.Sprintf("Lives: %d", lives), int(i.X), int(i.Y), config.TextLightColor)

	barY := i.Y + 18
	segW := float32(livesBarWidth) / livesSegments
	filled := filledSegments(lives, maxLives, livesSegments)
	clr := livesColor(lives, maxLives)
	for j := 0; j < livesSegments; j++ {
		x := i.X + float32(j)*segW
		c := color.Color(color.RGBA{30, 30, 40, 255})
		if j < filled {
			c = clr
		}
		vector.DrawFilledRect(screen, x+1, barY, segW-2, livesBarHeight, c, false)
	}
	vector.StrokeRect(screen, i.X, barY-1, livesBarWidth, livesBarHeight+2, 1, config.UIBorderColor, false)
}

// GetHeight возвращает общую высоту индикатора.
func (i *LivesIndicator) GetHeight() float32 {
	return 18 + livesBarHeight + 2
}
