// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedMultipliers — множители скорости симуляции для состояний кнопки.
var SpeedMultipliers = []float64{1, 2, 4}

var speedButtonColors = []color.Color{
	color.RGBA{70, 130, 180, 220},  // x1
	color.RGBA{220, 60, 60, 220},   // x2
	color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
}

// SpeedButton переключает скорость игры x1 -> x2 -> x4.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	CurrentState  int
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size}
}

// Multiplier returns the current simulation speed factor.
func (b *SpeedButton) Multiplier() float64 {
	return SpeedMultipliers[b.CurrentState]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)
	clr := speedButtonColors[b.CurrentState]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	for _, dx := range []float32{0, offset} {
		var p vector.Path
		p.MoveTo(b.X-width+dx, b.Y-height/2)
		p.LineTo(b.X+dx, b.Y)
		p.LineTo(b.X-width+dx, b.Y+height/2)
		p.Close()
		fillPath(screen, &p, clr)
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Используем круг для определения попадания, так как форма сложная
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(SpeedMultipliers)
	b.LastClickTime = time.Now()
}
