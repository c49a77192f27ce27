// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"layer-defense/internal/config"
	"layer-defense/internal/system"
	"layer-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const previewMaxRows = 12

// InfoPanel — панель справа: открытые типы врагов и счётчики.
type InfoPanel struct {
	X, Y      float32
	Width     float32
	IsVisible bool
}

func NewInfoPanel(x, y, width float32) *InfoPanel {
	return &InfoPanel{X: x, Y: y, Width: width, IsVisible: true}
}

func (p *InfoPanel) Toggle() {
	p.IsVisible = !p.IsVisible
}

// previewLine formats one row of the preview list.
func previewLine(tp system.TypePreview) string {
	return fmt.Sprintf("%-14s L%d %4.1fs", tp.Type.Name, tp.Type.Layers, tp.IntervalMs/1000)
}

// visibleRows keeps the newest unlocked types when the list is too long.
func visibleRows(previews []system.TypePreview) ([]system.TypePreview, int) {
	if len(previews) <= previewMaxRows {
		return previews, 0
	}
	hidden := len(previews) - previewMaxRows
	return previews[hidden:], hidden
}

func (p *InfoPanel) Draw(screen *ebiten.Image, previews []system.TypePreview, stats system.Stats) {
	if !p.IsVisible {
		return
	}
	rows, hidden := visibleRows(previews)
	height := float32(config.HUDPadding*2 + (len(rows)+4)*config.PreviewRowStep)
	vector.DrawFilledRect(screen, p.X, p.Y, p.Width, height, render.WithAlpha(config.BackgroundColor, 200), false)
	vector.StrokeRect(screen, p.X, p.Y, p.Width, height, 1, config.UIBorderColor, false)

	x := int(p.X) + config.HUDPadding
	y := int(p.Y) + config.HUDPadding
	DrawText(screen, fmt.Sprintf("Unlocked: %d", len(previews)), x, y, config.TextLightColor)
	y += config.PreviewRowStep
	if hidden > 0 {
		DrawText(screen, fmt.Sprintf("... +%d earlier", hidden), x, y, config.TextDimColor)
		y += config.PreviewRowStep
	}
	for _, tp := range rows {
		render.DrawSwatch(screen, tp.Type.Look, float32(x), float32(y), config.PreviewSwatch)
		DrawText(screen, previewLine(tp), x+config.PreviewSwatch+6, y, config.TextLightColor)
		y += config.PreviewRowStep
	}
	y += config.PreviewRowStep / 2
	DrawText(screen, fmt.Sprintf("spawned %d  popped %d", stats.Spawned, stats.Destroyed), x, y, config.TextDimColor)
	y += config.PreviewRowStep
	DrawText(screen, fmt.Sprintf("leaked %d (%d layers)", stats.Leaked, stats.LeakedLayers), x, y, config.TextDimColor)
}
