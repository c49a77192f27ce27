// pkg/render/track_renderer.go
package render

import (
	"image"
	"image/color"

	"layer-defense/pkg/track"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TrackColors holds the colors needed to render the static track.
type TrackColors struct {
	Background color.RGBA
	Track      color.RGBA
	Border     color.RGBA
}

// TrackRenderer pre-renders the track into an image and redraws it only when
// the path or the screen size changes.
type TrackRenderer struct {
	colors     TrackColors
	trackWidth float32
	whiteImg   *ebiten.Image
	vs         []ebiten.Vertex
	is         []uint16
	trackImage *ebiten.Image // предрендеренная трасса
	path       *track.Path
}

func NewTrackRenderer(colors TrackColors, trackWidth float64) *TrackRenderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &TrackRenderer{
		colors:     colors,
		trackWidth: float32(trackWidth),
		whiteImg:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vs:         make([]ebiten.Vertex, 0, 256),
		is:         make([]uint16, 0, 384),
	}
}

// Draw paints the background and the track. The cached image is rebuilt when
// path is a new instance or the screen was resized.
func (r *TrackRenderer) Draw(screen *ebiten.Image, path *track.Path) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if r.trackImage == nil || r.path != path || r.trackImage.Bounds().Dx() != w || r.trackImage.Bounds().Dy() != h {
		r.renderTrackImage(path, w, h)
	}
	screen.DrawImage(r.trackImage, nil)
}

func (r *TrackRenderer) renderTrackImage(path *track.Path, w, h int) {
	if r.trackImage != nil {
		r.trackImage.Deallocate()
	}
	r.trackImage = ebiten.NewImage(w, h)
	r.path = path

	r.trackImage.Fill(r.colors.Background)
	// Сначала обводка, затем сама дорога поверх
	r.strokePolyline(r.trackImage, path.Waypoints(), r.trackWidth+6, r.colors.Border)
	r.strokePolyline(r.trackImage, path.Waypoints(), r.trackWidth, r.colors.Track)
}

func (r *TrackRenderer) strokePolyline(target *ebiten.Image, pts []track.Point, width float32, clr color.RGBA) {
	var p vector.Path
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(float32(pt.X), float32(pt.Y))
		} else {
			p.LineTo(float32(pt.X), float32(pt.Y))
		}
	}

	r.vs, r.is = p.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	for i := range r.vs {
		r.vs[i].SrcX = 1
		r.vs[i].SrcY = 1
		r.vs[i].ColorR = float32(clr.R) / 255
		r.vs[i].ColorG = float32(clr.G) / 255
		r.vs[i].ColorB = float32(clr.B) / 255
		r.vs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(r.vs, r.is, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
