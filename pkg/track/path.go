// pkg/track/path.go
package track

import (
	"errors"
	"fmt"

	"layer-defense/internal/config"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidPath is returned when a waypoint list cannot form a track.
var ErrInvalidPath = errors.New("invalid path")

// Point is a position in screen pixels.
type Point struct {
	X, Y float64
}

func (p Point) vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

func pointOf(v mgl64.Vec2) Point {
	return Point{X: v.X(), Y: v.Y()}
}

// Path is an immutable polyline that enemies walk from the first waypoint to the last.
// A resize produces a new Path; existing values are never changed.
type Path struct {
	waypoints   []Point
	segments    []float64
	totalLength float64
}

// Build creates a Path from pixel waypoints.
func Build(waypoints []Point) (*Path, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 waypoints, got %d", ErrInvalidPath, len(waypoints))
	}

	pts := make([]Point, len(waypoints))
	copy(pts, waypoints)

	segments := make([]float64, len(pts)-1)
	total := 0.0
	for i := 1; i < len(pts); i++ {
		segments[i-1] = pts[i].vec().Sub(pts[i-1].vec()).Len()
		total += segments[i-1]
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: all %d waypoints coincide", ErrInvalidPath, len(pts))
	}

	return &Path{waypoints: pts, segments: segments, totalLength: total}, nil
}

// BuildRelative scales fractional waypoints by the viewport size and builds the Path.
func BuildRelative(fractions []Point, width, height float64) (*Path, error) {
	pts := make([]Point, len(fractions))
	for i, f := range fractions {
		pts[i] = Point{X: f.X * width, Y: f.Y * height}
	}
	return Build(pts)
}

// New builds the configured track for a viewport of the given size.
// Absolute tracks ignore the viewport.
func New(cfg *config.Config, width, height float64) (*Path, error) {
	pts := make([]Point, len(cfg.Waypoints))
	for i, w := range cfg.Waypoints {
		pts[i] = Point{X: w.X, Y: w.Y}
	}
	if cfg.RelativeTrack {
		return BuildRelative(pts, width, height)
	}
	return Build(pts)
}

// PositionAtProgress maps progress along the track to a point.
// Progress at or below 0 yields the first waypoint, at or above 1 the last one.
func (p *Path) PositionAtProgress(progress float64) Point {
	first := p.waypoints[0]
	last := p.waypoints[len(p.waypoints)-1]

	if progress <= 0 || p.totalLength == 0 {
		return first
	}
	if progress >= 1 {
		return last
	}

	target := progress * p.totalLength
	walked := 0.0
	for i, length := range p.segments {
		if length == 0 {
			continue
		}
		if target <= walked+length {
			from := p.waypoints[i].vec()
			to := p.waypoints[i+1].vec()
			t := (target - walked) / length
			return pointOf(from.Add(to.Sub(from).Mul(t)))
		}
		walked += length
	}

	return last
}

// Waypoints returns a copy of the track corners for drawing.
func (p *Path) Waypoints() []Point {
	out := make([]Point, len(p.waypoints))
	copy(out, p.waypoints)
	return out
}

// TotalLength is the summed length of all segments in pixels.
func (p *Path) TotalLength() float64 {
	return p.totalLength
}
