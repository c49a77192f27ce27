package track

import (
	"errors"
	"math"
	"testing"

	"layer-defense/internal/config"
)

const eps = 1e-9

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func lShape(t *testing.T) *Path {
	t.Helper()
	p, err := Build([]Point{{0, 0}, {100, 0}, {100, 50}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func TestBuildRejectsDegeneratePaths(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"empty", nil},
		{"single point", []Point{{1, 1}}},
		{"all coincide", []Point{{5, 5}, {5, 5}, {5, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.pts)
			if !errors.Is(err, ErrInvalidPath) {
				t.Fatalf("expected ErrInvalidPath, got %v", err)
			}
		})
	}
}

func TestTotalLength(t *testing.T) {
	p := lShape(t)
	if p.TotalLength() != 150 {
		t.Errorf("expected length 150, got %v", p.TotalLength())
	}
}

func TestPositionAtProgressEndpoints(t *testing.T) {
	p := lShape(t)
	tests := []struct {
		progress float64
		want     Point
	}{
		{-0.5, Point{0, 0}},
		{0, Point{0, 0}},
		{1, Point{100, 50}},
		{1.7, Point{100, 50}},
		{0.5, Point{75, 0}},
		{2.0 / 3.0, Point{100, 0}},
		{0.9, Point{100, 35}},
	}
	for _, tt := range tests {
		got := p.PositionAtProgress(tt.progress)
		if !near(got, tt.want) {
			t.Errorf("PositionAtProgress(%v) = %+v, want %+v", tt.progress, got, tt.want)
		}
	}
}

func TestPositionIsContinuousAtCorners(t *testing.T) {
	p := lShape(t)
	boundary := 100.0 / 150.0
	before := p.PositionAtProgress(boundary - 1e-12)
	at := p.PositionAtProgress(boundary)
	after := p.PositionAtProgress(boundary + 1e-12)
	corner := Point{100, 0}
	for _, got := range []Point{before, at, after} {
		if math.Abs(got.X-corner.X) > 1e-6 || math.Abs(got.Y-corner.Y) > 1e-6 {
			t.Errorf("expected %+v near corner, got %+v", corner, got)
		}
	}
}

func TestPositionIsMonotonic(t *testing.T) {
	cfg := config.Default()
	p, err := New(cfg, config.ScreenWidth, config.ScreenHeight)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	const steps = 2000
	stepLength := p.TotalLength() / steps
	prev := p.PositionAtProgress(0)
	travelled := 0.0
	for i := 1; i <= steps; i++ {
		cur := p.PositionAtProgress(float64(i) / steps)
		d := math.Hypot(cur.X-prev.X, cur.Y-prev.Y)
		if d <= 0 || d > stepLength+1e-6 {
			t.Fatalf("step %d moved %v, want (0, %v]", i, d, stepLength)
		}
		travelled += d
		prev = cur
	}
	// chords cut corners, so the sum can only fall slightly short of the length
	if travelled > p.TotalLength()+1e-6 || travelled < p.TotalLength()*0.99 {
		t.Errorf("travelled %v, track length %v", travelled, p.TotalLength())
	}
}

func TestZeroLengthSegmentsAreSkipped(t *testing.T) {
	p, err := Build([]Point{{0, 0}, {10, 0}, {10, 0}, {10, 10}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := p.PositionAtProgress(0.75)
	if !near(got, Point{10, 5}) {
		t.Errorf("expected {10 5}, got %+v", got)
	}
}

func TestDegeneratePathDoesNotDivideByZero(t *testing.T) {
	p := &Path{waypoints: []Point{{3, 4}, {3, 4}}, segments: []float64{0}}
	for _, progress := range []float64{0, 0.5, 1} {
		got := p.PositionAtProgress(progress)
		if got != (Point{3, 4}) {
			t.Errorf("PositionAtProgress(%v) = %+v, want {3 4}", progress, got)
		}
	}
}

func TestBuildRelativeScalesByViewport(t *testing.T) {
	p, err := BuildRelative([]Point{{0, 0.5}, {1, 0.5}}, 800, 400)
	if err != nil {
		t.Fatalf("BuildRelative: %v", err)
	}
	if p.TotalLength() != 800 {
		t.Errorf("expected length 800, got %v", p.TotalLength())
	}
	if got := p.PositionAtProgress(0.25); !near(got, Point{200, 200}) {
		t.Errorf("expected {200 200}, got %+v", got)
	}
}

func TestNewMatchesClassicTrack(t *testing.T) {
	p, err := New(config.Default(), config.ScreenWidth, config.ScreenHeight)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wps := p.Waypoints()
	if !near(wps[0], Point{-30, 100}) || !near(wps[len(wps)-1], Point{930, 300}) {
		t.Errorf("unexpected endpoints %+v .. %+v", wps[0], wps[len(wps)-1])
	}

	wps[0] = Point{999, 999}
	if near(p.Waypoints()[0], Point{999, 999}) {
		t.Error("Waypoints must return a copy")
	}
}
