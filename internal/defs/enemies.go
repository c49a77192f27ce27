// internal/defs/enemies.go
package defs

import "image/color"

// Look is how an enemy type is painted. It is either Solid or Striped.
type Look interface {
	// Colors returns the palette in paint order; Solid has exactly one entry.
	Colors() []color.RGBA
	isLook()
}

// Solid paints every layer with one color.
type Solid struct {
	Color color.RGBA
}

func (s Solid) Colors() []color.RGBA { return []color.RGBA{s.Color} }
func (Solid) isLook()                {}

// Striped paints layers alternating through its colors.
type Striped struct {
	Stripes []color.RGBA
}

func (s Striped) Colors() []color.RGBA {
	out := make([]color.RGBA, len(s.Stripes))
	copy(out, s.Stripes)
	return out
}
func (Striped) isLook() {}

// EnemyType holds all the static data for a specific type of enemy.
// Index is the position in the catalog, which is also the unlock order.
type EnemyType struct {
	Index  int
	Name   string
	Look   Look
	Layers int
}
