// internal/defs/catalog.go
package defs

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidEnemyType signals a type index outside the catalog. It points at a
// scheduler or unlock-policy bug, so callers must not clamp it away.
var ErrInvalidEnemyType = errors.New("invalid enemy type")

// Catalog is the ordered, read-only list of enemy types.
type Catalog struct {
	types []EnemyType
}

// NewCatalog validates the entries and fixes their Index to the slice position.
func NewCatalog(types []EnemyType) (*Catalog, error) {
	if len(types) == 0 {
		return nil, errors.New("catalog cannot be empty")
	}

	own := make([]EnemyType, len(types))
	for i, t := range types {
		if t.Name == "" {
			return nil, fmt.Errorf("enemy type %d: name cannot be empty", i)
		}
		if t.Layers < 1 {
			return nil, fmt.Errorf("enemy type %q: layers must be at least 1, got %d", t.Name, t.Layers)
		}
		if t.Look == nil || len(t.Look.Colors()) == 0 {
			return nil, fmt.Errorf("enemy type %q: at least one color is required", t.Name)
		}
		t.Index = i
		own[i] = t
	}
	return &Catalog{types: own}, nil
}

// Len returns the number of types.
func (c *Catalog) Len() int {
	return len(c.types)
}

// Type returns the shared entry at index.
func (c *Catalog) Type(index int) (*EnemyType, error) {
	if index < 0 || index >= len(c.types) {
		return nil, fmt.Errorf("%w: index %d, catalog has %d types", ErrInvalidEnemyType, index, len(c.types))
	}
	return &c.types[index], nil
}

// Prefix returns the first n types, clamped to the catalog size.
func (c *Catalog) Prefix(n int) []*EnemyType {
	if n > len(c.types) {
		n = len(c.types)
	}
	if n < 0 {
		n = 0
	}
	out := make([]*EnemyType, n)
	for i := range out {
		out[i] = &c.types[i]
	}
	return out
}

var solidColors = []struct{ name, hex string }{
	{"Red", "#ff0000"},
	{"Blue", "#0066ff"},
	{"Green", "#00cc00"},
	{"Yellow", "#ffcc00"},
	{"Cyan", "#00cccc"},
	{"Magenta", "#cc00cc"},
	{"Orange", "#ff6600"},
	{"Purple", "#6600cc"},
	{"Pink", "#ff66aa"},
	{"White", "#ffffff"},
}

// DefaultCatalog returns the 30 stock types: ten solids with one layer, then
// ten Red/X stripes with two layers, then ten Blue/X stripes with three.
// Same-color combos use a darker shade for the second stripe.
func DefaultCatalog() *Catalog {
	types := make([]EnemyType, 0, 3*len(solidColors))
	for _, sc := range solidColors {
		types = append(types, EnemyType{Name: sc.name, Look: Solid{Color: mustHex(sc.hex)}, Layers: 1})
	}
	types = append(types, combos("Red", "#ff0000", "#aa0000", 2)...)
	types = append(types, combos("Blue", "#0066ff", "#003399", 3)...)

	c, err := NewCatalog(types)
	if err != nil {
		panic(err)
	}
	return c
}

func combos(base, baseHex, darkHex string, layers int) []EnemyType {
	out := make([]EnemyType, 0, len(solidColors))
	for _, sc := range solidColors {
		second := sc.hex
		if sc.name == base {
			second = darkHex
		}
		out = append(out, EnemyType{
			Name:   base + "/" + sc.name,
			Look:   Striped{Stripes: []color.RGBA{mustHex(baseHex), mustHex(second)}},
			Layers: layers,
		})
	}
	return out
}
