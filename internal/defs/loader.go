// internal/defs/loader.go
package defs

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogEntry is one enemy type as written in a catalog YAML file.
// A single color makes a Solid look, two or more make a Striped one.
type catalogEntry struct {
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
	Layers int      `yaml:"layers"`
}

type catalogFile struct {
	Enemies []catalogEntry `yaml:"enemies"`
}

// LoadCatalog reads an enemy catalog file. Entry order is the unlock order.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse enemy catalog YAML: %w", err)
	}

	types := make([]EnemyType, 0, len(file.Enemies))
	for i, e := range file.Enemies {
		look, err := lookFromHex(e.Colors)
		if err != nil {
			return nil, fmt.Errorf("enemy %d (%s): %w", i, e.Name, err)
		}
		types = append(types, EnemyType{Name: e.Name, Look: look, Layers: e.Layers})
	}

	catalog, err := NewCatalog(types)
	if err != nil {
		return nil, fmt.Errorf("invalid enemy catalog: %w", err)
	}

	log.Printf("[Catalog] loaded %d enemy types from %s", catalog.Len(), path)
	return catalog, nil
}

func lookFromHex(hexes []string) (Look, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("at least one color is required")
	}
	colors := make([]color.RGBA, len(hexes))
	for i, h := range hexes {
		c, err := ParseHexColor(h)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	if len(colors) == 1 {
		return Solid{Color: colors[0]}, nil
	}
	return Striped{Stripes: colors}, nil
}
