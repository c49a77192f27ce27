package defs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"layer-defense/internal/config"
)

type fixedDraw float64

func (f fixedDraw) Float64() float64 { return float64(f) }

func TestDefaultCatalogOrder(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 30 {
		t.Fatalf("expected 30 types, got %d", c.Len())
	}

	tests := []struct {
		index   int
		name    string
		layers  int
		striped bool
	}{
		{0, "Red", 1, false},
		{9, "White", 1, false},
		{10, "Red/Red", 2, true},
		{19, "Red/White", 2, true},
		{20, "Blue/Red", 3, true},
		{29, "Blue/White", 3, true},
	}
	for _, tt := range tests {
		typ, err := c.Type(tt.index)
		if err != nil {
			t.Fatalf("Type(%d): %v", tt.index, err)
		}
		if typ.Name != tt.name || typ.Layers != tt.layers || typ.Index != tt.index {
			t.Errorf("Type(%d) = %+v, want name=%s layers=%d", tt.index, typ, tt.name, tt.layers)
		}
		_, striped := typ.Look.(Striped)
		if striped != tt.striped {
			t.Errorf("Type(%d) striped = %v, want %v", tt.index, striped, tt.striped)
		}
	}

	redRed, _ := c.Type(10)
	want := []color.RGBA{{255, 0, 0, 255}, {0xaa, 0, 0, 255}}
	got := redRed.Look.Colors()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Red/Red colors = %v, want %v", got, want)
	}
}

func TestTypeOutOfRange(t *testing.T) {
	c := DefaultCatalog()
	for _, index := range []int{-1, 30, 100} {
		if _, err := c.Type(index); !errors.Is(err, ErrInvalidEnemyType) {
			t.Errorf("Type(%d): expected ErrInvalidEnemyType, got %v", index, err)
		}
	}
}

func TestTypesAreShared(t *testing.T) {
	c := DefaultCatalog()
	a, _ := c.Type(3)
	b := c.TypesUpToWave(10, config.UnlockEveryWave)[3]
	if a != b {
		t.Error("expected the same *EnemyType for the same index")
	}
}

func TestUnlockedCount(t *testing.T) {
	tests := []struct {
		wave   int
		policy config.UnlockPolicy
		length int
		want   int
	}{
		{1, config.UnlockEveryOtherWave, 30, 1},
		{2, config.UnlockEveryOtherWave, 30, 1},
		{3, config.UnlockEveryOtherWave, 30, 2},
		{4, config.UnlockEveryOtherWave, 30, 2},
		{20, config.UnlockEveryOtherWave, 30, 10},
		{99, config.UnlockEveryOtherWave, 30, 30},
		{1, config.UnlockEveryWave, 30, 1},
		{7, config.UnlockEveryWave, 30, 7},
		{40, config.UnlockEveryWave, 30, 30},
		{0, config.UnlockEveryWave, 30, 1},
	}
	for _, tt := range tests {
		if got := UnlockedCount(tt.wave, tt.policy, tt.length); got != tt.want {
			t.Errorf("UnlockedCount(%d, %s, %d) = %d, want %d", tt.wave, tt.policy, tt.length, got, tt.want)
		}
	}
}

func TestTypesUpToWaveIsPrefix(t *testing.T) {
	c := DefaultCatalog()
	got := c.TypesUpToWave(5, config.UnlockEveryOtherWave)
	if len(got) != 3 {
		t.Fatalf("expected 3 types, got %d", len(got))
	}
	for i, typ := range got {
		if typ.Index != i {
			t.Errorf("position %d holds index %d", i, typ.Index)
		}
	}
}

func TestPickWeighted(t *testing.T) {
	unlocked := DefaultCatalog().Prefix(3)
	tests := []struct {
		draw float64
		want int
	}{
		{0, 0},
		{0.16, 0},
		{0.17, 1},
		{0.49, 1},
		{0.5, 2},
		{0.99, 2},
	}
	for _, tt := range tests {
		got := PickWeighted(unlocked, fixedDraw(tt.draw))
		if got.Index != tt.want {
			t.Errorf("draw %v picked %d, want %d", tt.draw, got.Index, tt.want)
		}
	}
	if PickWeighted(nil, fixedDraw(0.5)) != nil {
		t.Error("expected nil for an empty prefix")
	}
}

func TestPickSequential(t *testing.T) {
	unlocked := DefaultCatalog().Prefix(3)
	for ordinal, want := range []int{0, 1, 2, 0, 1} {
		if got := PickSequential(unlocked, ordinal); got.Index != want {
			t.Errorf("ordinal %d picked %d, want %d", ordinal, got.Index, want)
		}
	}
}

func TestNewCatalogValidation(t *testing.T) {
	solid := Solid{Color: color.RGBA{1, 2, 3, 255}}
	tests := []struct {
		name  string
		types []EnemyType
	}{
		{"empty", nil},
		{"no name", []EnemyType{{Look: solid, Layers: 1}}},
		{"zero layers", []EnemyType{{Name: "a", Look: solid}}},
		{"no look", []EnemyType{{Name: "a", Layers: 1}}},
		{"no stripes", []EnemyType{{Name: "a", Look: Striped{}, Layers: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.types); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	content := `
enemies:
  - name: Grey
    colors: ["#808080"]
    layers: 1
  - name: Grey/Gold
    colors: ["#808080", "#fc0"]
    layers: 4
`
	path := filepath.Join(t.TempDir(), "enemies.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 types, got %d", c.Len())
	}
	grey, _ := c.Type(0)
	if s, ok := grey.Look.(Solid); !ok || s.Color != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("unexpected look %#v", grey.Look)
	}
	gold, _ := c.Type(1)
	stripes, ok := gold.Look.(Striped)
	if !ok || stripes.Stripes[1] != (color.RGBA{255, 204, 0, 255}) || gold.Layers != 4 {
		t.Errorf("unexpected type %+v", gold)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{"bad color", "enemies:\n  - {name: X, colors: [\"#zzzzzz\"], layers: 1}\n", "bad color"},
		{"no colors", "enemies:\n  - {name: X, layers: 1}\n", "at least one color"},
		{"zero layers", "enemies:\n  - {name: X, colors: [\"#fff\"], layers: 0}\n", "layers must be"},
		{"empty", "enemies: []\n", "cannot be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "enemies.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write catalog: %v", err)
			}
			_, err := LoadCatalog(path)
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %v", tt.errContains, err)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#0066ff")
	if err != nil || c != (color.RGBA{0, 0x66, 0xff, 255}) {
		t.Errorf("ParseHexColor = %v, %v", c, err)
	}
	if _, err := ParseHexColor("#12345"); err == nil {
		t.Error("expected error for short color")
	}
}

func TestExampleCatalogLoads(t *testing.T) {
	catalog, err := LoadCatalog(filepath.Join("..", "..", "configs", "enemies.example.yaml"))
	if err != nil {
		t.Fatalf("example catalog: %v", err)
	}
	if catalog.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", catalog.Len())
	}
	armored, _ := catalog.Type(3)
	if _, ok := armored.Look.(Striped); !ok || len(armored.Look.Colors()) != 3 {
		t.Errorf("Armored look = %#v, want 3 stripes", armored.Look)
	}
}
