package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid, got %v", err)
	}
	if len(cfg.Waypoints) != 12 {
		t.Errorf("expected 12 default waypoints, got %d", len(cfg.Waypoints))
	}
	first := cfg.Waypoints[0]
	if math.Abs(first.X*ScreenWidth+30) > 1e-9 || math.Abs(first.Y*ScreenHeight-100) > 1e-9 {
		t.Errorf("unexpected first waypoint %+v", first)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Config)
	}{
		{
			name: "partial overlay keeps defaults",
			yamlContent: `
mode: continuous
slowdownFactor: 2
startingLives: 5
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Mode != ModeContinuous {
					t.Errorf("expected continuous mode, got %s", cfg.Mode)
				}
				if cfg.SlowdownFactor != 2 {
					t.Errorf("expected slowdown 2, got %v", cfg.SlowdownFactor)
				}
				if cfg.StartingLives != 5 {
					t.Errorf("expected 5 lives, got %d", cfg.StartingLives)
				}
				if cfg.EnemiesPerWave != EnemiesPerWave {
					t.Errorf("expected default enemiesPerWave, got %d", cfg.EnemiesPerWave)
				}
			},
		},
		{
			name: "absolute waypoints",
			yamlContent: `
relativeTrack: false
waypoints:
  - {x: 0, y: 0}
  - {x: 100, y: 0}
  - {x: 100, y: 50}
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.RelativeTrack {
					t.Error("expected absolute track")
				}
				if len(cfg.Waypoints) != 3 || cfg.Waypoints[2].Y != 50 {
					t.Errorf("unexpected waypoints %+v", cfg.Waypoints)
				}
			},
		},
		{
			name:        "unknown mode",
			yamlContent: "mode: endless\n",
			wantErr:     true,
			errContains: "unknown mode",
		},
		{
			name:        "slowdown below one",
			yamlContent: "slowdownFactor: 0.5\n",
			wantErr:     true,
			errContains: "slowdownFactor",
		},
		{
			name: "single waypoint",
			yamlContent: `
waypoints:
  - {x: 0.5, y: 0.5}
`,
			wantErr:     true,
			errContains: "at least 2 waypoints",
		},
		{
			name:        "malformed yaml",
			yamlContent: "mode: [batch\n",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0o644); err != nil {
				t.Fatalf("write temp config: %v", err)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestValidateWrapsSentinel(t *testing.T) {
	cfg := Default()
	cfg.TravelTimeSeconds = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestClampDelta(t *testing.T) {
	cfg := Default()
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.016, 0.016},
		{0.1, 0.1},
		{3.5, 0.1},
	}
	for _, tt := range tests {
		if got := cfg.ClampDelta(tt.in); got != tt.want {
			t.Errorf("ClampDelta(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "config.example.yaml"))
	if err != nil {
		t.Fatalf("example config: %v", err)
	}
	if cfg.Mode != ModeContinuous || cfg.RelativeTrack || len(cfg.Waypoints) != 4 {
		t.Errorf("unexpected example config: mode=%s relative=%v waypoints=%d", cfg.Mode, cfg.RelativeTrack, len(cfg.Waypoints))
	}
}
