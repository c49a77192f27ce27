// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth  = 900
	ScreenHeight = 600

	MaxDeltaTime = 0.1 // секунды; защита от скачков после паузы вкладки/окна

	StartingLives     = 20
	StartingWave      = 1
	TravelTimeSeconds = 45.0
	SpawnIntervalMs   = 2000.0
	EnemiesPerWave    = 10
	BaseIntervalMs    = 2000.0
	SlowdownFactor    = 1.5

	EnemySize  = 30.0
	TrackWidth = 50.0

	HUDPadding      = 12
	ButtonWidth     = 120
	ButtonHeight    = 28
	PreviewRowStep  = 18
	PreviewSwatch   = 12
	BannerDuration  = 2.5
	ClickSlopPixels = 4.0
)

// Mode selects how the wave scheduler spawns enemies.
type Mode string

const (
	ModeBatch      Mode = "batch"
	ModeContinuous Mode = "continuous"
)

// UnlockPolicy maps a wave number to the number of unlocked enemy types.
type UnlockPolicy string

const (
	UnlockEveryWave      UnlockPolicy = "everyWave"
	UnlockEveryOtherWave UnlockPolicy = "everyOtherWave"
)

// Selection decides which unlocked type the batch spawner picks next.
type Selection string

const (
	SelectSequential Selection = "sequential"
	SelectWeighted   Selection = "weighted"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Waypoint — точка трассы. При RelativeTrack координаты задаются долями экрана.
type Waypoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Config is built once at startup and shared read-only afterwards.
type Config struct {
	ScreenWidth       int          `yaml:"screenWidth"`
	ScreenHeight      int          `yaml:"screenHeight"`
	Mode              Mode         `yaml:"mode"`
	StartingLives     int          `yaml:"startingLives"`
	StartingWave      int          `yaml:"startingWave"`
	TravelTimeSeconds float64      `yaml:"travelTimeSeconds"`
	SpawnIntervalMs   float64      `yaml:"spawnIntervalMs"`
	EnemiesPerWave    int          `yaml:"enemiesPerWave"`
	BaseIntervalMs    float64      `yaml:"baseIntervalMs"`
	SlowdownFactor    float64      `yaml:"slowdownFactor"`
	UnlockPolicy      UnlockPolicy `yaml:"unlockPolicy"`
	Selection         Selection    `yaml:"selection"`
	MaxDeltaTime      float64      `yaml:"maxDeltaTime"`
	EnemySize         float64      `yaml:"enemySize"`
	TrackWidth        float64      `yaml:"trackWidth"`
	RelativeTrack     bool         `yaml:"relativeTrack"`
	Waypoints         []Waypoint   `yaml:"waypoints"`
}

// Default returns the stock game settings with the classic twelve-point track.
func Default() *Config {
	return &Config{
		ScreenWidth:       ScreenWidth,
		ScreenHeight:      ScreenHeight,
		Mode:              ModeBatch,
		StartingLives:     StartingLives,
		StartingWave:      StartingWave,
		TravelTimeSeconds: TravelTimeSeconds,
		SpawnIntervalMs:   SpawnIntervalMs,
		EnemiesPerWave:    EnemiesPerWave,
		BaseIntervalMs:    BaseIntervalMs,
		SlowdownFactor:    SlowdownFactor,
		UnlockPolicy:      UnlockEveryOtherWave,
		Selection:         SelectSequential,
		MaxDeltaTime:      MaxDeltaTime,
		EnemySize:         EnemySize,
		TrackWidth:        TrackWidth,
		RelativeTrack:     true,
		Waypoints:         DefaultWaypoints(),
	}
}

// DefaultWaypoints returns the classic track as fractions of a 900x600 screen.
// The first and last points sit just outside the visible area.
func DefaultWaypoints() []Waypoint {
	pixels := []Waypoint{
		{X: -30, Y: 100},
		{X: 150, Y: 100},
		{X: 150, Y: 250},
		{X: 400, Y: 250},
		{X: 400, Y: 100},
		{X: 600, Y: 100},
		{X: 600, Y: 400},
		{X: 300, Y: 400},
		{X: 300, Y: 500},
		{X: 750, Y: 500},
		{X: 750, Y: 300},
		{X: 930, Y: 300},
	}
	fractions := make([]Waypoint, len(pixels))
	for i, p := range pixels {
		fractions[i] = Waypoint{X: p.X / ScreenWidth, Y: p.Y / ScreenHeight}
	}
	return fractions
}

// Load reads a YAML file on top of Default and validates the result.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Printf("[Config] loaded %s (mode=%s, unlock=%s, %d waypoints)", path, cfg.Mode, cfg.UnlockPolicy, len(cfg.Waypoints))
	return cfg, nil
}

// Validate checks that every value can drive the simulation.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeBatch, ModeContinuous:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	switch c.UnlockPolicy {
	case UnlockEveryWave, UnlockEveryOtherWave:
	default:
		return fmt.Errorf("%w: unknown unlock policy %q", ErrInvalidConfig, c.UnlockPolicy)
	}
	switch c.Selection {
	case SelectSequential, SelectWeighted:
	default:
		return fmt.Errorf("%w: unknown selection %q", ErrInvalidConfig, c.Selection)
	}

	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size must be positive, got %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.StartingLives < 0 {
		return fmt.Errorf("%w: startingLives cannot be negative, got %d", ErrInvalidConfig, c.StartingLives)
	}
	if c.StartingWave < 1 {
		return fmt.Errorf("%w: startingWave must be at least 1, got %d", ErrInvalidConfig, c.StartingWave)
	}
	if c.TravelTimeSeconds <= 0 {
		return fmt.Errorf("%w: travelTimeSeconds must be positive, got %v", ErrInvalidConfig, c.TravelTimeSeconds)
	}
	if c.SpawnIntervalMs <= 0 || c.BaseIntervalMs <= 0 {
		return fmt.Errorf("%w: spawn intervals must be positive", ErrInvalidConfig)
	}
	if c.EnemiesPerWave < 1 {
		return fmt.Errorf("%w: enemiesPerWave must be at least 1, got %d", ErrInvalidConfig, c.EnemiesPerWave)
	}
	if c.SlowdownFactor < 1 {
		return fmt.Errorf("%w: slowdownFactor must be >= 1, got %v", ErrInvalidConfig, c.SlowdownFactor)
	}
	if c.MaxDeltaTime <= 0 {
		return fmt.Errorf("%w: maxDeltaTime must be positive, got %v", ErrInvalidConfig, c.MaxDeltaTime)
	}
	if len(c.Waypoints) < 2 {
		return fmt.Errorf("%w: need at least 2 waypoints, got %d", ErrInvalidConfig, len(c.Waypoints))
	}
	return nil
}

// ClampDelta limits a frame delta to [0, MaxDeltaTime].
func (c *Config) ClampDelta(dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	if dt > c.MaxDeltaTime {
		return c.MaxDeltaTime
	}
	return dt
}

var (
	BackgroundColor    = color.RGBA{15, 15, 26, 255}
	TrackColor         = color.RGBA{42, 42, 74, 255}
	TrackBorderColor   = color.RGBA{58, 58, 106, 255}
	LayerBorderColor   = color.RGBA{0, 0, 0, 77}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	TextDimColor       = color.RGBA{150, 150, 170, 255}
	UIBorderColor      = color.RGBA{240, 240, 240, 255}
	ButtonColor        = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor   = color.RGBA{100, 160, 210, 235}
	ButtonDisabled     = color.RGBA{70, 70, 90, 200}
	LivesColor         = color.RGBA{50, 205, 50, 255}
	LivesCriticalColor = color.RGBA{220, 60, 60, 255}
	BannerColor        = color.RGBA{220, 60, 60, 230}
)
