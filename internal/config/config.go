// Package config provides YAML-based game configuration loading and
// difficulty presets for the arkanoid engine.
package config

import (
	"errors"
	"fmt"
)

// ArkanoidConfig contains all configuration for the Arkanoid game.
// Values are in playfield units; the playfield origin is the bottom-left corner.
type ArkanoidConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Ball      BallConfig      `yaml:"ball"`
	Blocks    BlocksConfig    `yaml:"blocks"`
}

// PlayfieldConfig defines the fixed playfield size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and speed.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`     // Center y, fixed for the session
	Speed  float64 `yaml:"speed"` // Units per tick while a direction is held
}

// BallConfig defines ball size and the level-1 speed.
type BallConfig struct {
	Radius    float64 `yaml:"radius"`
	BaseSpeed float64 `yaml:"base_speed"` // Level n > 1 runs at base_speed + n
}

// BlocksConfig defines the block grid layout.
type BlocksConfig struct {
	Cols       int     `yaml:"cols"`
	Rows       int     `yaml:"rows"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	PitchX     float64 `yaml:"pitch_x"`
	PitchY     float64 `yaml:"pitch_y"`
	OffsetX    float64 `yaml:"offset_x"`   // Center x of the first column
	OffsetTop  float64 `yaml:"offset_top"` // Distance from the ceiling to the first row's center
	MinChannel int     `yaml:"min_channel"`
	MaxChannel int     `yaml:"max_channel"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the configuration describes a playable field.
func (c ArkanoidConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Playfield.Width > 0, "playfield width must be positive"},
		{c.Playfield.Height > 0, "playfield height must be positive"},
		{c.Paddle.Width > 0 && c.Paddle.Width <= c.Playfield.Width, "paddle width must be in (0, playfield width]"},
		{c.Paddle.Height > 0, "paddle height must be positive"},
		{c.Paddle.Speed >= 0, "paddle speed must not be negative"},
		{c.Ball.Radius > 0 && 2*c.Ball.Radius < c.Playfield.Width, "ball radius must be positive and less than half the playfield width"},
		{c.Ball.BaseSpeed > 0, "ball base speed must be positive"},
		{c.Blocks.Cols > 0 && c.Blocks.Rows > 0, "block grid must have at least one column and one row"},
		{c.Blocks.Width > 0 && c.Blocks.Height > 0, "block size must be positive"},
		{c.Blocks.MinChannel >= 0 && c.Blocks.MaxChannel <= 255 && c.Blocks.MinChannel <= c.Blocks.MaxChannel, "color channels must satisfy 0 <= min <= max <= 255"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.msg)
		}
	}
	return nil
}
