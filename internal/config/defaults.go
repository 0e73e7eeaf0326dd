package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default Arkanoid configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Playfield: PlayfieldConfig{
			Width:  770,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:  200,
			Height: 10,
			Y:      30,
			Speed:  15,
		},
		Ball: BallConfig{
			Radius:    20,
			BaseSpeed: 6,
		},
		Blocks: BlocksConfig{
			Cols:       6,
			Rows:       4,
			Width:      100,
			Height:     50,
			PitchX:     120,
			PitchY:     60,
			OffsetX:    60,
			OffsetTop:  60,
			MinChannel: 30,
			MaxChannel: 255,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
