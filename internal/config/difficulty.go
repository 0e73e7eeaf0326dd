package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetTuning holds the values a preset overrides.
// Presets never change the level speed rule, only its starting point.
type presetTuning struct {
	baseSpeed   float64
	paddleSpeed float64
}

var presets = map[DifficultyPreset]presetTuning{
	DifficultyEasy: {baseSpeed: 4, paddleSpeed: 18},
	DifficultyHard: {baseSpeed: 8, paddleSpeed: 12},
}

// ParsePreset converts a CLI string to a preset. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and the empty preset keep the loaded values.
func ApplyPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	t, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Ball.BaseSpeed = t.baseSpeed
	cfg.Paddle.Speed = t.paddleSpeed
}
