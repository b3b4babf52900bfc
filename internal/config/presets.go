package config

// SpeedPreset represents a named animation speed.
type SpeedPreset string

const (
	SpeedSlow    SpeedPreset = "slow"
	SpeedNormal  SpeedPreset = "normal"
	SpeedFast    SpeedPreset = "fast"
	SpeedInstant SpeedPreset = "instant"
)

// SpeedPresets lists the presets from slowest to fastest.
var SpeedPresets = []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedInstant}

// SpeedMSForPreset returns the speed_ms for a preset.
func SpeedMSForPreset(preset SpeedPreset) (int, bool) {
	switch preset {
	case SpeedSlow:
		return 1000, true
	case SpeedNormal:
		return 500, true
	case SpeedFast:
		return 200, true
	case SpeedInstant:
		return 0, true
	default:
		return 0, false
	}
}

// ApplySpeedPreset modifies the config based on a speed preset.
// Unknown presets leave the config untouched.
func ApplySpeedPreset(cfg *Config, preset SpeedPreset) {
	if ms, ok := SpeedMSForPreset(preset); ok {
		cfg.SpeedMS = ms
	}
}

// NextSpeedPreset cycles to the preset after the one matching speedMS,
// wrapping around. A speed matching no preset moves to the first one.
func NextSpeedPreset(speedMS int) SpeedPreset {
	for i, p := range SpeedPresets {
		if ms, _ := SpeedMSForPreset(p); ms == speedMS {
			return SpeedPresets[(i+1)%len(SpeedPresets)]
		}
	}
	return SpeedPresets[0]
}
