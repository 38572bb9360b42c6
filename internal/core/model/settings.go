package model

import "time"

// Settings defines editable user preferences.
type Settings struct {
	DisplayDuration time.Duration
	FadeInDuration  time.Duration
	FadeOutDuration time.Duration
	DebounceDelay   time.Duration
	TickInterval    time.Duration

	DotSpacing   float32
	PadH         float32
	PadV         float32
	DotRadius    float32
	ActiveRadius float32
}

// DefaultSettings returns the built-in indicator tuning.
func DefaultSettings() Settings {
	return Settings{
		DisplayDuration: 1200 * time.Millisecond,
		FadeInDuration:  150 * time.Millisecond,
		FadeOutDuration: 300 * time.Millisecond,
		DebounceDelay:   80 * time.Millisecond,
		TickInterval:    16 * time.Millisecond,

		DotSpacing:   20,
		PadH:         24,
		PadV:         14,
		DotRadius:    4,
		ActiveRadius: 5.5,
	}
}

// IndicatorConfig converts settings to IndicatorConfig.
func (settings Settings) IndicatorConfig() IndicatorConfig {
	return IndicatorConfig{
		DisplayDuration: settings.DisplayDuration,
		FadeInDuration:  settings.FadeInDuration,
		FadeOutDuration: settings.FadeOutDuration,
		DebounceDelay:   settings.DebounceDelay,
		TickInterval:    settings.TickInterval,
	}
}

// OverlayConfig converts settings to OverlayConfig.
func (settings Settings) OverlayConfig() OverlayConfig {
	return OverlayConfig{
		DotSpacing:   settings.DotSpacing,
		PadH:         settings.PadH,
		PadV:         settings.PadV,
		DotRadius:    settings.DotRadius,
		ActiveRadius: settings.ActiveRadius,
	}
}
