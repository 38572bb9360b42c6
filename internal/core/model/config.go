package model

import "time"

// IndicatorConfig contains runtime timing for the indicator engine.
type IndicatorConfig struct {
	DisplayDuration time.Duration
	FadeInDuration  time.Duration
	FadeOutDuration time.Duration
	DebounceDelay   time.Duration
	TickInterval    time.Duration
}

// OverlayConfig defines the pill geometry used by the renderer.
type OverlayConfig struct {
	DotSpacing   float32
	PadH         float32
	PadV         float32
	DotRadius    float32
	ActiveRadius float32
}
