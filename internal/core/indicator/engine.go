// Package indicator drives the show/fade/hide lifecycle of the
// workspace overlay. All state lives on the main loop; the only entry
// point callable from other goroutines is Trigger.
package indicator

import (
	"math"
	"time"

	"wsindicator/internal/core/mainloop"
	"wsindicator/internal/core/model"
)

// Phase is the current animation stage.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFadingIn
	PhaseVisible
	PhaseFadingOut
)

// Refresher produces a fresh workspace snapshot. May block briefly on
// compositor queries; invoked only on the loop goroutine.
type Refresher interface {
	Refresh() model.Snapshot
}

// Presenter consumes animation frames. Invoked only on the loop
// goroutine; implementations hand off to their own render thread.
type Presenter interface {
	Present(opacity float64, snapshot model.Snapshot)
}

// Engine owns the animation state machine.
type Engine struct {
	loop      *mainloop.Loop
	config    model.IndicatorConfig
	refresher Refresher
	presenter Presenter
	debouncer *Debouncer

	phase    Phase
	opacity  float64
	snapshot model.Snapshot

	fadeTarget float64
	fadeStep   float64

	holdTimer *mainloop.Timer
	fadeTick  *mainloop.Ticker
}

// New creates an engine bound to the given loop.
func New(loop *mainloop.Loop, config model.IndicatorConfig, refresher Refresher, presenter Presenter) *Engine {
	if config.TickInterval <= 0 {
		config.TickInterval = 16 * time.Millisecond
	}
	engine := &Engine{
		loop:      loop,
		config:    config,
		refresher: refresher,
		presenter: presenter,
	}
	engine.debouncer = NewDebouncer(loop, config.DebounceDelay, engine.show)
	return engine
}

// Trigger requests a debounced show. Safe from any goroutine; a burst
// of triggers within the debounce window collapses into one show.
func (engine *Engine) Trigger() {
	engine.debouncer.Trigger()
}

// Phase returns the current phase. Loop goroutine only.
func (engine *Engine) Phase() Phase {
	return engine.phase
}

// Opacity returns the current opacity. Loop goroutine only.
func (engine *Engine) Opacity() float64 {
	return engine.opacity
}

// Snapshot returns the snapshot shown by the last show. Loop goroutine
// only.
func (engine *Engine) Snapshot() model.Snapshot {
	return engine.snapshot
}

// show refreshes the snapshot and advances the phase machine. Runs on
// the loop when the debounce timer expires.
func (engine *Engine) show() {
	snapshot := engine.refresher.Refresh()
	if !snapshot.Showable() {
		return
	}
	engine.snapshot = snapshot

	switch engine.phase {
	case PhaseVisible:
		// Extend the visible window; opacity stays at 1.
		engine.startHold()
		engine.presenter.Present(engine.opacity, engine.snapshot)
	case PhaseIdle, PhaseFadingIn, PhaseFadingOut:
		engine.holdTimer.Stop()
		engine.phase = PhaseFadingIn
		engine.fadeTo(1, engine.config.FadeInDuration)
	}
}

// beginHide starts the fade-out when the hold timer expires.
func (engine *Engine) beginHide() {
	engine.phase = PhaseFadingOut
	engine.fadeTo(0, engine.config.FadeOutDuration)
}

func (engine *Engine) startHold() {
	engine.holdTimer.Stop()
	engine.holdTimer = engine.loop.AfterFunc(engine.config.DisplayDuration, engine.beginHide)
}

// fadeTo ramps opacity toward target, replacing any ramp in flight.
// The step is computed from the current opacity, so reversing a fade
// mid-flight continues smoothly rather than snapping.
func (engine *Engine) fadeTo(target float64, duration time.Duration) {
	engine.fadeTick.Stop()

	steps := int(math.Ceil(float64(duration) / float64(engine.config.TickInterval)))
	if steps < 1 {
		steps = 1
	}
	engine.fadeTarget = target
	engine.fadeStep = (target - engine.opacity) / float64(steps)
	engine.fadeTick = engine.loop.TickEvery(engine.config.TickInterval, engine.fadeStepFunc)
}

func (engine *Engine) fadeStepFunc() {
	engine.opacity += engine.fadeStep

	done := engine.opacity >= engine.fadeTarget
	if engine.fadeStep < 0 {
		done = engine.opacity <= engine.fadeTarget
	}
	if done {
		// Clamp exactly to the target to avoid floating drift.
		engine.opacity = engine.fadeTarget
	}

	engine.presenter.Present(engine.opacity, engine.snapshot)

	if !done {
		return
	}
	engine.fadeTick.Stop()
	if engine.fadeTarget <= 0 {
		engine.phase = PhaseIdle
		return
	}
	engine.phase = PhaseVisible
	engine.startHold()
}
