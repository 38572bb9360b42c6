package indicator

import (
	"time"

	"wsindicator/internal/core/mainloop"
)

// Debouncer coalesces bursts of trigger events into a single action,
// timed from the last trigger. At most one timer is ever pending; a
// new trigger cancels and replaces it.
type Debouncer struct {
	loop    *mainloop.Loop
	delay   time.Duration
	fire    func()
	pending *mainloop.Timer
}

// NewDebouncer creates a debouncer that invokes fire on the loop after
// the delay has elapsed without further triggers.
func NewDebouncer(loop *mainloop.Loop, delay time.Duration, fire func()) *Debouncer {
	return &Debouncer{
		loop:  loop,
		delay: delay,
		fire:  fire,
	}
}

// Trigger restarts the debounce window. Safe from any goroutine.
func (debouncer *Debouncer) Trigger() {
	debouncer.loop.Submit(func() {
		debouncer.pending.Stop()
		debouncer.pending = debouncer.loop.AfterFunc(debouncer.delay, func() {
			debouncer.pending = nil
			debouncer.fire()
		})
	})
}
