// Package mainloop provides a single-goroutine run loop that owns all
// indicator state. Other goroutines interact with it only through
// Submit; timer callbacks always execute on the loop goroutine.
package mainloop

import (
	"log"
	"sync"
	"time"
)

// Loop executes submitted tasks sequentially on one goroutine.
type Loop struct {
	tasks    chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New creates a loop. Run must be called before tasks execute.
func New() *Loop {
	return &Loop{
		tasks:  make(chan func(), 128),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Run processes tasks until Stop is called. It blocks the calling
// goroutine.
func (loop *Loop) Run() {
	defer close(loop.done)
	for {
		select {
		case <-loop.stopCh:
			return
		case task := <-loop.tasks:
			task()
		}
	}
}

// Submit schedules a task on the loop goroutine. It never blocks the
// caller: if the loop is stopped or the queue is full the task is
// dropped.
func (loop *Loop) Submit(task func()) {
	select {
	case <-loop.stopCh:
	case loop.tasks <- task:
	default:
		log.Printf("mainloop: queue full, dropping task")
	}
}

// Stop terminates the loop. Pending tasks are discarded.
func (loop *Loop) Stop() {
	loop.stopOnce.Do(func() {
		close(loop.stopCh)
	})
}

// Wait blocks until Run has returned.
func (loop *Loop) Wait() {
	<-loop.done
}

// Timer is a one-shot timer whose callback runs on the loop. Stopping
// it from the loop goroutine guarantees the callback will not fire.
type Timer struct {
	timer   *time.Timer
	stopped bool
}

// AfterFunc schedules fn on the loop after the given delay.
func (loop *Loop) AfterFunc(delay time.Duration, fn func()) *Timer {
	handle := &Timer{}
	handle.timer = time.AfterFunc(delay, func() {
		loop.Submit(func() {
			if handle.stopped {
				return
			}
			handle.stopped = true
			fn()
		})
	})
	return handle
}

// Stop cancels the timer. Safe to call repeatedly; must be called from
// the loop goroutine.
func (handle *Timer) Stop() {
	if handle == nil || handle.stopped {
		return
	}
	handle.stopped = true
	handle.timer.Stop()
}

// Ticker repeatedly runs a callback on the loop at a fixed interval.
type Ticker struct {
	ticker  *time.Ticker
	doneCh  chan struct{}
	stopped bool
}

// TickEvery schedules fn on the loop once per interval until the
// returned ticker is stopped.
func (loop *Loop) TickEvery(interval time.Duration, fn func()) *Ticker {
	handle := &Ticker{
		ticker: time.NewTicker(interval),
		doneCh: make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-handle.doneCh:
				return
			case <-loop.stopCh:
				return
			case <-handle.ticker.C:
				loop.Submit(func() {
					if handle.stopped {
						return
					}
					fn()
				})
			}
		}
	}()
	return handle
}

// Stop cancels the ticker. Safe to call repeatedly; must be called
// from the loop goroutine.
func (handle *Ticker) Stop() {
	if handle == nil || handle.stopped {
		return
	}
	handle.stopped = true
	handle.ticker.Stop()
	close(handle.doneCh)
}
