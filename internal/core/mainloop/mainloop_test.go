package mainloop

import (
	"testing"
	"time"
)

func startLoop(t *testing.T) *Loop {
	t.Helper()
	loop := New()
	go loop.Run()
	t.Cleanup(loop.Stop)
	return loop
}

// runOn executes fn on the loop goroutine and waits for it.
func runOn(t *testing.T, loop *Loop, fn func()) {
	t.Helper()
	done := make(chan struct{})
	loop.Submit(func() {
		fn()
		close(done)
	})
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop task did not run")
	}
}

func TestSubmitRunsInOrder(t *testing.T) {
	loop := startLoop(t)

	var order []int
	for value := 1; value <= 5; value++ {
		value := value
		loop.Submit(func() {
			order = append(order, value)
		})
	}

	runOn(t, loop, func() {})
	for index, value := range order {
		if value != index+1 {
			t.Fatalf("tasks ran out of order: %v", order)
		}
	}
	if len(order) != 5 {
		t.Fatalf("expected 5 tasks, ran %d", len(order))
	}
}

func TestAfterFuncFiresOnLoop(t *testing.T) {
	loop := startLoop(t)

	fired := make(chan struct{})
	runOn(t, loop, func() {
		loop.AfterFunc(5*time.Millisecond, func() {
			close(fired)
		})
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestTimerStopPreventsCallback(t *testing.T) {
	loop := startLoop(t)

	fired := false
	var handle *Timer
	runOn(t, loop, func() {
		handle = loop.AfterFunc(20*time.Millisecond, func() {
			fired = true
		})
		handle.Stop()
	})

	time.Sleep(60 * time.Millisecond)
	runOn(t, loop, func() {
		if fired {
			t.Error("stopped timer fired")
		}
	})
}

func TestTimerStopTwiceIsSafe(t *testing.T) {
	loop := startLoop(t)

	runOn(t, loop, func() {
		handle := loop.AfterFunc(time.Millisecond, func() {})
		handle.Stop()
		handle.Stop()

		var nilHandle *Timer
		nilHandle.Stop()
	})
}

func TestTickEveryRepeatsUntilStopped(t *testing.T) {
	loop := startLoop(t)

	ticks := 0
	var handle *Ticker
	runOn(t, loop, func() {
		handle = loop.TickEvery(5*time.Millisecond, func() {
			ticks++
			if ticks == 3 {
				handle.Stop()
			}
		})
	})

	deadline := time.Now().Add(2 * time.Second)
	for {
		var count int
		runOn(t, loop, func() { count = ticks })
		if count == 3 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("ticker stalled at %d ticks", count)
		}
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(30 * time.Millisecond)
	runOn(t, loop, func() {
		if ticks != 3 {
			t.Errorf("ticker kept firing after Stop: %d ticks", ticks)
		}
	})
}

func TestSubmitAfterStopIsDropped(t *testing.T) {
	loop := New()
	go loop.Run()
	loop.Stop()
	loop.Wait()

	loop.Submit(func() {
		t.Error("task ran after Stop")
	})
	time.Sleep(10 * time.Millisecond)
}
