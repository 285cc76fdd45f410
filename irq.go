package nrf24

import (
	"fmt"
	"sync"
	"time"
)

// WaitOutcome reports how a WaitForIRQ call ended.
type WaitOutcome uint8

const (
	WaitIRQ       WaitOutcome = iota // the IRQ line went low
	WaitCancelled                    // CancelWait was called
	WaitTimedOut                     // the timeout elapsed
)

func (o WaitOutcome) String() string {
	switch o {
	case WaitIRQ:
		return "irq"
	case WaitCancelled:
		return "cancelled"
	case WaitTimedOut:
		return "timed out"
	}
	return "unknown"
}

// irqWaiter is the cancellable blocking wait on the IRQ line. One goroutine
// at a time may wait; cancel may be called from any goroutine at any time.
// The edge callback, the timeout and cancel all flip a flag and broadcast
// under the same mutex the waiter blocks on, so a signal arriving between
// the decision to wait and the block itself cannot be lost.
type irqWaiter struct {
	mu        sync.Mutex
	cond      *sync.Cond
	line      IRQLine
	waiting   bool
	cancelled bool // pending cancellation, consumed by exactly one wait
	fired     bool // edge seen during the current wait
}

func newIRQWaiter(line IRQLine) *irqWaiter {
	w := &irqWaiter{line: line}
	w.cond = sync.NewCond(&w.mu)
	return w
}

func (w *irqWaiter) wait(timeout time.Duration) (WaitOutcome, error) {
	w.mu.Lock()
	if w.waiting {
		w.mu.Unlock()
		return 0, ErrWaitInProgress
	}
	if w.cancelled {
		w.cancelled = false
		w.mu.Unlock()
		return WaitCancelled, nil
	}
	w.waiting = true
	w.fired = false
	w.mu.Unlock()

	if err := w.line.SetFallingEdgeFunc(func() {
		w.mu.Lock()
		if w.waiting {
			w.fired = true
			w.cond.Broadcast()
		}
		w.mu.Unlock()
	}); err != nil {
		w.mu.Lock()
		w.waiting = false
		w.mu.Unlock()
		return 0, fmt.Errorf("%w: %v", ErrHardware, err)
	}
	defer w.line.ClearFallingEdgeFunc()

	w.mu.Lock()
	defer w.mu.Unlock()
	var timedOut bool
	if timeout > 0 {
		t := time.AfterFunc(timeout, func() {
			w.mu.Lock()
			timedOut = true
			w.cond.Broadcast()
			w.mu.Unlock()
		})
		defer t.Stop()
	}
	for !w.fired && !w.cancelled && !timedOut {
		w.cond.Wait()
	}
	w.waiting = false
	switch {
	case w.cancelled:
		w.cancelled = false
		return WaitCancelled, nil
	case w.fired:
		return WaitIRQ, nil
	}
	return WaitTimedOut, nil
}

func (w *irqWaiter) cancel() {
	w.mu.Lock()
	w.cancelled = true
	w.cond.Broadcast()
	w.mu.Unlock()
}

// WaitForIRQ blocks until the chip pulls the IRQ line low, CancelWait is
// called, or the timeout elapses; timeout <= 0 waits indefinitely. It does
// not busy poll. A cancellation recorded while nobody was waiting makes the
// next WaitForIRQ return WaitCancelled immediately; it is consumed by that
// one return. At most one goroutine may wait at a time.
//
// Which STATUS flag pulled the line low, and clearing it, is the caller's
// business (see RxDR, TxDS, MaxRT and the MASK_* fields of CONFIG).
func (d *Device) WaitForIRQ(timeout time.Duration) (WaitOutcome, error) {
	if d.irq == nil {
		return 0, ErrNoIRQLine
	}
	return d.irq.wait(timeout)
}

// CancelWait wakes the goroutine blocked in WaitForIRQ, if any, which then
// returns WaitCancelled. With no waiter the cancellation is remembered for
// the next WaitForIRQ. Multiple cancellations collapse into one. CancelWait
// is the only method safe to call concurrently with others.
func (d *Device) CancelWait() {
	if d.irq != nil {
		d.irq.cancel()
	}
}
