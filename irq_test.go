package nrf24

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIRQDevice(line IRQLine) *Device {
	return New(newBusSim(), &fakePin{}, line)
}

func TestWaitIRQEvent(t *testing.T) {
	line := &fakeLine{}
	d := newIRQDevice(line)
	line.fallSoon(10 * time.Millisecond)

	start := time.Now()
	out, err := d.WaitForIRQ(time.Second)
	require.NoError(t, err)
	assert.Equal(t, WaitIRQ, out)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestWaitTimeout(t *testing.T) {
	line := &fakeLine{}
	d := newIRQDevice(line)

	start := time.Now()
	out, err := d.WaitForIRQ(20 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, WaitTimedOut, out)
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}

func TestCancelDuringWait(t *testing.T) {
	line := &fakeLine{}
	d := newIRQDevice(line)
	go func() {
		time.Sleep(10 * time.Millisecond)
		d.CancelWait()
	}()

	start := time.Now()
	out, err := d.WaitForIRQ(0) // no timeout
	require.NoError(t, err)
	assert.Equal(t, WaitCancelled, out)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestCancelBeforeWait(t *testing.T) {
	line := &fakeLine{}
	d := newIRQDevice(line)
	d.CancelWait()

	out, err := d.WaitForIRQ(time.Second)
	require.NoError(t, err)
	assert.Equal(t, WaitCancelled, out)
	assert.Equal(t, 0, line.armedCount(), "pre-cancelled wait must not touch the line")

	// The cancellation is consumed: the next wait blocks again.
	out, err = d.WaitForIRQ(20 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, WaitTimedOut, out)
}

func TestCancelIdempotent(t *testing.T) {
	line := &fakeLine{}
	d := newIRQDevice(line)
	d.CancelWait()
	d.CancelWait()
	d.CancelWait()

	out, err := d.WaitForIRQ(time.Second)
	require.NoError(t, err)
	assert.Equal(t, WaitCancelled, out)

	out, err = d.WaitForIRQ(20 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, WaitTimedOut, out, "cancels before a wait collapse into one")
}

func TestWaitEventNotReportedAsCancel(t *testing.T) {
	line := &fakeLine{}
	d := newIRQDevice(line)
	line.fallSoon(5 * time.Millisecond)

	out, err := d.WaitForIRQ(time.Second)
	require.NoError(t, err)
	assert.Equal(t, WaitIRQ, out)
}

func TestWaitArmFailure(t *testing.T) {
	line := &fakeLine{armErr: errors.New("gpio: exported pin busy")}
	d := newIRQDevice(line)

	_, err := d.WaitForIRQ(time.Second)
	require.ErrorIs(t, err, ErrHardware)

	// Fatal to that call only: a fresh wait works once the line recovers.
	line.armErr = nil
	line.fallSoon(5 * time.Millisecond)
	out, err := d.WaitForIRQ(time.Second)
	require.NoError(t, err)
	assert.Equal(t, WaitIRQ, out)
}

func TestWaitEdgeBeforeBlocking(t *testing.T) {
	line := &fakeLine{}
	d := newIRQDevice(line)
	// Trigger the edge from the arming callback itself: the signal lands
	// after arming but before the waiter blocks, and must not be lost.
	done := make(chan struct{})
	go func() {
		for line.armedCount() == 0 {
			time.Sleep(time.Millisecond)
		}
		line.fall()
		close(done)
	}()

	out, err := d.WaitForIRQ(time.Second)
	require.NoError(t, err)
	assert.Equal(t, WaitIRQ, out)
	<-done
}

func TestWaitNoLine(t *testing.T) {
	d, _ := newTestDevice()
	_, err := d.WaitForIRQ(time.Second)
	require.ErrorIs(t, err, ErrNoIRQLine)
	d.CancelWait() // no-op, must not panic
}

func TestWaitSecondWaiterRejected(t *testing.T) {
	line := &fakeLine{}
	d := newIRQDevice(line)

	started := make(chan struct{})
	finished := make(chan WaitOutcome, 1)
	go func() {
		close(started)
		out, _ := d.WaitForIRQ(time.Second)
		finished <- out
	}()
	<-started
	for line.armedCount() == 0 {
		time.Sleep(time.Millisecond)
	}

	_, err := d.WaitForIRQ(time.Second)
	require.ErrorIs(t, err, ErrWaitInProgress)

	d.CancelWait()
	assert.Equal(t, WaitCancelled, <-finished)
}
