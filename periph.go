//go:build !tinygo

package nrf24

import (
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// A periph.io SPI connection is usable as the bus directly.
var _ = func(c spi.Conn) Bus { return c }

// CEPin adapts a periph.io output pin to the chip enable capability.
type CEPin struct {
	Pin gpio.PinOut
}

func (p CEPin) Set(high bool) error { return p.Pin.Out(gpio.Level(high)) }

// EdgeLine adapts a periph.io input pin to the falling edge IRQ capability.
// periph.io only offers the blocking WaitForEdge, so a watcher goroutine
// turns edges into callbacks. The short wait slices let the goroutine notice
// it has been stopped.
type EdgeLine struct {
	Pin gpio.PinIn
	// Pull applied when arming the pin. The IRQ line is active low, so
	// gpio.PullUp is usually right; the zero value gpio.Float leaves the
	// board's wiring in charge.
	Pull gpio.Pull

	stop chan struct{}
}

func (l *EdgeLine) SetFallingEdgeFunc(fn func()) error {
	if err := l.Pin.In(l.Pull, gpio.FallingEdge); err != nil {
		return err
	}
	stop := make(chan struct{})
	l.stop = stop
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			if l.Pin.WaitForEdge(50 * time.Millisecond) {
				fn()
			}
		}
	}()
	return nil
}

func (l *EdgeLine) ClearFallingEdgeFunc() error {
	if l.stop != nil {
		close(l.stop)
		l.stop = nil
	}
	return l.Pin.In(l.Pull, gpio.NoEdge)
}
