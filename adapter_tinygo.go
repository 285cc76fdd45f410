//go:build tinygo

package nrf24

import (
	"machine"

	"tinygo.org/x/drivers"
)

// A TinyGo SPI peripheral is usable as the bus directly.
var _ = func(spi drivers.SPI) Bus { return spi }

// MachinePin adapts a machine.Pin to the chip enable capability. Configure
// the pin as an output first.
type MachinePin struct {
	Pin machine.Pin
}

func (p MachinePin) Set(high bool) error {
	p.Pin.Set(high)
	return nil
}

// MachineIRQ adapts a machine.Pin interrupt to the falling edge capability.
// Configure the pin as an input (usually with pullup) first.
type MachineIRQ struct {
	Pin machine.Pin
}

func (p MachineIRQ) SetFallingEdgeFunc(fn func()) error {
	return p.Pin.SetInterrupt(machine.PinFalling, func(machine.Pin) { fn() })
}

func (p MachineIRQ) ClearFallingEdgeFunc() error {
	return p.Pin.SetInterrupt(machine.PinFalling, nil)
}
