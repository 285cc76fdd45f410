// Package nrf24 is a low level driver for the nRF24L01+ 2.4GHz transceiver
// from Nordic Semiconductor.
//
// The driver does not try to hide the chip. Every configuration register and
// every bit field from the product specification is available by name, and
// Get/Set batch heterogeneous register and field accesses into the minimum
// number of SPI transactions. Mode transitions (power up, PRX/PTX, the CE
// timing requirements) remain the caller's responsibility; the datasheet is
// the manual for this package.
//
//	st, _ := dev.Set(nrf24.WriteField(nrf24.PrimRx, 1), nrf24.WriteField(nrf24.PwrUp, 1))
//	vals, _ := dev.Get(nrf24.ReadField(nrf24.RxEmpty), nrf24.ReadReg(nrf24.RegRFCh))
//
// A Device is not safe for concurrent use. The single exception is
// CancelWait, which may be called from a second goroutine to wake a
// goroutine blocked in WaitForIRQ.
package nrf24

// Bus is the synchronous full duplex bus transaction primitive, typically an
// SPI connection with the chip's CSN handled by the implementation. Both a
// periph.io spi.Conn and a TinyGo drivers.SPI satisfy it.
type Bus interface {
	// Tx clocks out w while reading len(w) bytes into r.
	Tx(w, r []byte) error
}

// Pin is a digital output line, used for the chip enable (CE) pin.
type Pin interface {
	Set(high bool) error
}

// IRQLine detects the falling edge of the chip's active low IRQ pin. fn may
// be invoked from any goroutine or interrupt context; it must not block.
type IRQLine interface {
	SetFallingEdgeFunc(fn func()) error
	ClearFallingEdgeFunc() error
}
