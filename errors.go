package nrf24

import "errors"

var (
	// ErrInvalidReference reports a request naming no known register or field,
	// such as a zero valued ReadRequest.
	ErrInvalidReference = errors.New("nrf24: unknown register or field")
	// ErrValueOutOfRange reports a value that does not fit the target field's
	// bit width or register's byte width. No bus access is attempted.
	ErrValueOutOfRange = errors.New("nrf24: value out of range")
	// ErrReadOnly reports a write to a read only register or field.
	ErrReadOnly = errors.New("nrf24: read-only register or field")
	// ErrMixedWrite reports a Set call writing one register both whole and
	// through individual fields. The combination is rejected up front.
	ErrMixedWrite = errors.New("nrf24: register written both whole and by field")
	// ErrTransport wraps a failure of the underlying bus primitive. The driver
	// performs no retries; retry policy depends on wiring and belongs to the
	// caller.
	ErrTransport = errors.New("nrf24: bus transaction failed")
	// ErrHardware wraps a failure to arm edge detection on the IRQ line.
	ErrHardware = errors.New("nrf24: irq line failure")
	// ErrNoIRQLine is returned by WaitForIRQ when the Device was created
	// without an IRQ line.
	ErrNoIRQLine = errors.New("nrf24: no irq line configured")
	// ErrWaitInProgress is returned when WaitForIRQ is entered while another
	// goroutine is already waiting. Only one waiter is supported.
	ErrWaitInProgress = errors.New("nrf24: wait already in progress")
)
