package nrf24

import "fmt"

// MaxPayloadSize is the chip's FIFO payload limit in bytes.
const MaxPayloadSize = 32

// Device drives one nRF24L01+ over its SPI bus and CE line. Not safe for
// concurrent use except for CancelWait; a Device must also not share its bus
// or pins with another Device for the same physical chip.
type Device struct {
	bus Bus
	ce  Pin
	irq *irqWaiter
}

// New returns a Device using bus for SPI transactions and ce for the chip
// enable line. irq may be nil when the IRQ pin is not wired up; WaitForIRQ
// then fails with ErrNoIRQLine.
func New(bus Bus, ce Pin, irq IRQLine) *Device {
	d := &Device{bus: bus, ce: ce}
	if irq != nil {
		d.irq = newIRQWaiter(irq)
	}
	return d
}

// command clocks out cmd followed by tx and returns the STATUS byte shifted
// out under cmd plus the bytes shifted out under tx.
func (d *Device) command(cmd byte, tx []byte) (Status, []byte, error) {
	w := make([]byte, 1+len(tx))
	w[0] = cmd
	copy(w[1:], tx)
	r := make([]byte, len(w))
	if err := d.bus.Tx(w, r); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return Status(r[0]), r[1:], nil
}

// ChipEnableHigh drives the CE pin high. In PRX mode high CE activates the
// receiver; in PTX mode a >10us pulse starts transmission.
func (d *Device) ChipEnableHigh() error { return d.ce.Set(true) }

// ChipEnableLow drives the CE pin low, returning the chip to standby.
func (d *Device) ChipEnableLow() error { return d.ce.Set(false) }

// Status reads the STATUS register using the NOP command, without touching
// anything else.
func (d *Device) Status() (Status, error) {
	st, _, err := d.command(cmdNOP, nil)
	return st, err
}

// GetReg reads a register's raw bytes, LSByte first. Unlike Get it hands
// back the byte slice, which is the practical form for the 5 byte address
// registers.
func (d *Device) GetReg(r Register) (Status, []byte, error) {
	if r.size == 0 {
		return 0, nil, fmt.Errorf("%w: zero register", ErrInvalidReference)
	}
	return d.command(cmdRRegister|r.addr, nops(r.size))
}

// FlushTx discards the TX FIFO.
func (d *Device) FlushTx() (Status, error) {
	st, _, err := d.command(cmdFlushTx, nil)
	return st, err
}

// FlushRx discards the RX FIFO. Should not be used while an acknowledge
// payload is being transmitted.
func (d *Device) FlushRx() (Status, error) {
	st, _, err := d.command(cmdFlushRx, nil)
	return st, err
}

// ReuseTxPayload rearms the last transmitted payload for retransmission on
// the next CE pulse. Active until W_TX_PAYLOAD or FLUSH_TX.
func (d *Device) ReuseTxPayload() (Status, error) {
	st, _, err := d.command(cmdReuseTxPl, nil)
	return st, err
}

func (d *Device) writePayload(cmd byte, p []byte) (Status, error) {
	if len(p) < 1 || len(p) > MaxPayloadSize {
		return 0, fmt.Errorf("%w: payload of %d bytes", ErrValueOutOfRange, len(p))
	}
	st, _, err := d.command(cmd, p)
	return st, err
}

// WriteTxPayload pushes a 1 to 32 byte payload onto the TX FIFO.
func (d *Device) WriteTxPayload(p []byte) (Status, error) {
	return d.writePayload(cmdWTxPayload, p)
}

// WriteTxPayloadNoAck pushes a payload that disables auto acknowledgement
// for this one packet. Requires the EN_DYN_ACK feature.
func (d *Device) WriteTxPayloadNoAck(p []byte) (Status, error) {
	return d.writePayload(cmdWTxPayloadNoAck, p)
}

// WriteAckPayload queues a payload to go out with the next acknowledgement
// on the given pipe (0..5). Used in PRX mode; requires the EN_ACK_PAY
// feature. Up to three such payloads can be pending.
func (d *Device) WriteAckPayload(pipe int, p []byte) (Status, error) {
	if pipe < 0 || pipe > 5 {
		return 0, fmt.Errorf("%w: pipe %d", ErrValueOutOfRange, pipe)
	}
	return d.writePayload(cmdWAckPayload|byte(pipe), p)
}

// ReadRxPayload pops n bytes (1 to 32) off the RX FIFO, returning the chip
// status and the payload from the same transaction.
func (d *Device) ReadRxPayload(n int) (Status, []byte, error) {
	if n < 1 || n > MaxPayloadSize {
		return 0, nil, fmt.Errorf("%w: payload of %d bytes", ErrValueOutOfRange, n)
	}
	return d.command(cmdRRxPayload, nops(n))
}

// RxPayloadSize reads the payload width of the packet at the head of the RX
// FIFO (R_RX_PL_WID). A value above 32 means the packet is corrupt and the
// RX FIFO should be flushed.
func (d *Device) RxPayloadSize() (Status, int, error) {
	st, data, err := d.command(cmdRRxPlWid, nops(1))
	if err != nil {
		return 0, 0, err
	}
	return st, int(data[0]), nil
}

// ResetToDefault drops CE, flushes both FIFOs, restores every writable
// register to its documented reset value and clears the write-one-to-clear
// interrupt flags, leaving the chip as after power on.
func (d *Device) ResetToDefault() error {
	if err := d.ChipEnableLow(); err != nil {
		return err
	}
	if _, err := d.FlushTx(); err != nil {
		return err
	}
	if _, err := d.FlushRx(); err != nil {
		return err
	}
	reqs := make([]WriteRequest, 0, len(Registers))
	for _, r := range Registers {
		if r.ro || r.addr == RegStatus.addr {
			continue
		}
		reqs = append(reqs, WriteRegBytes(r, r.reset))
	}
	// RX_DR, TX_DS and MAX_RT reset by having ones written to them.
	reqs = append(reqs, WriteReg(RegStatus, uint64(StatRxDR|StatTxDS|StatMaxRT)))
	_, err := d.Set(reqs...)
	return err
}
