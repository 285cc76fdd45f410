package nrf24

import (
	"errors"
	"sync"
	"time"
)

var errWire = errors.New("spi: broken wire")

// busSim simulates the chip's side of the SPI protocol: registers, FIFOs and
// the status byte shifted out under every command. It records each frame so
// tests can count and inspect transactions.
type busSim struct {
	regs   map[uint8][]byte
	status byte
	rx     [][]byte // RX FIFO
	tx     [][]byte // TX FIFO
	frames [][]byte
	// failAt makes the n-th transaction (1 based) fail; 0 disables.
	failAt int
}

func newBusSim() *busSim {
	b := &busSim{regs: map[uint8][]byte{}, status: 0x0E}
	for _, r := range Registers {
		b.regs[r.Addr()] = r.Reset()
	}
	return b
}

func (b *busSim) Tx(w, r []byte) error {
	b.frames = append(b.frames, append([]byte(nil), w...))
	if b.failAt > 0 && len(b.frames) >= b.failAt {
		return errWire
	}
	r[0] = b.status
	cmd := w[0]
	switch {
	case cmd&0xE0 == cmdRRegister:
		copy(r[1:], b.regs[cmd&addrMask])
	case cmd&0xE0 == cmdWRegister:
		b.regs[cmd&addrMask] = append([]byte(nil), w[1:]...)
	case cmd == cmdRRxPayload:
		if len(b.rx) > 0 {
			copy(r[1:], b.rx[0])
			b.rx = b.rx[1:]
		}
	case cmd == cmdRRxPlWid:
		if len(b.rx) > 0 {
			r[1] = byte(len(b.rx[0]))
		}
	case cmd == cmdWTxPayload, cmd == cmdWTxPayloadNoAck:
		b.tx = append(b.tx, append([]byte(nil), w[1:]...))
	case cmd == cmdFlushTx:
		b.tx = nil
	case cmd == cmdFlushRx:
		b.rx = nil
	}
	return nil
}

// reads counts read transactions of the given register.
func (b *busSim) reads(addr uint8) int {
	n := 0
	for _, f := range b.frames {
		if f[0] == cmdRRegister|addr {
			n++
		}
	}
	return n
}

// writes counts write transactions of the given register.
func (b *busSim) writes(addr uint8) int {
	n := 0
	for _, f := range b.frames {
		if f[0] == cmdWRegister|addr {
			n++
		}
	}
	return n
}

// fakePin records chip enable transitions.
type fakePin struct {
	levels []bool
	err    error
}

func (p *fakePin) Set(high bool) error {
	if p.err != nil {
		return p.err
	}
	p.levels = append(p.levels, high)
	return nil
}

// fakeLine is a hand triggered IRQ line.
type fakeLine struct {
	mu     sync.Mutex
	fn     func()
	armErr error
	armed  int
}

func (l *fakeLine) SetFallingEdgeFunc(fn func()) error {
	if l.armErr != nil {
		return l.armErr
	}
	l.mu.Lock()
	l.fn = fn
	l.armed++
	l.mu.Unlock()
	return nil
}

func (l *fakeLine) ClearFallingEdgeFunc() error {
	l.mu.Lock()
	l.fn = nil
	l.mu.Unlock()
	return nil
}

func (l *fakeLine) armedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.armed
}

func (l *fakeLine) fall() {
	l.mu.Lock()
	fn := l.fn
	l.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// fallSoon pulls the line low from another goroutine after d.
func (l *fakeLine) fallSoon(d time.Duration) {
	go func() {
		time.Sleep(d)
		l.fall()
	}()
}

func newTestDevice() (*Device, *busSim) {
	sim := newBusSim()
	return New(sim, &fakePin{}, nil), sim
}
