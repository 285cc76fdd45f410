package nrf24

import "strconv"

// Status is the value of the STATUS register as shifted out on MISO while a
// command byte is shifted in. Every command method returns it.
type Status byte

const (
	StatTxFull Status = 1 << iota // TX FIFO full flag.
	_
	_
	_
	StatMaxRT // Maximum number of TX retransmits interrupt.
	StatTxDS  // Data sent TX FIFO interrupt.
	StatRxDR  // Data ready RX FIFO interrupt.
)

// RxPipe returns the pipe number of the payload available for reading from
// the RX FIFO, or -1 if the RX FIFO is empty.
func (s Status) RxPipe() int {
	n := int(s) & 0x0E
	if n == 0x0E {
		return -1
	}
	return n >> 1
}

func (s Status) String() string {
	return flags("RX_DR+ TX_DS+ MAX_RT+ TX_FULL+ RX_P_NO:", 0x71, byte(s)) +
		strconv.Itoa(s.RxPipe())
}

// flags replaces each '+' in f with '+' or '-' for the next bit of mask,
// from the highest bit down.
func flags(f string, mask, b byte) string {
	buf := make([]byte, len(f))
	m := byte(0x80)
	for i := range buf {
		if f[i] != '+' {
			buf[i] = f[i]
			continue
		}
		for mask&m == 0 {
			m >>= 1
		}
		if b&m == 0 {
			buf[i] = '-'
		} else {
			buf[i] = '+'
		}
		m >>= 1
	}
	return string(buf)
}
