package nrf24

import "fmt"

// Get reads the named registers and fields in a single batch. Each distinct
// register is read with exactly one bus transaction no matter how many
// requests reference it, and results come back in request order with request
// multiplicity. Multi byte registers are returned LSByte first packed into a
// uint64, the chip's wire order. Nothing is cached between calls: the chip's
// state can change underneath us, so every Get re-reads it.
//
// On any failure no results are returned. Reads have no side effects on the
// chip, so a failed Get may simply be retried.
func (d *Device) Get(reqs ...ReadRequest) ([]uint64, error) {
	for _, q := range reqs {
		if err := q.validate(); err != nil {
			return nil, err
		}
	}

	// Distinct registers in first appearance order.
	order := make([]uint8, 0, len(reqs))
	sizes := make(map[uint8]int, len(reqs))
	for _, q := range reqs {
		if _, ok := sizes[q.reg.addr]; !ok {
			sizes[q.reg.addr] = q.reg.size
			order = append(order, q.reg.addr)
		}
	}

	raw := make(map[uint8]uint64, len(order))
	for _, addr := range order {
		_, data, err := d.command(cmdRRegister|addr, nops(sizes[addr]))
		if err != nil {
			return nil, err
		}
		raw[addr] = leUint(data)
	}

	out := make([]uint64, len(reqs))
	for i, q := range reqs {
		switch q.kind {
		case reqRegister:
			out[i] = raw[q.reg.addr]
		case reqField:
			out[i] = uint64(q.field.Extract(raw[q.reg.addr]))
		}
	}
	return out, nil
}

// regWrite accumulates all write requests targeting one register.
type regWrite struct {
	reg    Register
	full   []byte         // final content if the register is overwritten whole
	fields []WriteRequest // field writes, in request order
}

// Set writes the named registers and fields in a single batch. Requests are
// grouped by register and each register is written with exactly one bus
// transaction. A register written whole is never read first; duplicate whole
// register writes collapse to the last one. A register written only through
// fields keeps its other bits: unless the written fields cover every bit,
// the current content is fetched with one extra read before the write.
// Writing a register both whole and by field in one call fails with
// ErrMixedWrite.
//
// All requests are checked before the first bus access, so a validation
// error leaves the chip untouched. A transport error mid-batch does not:
// registers grouped earlier have already been written, and the caller must
// treat the chip as partially updated.
//
// The returned Status is the one shifted out during the last write.
func (d *Device) Set(reqs ...WriteRequest) (Status, error) {
	for _, q := range reqs {
		if err := q.validate(); err != nil {
			return 0, err
		}
	}

	order := make([]uint8, 0, len(reqs))
	groups := make(map[uint8]*regWrite, len(reqs))
	for _, q := range reqs {
		g, ok := groups[q.reg.addr]
		if !ok {
			g = &regWrite{reg: q.reg}
			groups[q.reg.addr] = g
			order = append(order, q.reg.addr)
		}
		switch q.kind {
		case reqRegister:
			if len(g.fields) > 0 {
				return 0, fmt.Errorf("%w: %s", ErrMixedWrite, q.reg)
			}
			g.full = q.raw // last whole write wins
		case reqField:
			if g.full != nil {
				return 0, fmt.Errorf("%w: %s", ErrMixedWrite, q.reg)
			}
			g.fields = append(g.fields, q)
		}
	}

	var status Status
	for _, addr := range order {
		g := groups[addr]
		payload := g.full
		if payload == nil {
			var err error
			payload, err = d.composeFields(g)
			if err != nil {
				return 0, err
			}
		}
		st, _, err := d.command(cmdWRegister|addr, payload)
		if err != nil {
			return 0, err
		}
		status = st
	}
	return status, nil
}

// composeFields produces the register content for a field-only write group,
// reading the current content first when the group leaves bits untouched.
func (d *Device) composeFields(g *regWrite) ([]byte, error) {
	var mask, value uint64
	for _, q := range g.fields {
		m := q.field.mask()
		value = value&^m | uint64(q.value)<<q.field.offset
		mask |= m
	}
	var raw uint64
	if full := uint64(1)<<(8*g.reg.size) - 1; mask != full {
		_, data, err := d.command(cmdRRegister|g.reg.addr, nops(g.reg.size))
		if err != nil {
			return nil, err
		}
		raw = leUint(data)
	}
	return leBytes(raw&^mask|value, g.reg.size), nil
}

func leUint(b []byte) uint64 {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

func leBytes(v uint64, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	return b
}

// nops returns n SPI NOP filler bytes to clock a response out of the chip.
func nops(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = cmdNOP
	}
	return b
}
