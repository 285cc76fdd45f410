package nrf24

import "fmt"

type reqKind uint8

const (
	reqInvalid reqKind = iota
	reqRegister
	reqField
)

// ReadRequest names a Register or a Field whose value Get should return.
// The zero value is invalid and makes Get fail with ErrInvalidReference.
type ReadRequest struct {
	kind  reqKind
	reg   Register
	field Field
}

// ReadReg requests the raw content of a register.
func ReadReg(r Register) ReadRequest {
	return ReadRequest{kind: reqRegister, reg: r}
}

// ReadField requests the value of a single bit field.
func ReadField(f Field) ReadRequest {
	return ReadRequest{kind: reqField, reg: f.reg, field: f}
}

func (q ReadRequest) validate() error {
	switch q.kind {
	case reqRegister:
		if q.reg.size == 0 {
			return fmt.Errorf("%w: zero register", ErrInvalidReference)
		}
	case reqField:
		if q.reg.size == 0 || q.field.width == 0 {
			return fmt.Errorf("%w: zero field", ErrInvalidReference)
		}
	default:
		return ErrInvalidReference
	}
	return nil
}

// WriteRequest binds a Register or a Field to a value for Set. Construct it
// with WriteReg, WriteRegBytes or WriteField. The zero value is invalid.
type WriteRequest struct {
	kind     reqKind
	reg      Register
	field    Field
	value    uint8
	raw      []byte
	overflow bool
}

// WriteReg binds a full register overwrite. value must fit the register's
// byte width and is sent LSByte first.
func WriteReg(r Register, value uint64) WriteRequest {
	raw := make([]byte, r.size)
	for i := range raw {
		raw[i] = byte(value >> (8 * i))
	}
	overflow := r.size > 0 && r.size < 8 && value>>(8*r.size) != 0
	return WriteRequest{kind: reqRegister, reg: r, raw: raw, overflow: overflow}
}

// WriteRegBytes binds a full register overwrite from raw bytes, LSByte
// first. len(value) must equal the register's width.
func WriteRegBytes(r Register, value []byte) WriteRequest {
	return WriteRequest{kind: reqRegister, reg: r, raw: append([]byte(nil), value...)}
}

// WriteField binds a field write. value must fit the field's bit width.
func WriteField(f Field, value uint8) WriteRequest {
	return WriteRequest{kind: reqField, reg: f.reg, field: f, value: value}
}

func (q WriteRequest) validate() error {
	switch q.kind {
	case reqRegister:
		if q.reg.size == 0 {
			return fmt.Errorf("%w: zero register", ErrInvalidReference)
		}
		if q.reg.ro {
			return fmt.Errorf("%w: %s", ErrReadOnly, q.reg)
		}
		if q.overflow {
			return fmt.Errorf("%w: value does not fit %d byte register %s",
				ErrValueOutOfRange, q.reg.size, q.reg)
		}
		if len(q.raw) != q.reg.size {
			return fmt.Errorf("%w: %d byte value for %d byte register %s",
				ErrValueOutOfRange, len(q.raw), q.reg.size, q.reg)
		}
	case reqField:
		if q.reg.size == 0 || q.field.width == 0 {
			return fmt.Errorf("%w: zero field", ErrInvalidReference)
		}
		if q.field.ro {
			return fmt.Errorf("%w: %s", ErrReadOnly, q.field)
		}
		if q.value > q.field.Max() {
			return fmt.Errorf("%w: %d exceeds %d bit field %s",
				ErrValueOutOfRange, q.value, q.field.width, q.field)
		}
	default:
		return ErrInvalidReference
	}
	return nil
}
