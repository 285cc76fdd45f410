package nrf24

import "fmt"

// Register describes one addressable configuration register on the chip:
// its 5 bit bus address, its width in bytes and its documented reset value.
// All registers are defined below as package variables and never mutated.
type Register struct {
	name  string
	addr  uint8
	size  int
	reset []byte
	ro    bool
}

// Name returns the register's datasheet name, e.g. "RF_SETUP".
func (r Register) Name() string { return r.name }

// Addr returns the register's bus address.
func (r Register) Addr() uint8 { return r.addr }

// Size returns the register's width in bytes.
func (r Register) Size() int { return r.size }

// Reset returns a copy of the register's documented reset value, LSByte
// first.
func (r Register) Reset() []byte { return append([]byte(nil), r.reset...) }

func (r Register) String() string {
	return fmt.Sprintf("%s (0x%02X)", r.name, r.addr)
}

// Field describes one named bit range within a register. Fields of a
// register never overlap.
type Field struct {
	reg    Register
	name   string
	offset uint8
	width  uint8
	ro     bool
}

// Name returns the field's datasheet name, e.g. "PWR_UP".
func (f Field) Name() string { return f.name }

// Register returns the register the field lives in.
func (f Field) Register() Register { return f.reg }

// Offset returns the field's lowest bit position.
func (f Field) Offset() uint8 { return f.offset }

// Width returns the field's size in bits.
func (f Field) Width() uint8 { return f.width }

// Max returns the largest value the field can hold.
func (f Field) Max() uint8 { return 1<<f.width - 1 }

// Extract returns the field's value given the raw register content.
func (f Field) Extract(raw uint64) uint8 {
	return uint8(raw>>f.offset) & f.Max()
}

func (f Field) mask() uint64 { return uint64(f.Max()) << f.offset }

func (f Field) String() string {
	return fmt.Sprintf("%s.%s", f.reg.name, f.name)
}

// The full register map of the nRF24L01+. Reserved bits are omitted; they
// read and must be written as zero, which the reset values below encode.
var (
	RegConfig     = Register{name: "CONFIG", addr: 0x00, size: 1, reset: []byte{0x08}}
	RegEnAA       = Register{name: "EN_AA", addr: 0x01, size: 1, reset: []byte{0x3F}}
	RegEnRxAddr   = Register{name: "EN_RXADDR", addr: 0x02, size: 1, reset: []byte{0x03}}
	RegSetupAW    = Register{name: "SETUP_AW", addr: 0x03, size: 1, reset: []byte{0x03}}
	RegSetupRetr  = Register{name: "SETUP_RETR", addr: 0x04, size: 1, reset: []byte{0x03}}
	RegRFCh       = Register{name: "RF_CH", addr: 0x05, size: 1, reset: []byte{0x02}}
	RegRFSetup    = Register{name: "RF_SETUP", addr: 0x06, size: 1, reset: []byte{0x0E}}
	RegStatus     = Register{name: "STATUS", addr: 0x07, size: 1, reset: []byte{0x0E}}
	RegObserveTx  = Register{name: "OBSERVE_TX", addr: 0x08, size: 1, reset: []byte{0x00}, ro: true}
	RegRPD        = Register{name: "RPD", addr: 0x09, size: 1, reset: []byte{0x00}, ro: true}
	RegRxAddrP0   = Register{name: "RX_ADDR_P0", addr: 0x0A, size: 5, reset: []byte{0xE7, 0xE7, 0xE7, 0xE7, 0xE7}}
	RegRxAddrP1   = Register{name: "RX_ADDR_P1", addr: 0x0B, size: 5, reset: []byte{0xC2, 0xC2, 0xC2, 0xC2, 0xC2}}
	RegRxAddrP2   = Register{name: "RX_ADDR_P2", addr: 0x0C, size: 1, reset: []byte{0xC3}}
	RegRxAddrP3   = Register{name: "RX_ADDR_P3", addr: 0x0D, size: 1, reset: []byte{0xC4}}
	RegRxAddrP4   = Register{name: "RX_ADDR_P4", addr: 0x0E, size: 1, reset: []byte{0xC5}}
	RegRxAddrP5   = Register{name: "RX_ADDR_P5", addr: 0x0F, size: 1, reset: []byte{0xC6}}
	RegTxAddr     = Register{name: "TX_ADDR", addr: 0x10, size: 5, reset: []byte{0xE7, 0xE7, 0xE7, 0xE7, 0xE7}}
	RegRxPwP0     = Register{name: "RX_PW_P0", addr: 0x11, size: 1, reset: []byte{0x00}}
	RegRxPwP1     = Register{name: "RX_PW_P1", addr: 0x12, size: 1, reset: []byte{0x00}}
	RegRxPwP2     = Register{name: "RX_PW_P2", addr: 0x13, size: 1, reset: []byte{0x00}}
	RegRxPwP3     = Register{name: "RX_PW_P3", addr: 0x14, size: 1, reset: []byte{0x00}}
	RegRxPwP4     = Register{name: "RX_PW_P4", addr: 0x15, size: 1, reset: []byte{0x00}}
	RegRxPwP5     = Register{name: "RX_PW_P5", addr: 0x16, size: 1, reset: []byte{0x00}}
	RegFIFOStatus = Register{name: "FIFO_STATUS", addr: 0x17, size: 1, reset: []byte{0x11}, ro: true}
	RegDynPD      = Register{name: "DYNPD", addr: 0x1C, size: 1, reset: []byte{0x00}}
	RegFeature    = Register{name: "FEATURE", addr: 0x1D, size: 1, reset: []byte{0x00}}
)

// Registers lists every register in address order.
var Registers = []Register{
	RegConfig, RegEnAA, RegEnRxAddr, RegSetupAW, RegSetupRetr, RegRFCh,
	RegRFSetup, RegStatus, RegObserveTx, RegRPD, RegRxAddrP0, RegRxAddrP1,
	RegRxAddrP2, RegRxAddrP3, RegRxAddrP4, RegRxAddrP5, RegTxAddr,
	RegRxPwP0, RegRxPwP1, RegRxPwP2, RegRxPwP3, RegRxPwP4, RegRxPwP5,
	RegFIFOStatus, RegDynPD, RegFeature,
}

// CONFIG
var (
	MaskRxDR  = Field{reg: RegConfig, name: "MASK_RX_DR", offset: 6, width: 1}
	MaskTxDS  = Field{reg: RegConfig, name: "MASK_TX_DS", offset: 5, width: 1}
	MaskMaxRT = Field{reg: RegConfig, name: "MASK_MAX_RT", offset: 4, width: 1}
	EnCRC     = Field{reg: RegConfig, name: "EN_CRC", offset: 3, width: 1}
	CRCO      = Field{reg: RegConfig, name: "CRCO", offset: 2, width: 1}
	PwrUp     = Field{reg: RegConfig, name: "PWR_UP", offset: 1, width: 1}
	PrimRx    = Field{reg: RegConfig, name: "PRIM_RX", offset: 0, width: 1}
)

// EN_AA, auto acknowledgement per pipe.
var (
	EnAAP5 = Field{reg: RegEnAA, name: "ENAA_P5", offset: 5, width: 1}
	EnAAP4 = Field{reg: RegEnAA, name: "ENAA_P4", offset: 4, width: 1}
	EnAAP3 = Field{reg: RegEnAA, name: "ENAA_P3", offset: 3, width: 1}
	EnAAP2 = Field{reg: RegEnAA, name: "ENAA_P2", offset: 2, width: 1}
	EnAAP1 = Field{reg: RegEnAA, name: "ENAA_P1", offset: 1, width: 1}
	EnAAP0 = Field{reg: RegEnAA, name: "ENAA_P0", offset: 0, width: 1}
)

// EN_RXADDR, enabled RX pipes.
var (
	ErxP5 = Field{reg: RegEnRxAddr, name: "ERX_P5", offset: 5, width: 1}
	ErxP4 = Field{reg: RegEnRxAddr, name: "ERX_P4", offset: 4, width: 1}
	ErxP3 = Field{reg: RegEnRxAddr, name: "ERX_P3", offset: 3, width: 1}
	ErxP2 = Field{reg: RegEnRxAddr, name: "ERX_P2", offset: 2, width: 1}
	ErxP1 = Field{reg: RegEnRxAddr, name: "ERX_P1", offset: 1, width: 1}
	ErxP0 = Field{reg: RegEnRxAddr, name: "ERX_P0", offset: 0, width: 1}
)

// SETUP_AW. '01' is 3 bytes, '10' 4 bytes, '11' 5 bytes.
var AW = Field{reg: RegSetupAW, name: "AW", offset: 0, width: 2}

// SETUP_RETR. ARD is the retransmit delay in 250us steps minus one, ARC the
// retransmit count (0 disables retransmission).
var (
	ARD = Field{reg: RegSetupRetr, name: "ARD", offset: 4, width: 4}
	ARC = Field{reg: RegSetupRetr, name: "ARC", offset: 0, width: 4}
)

// RF_CH, frequency channel 0..127 above 2400MHz.
var RFCh = Field{reg: RegRFCh, name: "RF_CH", offset: 0, width: 7}

// RF_SETUP. Data rate is encoded as [RF_DR_LOW, RF_DR_HIGH]: '00' 1Mbps,
// '01' 2Mbps, '10' 250kbps.
var (
	ContWave = Field{reg: RegRFSetup, name: "CONT_WAVE", offset: 7, width: 1}
	RFDRLow  = Field{reg: RegRFSetup, name: "RF_DR_LOW", offset: 5, width: 1}
	PLLLock  = Field{reg: RegRFSetup, name: "PLL_LOCK", offset: 4, width: 1}
	RFDRHigh = Field{reg: RegRFSetup, name: "RF_DR_HIGH", offset: 3, width: 1}
	RFPwr    = Field{reg: RegRFSetup, name: "RF_PWR", offset: 1, width: 2}
)

// STATUS. The interrupt flags are cleared by writing one to them.
var (
	RxDR   = Field{reg: RegStatus, name: "RX_DR", offset: 6, width: 1}
	TxDS   = Field{reg: RegStatus, name: "TX_DS", offset: 5, width: 1}
	MaxRT  = Field{reg: RegStatus, name: "MAX_RT", offset: 4, width: 1}
	RxPNo  = Field{reg: RegStatus, name: "RX_P_NO", offset: 1, width: 3, ro: true}
	TxFull = Field{reg: RegStatus, name: "TX_FULL", offset: 0, width: 1, ro: true}
)

// OBSERVE_TX, lost and retransmitted packet counters.
var (
	PlosCnt = Field{reg: RegObserveTx, name: "PLOS_CNT", offset: 4, width: 4, ro: true}
	ArcCnt  = Field{reg: RegObserveTx, name: "ARC_CNT", offset: 0, width: 4, ro: true}
)

// RPD, received power detector (carrier detect on the nRF24L01).
var RPD = Field{reg: RegRPD, name: "RPD", offset: 0, width: 1, ro: true}

// RX_PW_Pn, static RX payload width per pipe, 0 disables the pipe.
var (
	RxPwP0 = Field{reg: RegRxPwP0, name: "RX_PW_P0", offset: 0, width: 6}
	RxPwP1 = Field{reg: RegRxPwP1, name: "RX_PW_P1", offset: 0, width: 6}
	RxPwP2 = Field{reg: RegRxPwP2, name: "RX_PW_P2", offset: 0, width: 6}
	RxPwP3 = Field{reg: RegRxPwP3, name: "RX_PW_P3", offset: 0, width: 6}
	RxPwP4 = Field{reg: RegRxPwP4, name: "RX_PW_P4", offset: 0, width: 6}
	RxPwP5 = Field{reg: RegRxPwP5, name: "RX_PW_P5", offset: 0, width: 6}
)

// FIFO_STATUS
var (
	TxReuse    = Field{reg: RegFIFOStatus, name: "TX_REUSE", offset: 6, width: 1, ro: true}
	TxFIFOFull = Field{reg: RegFIFOStatus, name: "TX_FULL", offset: 5, width: 1, ro: true}
	TxEmpty    = Field{reg: RegFIFOStatus, name: "TX_EMPTY", offset: 4, width: 1, ro: true}
	RxFull     = Field{reg: RegFIFOStatus, name: "RX_FULL", offset: 1, width: 1, ro: true}
	RxEmpty    = Field{reg: RegFIFOStatus, name: "RX_EMPTY", offset: 0, width: 1, ro: true}
)

// DYNPD, dynamic payload length per pipe. Requires EN_DPL and ENAA_Pn.
var (
	DplP5 = Field{reg: RegDynPD, name: "DPL_P5", offset: 5, width: 1}
	DplP4 = Field{reg: RegDynPD, name: "DPL_P4", offset: 4, width: 1}
	DplP3 = Field{reg: RegDynPD, name: "DPL_P3", offset: 3, width: 1}
	DplP2 = Field{reg: RegDynPD, name: "DPL_P2", offset: 2, width: 1}
	DplP1 = Field{reg: RegDynPD, name: "DPL_P1", offset: 1, width: 1}
	DplP0 = Field{reg: RegDynPD, name: "DPL_P0", offset: 0, width: 1}
)

// FEATURE
var (
	EnDPL    = Field{reg: RegFeature, name: "EN_DPL", offset: 2, width: 1}
	EnAckPay = Field{reg: RegFeature, name: "EN_ACK_PAY", offset: 1, width: 1}
	EnDynAck = Field{reg: RegFeature, name: "EN_DYN_ACK", offset: 0, width: 1}
)
