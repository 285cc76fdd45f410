package nrf24

// SPI command words, nRF24L01+ product specification table 19. Register
// commands carry the 5 bit register address in their low bits; the STATUS
// register is shifted out on MISO while any command byte is shifted in.
const (
	cmdRRegister       = 0x00 // 000A AAAA
	cmdWRegister       = 0x20 // 001A AAAA
	cmdRRxPayload      = 0x61
	cmdWTxPayload      = 0xA0
	cmdFlushTx         = 0xE1
	cmdFlushRx         = 0xE2
	cmdReuseTxPl       = 0xE3
	cmdRRxPlWid        = 0x60
	cmdWAckPayload     = 0xA8 // 1010 1PPP
	cmdWTxPayloadNoAck = 0xB0
	cmdNOP             = 0xFF

	addrMask = 0x1F
)
