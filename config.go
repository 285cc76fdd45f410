package nrf24

import (
	"fmt"
	"time"
)

// DataRate selects the air data rate.
type DataRate uint8

const (
	DataRate1Mbps DataRate = iota
	DataRate2Mbps
	DataRate250Kbps
)

// Power selects the RF output power in TX mode.
type Power uint8

const (
	PowerMinus18dBm Power = iota
	PowerMinus12dBm
	PowerMinus6dBm
	Power0dBm
)

// CRCMode selects the CRC length appended to packets. CRC is forced on by
// the chip whenever any pipe has auto acknowledgement enabled.
type CRCMode uint8

const (
	CRCDisabled CRCMode = iota
	CRC8
	CRC16
)

// Config describes the common radio parameters. Configure applies it as one
// Set batch; everything else on the chip stays reachable through Set
// directly.
type Config struct {
	Channel  uint8 // RF channel 0..125, carrier at 2400+Channel MHz
	DataRate DataRate
	Power    Power
	CRC      CRCMode
	// AddressWidth is the pipe address width in bytes, 3 to 5.
	// 0 means 5, the chip default.
	AddressWidth int
	// RetransmitCount is the auto retransmit limit, 0..15. 0 disables
	// auto retransmission.
	RetransmitCount uint8
	// RetransmitDelay is the wait between retransmissions, a multiple of
	// 250us up to 4ms. 0 means 250us.
	RetransmitDelay time.Duration
}

// Configure applies cfg in a single Set batch.
func (d *Device) Configure(cfg Config) error {
	if cfg.Channel > 125 {
		return fmt.Errorf("%w: channel %d", ErrValueOutOfRange, cfg.Channel)
	}
	if cfg.AddressWidth == 0 {
		cfg.AddressWidth = 5
	}
	if cfg.AddressWidth < 3 || cfg.AddressWidth > 5 {
		return fmt.Errorf("%w: address width %d", ErrValueOutOfRange, cfg.AddressWidth)
	}
	if cfg.RetransmitCount > 15 {
		return fmt.Errorf("%w: retransmit count %d", ErrValueOutOfRange, cfg.RetransmitCount)
	}
	if cfg.RetransmitDelay == 0 {
		cfg.RetransmitDelay = 250 * time.Microsecond
	}
	if cfg.RetransmitDelay < 250*time.Microsecond || cfg.RetransmitDelay > 4*time.Millisecond {
		return fmt.Errorf("%w: retransmit delay %v", ErrValueOutOfRange, cfg.RetransmitDelay)
	}

	var drLow, drHigh uint8
	switch cfg.DataRate {
	case DataRate1Mbps:
	case DataRate2Mbps:
		drHigh = 1
	case DataRate250Kbps:
		drLow = 1
	default:
		return fmt.Errorf("%w: data rate %d", ErrValueOutOfRange, cfg.DataRate)
	}
	var enCRC, crco uint8
	switch cfg.CRC {
	case CRCDisabled:
	case CRC8:
		enCRC = 1
	case CRC16:
		enCRC, crco = 1, 1
	default:
		return fmt.Errorf("%w: crc mode %d", ErrValueOutOfRange, cfg.CRC)
	}
	if cfg.Power > Power0dBm {
		return fmt.Errorf("%w: power %d", ErrValueOutOfRange, cfg.Power)
	}

	ard := uint8(cfg.RetransmitDelay/(250*time.Microsecond)) - 1

	_, err := d.Set(
		WriteField(RFCh, cfg.Channel),
		WriteField(RFDRLow, drLow),
		WriteField(RFDRHigh, drHigh),
		WriteField(RFPwr, uint8(cfg.Power)),
		WriteField(EnCRC, enCRC),
		WriteField(CRCO, crco),
		WriteField(AW, uint8(cfg.AddressWidth-2)),
		WriteField(ARD, ard),
		WriteField(ARC, cfg.RetransmitCount),
	)
	return err
}
