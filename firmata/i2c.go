package firmata

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Err10BitAddressingNotSupported is returned by I2CBus.Tx for an address
// that does not fit in Firmata's 7-bit I2C_REQUEST address field.
var Err10BitAddressingNotSupported = fmt.Errorf("%w: 10-bit addressing not supported", ErrInvalidArgument)

// I2CBus adapts a Client's i2cDeviceTable to periph.io's i2c.Bus, bridging
// the table's async I2CCallback to a synchronous Tx call with a one-shot
// channel (spec §3 "I²C device entry" is the table this wraps).
type I2CBus struct {
	c  *Client
	mu sync.Mutex
}

// OpenI2CBus configures Firmata for I2C (I2C_CONFIG with no read delay) and
// returns a bus usable with any periph.io device driver.
func OpenI2CBus(c *Client) (*I2CBus, error) {
	if err := c.SetPinModeI2C(0); err != nil {
		return nil, err
	}
	return &I2CBus{c: c}, nil
}

func (b *I2CBus) Close() error {
	return nil
}

func (b *I2CBus) String() string {
	return "firmata i2c bus"
}

// Tx implements periph.io's i2c.Bus. A write is issued first if w is
// non-empty, then a bounded read if r is non-empty (spec §4.4
// "i2c_write"/"i2c_read").
func (b *I2CBus) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7F {
		return fmt.Errorf("%w: 0x%04X", Err10BitAddressingNotSupported, addr)
	}
	if len(r) > math.MaxUint16 {
		return fmt.Errorf("%w: cannot read more than %d bytes", ErrValueOutOfRange, math.MaxUint16)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	address := uint8(addr)

	if len(w) > 0 {
		if err := b.c.I2CWrite(address, w); err != nil {
			return err
		}
	}
	if len(r) == 0 {
		return nil
	}

	replyCh := make(chan []byte, 1)
	cb := func(_ uint8, _ uint8, data []byte, _ time.Time) {
		select {
		case replyCh <- data:
		default:
		}
	}
	if err := b.c.I2CRead(address, nil, len(r), cb); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()
	select {
	case data := <-replyCh:
		copy(r, data)
		return nil
	case <-ctx.Done():
		return ErrReplyTimeout
	}
}

func (b *I2CBus) SetSpeed(f physic.Frequency) error {
	return fmt.Errorf("%w: firmata does not support setting bus frequency", ErrUnsupportedFeature)
}
