package firmata

import (
	"sync"
	"time"
)

// I2CCallback is invoked when data for a previously-registered address
// arrives via I2C_REPLY (spec §4.4 "i2c_read").
type I2CCallback func(address uint8, register uint8, data []byte, ts time.Time)

type i2cDeviceEntry struct {
	register   uint8
	data       []byte
	lastChange time.Time
	callback   I2CCallback
}

// i2cDeviceTable is the I²C device table of spec §3, keyed by 7-bit address.
type i2cDeviceTable struct {
	mu      sync.Mutex
	entries map[uint8]*i2cDeviceEntry
}

func newI2CDeviceTable() *i2cDeviceTable {
	return &i2cDeviceTable{entries: make(map[uint8]*i2cDeviceEntry)}
}

// register installs (or replaces) the callback for an address, creating the
// entry if this is the first request against it (spec §4.4: "register a
// callback against the device address if absent").
func (t *i2cDeviceTable) register(address, register uint8, cb I2CCallback) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[address]
	if !ok {
		e = &i2cDeviceEntry{}
		t.entries[address] = e
	}
	e.register = register
	e.callback = cb
}

// update stores freshly decoded reply data and returns the callback to
// invoke outside the lock; a nil callback means no listener is registered
// for this address.
func (t *i2cDeviceTable) update(address uint8, data []byte, ts time.Time) (I2CCallback, uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[address]
	if !ok {
		e = &i2cDeviceEntry{}
		t.entries[address] = e
	}
	e.data = data
	e.lastChange = ts
	return e.callback, e.register
}

// savedData returns the cached register/data pair for address, or ok=false
// if nothing has been received yet (spec §4.4 "i2c_read_saved_data").
func (t *i2cDeviceTable) savedData(address uint8) (I2CPacket, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[address]
	if !ok || e.data == nil {
		return I2CPacket{}, false
	}
	return I2CPacket{Register: e.register, Data: e.data}, true
}
