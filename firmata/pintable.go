package firmata

import (
	"sync"
	"time"

	"periph.io/x/conn/v3/pin"
)

// DigitalCallback is invoked when a digital pin's observed value changes by
// at least its configured differential (spec §3, §4.3).
type DigitalCallback func(pinNumber uint8, value int, pullUp bool, ts time.Time)

// digitalPinRecord is one entry of the digital pin table (spec §3 "Pin
// record (digital)"): current value, last change time, optional callback,
// differential threshold, and a pull-up tag.
type digitalPinRecord struct {
	mode         pin.Func
	value        int
	lastChange   time.Time
	callback     DigitalCallback
	differential int
	pullUp       bool
}

// digitalPinTable holds one record per digital pin, guarded by a single
// mutex held only for the duration of a single record update (spec §5
// "Shared resources"). Callbacks are read out and invoked outside the lock.
type digitalPinTable struct {
	mu    sync.Mutex
	pins  []digitalPinRecord
	ports []byte // output cache, one byte per group of 8 pins (spec §3 "Port output cache")
}

func newDigitalPinTable(n int) *digitalPinTable {
	return &digitalPinTable{
		pins:  make([]digitalPinRecord, n),
		ports: make([]byte, (n+7)/8),
	}
}

// setMode is a no-op on an out-of-range pin index; callers validate first via
// Client.checkDigitalPin, but the table guards itself too since update's
// index comes straight off the wire.
func (t *digitalPinTable) setMode(pinNumber uint8, mode pin.Func) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(pinNumber) >= len(t.pins) {
		return
	}
	t.pins[pinNumber] = digitalPinRecord{mode: mode, differential: 1}
}

func (t *digitalPinTable) configure(pinNumber uint8, pullUp bool, differential int, cb DigitalCallback) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(pinNumber) >= len(t.pins) {
		return
	}
	p := &t.pins[pinNumber]
	p.pullUp = pullUp
	if differential > 0 {
		p.differential = differential
	} else if p.differential == 0 {
		p.differential = 1
	}
	p.callback = cb
}

// update applies a freshly decoded digital value. It returns the callback to
// invoke (nil if none, or if the change did not clear the differential) so
// the caller can run it outside the table lock (spec §5).
func (t *digitalPinTable) update(pinNumber uint8, value int, ts time.Time) (DigitalCallback, int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(pinNumber) >= len(t.pins) {
		return nil, 0, false
	}
	p := &t.pins[pinNumber]
	prev := p.value
	diff := value - prev
	if diff < 0 {
		diff = -diff
	}
	if diff < p.differential {
		return nil, 0, false
	}
	p.value = value
	p.lastChange = ts
	return p.callback, value, p.pullUp
}

// read returns the cached value and timestamp with no I/O (spec §4.4
// "digital_read").
func (t *digitalPinTable) read(pinNumber uint8) (int, time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(pinNumber) >= len(t.pins) {
		return 0, time.Time{}
	}
	p := &t.pins[pinNumber]
	return p.value, p.lastChange
}

// setPortBit updates the cached output byte for pinNumber's port and
// returns the full port byte, used to build DIGITAL_MESSAGE writes (spec
// §4.4 "digital_write": "the first updates the port's cached byte"). It
// returns a zero value for an out-of-range pin.
func (t *digitalPinTable) setPortBit(pinNumber uint8, level bool) (port uint8, value byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	port = pinNumber / 8
	if int(port) >= len(t.ports) {
		return port, 0
	}
	bit := pinNumber % 8
	if level {
		t.ports[port] |= 1 << bit
	} else {
		t.ports[port] &^= 1 << bit
	}
	return port, t.ports[port]
}

func (t *digitalPinTable) len() int {
	return len(t.pins)
}
