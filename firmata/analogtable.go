package firmata

import (
	"sync"
	"time"
)

// AnalogCallback is invoked when an analog pin's 14-bit value changes by at
// least its configured differential (spec §3 "Pin record (analog)").
type AnalogCallback func(analogPinNumber uint8, value int, ts time.Time)

type analogPinRecord struct {
	value        int
	lastChange   time.Time
	callback     AnalogCallback
	differential int
}

// analogPinTable mirrors digitalPinTable but is indexed by analog ordinal
// (spec §3 invariant: "Analog pins are indexed both by their Firmata digital
// pin number ... and by their analog ordinal").
type analogPinTable struct {
	mu   sync.Mutex
	pins []analogPinRecord
}

func newAnalogPinTable(n int) *analogPinTable {
	pins := make([]analogPinRecord, n)
	for i := range pins {
		pins[i].differential = 1
	}
	return &analogPinTable{pins: pins}
}

func (t *analogPinTable) configure(analogPinNumber uint8, differential int, cb AnalogCallback) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(analogPinNumber) >= len(t.pins) {
		return
	}
	p := &t.pins[analogPinNumber]
	if differential > 0 {
		p.differential = differential
	}
	p.callback = cb
}

func (t *analogPinTable) update(analogPinNumber uint8, value int, ts time.Time) (AnalogCallback, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(analogPinNumber) >= len(t.pins) {
		return nil, 0
	}
	p := &t.pins[analogPinNumber]
	prev := p.value
	diff := value - prev
	if diff < 0 {
		diff = -diff
	}
	if diff < p.differential {
		return nil, 0
	}
	p.value = value
	p.lastChange = ts
	return p.callback, value
}

func (t *analogPinTable) read(analogPinNumber uint8) (int, time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(analogPinNumber) >= len(t.pins) {
		return 0, time.Time{}
	}
	p := &t.pins[analogPinNumber]
	return p.value, p.lastChange
}

func (t *analogPinTable) len() int {
	return len(t.pins)
}
