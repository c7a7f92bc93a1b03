package firmata

import (
	"sync"
	"time"
)

// DHT sensor type codes (spec §3 "DHT registration").
const (
	DhtSensorDHT11   uint8 = 11
	DhtSensorDHT12   uint8 = 12
	DhtSensorDHT21   uint8 = 21
	DhtSensorDHT22   uint8 = 22
	DhtSensorAM2301  uint8 = 21 // wire-compatible with DHT21
)

// DhtCallback is invoked when a DHT pin's decoded humidity or temperature
// changes by at least its configured differential (spec §4.3 "DHT
// decoding").
type DhtCallback func(pinNumber uint8, sensorType uint8, humidity, temperature float64, status DhtErrorStatus, ts time.Time)

type dhtEntry struct {
	sensorType   uint8
	humidity     float64
	temperature  float64
	status       DhtErrorStatus
	differential float64
	callback     DhtCallback
}

// dhtTable is the DHT registration of spec §3: a set of digital pins
// configured for a DHT sensor, each carrying its sensor type and
// differential.
type dhtTable struct {
	mu      sync.Mutex
	entries map[uint8]*dhtEntry
	// lastErr latches the most recent non-zero DHT error status across every
	// registered pin (spec §7: "DhtSensorError ... latched in a driver-level
	// flag"), independent of the per-pin differential gate below.
	lastErr *DhtError
}

func newDhtTable() *dhtTable {
	return &dhtTable{entries: make(map[uint8]*dhtEntry)}
}

// register installs a DHT pin the first time it is seen; on a repeat call it
// only updates the differential, mirroring the reference driver's
// "allow user to change the differential value" behavior for an
// already-registered pin (spec §4.4 "set_pin_mode_dht").
func (t *dhtTable) register(pinNumber, sensorType uint8, differential float64, cb DhtCallback) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[pinNumber]; ok {
		e.differential = differential
		return false
	}
	t.entries[pinNumber] = &dhtEntry{sensorType: sensorType, differential: differential, callback: cb}
	return true
}

// decodeDHTPayload implements the decoding rule of spec §4.3: pin, sensor
// type, four data bytes, sign flag, error status, config flag, config value.
func decodeDHTPayload(payload []byte) (pinNumber, sensorType uint8, humidity, temperature float64, status DhtErrorStatus) {
	pinNumber = payload[0]
	sensorType = payload[1]
	b2, b3, b4, b5 := payload[2], payload[3], payload[4], payload[5]
	signFlag := payload[6]
	errStatus := payload[7]
	configFlag := payload[8]

	switch {
	case configFlag != 0:
		return pinNumber, sensorType, -1, -1, DhtErrorConfig
	case errStatus == uint8(DhtErrorChecksum):
		return pinNumber, sensorType, -2, -2, DhtErrorChecksum
	case errStatus == uint8(DhtErrorTimeout):
		return pinNumber, sensorType, -3, -3, DhtErrorTimeout
	}

	switch sensorType {
	case DhtSensorDHT22, DhtSensorDHT21:
		humidity = float64(int(b2)*256+int(b3)) / 10
		temperature = float64(int(b4&0x7F)*256+int(b5)) / 10
	default: // DHT11, DHT12
		humidity = float64(b2) + float64(b3)/10
		temperature = float64(b4) + float64(b5)/10
	}
	if signFlag != 0 {
		temperature = -temperature
	}
	return pinNumber, sensorType, humidity, temperature, DhtErrorNone
}

// update applies a freshly decoded reading. Per the documented open
// question on DHT differential comparison (see DESIGN.md), the comparison
// is taken verbatim against whatever the previous value was, including a
// negative sentinel from a prior error reading - the reference driver's
// behavior is preserved rather than silently "fixed".
func (t *dhtTable) update(pinNumber uint8, humidity, temperature float64, status DhtErrorStatus, ts time.Time) (DhtCallback, uint8, float64, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[pinNumber]
	if !ok {
		return nil, 0, 0, 0
	}
	if status != DhtErrorNone {
		t.lastErr = &DhtError{Pin: pinNumber, Status: status}
	}
	prevH, prevT := e.humidity, e.temperature
	hDiff := humidity - prevH
	if hDiff < 0 {
		hDiff = -hDiff
	}
	tDiff := temperature - prevT
	if tDiff < 0 {
		tDiff = -tDiff
	}
	if hDiff < e.differential && tDiff < e.differential {
		return nil, 0, 0, 0
	}
	e.humidity = humidity
	e.temperature = temperature
	e.status = status
	return e.callback, e.sensorType, humidity, temperature
}

// lastError returns the most recently latched DHT error, if any.
func (t *dhtTable) lastError() *DhtError {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

func (t *dhtTable) read(pinNumber uint8) (humidity, temperature float64, status DhtErrorStatus, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[pinNumber]
	if !ok {
		return 0, 0, DhtErrorNone, false
	}
	return e.humidity, e.temperature, e.status, true
}
