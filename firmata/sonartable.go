package firmata

import (
	"sync"
	"time"
)

// maxSonarDevices is the firmware-imposed ceiling on concurrent SONAR
// trigger/echo pairs (spec §3 "SONAR entry ... Maximum six entries").
const maxSonarDevices = 6

// SonarCallback is invoked when a trigger pin's distance reading changes
// (spec §4.3 "SONAR_DATA").
type SonarCallback func(triggerPin uint8, distanceCM int, ts time.Time)

type sonarEntry struct {
	echoPin    uint8
	distanceCM int
	lastChange time.Time
	callback   SonarCallback
}

// sonarTable is the SONAR device table of spec §3, keyed by trigger pin.
type sonarTable struct {
	mu      sync.Mutex
	entries map[uint8]*sonarEntry
}

func newSonarTable() *sonarTable {
	return &sonarTable{entries: make(map[uint8]*sonarEntry)}
}

// register adds a new trigger/echo pair. It refuses a 7th entry and silently
// ignores a trigger pin already registered, matching the reference driver's
// "ignore the duplicate request" / "ignoring request" behavior (spec §4.4).
func (t *sonarTable) register(triggerPin, echoPin uint8, cb SonarCallback) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[triggerPin]; ok {
		return nil
	}
	if len(t.entries) >= maxSonarDevices {
		return ErrTooManySonarDevices
	}
	t.entries[triggerPin] = &sonarEntry{echoPin: echoPin, callback: cb}
	return nil
}

func (t *sonarTable) update(triggerPin uint8, distanceCM int, ts time.Time) (SonarCallback, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[triggerPin]
	if !ok {
		return nil, false
	}
	if e.distanceCM == distanceCM {
		return nil, false
	}
	e.distanceCM = distanceCM
	e.lastChange = ts
	return e.callback, true
}

func (t *sonarTable) read(triggerPin uint8) (int, time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[triggerPin]
	if !ok {
		return 0, time.Time{}, false
	}
	return e.distanceCM, e.lastChange, true
}
