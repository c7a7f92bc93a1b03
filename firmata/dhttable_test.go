package firmata

import (
	"testing"
	"time"
)

// DHT22 decoding: humidity = (b2*256+b3)/10, temperature = ((b4&0x7F)*256+b5)/10.
func TestDecodeDHTPayloadDHT22(t *testing.T) {
	// pin=2, type=22, b2=0x01,b3=0x90 (humidity raw 400 -> 40.0), b4=0x00,b5=0xC8 (200 -> 20.0), sign=0, err=0, config=0
	payload := []byte{2, 22, 0x01, 0x90, 0x00, 0xC8, 0, 0, 0, 0}
	pinNumber, sensorType, humidity, temperature, status := decodeDHTPayload(payload)

	if pinNumber != 2 || sensorType != 22 {
		t.Fatalf("got pin=%d type=%d", pinNumber, sensorType)
	}
	if humidity != 40.0 || temperature != 20.0 {
		t.Fatalf("got humidity=%v temperature=%v, want 40.0/20.0", humidity, temperature)
	}
	if status != DhtErrorNone {
		t.Fatalf("got status=%v, want none", status)
	}
}

func TestDecodeDHTPayloadNegativeTemperature(t *testing.T) {
	payload := []byte{2, 22, 0x01, 0x90, 0x00, 0xC8, 1, 0, 0, 0}
	_, _, _, temperature, _ := decodeDHTPayload(payload)
	if temperature != -20.0 {
		t.Fatalf("got temperature=%v, want -20.0", temperature)
	}
}

func TestDecodeDHTPayloadDHT11(t *testing.T) {
	// humidity = b2 + b3/10, temperature = b4 + b5/10
	payload := []byte{3, 11, 45, 2, 21, 5, 0, 0, 0, 0}
	_, _, humidity, temperature, _ := decodeDHTPayload(payload)
	if humidity != 45.2 {
		t.Fatalf("got humidity=%v, want 45.2", humidity)
	}
	if temperature != 21.5 {
		t.Fatalf("got temperature=%v, want 21.5", temperature)
	}
}

func TestDecodeDHTPayloadErrorSentinels(t *testing.T) {
	cases := []struct {
		name          string
		errStatus     uint8
		configFlag    uint8
		wantH, wantT  float64
		wantStatus    DhtErrorStatus
	}{
		{"config", 0, 1, -1, -1, DhtErrorConfig},
		{"checksum", uint8(DhtErrorChecksum), 0, -2, -2, DhtErrorChecksum},
		{"timeout", uint8(DhtErrorTimeout), 0, -3, -3, DhtErrorTimeout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := []byte{1, 22, 0, 0, 0, 0, 0, tc.errStatus, tc.configFlag, 0}
			_, _, h, temp, status := decodeDHTPayload(payload)
			if h != tc.wantH || temp != tc.wantT || status != tc.wantStatus {
				t.Fatalf("got h=%v t=%v status=%v, want h=%v t=%v status=%v", h, temp, status, tc.wantH, tc.wantT, tc.wantStatus)
			}
		})
	}
}

// Per the documented open question (DESIGN.md "DHT differential comparison
// against sentinel values"), a callback still fires when comparing a fresh
// reading against a stale error sentinel.
func TestDhtTableFiresAcrossErrorSentinel(t *testing.T) {
	dt := newDhtTable()
	var got float64
	dt.register(5, 22, 0.1, func(pinNumber uint8, sensorType uint8, humidity, temperature float64, status DhtErrorStatus, ts time.Time) {
		got = humidity
	})
	dt.entries[5].humidity = -1
	dt.entries[5].temperature = -1

	cb, _, h, _ := dt.update(5, 42.0, 20.0, DhtErrorNone, time.Now())
	if cb == nil {
		t.Fatal("expected callback to fire across sentinel boundary")
	}
	cb(5, 22, h, 20.0, DhtErrorNone, time.Now())
	if got != 42.0 {
		t.Fatalf("got %v, want 42.0", got)
	}
}

func TestDhtTableLatchesLastError(t *testing.T) {
	dt := newDhtTable()
	dt.register(5, 22, 0.1, nil)

	if err := dt.lastError(); err != nil {
		t.Fatalf("got %v, want nil before any error", err)
	}

	dt.update(5, -2, -2, DhtErrorChecksum, time.Now())
	err := dt.lastError()
	if err == nil || err.Pin != 5 || err.Status != DhtErrorChecksum {
		t.Fatalf("got %v, want pin=5 status=checksum", err)
	}

	// A later error-free reading updates the cached value but must not clear
	// the latch - it records the last error seen, not the last status.
	dt.update(5, 40.0, 20.0, DhtErrorNone, time.Now())
	err = dt.lastError()
	if err == nil || err.Status != DhtErrorChecksum {
		t.Fatalf("got %v, want latch to remain at checksum", err)
	}
}
