package firmata

import (
	"errors"
	"testing"
	"time"
)

func TestDigitalPinTableDifferentialThreshold(t *testing.T) {
	dt := newDigitalPinTable(4)
	var fired int
	dt.configure(2, false, 2, func(pinNumber uint8, value int, pullUp bool, ts time.Time) {
		fired++
	})

	if cb, _, _ := dt.update(2, 1, time.Now()); cb != nil {
		t.Fatal("expected no callback: delta 1 below differential 2")
	}
	if cb, v, _ := dt.update(2, 2, time.Now()); cb == nil || v != 2 {
		t.Fatalf("expected callback firing at delta 2, got cb=%v v=%d", cb, v)
	}
}

func TestDigitalPinTableDefaultDifferentialIsOne(t *testing.T) {
	dt := newDigitalPinTable(4)
	dt.configure(0, false, 0, func(pinNumber uint8, value int, pullUp bool, ts time.Time) {})

	if cb, v, _ := dt.update(0, 1, time.Now()); cb == nil || v != 1 {
		t.Fatalf("expected default differential of 1 to fire on first change, got cb=%v v=%d", cb, v)
	}
}

func TestDigitalPinTableReadCaches(t *testing.T) {
	dt := newDigitalPinTable(4)
	dt.configure(1, true, 1, nil)
	dt.update(1, 1, time.Now())

	v, _ := dt.read(1)
	if v != 1 {
		t.Fatalf("got %d, want 1", v)
	}
}

func TestDigitalPinTableSetPortBit(t *testing.T) {
	dt := newDigitalPinTable(16)
	port, value := dt.setPortBit(10, true)
	if port != 1 || value != 1<<2 {
		t.Fatalf("got port=%d value=%#x, want port=1 value=0x04", port, value)
	}
	port, value = dt.setPortBit(8, true)
	if port != 1 || value != (1<<2|1<<0) {
		t.Fatalf("got port=%d value=%#x, want port=1 value=0x05", port, value)
	}
	port, value = dt.setPortBit(10, false)
	if port != 1 || value != 1 {
		t.Fatalf("got port=%d value=%#x, want port=1 value=0x01", port, value)
	}
}

func TestDigitalPinTableOutOfRangeIndexDoesNotPanic(t *testing.T) {
	dt := newDigitalPinTable(4)

	dt.setMode(200, PinFuncDigitalOutput)
	dt.configure(200, false, 1, nil)

	if cb, v, _ := dt.update(200, 1, time.Now()); cb != nil || v != 0 {
		t.Fatalf("got cb=%v v=%d, want nil/0 for an out-of-range pin", cb, v)
	}
	if v, ts := dt.read(200); v != 0 || !ts.IsZero() {
		t.Fatalf("got v=%d ts=%v, want zero values for an out-of-range pin", v, ts)
	}
	if port, value := dt.setPortBit(200, true); value != 0 {
		t.Fatalf("got port=%d value=%#x, want value=0 for an out-of-range pin", port, value)
	}
}

func TestClientRejectsOutOfRangePin(t *testing.T) {
	c, _ := newTestClient()

	if err := c.DigitalWrite(200, true); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
	if err := c.SetPinModeDigitalOutput(200); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
	if err := c.SetPinModeAnalogInput(200, 0, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}
