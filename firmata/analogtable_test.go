package firmata

import (
	"testing"
	"time"
)

func TestAnalogPinTableDifferentialThreshold(t *testing.T) {
	at := newAnalogPinTable(4)
	at.configure(3, 10, func(analogPinNumber uint8, value int, ts time.Time) {})

	if cb, _ := at.update(3, 5, time.Now()); cb != nil {
		t.Fatal("expected no callback: delta 5 below differential 10")
	}
	if cb, v := at.update(3, 10, time.Now()); cb == nil || v != 10 {
		t.Fatalf("expected callback firing at delta 10, got cb=%v v=%d", cb, v)
	}
}

func TestAnalogPinTableDefaultDifferentialIsOne(t *testing.T) {
	at := newAnalogPinTable(4)
	at.configure(1, 0, func(analogPinNumber uint8, value int, ts time.Time) {})
	if cb, v := at.update(1, 1, time.Now()); cb == nil || v != 1 {
		t.Fatalf("expected default differential of 1 to fire on first change, got cb=%v v=%d", cb, v)
	}
}

func TestAnalogPinTableRead(t *testing.T) {
	at := newAnalogPinTable(4)
	at.configure(2, 1, nil)
	at.update(2, 426, time.Now())

	v, _ := at.read(2)
	if v != 426 {
		t.Fatalf("got %d, want 426", v)
	}
}
