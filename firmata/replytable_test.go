package firmata

import (
	"context"
	"testing"
	"time"
)

func TestReplySlotFulfillAndAwait(t *testing.T) {
	s := newReplySlot()
	s.fulfill(42)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := s.await(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if v.(int) != 42 {
		t.Fatalf("got %v, want 42", v)
	}
}

func TestReplySlotSecondFulfillIgnored(t *testing.T) {
	s := newReplySlot()
	s.fulfill(1)
	s.fulfill(2)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := s.await(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if v.(int) != 1 {
		t.Fatalf("got %v, want 1 (first fulfill wins)", v)
	}
}

func TestReplySlotAwaitTimeout(t *testing.T) {
	s := newReplySlot()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := s.await(ctx); err != ErrReplyTimeout {
		t.Fatalf("got %v, want ErrReplyTimeout", err)
	}
}

// reset must clear a stale value so a re-issued query cannot observe the
// previous cycle's reply (DESIGN.md open question: pin-state response
// clearing).
func TestReplySlotResetClearsStaleValue(t *testing.T) {
	s := newReplySlot()
	s.fulfill("first")
	s.reset()
	s.fulfill("second")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := s.await(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if v.(string) != "second" {
		t.Fatalf("got %v, want second", v)
	}
}

func TestReplyTableSlotsAreIndependent(t *testing.T) {
	rt := newReplyTable()
	rt.slot(queryFirmware).fulfill("fw")
	rt.slot(queryCapability).fulfill("cap")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := rt.slot(queryFirmware).await(ctx)
	if err != nil || v.(string) != "fw" {
		t.Fatalf("got %v, %v", v, err)
	}
	v, err = rt.slot(queryCapability).await(ctx)
	if err != nil || v.(string) != "cap" {
		t.Fatalf("got %v, %v", v, err)
	}
}
