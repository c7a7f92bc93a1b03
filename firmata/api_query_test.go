package firmata

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestGetFirmwareVersionSendsQueryAndUnblocksOnReply(t *testing.T) {
	c, ft := newTestClient()

	done := make(chan FirmwareReport, 1)
	errCh := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		fw, err := c.GetFirmwareVersion(ctx)
		if err != nil {
			errCh <- err
			return
		}
		done <- fw
	}()

	// wait for the request to actually be written before fulfilling the reply
	deadline := time.Now().Add(time.Second)
	for ft.lastWrite() == nil && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	want := []byte{0xF0, 0x79, 0xF7}
	if got := ft.lastWrite(); !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}

	c.dispatch(&incomingMessage{sysex: true, sysexCmd: SysExReportFirmware, payload: []byte{2, 5, 'u', 'n', 'o'}})

	select {
	case fw := <-done:
		if fw.Major != 2 || fw.Minor != 5 {
			t.Fatalf("got %+v, want Major=2 Minor=5", fw)
		}
	case err := <-errCh:
		t.Fatal(err)
	case <-time.After(time.Second):
		t.Fatal("GetFirmwareVersion never returned")
	}
}

func TestGetPinStateResetsSlotBeforeEachQuery(t *testing.T) {
	c, _ := newTestClient()
	slot := c.reply.slot(queryPinState)

	// simulate a stale reply left over from a previous (unrelated) cycle
	slot.fulfill(PinStateResponse{Pin: 9, State: 1})

	done := make(chan PinStateResponse, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		ps, err := c.GetPinState(ctx, 3)
		if err == nil {
			done <- ps
		}
	}()

	time.Sleep(20 * time.Millisecond)
	c.dispatch(&incomingMessage{sysex: true, sysexCmd: SysExPinStateResponse, payload: []byte{3, 1, 0}})

	select {
	case ps := <-done:
		if ps.Pin != 3 {
			t.Fatalf("got stale reply for pin %d, want fresh reply for pin 3", ps.Pin)
		}
	case <-time.After(time.Second):
		t.Fatal("GetPinState never returned")
	}
}
