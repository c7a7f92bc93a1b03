package firmata

import (
	"bytes"
	"testing"
)

func TestStepperWriteForward(t *testing.T) {
	c, ft := newTestClient()

	// speed=300 (0x012C) -> 21-bit grouping: s0=0x2C, s1=0x02, s2=0x00
	// steps=200 (0xC8) -> 14-bit grouping: st0=0x48, st1=0x01
	if err := c.StepperWrite(300, 200); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xF0, 0x72, 0x01, 0x2C, 0x02, 0x00, 0x48, 0x01, 0x01, 0xF7}
	if got := ft.lastWrite(); !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}

func TestStepperWriteReverse(t *testing.T) {
	c, ft := newTestClient()

	if err := c.StepperWrite(150, -50); err != nil {
		t.Fatal(err)
	}
	// speed=150 (0x96) -> 21-bit grouping: s0=0x16, s1=0x01, s2=0x00
	// steps=50 (0x32) -> 14-bit grouping: st0=0x32, st1=0x00
	want := []byte{0xF0, 0x72, 0x01, 0x16, 0x01, 0x00, 0x32, 0x00, 0x00, 0xF7}
	if got := ft.lastWrite(); !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}
