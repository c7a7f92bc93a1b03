package firmata

import (
	"bytes"
	"testing"
)

// Spec §8 scenario 6: play_tone_off(3) emits exactly F0 5F 01 03 F7.
func TestPlayToneOff(t *testing.T) {
	c, ft := newTestClient()
	if err := c.PlayToneOff(3); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xF0, 0x5F, 0x01, 0x03, 0xF7}
	if got := ft.lastWrite(); !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}

func TestPlayTone(t *testing.T) {
	c, ft := newTestClient()
	if err := c.PlayTone(9, 440, 500); err != nil {
		t.Fatal(err)
	}
	// freq=440 (0x01B8) -> LSB=0x38, MSB=0x03; dur=500 (0x01F4) -> LSB=0x74, MSB=0x03
	want := []byte{0xF0, 0x5F, 0x00, 0x09, 0x38, 0x03, 0x74, 0x03, 0xF7}
	if got := ft.lastWrite(); !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}

func TestPlayToneContinuously(t *testing.T) {
	c, ft := newTestClient()
	if err := c.PlayToneContinuously(9, 1000); err != nil {
		t.Fatal(err)
	}
	// freq=1000 (0x03E8) -> LSB=0x68, MSB=0x07; no duration bytes sent, so both are zero
	want := []byte{0xF0, 0x5F, 0x00, 0x09, 0x68, 0x07, 0x00, 0x00, 0xF7}
	if got := ft.lastWrite(); !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}
