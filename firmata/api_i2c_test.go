package firmata

import (
	"bytes"
	"testing"
	"time"
)

// Spec §8 scenario 4: i2c_read(address=83, register=50, numBytes=6) emits
// exactly F0 76 53 08 32 00 06 00 F7.
func TestI2CReadFramesRequestExactly(t *testing.T) {
	c, ft := newTestClient()
	register := uint8(50)
	if err := c.I2CRead(83, &register, 6, nil); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xF0, 0x76, 0x53, 0x08, 0x32, 0x00, 0x06, 0x00, 0xF7}
	if got := ft.lastWrite(); !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}

func TestI2CReadWithoutRegisterOmitsRegisterBytes(t *testing.T) {
	c, ft := newTestClient()
	if err := c.I2CRead(83, nil, 2, nil); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xF0, 0x76, 0x53, 0x08, 0x02, 0x00, 0xF7}
	if got := ft.lastWrite(); !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}

func TestI2CReadRestartTransmissionSetsBit(t *testing.T) {
	c, ft := newTestClient()
	if err := c.I2CReadRestartTransmission(83, nil, 2, nil); err != nil {
		t.Fatal(err)
	}
	// mode = READ(0x08) | RESTART(0x40) = 0x48
	want := []byte{0xF0, 0x76, 0x53, 0x48, 0x02, 0x00, 0xF7}
	if got := ft.lastWrite(); !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}

func TestI2CWriteExpandsDataIntoTwoBytePairs(t *testing.T) {
	c, ft := newTestClient()
	if err := c.I2CWrite(83, []byte{0x12}); err != nil {
		t.Fatal(err)
	}
	// 0x12 -> lsb=0x12, msb=0x00
	want := []byte{0xF0, 0x76, 0x53, 0x00, 0x12, 0x00, 0xF7}
	if got := ft.lastWrite(); !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}

func TestI2CReadSavedDataRoundTrip(t *testing.T) {
	c, _ := newTestClient()
	if _, ok := c.I2CReadSavedData(83); ok {
		t.Fatal("expected no saved data before any reply")
	}
	c.i2c.register(83, 0x07, nil)
	c.i2c.update(83, []byte{0x12, 0x34}, time.Now())
	got, ok := c.I2CReadSavedData(83)
	if !ok || got.Register != 0x07 || !bytes.Equal(got.Data, []byte{0x12, 0x34}) {
		t.Fatalf("got %+v, %v, want {Register:0x07 Data:[0x12 0x34]}, true", got, ok)
	}
}
