package firmata

import "testing"

func TestProtocolVersionString(t *testing.T) {
	cases := []struct {
		major, minor byte
		want         string
	}{
		{2, 5, "2.5"},
		{12, 3, "12.3"},
	}
	for _, tc := range cases {
		if got := protocolVersionString(tc.major, tc.minor); got != tc.want {
			t.Fatalf("protocolVersionString(%d, %d) = %q, want %q", tc.major, tc.minor, got, tc.want)
		}
	}
}

func TestParseAnalogMappingResponse(t *testing.T) {
	// 4 digital pins; pins 0 and 1 are not analog-capable (127), pin 2 is
	// analog ordinal 0, pin 3 is analog ordinal 1.
	payload := []byte{127, 127, 0, 1}
	resp := parseAnalogMappingResponse(payload)

	if resp.DigitalPinCount != 4 {
		t.Fatalf("got DigitalPinCount=%d, want 4", resp.DigitalPinCount)
	}
	if resp.DigitalPinToAnalog[2] != 0 || resp.DigitalPinToAnalog[3] != 1 {
		t.Fatalf("got %v, want {2:0, 3:1}", resp.DigitalPinToAnalog)
	}
	if len(resp.AnalogPinToDigital) != 2 || resp.AnalogPinToDigital[0] != 2 || resp.AnalogPinToDigital[1] != 3 {
		t.Fatalf("got %v, want [2 3]", resp.AnalogPinToDigital)
	}
}

func TestParsePinStateResponse(t *testing.T) {
	resp := parsePinStateResponse([]byte{5, 1, 0x7F, 0x01})
	if resp.Pin != 5 {
		t.Fatalf("got pin=%d, want 5", resp.Pin)
	}
	// state = 0x7F | (0x01 << 7) = 255
	if resp.State != 255 {
		t.Fatalf("got state=%d, want 255", resp.State)
	}
}
