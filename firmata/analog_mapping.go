package firmata

import (
	"bytes"
	"fmt"
)

type AnalogMappingResponse struct {
	AnalogPinToDigital []uint8
	DigitalPinToAnalog map[uint8]uint8
	// DigitalPinCount is the number of bytes in the raw ANALOG_MAPPING_RESPONSE
	// payload - one per digital pin (spec §4.5 step 4), including pins that
	// are not analog-capable.
	DigitalPinCount int
}

func (a AnalogMappingResponse) String() string {
	str := bytes.Buffer{}
	for analogPin, digitalPin := range a.AnalogPinToDigital {
		_, _ = fmt.Fprintf(&str, "A%d: %d\n", analogPin, digitalPin)
	}
	return str.String()
}
