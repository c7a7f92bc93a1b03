package firmata

import (
	"strconv"

	"periph.io/x/conn/v3/pin"
)

// protocolVersionString renders REPORT_VERSION's two bytes as "M.m" (spec
// §4.3 "REPORT_VERSION").
func protocolVersionString(major, minor byte) string {
	return strconv.Itoa(int(major)) + "." + strconv.Itoa(int(minor))
}

// parseCapabilityResponse decodes the 0x7F-delimited per-pin mode/resolution
// pairs of CAPABILITY_RESPONSE (spec §4.3, §6).
func parseCapabilityResponse(payload []byte) CapabilityResponse {
	resp := CapabilityResponse{}
	cur := map[pin.Func]uint8{}
	for i := 0; i < len(payload); i++ {
		if payload[i] == CapabilityResponsePinDelimiter {
			resp.PinToModeToResolution = append(resp.PinToModeToResolution, cur)
			modes := make([]pin.Func, 0, len(cur))
			for m := range cur {
				modes = append(modes, m)
			}
			resp.SupportedPinModes = append(resp.SupportedPinModes, modes)
			cur = map[pin.Func]uint8{}
			continue
		}
		mode := payload[i]
		i++
		if i >= len(payload) {
			break
		}
		resolution := payload[i]
		if f, ok := pinModeToFuncMap[mode]; ok {
			cur[f] = resolution
		}
	}
	return resp
}

// parsePinStateResponse decodes PIN_STATE_RESPONSE: pin, mode, then a
// 7-bit-group encoded state value (spec §4.3).
func parsePinStateResponse(payload []byte) PinStateResponse {
	if len(payload) < 2 {
		return PinStateResponse{}
	}
	state := 0
	shift := 0
	for _, b := range payload[2:] {
		state |= int(b) << shift
		shift += 7
	}
	return PinStateResponse{
		Pin:   payload[0],
		Mode:  pinModeToFuncMap[payload[1]],
		State: state,
	}
}

// parseAnalogMappingResponse decodes ANALOG_MAPPING_RESPONSE: one byte per
// digital pin, 127 meaning "not analog-capable" (spec §4.3, §4.5 step 4).
func parseAnalogMappingResponse(payload []byte) AnalogMappingResponse {
	resp := AnalogMappingResponse{DigitalPinToAnalog: map[uint8]uint8{}, DigitalPinCount: len(payload)}
	for digitalPin, analogOrdinal := range payload {
		if analogOrdinal == 127 {
			continue
		}
		resp.DigitalPinToAnalog[uint8(digitalPin)] = analogOrdinal
	}
	resp.AnalogPinToDigital = make([]uint8, len(resp.DigitalPinToAnalog))
	for digitalPin, analogOrdinal := range resp.DigitalPinToAnalog {
		if int(analogOrdinal) < len(resp.AnalogPinToDigital) {
			resp.AnalogPinToDigital[analogOrdinal] = digitalPin
		}
	}
	return resp
}
