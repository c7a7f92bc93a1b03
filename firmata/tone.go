package firmata

// TONE_DATA mode byte (spec §4.4 "play_tone family").
const (
	toneModeTone   byte = 0
	toneModeNoTone byte = 1
)

// PlayTone implements spec §4.4 "play_tone(pin, freq, dur)".
func (c *Client) PlayTone(pinNumber uint8, freqHz uint16, durationMs uint16) error {
	return c.writeTone(pinNumber, toneModeTone, freqHz, durationMs, true)
}

// PlayToneContinuously implements spec §4.4 "play_tone_continuously": the
// duration is omitted, so two zero bytes follow instead.
func (c *Client) PlayToneContinuously(pinNumber uint8, freqHz uint16) error {
	return c.writeTone(pinNumber, toneModeTone, freqHz, 0, false)
}

// PlayToneOff implements spec §4.4 "play_tone_off": no frequency or
// duration bytes at all (spec §8 scenario 6: `play_tone_off(3)` emits
// exactly `F0 5F 01 03 F7`).
func (c *Client) PlayToneOff(pinNumber uint8) error {
	return c.writeSysEx(SysExToneData, []byte{toneModeNoTone, pinNumber})
}

func (c *Client) writeTone(pinNumber uint8, mode byte, freqHz, durationMs uint16, hasDuration bool) error {
	freqLSB, freqMSB := WordToTwoByte(freqHz)
	var durLSB, durMSB byte
	if hasDuration {
		durLSB, durMSB = WordToTwoByte(durationMs)
	}
	return c.writeSysEx(SysExToneData, []byte{mode, pinNumber, freqLSB, freqMSB, durLSB, durMSB})
}
