package firmata

// Stepper sub-commands of STEPPER_DATA (grounded on the reference driver's
// PrivateConstants.STEPPER_CONFIGURE / STEPPER_STEP).
const (
	stepperConfigure byte = 0
	stepperStep      byte = 1
)

// StepperWrite implements spec §4.4 "stepper_write": speed across three
// 7-bit bytes (21-bit), absolute steps across two (14-bit), then a
// direction byte (1 = forward, 0 = reverse).
func (c *Client) StepperWrite(speed int32, signedSteps int32) error {
	direction := byte(1)
	if signedSteps < 0 {
		direction = 0
	}
	steps := signedSteps
	if steps < 0 {
		steps = -steps
	}

	s0 := byte(speed) & SevenBitMask
	s1 := byte(speed>>7) & SevenBitMask
	s2 := byte(speed>>14) & SevenBitMask
	st0 := byte(steps) & SevenBitMask
	st1 := byte(steps>>7) & SevenBitMask

	return c.writeSysEx(SysExStepperData, []byte{stepperStep, s0, s1, s2, st0, st1, direction})
}
