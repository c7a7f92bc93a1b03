package firmata

import "periph.io/x/conn/v3/pin"

// setPinMode emits SET_PIN_MODE and records the mode in the digital pin
// table (spec §4.4).
func (c *Client) setPinMode(pinNumber uint8, mode pin.Func) error {
	if err := c.checkDigitalPin(pinNumber); err != nil {
		return err
	}
	c.digital.setMode(pinNumber, mode)
	return c.writeRaw([]byte{byte(SetPinMode), pinNumber, pinFuncToModeMap[mode]})
}

// enableDigitalReporting sends REPORT_DIGITAL for the pin's port, required
// for every input mode (spec §4.4: "For input modes, additionally send
// REPORT_DIGITAL enable for the pin's port").
func (c *Client) enableDigitalReporting(pinNumber uint8) error {
	port := pinNumber / 8
	return c.writeChannelMessage(byte(ReportDigitalPort)+port, 1, 0)
}

func (c *Client) SetPinModeDigitalInput(pinNumber uint8, cb DigitalCallback) error {
	if err := c.setPinMode(pinNumber, PinFuncDigitalInput); err != nil {
		return err
	}
	c.digital.configure(pinNumber, false, 1, cb)
	return c.enableDigitalReporting(pinNumber)
}

func (c *Client) SetPinModeDigitalInputPullup(pinNumber uint8, cb DigitalCallback) error {
	if err := c.setPinMode(pinNumber, PinFuncInputPullUp); err != nil {
		return err
	}
	c.digital.configure(pinNumber, true, 1, cb)
	return c.enableDigitalReporting(pinNumber)
}

func (c *Client) SetPinModeDigitalOutput(pinNumber uint8) error {
	return c.setPinMode(pinNumber, PinFuncDigitalOutput)
}

// digitalPinFor translates an analog ordinal to its underlying digital pin
// via first_analog_pin (spec §4.4: "For analog, also translate to the
// underlying digital pin").
func (c *Client) digitalPinFor(analogPinNumber uint8) uint8 {
	if int(analogPinNumber) < len(c.analogPinToDigital) {
		return c.analogPinToDigital[analogPinNumber]
	}
	return uint8(c.firstAnalogPin) + analogPinNumber
}

func (c *Client) SetPinModeAnalogInput(analogPinNumber uint8, differential int, cb AnalogCallback) error {
	if err := c.checkAnalogPin(analogPinNumber); err != nil {
		return err
	}
	pinNumber := c.digitalPinFor(analogPinNumber)
	if err := c.setPinMode(pinNumber, PinFuncAnalogInput); err != nil {
		return err
	}
	c.analog.configure(analogPinNumber, differential, cb)
	return c.writeChannelMessage(byte(ReportAnalogPin)+analogPinNumber, 1, 0)
}

func (c *Client) SetPinModePWMOutput(pinNumber uint8) error {
	return c.setPinMode(pinNumber, PinFuncPWM)
}

func (c *Client) SetPinModeServo(pinNumber uint8, minPulse, maxPulse uint16) error {
	if err := c.setPinMode(pinNumber, PinFuncServo); err != nil {
		return err
	}
	minLSB, minMSB := WordToTwoByte(minPulse)
	maxLSB, maxMSB := WordToTwoByte(maxPulse)
	return c.writeSysEx(SysExServoConfig, []byte{pinNumber, minLSB, minMSB, maxLSB, maxMSB})
}

func (c *Client) SetPinModeTone(pinNumber uint8) error {
	return c.setPinMode(pinNumber, PinFuncTone)
}

func (c *Client) SetPinModeI2C(readDelayMicros uint16) error {
	lsb, msb := WordToTwoByte(readDelayMicros)
	return c.writeSysEx(SysExI2CConfig, []byte{lsb, msb})
}

func (c *Client) SetPinModeSonar(triggerPin, echoPin uint8, timeout uint16, cb SonarCallback) error {
	if err := c.checkDigitalPin(triggerPin); err != nil {
		return err
	}
	if err := c.checkDigitalPin(echoPin); err != nil {
		return err
	}
	if err := c.sonar.register(triggerPin, echoPin, cb); err != nil {
		return err
	}
	if err := c.setPinMode(triggerPin, PinFuncSonar); err != nil {
		return err
	}
	if err := c.setPinMode(echoPin, PinFuncSonar); err != nil {
		return err
	}
	lsb, msb := WordToTwoByte(timeout)
	return c.writeSysEx(SysExSonarConfig, []byte{triggerPin, echoPin, lsb, msb})
}

func (c *Client) SetPinModeStepper(stepsPerRevolution uint16, stepperPins []uint8) error {
	for _, p := range stepperPins {
		if err := c.checkDigitalPin(p); err != nil {
			return err
		}
	}
	lsb, msb := WordToTwoByte(stepsPerRevolution)
	data := append([]byte{stepperConfigure, lsb, msb}, stepperPins...)
	return c.writeSysEx(SysExStepperData, data)
}

func (c *Client) SetPinModeDHT(pinNumber uint8, sensorType uint8, differential float64, cb DhtCallback) error {
	if err := c.checkDigitalPin(pinNumber); err != nil {
		return err
	}
	isNew := c.dht.register(pinNumber, sensorType, differential, cb)
	if !isNew {
		return nil
	}
	return c.writeSysEx(SysExDhtConfig, []byte{pinNumber, sensorType})
}
