package firmata

import "time"

// DigitalWrite implements spec §4.4 "digital_write": update the port's
// cached byte and send a DIGITAL_MESSAGE for the full port.
func (c *Client) DigitalWrite(pinNumber uint8, level bool) error {
	if err := c.checkDigitalPin(pinNumber); err != nil {
		return err
	}
	port, portValue := c.digital.setPortBit(pinNumber, level)
	lsb, msb := ByteToTwoByte(portValue)
	return c.writeChannelMessage(byte(DigitalIOMessage)+port, lsb, msb)
}

// DigitalPinWrite implements spec §4.4 "digital_pin_write": SET_DIGITAL_PIN_VALUE
// directly, bypassing the port cache.
func (c *Client) DigitalPinWrite(pinNumber uint8, level bool) error {
	if err := c.checkDigitalPin(pinNumber); err != nil {
		return err
	}
	v := byte(0)
	if level {
		v = 1
	}
	return c.writeRaw([]byte{byte(SetDigitalPinValue), pinNumber, v})
}

// PWMWrite implements spec §4.4 "pwm_write": a short-form PWM_MESSAGE for
// pins <= 15, or EXTENDED_PWM SysEx with a 21-bit payload otherwise. Spec §8
// scenario 3: pwm_write(pin=9, value=200) emits exactly `E9 48 01`.
func (c *Client) PWMWrite(pinNumber uint8, value int) error {
	if err := c.checkDigitalPin(pinNumber); err != nil {
		return err
	}
	if pinNumber <= 15 {
		lsb, msb := WordToTwoByte(uint16(value))
		return c.writeChannelMessage(byte(AnalogIOMessage)+pinNumber, lsb, msb)
	}
	b0 := byte(value) & SevenBitMask
	b1 := byte(value>>7) & SevenBitMask
	b2 := byte(value>>14) & SevenBitMask
	return c.writeSysEx(SysExExtendedAnalog, []byte{pinNumber, b0, b1, b2})
}

// ServoWrite implements spec §4.4 "servo_write" as an alias for PWMWrite.
func (c *Client) ServoWrite(pinNumber uint8, value int) error {
	return c.PWMWrite(pinNumber, value)
}

// AnalogRead returns the most recent cached value with no I/O (spec §4.4).
func (c *Client) AnalogRead(analogPinNumber uint8) (int, time.Time) {
	return c.analog.read(analogPinNumber)
}

// DigitalRead returns the most recent cached value with no I/O (spec §4.4).
func (c *Client) DigitalRead(pinNumber uint8) (int, time.Time) {
	return c.digital.read(pinNumber)
}

// DhtRead returns the most recent decoded DHT reading with no I/O (spec
// §4.4 "dht_read").
func (c *Client) DhtRead(pinNumber uint8) (humidity, temperature float64, status DhtErrorStatus, ok bool) {
	return c.dht.read(pinNumber)
}

// DhtLastError returns the most recently latched DHT sensor error across
// every registered pin, or nil if none has occurred (spec §7
// "DhtSensorError").
func (c *Client) DhtLastError() *DhtError {
	return c.dht.lastError()
}

// SonarRead returns the most recent cached distance with no I/O (spec §4.4
// "sonar_read").
func (c *Client) SonarRead(triggerPin uint8) (distanceCM int, ts time.Time, ok bool) {
	return c.sonar.read(triggerPin)
}

// SetSamplingInterval implements spec §4.4 "set_sampling_interval": a 14-bit
// SAMPLING_INTERVAL SysEx.
func (c *Client) SetSamplingInterval(d time.Duration) error {
	ms := uint16(d / time.Millisecond)
	lsb, msb := WordToTwoByte(ms)
	return c.writeSysEx(SysExSamplingInterval, []byte{lsb, msb})
}
