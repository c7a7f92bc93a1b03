package firmata

// i2cRequest builds and sends an I2C_REQUEST frame. register is nil when the
// caller passes `none` (spec §4.4: "A register byte is omitted when the
// caller passes none"); the two register bytes are emitted only when
// register is non-nil.
func (c *Client) i2cRequest(address uint8, mode I2CMode, register *uint8, numBytes int) error {
	addrLSB := address & SevenBitMask
	addrMSB := byte(mode)

	payload := []byte{addrLSB, addrMSB}
	if register != nil {
		lsb, msb := ByteToTwoByte(*register)
		payload = append(payload, lsb, msb)
	}
	if readMode := I2CMode(byte(mode) & I2CModeMask); readMode == I2CModeRead || readMode == I2CModeReadContinuously {
		lsb, msb := WordToTwoByte(uint16(numBytes))
		payload = append(payload, lsb, msb)
	}
	return c.writeSysEx(SysExI2CRequest, payload)
}

func (c *Client) i2cReadWithMode(address uint8, register *uint8, numBytes int, cb I2CCallback, mode I2CMode) error {
	reg := uint8(0)
	if register != nil {
		reg = *register
	}
	c.i2c.register(address, reg, cb)
	return c.i2cRequest(address, mode, register, numBytes)
}

// I2CRead implements spec §4.4 "i2c_read".
func (c *Client) I2CRead(address uint8, register *uint8, numBytes int, cb I2CCallback) error {
	return c.i2cReadWithMode(address, register, numBytes, cb, I2CModeRead)
}

// I2CReadContinuous implements spec §4.4 "i2c_read_continuous".
func (c *Client) I2CReadContinuous(address uint8, register *uint8, numBytes int, cb I2CCallback) error {
	return c.i2cReadWithMode(address, register, numBytes, cb, I2CModeReadContinuously)
}

// I2CReadRestartTransmission implements spec §4.4
// "i2c_read_restart_transmission": mode READ OR'd with END_TX_MASK=0x40.
func (c *Client) I2CReadRestartTransmission(address uint8, register *uint8, numBytes int, cb I2CCallback) error {
	return c.i2cReadWithMode(address, register, numBytes, cb, I2CMode(byte(I2CModeRead)|I2CRestartTransmission))
}

// I2CWrite implements spec §4.4 "i2c_write": mode WRITE, each byte expanded
// into a 7-bit pair.
func (c *Client) I2CWrite(address uint8, data []byte) error {
	addrLSB := address & SevenBitMask
	addrMSB := byte(I2CModeWrite)
	payload := append([]byte{addrLSB, addrMSB}, ByteSliceToTwoByteRepresentation(data)...)
	return c.writeSysEx(SysExI2CRequest, payload)
}

// I2CReadSavedData implements spec §4.4 "i2c_read_saved_data": a pure table
// lookup, no I/O. The returned packet pairs the device's last data with the
// register it was read from.
func (c *Client) I2CReadSavedData(address uint8) (I2CPacket, bool) {
	return c.i2c.savedData(address)
}
