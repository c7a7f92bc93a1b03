package firmata

import "time"

// dispatch maps a decoded incomingMessage to its handler (spec §4.3). Every
// handler mutates state tables under their own lock and then invokes any
// resulting callback after releasing it (spec §5 "Shared resources").
func (c *Client) dispatch(msg *incomingMessage) {
	if msg.sysex {
		c.dispatchSysEx(msg.sysexCmd, msg.payload)
		return
	}

	ts := time.Now()
	switch msg.msgType {
	case DigitalIOMessage:
		c.handleDigitalMessage(msg.param, msg.payload, ts)
	case AnalogIOMessage:
		c.handleAnalogMessage(msg.param, msg.payload, ts)
	case ProtocolVersion:
		c.handleProtocolVersion(msg.payload)
	}
}

func (c *Client) handleDigitalMessage(port uint8, payload []byte, ts time.Time) {
	if len(payload) < 2 {
		return
	}
	portValue := int(TwoByteToWord(payload[0], payload[1]))
	base := port * 8
	for i := uint8(0); i < 8; i++ {
		pinNumber := base + i
		if int(pinNumber) >= c.digital.len() {
			break
		}
		bit := (portValue >> i) & 1
		cb, value, pullUp := c.digital.update(pinNumber, bit, ts)
		if cb != nil {
			cb(pinNumber, value, pullUp, ts)
		}
	}
}

func (c *Client) handleAnalogMessage(pinNumber uint8, payload []byte, ts time.Time) {
	if len(payload) < 2 || int(pinNumber) >= c.analog.len() {
		return
	}
	value := int(TwoByteToWord(payload[0], payload[1]))
	cb, v := c.analog.update(pinNumber, value, ts)
	if cb != nil {
		cb(pinNumber, v, ts)
	}
}

func (c *Client) handleProtocolVersion(payload []byte) {
	if len(payload) < 2 {
		return
	}
	c.reply.slot(queryProtocolVersion).fulfill(protocolVersionString(payload[0], payload[1]))
}

func (c *Client) dispatchSysEx(cmd SysExCmd, payload []byte) {
	switch cmd {
	case SysExReportFirmware:
		if len(payload) < 2 {
			return
		}
		report := FirmwareReport{Major: payload[0], Minor: payload[1], Name: payload[2:]}
		c.reply.slot(queryFirmware).fulfill(report)

	case SysExCapabilityResponse:
		c.reply.slot(queryCapability).fulfill(parseCapabilityResponse(payload))

	case SysExPinStateResponse:
		c.reply.slot(queryPinState).fulfill(parsePinStateResponse(payload))

	case SysExAnalogMappingResponse:
		c.reply.slot(queryAnalogMapping).fulfill(parseAnalogMappingResponse(payload))

	case SysExI2CReply:
		c.handleI2CReply(payload)

	case SysExSonarData:
		c.handleSonarData(payload)

	case SysExDhtData:
		c.handleDhtData(payload)

	case SysExStringData:
		c.log.Info().Str("string", TwoByteString(payload)).Msg("STRING_DATA")

	default:
		c.log.Debug().Stringer("cmd", cmd).Msg("unhandled sysex message")
	}
}

func (c *Client) handleI2CReply(payload []byte) {
	if len(payload) < 4 {
		return
	}
	address := TwoByteToByte(payload[0], payload[1])
	data := TwoByteRepresentationToByteSlice(payload[4:])
	cb, reg := c.i2c.update(address, data, time.Now())
	if cb != nil {
		cb(address, reg, data, time.Now())
	}
}

func (c *Client) handleSonarData(payload []byte) {
	if len(payload) < 3 {
		return
	}
	triggerPin := payload[0]
	distance := int(TwoByteToWord(payload[1], payload[2]))
	cb, changed := c.sonar.update(triggerPin, distance, time.Now())
	if changed && cb != nil {
		cb(triggerPin, distance, time.Now())
	}
}

func (c *Client) handleDhtData(payload []byte) {
	if len(payload) < 9 {
		return
	}
	pinNumber, _, humidity, temperature, status := decodeDHTPayload(payload)
	cb, sensorType, h, t := c.dht.update(pinNumber, humidity, temperature, status, time.Now())
	if cb != nil {
		cb(pinNumber, sensorType, h, t, status, time.Now())
	}
}
