package firmata

import "context"

// GetFirmwareVersion implements spec §4.4 "get_firmware_version": clear the
// slot, send REPORT_FIRMWARE, then wait until the context is done or the
// 4-second reply bound expires, whichever comes first.
func (c *Client) GetFirmwareVersion(ctx context.Context) (FirmwareReport, error) {
	slot := c.reply.slot(queryFirmware)
	slot.reset()
	if err := c.writeSysEx(SysExReportFirmware, nil); err != nil {
		return FirmwareReport{}, err
	}
	v, err := slot.await(ctx)
	if err != nil {
		return FirmwareReport{}, err
	}
	return v.(FirmwareReport), nil
}

// GetProtocolVersion implements spec §4.4 "get_protocol_version".
func (c *Client) GetProtocolVersion(ctx context.Context) (string, error) {
	slot := c.reply.slot(queryProtocolVersion)
	slot.reset()
	if err := c.writeRaw([]byte{byte(ProtocolVersion), 0, 0}); err != nil {
		return "", err
	}
	v, err := slot.await(ctx)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// GetCapabilityReport implements spec §4.4 "get_capability_report". Per the
// open question documented in DESIGN.md ("capability-query timeout"), the
// same 4-second bound used elsewhere is applied here too, even though the
// reference driver polls this one without a deadline.
func (c *Client) GetCapabilityReport(ctx context.Context) (CapabilityResponse, error) {
	slot := c.reply.slot(queryCapability)
	slot.reset()
	if err := c.writeSysEx(SysExCapabilityQuery, nil); err != nil {
		return CapabilityResponse{}, err
	}
	v, err := slot.await(ctx)
	if err != nil {
		return CapabilityResponse{}, err
	}
	resp := v.(CapabilityResponse)
	c.capability = resp
	return resp, nil
}

// GetAnalogMap implements spec §4.4 "get_analog_map", bound to 4 seconds.
func (c *Client) GetAnalogMap(ctx context.Context) (AnalogMappingResponse, error) {
	slot := c.reply.slot(queryAnalogMapping)
	slot.reset()
	if err := c.writeSysEx(SysExAnalogMappingQuery, nil); err != nil {
		return AnalogMappingResponse{}, err
	}
	v, err := slot.await(ctx)
	if err != nil {
		return AnalogMappingResponse{}, err
	}
	return v.(AnalogMappingResponse), nil
}

// GetPinState implements spec §4.4 "get_pin_state(pin)". Per the open
// question documented in DESIGN.md ("pin-state response clearing"), the
// slot is always cleared before the query is sent, not just after a
// successful prior read.
func (c *Client) GetPinState(ctx context.Context, pinNumber uint8) (PinStateResponse, error) {
	if err := c.checkDigitalPin(pinNumber); err != nil {
		return PinStateResponse{}, err
	}
	slot := c.reply.slot(queryPinState)
	slot.reset()
	if err := c.writeSysEx(SysExPinStateQuery, []byte{pinNumber}); err != nil {
		return PinStateResponse{}, err
	}
	v, err := slot.await(ctx)
	if err != nil {
		return PinStateResponse{}, err
	}
	return v.(PinStateResponse), nil
}
