package firmata

import (
	"context"
	"time"
)

// resolveTransport implements spec §4.5 step 1: TCP wins if configured,
// then an explicit serial path, then auto-discovery across every
// USB-attached candidate serial port.
func (c *Client) resolveTransport() error {
	if c.opts.TCPAddress != "" {
		t, err := openTCPTransport(c.opts.TCPAddress, c.log)
		if err != nil {
			return err
		}
		c.transport = t
		return nil
	}
	if c.opts.SerialPath != "" {
		t, err := openSerialTransport(c.opts.SerialPath, c.opts.Baud, c.log)
		if err != nil {
			return err
		}
		c.transport = t
		return nil
	}
	return c.autoDiscover()
}

// autoDiscover probes every USB serial candidate, per spec §4.5 step 1: open
// at the configured baud, wait for the board's reset to finish, send
// ARE_YOU_THERE, and accept the first reply whose instance id matches.
func (c *Client) autoDiscover() error {
	candidates, err := listUSBSerialPorts()
	if err != nil {
		return err
	}
	for _, cand := range candidates {
		t, err := openSerialTransport(cand.Path, c.opts.Baud, c.log)
		if err != nil {
			c.log.Debug().Str("path", cand.Path).Err(err).Msg("discovery: open failed")
			continue
		}

		time.Sleep(c.opts.ArduinoWait)

		if err := t.Write([]byte{byte(StartSysEx), byte(SysExAreYouThere), byte(EndSysEx)}); err != nil {
			_ = t.Close()
			continue
		}

		if probeInstanceMatch(t, c.opts.ArduinoInstanceID) {
			c.transport = t
			c.log.Info().Str("path", cand.Path).Msg("discovery: board found")
			return nil
		}
		_ = t.Close()
	}
	return ErrDiscoveryFailed
}

// probeInstanceMatch reads a single SysEx frame directly off t (the
// Receiver/Reporter workers are not running yet during discovery) and
// checks it is I_AM_HERE with a matching instance id (spec §8 scenario 5).
func probeInstanceMatch(t *serialTransport, wantInstanceID byte) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		b, err := t.RecvByte()
		if err != nil {
			return false
		}
		if b != byte(StartSysEx) {
			continue
		}
		cmd, err := t.RecvByte()
		if err != nil {
			return false
		}
		var payload []byte
		for {
			nb, err := t.RecvByte()
			if err != nil {
				return false
			}
			if nb == byte(EndSysEx) {
				break
			}
			payload = append(payload, nb)
		}
		if cmd == byte(SysExIAmHere) && len(payload) >= 1 && payload[0] == wantInstanceID {
			return true
		}
	}
	return false
}

// runHandshake implements spec §4.5 steps 3-5, executed once the Receiver
// and Reporter are already running.
func (c *Client) runHandshake() error {
	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()
	if _, err := c.GetFirmwareVersion(ctx); err != nil {
		return ErrFirmwareUnavailable
	}

	ctx2, cancel2 := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel2()
	mapping, err := c.GetAnalogMap(ctx2)
	if err != nil {
		return err
	}
	c.digitalPinToAnalog = mapping.DigitalPinToAnalog
	c.analogPinToDigital = mapping.AnalogPinToDigital
	c.digital = newDigitalPinTable(mapping.DigitalPinCount)
	c.analog = newAnalogPinTable(len(mapping.AnalogPinToDigital))
	// spec §3 invariant: first_analog_pin == len(digital_pins) - len(analog_pins), set once and never changed.
	c.firstAnalogPin = c.digital.len() - c.analog.len()

	return c.SetSamplingInterval(c.opts.SamplingInterval)
}
