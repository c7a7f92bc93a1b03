// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package firmata

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ClientI is the public surface of a Firmata driver instance; firmatareg's
// Opener returns it. The periph.io adapters (Pin, I2CBus) take a *Client, not
// a ClientI.
type ClientI interface {
	SetPinModeDigitalInput(pinNumber uint8, cb DigitalCallback) error
	SetPinModeDigitalInputPullup(pinNumber uint8, cb DigitalCallback) error
	SetPinModeDigitalOutput(pinNumber uint8) error
	SetPinModeAnalogInput(analogPinNumber uint8, differential int, cb AnalogCallback) error
	SetPinModePWMOutput(pinNumber uint8) error
	SetPinModeServo(pinNumber uint8, minPulse, maxPulse uint16) error
	SetPinModeTone(pinNumber uint8) error
	SetPinModeI2C(readDelayMicros uint16) error
	SetPinModeSonar(triggerPin, echoPin uint8, timeout uint16, cb SonarCallback) error
	SetPinModeStepper(stepsPerRevolution uint16, stepperPins []uint8) error
	SetPinModeDHT(pinNumber uint8, sensorType uint8, differential float64, cb DhtCallback) error

	DigitalWrite(pinNumber uint8, level bool) error
	DigitalPinWrite(pinNumber uint8, level bool) error
	PWMWrite(pinNumber uint8, value int) error
	ServoWrite(pinNumber uint8, value int) error

	AnalogRead(analogPinNumber uint8) (int, time.Time)
	DigitalRead(pinNumber uint8) (int, time.Time)
	DhtRead(pinNumber uint8) (humidity, temperature float64, status DhtErrorStatus, ok bool)
	DhtLastError() *DhtError
	SonarRead(triggerPin uint8) (distanceCM int, ts time.Time, ok bool)

	I2CRead(address uint8, register *uint8, numBytes int, cb I2CCallback) error
	I2CReadContinuous(address uint8, register *uint8, numBytes int, cb I2CCallback) error
	I2CReadRestartTransmission(address uint8, register *uint8, numBytes int, cb I2CCallback) error
	I2CWrite(address uint8, data []byte) error
	I2CReadSavedData(address uint8) (I2CPacket, bool)

	GetFirmwareVersion(ctx context.Context) (FirmwareReport, error)
	GetProtocolVersion(ctx context.Context) (string, error)
	GetCapabilityReport(ctx context.Context) (CapabilityResponse, error)
	GetAnalogMap(ctx context.Context) (AnalogMappingResponse, error)
	GetPinState(ctx context.Context, pinNumber uint8) (PinStateResponse, error)

	PlayTone(pinNumber uint8, freqHz uint16, durationMs uint16) error
	PlayToneContinuously(pinNumber uint8, freqHz uint16) error
	PlayToneOff(pinNumber uint8) error

	StepperWrite(speed int32, signedSteps int32) error

	SetSamplingInterval(d time.Duration) error
	KeepAlive(period, margin time.Duration) error

	SendReset() error
	Shutdown() error
}

// Client is the concrete driver: it owns the Transport, the Receiver and
// Reporter workers, and every state table (spec §2).
type Client struct {
	opts      *Opts
	transport Transport
	log       zerolog.Logger

	queue  *byteQueue
	reader *frameReader

	sendSysExMu sync.Mutex // spec §5 "send-sysex lock"

	digital *digitalPinTable
	analog  *analogPinTable
	i2c     *i2cDeviceTable
	sonar   *sonarTable
	dht     *dhtTable
	reply   *replyTable

	analogPinToDigital []uint8
	digitalPinToAnalog map[uint8]uint8
	firstAnalogPin     int
	capability         CapabilityResponse

	keepAlivePeriod atomic.Int64 // time.Duration, 0 disables
	keepAliveStart  sync.Once

	shutdownFlag atomic.Bool
	workersDone  sync.WaitGroup
	stopCh       chan struct{}
}

var _ ClientI = (*Client)(nil)

// Open resolves the transport per spec §4.5 and runs the full startup
// handshake, returning a ready-to-use Client.
func Open(opts Opts) (*Client, error) {
	o := opts.withDefaults()
	log := o.Logger
	if log.GetLevel() == zerolog.Disabled {
		log = zerolog.Nop()
	}

	c := &Client{
		opts:   o,
		log:    log.With().Str("component", "firmata").Logger(),
		queue:  newByteQueue(),
		i2c:    newI2CDeviceTable(),
		sonar:  newSonarTable(),
		dht:    newDhtTable(),
		reply:  newReplyTable(),
		stopCh: make(chan struct{}),
	}
	c.reader = newFrameReader(c.queue)

	if err := c.resolveTransport(); err != nil {
		return nil, err
	}

	c.startWorkers()

	if err := c.runHandshake(); err != nil {
		_ = c.Shutdown()
		return nil, err
	}

	return c, nil
}

func (c *Client) startWorkers() {
	c.workersDone.Add(2)
	go c.receiverLoop()
	go c.reporterLoop()
}

// receiverLoop pulls bytes from Transport and appends them to the shared
// FIFO. It never touches a state table (spec §5 "Receiver").
func (c *Client) receiverLoop() {
	defer c.workersDone.Done()
	for {
		select {
		case <-c.stopCh:
			return
		default:
		}
		b, err := c.transport.RecvByte()
		if err != nil {
			c.handleIOError(err)
			return
		}
		c.queue.push(b)
	}
}

// reporterLoop drains the FIFO through the Frame Reader and Dispatcher
// (spec §5 "Reporter"). Callbacks run on this goroutine.
func (c *Client) reporterLoop() {
	defer c.workersDone.Done()
	for {
		msg, ok := c.reader.next()
		if !ok {
			return
		}
		c.dispatch(msg)
	}
}

func (c *Client) handleIOError(err error) {
	if c.shutdownFlag.Load() {
		return
	}
	c.log.Error().Err(err).Msg("transport read failed")
	if c.opts.ShutdownOnException {
		_ = c.Shutdown()
	}
}

// writeSysEx frames and writes a SysEx payload under the send-sysex lock so
// it is never interleaved with another SysEx (spec §5 "Ordering
// guarantees").
func (c *Client) writeSysEx(cmd SysExCmd, payload []byte) error {
	c.sendSysExMu.Lock()
	defer c.sendSysExMu.Unlock()
	frame := make([]byte, 0, len(payload)+3)
	frame = append(frame, byte(StartSysEx), byte(cmd))
	frame = append(frame, payload...)
	frame = append(frame, byte(EndSysEx))
	return c.writeRaw(frame)
}

// writeChannelMessage writes a fixed 3-byte channel message as a single
// contiguous write (spec §5 "Ordering guarantees").
func (c *Client) writeChannelMessage(status byte, d1, d2 byte) error {
	return c.writeRaw([]byte{status, d1, d2})
}

func (c *Client) writeRaw(frame []byte) error {
	if err := c.transport.Write(frame); err != nil {
		c.handleIOError(err)
		return err
	}
	return nil
}

// checkDigitalPin implements spec §3's invariant that every pin index used by
// the API lie within the digital pin vector, returning ErrInvalidArgument
// otherwise (spec §7 "InvalidArgument").
func (c *Client) checkDigitalPin(pinNumber uint8) error {
	if int(pinNumber) >= c.digital.len() {
		return fmt.Errorf("%w: digital pin %d out of range (have %d)", ErrInvalidArgument, pinNumber, c.digital.len())
	}
	return nil
}

// checkAnalogPin implements spec §3's invariant that an analog ordinal lie
// within the analog pin vector, returning ErrInvalidArgument otherwise.
func (c *Client) checkAnalogPin(analogPinNumber uint8) error {
	if int(analogPinNumber) >= c.analog.len() {
		return fmt.Errorf("%w: analog pin %d out of range (have %d)", ErrInvalidArgument, analogPinNumber, c.analog.len())
	}
	return nil
}

// SendReset disables reporting on every known pin (REPORT_DIGITAL for each
// digital port, REPORT_ANALOG for each analog pin 0-15 the status byte can
// address) and emits SYSTEM_RESET (spec §4.4 "send_reset / shutdown"). Pin
// tables that are not built yet, as when the startup handshake fails, are
// skipped.
func (c *Client) SendReset() error {
	if c.digital != nil {
		for p := uint8(0); p < uint8((c.digital.len()+7)/8); p++ {
			_ = c.writeChannelMessage(byte(ReportDigitalPort)+p, 0, 0)
		}
	}
	if c.analog != nil {
		for a := 0; a < c.analog.len() && a < 16; a++ {
			_ = c.writeChannelMessage(byte(ReportAnalogPin)+byte(a), 0, 0)
		}
	}
	return c.writeRaw([]byte{byte(SystemReset)})
}

// Shutdown implements spec §4.4 "send_reset / shutdown": disable reporting
// on every known pin, emit SYSTEM_RESET, then signal both background
// workers to stop and close the Transport. It is safe to call more than
// once.
func (c *Client) Shutdown() error {
	if !c.shutdownFlag.CompareAndSwap(false, true) {
		return nil
	}
	_ = c.SendReset()
	close(c.stopCh)
	c.queue.close()
	c.keepAlivePeriod.Store(0)
	err := c.transport.Close()
	c.workersDone.Wait()
	return err
}
