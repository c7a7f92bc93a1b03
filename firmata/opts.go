// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package firmata

import (
	"time"

	"github.com/rs/zerolog"
)

// Opts holds the configuration for Open. It follows the same plain-struct,
// documented-field convention as the other device packages this one was
// extracted from (compare aht20.Opts, inky.Opts): no functional options, a
// single DefaultOpts value, and zero-value fields falling back to a sane
// default at Open time.
type Opts struct {
	// SerialPath, when non-empty, opens this serial device directly instead of
	// auto-probing. Mutually exclusive with TCPAddress.
	SerialPath string
	// Baud is the serial baud rate. Default 115200.
	Baud int

	// TCPAddress, when non-empty ("host:port"), opens a TCP transport instead
	// of a serial one. Takes priority over SerialPath when both are set.
	TCPAddress string

	// ArduinoWait is how long to let the board finish its power-on-reset
	// before the discovery handshake starts probing it. Default 4s.
	ArduinoWait time.Duration
	// ArduinoInstanceID is matched against the 3rd byte of an I_AM_HERE reply
	// during auto-discovery. Default 1.
	ArduinoInstanceID byte

	// SamplingInterval is sent once at startup (spec step 5) so that SONAR and
	// DHT reports are paced. Default 19ms.
	SamplingInterval time.Duration

	// ShutdownOnException, when true, makes the driver call Shutdown on the
	// first transport write failure before surfacing the error to the caller.
	ShutdownOnException bool

	// Logger is the base logger every component derives its child logger from.
	// The zero value produces no log output; no console writer is installed.
	Logger zerolog.Logger
}

// DefaultOpts holds the default configuration.
var DefaultOpts = Opts{
	Baud:              115200,
	ArduinoWait:       4 * time.Second,
	ArduinoInstanceID: 1,
	SamplingInterval:  19 * time.Millisecond,
}

const replyTimeout = 4 * time.Second

func (o *Opts) withDefaults() *Opts {
	out := *o
	if out.Baud == 0 {
		out.Baud = DefaultOpts.Baud
	}
	if out.ArduinoWait == 0 {
		out.ArduinoWait = DefaultOpts.ArduinoWait
	}
	if out.ArduinoInstanceID == 0 {
		out.ArduinoInstanceID = DefaultOpts.ArduinoInstanceID
	}
	if out.SamplingInterval == 0 {
		out.SamplingInterval = DefaultOpts.SamplingInterval
	}
	return &out
}
