package firmata

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"go.bug.st/serial"
)

// serialTransport implements Transport over a local serial port, per spec §4.1:
// configurable path and baud (default 115200), one-second read timeout, a
// non-blocking bytes_available() peek realized here as a short read deadline
// that returns (0, nil)-equivalent on timeout rather than an error.
type serialTransport struct {
	port serial.Port
	log  zerolog.Logger
}

// openSerialTransport opens path at baud and applies the one-second read
// timeout spec §4.1 requires.
func openSerialTransport(path string, baud int, log zerolog.Logger) (*serialTransport, error) {
	port, err := serial.Open(path, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, transportError(err)
	}
	if err := port.SetReadTimeout(time.Second); err != nil {
		_ = port.Close()
		return nil, transportError(err)
	}
	return &serialTransport{port: port, log: log.With().Str("transport", "serial").Str("path", path).Logger()}, nil
}

func (t *serialTransport) Write(payload []byte) error {
	n, err := t.port.Write(payload)
	if err != nil {
		return transportError(err)
	}
	if n != len(payload) {
		return transportError(io.ErrShortWrite)
	}
	return nil
}

// RecvByte blocks until a byte arrives. A read that returns 0 bytes with no
// error is the port's read-timeout firing with nothing pending; that is not
// an error condition, so the read is simply retried (spec §4.2: "the reader
// must tolerate being suspended at any byte boundary").
func (t *serialTransport) RecvByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := t.port.Read(buf[:])
		if err != nil {
			return 0, transportError(err)
		}
		if n == 1 {
			return buf[0], nil
		}
	}
}

func (t *serialTransport) Close() error {
	return transportError(t.port.Close())
}

// candidateSerialPort describes one USB serial device found during
// auto-discovery (spec §4.5): path plus whatever identifying information the
// enumeration library surfaced.
type candidateSerialPort struct {
	Path string
	VID  string
	PID  string
}

// listUSBSerialPorts enumerates candidate serial devices, filtered to those
// carrying a USB product id (spec §4.5 step 1).
func listUSBSerialPorts() ([]candidateSerialPort, error) {
	details, err := serial.GetDetailedPortsList()
	if err != nil {
		return nil, transportError(err)
	}
	var out []candidateSerialPort
	for _, d := range details {
		if !d.IsUSB || d.PID == "" {
			continue
		}
		out = append(out, candidateSerialPort{Path: d.Name, VID: d.VID, PID: d.PID})
	}
	return out, nil
}
