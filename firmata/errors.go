package firmata

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFeature = errors.New("unsupported feature")
	ErrValueOutOfRange    = errors.New("value is out of range")

	// ErrDiscoveryFailed is returned when auto-probing every candidate serial
	// port failed to turn up a board reporting the configured instance id.
	ErrDiscoveryFailed = errors.New("firmata: no board replied to discovery with a matching instance id")
	// ErrFirmwareUnavailable is returned when the startup REPORT_FIRMWARE query
	// timed out or the board closed the connection before replying.
	ErrFirmwareUnavailable = errors.New("firmata: firmware version unavailable")
	// ErrFirmwareVersionMismatch is returned by callers that pin a required
	// firmware major.minor and the board reported something else.
	ErrFirmwareVersionMismatch = errors.New("firmata: firmware version mismatch")
	// ErrReplyTimeout is returned by bounded query operations whose reply did
	// not arrive within the query's timeout budget.
	ErrReplyTimeout = errors.New("firmata: timed out waiting for reply")
	// ErrInvalidArgument is returned when an operation's precondition is not met.
	ErrInvalidArgument = errors.New("firmata: invalid argument")
	// ErrNotStarted names a client whose background workers are not running.
	// No operation of this package returns it; Open starts the workers before
	// it returns.
	ErrNotStarted = errors.New("firmata: client not started")
	// ErrShuttingDown names a client that is shutting down. No Client method
	// returns it: a write attempted after Shutdown goes to the closed Transport
	// and returns that Transport's error.
	ErrShuttingDown = errors.New("firmata: client is shutting down")
	// ErrTooManySonarDevices is returned when a 7th SONAR trigger pin is configured.
	ErrTooManySonarDevices = errors.New("firmata: at most 6 sonar devices are supported")
	// ErrTransport wraps any error surfaced from the underlying Transport.
	ErrTransport = errors.New("firmata: transport error")
)

// DhtErrorStatus mirrors the firmware-reported error status byte of a DHT_DATA
// message (see spec §4.3's DHT decoding rules).
type DhtErrorStatus uint8

const (
	DhtErrorNone     DhtErrorStatus = 0
	DhtErrorChecksum DhtErrorStatus = 1
	DhtErrorTimeout  DhtErrorStatus = 2
	DhtErrorConfig   DhtErrorStatus = 3
)

func (s DhtErrorStatus) String() string {
	switch s {
	case DhtErrorNone:
		return "none"
	case DhtErrorChecksum:
		return "checksum error"
	case DhtErrorTimeout:
		return "timeout"
	case DhtErrorConfig:
		return "config error"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// DhtError is latched whenever a DHT sensor reports a non-zero error status.
// It is never raised as a Go error from the dispatcher itself - per spec §7,
// DHT errors are always delivered as sentinel values to the callback - but
// the last one latched is exposed via Client.DhtLastError.
type DhtError struct {
	Pin    uint8
	Status DhtErrorStatus
}

func (e *DhtError) Error() string {
	return fmt.Sprintf("firmata: dht pin %d: %s", e.Pin, e.Status)
}

// transportError wraps a transport-layer I/O failure.
func transportError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}
