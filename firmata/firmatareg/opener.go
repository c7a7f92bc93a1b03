package firmatareg

import "github.com/periph-devices/gofirmata/firmata"

// OpenerForSerial builds an Opener that connects to a board over a serial
// port at the given path, applying opts for everything else (baud,
// instance id, sampling interval, logger).
func OpenerForSerial(path string, opts firmata.Opts) Opener {
	return func() (firmata.ClientI, error) {
		o := opts
		o.SerialPath = path
		return firmata.Open(o)
	}
}

// OpenerForTCP builds an Opener that connects to a board over a TCP socket
// at addr ("host:port"), applying opts for everything else.
func OpenerForTCP(addr string, opts firmata.Opts) Opener {
	return func() (firmata.ClientI, error) {
		o := opts
		o.TCPAddress = addr
		return firmata.Open(o)
	}
}
