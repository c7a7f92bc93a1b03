package firmata

import (
	"net"

	"github.com/rs/zerolog"
)

// tcpTransport implements Transport over a TCP socket, used for WiFi-bridge
// boards (spec §4.1 alternative transport).
type tcpTransport struct {
	conn net.Conn
	log  zerolog.Logger
}

func openTCPTransport(addr string, log zerolog.Logger) (*tcpTransport, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, transportError(err)
	}
	return &tcpTransport{conn: conn, log: log.With().Str("transport", "tcp").Str("addr", addr).Logger()}, nil
}

func (t *tcpTransport) Write(payload []byte) error {
	_, err := t.conn.Write(payload)
	return transportError(err)
}

// RecvByte performs a blocking single-byte read; unlike the serial
// transport there is no read-timeout to tolerate, since net.Conn.Read blocks
// until at least one byte is available or the connection closes.
func (t *tcpTransport) RecvByte() (byte, error) {
	var buf [1]byte
	if _, err := t.conn.Read(buf[:]); err != nil {
		return 0, transportError(err)
	}
	return buf[0], nil
}

func (t *tcpTransport) Close() error {
	return transportError(t.conn.Close())
}
