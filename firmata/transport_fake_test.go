package firmata

import (
	"sync"

	"github.com/rs/zerolog"
)

// fakeTransport is an in-memory Transport used by tests to assert exact
// wire bytes without a real serial port or socket.
type fakeTransport struct {
	mu      sync.Mutex
	writes  [][]byte
	inbound []byte
	closed  bool
}

func (f *fakeTransport) Write(payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	f.writes = append(f.writes, cp)
	return nil
}

func (f *fakeTransport) RecvByte() (byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.inbound) == 0 {
		return 0, ErrShuttingDown
	}
	b := f.inbound[0]
	f.inbound = f.inbound[1:]
	return b, nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

func (f *fakeTransport) lastWrite() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.writes) == 0 {
		return nil
	}
	return f.writes[len(f.writes)-1]
}

// newTestClient builds a Client with a fakeTransport and state tables sized
// for 20 pins, bypassing Open's handshake - the unit tests below exercise
// individual components (dispatcher, public API write framing) directly.
func newTestClient() (*Client, *fakeTransport) {
	ft := &fakeTransport{}
	c := &Client{
		opts:      DefaultOpts.withDefaults(),
		log:       zerolog.Nop(),
		transport: ft,
		queue:     newByteQueue(),
		digital:   newDigitalPinTable(20),
		analog:    newAnalogPinTable(8),
		i2c:       newI2CDeviceTable(),
		sonar:     newSonarTable(),
		dht:       newDhtTable(),
		reply:     newReplyTable(),
		stopCh:    make(chan struct{}),
	}
	c.reader = newFrameReader(c.queue)
	return c, ft
}
