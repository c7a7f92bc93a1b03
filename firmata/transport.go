package firmata

// Transport abstracts byte-level send/receive over a serial port or a TCP
// socket (spec §4.1). Implementations own their substrate handle and its
// shutdown; RecvByte pulls exactly one byte, blocking until it is available
// or the transport is closed.
type Transport interface {
	Write(payload []byte) error
	RecvByte() (byte, error)
	Close() error
}
