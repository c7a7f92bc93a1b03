package firmata

// incomingMessage is the structured record the Frame Reader hands to the
// Dispatcher (spec §2 "Frame Reader", §4.2).
type incomingMessage struct {
	sysex    bool
	sysexCmd SysExCmd
	msgType  MessageType
	param    uint8 // port or pin extracted from the low nibble of a channel message's status byte
	payload  []byte
}

// frameReader tokenizes the byte stream produced by the Receiver into
// incomingMessage records, per the classification rules of spec §4.2.
type frameReader struct {
	q *byteQueue
}

func newFrameReader(q *byteQueue) *frameReader {
	return &frameReader{q: q}
}

// next blocks until one full message has been read or the queue is closed
// (ok=false), waiting in the queue's pop whenever no byte is available. It
// never returns a partially-framed message (spec §8 invariant 5).
func (r *frameReader) next() (*incomingMessage, bool) {
	for {
		b, ok := r.q.pop()
		if !ok {
			return nil, false
		}

		switch {
		case b == byte(StartSysEx):
			cmdByte, ok := r.q.pop()
			if !ok {
				return nil, false
			}
			var payload []byte
			for {
				nb, ok := r.q.pop()
				if !ok {
					return nil, false
				}
				if nb == byte(EndSysEx) {
					break
				}
				payload = append(payload, nb)
			}
			return &incomingMessage{sysex: true, sysexCmd: SysExCmd(cmdByte), payload: payload}, true

		case b >= byte(DigitalIOMessage) && b <= byte(DigitalIOMessage)+0xF:
			msg, ok := r.readTwoByteChannelMessage(DigitalIOMessage, b-byte(DigitalIOMessage))
			if !ok {
				return nil, false
			}
			return msg, true

		case b >= byte(AnalogIOMessage) && b <= byte(AnalogIOMessage)+0xF:
			msg, ok := r.readTwoByteChannelMessage(AnalogIOMessage, b-byte(AnalogIOMessage))
			if !ok {
				return nil, false
			}
			return msg, true

		case b == byte(ProtocolVersion):
			msg, ok := r.readTwoByteChannelMessage(ProtocolVersion, 0)
			if !ok {
				return nil, false
			}
			return msg, true

		default:
			// Either a status byte this driver does not act on, or a spurious
			// data byte outside any frame; both are discarded (spec §4.2).
			continue
		}
	}
}

func (r *frameReader) readTwoByteChannelMessage(kind MessageType, param uint8) (*incomingMessage, bool) {
	lsb, ok := r.q.pop()
	if !ok {
		return nil, false
	}
	msb, ok := r.q.pop()
	if !ok {
		return nil, false
	}
	return &incomingMessage{msgType: kind, param: param, payload: []byte{lsb, msb}}, true
}
