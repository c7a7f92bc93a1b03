package firmata

import (
	"context"
	"sync"
)

// queryKind identifies one of the bounded query-reply slots of spec §3
// ("Query reply table").
type queryKind uint8

const (
	queryProtocolVersion queryKind = iota
	queryFirmware
	queryCapability
	queryPinState
	queryAnalogMapping
)

// replySlot is a single-slot future fulfilled by the Dispatcher and awaited
// by the Public API with a timeout, per the resolution spec §9 recommends
// for the "query-reply rendezvous" design smell (replacing a polled mutable
// table with one future per query).
type replySlot struct {
	mu   sync.Mutex
	ch   chan any
	done bool
}

func newReplySlot() *replySlot {
	return &replySlot{ch: make(chan any, 1)}
}

// reset clears the slot so a re-issued query cannot observe a stale value.
// Both open questions documented in DESIGN.md ("pin-state response
// clearing" and "capability-query timeout") are resolved by always clearing
// every slot before sending its query and always applying the 4-second
// bound uniformly.
func (s *replySlot) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.done {
		return
	}
	// drain any unread stale value
	select {
	case <-s.ch:
	default:
	}
	s.done = false
}

// fulfill is called by the Dispatcher exactly once per query cycle.
func (s *replySlot) fulfill(v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}
	s.done = true
	s.ch <- v
}

// await blocks until fulfill is called, ctx is done, or replyTimeout (4
// seconds) has passed, whichever comes first, returning ErrReplyTimeout on
// expiry.
func (s *replySlot) await(ctx context.Context) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, replyTimeout)
	defer cancel()
	select {
	case v := <-s.ch:
		s.mu.Lock()
		s.ch <- v // put back for any concurrent awaiter / re-read
		s.mu.Unlock()
		return v, nil
	case <-ctx.Done():
		return nil, ErrReplyTimeout
	}
}

// replyTable holds one replySlot per queryKind.
type replyTable struct {
	slots map[queryKind]*replySlot
}

func newReplyTable() *replyTable {
	t := &replyTable{slots: make(map[queryKind]*replySlot)}
	for _, k := range []queryKind{queryProtocolVersion, queryFirmware, queryCapability, queryPinState, queryAnalogMapping} {
		t.slots[k] = newReplySlot()
	}
	return t
}

func (t *replyTable) slot(k queryKind) *replySlot {
	return t.slots[k]
}
