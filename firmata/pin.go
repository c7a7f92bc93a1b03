package firmata

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

var (
	ErrUnsupportedGPIOPull = errors.New("firmata: PullDown is not supported")
	ErrNoMatchingGPIOPull  = errors.New("firmata: pin was previously in a non-input mode")
)

// Pin adapts one digital pin of a Client to periph.io's gpio.PinIO, wiring
// the Dispatcher's per-pin DigitalCallback into an edge-detection channel
// (spec §3 "Pin record (digital)": pull-up flag, differential, last change
// time all live in the underlying digitalPinTable entry; this type only
// adds the gpio.PinIO edge-wait convenience on top).
type Pin struct {
	c   *Client
	pin uint8

	mu         sync.Mutex
	edge       gpio.Edge
	valueLast  gpio.Level
	valueNew   gpio.Level
	edgeChange chan gpio.Edge
}

// NewPin wraps pinNumber of c as a gpio.PinIO. The pin's mode is not set
// until In or Out is called.
func NewPin(c *Client, pinNumber uint8) *Pin {
	return &Pin{c: c, pin: pinNumber}
}

func (p *Pin) onChange(pinNumber uint8, value int, pullUp bool, ts time.Time) {
	level := gpio.Level(value != 0)

	p.mu.Lock()
	p.valueLast = p.valueNew
	p.valueNew = level
	edgeCh := p.edgeChange
	last, cur := p.valueLast, p.valueNew
	p.mu.Unlock()

	if edgeCh == nil {
		return
	}
	if last && !cur {
		edgeCh <- gpio.FallingEdge
	}
	if !last && cur {
		edgeCh <- gpio.RisingEdge
	}
}

func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	switch pull {
	case gpio.PullDown:
		return ErrUnsupportedGPIOPull
	case gpio.PullNoChange:
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		s, err := p.c.GetPinState(ctx, p.pin)
		if err != nil {
			return err
		}
		switch s.Mode {
		case PinFuncInputPullUp, PinFuncDigitalInput:
		default:
			return ErrNoMatchingGPIOPull
		}
		pull = gpio.PullUp
		if s.Mode == PinFuncDigitalInput {
			pull = gpio.Float
		}
	}

	p.mu.Lock()
	p.edge = edge
	p.mu.Unlock()

	if pull == gpio.PullUp {
		return p.c.SetPinModeDigitalInputPullup(p.pin, p.onChange)
	}
	return p.c.SetPinModeDigitalInput(p.pin, p.onChange)
}

func (p *Pin) Read() gpio.Level {
	value, _ := p.c.DigitalRead(p.pin)
	return gpio.Level(value != 0)
}

func (p *Pin) WaitForEdge(timeout time.Duration) bool {
	p.mu.Lock()
	p.edgeChange = make(chan gpio.Edge)
	ch := p.edgeChange
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		close(p.edgeChange)
		p.edgeChange = nil
		p.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for {
		select {
		case change := <-ch:
			if p.edge == gpio.BothEdges || change == p.edge {
				return true
			}
		case <-ctx.Done():
			return false
		}
	}
}

func (p *Pin) Pull() gpio.Pull {
	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()
	s, err := p.c.GetPinState(ctx, p.pin)
	if err != nil {
		return gpio.PullNoChange
	}
	switch s.Mode {
	case PinFuncInputPullUp:
		return gpio.PullUp
	case PinFuncDigitalInput:
		return gpio.Float
	}
	return gpio.PullNoChange
}

func (p *Pin) DefaultPull() gpio.Pull {
	return gpio.PullNoChange
}

func (p *Pin) Out(l gpio.Level) error {
	return p.c.DigitalPinWrite(p.pin, bool(l))
}

// PWM ignores physic.Frequency; Firmata offers no way to set PWM frequency
// per pin.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return p.c.PWMWrite(p.pin, int(duty>>16)) // scale 24-bit duty down to 8 bits of EXTENDED_PWM's low byte range
}

func (p *Pin) Func() pin.Func {
	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()
	s, err := p.c.GetPinState(ctx, p.pin)
	if err != nil {
		return pin.FuncNone
	}
	return s.Mode
}

func (p *Pin) SetFunc(f pin.Func) error {
	return p.c.setPinMode(p.pin, f)
}

func (p *Pin) SupportedFuncs() []pin.Func {
	if int(p.pin) >= len(p.c.capability.SupportedPinModes) {
		return nil
	}
	return p.c.capability.SupportedPinModes[p.pin]
}

func (p *Pin) Halt() error {
	if err := p.c.DigitalPinWrite(p.pin, false); err != nil {
		return err
	}
	return nil
}

func (p *Pin) Name() string {
	return pinName(p.pin)
}

func (p *Pin) String() string {
	return p.Name()
}

func (p *Pin) Number() int {
	return int(p.pin)
}

func (p *Pin) Function() string {
	return string(p.Func())
}

func pinName(pinNumber uint8) string {
	return "D" + strconv.Itoa(int(pinNumber))
}
