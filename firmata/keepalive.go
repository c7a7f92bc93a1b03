package firmata

import "time"

// KeepAlive implements spec §4.4 "keep_alive(period, margin)": clamps period
// to [0, 10]s and margin to [0.1, 0.9]s. Period 0 disables; a non-zero
// period (re)configures the Keep-Alive worker (spec §5) which sleeps
// `period - margin` and then sends a KEEP_ALIVE SysEx, exiting when the
// period is set back to 0.
func (c *Client) KeepAlive(period, margin time.Duration) error {
	if period < 0 {
		period = 0
	}
	if period > 10*time.Second {
		period = 10 * time.Second
	}
	if margin < 100*time.Millisecond {
		margin = 100 * time.Millisecond
	}
	if margin > 900*time.Millisecond {
		margin = 900 * time.Millisecond
	}

	if period == 0 {
		c.keepAlivePeriod.Store(0)
		return nil
	}

	interval := period - margin
	if interval <= 0 {
		interval = period
	}
	c.keepAlivePeriod.Store(int64(interval))

	c.keepAliveStartOnce()
	return nil
}

func (c *Client) keepAliveStartOnce() {
	c.keepAliveStart.Do(func() {
		c.workersDone.Add(1)
		go c.keepAliveLoop()
	})
}

func (c *Client) keepAliveLoop() {
	defer c.workersDone.Done()
	for {
		interval := time.Duration(c.keepAlivePeriod.Load())
		if interval <= 0 {
			return
		}
		select {
		case <-c.stopCh:
			return
		case <-time.After(interval):
		}
		if c.keepAlivePeriod.Load() <= 0 {
			return
		}
		if err := c.writeSysEx(SysExKeepAlive, nil); err != nil {
			return
		}
	}
}
