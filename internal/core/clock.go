package core

import (
	"context"
	"time"
)

// Clock paces a fixed-rate loop. Wait blocks until one tick duration has
// elapsed since the previous tick, so a loop that calls Wait once per
// iteration runs at the configured rate no matter how long its body takes
// (as long as the body is shorter than a tick).
type Clock struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
	sleep    func(context.Context, time.Duration) error
	ticks    uint64
}

// NewClock creates a clock for the given tick rate.
// A rate of zero or less produces an unpaced clock whose Wait never sleeps.
func NewClock(tickRate int) *Clock {
	var interval time.Duration
	if tickRate > 0 {
		interval = time.Second / time.Duration(tickRate)
	}
	return &Clock{
		interval: interval,
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// Interval returns the target duration of one tick.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Ticks returns the number of completed Wait calls.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Wait blocks until the next tick is due or ctx is cancelled.
func (c *Clock) Wait(ctx context.Context) error {
	if c.last.IsZero() {
		c.last = c.now()
		c.ticks++
		return ctx.Err()
	}

	if c.interval > 0 {
		if remaining := c.interval - c.now().Sub(c.last); remaining > 0 {
			if err := c.sleep(ctx, remaining); err != nil {
				return err
			}
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	c.last = c.now()
	c.ticks++
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
