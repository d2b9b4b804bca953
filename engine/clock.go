package engine

import (
	"time"

	"github.com/kamstrup/intmap"
)

// TimerID identifies a scheduled callback. Zero is never a live timer.
type TimerID uint64

type timer struct {
	id     TimerID
	due    time.Duration
	period time.Duration // zero for one-shot timers
	fn     func()
}

// Clock is a cooperative timer queue driven by Advance. Callbacks run on the
// goroutine that calls Advance, one at a time, in due-time order. The game
// loop advances it by each frame's elapsed time, so timers never run
// concurrently with entity updates or collision checks.
type Clock struct {
	now    time.Duration
	nextID TimerID
	timers *intmap.Map[TimerID, *timer]
	fired  int64
}

// NewClock creates a clock at time zero with no timers.
func NewClock() *Clock {
	return &Clock{
		timers: intmap.New[TimerID, *timer](16),
	}
}

// Now returns the clock's virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// SetInterval schedules fn to run every period, first at Now()+period.
// A non-positive period or nil fn schedules nothing and returns 0.
func (c *Clock) SetInterval(period time.Duration, fn func()) TimerID {
	if period <= 0 || fn == nil {
		return 0
	}
	return c.schedule(period, period, fn)
}

// SetTimeout schedules fn to run once at Now()+delay.
func (c *Clock) SetTimeout(delay time.Duration, fn func()) TimerID {
	if delay < 0 || fn == nil {
		return 0
	}
	return c.schedule(delay, 0, fn)
}

func (c *Clock) schedule(delay, period time.Duration, fn func()) TimerID {
	c.nextID++
	t := &timer{
		id:     c.nextID,
		due:    c.now + delay,
		period: period,
		fn:     fn,
	}
	c.timers.Put(t.id, t)
	return t.id
}

// Clear cancels a timer. It reports whether the timer was still scheduled.
// Clearing 0 or an unknown id is a no-op.
func (c *Clock) Clear(id TimerID) bool {
	if id == 0 {
		return false
	}
	if _, ok := c.timers.Get(id); !ok {
		return false
	}
	c.timers.Del(id)
	return true
}

// Active reports whether id is still scheduled.
func (c *Clock) Active(id TimerID) bool {
	if id == 0 {
		return false
	}
	_, ok := c.timers.Get(id)
	return ok
}

// Pending returns the number of scheduled timers.
func (c *Clock) Pending() int {
	return c.timers.Len()
}

// Fired returns the total number of callbacks run so far.
func (c *Clock) Fired() int64 {
	return c.fired
}

// Advance moves virtual time forward by dt, running every callback that
// falls due on the way. Interval timers may run several times in one call.
// Callbacks may schedule or clear timers, including their own.
func (c *Clock) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := c.now + dt

	for {
		next := c.earliest(target)
		if next == nil {
			break
		}

		c.now = next.due
		if next.period > 0 {
			next.due += next.period
		} else {
			c.timers.Del(next.id)
		}

		c.fired++
		next.fn()
	}

	c.now = target
}

// earliest returns the timer due soonest at or before target, ties broken by
// scheduling order.
func (c *Clock) earliest(target time.Duration) *timer {
	var best *timer
	c.timers.ForEach(func(id TimerID, t *timer) bool {
		if t.due > target {
			return true
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
		return true
	})
	return best
}
