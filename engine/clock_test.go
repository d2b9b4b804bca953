package engine_test

import (
	"testing"
	"time"

	"github.com/plus3/tankduel/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockInterval(t *testing.T) {
	clock := engine.NewClock()

	runs := 0
	id := clock.SetInterval(30*time.Millisecond, func() { runs++ })
	require.NotZero(t, id)
	assert.True(t, clock.Active(id))

	clock.Advance(29 * time.Millisecond)
	assert.Equal(t, 0, runs)

	clock.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, runs)

	clock.Advance(95 * time.Millisecond)
	assert.Equal(t, 4, runs, "one Advance may cover several periods")
	assert.Equal(t, 125*time.Millisecond, clock.Now())
	assert.Equal(t, int64(4), clock.Fired())
}

func TestClockTimeout(t *testing.T) {
	clock := engine.NewClock()

	runs := 0
	id := clock.SetTimeout(10*time.Millisecond, func() { runs++ })

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, runs)
	assert.False(t, clock.Active(id))
	assert.Equal(t, 0, clock.Pending())
}

func TestClockClear(t *testing.T) {
	clock := engine.NewClock()

	runs := 0
	id := clock.SetInterval(10*time.Millisecond, func() { runs++ })

	assert.True(t, clock.Clear(id))
	assert.False(t, clock.Clear(id), "second clear reports nothing to cancel")
	assert.False(t, clock.Clear(0))
	assert.False(t, clock.Clear(9999))

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 0, runs)
}

func TestClockRejectsInvalidSchedules(t *testing.T) {
	clock := engine.NewClock()

	assert.Zero(t, clock.SetInterval(0, func() {}))
	assert.Zero(t, clock.SetInterval(-time.Second, func() {}))
	assert.Zero(t, clock.SetInterval(time.Second, nil))
	assert.Zero(t, clock.SetTimeout(-time.Second, func() {}))
	assert.Equal(t, 0, clock.Pending())
}

func TestClockOrdering(t *testing.T) {
	clock := engine.NewClock()

	var order []string
	clock.SetTimeout(20*time.Millisecond, func() { order = append(order, "late") })
	clock.SetTimeout(10*time.Millisecond, func() { order = append(order, "early") })
	clock.SetTimeout(10*time.Millisecond, func() { order = append(order, "early-second") })

	clock.Advance(time.Second)
	assert.Equal(t, []string{"early", "early-second", "late"}, order)
}

func TestClockCallbackReentrancy(t *testing.T) {
	t.Run("interval clears itself", func(t *testing.T) {
		clock := engine.NewClock()

		runs := 0
		var id engine.TimerID
		id = clock.SetInterval(10*time.Millisecond, func() {
			runs++
			if runs == 3 {
				clock.Clear(id)
			}
		})

		clock.Advance(time.Second)
		assert.Equal(t, 3, runs)
		assert.Equal(t, 0, clock.Pending())
	})

	t.Run("callback observes its due time", func(t *testing.T) {
		clock := engine.NewClock()

		var seen []time.Duration
		clock.SetInterval(10*time.Millisecond, func() { seen = append(seen, clock.Now()) })

		clock.Advance(35 * time.Millisecond)
		assert.Equal(t, []time.Duration{
			10 * time.Millisecond,
			20 * time.Millisecond,
			30 * time.Millisecond,
		}, seen)
	})

	t.Run("timer scheduled from a callback waits its own delay", func(t *testing.T) {
		clock := engine.NewClock()

		var at time.Duration
		clock.SetTimeout(10*time.Millisecond, func() {
			clock.SetTimeout(5*time.Millisecond, func() { at = clock.Now() })
		})

		clock.Advance(100 * time.Millisecond)
		assert.Equal(t, 15*time.Millisecond, at)
	})
}

func TestClockAdvanceIgnoresNegative(t *testing.T) {
	clock := engine.NewClock()
	clock.Advance(10 * time.Millisecond)
	clock.Advance(-5 * time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, clock.Now())
}
