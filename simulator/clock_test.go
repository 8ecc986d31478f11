package simulator

import (
	"testing"
	"time"
	"trafficsim/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedClockSteps(t *testing.T) {
	start := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	clock := NewSimulatedClock(start, 250*time.Millisecond)

	assert.Equal(t, start.UnixMilli(), clock.Now())
	assert.Equal(t, start.UnixMilli()+250, clock.Now())
	assert.Equal(t, start.UnixMilli()+500, clock.Now())
}

func TestNewClock(t *testing.T) {
	clock, err := NewClock(utils.SimulatorConfig{})
	require.NoError(t, err)
	assert.IsType(t, RealtimeClock{}, clock)

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	clock, err = NewClock(utils.SimulatorConfig{Clock: "Simulated", ClockStart: start})
	require.NoError(t, err)
	assert.Equal(t, start.UnixMilli(), clock.Now())
	assert.Equal(t, start.UnixMilli()+utils.DefaultClockStepMillis, clock.Now())

	_, err = NewClock(utils.SimulatorConfig{Clock: "sundial"})
	assert.ErrorIs(t, err, ErrUnknownClock)
}

func TestRealtimeClock(t *testing.T) {
	before := time.Now().UnixMilli()
	now := RealtimeClock{}.Now()

	assert.GreaterOrEqual(t, now, before)
	assert.LessOrEqual(t, now, time.Now().UnixMilli())
}
