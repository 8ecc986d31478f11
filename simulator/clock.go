package simulator

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"trafficsim/utils"
	"trafficsim/workloads"
)

const (
	ClockRealtime  = "realtime"
	ClockSimulated = "simulated"
)

var ErrUnknownClock = errors.New("unknown clock")

// RealtimeClock returns the wall clock time
type RealtimeClock struct{}

func (RealtimeClock) Now() int64 {
	return time.Now().UnixMilli()
}

// SimulatedClock starts at a given time and moves forward by a fixed step every call,
// so a run can backfill traffic over a past period
type SimulatedClock struct {
	mux  sync.Mutex
	next int64
	step int64
}

func NewSimulatedClock(start time.Time, step time.Duration) *SimulatedClock {
	return &SimulatedClock{
		next: start.UnixMilli(),
		step: step.Milliseconds(),
	}
}

func (c *SimulatedClock) Now() int64 {
	c.mux.Lock()
	defer c.mux.Unlock()

	now := c.next
	c.next += c.step

	return now
}

// Returns the clock described by the configuration
func NewClock(cfg utils.SimulatorConfig) (workloads.Clock, error) {
	switch strings.ToLower(cfg.Clock) {
	case "", ClockRealtime:
		return RealtimeClock{}, nil
	case ClockSimulated:
		start := cfg.ClockStart

		if start.IsZero() {
			start = time.Now()
		}

		step := cfg.ClockStepMillis

		if step <= 0 {
			step = utils.DefaultClockStepMillis
		}

		return NewSimulatedClock(start, time.Duration(step)*time.Millisecond), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClock, cfg.Clock)
	}
}
