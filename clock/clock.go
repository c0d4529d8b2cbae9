// Package clock implements the wall-clock pacing loop that throttles CPU
// execution to a configured virtual frequency. It is the only component
// that observes real time; the CPU itself is purely synchronous.
package clock

import (
	"context"
	"time"
)

// Stepper is the minimal interface the clock needs: something that
// advances one instruction and reports how many cycles it took.
// *cpu.CPU satisfies this directly.
type Stepper interface {
	Step() (int, error)
}

// Clock paces calls to a Stepper so that its reported cycles track a
// target MHz over wall-clock time.
type Clock struct {
	stepper Stepper
	stepChunk int

	nanoPerCycle    time.Duration
	prevCycleTime   time.Time
	lastCycleCount  int64
}

// New creates a Clock driving stepper at mhz (millions of cycles per
// second). stepChunk bounds how many pacing comparisons each Step call
// performs; Run checks its context for cancellation between Step calls.
// The pacing loop busy-polls and never sleeps.
func New(stepper Stepper, mhz float64, stepChunk int) *Clock {
	return &Clock{
		stepper:        stepper,
		stepChunk:      stepChunk,
		nanoPerCycle:   time.Duration(float64(time.Microsecond) / mhz),
		prevCycleTime:  time.Now(),
		lastCycleCount: 1,
	}
}

// Step runs one pacing pass of up to stepChunk iterations, calling the
// stepper whenever enough wall time has elapsed since the last call. It
// returns the error from the stepper, if any, which callers use to detect
// a halted CPU.
func (c *Clock) Step() error {
	for i := 0; i < c.stepChunk; i++ {
		elapsed := time.Since(c.prevCycleTime)
		if elapsed > c.nanoPerCycle*time.Duration(c.lastCycleCount) {
			c.prevCycleTime = time.Now()
			cycles, err := c.stepper.Step()
			if err != nil {
				return err
			}
			c.lastCycleCount = int64(cycles)
		}
	}
	return nil
}

// Run repeatedly calls Step until ctx is canceled or the stepper returns
// an error (e.g. the CPU halted on a KIL/JAM opcode).
func (c *Clock) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := c.Step(); err != nil {
			return err
		}
	}
}
