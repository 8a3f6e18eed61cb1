package core

import (
	"context"
	"time"
)

// Loop runs a step function at a fixed tick rate, decoupled from how often
// it is fed time.
type Loop struct {
	step       func()
	tickRate   int
	maxCatchUp int
	acc        time.Duration
}

// NewLoop builds a loop calling step tickRate times per second. At most
// maxCatchUp ticks run per Advance; time beyond that is dropped.
func NewLoop(step func(), tickRate, maxCatchUp int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxCatchUp <= 0 {
		maxCatchUp = 1
	}
	return &Loop{
		step:       step,
		tickRate:   tickRate,
		maxCatchUp: maxCatchUp,
	}
}

// Interval is the duration of one tick.
func (l *Loop) Interval() time.Duration {
	return time.Second / time.Duration(l.tickRate)
}

// Advance adds elapsed wall time and runs every whole tick it covers. It
// returns the number of ticks run.
func (l *Loop) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	l.acc += elapsed
	interval := l.Interval()

	ticks := 0
	for l.acc >= interval && ticks < l.maxCatchUp {
		l.step()
		l.acc -= interval
		ticks++
	}
	if ticks == l.maxCatchUp && l.acc >= interval {
		l.acc = 0
	}
	return ticks
}

// Run ticks in real time until ctx is done or ticks reaches limit (0 means
// no limit).
func (l *Loop) Run(ctx context.Context, limit int) error {
	ticker := time.NewTicker(l.Interval())
	defer ticker.Stop()

	for n := 0; limit == 0 || n < limit; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.step()
		}
	}
	return nil
}
