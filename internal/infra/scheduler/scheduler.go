package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// Interval paces the sequential poll loop. Unlike a cron engine it runs no
// goroutines: the caller blocks in Wait until the next activation.
type Interval struct {
	period   time.Duration
	schedule cron.Schedule
}

// NewInterval returns an Interval firing every period. Periods are rounded
// down to whole seconds, with a minimum of one second.
func NewInterval(period time.Duration) *Interval {
	return &Interval{
		period:   period,
		schedule: cron.Every(period),
	}
}

func (i *Interval) Period() time.Duration {
	return i.period
}

// Next returns the activation time following t.
func (i *Interval) Next(t time.Time) time.Time {
	return i.schedule.Next(t)
}

// Wait blocks until the next activation or until ctx is done.
func (i *Interval) Wait(ctx context.Context) error {
	now := time.Now()
	timer := time.NewTimer(i.Next(now).Sub(now))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
