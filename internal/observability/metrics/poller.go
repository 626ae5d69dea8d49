package metrics

import (
	"context"
	"time"
)

// PollFunc is the unit of work a poller runs on every tick.
type PollFunc = func(ctx context.Context) error

// RecordPollerDuration wraps f so every run is timed under the given poller
// type, and successful runs move the last success timestamp forward.
func RecordPollerDuration(typ string, f PollFunc) PollFunc {
	return func(ctx context.Context) error {
		startTime := time.Now()
		err := f(ctx)

		status := Success
		if err != nil {
			status = Error
		}
		pollerDurationHistogram.WithLabelValues(typ, status.String()).Observe(time.Since(startTime).Seconds())
		if err == nil {
			pollerLastSuccessGauge.WithLabelValues(typ).Set(float64(time.Now().Unix()))
		}

		return err
	}
}
