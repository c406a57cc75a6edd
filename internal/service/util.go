package service

import (
	"context"
	"time"
)

// runWithCancelTimeout runs f in the background. Once canceled, f has
// stopTimeout to return before the process panics.
func runWithCancelTimeout(
	f func(context.Context) error,
	afterF func(wasCanceled bool, err error),
	stopTimeout time.Duration,
) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := f(ctx)
		wasCanceled := false
		select {
		case <-ctx.Done():
			wasCanceled = true
		default:
		}
		afterF(wasCanceled, err)
	}()

	go func() {
		select {
		case <-done:
			return
		case <-ctx.Done():
		}
		timer := time.NewTimer(stopTimeout)
		defer timer.Stop()
		select {
		case <-timer.C:
			panic("service takes > " + stopTimeout.String() + " to stop")
		case <-done:
		}
	}()

	return cancel
}
