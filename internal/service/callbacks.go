package service

import "context"

// ICallbacks is implemented by whatever a Service runs. OnServiceStart sets
// up resources, OnServiceRun blocks until ctx is done or the work fails,
// OnServiceStop unblocks both.
type ICallbacks interface {
	OnServiceStart(ctx context.Context) (err error)
	OnServiceRun(ctx context.Context) (err error)
	OnServiceStop()
}
