package async

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/utils/logging"
)

// Dispatch executes a handler function asynchronously in a new goroutine.
// It detaches from the caller's cancellation but preserves the logger.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Error("async handler failed", "error", goerr.Unwrap(err))
		}
	}()
}

// DispatchAfter schedules a handler to run once the delay has elapsed.
// The handler runs on a detached context; an in-flight handler is never
// cancelled by the caller going away.
func DispatchAfter(ctx context.Context, delay time.Duration, handler func(ctx context.Context) error) {
	Dispatch(ctx, func(ctx context.Context) error {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		<-timer.C
		return handler(ctx)
	})
}
