package async

import (
	"context"

	"github.com/prato-lab/prato/pkg/utils/logging"
)

// Dispatch executes a handler function asynchronously in a new goroutine.
// It creates a background context (so the work outlives the HTTP request)
// and handles errors and panics.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	// Preserve the logger but detach from the request lifecycle
	bgCtx := context.Background()
	if logger := logging.From(ctx); logger != nil {
		bgCtx = logging.With(bgCtx, logger)
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger := logging.From(bgCtx)
				logger.Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logger := logging.From(bgCtx)
			logger.Error("async handler failed", "error", err)
		}
	}()
}
