package middleware

import (
	"context"
	"time"

	"github.com/synapticlabs/synaptic/core/memory"
	"github.com/synapticlabs/synaptic/core/model"
	"github.com/synapticlabs/synaptic/providers/ai"
)

// NewTimeoutMiddleware creates a middleware that enforces a per-request
// deadline on adapter calls via context.WithTimeout.
//
// If the caller supplies a context that already has a shorter deadline, that
// shorter deadline wins as per normal context semantics.
func NewTimeoutMiddleware(timeout time.Duration) model.Middleware {
	return func(next model.InvokeFunc) model.InvokeFunc {
		return func(ctx context.Context, request ai.Request) (*memory.ResponseMem, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, request)
		}
	}
}
