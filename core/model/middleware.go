package model

import (
	"context"

	"github.com/synapticlabs/synaptic/core/memory"
	"github.com/synapticlabs/synaptic/providers/ai"
)

// InvokeFunc sends one request to a provider adapter and returns the
// normalized response. It is the unit threaded through the middleware chain.
type InvokeFunc func(ctx context.Context, request ai.Request) (*memory.ResponseMem, error)

// Middleware intercepts and optionally transforms adapter invocations. Each
// middleware receives the next InvokeFunc in the chain and returns a new one
// wrapping it. Middlewares are applied outermost-first: the first entry in a
// model's configuration is the first to see an outgoing request.
//
// Retry and timeout policy live here, on the adapter side of the boundary:
// the model itself never retries or masks adapter failures.
type Middleware func(next InvokeFunc) InvokeFunc

// buildChain constructs the linear middleware chain over a direct adapter
// call. Middlewares are applied in reverse so that middlewares[0] ends up
// outermost.
func buildChain(adapter ai.Adapter, middlewares []Middleware) InvokeFunc {
	var chain InvokeFunc = func(ctx context.Context, request ai.Request) (*memory.ResponseMem, error) {
		return adapter.Invoke(ctx, request)
	}

	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i](chain)
	}

	return chain
}
