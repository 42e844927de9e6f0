// Package middleware provides built-in middleware implementations for the
// model façade. Each middleware is constructed via a New* function that
// returns a [model.Middleware] ready to be passed in [model.Config].
//
// # Available Middleware
//
//   - [NewRetryMiddleware]: Retries failed adapter calls with exponential
//     backoff and jitter. Useful for transient HTTP 429 / 5xx errors.
//
//   - [NewTimeoutMiddleware]: Adds a per-request deadline via
//     context.WithTimeout, ensuring that a stalled provider call does not
//     block the caller indefinitely.
//
//   - [NewLoggingMiddleware]: Emits structured slog log entries before and
//     after every adapter call, with three verbosity levels (Minimal,
//     Standard, Verbose).
//
// # Usage
//
//	m, err := model.New(model.Config{
//	    Provider: model.ProviderOpenAI,
//	    Middlewares: []model.Middleware{
//	        middleware.NewTimeoutMiddleware(30 * time.Second),
//	        middleware.NewRetryMiddleware(middleware.RetryConfig{MaxRetries: 3}),
//	        middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard),
//	    },
//	})
//
// Middlewares execute outermost-first: the first entry is the outermost
// wrapper, meaning it runs first on the way in and last on the way out. In
// the example above, a request travels Timeout, then Retry, then Logging,
// then the adapter, and the response travels back in reverse.
package middleware
