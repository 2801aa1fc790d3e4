package internal

import (
	"context"

	ihttp "github.com/nullship/httpc/internal/http"
)

// ClientTrace is re-exported from internal/http so the dialer and
// transport packages, which internal itself depends on, can fire hooks
// through the same context key without importing this package (that
// would be a cycle).
type ClientTrace = ihttp.ClientTrace

// WithClientTrace attaches t to ctx. A context can carry only one trace;
// attaching a second one replaces the first.
func WithClientTrace(ctx context.Context, t *ClientTrace) context.Context {
	return ihttp.WithClientTrace(ctx, t)
}

// traceFromContext returns the trace attached to ctx, or a zero-value
// trace (every hook nil) if none was attached, so callers can invoke
// hooks unconditionally.
func traceFromContext(ctx context.Context) *ClientTrace {
	return ihttp.TraceFromContext(ctx)
}
