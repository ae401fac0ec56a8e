package contextutil

import (
	"context"
	"time"
)

// DefaultTimeout is used when no timeout is given
var DefaultTimeout = 30 * time.Second

// PingTimeout bounds the reachability check made when a pool is opened
var PingTimeout = 10 * time.Second

// WithTimeout creates a context with a timeout, falling back to DefaultTimeout
func WithTimeout(ctx context.Context, timeout ...time.Duration) (context.Context, context.CancelFunc) {
	t := DefaultTimeout
	if len(timeout) > 0 && timeout[0] > 0 {
		t = timeout[0]
	}
	return context.WithTimeout(ctx, t)
}

// WithPingTimeout creates a context bounded by PingTimeout
func WithPingTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return WithTimeout(ctx, PingTimeout)
}
