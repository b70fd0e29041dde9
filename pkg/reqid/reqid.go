// Package reqid provides request ID generation and context propagation for
// outgoing API calls.
//
// A unique ID is generated for every call to the POS service, forwarded via
// the X-Request-ID header, and included in every structured log line via
// logger.WithCtx(ctx), so one counter interaction can be traced end to end
// through the service's logs.
//
// Reading inside client code:
//
//	ctx, id := reqid.Ensure(ctx)
//	req.Header(reqid.Header, id)
package reqid

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// ctxKey is the unexported key used to store the request ID in context.
type ctxKey struct{}

// Header is the HTTP header name used to propagate the request ID.
const Header = "X-Request-ID"

// New generates a cryptographically random 16-byte (32 hex char) request ID.
func New() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// WithValue stores id in ctx and returns the new context.
func WithValue(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromCtx extracts the request ID from ctx.
// Returns an empty string if none is present.
func FromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// Ensure returns ctx carrying a request ID, reusing one already present
// (so a multi-call flow like settlement shares a single ID) or generating
// a fresh one.
func Ensure(ctx context.Context) (context.Context, string) {
	if id := FromCtx(ctx); id != "" {
		return ctx, id
	}
	id := New()
	return WithValue(ctx, id), id
}
