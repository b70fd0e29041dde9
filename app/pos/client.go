// Package pos is the client for the remote POS service.
//
// Every operation sends exactly one HTTP request and, on success, returns
// the full response body decoded into a models type — the server's answer
// replaces local state wholesale, there is no partial patching and no
// optimistic merge. Failures are classified into APIError kinds (see
// errors.go); none are retried: the terminal shows the message and keeps
// its previous state.
package pos

import (
	"context"
	"time"

	"github.com/shashiranjanraj/barman/config"
	"github.com/shashiranjanraj/barman/pkg/http"
	"github.com/shashiranjanraj/barman/pkg/logger"
	"github.com/shashiranjanraj/barman/pkg/metrics"
	"github.com/shashiranjanraj/barman/pkg/reqid"
)

// Client talks to one POS service. The zero value is not usable; construct
// with New.
type Client struct {
	base    string
	timeout time.Duration
}

// New builds a client from configuration (SERVER_URL, HTTP_TIMEOUT).
func New() *Client {
	return &Client{
		base:    config.ServerURL(),
		timeout: config.HTTPTimeout(),
	}
}

// NewWithBase builds a client against an explicit base URL. Used by tests
// and the --server flag.
func NewWithBase(base string) *Client {
	c := New()
	if base != "" {
		c.base = base
	}
	return c
}

// do sends req once, records metrics, and decodes a 2xx body into dest
// (dest may be nil for fire-and-forget calls). Non-2xx and transport
// failures come back as *APIError.
func (c *Client) do(ctx context.Context, op string, req *http.Request, dest interface{}) error {
	ctx, id := reqid.Ensure(ctx)
	log := logger.L.With("request_id", id, "operation", op)
	ctx = logger.InjectLogger(ctx, log)

	start := time.Now()
	resp, err := req.
		WithContext(ctx).
		Timeout(c.timeout).
		Header(reqid.Header, id).
		Send()
	if err != nil {
		metrics.APIErrors.WithLabelValues(op, string(KindNetwork)).Inc()
		log.Error("pos: request failed", "error", err)
		return networkError(op, err)
	}

	metrics.ObserveAPICall(req.Method(), op, resp.StatusCode, start)

	if !resp.OK() {
		apiErr := statusError(op, resp.StatusCode, resp.Raw)
		metrics.APIErrors.WithLabelValues(op, string(apiErr.Kind)).Inc()
		log.Warn("pos: request rejected", "status", resp.StatusCode, "kind", string(apiErr.Kind))
		return apiErr
	}

	if dest == nil {
		return nil
	}
	if err := resp.JSON(dest); err != nil {
		log.Error("pos: malformed response", "error", err)
		return &APIError{Op: op, Kind: KindRemote, Status: resp.StatusCode,
			Message: "the POS service sent a malformed response", Err: err}
	}

	log.Debug("pos: request ok", "status", resp.StatusCode, "duration", time.Since(start).String())
	return nil
}
