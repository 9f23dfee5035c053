// Package fake provides an in-memory client.Client for command tests.
package fake

import (
	"context"
	"sync"

	"tackerctl/internal/client"
	"tackerctl/internal/display"
)

// Call records one client invocation.
type Call struct {
	Method string
	OccID  string
	Mode   client.CancelMode
	Filter string
}

// Client returns canned results. Record and Records are returned by every
// single-resource and list call respectively unless Err is set.
type Client struct {
	Record  display.Record
	Records []display.Record
	Err     error

	mu    sync.Mutex
	calls []Call
}

var _ client.Client = (*Client)(nil)

// Calls returns the recorded invocations in order.
func (c *Client) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

func (c *Client) record(call Call) (display.Record, error) {
	c.mu.Lock()
	c.calls = append(c.calls, call)
	c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Record, nil
}

func (c *Client) RollbackVnfInstance(_ context.Context, occID string) (display.Record, error) {
	return c.record(Call{Method: "rollback", OccID: occID})
}

func (c *Client) FailVnfInstance(_ context.Context, occID string) (display.Record, error) {
	return c.record(Call{Method: "fail", OccID: occID})
}

func (c *Client) RetryVnfInstance(_ context.Context, occID string) (display.Record, error) {
	return c.record(Call{Method: "retry", OccID: occID})
}

func (c *Client) CancelVnfInstance(_ context.Context, occID string, mode client.CancelMode) (display.Record, error) {
	return c.record(Call{Method: "cancel", OccID: occID, Mode: mode})
}

func (c *Client) ShowOpOcc(_ context.Context, occID string) (display.Record, error) {
	return c.record(Call{Method: "show", OccID: occID})
}

func (c *Client) ListOpOccs(_ context.Context, filter string) ([]display.Record, error) {
	if _, err := c.record(Call{Method: "list", Filter: filter}); err != nil {
		return nil, err
	}
	return c.Records, nil
}
