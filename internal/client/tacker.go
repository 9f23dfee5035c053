package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tackerctl/internal/config"
	"tackerctl/internal/display"
	"tackerctl/pkg/logging"
)

const opOccsPath = "vnflcm/v1/vnf_lcm_op_occs"

// maxListPages bounds Link-header pagination so a misbehaving server cannot
// keep the CLI looping forever.
const maxListPages = 100

// Options configures a TackerClient.
type Options struct {
	// Endpoint is the API base URL, e.g. http://localhost:9890.
	Endpoint string
	Token    string
	// AuthType selects how Token is presented; keystone when empty.
	AuthType config.AuthType
	// Timeout bounds each HTTP request. Zero means no client-side timeout.
	Timeout            time.Duration
	InsecureSkipVerify bool
	UserAgent          string
	// Transport overrides the base round tripper, mainly for tests.
	Transport http.RoundTripper
}

// TackerClient is the HTTP implementation of Client.
type TackerClient struct {
	baseURL   *url.URL
	userAgent string
	http      *http.Client
}

var _ Client = (*TackerClient)(nil)

// New validates opts and builds a client.
func New(opts Options) (*TackerClient, error) {
	raw := strings.TrimSpace(opts.Endpoint)
	if raw == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", opts.Endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("endpoint must include scheme and host (got %q)", opts.Endpoint)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawPath = ""
	u.RawQuery = ""

	base := opts.Transport
	if base == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		if opts.InsecureSkipVerify {
			t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via config
		}
		base = t
	}

	return &TackerClient{
		baseURL:   u,
		userAgent: opts.UserAgent,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: &requestIDTransport{base: authTransport(base, opts.AuthType, opts.Token)},
		},
	}, nil
}

// RollbackVnfInstance requests rollback of a FAILED_TEMP operation.
func (c *TackerClient) RollbackVnfInstance(ctx context.Context, occID string) (display.Record, error) {
	return c.action(ctx, occID, "rollback", nil)
}

// FailVnfInstance marks a FAILED_TEMP operation as FAILED and returns the
// updated occurrence.
func (c *TackerClient) FailVnfInstance(ctx context.Context, occID string) (display.Record, error) {
	return c.action(ctx, occID, "fail", nil)
}

// RetryVnfInstance re-runs a FAILED_TEMP operation.
func (c *TackerClient) RetryVnfInstance(ctx context.Context, occID string) (display.Record, error) {
	return c.action(ctx, occID, "retry", nil)
}

// CancelVnfInstance cancels a STARTING, PROCESSING or ROLLING_BACK operation.
func (c *TackerClient) CancelVnfInstance(ctx context.Context, occID string, mode CancelMode) (display.Record, error) {
	return c.action(ctx, occID, "cancel", map[string]string{"cancelMode": string(mode)})
}

// ShowOpOcc fetches a single operation occurrence.
func (c *TackerClient) ShowOpOcc(ctx context.Context, occID string) (display.Record, error) {
	resp, err := c.do(ctx, http.MethodGet, c.resolve(opOccsPath, url.PathEscape(occID)), nil)
	if err != nil {
		return nil, err
	}
	return display.DecodeRecord(resp.data)
}

// ListOpOccs lists operation occurrences, following rel="next" links until
// the server stops returning them. filter is passed through unchanged as the
// SOL013 attribute-based filter.
func (c *TackerClient) ListOpOccs(ctx context.Context, filter string) ([]display.Record, error) {
	next := c.resolve(opOccsPath)
	if filter != "" {
		next.RawQuery = url.Values{"filter": []string{filter}}.Encode()
	}

	var all []display.Record
	for page := 0; next != nil; page++ {
		if page == maxListPages {
			return nil, fmt.Errorf("listing stopped after %d pages", maxListPages)
		}

		resp, err := c.do(ctx, http.MethodGet, next, nil)
		if err != nil {
			return nil, err
		}
		records, err := display.DecodeRecords(resp.data)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)

		next, err = nextPage(next, resp.header)
		if err != nil {
			return nil, err
		}
	}
	if all == nil {
		all = []display.Record{}
	}
	return all, nil
}

func (c *TackerClient) action(ctx context.Context, occID, action string, payload interface{}) (display.Record, error) {
	u := c.resolve(opOccsPath, url.PathEscape(occID), action)
	resp, err := c.do(ctx, http.MethodPost, u, payload)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(resp.data)) == 0 {
		return nil, nil
	}
	return display.DecodeRecord(resp.data)
}

// resolve joins already-escaped path elements onto the endpoint.
func (c *TackerClient) resolve(elem ...string) *url.URL {
	return c.baseURL.JoinPath(elem...)
}

type response struct {
	data   []byte
	header http.Header
}

func (c *TackerClient) do(ctx context.Context, method string, u *url.URL, payload interface{}) (*response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	requestID := newRequestID()
	req, err := http.NewRequestWithContext(withRequestID(ctx, requestID), method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logging.Debug("Client", "%s %s failed after %s (request %s): %v", method, u, time.Since(start), requestID, err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	logging.Debug("Client", "%s %s -> %d in %s (request %s)", method, u, resp.StatusCode, time.Since(start), requestID)

	if resp.StatusCode/100 != 2 {
		return nil, newAPIError(resp, data, requestID)
	}
	return &response{data: data, header: resp.Header}, nil
}
