package cli

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o wait" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyConnectionError(t *testing.T) {
	const endpoint = "https://nfvo.example.com:9890"

	tests := []struct {
		name string
		err  error
		want ConnectionErrorType
	}{
		{"x509 unknown authority", &url.Error{Op: "Post", URL: endpoint, Err: x509.UnknownAuthorityError{}}, ConnectionErrorTLS},
		{"tls message", errors.New("tls: handshake failure"), ConnectionErrorTLS},
		{"dns", &url.Error{Op: "Get", URL: endpoint, Err: &net.DNSError{Err: "no such host", Name: "nfvo.example.com"}}, ConnectionErrorDNS},
		{"net timeout", &url.Error{Op: "Get", URL: endpoint, Err: timeoutErr{}}, ConnectionErrorTimeout},
		{"deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), ConnectionErrorTimeout},
		{"refused", errors.New("dial tcp 127.0.0.1:9890: connect: connection refused"), ConnectionErrorNetwork},
		{"unknown", errors.New("something odd"), ConnectionErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connErr := ClassifyConnectionError(tt.err, endpoint)
			require.NotNil(t, connErr)
			assert.Equal(t, tt.want, connErr.Type)
			assert.Equal(t, endpoint, connErr.Endpoint)
			assert.ErrorIs(t, connErr, tt.err)
		})
	}

	assert.Nil(t, ClassifyConnectionError(nil, endpoint))
}

func TestConnectionError_Message(t *testing.T) {
	err := &ConnectionError{
		Endpoint: "http://localhost:9890",
		Type:     ConnectionErrorNetwork,
		Reason:   errors.New("connection refused"),
	}
	assert.Contains(t, err.Error(), "Network error connecting to http://localhost:9890: connection refused")
	assert.Contains(t, err.Error(), "Hint: check that the Tacker API server is running")

	unknown := &ConnectionError{Endpoint: "http://x", Reason: errors.New("odd")}
	assert.Equal(t, "Connection error connecting to http://x: odd", unknown.Error())
}

func TestAuthRequiredError(t *testing.T) {
	inner := errors.New("401 Unauthorized")
	err := &AuthRequiredError{Endpoint: "https://nfvo.example.com", Err: inner}

	assert.Contains(t, err.Error(), "https://nfvo.example.com")
	assert.Contains(t, err.Error(), "TACKER_TOKEN")
	assert.ErrorIs(t, err, inner)
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), &AuthRequiredError{}))
	assert.False(t, err.Is(errors.New("other")))
}
