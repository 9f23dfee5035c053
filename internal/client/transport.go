package client

import (
	"context"
	"net/http"

	"tackerctl/internal/config"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	authTokenHeader = "X-Auth-Token"
	requestIDHeader = "X-Openstack-Request-Id"
)

type requestIDKey struct{}

// newRequestID returns a correlation ID in the form the OpenStack services
// log, e.g. req-0b8f6c3e-....
func newRequestID() string {
	return "req-" + uuid.NewString()
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// requestIDTransport stamps the request ID stored in the request context.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id, _ := req.Context().Value(requestIDKey{}).(string)
	if id == "" {
		return t.base.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.Header.Set(requestIDHeader, id)
	return t.base.RoundTrip(req)
}

// keystoneTransport sends a Keystone token in X-Auth-Token.
type keystoneTransport struct {
	token string
	base  http.RoundTripper
}

func (t *keystoneTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(authTokenHeader, t.token)
	return t.base.RoundTrip(req)
}

// authTransport wraps base with the credentials selected by authType.
// An empty token leaves requests unauthenticated.
func authTransport(base http.RoundTripper, authType config.AuthType, token string) http.RoundTripper {
	if token == "" {
		return base
	}
	if authType == config.AuthTypeBearer {
		return &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   base,
		}
	}
	return &keystoneTransport{token: token, base: base}
}
