package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"tackerctl/pkg/textutil"
)

// maxErrorBodyLen bounds the raw response text quoted in an APIError.
const maxErrorBodyLen = 200

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
	RequestID  string
}

func (e *APIError) Error() string {
	title := e.Title
	if title == "" {
		title = http.StatusText(e.StatusCode)
	}

	msg := fmt.Sprintf("tacker API returned %d %s", e.StatusCode, title)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.RequestID != "" {
		msg += fmt.Sprintf(" (request %s)", e.RequestID)
	}
	return msg
}

// StatusCode returns the HTTP status of an *APIError anywhere in err's
// chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// problemDetails is the SOL013 error body.
type problemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

// openstackFault is the legacy error envelope, e.g.
// {"itemNotFound": {"code": 404, "message": "..."}}.
type openstackFault struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(resp *http.Response, body []byte, requestID string) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, RequestID: requestID}

	var pd problemDetails
	if err := json.Unmarshal(body, &pd); err == nil && (pd.Title != "" || pd.Detail != "") {
		apiErr.Title = pd.Title
		apiErr.Detail = pd.Detail
		return apiErr
	}

	var faults map[string]openstackFault
	if err := json.Unmarshal(body, &faults); err == nil && len(faults) == 1 {
		for name, fault := range faults {
			if fault.Message != "" {
				apiErr.Title = name
				apiErr.Detail = fault.Message
				return apiErr
			}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "<") {
		apiErr.Detail = textutil.Truncate(text, maxErrorBodyLen)
	}
	return apiErr
}
