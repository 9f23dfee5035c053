package client

import (
	"context"
	"fmt"
	"strings"

	"tackerctl/internal/display"
)

// CancelMode selects how an in-progress operation is cancelled.
type CancelMode string

const (
	// CancelModeGraceful waits for the current step to finish before
	// rolling the operation into FAILED_TEMP.
	CancelModeGraceful CancelMode = "GRACEFUL"
	// CancelModeForceful stops the operation immediately.
	CancelModeForceful CancelMode = "FORCEFUL"
)

// ParseCancelMode accepts a cancel mode in any letter case.
func ParseCancelMode(s string) (CancelMode, error) {
	switch mode := CancelMode(strings.ToUpper(s)); mode {
	case CancelModeGraceful, CancelModeForceful:
		return mode, nil
	}
	return "", fmt.Errorf("invalid cancel mode %q (valid: %s, %s)", s, CancelModeGraceful, CancelModeForceful)
}

// Client is the VNF LCM operation-occurrence API.
//
// Acknowledge-style actions (rollback, retry, cancel) return a nil record
// when the server accepts the request without a body.
type Client interface {
	RollbackVnfInstance(ctx context.Context, occID string) (display.Record, error)
	FailVnfInstance(ctx context.Context, occID string) (display.Record, error)
	RetryVnfInstance(ctx context.Context, occID string) (display.Record, error)
	CancelVnfInstance(ctx context.Context, occID string, mode CancelMode) (display.Record, error)
	ShowOpOcc(ctx context.Context, occID string) (display.Record, error)
	ListOpOccs(ctx context.Context, filter string) ([]display.Record, error)
}
