package cmd

import (
	"context"

	"tackerctl/internal/client"
	"tackerctl/internal/display"
)

var retryCmd = newOpOccCommand(opOccAction{
	use:   "retry",
	short: "Retry a VNF LCM operation occurrence",
	long: `Re-run a VNF lifecycle management operation that ended in FAILED_TEMP.

Examples:
  tackerctl retry 6978d7c3-6a47-4ba4-8c28-4e4b4e8a42c3`,
	verb:     "Retry",
	activity: "Requesting retry",
	result:   acknowledge,
	call: func(ctx context.Context, c client.Client, occID string) (display.Record, error) {
		return c.RetryVnfInstance(ctx, occID)
	},
}, nil)

func init() {
	rootCmd.AddCommand(retryCmd)
}
