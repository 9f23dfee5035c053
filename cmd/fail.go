package cmd

import (
	"context"

	"tackerctl/internal/client"
	"tackerctl/internal/display"
)

var failCmd = newOpOccCommand(opOccAction{
	use:   "fail",
	short: "Fail a VNF LCM operation occurrence",
	long: `Mark a VNF lifecycle management operation in FAILED_TEMP as permanently
FAILED and display the updated occurrence.

Examples:
  tackerctl fail 6978d7c3-6a47-4ba4-8c28-4e4b4e8a42c3
  tackerctl fail 6978d7c3-6a47-4ba4-8c28-4e4b4e8a42c3 -o json`,
	verb:     "Fail",
	activity: "Marking operation as failed",
	result:   render,
	call: func(ctx context.Context, c client.Client, occID string) (display.Record, error) {
		return c.FailVnfInstance(ctx, occID)
	},
}, nil)

func init() {
	rootCmd.AddCommand(failCmd)
}
