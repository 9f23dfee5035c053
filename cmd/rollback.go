package cmd

import (
	"context"

	"tackerctl/internal/client"
	"tackerctl/internal/display"
)

var rollbackCmd = newOpOccCommand(opOccAction{
	use:   "rollback",
	short: "Rollback a VNF LCM operation occurrence",
	long: `Request rollback of a VNF lifecycle management operation that ended in
FAILED_TEMP. The NFVO answers asynchronously; poll the occurrence with
'tackerctl show' to follow progress.

Examples:
  tackerctl rollback 6978d7c3-6a47-4ba4-8c28-4e4b4e8a42c3`,
	verb:     "Rollback",
	activity: "Requesting rollback",
	result:   acknowledge,
	call: func(ctx context.Context, c client.Client, occID string) (display.Record, error) {
		return c.RollbackVnfInstance(ctx, occID)
	},
}, nil)

func init() {
	rootCmd.AddCommand(rollbackCmd)
}
