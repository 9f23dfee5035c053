package cmd

import (
	"context"

	"tackerctl/internal/client"
	"tackerctl/internal/display"
)

var showCmd = newOpOccCommand(opOccAction{
	use:   "show",
	short: "Display a VNF LCM operation occurrence",
	long: `Display the details of a VNF lifecycle management operation occurrence.

Examples:
  tackerctl show 6978d7c3-6a47-4ba4-8c28-4e4b4e8a42c3
  tackerctl show 6978d7c3-6a47-4ba4-8c28-4e4b4e8a42c3 -o yaml`,
	verb:     "Show",
	activity: "Fetching operation",
	result:   render,
	call: func(ctx context.Context, c client.Client, occID string) (display.Record, error) {
		return c.ShowOpOcc(ctx, occID)
	},
}, nil)

func init() {
	rootCmd.AddCommand(showCmd)
}
