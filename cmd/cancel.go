package cmd

import (
	"context"

	"tackerctl/internal/client"
	"tackerctl/internal/display"

	"github.com/spf13/cobra"
)

var cancelMode client.CancelMode

var cancelCmd = newOpOccCommand(opOccAction{
	use:   "cancel",
	short: "Cancel a VNF LCM operation occurrence",
	long: `Cancel a VNF lifecycle management operation that is STARTING, PROCESSING
or ROLLING_BACK.

FORCEFUL stops the operation at once. GRACEFUL lets the current step finish
and then moves the operation to FAILED_TEMP.

Examples:
  tackerctl cancel 6978d7c3-6a47-4ba4-8c28-4e4b4e8a42c3
  tackerctl cancel 6978d7c3-6a47-4ba4-8c28-4e4b4e8a42c3 --cancel-mode GRACEFUL`,
	verb:     "Cancel",
	activity: "Requesting cancellation",
	result:   acknowledge,
	call: func(ctx context.Context, c client.Client, occID string) (display.Record, error) {
		return c.CancelVnfInstance(ctx, occID, cancelMode)
	},
}, func(cmd *cobra.Command) func() error {
	var raw string
	cmd.Flags().StringVar(&raw, "cancel-mode", string(client.CancelModeForceful), "Cancellation mode (GRACEFUL, FORCEFUL)")
	_ = cmd.RegisterFlagCompletionFunc("cancel-mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(client.CancelModeGraceful), string(client.CancelModeForceful)}, cobra.ShellCompDirectiveNoFileComp
	})
	return func() error {
		mode, err := client.ParseCancelMode(raw)
		if err != nil {
			return err
		}
		cancelMode = mode
		return nil
	}
})

func init() {
	rootCmd.AddCommand(cancelCmd)
}
