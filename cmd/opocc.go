package cmd

import (
	"context"
	"fmt"

	"tackerctl/internal/cli"
	"tackerctl/internal/client"
	"tackerctl/internal/display"

	"github.com/spf13/cobra"
)

// newExecutor builds the executor for a command. Tests replace it to inject
// a fake client.
var newExecutor = func(cmd *cobra.Command, flags *cli.CommandFlags) (*cli.Executor, error) {
	options, err := flags.ToExecutorOptions()
	if err != nil {
		return nil, err
	}
	options.UserAgent = userAgent()
	options.Out = cmd.OutOrStdout()
	options.ErrOut = cmd.ErrOrStderr()
	return cli.NewExecutor(options)
}

// opOccResult decides what to print once the server has answered.
type opOccResult int

const (
	// acknowledge prints an acceptance notice when the server returns no
	// body, and renders the body otherwise.
	acknowledge opOccResult = iota
	// render always renders the returned occurrence.
	render
)

// opOccAction is one operation on a single LCM operation occurrence.
type opOccAction struct {
	use      string
	short    string
	long     string
	verb     string // leading word of the acceptance notice
	activity string // spinner text
	result   opOccResult
	call     func(ctx context.Context, c client.Client, occID string) (display.Record, error)
}

// newOpOccCommand builds a command taking a single <vnf-lcm-op-occ-id>.
// extraFlags may register command-specific flags and returns a hook that
// validates them before the call is made.
func newOpOccCommand(action opOccAction, extraFlags func(*cobra.Command) func() error) *cobra.Command {
	var flags cli.CommandFlags
	var validate func() error

	cmd := &cobra.Command{
		Use:   action.use + " <vnf-lcm-op-occ-id>",
		Short: action.short,
		Long:  action.long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if validate != nil {
				if err := validate(); err != nil {
					return err
				}
			}
			return runOpOcc(cmd, &flags, action, args[0])
		},
	}
	cli.RegisterCommonFlags(cmd, &flags)
	if extraFlags != nil {
		validate = extraFlags(cmd)
	}
	return cmd
}

func runOpOcc(cmd *cobra.Command, flags *cli.CommandFlags, action opOccAction, occID string) error {
	executor, err := newExecutor(cmd, flags)
	if err != nil {
		return err
	}

	var record display.Record
	err = executor.Do(cmd.Context(), action.activity, func(ctx context.Context, c client.Client) error {
		var err error
		record, err = action.call(ctx, c, occID)
		return err
	})
	if err != nil {
		return err
	}

	if len(record) == 0 {
		if action.result == acknowledge {
			executor.Acknowledge(action.verb, occID)
			return nil
		}
		return fmt.Errorf("server returned an empty response for LCM operation %s", occID)
	}
	return executor.RenderRecord(record, display.OpOccView())
}
