package cmd

import (
	"context"

	"tackerctl/internal/cli"
	"tackerctl/internal/client"
	"tackerctl/internal/display"

	"github.com/spf13/cobra"
)

var (
	listFlags  cli.CommandFlags
	listFilter string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List VNF LCM operation occurrences",
	Long: `List VNF lifecycle management operation occurrences.

--filter takes an attribute-based filter expression that is passed to the
NFVO unchanged. Paged responses are followed until the last page.

Examples:
  tackerctl list
  tackerctl list --filter '(eq,operationState,FAILED_TEMP)'
  tackerctl list --filter '(eq,vnfInstanceId,0c3644ff-b207-4a6a-9d3a-d1295cda153a)' -o json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	executor, err := newExecutor(cmd, &listFlags)
	if err != nil {
		return err
	}

	var records []display.Record
	err = executor.Do(cmd.Context(), "Listing operations", func(ctx context.Context, c client.Client) error {
		var err error
		records, err = c.ListOpOccs(ctx, listFilter)
		return err
	})
	if err != nil {
		return err
	}

	if len(records) == 0 && executor.Format() == cli.OutputFormatTable {
		if !listFlags.Quiet {
			executor.Println("No LCM operation occurrences found.")
		}
		return nil
	}
	return executor.RenderRecords(records, display.OpOccListView())
}

func init() {
	rootCmd.AddCommand(listCmd)
	cli.RegisterCommonFlags(listCmd, &listFlags)
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Attribute-based filter, e.g. (eq,operationState,FAILED_TEMP)")
}
