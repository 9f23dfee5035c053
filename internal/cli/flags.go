package cli

import (
	"tackerctl/internal/config"

	"github.com/spf13/cobra"
)

// CommandFlags holds the flag values shared by commands that call the API.
type CommandFlags struct {
	OutputFormat string
	NoHeaders    bool
	Quiet        bool
	MaxWidth     int
	ConfigPath   string
	Endpoint     string
	Context      string
}

// RegisterCommonFlags registers the output and connection flags on cmd.
//
// The registered flags are:
//   - --output/-o: Output format (table, json, yaml); defaults to the context or config setting
//   - --no-headers: Suppress header row in table output
//   - --quiet/-q: Suppress the progress spinner
//   - --max-width: Wrap table values wider than this many characters
//   - --config-path: Configuration directory
//   - --endpoint: Tacker API endpoint URL, overriding any context
//   - --context: Use a specific context (env: TACKER_CONTEXT)
func RegisterCommonFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.PersistentFlags().StringVarP(&flags.OutputFormat, "output", "o", "", "Output format (table, json, yaml)")
	cmd.PersistentFlags().BoolVar(&flags.NoHeaders, "no-headers", false, "Suppress header row in table output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().IntVar(&flags.MaxWidth, "max-width", 0, "Wrap table values longer than this many characters (0 disables wrapping)")
	RegisterConnectionFlags(cmd, flags)
}

// RegisterConnectionFlags registers only the flags that pick the endpoint.
func RegisterConnectionFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config-path", config.GetDefaultConfigPathOrPanic(), "Configuration directory")
	cmd.PersistentFlags().StringVar(&flags.Endpoint, "endpoint", "", "Tacker API endpoint URL, overriding any context")
	cmd.PersistentFlags().StringVar(&flags.Context, "context", "", "Use a specific context (env: TACKER_CONTEXT)")
}

// ToExecutorOptions converts CommandFlags to ExecutorOptions.
func (f *CommandFlags) ToExecutorOptions() (ExecutorOptions, error) {
	if f.OutputFormat != "" {
		if err := ValidateOutputFormat(f.OutputFormat); err != nil {
			return ExecutorOptions{}, err
		}
	}

	return ExecutorOptions{
		Format:     OutputFormat(f.OutputFormat),
		NoHeaders:  f.NoHeaders,
		Quiet:      f.Quiet,
		MaxWidth:   f.MaxWidth,
		ConfigPath: f.ConfigPath,
		Endpoint:   f.Endpoint,
		Context:    f.Context,
	}, nil
}
