package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"tackerctl/internal/cli"
	"tackerctl/internal/config"
	tackerctx "tackerctl/internal/context"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newContextStorage opens contexts.yaml. Tests point it at a temp dir.
var newContextStorage = tackerctx.NewStorage

var (
	contextQuiet            bool
	contextNoHeaders        bool
	contextAddEndpoint      string
	contextAddOutput        string
	contextAddInsecure      bool
	contextAddSetCurrent    bool
	contextDeleteForce      bool
	contextShowOutputFormat string
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Manage tackerctl contexts",
	Long: `Manage named contexts for different Tacker API endpoints.

A context saves an endpoint under a short name so that commands can be
pointed at a lab or production NFVO without --endpoint.

Examples:
  tackerctl context                                        # List all contexts
  tackerctl context add lab --endpoint http://10.0.0.5:9890 --use
  tackerctl context use production
  tackerctl context current
  tackerctl context show lab -o yaml
  tackerctl context delete lab --force

Contexts are stored in ~/.config/tackerctl/contexts.yaml.

Precedence (highest to lowest):
  1. --endpoint flag
  2. --context flag
  3. TACKER_CONTEXT environment variable
  4. current-context from contexts.yaml
  5. endpoint from config.yaml, or TACKER_ENDPOINT when set`,
	Args: cobra.NoArgs,
	RunE: runContextList,
}

var contextListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all contexts",
	Long:    `List all configured contexts. The current context is marked with an asterisk (*).`,
	Args:    cobra.NoArgs,
	RunE:    runContextList,
}

var contextCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show current context name",
	Long:  `Print the name of the current context. Prints nothing when none is set.`,
	Args:  cobra.NoArgs,
	RunE:  runContextCurrent,
}

var contextUseCmd = &cobra.Command{
	Use:               "use <name>",
	Aliases:           []string{"switch"},
	Short:             "Switch to a different context",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeContextNames,
	RunE:              runContextUse,
}

var contextAddCmd = &cobra.Command{
	Use:   "add <name> --endpoint <url>",
	Short: "Add a new context",
	Long: `Add a named context pointing to a Tacker API endpoint.

Context names must:
  - Be between 1 and 63 characters
  - Contain only lowercase letters, numbers, and hyphens
  - Start and end with an alphanumeric character`,
	Args: cobra.ExactArgs(1),
	RunE: runContextAdd,
}

var contextDeleteCmd = &cobra.Command{
	Use:               "delete <name>",
	Aliases:           []string{"rm", "remove"},
	Short:             "Delete a context",
	Long:              `Remove a context. Asks for confirmation unless --force is given.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeContextNames,
	RunE:              runContextDelete,
}

var contextShowCmd = &cobra.Command{
	Use:               "show <name>",
	Aliases:           []string{"describe", "get"},
	Short:             "Show context details",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeContextNames,
	RunE:              runContextShow,
}

func init() {
	rootCmd.AddCommand(contextCmd)
	contextCmd.AddCommand(contextListCmd, contextCurrentCmd, contextUseCmd, contextAddCmd, contextDeleteCmd, contextShowCmd)

	contextCmd.PersistentFlags().BoolVarP(&contextQuiet, "quiet", "q", false, "Suppress non-essential output")

	contextAddCmd.Flags().StringVar(&contextAddEndpoint, "endpoint", "", "Tacker API endpoint URL (required)")
	contextAddCmd.Flags().StringVarP(&contextAddOutput, "output", "o", "", "Default output format for this context (table, json, yaml)")
	contextAddCmd.Flags().BoolVar(&contextAddInsecure, "insecure-skip-verify", false, "Skip TLS certificate verification for this endpoint")
	contextAddCmd.Flags().BoolVar(&contextAddSetCurrent, "use", false, "Set as current context after adding")
	_ = contextAddCmd.MarkFlagRequired("endpoint")

	contextCmd.Flags().BoolVar(&contextNoHeaders, "no-headers", false, "Suppress the header row")
	contextListCmd.Flags().BoolVar(&contextNoHeaders, "no-headers", false, "Suppress the header row")

	contextDeleteCmd.Flags().BoolVarP(&contextDeleteForce, "force", "f", false, "Skip confirmation prompt")

	contextShowCmd.Flags().StringVarP(&contextShowOutputFormat, "output", "o", "text", "Output format (text, json, yaml)")
}

func completeContextNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	storage, err := newContextStorage()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, _ := storage.GetContextNames()
	return names, cobra.ShellCompDirectiveNoFileComp
}

func openContextStorage() (*tackerctx.Storage, error) {
	storage, err := newContextStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context storage: %w", err)
	}
	return storage, nil
}

func runContextList(cmd *cobra.Command, args []string) error {
	storage, err := openContextStorage()
	if err != nil {
		return err
	}

	contexts, err := storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load contexts: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(contexts.Contexts) == 0 {
		if !contextQuiet {
			fmt.Fprintln(out, "No contexts configured yet.")
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, "Add one with:")
			fmt.Fprintln(out, "  tackerctl context add lab --endpoint http://localhost:9890 --use")
		}
		return nil
	}

	tw := cli.NewPlainTableWriter(out, "current", "name", "endpoint")
	tw.SetNoHeaders(contextNoHeaders)
	for _, ctx := range contexts.Contexts {
		current := ""
		if ctx.Name == contexts.CurrentContext {
			current = "*"
		}
		tw.AppendRow(current, ctx.Name, ctx.Endpoint)
	}
	tw.Render()
	return nil
}

func runContextCurrent(cmd *cobra.Command, args []string) error {
	storage, err := openContextStorage()
	if err != nil {
		return err
	}

	name, err := storage.GetCurrentContextName()
	if err != nil {
		return fmt.Errorf("failed to get current context: %w", err)
	}
	if name != "" {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runContextUse(cmd *cobra.Command, args []string) error {
	name := args[0]

	storage, err := openContextStorage()
	if err != nil {
		return err
	}

	if err := storage.SetCurrentContext(name); err != nil {
		var notFoundErr *tackerctx.ContextNotFoundError
		if errors.As(err, &notFoundErr) {
			return fmt.Errorf("%w. Use 'tackerctl context list' to see available contexts", err)
		}
		return fmt.Errorf("failed to set current context: %w", err)
	}

	if !contextQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Switched to context %q", name)))
	}
	return nil
}

func runContextAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := config.ValidateEndpoint(contextAddEndpoint); err != nil {
		return err
	}
	var settings *tackerctx.ContextSettings
	if contextAddOutput != "" || contextAddInsecure {
		if contextAddOutput != "" {
			if err := cli.ValidateOutputFormat(contextAddOutput); err != nil {
				return err
			}
		}
		settings = &tackerctx.ContextSettings{Output: contextAddOutput, InsecureSkipVerify: contextAddInsecure}
	}

	storage, err := openContextStorage()
	if err != nil {
		return err
	}

	if err := storage.AddContext(name, contextAddEndpoint, settings); err != nil {
		return fmt.Errorf("failed to add context: %w", err)
	}

	out := cmd.OutOrStdout()
	if !contextQuiet {
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Context %q added", name)))
	}

	if contextAddSetCurrent {
		if err := storage.SetCurrentContext(name); err != nil {
			return fmt.Errorf("failed to set current context: %w", err)
		}
		if !contextQuiet {
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Switched to context %q", name)))
		}
	} else if !contextQuiet {
		if current, _ := storage.GetCurrentContextName(); current == "" {
			fmt.Fprintf(out, "\nTo use this context, run:\n  tackerctl context use %s\n", name)
		}
	}
	return nil
}

func runContextDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	storage, err := openContextStorage()
	if err != nil {
		return err
	}

	ctx, err := storage.GetContext(name)
	if err != nil {
		return fmt.Errorf("failed to check context: %w", err)
	}
	if ctx == nil {
		return &tackerctx.ContextNotFoundError{Name: name}
	}

	out := cmd.OutOrStdout()
	current, _ := storage.GetCurrentContextName()
	wasCurrent := current == name

	if !contextDeleteForce {
		prompt := fmt.Sprintf("Delete context %q?", name)
		if wasCurrent {
			prompt = fmt.Sprintf("Delete context %q (current context)?", name)
		}
		if !confirmAction(cmd.InOrStdin(), out, prompt) {
			if !contextQuiet {
				fmt.Fprintln(out, "Aborted.")
			}
			return nil
		}
	}

	if err := storage.DeleteContext(name); err != nil {
		return fmt.Errorf("failed to delete context: %w", err)
	}

	if !contextQuiet {
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Context %q deleted", name)))
		if wasCurrent {
			fmt.Fprintln(out, cli.FormatWarning("No current context is set now."))
		}
	}
	return nil
}

func runContextShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	storage, err := openContextStorage()
	if err != nil {
		return err
	}

	ctx, err := storage.GetContext(name)
	if err != nil {
		return fmt.Errorf("failed to load context: %w", err)
	}
	if ctx == nil {
		return &tackerctx.ContextNotFoundError{Name: name}
	}
	current, _ := storage.GetCurrentContextName()

	out := cmd.OutOrStdout()
	switch contextShowOutputFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ctx)
	case "yaml":
		return yaml.NewEncoder(out).Encode(ctx)
	case "text":
		fmt.Fprintf(out, "Name:      %s\n", ctx.Name)
		fmt.Fprintf(out, "Endpoint:  %s\n", ctx.Endpoint)
		fmt.Fprintf(out, "Current:   %t\n", ctx.Name == current)
		if ctx.Settings != nil {
			if ctx.Settings.Output != "" {
				fmt.Fprintf(out, "Output:    %s\n", ctx.Settings.Output)
			}
			if ctx.Settings.InsecureSkipVerify {
				fmt.Fprintln(out, "Insecure:  true")
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q (valid: text, json, yaml)", contextShowOutputFormat)
	}
}

// confirmAction asks a yes/no question on out and reads the answer from in.
func confirmAction(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
