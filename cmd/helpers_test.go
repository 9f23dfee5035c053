package cmd

import (
	"bytes"
	"strings"
	"testing"

	"tackerctl/internal/cli"
	"tackerctl/internal/client/fake"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const testEndpoint = "http://tacker.test:9890"

type commandResult struct {
	stdout string
	stderr string
	err    error
}

// runCommand executes the root command with args against fc.
func runCommand(t *testing.T, fc *fake.Client, args ...string) commandResult {
	t.Helper()

	origExecutor := newExecutor
	newExecutor = func(cmd *cobra.Command, flags *cli.CommandFlags) (*cli.Executor, error) {
		options, err := flags.ToExecutorOptions()
		if err != nil {
			return nil, err
		}
		options.Out = cmd.OutOrStdout()
		options.ErrOut = cmd.ErrOrStderr()
		return cli.NewExecutorWithClient(fc, testEndpoint, options), nil
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		newExecutor = origExecutor
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return commandResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// resetFlags restores every flag to its default so package-level commands
// can be executed repeatedly.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// fieldLabels returns the Field column of a rendered Field/Value table,
// skipping the header, borders and continuation lines of multi-line values.
func fieldLabels(output string) []string {
	var labels []string
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		cells := strings.Split(line, "|")
		if len(cells) < 3 {
			continue
		}
		label := strings.TrimSpace(cells[1])
		if label == "" || label == "Field" {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}
