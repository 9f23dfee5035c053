package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"tackerctl/internal/cli"
	"tackerctl/internal/client"
	"tackerctl/internal/client/fake"
	"tackerctl/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "tackerctl", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestSubcommands(t *testing.T) {
	found := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}
	for _, name := range []string{"rollback", "fail", "retry", "cancel", "show", "list", "context", "version"} {
		assert.True(t, found[name], "missing subcommand %s", name)
	}
}

func TestSetVersion(t *testing.T) {
	orig := GetVersion()
	t.Cleanup(func() { SetVersion(orig) })

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", GetVersion())
	assert.Equal(t, "tackerctl/1.2.3-test", userAgent())

	SetVersion("")
	assert.Equal(t, "tackerctl/dev", userAgent())
}

func TestVersionCommand(t *testing.T) {
	orig := GetVersion()
	t.Cleanup(func() { SetVersion(orig) })
	SetVersion("0.4.0")

	res := runCommand(t, &fake.Client{}, "version")
	require.NoError(t, res.err)
	assert.Equal(t, "tackerctl version 0.4.0\n", res.stdout)
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitCodeSuccess},
		{"generic", errors.New("boom"), ExitCodeError},
		{"auth required", &cli.AuthRequiredError{Endpoint: testEndpoint, Err: &client.APIError{StatusCode: 401}}, ExitCodeAuthRequired},
		{"raw 401", &client.APIError{StatusCode: 401}, ExitCodeAuthRequired},
		{"not found", fmt.Errorf("show: %w", &client.APIError{StatusCode: 404}), ExitCodeNotFound},
		{"conflict", &client.APIError{StatusCode: 409}, ExitCodeConflict},
		{"server error", &client.APIError{StatusCode: 500}, ExitCodeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getExitCode(tt.err))
		})
	}
}

func TestInvalidLogFormat(t *testing.T) {
	res := runCommand(t, &fake.Client{}, "version", "--log-format", "xml")
	assert.ErrorContains(t, res.err, "unsupported log format")
}

func TestLogLevelFlag(t *testing.T) {
	res := runCommand(t, &fake.Client{}, "version", "--log-level", "info")
	require.NoError(t, res.err)

	res = runCommand(t, &fake.Client{}, "version", "--log-level", "verbose")
	assert.ErrorContains(t, res.err, `invalid log level "verbose"`)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "Error: boom")

	buf.Reset()
	printError(&buf, fmt.Errorf("loading: %w", &config.ConfigurationError{
		FilePath:    "/home/op/.config/tackerctl/config.yaml",
		ErrorType:   "parse",
		Message:     "yaml: line 2: did not find expected key",
		Suggestions: []string{"check the YAML syntax"},
	}))
	out := buf.String()
	assert.Contains(t, out, "parse error in /home/op/.config/tackerctl/config.yaml")
	assert.Contains(t, out, "Suggestions:")
	assert.Contains(t, out, "  - check the YAML syntax")
}
