package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"tackerctl/internal/client"
	"tackerctl/internal/config"
	tackerctx "tackerctl/internal/context"
	"tackerctl/pkg/logging"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
)

// OutputFormat represents the supported output formats for CLI commands.
type OutputFormat string

const (
	// OutputFormatTable renders Field/Value or list tables.
	OutputFormatTable OutputFormat = "table"
	// OutputFormatJSON prints the API resource as indented JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML prints the API resource as YAML.
	OutputFormatYAML OutputFormat = "yaml"
)

// ValidOutputFormats contains all valid output format values.
var ValidOutputFormats = []OutputFormat{
	OutputFormatTable,
	OutputFormatJSON,
	OutputFormatYAML,
}

// ValidateOutputFormat validates that the given format string is a supported output format.
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q (valid: table, json, yaml)", format)
	}
}

// ExecutorOptions contains configuration options for command execution.
type ExecutorOptions struct {
	// Format is the output format. Empty means the context or config default.
	Format    OutputFormat
	NoHeaders bool
	// Quiet suppresses the spinner and status lines on stderr.
	Quiet bool
	// MaxWidth wraps table values longer than this. Zero disables wrapping.
	MaxWidth   int
	ConfigPath string
	Endpoint   string
	Context    string
	UserAgent  string

	// Out and ErrOut default to os.Stdout and os.Stderr.
	Out    io.Writer
	ErrOut io.Writer
}

// Executor runs API calls for a command and writes their results.
type Executor struct {
	client      client.Client
	options     ExecutorOptions
	endpoint    string
	out         io.Writer
	errOut      io.Writer
	interactive bool
}

// NewExecutor loads configuration, resolves the endpoint and builds an HTTP
// client for it.
func NewExecutor(options ExecutorOptions) (*Executor, error) {
	if options.ConfigPath == "" {
		return nil, fmt.Errorf("Logic error: empty executor ConfigPath")
	}

	cfg, err := config.LoadConfig(options.ConfigPath)
	if err != nil {
		return nil, err
	}

	storage, err := tackerctx.NewStorage()
	if err != nil {
		return nil, err
	}

	endpoint, resolved, err := ResolveEndpointWithStorage(storage, options.Endpoint, options.Context)
	if err != nil {
		return nil, err
	}
	if endpoint == "" {
		endpoint = cfg.Endpoint
	}
	if err := config.ValidateEndpoint(endpoint); err != nil {
		return nil, err
	}

	insecure := cfg.InsecureSkipVerify
	if resolved != nil {
		logging.Info("CLI", "Using context %q", resolved.Name)
	}
	if resolved != nil && resolved.Settings != nil {
		settings := resolved.Settings
		if options.Format == "" && settings.Output != "" {
			options.Format = OutputFormat(settings.Output)
		}
		insecure = insecure || settings.InsecureSkipVerify
	}
	if options.Format == "" {
		options.Format = OutputFormat(cfg.Output)
	}

	token, err := cfg.ResolveToken()
	if err != nil {
		return nil, err
	}
	if token == "" {
		logging.Debug("CLI", "No API token configured, sending unauthenticated requests")
	}

	c, err := client.New(client.Options{
		Endpoint:           endpoint,
		Token:              token,
		AuthType:           cfg.Auth.Type,
		Timeout:            cfg.Timeout,
		InsecureSkipVerify: insecure,
		UserAgent:          options.UserAgent,
	})
	if err != nil {
		return nil, err
	}
	logging.Debug("CLI", "Using endpoint %s", endpoint)

	return newExecutor(c, endpoint, options), nil
}

// NewExecutorWithClient wraps an existing client. It is used by tests and by
// callers that build their own client.Client.
func NewExecutorWithClient(c client.Client, endpoint string, options ExecutorOptions) *Executor {
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	return newExecutor(c, endpoint, options)
}

func newExecutor(c client.Client, endpoint string, options ExecutorOptions) *Executor {
	e := &Executor{
		client:   c,
		options:  options,
		endpoint: endpoint,
		out:      options.Out,
		errOut:   options.ErrOut,
	}
	if e.out == nil {
		e.out = os.Stdout
	}
	if e.errOut == nil {
		e.errOut = os.Stderr
	}
	if f, ok := e.errOut.(*os.File); ok {
		e.interactive = IsTerminal(f)
	}
	return e
}

// Endpoint returns the resolved API endpoint.
func (e *Executor) Endpoint() string {
	return e.endpoint
}

// Format returns the effective output format.
func (e *Executor) Format() OutputFormat {
	return e.options.Format
}

// Do runs fn against the client, showing a spinner with the given activity
// text while it runs. Errors are returned with user guidance attached; no
// output is written to Out on failure.
func (e *Executor) Do(ctx context.Context, activity string, fn func(context.Context, client.Client) error) error {
	var s *spinner.Spinner
	if !e.options.Quiet && e.interactive {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(e.errOut))
		s.Suffix = " " + activity + "..."
		s.Start()
	}

	err := fn(ctx, e.client)

	if s != nil {
		s.Stop()
	}
	if err == nil {
		return nil
	}

	if !e.options.Quiet && e.interactive {
		fmt.Fprintln(e.errOut, text.FgRed.Sprint("✗ "+activity+" failed"))
	}
	return e.explain(err)
}

// explain attaches guidance to errors a user can act on.
func (e *Executor) explain(err error) error {
	var authErr *AuthRequiredError
	if errors.As(err, &authErr) {
		return err
	}
	if client.StatusCode(err) == http.StatusUnauthorized {
		return &AuthRequiredError{Endpoint: e.endpoint, Err: err}
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if isTransportError(err) {
		return ClassifyConnectionError(err, e.endpoint)
	}
	return err
}
