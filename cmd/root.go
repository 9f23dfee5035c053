package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"tackerctl/internal/cli"
	"tackerctl/internal/client"
	"tackerctl/internal/config"
	"tackerctl/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeAuthRequired indicates the API rejected the credentials (HTTP 401).
	ExitCodeAuthRequired = 2
	// ExitCodeNotFound indicates the operation occurrence does not exist (HTTP 404).
	ExitCodeNotFound = 3
	// ExitCodeConflict indicates the operation is in the wrong state for the request (HTTP 409).
	ExitCodeConflict = 4
)

var (
	debug     bool
	logLevel  string
	logFormat string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tackerctl",
	Short: "Manage VNF lifecycle operation occurrences on a Tacker NFVO",
	Long: `tackerctl drives the ETSI NFV-SOL003 VNF lifecycle management API served
by OpenStack Tacker.

It acts on LCM operation occurrences, the records the NFVO keeps for every
instantiate, scale, heal, change or terminate request: inspect them, and
rollback, retry, cancel or fail the ones that did not complete.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	// Errors are printed by Execute so configuration errors can carry their suggestions.
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd)
	},
}

func initLogging(cmd *cobra.Command) error {
	format := logging.Format(logFormat)
	if format != logging.FormatText && format != logging.FormatJSON {
		return fmt.Errorf("unsupported log format %q (valid: text, json)", logFormat)
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	if debug {
		level = logging.LevelDebug
	}
	logging.Init(format, level, cmd.ErrOrStderr())
	cli.ConfigureColors()
	return nil
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute runs the root command and exits with a code that reflects the
// failure class.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tackerctl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(getExitCode(err))
	}
}

// printError writes err for the user. Configuration errors include their
// suggestions.
func printError(w io.Writer, err error) {
	var configErr *config.ConfigurationError
	if errors.As(err, &configErr) {
		fmt.Fprintln(w, cli.FormatError(errors.New(configErr.DetailedError())))
		return
	}
	fmt.Fprintln(w, cli.FormatError(err))
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var authRequired *cli.AuthRequiredError
	if errors.As(err, &authRequired) {
		return ExitCodeAuthRequired
	}

	switch client.StatusCode(err) {
	case http.StatusUnauthorized:
		return ExitCodeAuthRequired
	case http.StatusNotFound:
		return ExitCodeNotFound
	case http.StatusConflict:
		return ExitCodeConflict
	}
	return ExitCodeError
}

func userAgent() string {
	v := GetVersion()
	if v == "" {
		v = "dev"
	}
	return "tackerctl/" + v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging (HTTP requests, config resolution); same as --log-level debug")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.LevelWarn.String(), "Log level on stderr (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", string(logging.FormatText), "Log format on stderr (text, json)")
	rootCmd.AddCommand(newVersionCmd())
}
