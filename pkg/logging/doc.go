// Package logging provides the structured, subsystem-tagged logger used by
// tackerctl.
//
// It is a thin layer over log/slog. Diagnostics are written to stderr so
// they never mix with table, JSON or YAML output on stdout.
//
// # Usage
//
//	level, _ := logging.ParseLevel("debug")
//	logging.Init(logging.FormatText, level, os.Stderr)
//
//	logging.Debug("Client", "POST %s", url)
//	logging.Warn("Config", "ignoring unknown output format %q", format)
//	logging.Error("Client", err, "request %s failed", requestID)
//
// Every entry carries a "subsystem" attribute (Client, Config, Executor,
// Context, ...) and, for Error, an "error" attribute.
//
// The default level before Init is called is WARN, written with a
// text handler to stderr.
package logging
