// Package cli connects tackerctl commands to the Tacker API.
//
// Executor resolves the endpoint (flag, context, environment, config file),
// builds a client.Client with the configured credentials and runs remote
// calls behind a progress spinner. Results are written in the requested
// output format:
//
//   - table: the Field/Value or list tables from the display package
//   - json:  the raw API resource, indented
//   - yaml:  the raw API resource as YAML
//
// Transport failures are classified into ConnectionError values and HTTP 401
// responses into AuthRequiredError so that users get actionable messages.
// The spinner and colors are only used when stderr is a terminal.
package cli
