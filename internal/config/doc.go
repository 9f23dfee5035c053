// Package config loads tackerctl configuration.
//
// Configuration is read from a single directory, ~/.config/tackerctl by
// default, which may be overridden with the --config-path flag. The
// directory holds config.yaml:
//
//	endpoint: https://nfvo.example.com:9890
//	timeout: 30s
//	insecureSkipVerify: false
//	output: table
//	auth:
//	  type: keystone        # or "bearer"
//	  token: gAAAAAB...
//	  tokenFile: ~/.config/tackerctl/token
//
// A missing config.yaml is not an error; defaults are used. Values from the
// environment (TACKER_ENDPOINT, TACKER_TOKEN) override the file.
package config
