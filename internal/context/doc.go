// Package context manages named tackerctl endpoints.
//
// A context is an alias for a Tacker API endpoint plus optional per-endpoint
// settings, so that commands can be pointed at a lab or production NFVO
// without repeating --endpoint. Contexts live in
// ~/.config/tackerctl/contexts.yaml:
//
//	current-context: lab
//	contexts:
//	  - name: lab
//	    endpoint: http://192.168.10.5:9890
//	  - name: production
//	    endpoint: https://nfvo.example.com:9890
//	    settings:
//	      output: json
//
// Endpoint precedence, highest first:
//  1. --endpoint flag
//  2. --context flag
//  3. TACKER_CONTEXT environment variable
//  4. current-context from contexts.yaml
//  5. endpoint from config.yaml
//
// Storage serializes access within one process only.
package context
