package cli

import (
	"os"

	tackerctx "tackerctl/internal/context"
	"tackerctl/pkg/logging"
)

// ContextEnvVar is the environment variable name for overriding the current context.
const ContextEnvVar = tackerctx.ContextEnvVar

// ResolveEndpointWithStorage resolves the endpoint URL using the precedence order:
// 1. Explicit endpoint (from --endpoint flag)
// 2. Context name (from --context flag)
// 3. TACKER_CONTEXT environment variable
// 4. current-context from contexts.yaml
// 5. Empty string (caller should fall back to config-based endpoint)
//
// The returned context is the one the endpoint was taken from, and is nil for
// cases 1 and 5. Only its settings may be applied to the connection.
func ResolveEndpointWithStorage(storage *tackerctx.Storage, explicitEndpoint, contextName string) (string, *tackerctx.Context, error) {
	if explicitEndpoint != "" {
		return explicitEndpoint, nil, nil
	}

	if contextName == "" {
		contextName = os.Getenv(ContextEnvVar)
	}
	if contextName != "" {
		ctx, err := lookupContext(storage, contextName)
		if err != nil {
			return "", nil, err
		}
		return ctx.Endpoint, ctx, nil
	}

	ctx, err := storage.GetCurrentContext()
	if err != nil {
		// A broken contexts.yaml should not block commands that can still
		// use config.yaml.
		logging.Warn("Context", "Ignoring contexts file: %v", err)
		return "", nil, nil
	}
	if ctx == nil {
		return "", nil, nil
	}
	return ctx.Endpoint, ctx, nil
}

func lookupContext(storage *tackerctx.Storage, name string) (*tackerctx.Context, error) {
	ctx, err := storage.GetContext(name)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		return nil, &tackerctx.ContextNotFoundError{Name: name}
	}
	return ctx, nil
}
