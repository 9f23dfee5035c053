package cmd

import (
	"errors"
	"strings"
	"testing"

	"tackerctl/internal/client/fake"
	tackerctx "tackerctl/internal/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempContextStorage(t *testing.T) *tackerctx.Storage {
	t.Helper()
	storage := tackerctx.NewStorageWithPath(t.TempDir())

	orig := newContextStorage
	newContextStorage = func() (*tackerctx.Storage, error) { return storage, nil }
	t.Cleanup(func() { newContextStorage = orig })
	return storage
}

func TestContextList_Empty(t *testing.T) {
	useTempContextStorage(t)

	res := runCommand(t, &fake.Client{}, "context")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No contexts configured yet.")
}

func TestContextAddUseList(t *testing.T) {
	storage := useTempContextStorage(t)

	res := runCommand(t, &fake.Client{}, "context", "add", "lab", "--endpoint", "http://10.0.0.5:9890")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `Context "lab" added`)
	assert.Contains(t, res.stdout, "tackerctl context use lab")

	res = runCommand(t, &fake.Client{}, "context", "add", "prod", "--endpoint", "https://nfvo:9890", "-o", "json", "--use")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `Switched to context "prod"`)

	current, err := storage.GetCurrentContext()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "json", current.Settings.Output)

	res = runCommand(t, &fake.Client{}, "context", "list")
	require.NoError(t, res.err)
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"CURRENT", "NAME", "ENDPOINT"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"lab", "http://10.0.0.5:9890"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"*", "prod", "https://nfvo:9890"}, strings.Fields(lines[2]))

	res = runCommand(t, &fake.Client{}, "context", "use", "lab")
	require.NoError(t, res.err)

	res = runCommand(t, &fake.Client{}, "context", "current")
	require.NoError(t, res.err)
	assert.Equal(t, "lab\n", res.stdout)
}

func TestContextList_NoHeaders(t *testing.T) {
	storage := useTempContextStorage(t)
	require.NoError(t, storage.AddContext("lab", "http://lab:9890", nil))
	require.NoError(t, storage.SetCurrentContext("lab"))

	for _, args := range [][]string{{"context", "--no-headers"}, {"context", "list", "--no-headers"}} {
		res := runCommand(t, &fake.Client{}, args...)
		require.NoError(t, res.err)
		lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
		require.Len(t, lines, 1, strings.Join(args, " "))
		assert.Equal(t, []string{"*", "lab", "http://lab:9890"}, strings.Fields(lines[0]))
	}
}

func TestContextAdd_Invalid(t *testing.T) {
	useTempContextStorage(t)

	res := runCommand(t, &fake.Client{}, "context", "add", "lab", "--endpoint", "nfvo:9890")
	assert.ErrorContains(t, res.err, "endpoint")

	res = runCommand(t, &fake.Client{}, "context", "add", "Lab", "--endpoint", "http://nfvo:9890")
	assert.Error(t, res.err)

	res = runCommand(t, &fake.Client{}, "context", "add", "lab", "--endpoint", "http://nfvo:9890", "-o", "wide")
	assert.ErrorContains(t, res.err, "unsupported output format")
}

func TestContextUse_NotFound(t *testing.T) {
	useTempContextStorage(t)

	res := runCommand(t, &fake.Client{}, "context", "use", "missing")
	var notFound *tackerctx.ContextNotFoundError
	require.True(t, errors.As(res.err, &notFound))
	assert.Contains(t, res.err.Error(), "tackerctl context list")
}

func TestContextDelete(t *testing.T) {
	storage := useTempContextStorage(t)
	require.NoError(t, storage.AddContext("lab", "http://lab:9890", nil))
	require.NoError(t, storage.SetCurrentContext("lab"))

	// No confirmation on stdin aborts.
	res := runCommand(t, &fake.Client{}, "context", "delete", "lab")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "(current context)? [y/N]")
	assert.Contains(t, res.stdout, "Aborted.")
	ctx, err := storage.GetContext("lab")
	require.NoError(t, err)
	assert.NotNil(t, ctx)

	res = runCommand(t, &fake.Client{}, "context", "delete", "lab", "--force")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `Context "lab" deleted`)
	assert.Contains(t, res.stdout, "No current context")

	res = runCommand(t, &fake.Client{}, "context", "rm", "lab", "-f")
	var notFound *tackerctx.ContextNotFoundError
	assert.True(t, errors.As(res.err, &notFound))
}

func TestContextShow(t *testing.T) {
	storage := useTempContextStorage(t)
	require.NoError(t, storage.AddContext("lab", "http://lab:9890", &tackerctx.ContextSettings{InsecureSkipVerify: true}))

	res := runCommand(t, &fake.Client{}, "context", "show", "lab")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Endpoint:  http://lab:9890")
	assert.Contains(t, res.stdout, "Current:   false")
	assert.Contains(t, res.stdout, "Insecure:  true")

	res = runCommand(t, &fake.Client{}, "context", "show", "lab", "-o", "json")
	require.NoError(t, res.err)
	assert.JSONEq(t, `{"name":"lab","endpoint":"http://lab:9890","settings":{"insecureSkipVerify":true}}`, res.stdout)

	res = runCommand(t, &fake.Client{}, "context", "show", "lab", "-o", "yaml")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "endpoint: http://lab:9890")

	res = runCommand(t, &fake.Client{}, "context", "show", "missing")
	assert.Error(t, res.err)
}

func TestConfirmAction(t *testing.T) {
	var out strings.Builder
	assert.True(t, confirmAction(strings.NewReader("y\n"), &out, "Go?"))
	assert.True(t, confirmAction(strings.NewReader("YES"), &out, "Go?"))
	assert.False(t, confirmAction(strings.NewReader("n\n"), &out, "Go?"))
	assert.False(t, confirmAction(strings.NewReader(""), &out, "Go?"))
	assert.Contains(t, out.String(), "Go? [y/N]: ")
}
