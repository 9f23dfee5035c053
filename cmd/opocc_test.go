package cmd

import (
	"testing"

	"tackerctl/internal/client"
	"tackerctl/internal/client/fake"
	"tackerctl/internal/display"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullOpOcc() display.Record {
	return display.Record{
		"id":                    "abc-123",
		"operationState":        "FAILED",
		"stateEnteredTime":      "2024-05-01T10:00:05Z",
		"startTime":             "2024-05-01T10:00:00Z",
		"vnfInstanceId":         "vnf-1",
		"operation":             "INSTANTIATE",
		"isAutomaticInvocation": false,
		"isCancelPending":       false,
		"error":                 map[string]interface{}{"status": float64(500), "detail": "timeout"},
		"_links":                map[string]interface{}{"self": map[string]interface{}{"href": "http://tacker.test/vnflcm/v1/vnf_lcm_op_occs/abc-123"}},
		"grantId":               "not-displayed",
	}
}

func TestRollback_Accepted(t *testing.T) {
	fc := &fake.Client{}
	res := runCommand(t, fc, "rollback", "abc-123")

	require.NoError(t, res.err)
	assert.Equal(t, "Rollback request for LCM operation abc-123 has been accepted\n", res.stdout)
	assert.Equal(t, []fake.Call{{Method: "rollback", OccID: "abc-123"}}, fc.Calls())
}

func TestRollback_BodyIsRendered(t *testing.T) {
	fc := &fake.Client{Record: display.Record{"id": "abc-123", "operationState": "ROLLING_BACK"}}
	res := runCommand(t, fc, "rollback", "abc-123")

	require.NoError(t, res.err)
	assert.Equal(t, []string{"ID", "Operation State"}, fieldLabels(res.stdout))
	assert.NotContains(t, res.stdout, "has been accepted")
}

func TestFail_FullRecord(t *testing.T) {
	fc := &fake.Client{Record: fullOpOcc()}
	res := runCommand(t, fc, "fail", "abc-123")

	require.NoError(t, res.err)
	assert.Equal(t, []string{
		"ID",
		"Operation State",
		"State Entered Time",
		"Start Time",
		"VNF Instance ID",
		"Operation",
		"Is Automatic Invocation",
		"Is Cancel Pending",
		"Error",
		"Links",
	}, fieldLabels(res.stdout))
	assert.Contains(t, res.stdout, `"detail": "timeout",`)
	assert.Contains(t, res.stdout, `"href": "http://tacker.test/vnflcm/v1/vnf_lcm_op_occs/abc-123"`)
	assert.NotContains(t, res.stdout, "not-displayed")
	assert.Equal(t, []fake.Call{{Method: "fail", OccID: "abc-123"}}, fc.Calls())
}

func TestFail_PartialRecord(t *testing.T) {
	fc := &fake.Client{Record: display.Record{
		"id":             "abc-123",
		"operationState": "FAILED",
		"vnfInstanceId":  "vnf-1",
		"error":          map[string]interface{}{"status": float64(500), "detail": "timeout"},
	}}
	res := runCommand(t, fc, "fail", "abc-123")

	require.NoError(t, res.err)
	assert.Equal(t, []string{"ID", "Operation State", "VNF Instance ID", "Error"}, fieldLabels(res.stdout))
}

func TestFail_ClientErrorRendersNothing(t *testing.T) {
	fc := &fake.Client{Err: &client.APIError{StatusCode: 404, Detail: "no such operation"}}
	res := runCommand(t, fc, "fail", "abc-123")

	require.Error(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Equal(t, ExitCodeNotFound, getExitCode(res.err))
}

func TestFail_EmptyResponse(t *testing.T) {
	res := runCommand(t, &fake.Client{}, "fail", "abc-123")

	assert.ErrorContains(t, res.err, "empty response")
	assert.Empty(t, res.stdout)
}

func TestFail_JSONOutput(t *testing.T) {
	fc := &fake.Client{Record: display.Record{"id": "abc-123", "operationState": "FAILED"}}
	res := runCommand(t, fc, "fail", "abc-123", "-o", "json")

	require.NoError(t, res.err)
	assert.JSONEq(t, `{"id":"abc-123","operationState":"FAILED"}`, res.stdout)
}

func TestOpOccCommands_RequireOneID(t *testing.T) {
	for _, name := range []string{"rollback", "fail", "retry", "cancel", "show"} {
		t.Run(name, func(t *testing.T) {
			fc := &fake.Client{}
			res := runCommand(t, fc, name)
			assert.Error(t, res.err)
			assert.Empty(t, fc.Calls())

			res = runCommand(t, fc, name, "a", "b")
			assert.Error(t, res.err)
			assert.Empty(t, fc.Calls())
		})
	}
}

func TestRetry_Accepted(t *testing.T) {
	fc := &fake.Client{}
	res := runCommand(t, fc, "retry", "abc-123")

	require.NoError(t, res.err)
	assert.Equal(t, "Retry request for LCM operation abc-123 has been accepted\n", res.stdout)
}

func TestCancel_Modes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want client.CancelMode
	}{
		{"default", nil, client.CancelModeForceful},
		{"graceful", []string{"--cancel-mode", "graceful"}, client.CancelModeGraceful},
		{"forceful", []string{"--cancel-mode", "FORCEFUL"}, client.CancelModeForceful},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fake.Client{}
			args := append([]string{"cancel", "abc-123"}, tt.args...)
			res := runCommand(t, fc, args...)

			require.NoError(t, res.err)
			assert.Equal(t, "Cancel request for LCM operation abc-123 has been accepted\n", res.stdout)
			assert.Equal(t, []fake.Call{{Method: "cancel", OccID: "abc-123", Mode: tt.want}}, fc.Calls())
		})
	}
}

func TestCancel_InvalidMode(t *testing.T) {
	fc := &fake.Client{}
	res := runCommand(t, fc, "cancel", "abc-123", "--cancel-mode", "soft")

	assert.ErrorContains(t, res.err, "invalid cancel mode")
	assert.Empty(t, fc.Calls())
	assert.Equal(t, ExitCodeError, getExitCode(res.err))
}

func TestShow(t *testing.T) {
	fc := &fake.Client{Record: fullOpOcc()}
	res := runCommand(t, fc, "show", "abc-123", "--no-headers")

	require.NoError(t, res.err)
	assert.NotContains(t, res.stdout, "Field")
	assert.Equal(t, "ID", fieldLabels(res.stdout)[0])
	assert.Equal(t, []fake.Call{{Method: "show", OccID: "abc-123"}}, fc.Calls())
}

func TestInvalidOutputFormat(t *testing.T) {
	fc := &fake.Client{}
	res := runCommand(t, fc, "show", "abc-123", "-o", "wide")

	assert.ErrorContains(t, res.err, "unsupported output format")
	assert.Empty(t, fc.Calls())
}
