package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/axisdefaults/internal/layout"
	"github.com/vk/axisdefaults/internal/testutil"
)

func quietOptions() layout.Options {
	return layout.Options{Warner: &testutil.CollectingWarner{}}
}

func TestHandle_Resolved(t *testing.T) {
	payload := map[string]any{
		"request_id": "req-1",
		"axis":       "xaxis",
		"layout": map[string]any{
			"type":        "date",
			"range":       []any{"2021-01-04", "2021-02-01"},
			"autorange":   false,
			"rangebreaks": []any{map[string]any{"bounds": []any{"sat", "mon"}}},
		},
		"data": []any{
			map[string]any{"type": "scattergl", "x": []any{"2021-01-04"}, "y": []any{1.0}},
		},
		"plot_bgcolor": "#000",
	}

	event, reply := Handle(context.Background(), payload, quietOptions())
	require.Equal(t, EventResolved, event, reply)

	assert.Equal(t, "req-1", reply["request_id"])
	assert.Equal(t, "xaxis", reply["axis"])

	resolved, ok := reply["resolved"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "date", resolved["type"])
	assert.Equal(t, false, resolved["autorange"])
	assert.Equal(t, []any{"2021-01-04", "2021-02-01"}, resolved["range"])
	assert.Equal(t, true, resolved["showgrid"])

	breaks, ok := resolved["rangebreaks"].([]any)
	require.True(t, ok)
	require.Len(t, breaks, 1)
	assert.Equal(t, "day of week", breaks[0].(map[string]any)["pattern"])

	data, ok := reply["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
	assert.Equal(t, false, data[0].(map[string]any)["visible"])

	assert.Equal(t, []string{"scattergl traces do not work on axes with rangebreaks. Setting trace 0 to `visible: false`."}, reply["warnings"])
}

func TestHandle_GeneratesRequestID(t *testing.T) {
	event, reply := Handle(context.Background(), map[string]any{"axis": "yaxis2"}, quietOptions())
	require.Equal(t, EventResolved, event, reply)

	id, ok := reply["request_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, []string{}, reply["warnings"])
	assert.Equal(t, []any{}, reply["data"])
}

func TestHandle_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		payload     any
		expectedErr string
	}{
		{name: "not an object", payload: []any{1}, expectedErr: "relayout payload must be an object"},
		{name: "missing axis", payload: map[string]any{"request_id": "r"}, expectedErr: "no axis name"},
		{name: "bad axis", payload: map[string]any{"request_id": "r", "axis": "zaxis"}, expectedErr: `invalid axis name "zaxis"`},
		{name: "layout not an object", payload: map[string]any{"request_id": "r", "axis": "xaxis", "layout": "x"}, expectedErr: `axis "xaxis" must be an object`},
		{name: "unsupported value", payload: map[string]any{"request_id": "r", "axis": "xaxis", "layout": map[string]any{"range": struct{}{}}}, expectedErr: "invalid relayout payload"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event, reply := Handle(context.Background(), tc.payload, quietOptions())
			require.Equal(t, EventError, event)
			assert.Contains(t, reply["error"], tc.expectedErr)
			assert.NotEmpty(t, reply["request_id"])
		})
	}
}

func TestRun_BadURL(t *testing.T) {
	err := Run(context.Background(), Config{URL: "localhost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a scheme and host")
}

func TestRun_CancelledBeforeConnect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A cancelled context ends the run whether or not the dial has failed yet.
	err := Run(ctx, Config{URL: "http://127.0.0.1:1", ConnectTimeout: time.Second})
	if err != nil {
		assert.Contains(t, err.Error(), "socket.io connection failed")
	}
}
