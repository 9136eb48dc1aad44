package cli

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/axisdefaults/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out := &testutil.SafeBuffer{}
	errOut := &testutil.SafeBuffer{}
	err := Execute(context.Background(), args, out, errOut)
	return out.String(), errOut.String(), err
}

func TestResolveCommand(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"layout.json": `{
  "axes": {"xaxis": {"type": "date", "rangebreaks": [{"values": ["2021-01-09"]}]}},
  "data": [{"type": "scattergl", "x": ["2021-01-04"], "y": [1]}],
  "editable": false
}`,
	})

	out, errOut, err := execute(t, "resolve", "--no-color", "--editable", filepath.Join(root, "layout.json"))
	require.NoError(t, err, errOut)

	assert.Contains(t, out, `"text": "Click to enter X axis title"`)
	assert.Contains(t, out, `"visible": false`)
	assert.Equal(t, "warning: scattergl traces do not work on axes with rangebreaks. Setting trace 0 to `visible: false`.\n", errOut)
}

func TestSchemaCommand(t *testing.T) {
	out, _, err := execute(t, "schema", "rangebreaks")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Regexp(t, `^PATH\s+TYPE\s+DEFAULT\s+VALUES$`, lines[0])
	assert.Regexp(t, `^rangebreaks\.enabled\s+bool\s+true\s*$`, lines[1])
	assert.Regexp(t, `^rangebreaks\.pattern\s+string\s+""\s+"day of week" \| "hour" \| ""$`, lines[3])

	out, _, err = execute(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "title.font.size")
}

func TestUsageErrors(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		expectedErr string
	}{
		{name: "resolve without paths", args: []string{"resolve"}, expectedErr: "resolve requires at least one layout path"},
		{name: "bad format", args: []string{"resolve", "-f", "xml", "x.hcl"}, expectedErr: "unknown output format"},
		{name: "bad log level", args: []string{"--log-level", "loud", "resolve", "x.hcl"}, expectedErr: "invalid log level"},
		{name: "unknown flag", args: []string{"resolve", "--nope"}, expectedErr: "unknown flag: --nope"},
		{name: "bridge without url", args: []string{"bridge"}, expectedErr: "bridge requires --url"},
		{name: "bridge bad timeout", args: []string{"bridge", "--url", "http://localhost:1", "--timeout", "soon"}, expectedErr: `invalid timeout "soon"`},
		{name: "schema unknown prefix", args: []string{"schema", "legend"}, expectedErr: `no attributes under "legend"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %T", err)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
