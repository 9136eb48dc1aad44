package integrationtests

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/axisdefaults/internal/app"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/encode"
	"github.com/zclconf/go-cty/cty"
)

const stockLayoutHCL = `
plot_bgcolor = "#fafafa"

axis "xaxis" {
  rangebreaks {
    bounds = ["sat", "mon"]
  }
  rangebreaks {
    values = ["2021-01-18"]
  }
}

axis "yaxis" {
  title {
    text = "Price"
  }
  showline = true
}
`

const stockDataYAML = `
data:
  - type: scatter
    x: ["2021-01-04", "2021-01-05", "2021-01-06"]
    y: [101.5, 102.25, 99.75]
  - type: bar
    yaxis: y2
    x: ["2021-01-04", "2021-01-05", "2021-01-06"]
    y: [1200, 1800, 900]
`

const volumeAxisTOML = `
[axes.yaxis2]
type = "log"
gridcolor = "not a colour"
`

func TestResolve_MixedFormats(t *testing.T) {
	res := runResolve(t, map[string]string{
		"layout/01_axes.hcl":    stockLayoutHCL,
		"layout/02_data.yaml":   stockDataYAML,
		"layout/03_volume.toml": volumeAxisTOML,
		"layout/README.md":      "not a layout",
	}, app.Config{}, "layout")
	require.NoError(t, res.Err)
	assert.Empty(t, res.Warnings)
	assert.Contains(t, res.LogOutput, "Discovered layout files.")

	m := decodeOutput(t, res.Output)
	require.Len(t, m.Axes, 3)

	x := m.Axes[0].Attrs
	assert.Equal(t, cty.StringVal("date"), x.GetAttr("type"))
	assert.Equal(t, cty.True, x.GetAttr("showgrid"))
	assert.Equal(t, cty.StringVal("rgb(233, 233, 233)"), x.GetAttr("gridcolor"))
	breaks := x.GetAttr("rangebreaks").AsValueSlice()
	require.Len(t, breaks, 2)
	assert.Equal(t, cty.StringVal("day of week"), breaks[0].GetAttr("pattern"))
	assert.True(t, breaks[1].GetAttr("dvalue").Equals(cty.NumberIntVal(86400000)).True())

	y := m.Axes[1].Attrs
	assert.Equal(t, cty.StringVal("linear"), y.GetAttr("type"))
	assert.Equal(t, cty.StringVal("Price"), y.GetAttr("title").GetAttr("text"))
	assert.Equal(t, cty.False, y.GetAttr("mirror"))

	y2 := m.Axes[2].Attrs
	assert.Equal(t, cty.StringVal("log"), y2.GetAttr("type"))
	assert.Equal(t, cty.StringVal("rgb(233, 233, 233)"), y2.GetAttr("gridcolor"))

	require.Len(t, m.Traces, 2)
	assert.True(t, m.Traces[0].Visible)
	assert.True(t, m.Traces[1].Visible)
}

func TestResolve_HidesTracesOnBrokenAxes(t *testing.T) {
	res := runResolve(t, map[string]string{
		"layout.json": `{
  "axes": {"xaxis": {"type": "date", "rangebreaks": [{"pattern": "hour", "bounds": [17, 9]}]}},
  "data": [
    {"type": "scattergl", "x": ["2021-01-04 10:00"], "y": [1]},
    {"type": "splom", "visible": false},
    {"type": "scatter", "x": ["2021-01-04 11:00"], "y": [2]}
  ]
}`,
	}, app.Config{}, "layout.json")
	require.NoError(t, res.Err)

	assert.Equal(t, []string{
		"scattergl traces do not work on axes with rangebreaks. Setting trace 0 to `visible: false`.",
		"splom traces do not work on axes with rangebreaks. Setting trace 1 to `visible: false`.",
	}, res.Warnings)

	m := decodeOutput(t, res.Output)
	require.Len(t, m.Traces, 3)
	assert.False(t, m.Traces[0].Visible)
	assert.False(t, m.Traces[1].Visible)
	assert.True(t, m.Traces[2].Visible)
}

// A resolved layout is a fixed point: resolving it again changes nothing.
func TestResolve_Idempotent(t *testing.T) {
	testCases := []struct {
		name   string
		format encode.Format
		file   string
	}{
		{name: "json", format: encode.JSON, file: "resolved.json"},
		{name: "yaml", format: encode.YAML, file: "resolved.yaml"},
		{name: "hcl", format: encode.HCL, file: "resolved.hcl"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			first := runResolve(t, map[string]string{
				"a.hcl":  stockLayoutHCL,
				"b.yaml": stockDataYAML,
				"c.toml": volumeAxisTOML,
			}, app.Config{OutputFormat: tc.format})
			require.NoError(t, first.Err)

			second := runResolve(t, map[string]string{tc.file: first.Output}, app.Config{OutputFormat: tc.format})
			require.NoError(t, second.Err)

			want := native(t, first.Result.Document.Value())
			got := native(t, second.Result.Document.Value())
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("second resolve changed the layout (-first +second):\n%s", diff)
			}
		})
	}
}

func TestResolve_LoadErrors(t *testing.T) {
	testCases := []struct {
		name        string
		files       map[string]string
		expectedErr string
	}{
		{name: "hcl syntax", files: map[string]string{"a.hcl": "axis \"xaxis\" {"}, expectedErr: "failed to parse HCL file"},
		{name: "json syntax", files: map[string]string{"a.json": "{"}, expectedErr: "failed to parse JSON file"},
		{name: "unknown key", files: map[string]string{"a.yaml": "legend: {}\n"}, expectedErr: `unknown layout attribute "legend"`},
		{name: "bad trace ref", files: map[string]string{"a.toml": "[[data]]\nxaxis = \"x0\"\n"}, expectedErr: `invalid axis reference "x0"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := runResolve(t, tc.files, app.Config{})
			require.Error(t, res.Err)
			assert.True(t, strings.HasPrefix(res.Err.Error(), "failed to load layout: "), res.Err.Error())
			assert.Contains(t, res.Err.Error(), tc.expectedErr)
			assert.Empty(t, res.Output)
		})
	}
}

func native(t *testing.T, v cty.Value) any {
	t.Helper()
	n, err := container.ToNative(v)
	require.NoError(t, err)
	return n
}
