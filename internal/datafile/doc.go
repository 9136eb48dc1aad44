// Package datafile loads layout documents written as JSON, YAML or TOML.
//
// All three formats share one shape:
//
//	{
//	  "plot_bgcolor": "#fafafa",
//	  "axes": {
//	    "xaxis": {"type": "date", "rangebreaks": [{"bounds": ["sat", "mon"]}]}
//	  },
//	  "data": [{"type": "scatter", "x": ["2021-01-04"], "y": [1]}]
//	}
//
// JSON is decoded straight into cty values. YAML and TOML go through their
// native Go decoders first.
package datafile
