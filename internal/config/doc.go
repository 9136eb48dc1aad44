// Package config defines the format-agnostic layout document model and the
// Loader interface implemented by the format-specific loaders.
//
// Every loader builds a cty object shaped like
//
//	{axes = {xaxis = {...}, yaxis2 = {...}}, data = [{type = "scatter", ...}],
//	 font = {...}, plot_bgcolor = "#fff", calendar = "gregorian", editable = false}
//
// and hands it to Decode, so validation of axis names and trace references
// lives in one place.
package config
