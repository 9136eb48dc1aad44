// Package hcl loads layout documents written in HCL.
//
//	plot_bgcolor = "#fafafa"
//	font         = { family = "Arial", size = 14 }
//
//	axis "xaxis" {
//	  type  = "date"
//	  range = ["2021-01-04", "2021-02-01"]
//
//	  rangebreaks {
//	    bounds = ["sat", "mon"]
//	  }
//	}
//
//	trace "scatter" {
//	  x = ["2021-01-04", "2021-01-05"]
//	  y = [1, 3]
//	}
//
// Unlabelled nested blocks become nested objects. Blocks named after list
// attributes (rangebreaks, tickformatstops) may repeat and always become
// lists.
package hcl
