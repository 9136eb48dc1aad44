/*
Package attrpath provides a structured representation of attribute paths
used to address values inside an axis configuration.

The canonical format is a dot-separated sequence of segments, each an
attribute name with an optional list index, e.g. `title.font.size` or
`rangebreaks[0].bounds`.
*/
package attrpath
