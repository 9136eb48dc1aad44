// Package setconvert is the type-conversion collaborator of the axis
// resolver. An Axis wraps a resolved output container and knows how to map
// axis values (numbers, date strings) onto the axis's linear coordinate,
// whether a candidate range is usable, how to normalise the stored range
// and which linear intervals are hidden by range breaks.
package setconvert
