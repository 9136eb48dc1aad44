// Package ticks holds the tick default resolvers of an axis: tick values
// (mode, spacing, explicit positions), tick labels and tick marks. Each
// resolver reads through a container.Coercer and may also write or delete
// attributes on the output container directly.
package ticks
