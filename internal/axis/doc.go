// Package axis resolves a partial axis configuration into a complete one.
//
// Resolver.Resolve runs an ordered pipeline of default rules over an input
// container, writing every visited attribute into an output container
// through a container.Coercer. Later steps read what earlier steps wrote,
// so the order of the pipeline is fixed. Sub-ranges of attributes (ticks,
// grid lines, category order, range breaks) are delegated to the
// collaborators in Collaborators.
//
// Resolution never fails: invalid input is replaced by defaults,
// contradictory range breaks are disabled and traces that cannot be drawn
// on an axis with range breaks are hidden with a warning.
package axis
