// Package rangebreak resolves the entries of a date axis's `rangebreaks`
// list: intervals or discrete values excluded from the displayed coordinate
// space, such as weekends or market holidays.
//
// Resolve defaults and validates one entry in place. Decode turns an
// enabled, resolved entry into a Break, which is either a BoundsBreak
// (an interval, optionally repeating by day of week or hour) or a
// ValuesBreak (a list of excluded values, each dvalue wide).
package rangebreak
