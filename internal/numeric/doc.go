// Package numeric holds small floating point helpers shared by the range
// and tick machinery. They are pure functions with no shared state.
package numeric
