// Package container holds the attribute store that axis resolution reads
// from and writes to, and the schema-backed coercion contract.
//
// A Container maps dot-separated attribute paths to cty values. Nested
// objects are flattened on the way in (FromObject) and rebuilt on the way
// out (Object). Array containers, lists of objects such as `rangebreaks`,
// are stored as item Containers so each item can be resolved on its own.
//
// A Container is owned by exactly one resolution call at a time and is not
// safe for concurrent mutation.
package container
