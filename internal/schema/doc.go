// Package schema defines the attribute registry the coercion contract
// validates against: for every axis attribute its value type, format, enum
// values, numeric bounds, array shape and built-in default.
//
// The registry is declared in an embedded HCL manifest (axis.hcl) and typed
// with go-cty. Each `attribute "<path>" { ... }` block describes one
// attribute:
//
//	attribute "ticklen" {
//	  type    = number
//	  min     = 0
//	  default = 5
//	}
//
// `type` accepts the primitive keywords `bool`, `number`, `string` and
// `any`. For arrays (`length` set) it is the element type; `length = 0`
// means any number of elements. `values` turns the attribute into an
// enumeration. `format` refines the type with `color`, `integer` or `angle`.
package schema
