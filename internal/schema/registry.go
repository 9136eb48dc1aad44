package schema

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/vk/axisdefaults/internal/attrpath"
)

//go:embed axis.hcl
var axisManifest []byte

var (
	axisOnce     sync.Once
	axisRegistry *Registry
)

// Axis returns the registry declared by the embedded axis manifest. A
// malformed manifest is a programming error and panics.
func Axis() *Registry {
	axisOnce.Do(func() {
		reg, err := Parse(context.Background(), axisManifest, "axis.hcl")
		if err != nil {
			panic(fmt.Errorf("schema: embedded axis manifest is invalid: %w", err))
		}
		axisRegistry = reg
	})
	return axisRegistry
}

// Registry is a read-only set of attribute declarations. A registry may be
// a view scoped under a prefix (see Sub); lookups are then relative to it.
type Registry struct {
	attrs  map[string]*Attribute
	order  []string
	prefix string
}

func newRegistry() *Registry {
	return &Registry{attrs: make(map[string]*Attribute)}
}

func (r *Registry) add(attr *Attribute) error {
	if _, exists := r.attrs[attr.Path]; exists {
		return fmt.Errorf("attribute %q declared twice", attr.Path)
	}
	r.attrs[attr.Path] = attr
	r.order = append(r.order, attr.Path)
	return nil
}

// Lookup returns the declaration for a path relative to the registry.
func (r *Registry) Lookup(path string) (*Attribute, bool) {
	attr, ok := r.attrs[attrpath.Join(r.prefix, path)]
	return attr, ok
}

// MustLookup is like Lookup but panics for undeclared attributes. Asking
// for an undeclared attribute is a programming error.
func (r *Registry) MustLookup(path string) *Attribute {
	attr, ok := r.Lookup(path)
	if !ok {
		panic(fmt.Errorf("schema: unknown attribute %q", attrpath.Join(r.prefix, path)))
	}
	return attr
}

// Sub returns a view of the registry scoped under prefix, used for the
// items of array containers such as `rangebreaks`.
func (r *Registry) Sub(prefix string) *Registry {
	return &Registry{attrs: r.attrs, order: r.order, prefix: attrpath.Join(r.prefix, prefix)}
}

// Attributes lists the declarations visible from this view in manifest
// order.
func (r *Registry) Attributes() []*Attribute {
	var out []*Attribute
	for _, path := range r.order {
		if r.prefix == "" || strings.HasPrefix(path, r.prefix+".") {
			out = append(out, r.attrs[path])
		}
	}
	return out
}
