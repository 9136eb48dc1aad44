package container

import (
	"fmt"
	"sort"

	"github.com/vk/axisdefaults/internal/attrpath"
	"github.com/zclconf/go-cty/cty"
)

// Container is a flat store of attribute values keyed by path.
type Container struct {
	values map[string]cty.Value
	items  map[string][]*Container
	index  int
}

// New returns an empty container.
func New() *Container {
	return &Container{
		values: make(map[string]cty.Value),
		items:  make(map[string][]*Container),
		index:  -1,
	}
}

// FromObject flattens a cty object (or map) into a container. Nested
// objects become dotted paths; lists, tuples and primitives are stored as
// they are. Null attributes are treated as absent.
func FromObject(obj cty.Value) (*Container, error) {
	c := New()
	if obj.Type() == cty.NilType || obj.IsNull() {
		return c, nil
	}
	if !isObjectLike(obj.Type()) {
		return nil, fmt.Errorf("expected an object, got %s", obj.Type().FriendlyName())
	}
	if err := c.flatten("", obj); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) flatten(prefix string, obj cty.Value) error {
	for name, val := range obj.AsValueMap() {
		path := attrpath.Join(prefix, name)
		if _, err := attrpath.Parse(path); err != nil {
			return fmt.Errorf("invalid attribute name %q: %w", name, err)
		}
		if val.IsNull() {
			continue
		}
		if isObjectLike(val.Type()) && val.IsKnown() {
			if err := c.flatten(path, val); err != nil {
				return err
			}
			continue
		}
		c.values[path] = val
	}
	return nil
}

func isObjectLike(ty cty.Type) bool {
	return ty.IsObjectType() || ty.IsMapType()
}

// Get returns the value stored at path.
func (c *Container) Get(path string) (cty.Value, bool) {
	v, ok := c.values[path]
	return v, ok
}

// Has reports whether a value is stored at path.
func (c *Container) Has(path string) bool {
	_, ok := c.values[path]
	return ok
}

// Set stores v at path. Storing cty.NilVal or a null removes the path.
func (c *Container) Set(path string, v cty.Value) {
	if v.Type() == cty.NilType || v.IsNull() {
		delete(c.values, path)
		return
	}
	c.values[path] = v
}

// Delete removes the given paths.
func (c *Container) Delete(paths ...string) {
	for _, p := range paths {
		delete(c.values, p)
	}
}

// Paths lists the stored value paths in sorted order.
func (c *Container) Paths() []string {
	paths := make([]string, 0, len(c.values))
	for p := range c.values {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// SetItems stores the item containers of an array container attribute.
func (c *Container) SetItems(name string, items []*Container) {
	c.items[name] = items
}

// Items returns the item containers stored under name.
func (c *Container) Items(name string) []*Container {
	return c.items[name]
}

// DeleteItems removes an array container attribute.
func (c *Container) DeleteItems(name string) {
	delete(c.items, name)
}

// Index is the position of this container inside its parent array
// container, or -1 for a top-level container.
func (c *Container) Index() int {
	return c.index
}

// SetIndex records the position inside a parent array container.
func (c *Container) SetIndex(i int) {
	c.index = i
}
