package container

import (
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// node is an intermediate tree used to rebuild nested objects.
type node struct {
	leaf     cty.Value
	hasLeaf  bool
	children map[string]*node
}

func (n *node) child(name string) *node {
	if n.children == nil {
		n.children = make(map[string]*node)
	}
	ch, ok := n.children[name]
	if !ok {
		ch = &node{}
		n.children[name] = ch
	}
	return ch
}

// Object rebuilds the nested cty object represented by the container. Item
// containers are rendered as tuples of objects. When a path holds both a
// value and nested attributes, the nested attributes win.
func (c *Container) Object() cty.Value {
	root := &node{}
	for path, v := range c.values {
		n := root
		for _, name := range strings.Split(path, ".") {
			n = n.child(name)
		}
		n.leaf = v
		n.hasLeaf = true
	}
	for name, items := range c.items {
		objs := make([]cty.Value, len(items))
		for i, item := range items {
			objs[i] = item.Object()
		}
		n := root.child(name)
		n.children = nil
		n.hasLeaf = true
		if len(objs) == 0 {
			n.leaf = cty.EmptyTupleVal
		} else {
			n.leaf = cty.TupleVal(objs)
		}
	}
	return root.value()
}

func (n *node) value() cty.Value {
	if len(n.children) == 0 {
		if n.hasLeaf {
			return n.leaf
		}
		return cty.EmptyObjectVal
	}
	attrs := make(map[string]cty.Value, len(n.children))
	for name, ch := range n.children {
		attrs[name] = ch.value()
	}
	return cty.ObjectVal(attrs)
}
