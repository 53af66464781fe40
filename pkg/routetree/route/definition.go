package route

import "sort"

// DefNode describes one screen and the screens reachable from it.
//
// A DefNode is built once and shared by every state tree derived from it.
// Do not modify its fields or maps after the first navigation uses it.
type DefNode struct {
	DefaultSelected Key    // Child selected when no explicit path names one
	Component       any    // Rendered when this node is the leaf
	Container       any    // Wraps the rendered child when this node is not the leaf
	Tags            Values // Static metadata inherited by the leaf reached through this node
	StaticProps     Values // Merged under the props supplied by navigation
	InitialState    Values // Merged under the state stored in the state tree
	Children        map[Key]Child
}

// Child is a child definition, given either directly or through a
// resolver that is invoked at each traversal step.
type Child struct {
	node     *DefNode
	deferred func() *DefNode
}

// Node wraps a definition as a direct child.
func Node(d *DefNode) Child {
	return Child{node: d}
}

// Lazy wraps a resolver as a deferred child. Deferred children let a tree
// refer to itself (a profile screen that opens another profile) without
// building an infinite structure. The result is never cached.
func Lazy(fn func() *DefNode) Child {
	return Child{deferred: fn}
}

// IsDeferred reports whether the child is resolved lazily.
func (c Child) IsDeferred() bool {
	return c.deferred != nil
}

// Resolve returns the child definition, invoking the resolver if needed.
func (c Child) Resolve() *DefNode {
	if c.deferred != nil {
		return c.deferred()
	}
	return c.node
}

// Child resolves the definition registered under key.
func (d *DefNode) Child(key Key) (*DefNode, bool) {
	if d == nil {
		return nil, false
	}
	c, ok := d.Children[key]
	if !ok {
		return nil, false
	}
	def := c.Resolve()
	return def, def != nil
}

// HasChild reports whether key names a child without resolving it.
func (d *DefNode) HasChild(key Key) bool {
	if d == nil {
		return false
	}
	_, ok := d.Children[key]
	return ok
}

// ChildKeys returns the child keys in sorted order.
func (d *DefNode) ChildKeys() []Key {
	if d == nil {
		return nil
	}
	keys := make([]Key, 0, len(d.Children))
	for k := range d.Children {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// IsRenderable reports whether the node can be the rendered leaf.
func (d *DefNode) IsRenderable() bool {
	return d != nil && d.Component != nil
}

// Lookup resolves the definition at path, starting from d.
func (d *DefNode) Lookup(path Path) (*DefNode, error) {
	cur := d
	for i, key := range path {
		next, ok := cur.Child(key)
		if !ok {
			return nil, &InvalidRouteError{Path: path[:i].Clone(), Key: key}
		}
		cur = next
	}
	return cur, nil
}

// DefaultPath follows DefaultSelected from d until a node without one.
// Deferred cycles of defaults are cut after limit steps.
func (d *DefNode) DefaultPath(limit int) Path {
	path := Path{}
	cur := d
	for cur != nil && cur.DefaultSelected != None && len(path) < limit {
		path = append(path, cur.DefaultSelected)
		cur, _ = cur.Child(cur.DefaultSelected)
	}
	return path
}
