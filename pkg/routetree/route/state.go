package route

// StateNode records, for one level of the tree, which child is selected,
// what was passed to it and its screen-local state.
//
// State nodes are persistent values. Transitions return new nodes and share
// every subtree they did not touch, so a node must never be modified after
// it has been returned from this package.
type StateNode struct {
	Selected Key    // None when this node is the active leaf
	Props    Values // Props supplied by the most recent navigation into this node
	State    Values // Partial screen-local state, merged over the definition's InitialState when read
	Children map[Key]*StateNode
}

func newStateNode(def *DefNode) *StateNode {
	var selected Key
	if def != nil {
		selected = def.DefaultSelected
	}
	return &StateNode{Selected: selected}
}

// clone copies the node and its children map. Child nodes stay shared.
func (n *StateNode) clone() *StateNode {
	c := *n
	if n.Children != nil {
		c.Children = make(map[Key]*StateNode, len(n.Children))
		for k, v := range n.Children {
			c.Children[k] = v
		}
	}
	return &c
}

// withChild returns a copy of n with child stored under key. A nil child
// removes the entry.
func (n *StateNode) withChild(key Key, child *StateNode) *StateNode {
	c := n.clone()
	if child == nil {
		delete(c.Children, key)
		return c
	}
	if c.Children == nil {
		c.Children = make(map[Key]*StateNode, 1)
	}
	c.Children[key] = child
	return c
}

// Child returns the state recorded for key, visited or not.
func (n *StateNode) Child(key Key) (*StateNode, bool) {
	if n == nil {
		return nil, false
	}
	c, ok := n.Children[key]
	return c, ok && c != nil
}

// At returns the state node reached by following path from n.
func (n *StateNode) At(path Path) (*StateNode, bool) {
	cur := n
	for _, key := range path {
		next, ok := cur.Child(key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}

// IsLeaf reports whether the node has nothing selected.
func (n *StateNode) IsLeaf() bool {
	return n != nil && n.Selected == None
}

// Equal reports whether two trees hold the same selections, props and state.
// Shared subtrees compare equal without being walked.
func (n *StateNode) Equal(other *StateNode) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.Selected != other.Selected || !valuesEqual(n.Props, other.Props) || !valuesEqual(n.State, other.State) {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for k, c := range n.Children {
		oc, ok := other.Children[k]
		if !ok || !c.Equal(oc) {
			return false
		}
	}
	return true
}
