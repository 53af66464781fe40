package route

import "fmt"

// MaxDepth bounds how far ApplySelectors descends. Deferred children can
// make a chain of default selections endless; this cuts it off.
const MaxDepth = 128

// InitialState builds the state tree for the definition's default path.
func InitialState(def *DefNode) (*StateNode, error) {
	return ApplySelectors(def, nil, nil)
}

// ApplySelectors is the single transition primitive.
//
// Starting at n (or a fresh node selecting def.DefaultSelected when n is
// nil) it selects the head selector's key, descends into that child with
// the remaining selectors, and writes the child back. Once the selectors
// run out the walk keeps following the existing selections, filling in
// fresh nodes for children never visited, so the live path always ends
// in a leaf. A head selector's Props replace the child's props and its
// State is merged into the child's state.
//
// Selecting a key the definition does not have fails with an
// *InvalidRouteError. n is never modified.
func ApplySelectors(def *DefNode, sels []Selector, n *StateNode) (*StateNode, error) {
	return applySelectors(def, sels, n, Path{})
}

func applySelectors(def *DefNode, sels []Selector, existing *StateNode, at Path) (*StateNode, error) {
	if len(at) > MaxDepth {
		return nil, fmt.Errorf("%w: %s", ErrTooDeep, at)
	}

	node := existing
	if node == nil {
		node = newStateNode(def)
	}

	target := node.Selected
	var head *Selector
	var tail []Selector
	if len(sels) > 0 {
		head, tail = &sels[0], sels[1:]
		target = head.Key
		if !head.KeepSelection && node.Selected != head.Key {
			if node == existing {
				node = node.clone()
			}
			node.Selected = head.Key
		}
	}

	if target == None {
		if head != nil && (head.Props != nil || head.State != nil) {
			return nil, fmt.Errorf("%w: props or state for an empty key at %s", ErrInvalidSelector, at)
		}
		return node, nil
	}

	childDef, ok := def.Child(target)
	if !ok {
		return nil, &InvalidRouteError{Path: at.Clone(), Key: target}
	}

	prev := node.Children[target]
	child, err := applySelectors(childDef, tail, prev, at.Append(target))
	if err != nil {
		return nil, err
	}
	if head != nil && (head.Props != nil || head.State != nil) {
		if child == prev {
			child = child.clone()
		}
		if head.Props != nil {
			child.Props = head.Props.Clone()
		}
		if head.State != nil {
			child.State = child.State.Merge(head.State)
		}
	}

	if child == prev {
		return node, nil
	}
	return node.withChild(target, child), nil
}

// SwitchTo selects each named level and keeps whatever was selected below
// the last one.
func SwitchTo(def *DefNode, sels []Selector, n *StateNode) (*StateNode, error) {
	return ApplySelectors(def, sels, n)
}

// NavigateTo selects each named level and makes the last one the leaf.
func NavigateTo(def *DefNode, sels []Selector, n *StateNode) (*StateNode, error) {
	full := make([]Selector, 0, len(sels)+1)
	full = append(full, sels...)
	full = append(full, Terminal())
	return ApplySelectors(def, full, n)
}

// NavigateAppend navigates to the current path extended by sels.
func NavigateAppend(def *DefNode, sels []Selector, n *StateNode) (*StateNode, error) {
	full := PathSelectors(CurrentPath(n))
	full = append(full, sels...)
	return NavigateTo(def, full, n)
}

// NavigateUp makes the parent of the current leaf the new leaf and drops
// the state of the node it left. At the root leaf it changes nothing.
func NavigateUp(def *DefNode, n *StateNode) (*StateNode, error) {
	if n == nil {
		return InitialState(def)
	}
	path := CurrentPath(n)
	if len(path) == 0 {
		return n, nil
	}
	up, err := NavigateTo(def, PathSelectors(path[:len(path)-1]), n)
	if err != nil {
		return nil, err
	}
	return ClearSubtree(path, up), nil
}

// SetRouteState merges partial into the state of the node at path without
// changing any selection. Nodes on the way that were never visited are
// created with their defaults.
func SetRouteState(def *DefNode, path Path, partial Values, n *StateNode) (*StateNode, error) {
	if partial == nil {
		partial = Values{}
	}
	if n == nil {
		var err error
		if n, err = InitialState(def); err != nil {
			return nil, err
		}
	}
	if len(path) == 0 {
		c := n.clone()
		c.State = c.State.Merge(partial)
		return c, nil
	}
	sels := make([]Selector, len(path))
	for i, key := range path {
		sels[i] = Selector{Key: key, KeepSelection: true}
	}
	sels[len(sels)-1].State = partial
	return ApplySelectors(def, sels, n)
}

// ClearSubtree detaches the node at path. The next visit to it starts from
// its defaults. The empty path clears the whole tree and returns nil.
func ClearSubtree(path Path, n *StateNode) *StateNode {
	if len(path) == 0 || n == nil {
		return nil
	}
	child, ok := n.Children[path[0]]
	if !ok {
		return n
	}
	return n.withChild(path[0], ClearSubtree(path[1:], child))
}

// ResetRoute clears the subtree at path and rebuilds whatever part of the
// live path it removed from defaults. Resetting the root yields the
// initial state.
func ResetRoute(def *DefNode, path Path, n *StateNode) (*StateNode, error) {
	cleared := ClearSubtree(path, n)
	if cleared == nil {
		return InitialState(def)
	}
	return ApplySelectors(def, nil, cleared)
}
