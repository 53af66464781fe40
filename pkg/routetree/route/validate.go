package route

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// maxValidateNodes caps how many nodes ValidateDef inspects.
const maxValidateNodes = 1 << 14

// ValidateDef checks a definition tree on its own, before any state exists.
// Unlike CheckRouteState it reports every problem it finds:
//
//   - a DefaultSelected key that is not a child
//   - an empty child key
//   - a nil direct child, or a deferred child resolving to nil
//   - a chain of default selections that never reaches a leaf
//
// Each resolved node is visited once, and the walk stops descending at
// MaxDepth and after maxValidateNodes nodes, so trees that refer to
// themselves through deferred children terminate even when the resolver
// builds a fresh node on every call.
func ValidateDef(def *DefNode) error {
	if def == nil {
		return fmt.Errorf("%w: nil definition", ErrInvalidRoute)
	}

	var result *multierror.Error
	visited := make(map[*DefNode]bool)
	budget := maxValidateNodes

	var walk func(d *DefNode, at Path)
	walk = func(d *DefNode, at Path) {
		if visited[d] || budget == 0 {
			return
		}
		visited[d] = true
		budget--

		if d.DefaultSelected != None && !d.HasChild(d.DefaultSelected) {
			result = multierror.Append(result, &InvalidRouteError{Path: at.Clone(), Key: d.DefaultSelected})
		} else if len(d.DefaultPath(MaxDepth+1)) > MaxDepth {
			result = multierror.Append(result, fmt.Errorf("%w: default selections from %s never reach a leaf", ErrTooDeep, at))
		}
		for _, key := range d.ChildKeys() {
			child := d.Children[key]
			if key == None {
				result = multierror.Append(result, fmt.Errorf("empty child key at %s", at))
				continue
			}
			resolved := child.Resolve()
			if resolved == nil {
				result = multierror.Append(result, fmt.Errorf("nil definition for %q at %s", key, at))
				continue
			}
			if len(at) < MaxDepth {
				walk(resolved, at.Append(key))
			}
		}
	}
	walk(def, Path{})

	return result.ErrorOrNil()
}
