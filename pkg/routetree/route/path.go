package route

import (
	"fmt"
	"strings"
)

// Key names a child of a route node.
// The empty Key means "nothing selected": the node holding it is the active leaf.
type Key string

// None is the Key of a leaf.
const None Key = ""

// SelectedField is the map entry ToSelectorPath reads the key from.
const SelectedField = "selected"

// StateField is the map entry ToSelectorPath reads partial state from.
const StateField = "state"

// Path is an ordered sequence of keys from the root.
type Path []Key

// String renders the path rooted with a leading slash. The empty path renders as "/".
func (p Path) String() string {
	return FormatPath(p)
}

// Clone returns a copy of p that does not share its backing array.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Append returns a new path with keys added after p.
func (p Path) Append(keys ...Key) Path {
	out := make(Path, 0, len(p)+len(keys))
	out = append(out, p...)
	return append(out, keys...)
}

// Equal reports whether both paths name the same keys in the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// ParsePath splits a slash separated string into a Path. Empty segments are dropped.
func ParsePath(s string) Path {
	var p Path
	for _, part := range strings.Split(s, "/") {
		if part = strings.TrimSpace(part); part != "" {
			p = append(p, Key(part))
		}
	}
	return p
}

// FormatPath joins the keys with "/" behind a leading slash.
func FormatPath(p Path) string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, k := range p {
		b.WriteByte('/')
		b.WriteString(string(k))
	}
	return b.String()
}

// Selector is one path segment handed to ApplySelectors.
type Selector struct {
	Key Key // Child to select; None turns the node into a leaf

	// Props replaces the selected child's props when non-nil.
	// An empty non-nil map clears them.
	Props Values

	// State is merged into the selected child's state when non-nil.
	State Values

	// KeepSelection drills into Key without changing which child the
	// parent has selected.
	KeepSelection bool
}

// HasProps reports whether the selector carries props.
func (s Selector) HasProps() bool {
	return s.Props != nil
}

// Keys turns bare keys into selectors without props.
func Keys(keys ...Key) []Selector {
	out := make([]Selector, len(keys))
	for i, k := range keys {
		out[i] = Selector{Key: k}
	}
	return out
}

// Select builds a selector that passes props to the selected child.
func Select(key Key, props Values) Selector {
	if props == nil {
		props = Values{}
	}
	return Selector{Key: key, Props: props}
}

// Terminal is the selector that makes the node it reaches a leaf.
func Terminal() Selector {
	return Selector{Key: None}
}

// ToSelectorPath converts navigation items into selectors.
//
// An item is one of:
//   - string or Key: a bare key with no props
//   - Selector: used as is
//   - map[string]any: the "selected" entry is the key, a "state" map is
//     merged into the target's state, every other entry becomes props
//
// Map items with a key always produce non-nil props, so navigating with one
// replaces whatever the target was passed before. A map whose key is nil
// ends the path and may not carry props or state.
func ToSelectorPath(items ...any) ([]Selector, error) {
	out := make([]Selector, 0, len(items))
	for i, item := range items {
		sel, err := toSelector(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, sel)
	}
	return out, nil
}

func toSelector(item any) (Selector, error) {
	switch v := item.(type) {
	case string:
		return Selector{Key: Key(v)}, nil
	case Key:
		return Selector{Key: v}, nil
	case Selector:
		return v, nil
	case map[string]any:
		return selectorFromMap(v)
	case Values:
		return selectorFromMap(v)
	default:
		return Selector{}, fmt.Errorf("%w: unsupported item type %T", ErrInvalidSelector, item)
	}
}

func selectorFromMap(m map[string]any) (Selector, error) {
	raw, ok := m[SelectedField]
	if !ok {
		return Selector{}, fmt.Errorf("%w: missing %q", ErrInvalidSelector, SelectedField)
	}
	var key Key
	switch k := raw.(type) {
	case string:
		key = Key(k)
	case Key:
		key = k
	case nil:
		key = None
	default:
		return Selector{}, fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidSelector, SelectedField, raw)
	}
	var state Values
	if raw, ok := m[StateField]; ok {
		switch st := raw.(type) {
		case map[string]any:
			state = Values(st)
		case Values:
			state = st
		default:
			return Selector{}, fmt.Errorf("%w: %q must be a map, got %T", ErrInvalidSelector, StateField, raw)
		}
	}

	props := make(Values, len(m))
	for k, v := range m {
		if k != SelectedField && k != StateField {
			props[k] = v
		}
	}

	if key == None {
		if len(props) > 0 || state != nil {
			return Selector{}, fmt.Errorf("%w: props or state for an empty %q", ErrInvalidSelector, SelectedField)
		}
		return Terminal(), nil
	}
	return Selector{Key: key, Props: props, State: state.Clone()}, nil
}

// PathSelectors returns selectors for a plain path, dropping any props.
func PathSelectors(p Path) []Selector {
	return Keys(p...)
}

// CurrentPath walks from the root following the selected keys and
// returns them in order. It stops at the first leaf, or at a selected
// child that has no state node.
func CurrentPath(n *StateNode) Path {
	path := Path{}
	for n != nil && n.Selected != None {
		path = append(path, n.Selected)
		n = n.Children[n.Selected]
	}
	return path
}
