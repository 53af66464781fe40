package route

import "reflect"

// Values holds props, screen-local state, tags, static props and initial state.
// A Values reachable from a DefNode or a StateNode is never modified in place.
type Values map[string]any

// Merge returns a new map with over layered on top of v.
// The merge is shallow: a key present in over replaces the whole value in v.
func (v Values) Merge(over Values) Values {
	out := make(Values, len(v)+len(over))
	for k, x := range v {
		out[k] = x
	}
	for k, x := range over {
		out[k] = x
	}
	return out
}

// Clone returns a shallow copy of v. Cloning nil yields nil.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	return v.Merge(nil)
}

// Get returns the value stored under key.
func (v Values) Get(key string) (any, bool) {
	x, ok := v[key]
	return x, ok
}

func valuesEqual(a, b Values) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
