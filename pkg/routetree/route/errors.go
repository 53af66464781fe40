package route

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidRoute indicates a selector named a child key that the
	// definition tree does not have at that position.
	ErrInvalidRoute = errors.New("invalid route selected")

	// ErrInvalidSelector indicates a path item that cannot be turned into a Selector.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrTooDeep indicates a path, or a chain of default selections, longer than MaxDepth.
	ErrTooDeep = errors.New("route too deep")
)

// InvalidRouteError reports the position of a bad selector.
// It matches ErrInvalidRoute with errors.Is.
type InvalidRouteError struct {
	Path Path // Path of the node whose children were searched
	Key  Key  // Key that has no definition
}

func (e *InvalidRouteError) Error() string {
	return fmt.Sprintf("invalid route selected: %q at %s", e.Key, e.Path)
}

func (e *InvalidRouteError) Is(target error) bool {
	return target == ErrInvalidRoute
}

// ViolationKind classifies a structural violation.
type ViolationKind int

const (
	MissingDefinition ViolationKind = iota // A selected key has no definition
	MissingState                           // A definition on the live path has no state node
	MissingComponent                       // The leaf definition has nothing to render
)

func (k ViolationKind) String() string {
	switch k {
	case MissingDefinition:
		return "missing definition"
	case MissingState:
		return "missing state"
	case MissingComponent:
		return "missing component"
	default:
		return "unknown violation"
	}
}

// StructuralViolation is the first incompatibility found between a state
// tree and a definition tree.
type StructuralViolation struct {
	Kind ViolationKind
	Path Path
}

func (e *StructuralViolation) Error() string {
	return fmt.Sprintf("%s at path %s", e.Kind, e.Path)
}

func newViolation(kind ViolationKind, path Path) *StructuralViolation {
	return &StructuralViolation{Kind: kind, Path: path.Clone()}
}

// IsInvalidRoute checks if an error was caused by a selector with no matching definition.
func IsInvalidRoute(err error) bool {
	return errors.Is(err, ErrInvalidRoute)
}

// IsStructuralViolation checks if an error is a consistency check failure.
func IsStructuralViolation(err error) bool {
	var v *StructuralViolation
	return errors.As(err, &v)
}

// AsStructuralViolation extracts the violation from err, if there is one.
func AsStructuralViolation(err error) (*StructuralViolation, bool) {
	var v *StructuralViolation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
