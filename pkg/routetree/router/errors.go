package router

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
)

// Sentinel errors for common conditions.
var (
	// ErrUnknownAction indicates an action type the reducer does not handle.
	ErrUnknownAction = errors.New("unknown action")

	// ErrNoDefinition indicates a navigation before any definition tree was installed,
	// or a SetRouteDef carrying none.
	ErrNoDefinition = errors.New("no route definition")

	// ErrSnapshotNotFound indicates a history entry that no longer exists.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// TransitionError reports an action that was rejected. The tree in place
// before the action stays installed.
//
// It unwraps to the cause, so route.IsInvalidRoute and
// route.IsStructuralViolation work on it.
type TransitionError struct {
	Action ActionType // Action that was rejected
	From   route.Path // Current path when the action arrived
	Err    error      // Underlying error
}

func (e *TransitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("routetree: %s rejected at %s: %v", e.Action, e.From, e.Err)
	}
	return fmt.Sprintf("routetree: %s rejected at %s", e.Action, e.From)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// IsRejected checks if an error is a rejected transition.
func IsRejected(err error) bool {
	var te *TransitionError
	return errors.As(err, &te)
}
