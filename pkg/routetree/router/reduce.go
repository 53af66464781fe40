package router

import (
	"log/slog"

	"github.com/BrandonKowalski/routetree/pkg/routetree/internal"
	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
)

// Tree is one snapshot: the definition tree and the state tree that is valid
// against it. Trees are values; a Tree returned from this package is never
// modified afterwards.
type Tree struct {
	Def   *route.DefNode
	State *route.StateNode
}

// Path returns the current path of the snapshot.
func (t Tree) Path() route.Path {
	return route.CurrentPath(t.State)
}

// NewTree builds the initial snapshot for def and checks it.
func NewTree(def *route.DefNode) (Tree, error) {
	return Reduce(Tree{}, SetRouteDef(def))
}

// Reduce applies a to t and returns the new snapshot.
//
// The result is checked with route.CheckRouteState before it is returned.
// On any failure Reduce returns t itself together with a *TransitionError,
// so callers can install the returned tree unconditionally.
func Reduce(t Tree, a Action) (Tree, error) {
	next, _, err := reduce(t, a, internal.GetInternalLogger())
	return next, err
}

// reduce also reports whether a SetRouteDef fell back to a full reset.
func reduce(t Tree, a Action, logger *slog.Logger) (Tree, bool, error) {
	next, reset, err := apply(t, a, logger)
	if err == nil {
		err = route.CheckRouteState(next.Def, next.State)
	}
	if err != nil {
		logger.Debug("Rejected route transition",
			"action", a.Type.String(),
			"path", t.Path().String(),
			"error", err)
		return t, false, &TransitionError{Action: a.Type, From: t.Path(), Err: err}
	}
	return next, reset, nil
}

func apply(t Tree, a Action, logger *slog.Logger) (Tree, bool, error) {
	if a.Type == ActionSetRouteDef {
		return swapDef(t, a.Def, logger)
	}
	if t.Def == nil {
		return t, false, ErrNoDefinition
	}

	var st *route.StateNode
	var err error
	switch a.Type {
	case ActionSwitchTo:
		st, err = route.SwitchTo(t.Def, a.Selectors, t.State)
	case ActionNavigateTo:
		st, err = route.NavigateTo(t.Def, a.Selectors, t.State)
	case ActionNavigateAppend:
		st, err = route.NavigateAppend(t.Def, a.Selectors, t.State)
	case ActionNavigateUp:
		st, err = route.NavigateUp(t.Def, t.State)
	case ActionSetRouteState:
		st, err = route.SetRouteState(t.Def, a.Path, a.PartialState, t.State)
	case ActionResetRoute:
		st, err = route.ResetRoute(t.Def, a.Path, t.State)
	default:
		return t, false, ErrUnknownAction
	}
	if err != nil {
		return t, false, err
	}
	return Tree{Def: t.Def, State: st}, false, nil
}

// swapDef renavigates the current path against a new definition tree. When
// the path no longer exists, or no longer renders, the state is rebuilt
// from the new tree's defaults.
func swapDef(t Tree, def *route.DefNode, logger *slog.Logger) (Tree, bool, error) {
	if def == nil {
		return t, false, ErrNoDefinition
	}

	path := t.Path()
	st, err := route.ApplySelectors(def, route.PathSelectors(path), t.State)
	if err == nil {
		err = route.CheckRouteState(def, st)
	}
	if err == nil {
		return Tree{Def: def, State: st}, false, nil
	}
	if !route.IsInvalidRoute(err) && !route.IsStructuralViolation(err) {
		return t, false, err
	}

	if t.State != nil {
		logger.Warn("New route tree mismatches current state. Resetting route state.",
			"path", path.String(),
			"error", err)
	}
	st, err = route.InitialState(def)
	if err != nil {
		return t, false, err
	}
	return Tree{Def: def, State: st}, t.State != nil, nil
}
