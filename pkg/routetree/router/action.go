package router

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
)

// ActionType identifies a navigation action.
type ActionType int

const (
	ActionSetRouteDef    ActionType = iota // Replace the definition tree
	ActionSwitchTo                         // Select levels, keep the subpath below them
	ActionNavigateTo                       // Navigate to an absolute path
	ActionNavigateAppend                   // Navigate relative to the current path
	ActionNavigateUp                       // Go to the parent of the current leaf
	ActionSetRouteState                    // Merge into a node's local state
	ActionResetRoute                       // Clear a subtree
)

// ActionPrefix namespaces the wire names of actions.
const ActionPrefix = "routeTree:"

var actionNames = map[ActionType]string{
	ActionSetRouteDef:    "setRouteDef",
	ActionSwitchTo:       "switchTo",
	ActionNavigateTo:     "navigateTo",
	ActionNavigateAppend: "navigateAppend",
	ActionNavigateUp:     "navigateUp",
	ActionSetRouteState:  "setRouteState",
	ActionResetRoute:     "resetRoute",
}

// Name returns the bare action name, e.g. "switchTo".
func (t ActionType) Name() string {
	if n, ok := actionNames[t]; ok {
		return n
	}
	return "unknown"
}

// String returns the wire name, e.g. "routeTree:switchTo".
func (t ActionType) String() string {
	return ActionPrefix + t.Name()
}

// ParseActionType accepts a bare or prefixed action name.
func ParseActionType(s string) (ActionType, error) {
	name := strings.TrimPrefix(strings.TrimSpace(s), ActionPrefix)
	for t, n := range actionNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Action is one navigation request from the dispatch layer.
// Only the fields used by its Type are read.
type Action struct {
	Type ActionType

	Def          *route.DefNode   // SetRouteDef
	Selectors    []route.Selector // SwitchTo, NavigateTo, NavigateAppend
	Path         route.Path       // SetRouteState, ResetRoute
	PartialState route.Values     // SetRouteState
}

func (a Action) String() string {
	switch a.Type {
	case ActionSwitchTo, ActionNavigateTo, ActionNavigateAppend:
		keys := make(route.Path, len(a.Selectors))
		for i, s := range a.Selectors {
			keys[i] = s.Key
		}
		return fmt.Sprintf("%s %s", a.Type, keys)
	case ActionSetRouteState, ActionResetRoute:
		return fmt.Sprintf("%s %s", a.Type, a.Path)
	default:
		return a.Type.String()
	}
}

// SetRouteDef replaces the definition tree, renavigating the current path.
func SetRouteDef(def *route.DefNode) Action {
	return Action{Type: ActionSetRouteDef, Def: def}
}

// SwitchTo switches to a parent path and keeps whatever was selected below it.
// SwitchTo("settings") shows the settings tab as it was last left.
func SwitchTo(sels ...route.Selector) Action {
	return Action{Type: ActionSwitchTo, Selectors: sels}
}

// NavigateTo navigates to a new absolute path.
func NavigateTo(sels ...route.Selector) Action {
	return Action{Type: ActionNavigateTo, Selectors: sels}
}

// NavigateAppend navigates to a path relative to the current path.
func NavigateAppend(sels ...route.Selector) Action {
	return Action{Type: ActionNavigateAppend, Selectors: sels}
}

// NavigateUp navigates one step up from the current path.
func NavigateUp() Action {
	return Action{Type: ActionNavigateUp}
}

// SetRouteState updates the state of the route at path.
func SetRouteState(path route.Path, partial route.Values) Action {
	return Action{Type: ActionSetRouteState, Path: path, PartialState: partial}
}

// ResetRoute resets the props and state of a subtree.
func ResetRoute(path ...route.Key) Action {
	return Action{Type: ActionResetRoute, Path: path}
}

// FromItems builds a SwitchTo, NavigateTo or NavigateAppend action from
// loosely typed path items. See route.ToSelectorPath for the item forms.
func FromItems(t ActionType, items ...any) (Action, error) {
	switch t {
	case ActionSwitchTo, ActionNavigateTo, ActionNavigateAppend:
	default:
		return Action{}, fmt.Errorf("%s does not take a selector path", t)
	}
	sels, err := route.ToSelectorPath(items...)
	if err != nil {
		return Action{}, err
	}
	return Action{Type: t, Selectors: sels}, nil
}
