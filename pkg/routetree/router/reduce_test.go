package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
)

func mustTree(t *testing.T, def *route.DefNode) Tree {
	t.Helper()
	tree, err := NewTree(def)
	require.NoError(t, err)
	return tree
}

func mustReduce(t *testing.T, tree Tree, a Action) Tree {
	t.Helper()
	next, err := Reduce(tree, a)
	require.NoError(t, err)
	return next
}

func TestNewTree_DefaultPath(t *testing.T) {
	tree := mustTree(t, appDef(true))
	assert.Equal(t, route.Path{"devices"}, tree.Path())
}

func TestReduce_NavigationActions(t *testing.T) {
	tree := mustTree(t, appDef(true))

	tree = mustReduce(t, tree, NavigateTo(route.Keys("devices", "devicePage")...))
	assert.Equal(t, route.Path{"devices", "devicePage"}, tree.Path())

	tree = mustReduce(t, tree, SwitchTo(route.Keys("folders", "public")...))
	assert.Equal(t, route.Path{"folders", "public"}, tree.Path())

	tree = mustReduce(t, tree, SwitchTo(route.Keys("devices")...))
	assert.Equal(t, route.Path{"devices", "devicePage"}, tree.Path())

	tree = mustReduce(t, tree, NavigateUp())
	assert.Equal(t, route.Path{"devices"}, tree.Path())

	tree = mustReduce(t, tree, NavigateAppend(route.Keys("codePage")...))
	assert.Equal(t, route.Path{"devices", "codePage"}, tree.Path())

	tree = mustReduce(t, tree, SetRouteState(route.Path{"devices"}, route.Values{"showingRevoked": true}))
	devices, _ := tree.State.At(route.Path{"devices"})
	assert.Equal(t, route.Values{"showingRevoked": true}, devices.State)

	tree = mustReduce(t, tree, ResetRoute("devices"))
	assert.Equal(t, route.Path{"devices"}, tree.Path())
	devices, _ = tree.State.At(route.Path{"devices"})
	assert.Empty(t, devices.State)
}

// TestReduce_ConsistencyGate verifies a transition to an unrenderable screen is discarded.
func TestReduce_ConsistencyGate(t *testing.T) {
	before := mustTree(t, appDef(true))

	after, err := Reduce(before, NavigateTo(route.Keys("settings")...))
	require.Error(t, err)
	assert.True(t, IsRejected(err))
	assert.True(t, route.IsStructuralViolation(err))
	assert.Contains(t, err.Error(), "/settings")

	v, ok := route.AsStructuralViolation(err)
	require.True(t, ok)
	assert.Equal(t, route.MissingComponent, v.Kind)
	assert.Equal(t, route.Path{"settings"}, v.Path)

	assert.Same(t, before.State, after.State)
	assert.Same(t, before.Def, after.Def)
}

func TestReduce_InvalidRouteRejected(t *testing.T) {
	before := mustTree(t, appDef(true))

	after, err := Reduce(before, NavigateAppend(route.Keys("nowhere")...))
	require.Error(t, err)
	assert.True(t, route.IsInvalidRoute(err))
	assert.Same(t, before.State, after.State)

	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, ActionNavigateAppend, te.Action)
	assert.Equal(t, route.Path{"devices"}, te.From)
}

// TestReduce_HotSwapFallback verifies a definition swap that drops the current screen resets to defaults.
func TestReduce_HotSwapFallback(t *testing.T) {
	tree := mustTree(t, appDef(true))
	tree = mustReduce(t, tree, NavigateTo(route.Keys("devices", "codePage")...))
	require.Equal(t, route.Path{"devices", "codePage"}, tree.Path())

	replacement := appDef(false)
	swapped, err := Reduce(tree, SetRouteDef(replacement))
	require.NoError(t, err)
	assert.Same(t, replacement, swapped.Def)
	assert.Equal(t, route.Path{"devices"}, swapped.Path())
	assert.NoError(t, route.CheckRouteState(swapped.Def, swapped.State))
}

func TestReduce_HotSwapKeepsCompatibleState(t *testing.T) {
	tree := mustTree(t, appDef(true))
	tree = mustReduce(t, tree, NavigateTo(route.Keys("devices", "devicePage")...))
	tree = mustReduce(t, tree, SetRouteState(route.Path{"devices"}, route.Values{"showingRevoked": true}))

	swapped, err := Reduce(tree, SetRouteDef(appDef(false)))
	require.NoError(t, err)
	assert.Equal(t, route.Path{"devices", "devicePage"}, swapped.Path())
	devices, _ := swapped.State.At(route.Path{"devices"})
	assert.Equal(t, route.Values{"showingRevoked": true}, devices.State)
}

func TestReduce_Errors(t *testing.T) {
	tree := mustTree(t, appDef(true))

	_, err := Reduce(tree, Action{Type: ActionType(99)})
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = Reduce(Tree{}, NavigateUp())
	assert.ErrorIs(t, err, ErrNoDefinition)

	_, err = Reduce(tree, SetRouteDef(nil))
	assert.ErrorIs(t, err, ErrNoDefinition)
}

func TestActionType_Names(t *testing.T) {
	assert.Equal(t, "routeTree:switchTo", ActionSwitchTo.String())
	assert.Equal(t, "navigateUp", ActionNavigateUp.Name())

	for _, in := range []string{"resetRoute", "routeTree:resetRoute"} {
		got, err := ParseActionType(in)
		require.NoError(t, err)
		assert.Equal(t, ActionResetRoute, got)
	}

	_, err := ParseActionType("teleport")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestFromItems(t *testing.T) {
	a, err := FromItems(ActionNavigateTo, "devices", map[string]any{"selected": "devicePage", "id": 7})
	require.NoError(t, err)
	require.Len(t, a.Selectors, 2)
	assert.Equal(t, route.Values{"id": 7}, a.Selectors[1].Props)
	assert.Equal(t, "routeTree:navigateTo /devices/devicePage", a.String())

	_, err = FromItems(ActionNavigateUp, "devices")
	assert.Error(t, err)
}
