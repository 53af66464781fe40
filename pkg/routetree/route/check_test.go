package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireViolation(t *testing.T, err error, kind ViolationKind, path Path) {
	t.Helper()
	v, ok := AsStructuralViolation(err)
	require.True(t, ok, "expected a structural violation, got %v", err)
	assert.Equal(t, kind, v.Kind)
	assert.Equal(t, path, v.Path)
}

func TestCheckRouteState_Valid(t *testing.T) {
	def := testTree()
	st, err := NavigateTo(def, Keys("search", "profile"), mustInitial(t, def))
	require.NoError(t, err)
	assert.NoError(t, CheckRouteState(def, st))
}

// TestCheckRouteState_MissingComponent verifies a leaf without a component is rejected.
func TestCheckRouteState_MissingComponent(t *testing.T) {
	def := testTree()
	st, err := NavigateTo(def, Keys("settings"), mustInitial(t, def))
	require.NoError(t, err)

	err = CheckRouteState(def, st)
	requireViolation(t, err, MissingComponent, Path{"settings"})
	assert.Contains(t, err.Error(), "/settings")
}

func TestCheckRouteState_ContainerOnlyRootLeaf(t *testing.T) {
	def := testTree()
	st, err := NavigateTo(def, nil, mustInitial(t, def))
	require.NoError(t, err)
	requireViolation(t, CheckRouteState(def, st), MissingComponent, Path{})
}

func TestCheckRouteState_MissingState(t *testing.T) {
	def := testTree()
	st := &StateNode{Selected: "devices"}
	requireViolation(t, CheckRouteState(def, st), MissingState, Path{"devices"})
	requireViolation(t, CheckRouteState(def, nil), MissingState, Path{})
}

func TestCheckRouteState_MissingDefinition(t *testing.T) {
	def := testTree()
	st := &StateNode{
		Selected: "ghost",
		Children: map[Key]*StateNode{"ghost": {}},
	}
	requireViolation(t, CheckRouteState(def, st), MissingDefinition, Path{"ghost"})
	assert.True(t, IsStructuralViolation(CheckRouteState(def, st)))
}

func TestValidateDef(t *testing.T) {
	assert.NoError(t, ValidateDef(testTree()))

	bad := &DefNode{
		DefaultSelected: "missing",
		Children: map[Key]Child{
			"":       Node(&DefNode{Component: "Empty"}),
			"nil":    Node(nil),
			"absent": Lazy(func() *DefNode { return nil }),
		},
	}
	err := ValidateDef(bad)
	require.Error(t, err)
	assert.True(t, IsInvalidRoute(err))
	assert.Contains(t, err.Error(), "empty child key")
	assert.Contains(t, err.Error(), `nil definition for "nil"`)
	assert.Contains(t, err.Error(), `nil definition for "absent"`)
}

func TestValidateDef_DefaultCycle(t *testing.T) {
	var loop *DefNode
	loop = &DefNode{
		DefaultSelected: "next",
		Children: map[Key]Child{
			"next": Lazy(func() *DefNode { return loop }),
		},
	}
	assert.ErrorIs(t, ValidateDef(loop), ErrTooDeep)
}

// freshProfile builds a new profile node on every call, the way a
// constructor-style resolver does.
func freshProfile() *DefNode {
	return &DefNode{
		Component: "Profile",
		Children: map[Key]Child{
			"profile":   Lazy(freshProfile),
			"followers": Lazy(freshProfile),
		},
	}
}

// TestValidateDef_FreshResolver verifies validation terminates when a deferred
// resolver never returns the same node twice.
func TestValidateDef_FreshResolver(t *testing.T) {
	root := &DefNode{
		DefaultSelected: "profile",
		Container:       "Nav",
		Children:        map[Key]Child{"profile": Lazy(freshProfile)},
	}
	assert.NoError(t, ValidateDef(root))

	st, err := NavigateTo(root, Keys("profile", "followers", "profile"), nil)
	require.NoError(t, err)
	assert.NoError(t, CheckRouteState(root, st))

	broken := func() *DefNode {
		return &DefNode{DefaultSelected: "missing", Component: "Broken"}
	}
	withBroken := &DefNode{
		Container: "Nav",
		Children: map[Key]Child{
			"profile": Lazy(func() *DefNode {
				p := freshProfile()
				p.Children["broken"] = Lazy(broken)
				return p
			}),
		},
	}
	assert.ErrorIs(t, ValidateDef(withBroken), ErrInvalidRoute)
}
