// Package route implements the route tree: an immutable definition of
// every screen in a tabbed, hierarchical UI, a persistent state tree
// recording which screen is selected at each level, and the pure
// transitions between state trees.
//
// # Trees
//
// A DefNode lists the children legal at a node, the default child, the
// components able to render the node, and static props, initial state
// and tags. Children are either direct or deferred (Lazy); deferred
// children express screens that can open themselves again:
//
//	var profile *route.DefNode
//	profile = &route.DefNode{
//	    Component: "Profile",
//	    Children: map[route.Key]route.Child{
//	        "profile": route.Lazy(func() *route.DefNode { return profile }),
//	    },
//	}
//
// A StateNode mirrors a prefix of the definition tree. Selected is the
// child on the live path, or None at the leaf. Children that are not
// selected are kept, so leaving a tab and coming back restores it.
//
// # Transitions
//
// Every navigation operation is built on ApplySelectors and returns a new
// tree sharing the subtrees it did not change:
//
//	st, _ := route.InitialState(root)
//	st, err := route.NavigateTo(root, route.Keys("devices", "devicePage"), st)
//	st, err = route.NavigateUp(root, st)
//
// Callers keep the previous tree when a transition fails, or when
// CheckRouteState rejects its result.
package route
