// Package router applies navigation actions to route trees.
//
// Reduce is the pure reducer: one snapshot and one action in, one snapshot
// out. Every result is checked against the definition tree before it is
// returned; a rejected action leaves the previous snapshot in place.
// Router wraps Reduce for an application shell that needs to own the
// latest snapshot, keep history and tell the rendering layer about changes.
//
// # Basic Usage
//
//	r, err := router.New(routes, nil)
//	if err != nil {
//	    return err
//	}
//
//	r.OnTransition(func(t router.Transition) {
//	    view, err := r.View()
//	    if err != nil {
//	        return
//	    }
//	    render(view)
//	})
//
//	// Switch tabs, keeping whatever was open inside the tab
//	_ = r.Dispatch(router.SwitchTo(route.Keys("settings")...))
//
//	// Open a screen with props
//	_ = r.Dispatch(router.NavigateAppend(route.Select("devicePage", route.Values{"id": id})))
//
//	// Back out of it
//	_ = r.Dispatch(router.NavigateUp())
//
// # Definition Reloads
//
// Dispatching SetRouteDef installs a new definition tree and renavigates
// the current path against it. When the path no longer exists the state is
// rebuilt from the new tree's defaults and a warning is logged. This is
// the only failure the reducer recovers from by itself.
//
// # History
//
// Each committed action records the snapshot it replaced. Undo steps back
// one action, Restore jumps back to a recorded snapshot. Snapshots share
// structure, so history costs little memory.
package router
