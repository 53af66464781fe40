package routetree

import (
	"context"

	"github.com/BrandonKowalski/routetree/pkg/routetree/internal"
	"github.com/BrandonKowalski/routetree/pkg/routetree/loader"
	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
	"github.com/BrandonKowalski/routetree/pkg/routetree/router"
)

// WatchDefinitions hot-swaps r's definitions whenever the declaration file
// at path changes. A swap that cannot keep the current path resets to the
// new defaults; see router.SetRouteDef. The watcher stops with ctx or Stop.
func WatchDefinitions(ctx context.Context, r *router.Router, path string, opts *loader.WatcherOptions) (*loader.Watcher, error) {
	logger := internal.GetInternalLogger()
	if opts != nil && opts.Logger != nil {
		logger = opts.Logger
	}

	w, err := loader.NewWatcher(path, func(def *route.DefNode) {
		if err := r.Dispatch(router.SetRouteDef(def)); err != nil {
			logger.Error("definition swap rejected", "path", path, "error", err)
			return
		}
		logger.Debug("definitions swapped", "path", path, "route", r.Path().String())
	}, opts)
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return w, nil
}
