package router

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/imdario/mergo"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/routetree/pkg/routetree/constants"
	"github.com/BrandonKowalski/routetree/pkg/routetree/internal"
	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
)

// Transition describes a snapshot change delivered to TransitionFuncs.
type Transition struct {
	From     Tree
	To       Tree
	Action   Action // Action applied, or the action being reverted when Undo is set
	Undo     bool   // The change came from Undo or Restore
	Revision uint64 // Revision of To
}

// TransitionFunc is called after each committed snapshot change.
// It runs after the router has released its lock and may dispatch again.
type TransitionFunc func(t Transition)

// Options configures a Router.
type Options struct {
	HistoryLimit int          // Previous snapshots kept for Undo; negative disables history
	Metrics      *Metrics     // Optional Prometheus counters
	Logger       *slog.Logger // Defaults to the internal routetree logger
}

// DefaultOptions returns the options New uses for zero fields.
func DefaultOptions() Options {
	return Options{
		HistoryLimit: constants.DefaultHistoryLimit,
	}
}

// Router owns the latest snapshot and applies actions to it one at a time.
//
// Reads (Tree, Path, View) never block and always see a complete snapshot.
// Dispatch is safe for concurrent use; actions are applied in the order
// they acquire the router.
type Router struct {
	mu          sync.Mutex
	current     *atomic.Pointer[Tree]
	revision    *atomic.Uint64
	transitions []TransitionFunc
	stack       *Stack
	metrics     *Metrics
	logger      *slog.Logger
}

// New creates a Router whose state starts at def's default path.
func New(def *route.DefNode, opts *Options) (*Router, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if err := mergo.Merge(&o, DefaultOptions()); err != nil {
			return nil, fmt.Errorf("router: options: %w", err)
		}
	}
	if o.Logger == nil {
		o.Logger = internal.GetInternalLogger()
	}

	tree, _, err := reduce(Tree{}, SetRouteDef(def), o.Logger)
	if err != nil {
		return nil, err
	}

	r := &Router{
		current:  atomic.NewPointer(&tree),
		revision: atomic.NewUint64(1),
		metrics:  o.Metrics,
		logger:   o.Logger,
	}
	if o.HistoryLimit >= 0 {
		r.stack = NewStack(o.HistoryLimit)
	}
	return r, nil
}

// OnTransition adds a function called after every committed change.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, fn)
	return r
}

// Tree returns the installed snapshot.
func (r *Router) Tree() Tree {
	return *r.current.Load()
}

// Path returns the current path.
func (r *Router) Path() route.Path {
	return r.Tree().Path()
}

// Revision increases with every installed snapshot.
func (r *Router) Revision() uint64 {
	return r.revision.Load()
}

// Dispatch applies a to the installed snapshot. When the action fails or
// its result does not pass the consistency check, the snapshot stays as
// it was and a *TransitionError is returned.
func (r *Router) Dispatch(a Action) error {
	r.mu.Lock()
	from := r.Tree()
	to, reset, err := reduce(from, a, r.logger)
	r.metrics.observe(a.Type, reset, err)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if to.Def == from.Def && to.State == from.State {
		r.mu.Unlock()
		return nil
	}

	if r.stack != nil {
		r.stack.Push(StackEntry{
			ID:       uuid.New(),
			Revision: r.revision.Load(),
			Action:   a,
			Tree:     from,
		})
	}
	change := r.install(from, to, a, false)
	listeners := r.transitions
	r.mu.Unlock()

	r.logger.Debug("Route transition",
		"action", a.Type.String(),
		"from", from.Path().String(),
		"to", to.Path().String(),
		"reset", reset)
	r.notify(listeners, change)
	return nil
}

// Undo reinstalls the snapshot in place before the last committed action.
// It returns false when there is nothing to undo.
func (r *Router) Undo() bool {
	r.mu.Lock()
	if r.stack == nil {
		r.mu.Unlock()
		return false
	}
	entry := r.stack.Pop()
	if entry == nil {
		r.mu.Unlock()
		return false
	}
	change := r.install(r.Tree(), entry.Tree, entry.Action, true)
	listeners := r.transitions
	r.mu.Unlock()

	r.notify(listeners, change)
	return true
}

// Restore reinstalls the snapshot recorded under id and forgets every
// snapshot recorded after it.
func (r *Router) Restore(id uuid.UUID) error {
	r.mu.Lock()
	if r.stack == nil {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	entry := r.stack.Truncate(r.stack.Find(id))
	if entry == nil {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	change := r.install(r.Tree(), entry.Tree, entry.Action, true)
	listeners := r.transitions
	r.mu.Unlock()

	r.notify(listeners, change)
	return nil
}

// History returns the recorded snapshots, oldest first.
func (r *Router) History() []StackEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stack == nil {
		return nil
	}
	return r.stack.Entries()
}

// View resolves the installed snapshot for rendering. Each frame's
// SetRouteState dispatches a SetRouteState action on this router.
func (r *Router) View() (*route.Render, error) {
	t := r.Tree()
	return route.Resolve(t.Def, t.State, func(path route.Path, partial route.Values) error {
		return r.Dispatch(SetRouteState(path, partial))
	})
}

// install must be called with r.mu held.
func (r *Router) install(from, to Tree, a Action, undo bool) Transition {
	r.current.Store(&to)
	return Transition{
		From:     from,
		To:       to,
		Action:   a,
		Undo:     undo,
		Revision: r.revision.Inc(),
	}
}

func (r *Router) notify(listeners []TransitionFunc, change Transition) {
	for _, fn := range listeners {
		fn(change)
	}
}
