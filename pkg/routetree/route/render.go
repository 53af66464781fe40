package route

// StateSetter receives local-state updates requested by a rendered screen.
type StateSetter func(path Path, partial Values) error

// Frame is everything the rendering layer needs to instantiate one component.
type Frame struct {
	Path      Path   // Path of the node rendering this frame
	Selected  Key    // Child selected at this node; None for the leaf
	Component any    // The node's Container for wrapping frames, its Component for the leaf
	Container bool   // Whether the frame wraps the next one
	Props     Values // StaticProps with the node's props on top
	State     Values // InitialState with the node's stored state on top
	LeafTags  Values // Tags of the leaf definition, shared by every frame

	// SetRouteState requests a merge into this node's state. Nil when
	// the render was resolved without a setter.
	SetRouteState func(partial Values) error
}

// Render lists the frames for the live path, outermost container first and
// the leaf last. Nodes without a container contribute no frame.
type Render struct {
	Frames []Frame
}

// Leaf returns the innermost frame.
func (r *Render) Leaf() Frame {
	return r.Frames[len(r.Frames)-1]
}

// Path returns the path of the leaf.
func (r *Render) Path() Path {
	return r.Leaf().Path
}

// Modal reports whether the leaf is tagged as a modal.
func (r *Render) Modal() bool {
	v, _ := r.Leaf().LeafTags[TagModal].(bool)
	return v
}

// TagModal is the leaf tag marking screens shown as modals.
const TagModal = "modal"

// Resolve walks the live path of n and returns the frames to render.
// It fails with the same *StructuralViolation CheckRouteState reports.
func Resolve(def *DefNode, n *StateNode, setter StateSetter) (*Render, error) {
	var frames []Frame
	path := Path{}
	for {
		if def == nil {
			return nil, newViolation(MissingDefinition, path)
		}
		if n == nil {
			return nil, newViolation(MissingState, path)
		}

		if n.Selected == None {
			if !def.IsRenderable() {
				return nil, newViolation(MissingComponent, path)
			}
			frames = append(frames, newFrame(def, n, path, def.Component, false, setter))
			break
		}

		if def.Container != nil {
			frames = append(frames, newFrame(def, n, path, def.Container, true, setter))
		}
		path = path.Append(n.Selected)
		def, _ = def.Child(n.Selected)
		n = n.Children[n.Selected]
	}

	leafTags := def.Tags.Clone()
	if leafTags == nil {
		leafTags = Values{}
	}
	for i := range frames {
		frames[i].LeafTags = leafTags
	}
	return &Render{Frames: frames}, nil
}

func newFrame(def *DefNode, n *StateNode, path Path, component any, container bool, setter StateSetter) Frame {
	f := Frame{
		Path:      path,
		Selected:  n.Selected,
		Component: component,
		Container: container,
		Props:     def.StaticProps.Merge(n.Props),
		State:     def.InitialState.Merge(n.State),
	}
	if setter != nil {
		at := path.Clone()
		f.SetRouteState = func(partial Values) error {
			return setter(at, partial)
		}
	}
	return f
}
