package route

// CheckRouteState walks def and n together along the live path and returns
// the first *StructuralViolation found, or nil when n can be rendered.
//
// Subtrees off the live path are not inspected; they are checked again
// when navigation selects them.
func CheckRouteState(def *DefNode, n *StateNode) error {
	path := Path{}
	for {
		if def == nil {
			return newViolation(MissingDefinition, path)
		}
		if n == nil {
			return newViolation(MissingState, path)
		}
		if n.Selected == None {
			if !def.IsRenderable() {
				return newViolation(MissingComponent, path)
			}
			return nil
		}
		path = append(path, n.Selected)
		def, _ = def.Child(n.Selected)
		n = n.Children[n.Selected]
	}
}
