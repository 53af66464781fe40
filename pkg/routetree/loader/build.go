package loader

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
)

var (
	ErrUnknownRef       = errors.New("unknown route ref")
	ErrUnknownComponent = errors.New("unknown component")
)

// Registry maps component and container names used in declarations to the
// values placed in the definition tree.
type Registry map[string]any

// Register adds a named component or container.
func (r Registry) Register(name string, v any) Registry {
	r[name] = v
	return r
}

func (r Registry) resolve(name string) (any, error) {
	if name == "" {
		return nil, nil
	}
	if r == nil {
		return name, nil
	}
	v, ok := r[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownComponent, "%q", name)
	}
	return v, nil
}

// Build turns a validated declaration file into a definition tree. With a
// nil registry, component and container names are used as the values
// themselves.
func Build(f *File, reg Registry) (*route.DefNode, error) {
	if err := f.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid declaration")
	}

	b := &builder{file: f, reg: reg, named: make(map[string]*route.DefNode, len(f.Routes))}

	names := make([]string, 0, len(f.Routes))
	for name := range f.Routes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		decl := f.Routes[name]
		if decl.Ref != "" {
			return nil, errors.Errorf("route %q: named routes cannot be refs", name)
		}
		def, err := b.build(decl, name)
		if err != nil {
			return nil, err
		}
		b.named[name] = def
	}

	root, ok := b.named[f.Root]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownRef, "root %q", f.Root)
	}
	return root, nil
}

type builder struct {
	file  *File
	reg   Registry
	named map[string]*route.DefNode
}

func (b *builder) build(d *Decl, at string) (*route.DefNode, error) {
	component, err := b.reg.resolve(d.Component)
	if err != nil {
		return nil, errors.Wrapf(err, "route %s", at)
	}
	container, err := b.reg.resolve(d.Container)
	if err != nil {
		return nil, errors.Wrapf(err, "route %s", at)
	}

	def := &route.DefNode{
		DefaultSelected: route.Key(d.Default),
		Component:       component,
		Container:       container,
		Tags:            values(d.Tags),
		StaticProps:     values(d.StaticProps),
		InitialState:    values(d.InitialState),
	}
	if len(d.Children) == 0 {
		return def, nil
	}

	def.Children = make(map[route.Key]route.Child, len(d.Children))
	for key, child := range d.Children {
		childAt := at + "/" + key
		if child.Ref != "" {
			ref := child.Ref
			if _, ok := b.file.Routes[ref]; !ok {
				return nil, errors.Wrapf(ErrUnknownRef, "route %s: %q", childAt, ref)
			}
			def.Children[route.Key(key)] = route.Lazy(func() *route.DefNode {
				return b.named[ref]
			})
			continue
		}
		built, err := b.build(child, childAt)
		if err != nil {
			return nil, err
		}
		def.Children[route.Key(key)] = route.Node(built)
	}
	return def, nil
}

func values(m map[string]any) route.Values {
	if len(m) == 0 {
		return nil
	}
	return route.Values(m)
}
