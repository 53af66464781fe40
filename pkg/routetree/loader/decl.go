// Package loader builds definition trees from declaration files.
//
// A declaration file names a root route and a table of named routes.
// Children are declared inline or point at a named route with ref, which
// becomes a deferred child, so routes may refer to themselves:
//
//	root = "app"
//
//	[routes.app]
//	default = "devices"
//	container = "Nav"
//
//	[routes.app.children.devices]
//	component = "Devices"
//	initial_state = { showingRevoked = false }
//
//	[routes.app.children.devices.children.codePage]
//	component = "CodePage"
//
//	[routes.app.children.profile]
//	ref = "profile"
//
//	[routes.profile]
//	component = "Profile"
//
//	[routes.profile.children.profile]
//	ref = "profile"
//
// The same structure can be written in YAML.
package loader

import (
	"github.com/go-playground/validator/v10"
)

// File is the top level of a declaration file.
type File struct {
	Root   string           `toml:"root" yaml:"root" validate:"required"`
	Routes map[string]*Decl `toml:"routes" yaml:"routes" validate:"required,min=1,dive,keys,required,excludesall=/,endkeys,required"`
}

// Decl declares one route node.
type Decl struct {
	Default      string           `toml:"default" yaml:"default" validate:"excludesall=/"`
	Component    string           `toml:"component" yaml:"component"`
	Container    string           `toml:"container" yaml:"container"`
	Ref          string           `toml:"ref" yaml:"ref" validate:"excluded_with=Default Component Container Children"`
	Tags         map[string]any   `toml:"tags" yaml:"tags"`
	StaticProps  map[string]any   `toml:"static_props" yaml:"static_props"`
	InitialState map[string]any   `toml:"initial_state" yaml:"initial_state"`
	Children     map[string]*Decl `toml:"children" yaml:"children" validate:"dive,keys,required,excludesall=/,endkeys,required"`
}

var validate = validator.New()

// Validate checks the declaration structure. It does not resolve refs or
// components; Build does.
func (f *File) Validate() error {
	return validate.Struct(f)
}
