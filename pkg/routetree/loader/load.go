package loader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
)

// Format is a declaration file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown declaration format")

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%s", path)
	}
}

// Parse decodes a declaration file.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, errors.Wrap(err, "decode toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	return &f, nil
}

// ParseDef decodes, builds and validates a definition tree.
func ParseDef(data []byte, format Format, reg Registry) (*route.DefNode, error) {
	f, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	def, err := Build(f, reg)
	if err != nil {
		return nil, err
	}
	if err := route.ValidateDef(def); err != nil {
		return nil, errors.Wrap(err, "invalid definition")
	}
	return def, nil
}

// Load reads a declaration file and builds its definition tree.
func Load(path string, reg Registry) (*route.DefNode, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read declarations")
	}
	def, err := ParseDef(data, format, reg)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return def, nil
}
