package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
)

const appTOML = `
root = "app"

[routes.app]
default = "devices"
container = "Nav"

[routes.app.children.devices]
component = "Devices"
initial_state = { showingRevoked = false }

[routes.app.children.devices.children.codePage]
component = "CodePage"
tags = { modal = true }

[routes.app.children.profile]
ref = "profile"

[routes.profile]
component = "Profile"
static_props = { tab = "overview" }

[routes.profile.children.profile]
ref = "profile"
`

const appYAML = `
root: app
routes:
  app:
    default: devices
    container: Nav
    children:
      devices:
        component: Devices
        initial_state:
          showingRevoked: false
        children:
          codePage:
            component: CodePage
            tags:
              modal: true
      profile:
        ref: profile
  profile:
    component: Profile
    static_props:
      tab: overview
    children:
      profile:
        ref: profile
`

func TestParseDef_Formats(t *testing.T) {
	for _, tc := range []struct {
		format Format
		data   string
	}{
		{FormatTOML, appTOML},
		{FormatYAML, appYAML},
	} {
		t.Run(string(tc.format), func(t *testing.T) {
			def, err := ParseDef([]byte(tc.data), tc.format, nil)
			require.NoError(t, err)

			assert.Equal(t, route.Key("devices"), def.DefaultSelected)
			assert.Equal(t, "Nav", def.Container)
			assert.Nil(t, def.Component)

			devices, err := def.Lookup(route.Path{"devices"})
			require.NoError(t, err)
			assert.Equal(t, "Devices", devices.Component)
			assert.Equal(t, route.Values{"showingRevoked": false}, devices.InitialState)

			codePage, err := def.Lookup(route.Path{"devices", "codePage"})
			require.NoError(t, err)
			assert.Equal(t, true, codePage.Tags[route.TagModal])

			assert.True(t, def.Children["profile"].IsDeferred())
			deep, err := def.Lookup(route.Path{"profile", "profile", "profile"})
			require.NoError(t, err)
			assert.Equal(t, "Profile", deep.Component)
			assert.Equal(t, "overview", deep.StaticProps["tab"])
		})
	}
}

func TestParseDef_SelfReferenceNavigates(t *testing.T) {
	def, err := ParseDef([]byte(appTOML), FormatTOML, nil)
	require.NoError(t, err)

	state, err := route.InitialState(def)
	require.NoError(t, err)
	state, err = route.NavigateTo(def, route.Keys("profile", "profile", "profile"), state)
	require.NoError(t, err)

	assert.Equal(t, route.Path{"profile", "profile", "profile"}, route.CurrentPath(state))
	assert.NoError(t, route.CheckRouteState(def, state))
}

func TestBuild_Registry(t *testing.T) {
	type screen struct{ name string }
	nav, devices := &screen{"nav"}, &screen{"devices"}

	reg := Registry{}.
		Register("Nav", nav).
		Register("Devices", devices).
		Register("CodePage", &screen{"code"}).
		Register("Profile", &screen{"profile"})

	def, err := ParseDef([]byte(appTOML), FormatTOML, reg)
	require.NoError(t, err)
	assert.Same(t, nav, def.Container)

	d, _ := def.Child("devices")
	assert.Same(t, devices, d.Component)

	delete(reg, "CodePage")
	_, err = ParseDef([]byte(appTOML), FormatTOML, reg)
	assert.ErrorIs(t, err, ErrUnknownComponent)
	assert.Contains(t, err.Error(), "app/devices/codePage")
}

func TestParseDef_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		is   error
	}{
		{
			name: "missing root",
			data: `[routes.app]
component = "App"`,
		},
		{
			name: "unknown root",
			data: `root = "nope"
[routes.app]
component = "App"`,
			is: ErrUnknownRef,
		},
		{
			name: "unknown ref",
			data: `root = "app"
[routes.app.children.x]
ref = "ghost"`,
			is: ErrUnknownRef,
		},
		{
			name: "ref with children",
			data: `root = "app"
[routes.app.children.x]
ref = "app"
[routes.app.children.x.children.y]
component = "Y"`,
		},
		{
			name: "bad default",
			data: `root = "app"
[routes.app]
default = "missing"
component = "App"`,
			is: route.ErrInvalidRoute,
		},
		{
			name: "slash in key",
			data: `root = "app"
[routes.app.children."a/b"]
component = "X"`,
		},
		{
			name: "malformed",
			data: `root = `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDef([]byte(tt.data), FormatTOML, nil)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "routes.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(appTOML), 0o644))
	def, err := Load(tomlPath, nil)
	require.NoError(t, err)
	assert.Equal(t, route.Key("devices"), def.DefaultSelected)

	ymlPath := filepath.Join(dir, "routes.yml")
	require.NoError(t, os.WriteFile(ymlPath, []byte(appYAML), 0o644))
	_, err = Load(ymlPath, nil)
	require.NoError(t, err)

	_, err = Load(filepath.Join(dir, "routes.json"), nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "absent.toml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
