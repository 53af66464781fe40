package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/routetree/pkg/routetree/loader"
	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
	"github.com/BrandonKowalski/routetree/pkg/routetree/router"
)

// step is one entry of a replay script. Exactly one field is set:
//
//	- navigateTo: [devices, {selected: devicePage, id: d-42}]
//	- switchTo: [settings]
//	- navigateAppend: [codePage]
//	- navigateUp: true
//	- setRouteState: {path: /devices, state: {showingRevoked: true}}
//	- resetRoute: /devices
//	- setRouteDef: other-routes.toml
//	- undo: true
type step struct {
	SwitchTo       []any      `yaml:"switchTo"`
	NavigateTo     []any      `yaml:"navigateTo"`
	NavigateAppend []any      `yaml:"navigateAppend"`
	NavigateUp     bool       `yaml:"navigateUp"`
	SetRouteState  *stateStep `yaml:"setRouteState"`
	ResetRoute     *string    `yaml:"resetRoute"`
	SetRouteDef    string     `yaml:"setRouteDef"`
	Undo           bool       `yaml:"undo"`
}

type stateStep struct {
	Path  string         `yaml:"path"`
	State map[string]any `yaml:"state"`
}

func (s step) count() int {
	n := 0
	for _, set := range []bool{
		s.SwitchTo != nil,
		s.NavigateTo != nil,
		s.NavigateAppend != nil,
		s.NavigateUp,
		s.SetRouteState != nil,
		s.ResetRoute != nil,
		s.SetRouteDef != "",
		s.Undo,
	} {
		if set {
			n++
		}
	}
	return n
}

// action converts the step; relative definition paths resolve against dir.
func (s step) action(dir string) (router.Action, error) {
	switch {
	case s.SwitchTo != nil:
		return router.FromItems(router.ActionSwitchTo, s.SwitchTo...)
	case s.NavigateTo != nil:
		return router.FromItems(router.ActionNavigateTo, s.NavigateTo...)
	case s.NavigateAppend != nil:
		return router.FromItems(router.ActionNavigateAppend, s.NavigateAppend...)
	case s.NavigateUp:
		return router.NavigateUp(), nil
	case s.SetRouteState != nil:
		return router.SetRouteState(route.ParsePath(s.SetRouteState.Path), route.Values(s.SetRouteState.State)), nil
	case s.ResetRoute != nil:
		return router.ResetRoute(route.ParsePath(*s.ResetRoute)...), nil
	case s.SetRouteDef != "":
		path := s.SetRouteDef
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		def, err := loader.Load(path, nil)
		if err != nil {
			return router.Action{}, err
		}
		return router.SetRouteDef(def), nil
	}
	return router.Action{}, errors.New("empty step")
}

func readScript(path string) ([]step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	var steps []step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, errors.Wrapf(err, "decode script %s", path)
	}
	for i, s := range steps {
		if s.count() != 1 {
			return nil, errors.Errorf("script %s: step %d must name exactly one action", path, i+1)
		}
	}
	return steps, nil
}

func newReplayCmd(cfg *config) *cobra.Command {
	var (
		showTree bool
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "replay <routes.toml|routes.yaml> <script.yaml>",
		Short: "Apply a script of navigation actions and print each resulting path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loader.Load(args[0], nil)
			if err != nil {
				return err
			}
			steps, err := readScript(args[1])
			if err != nil {
				return err
			}
			l, err := cfg.labeler()
			if err != nil {
				return err
			}
			r, err := router.New(def, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", styles.Muted.Render(" 0 start"), l.FormatPath(r.Path()))

			rejected := 0
			dir := filepath.Dir(args[1])
			for i, s := range steps {
				num := styles.Muted.Render(fmt.Sprintf("%2d", i+1))

				if s.Undo {
					if r.Undo() {
						fmt.Fprintf(out, "%s undo %s\n", num, l.FormatPath(r.Path()))
					} else {
						fmt.Fprintf(out, "%s undo %s\n", num, styles.Error.Render("nothing to undo"))
					}
					continue
				}

				a, err := s.action(dir)
				if err != nil {
					return errors.Wrapf(err, "step %d", i+1)
				}
				if err := r.Dispatch(a); err != nil {
					rejected++
					fmt.Fprintf(out, "%s %s %s %v\n", num, a, styles.Error.Render("rejected:"), err)
					continue
				}
				fmt.Fprintf(out, "%s %s %s\n", num, a, l.FormatPath(r.Path()))
			}

			if showTree {
				fmt.Fprintln(out, renderState(r.Tree().State, l))
			}
			if strict && rejected > 0 {
				return errors.Errorf("%d of %d steps rejected", rejected, len(steps))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showTree, "tree", false, "print the final state tree")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any step is rejected")
	return cmd
}
