package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/routetree/pkg/routetree/labels"
	"github.com/BrandonKowalski/routetree/pkg/routetree/loader"
	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
)

func newPathsCmd(cfg *config) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "paths <routes.toml|routes.yaml>",
		Short: "List the paths a declaration file defines",
		Long: `List every path reachable in the definition tree, one per line.
Routes that refer back to themselves are expanded until --depth.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 0 {
				return fmt.Errorf("--depth must not be negative")
			}
			def, err := loader.Load(args[0], nil)
			if err != nil {
				return err
			}
			l, err := cfg.labeler()
			if err != nil {
				return err
			}
			listPaths(cmd.OutOrStdout(), def, route.Path{}, depth, l)
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 6, "deepest path to list")
	return cmd
}

func listPaths(out io.Writer, def *route.DefNode, at route.Path, depth int, l *labels.Labeler) {
	var notes []string
	if def.Component != nil {
		notes = append(notes, fmt.Sprintf("component=%v", def.Component))
	}
	if def.Container != nil {
		notes = append(notes, fmt.Sprintf("container=%v", def.Container))
	}
	if def.DefaultSelected != route.None {
		notes = append(notes, "default="+string(def.DefaultSelected))
	}
	if len(def.Tags) > 0 {
		notes = append(notes, fmt.Sprintf("tags=%v", map[string]any(def.Tags)))
	}

	name := at.String()
	if title := l.FormatPath(at); title != name {
		name += " (" + title + ")"
	}
	fmt.Fprintf(out, "%s %s\n", name, styles.Muted.Render(strings.Join(notes, " ")))

	if len(at) >= depth {
		return
	}
	for _, key := range def.ChildKeys() {
		child, ok := def.Child(key)
		if !ok {
			continue
		}
		listPaths(out, child, at.Append(key), depth, l)
	}
}
