package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/routetree/pkg/routetree/loader"
	"github.com/BrandonKowalski/routetree/pkg/routetree/router"
)

func newCheckCmd(cfg *config) *cobra.Command {
	var showTree bool

	cmd := &cobra.Command{
		Use:   "check <routes.toml|routes.yaml>",
		Short: "Validate a declaration file and show where navigation starts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loader.Load(args[0], nil)
			if err != nil {
				return err
			}
			r, err := router.New(def, &router.Options{HistoryLimit: -1})
			if err != nil {
				return err
			}
			l, err := cfg.labeler()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", styles.Title.Render("ok"), args[0])
			fmt.Fprintf(out, "initial path: %s (%s)\n", r.Path(), l.FormatPath(r.Path()))
			if showTree {
				fmt.Fprintln(out, renderState(r.Tree().State, l))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showTree, "tree", false, "print the initial state tree")
	return cmd
}
