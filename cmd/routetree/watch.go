package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/routetree/pkg/routetree"
	"github.com/BrandonKowalski/routetree/pkg/routetree/loader"
	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
	"github.com/BrandonKowalski/routetree/pkg/routetree/router"
)

func newWatchCmd(cfg *config) *cobra.Command {
	var (
		start    string
		debounce = loader.DefaultWatcherOptions().Debounce
	)

	cmd := &cobra.Command{
		Use:   "watch <routes.toml|routes.yaml>",
		Short: "Follow edits to a declaration file, swapping definitions on every save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loader.Load(args[0], nil)
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
			if start != "" {
				if err := r.Dispatch(router.NavigateTo(route.PathSelectors(route.ParsePath(start))...)); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			r.OnTransition(func(t router.Transition) {
				note := ""
				if t.Action.Type == router.ActionSetRouteDef && !t.To.Path().Equal(t.From.Path()) {
					note = " " + styles.Error.Render("(reset)")
				}
				fmt.Fprintf(out, "%s -> %s%s\n", l.FormatPath(t.From.Path()), l.FormatPath(t.To.Path()), note)
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := routetree.WatchDefinitions(ctx, r, args[0], &loader.WatcherOptions{
				Debounce: debounce,
				OnError: func(err error) {
					fmt.Fprintf(out, "%s %v\n", styles.Error.Render("reload failed:"), err)
				},
			})
			if err != nil {
				return err
			}
			defer w.Stop()

			fmt.Fprintf(out, "watching %s at %s\n", args[0], l.FormatPath(r.Path()))
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "at", "", "path to navigate to before watching, e.g. /devices/codePage")
	cmd.Flags().DurationVar(&debounce, "debounce", debounce, "wait this long after the last write before reloading")
	return cmd
}
