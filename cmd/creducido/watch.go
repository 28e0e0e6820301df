package main

import (
	"github.com/spf13/cobra"

	"github.com/tinyrange/creducido/internal/driver"
	"github.com/tinyrange/creducido/internal/watch"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE...",
		Short: "Re-check files whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d := a.driver()
			results, err := d.Check(ctx, args)
			if err != nil {
				return err
			}
			// Failures are printed but keep the watch going.
			if err := a.summarize(results); err != nil && err != errDiagnostics {
				return err
			}

			w, err := watch.New(a.log)
			if err != nil {
				return err
			}
			defer w.Close()
			a.log.Info("watching files", "count", len(args))
			return w.Run(ctx, args, func(path string) {
				r, err := d.ParseFile(path)
				if err != nil {
					a.log.Warn("re-check failed", "path", path, "err", err)
					return
				}
				if err := a.summarize([]*driver.Result{r}); err != nil && err != errDiagnostics {
					a.log.Warn("report failed", "path", path, "err", err)
				}
			})
		},
	}
}
