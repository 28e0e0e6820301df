package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinyrange/creducido/internal/driver"
)

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse files concurrently and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.driver().Check(cmd.Context(), args)
			if err != nil {
				return err
			}
			return a.summarize(results)
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "files parsed at once (default from config)")
	return cmd
}

// summarize prints diagnostics and one status line per result.
func (a *app) summarize(results []*driver.Result) error {
	var failed bool
	for _, r := range results {
		if err := a.report(r); err != nil {
			if err != errDiagnostics {
				return err
			}
			failed = true
			fmt.Fprintf(a.stdout, "FAIL %s (%d diagnostics)\n", r.Path, len(r.Diags))
			continue
		}
		fmt.Fprintf(a.stdout, "ok   %s\n", r.Path)
	}
	if failed {
		return errDiagnostics
	}
	return nil
}
