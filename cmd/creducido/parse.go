package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyrange/creducido/internal/astfmt"
	"github.com/tinyrange/creducido/internal/driver"
)

func (a *app) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := astfmt.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			r := driver.ParseSource(args[0], string(data))
			if r.File != nil {
				if err := astfmt.Encode(a.stdout, r.File, format); err != nil {
					return err
				}
			}
			return a.report(r)
		},
	}
	cmd.Flags().StringP("format", "f", "text", "output format: text, yaml, json")
	return cmd
}
