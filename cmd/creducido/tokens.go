package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tinyrange/creducido/internal/diag"
	"github.com/tinyrange/creducido/internal/driver"
	"github.com/tinyrange/creducido/internal/lexer"
)

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			src := string(data)
			var diags diag.List
			lx := lexer.New(src, &diags)
			lx.SetFile(path)
			n := 0
			for tok := range lx.Tokens() {
				lex := tok.Lex
				if tok.Type == lexer.INT {
					lex = strconv.FormatInt(tok.Val, 10)
				}
				pos := fmt.Sprintf("%d:%d", tok.Line, tok.Col)
				if _, err := fmt.Fprintf(a.stdout, "%-8s %-18s %s\n", pos, tok.Type, lex); err != nil {
					return err
				}
				n++
			}
			a.log.Debug("scanned file", "path", path, "tokens", n, "diagnostics", len(diags))
			return a.report(&driver.Result{Path: path, Src: src, Diags: diags})
		},
	}
}
