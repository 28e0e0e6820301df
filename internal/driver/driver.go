// Package driver reads source files and runs the scanner and parser over
// them, one file or many at once.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tinyrange/creducido/internal/ast"
	"github.com/tinyrange/creducido/internal/diag"
	"github.com/tinyrange/creducido/internal/logging"
	"github.com/tinyrange/creducido/internal/parser"
)

// Result is the outcome of parsing one source unit.
type Result struct {
	Path  string
	Src   string
	File  *ast.File // nil after a syntax error
	Diags []diag.Diagnostic
}

// OK reports whether the unit parsed without any diagnostic.
func (r *Result) OK() bool { return r.File != nil && len(r.Diags) == 0 }

// ParseSource scans and parses src. Lexical diagnostics come first, followed
// by the syntax error if there was one.
func ParseSource(name, src string) *Result {
	r := &Result{Path: name, Src: src}
	var diags diag.List
	f, err := parser.ParseFile(name, src, &diags)
	r.Diags = diags
	var se *parser.SyntaxError
	switch {
	case err == nil:
		r.File = f
	case errors.As(err, &se):
		r.Diags = append(r.Diags, se.Diagnostic())
	default:
		r.Diags = append(r.Diags, diag.Diagnostic{
			Kind: diag.Syntax,
			Code: diag.ESyntax,
			Pos:  diag.Pos{File: name},
			Msg:  err.Error(),
		})
	}
	return r
}

// Driver parses files from disk.
type Driver struct {
	Log  *slog.Logger
	Jobs int // maximum files parsed at once, values below 1 mean 1
}

// ParseFile reads and parses a single file.
func (d *Driver) ParseFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	start := time.Now()
	r := ParseSource(path, string(data))
	d.log().Debug("parsed file",
		"path", path,
		"bytes", len(data),
		"diagnostics", len(r.Diags),
		"elapsed", time.Since(start))
	return r, nil
}

// Check parses every path concurrently and returns results in input order.
// The first read error cancels the remaining work and is returned.
func (d *Driver) Check(ctx context.Context, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(d.Jobs, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := d.ParseFile(path)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	d.log().Info("check finished", "files", len(paths), "failed", failed)
	return results, nil
}

func (d *Driver) log() *slog.Logger {
	if d.Log == nil {
		return logging.Discard()
	}
	return d.Log
}
