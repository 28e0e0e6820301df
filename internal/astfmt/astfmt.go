// Package astfmt renders a parsed file as an indented text tree, YAML or
// JSON for inspection by humans and tools.
package astfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tinyrange/creducido/internal/ast"
)

type Format int

const (
	FormatText Format = iota
	FormatYAML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts "text", "tree", "yaml", "yml" and "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "tree", "":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown output format %q", s)
	}
}

// Tree is a generic view of an AST node.
type Tree struct {
	Kind     string  `yaml:"kind" json:"kind"`
	Role     string  `yaml:"role,omitempty" json:"role,omitempty"`
	Label    string  `yaml:"label,omitempty" json:"label,omitempty"`
	Children []*Tree `yaml:"children,omitempty" json:"children,omitempty"`
}

func leaf(kind, label string) *Tree { return &Tree{Kind: kind, Label: label} }

func (t *Tree) add(role string, c *Tree) {
	if c == nil {
		return
	}
	c.Role = role
	t.Children = append(t.Children, c)
}

// Build converts n and everything below it.
func Build(n ast.Node) *Tree {
	switch n := n.(type) {
	case nil:
		return nil
	case *ast.File:
		t := &Tree{Kind: "File", Label: n.Name}
		for _, d := range n.Decls {
			t.add("", Build(d))
		}
		return t
	case *ast.FuncDecl:
		t := &Tree{Kind: "FuncDecl", Label: n.Header.Name}
		t.add("header", Build(n.Header))
		t.add("body", Build(n.Body))
		return t
	case *ast.FuncHeader:
		t := &Tree{Kind: "FuncHeader", Label: n.Ret.String() + " " + n.Name}
		for _, p := range n.Params {
			t.add("param", Build(p))
		}
		return t
	case *ast.FuncProto:
		t := &Tree{Kind: "FuncProto", Label: n.Ret.String() + " " + n.Name}
		for _, p := range n.Params {
			t.add("param", Build(p))
		}
		return t
	case *ast.VarDecl:
		return leaf("VarDecl", n.Typ.String()+" "+strings.Join(n.Names, ", "))
	case *ast.Param:
		return leaf("Param", n.Typ.String()+" "+n.Name)
	case *ast.ParamPtr:
		return leaf("ParamPtr", n.Typ.String()+n.Name)
	case *ast.Ellipsis:
		return leaf("Ellipsis", "...")
	case *ast.BlockStmt:
		t := &Tree{Kind: "Block"}
		for _, v := range n.Locals {
			t.add("local", Build(v))
		}
		for _, s := range n.Stmts {
			t.add("", Build(s))
		}
		return t
	case *ast.ExprStmt:
		t := &Tree{Kind: "ExprStmt"}
		t.add("", Build(n.X))
		return t
	case *ast.ReturnStmt:
		t := &Tree{Kind: "Return"}
		if n.Expr != nil {
			t.add("", Build(n.Expr))
		}
		return t
	case *ast.WhileStmt:
		t := &Tree{Kind: "While"}
		t.add("cond", Build(n.Cond))
		t.add("body", Build(n.Body))
		return t
	case *ast.IfStmt:
		t := &Tree{Kind: "If"}
		t.add("cond", Build(n.Cond))
		t.add("then", Build(n.Then))
		if n.Else != nil {
			t.add("else", Build(n.Else))
		}
		return t
	case *ast.AssignExpr:
		t := &Tree{Kind: "Assign", Label: n.Name}
		t.add("", Build(n.Value))
		return t
	case *ast.BinaryExpr:
		t := &Tree{Kind: "BinaryOp", Label: n.Op.String()}
		t.add("", Build(n.Left))
		t.add("", Build(n.Right))
		return t
	case *ast.UnaryExpr:
		t := &Tree{Kind: "UnaryOp", Label: n.Op.String()}
		t.add("", Build(n.X))
		return t
	case *ast.Ident:
		return leaf("Ident", n.Name)
	case *ast.IntLit:
		return leaf("IntLit", strconv.FormatInt(n.Value, 10))
	case *ast.CharLit:
		return leaf("CharLit", strconv.Quote(n.Value))
	case *ast.StringLit:
		return leaf("StringLit", strconv.Quote(n.Value))
	case *ast.CallExpr:
		t := &Tree{Kind: "Call", Label: n.Fn.Name}
		for _, a := range n.Args {
			t.add("arg", Build(a))
		}
		return t
	default:
		panic(fmt.Sprintf("astfmt: unexpected node type %T", n))
	}
}

// Encode writes f to w in the given format.
func Encode(w io.Writer, f *ast.File, format Format) error {
	t := Build(f)
	switch format {
	case FormatText:
		return writeText(w, t, 0)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %v", format)
	}
}

func writeText(w io.Writer, t *Tree, depth int) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	if t.Role != "" {
		b.WriteString(t.Role)
		b.WriteString(": ")
	}
	b.WriteString(t.Kind)
	if t.Label != "" {
		b.WriteByte(' ')
		b.WriteString(t.Label)
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	for _, c := range t.Children {
		if err := writeText(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
