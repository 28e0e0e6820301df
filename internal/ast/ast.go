package ast

import "github.com/tinyrange/creducido/internal/types"

// Node is implemented by every tree node.
type Node interface{ node() }

type File struct {
	Name  string
	Decls []Decl
}
func (*File) node() {}

type Decl interface {
	Node
	isDecl()
}

// FuncDecl is a function definition.
type FuncDecl struct {
	Header *FuncHeader
	Body   *BlockStmt
}
func (*FuncDecl) node()   {}
func (*FuncDecl) isDecl() {}

// FuncHeader is the signature of a definition. An empty Params is the
// "(void)" spelling.
type FuncHeader struct {
	Ret    types.Type
	Name   string
	Params []*Param
}
func (*FuncHeader) node() {}

// FuncProto is a prototype. Params may end with a single *Ellipsis.
type FuncProto struct {
	Ret    types.Type
	Name   string
	Params []ParamSpec
}
func (*FuncProto) node()   {}
func (*FuncProto) isDecl() {}

// VarDecl declares one or more variables of the same type.
type VarDecl struct {
	Typ   types.Type
	Names []string
}
func (*VarDecl) node()   {}
func (*VarDecl) isDecl() {}

type ParamSpec interface {
	Node
	isParamSpec()
}

type Param struct {
	Typ  types.Type
	Name string
}
func (*Param) node()        {}
func (*Param) isParamSpec() {}

// ParamPtr is a "char *name" prototype parameter; Typ is always char *.
type ParamPtr struct {
	Typ  types.Type
	Name string
}
func (*ParamPtr) node()        {}
func (*ParamPtr) isParamSpec() {}

type Ellipsis struct{}
func (*Ellipsis) node()        {}
func (*Ellipsis) isParamSpec() {}

type Stmt interface {
	Node
	isStmt()
}

type BlockStmt struct {
	Locals []*VarDecl
	Stmts  []Stmt
}
func (*BlockStmt) node()   {}
func (*BlockStmt) isStmt() {}

type ReturnStmt struct{ Expr Expr } // Expr is nil for a bare return
func (*ReturnStmt) node()   {}
func (*ReturnStmt) isStmt() {}

type ExprStmt struct{ X Expr }
func (*ExprStmt) node()   {}
func (*ExprStmt) isStmt() {}

type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // may be nil
}
func (*IfStmt) node()   {}
func (*IfStmt) isStmt() {}

type WhileStmt struct {
	Cond Expr
	Body Stmt
}
func (*WhileStmt) node()   {}
func (*WhileStmt) isStmt() {}

type Expr interface {
	Node
	isExpr()
}

type Ident struct{ Name string }
func (*Ident) node()   {}
func (*Ident) isExpr() {}

type IntLit struct{ Value int64 }
func (*IntLit) node()   {}
func (*IntLit) isExpr() {}

// CharLit holds the text between the quotes with \' and \\ resolved; any
// other escape is kept as written.
type CharLit struct{ Value string }
func (*CharLit) node()   {}
func (*CharLit) isExpr() {}

// StringLit holds the unescaped contents, quotes removed.
type StringLit struct{ Value string }
func (*StringLit) node()   {}
func (*StringLit) isExpr() {}

// AssignExpr is "Name = Value"; only plain identifiers are assignable.
type AssignExpr struct {
	Name  string
	Value Expr
}
func (*AssignExpr) node()   {}
func (*AssignExpr) isExpr() {}

type BinaryExpr struct {
	Op          BinOp
	Left, Right Expr
}
func (*BinaryExpr) node()   {}
func (*BinaryExpr) isExpr() {}

type BinOp int
const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

var binOpNames = [...]string{"+", "-", "*", "/", "==", "!=", "<", "<=", ">", ">="}

func (op BinOp) String() string {
	if op >= 0 && int(op) < len(binOpNames) {
		return binOpNames[op]
	}
	return "?"
}

type UnOp int
const (
	OpPos UnOp = iota
	OpNeg
)

func (op UnOp) String() string {
	switch op {
	case OpPos:
		return "+"
	case OpNeg:
		return "-"
	default:
		return "?"
	}
}

type UnaryExpr struct {
	Op UnOp
	X  Expr
}
func (*UnaryExpr) node()   {}
func (*UnaryExpr) isExpr() {}

type CalleeKind int
const (
	CalleeIdent CalleeKind = iota
	CalleePrintf
	CalleeScanf
)

// Callee names the target of a call. printf and scanf are keywords but
// callable like any function.
type Callee struct {
	Kind CalleeKind
	Name string
}

type CallExpr struct {
	Fn   Callee
	Args []Expr
}
func (*CallExpr) node()   {}
func (*CallExpr) isExpr() {}
