package ast

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/cottand/zed/util"
)

// Node is the base interface for all AST nodes.
type Node interface {
	Positioner
	// Hash returns a hash of the structure of the node. Positions do not
	// take part in it, so a re-parsed node hashes like the original.
	Hash() uint64
	// Describe names the kind of node, for diagnostics
	Describe() string
}

// Expr is the interface for all expression nodes in the AST.
//
// The following expressions are supported:
//
//	Literal:  integer literal
//	Ident:    bare identifier
//	Apply:    application of a head to positional arguments, (head arg ...)
type Expr interface {
	Node
	exprNode() // Marker method to distinguish expressions
}

// Stmt is the interface for all statement nodes in the AST.
//
// The following statements are supported:
//
//	Return:  yields a value as the result of the enclosing function
//	Assign:  binds a name in the enclosing function's frame
//	Discard: evaluates an expression for its side effects
type Stmt interface {
	Node
	stmtNode() // Marker method to distinguish statements
}

var (
	_ Node = (*File)(nil)
	_ Node = (*Func)(nil)
	_ Node = (*Param)(nil)
)

// File represents a source file in the AST: an ordered list of function definitions.
type File struct {
	Range
	Funcs []*Func
}

func (f *File) Describe() string { return "file" }

// Hash returns a hash value for the File, based on its structural characteristics
func (f *File) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("File")
	for _, fn := range f.Funcs {
		arr = binary.LittleEndian.AppendUint64(arr, fn.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Lookup returns the function declared with name, if any.
// When a name is declared twice, the last declaration wins, like it does at run time.
func (f *File) Lookup(name string) (*Func, bool) {
	for fn := range util.Reverse(f.Funcs) {
		if fn.Name == name {
			return fn, true
		}
	}
	return nil, false
}

// Func represents a top-level function definition.
type Func struct {
	Range
	Name   string
	Params []Param
	Body   []Stmt
}

func (f *Func) Describe() string { return "function" }

// Hash returns a hash value for the Func, based on its structural characteristics
func (f *Func) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Func")
	_, _ = h.Write([]byte(f.Name))
	for i := range f.Params {
		arr = binary.LittleEndian.AppendUint64(arr, f.Params[i].Hash())
	}
	for _, stmt := range f.Body {
		if stmt != nil {
			arr = binary.LittleEndian.AppendUint64(arr, stmt.Hash())
		}
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// ParamNames returns the names of the parameters of f, in order
func (f *Func) ParamNames() []string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return names
}

// Param is a single parameter name of a Func
type Param struct {
	Range
	Name string
}

func (p *Param) Describe() string { return "parameter" }

func (p *Param) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Param"))
	_, _ = h.Write([]byte(p.Name))
	return h.Sum64()
}
