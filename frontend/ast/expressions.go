package ast

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
)

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*Apply)(nil)
)

func (e *Literal) Describe() string { return "int literal" }
func (e *Ident) Describe() string   { return "identifier" }
func (e *Apply) Describe() string   { return "application" }

// Literal is an integer literal, like 42
type Literal struct {
	Range
	Value int64
}

func (e *Literal) exprNode() {}

// Hash returns a hash value for the Literal, based on its structural characteristics
func (e *Literal) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Literal")
	arr = binary.LittleEndian.AppendUint64(arr, uint64(e.Value))
	_, _ = h.Write(arr)
	return h.Sum64()
}

// CanonicalSyntax returns the text the literal is printed as
func (e *Literal) CanonicalSyntax() string { return strconv.FormatInt(e.Value, 10) }

// Ident is a bare identifier, referring either to a local binding, a parameter,
// a top-level function or a builtin
type Ident struct {
	Range
	Name string
}

func (e *Ident) exprNode() {}

// Hash returns a hash value for the Ident, based on its structural characteristics
func (e *Ident) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Ident"))
	_, _ = h.Write([]byte(e.Name))
	return h.Sum64()
}

func (e *Ident) CanonicalSyntax() string { return e.Name }

// Apply is the application of Head to Args, written (head arg1 arg2 ...)
type Apply struct {
	Range
	Head Expr
	Args []Expr
}

func (e *Apply) exprNode() {}

// Hash returns a hash value for the Apply, based on its structural characteristics
func (e *Apply) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Apply")
	if e.Head != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Head.Hash())
	}
	for _, arg := range e.Args {
		arr = binary.LittleEndian.AppendUint64(arr, arg.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// AtomicExpr is implemented by expressions that print as a single token
type AtomicExpr interface {
	Expr
	CanonicalSyntax() string
}

var (
	_ AtomicExpr = (*Literal)(nil)
	_ AtomicExpr = (*Ident)(nil)
)
