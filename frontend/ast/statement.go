package ast

import (
	"encoding/binary"
	"hash/fnv"
)

var (
	_ Stmt = (*Return)(nil)
	_ Stmt = (*Assign)(nil)
	_ Stmt = (*Discard)(nil)
)

// Return yields Value as the result of the enclosing function.
// No statement after it is evaluated.
type Return struct {
	Range
	Value Expr
}

func (s *Return) stmtNode() {}

func (s *Return) Describe() string { return "return statement" }

// Hash returns a hash value for the Return, based on its structural characteristics
func (s *Return) Hash() uint64 {
	return hashStmt("Return", "", s.Value)
}

// Assign binds Name to the value of Value in the frame of the enclosing function
type Assign struct {
	Range
	Name  string
	Value Expr
}

func (s *Assign) stmtNode() {}

func (s *Assign) Describe() string { return "assignment" }

// Hash returns a hash value for the Assign, based on its structural characteristics
func (s *Assign) Hash() uint64 {
	return hashStmt("Assign", s.Name, s.Value)
}

// Discard evaluates Value and throws the result away
type Discard struct {
	Range
	Value Expr
}

func (s *Discard) stmtNode() {}

func (s *Discard) Describe() string { return "expression statement" }

// Hash returns a hash value for the Discard, based on its structural characteristics
func (s *Discard) Hash() uint64 {
	return hashStmt("Discard", "", s.Value)
}

func hashStmt(kind string, name string, value Expr) uint64 {
	h := fnv.New64a()
	arr := []byte(kind)
	_, _ = h.Write([]byte(name))
	if value != nil {
		arr = binary.LittleEndian.AppendUint64(arr, value.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// StmtValue returns the expression every statement carries
func StmtValue(stmt Stmt) Expr {
	switch stmt := stmt.(type) {
	case *Return:
		return stmt.Value
	case *Assign:
		return stmt.Value
	case *Discard:
		return stmt.Value
	default:
		panic("unhandled statement " + stmt.Describe())
	}
}
