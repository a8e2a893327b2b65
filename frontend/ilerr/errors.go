package ilerr

import (
	"errors"
	"fmt"
	"github.com/cottand/zed/frontend/ast"
	"go/token"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None  ErrCode = iota
	Parse ErrCode = iota
	UndefinedVariable
	UnresolvedType
	ConflictingArity
	UnboundName
	NotCallable
	ArityMismatch
	MissingEntry
	BadOperand
	DivisionByZero
	CallDepthExceeded
)

type IleError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) IleError
	getStack() []byte
}

func FormatWithCode(e IleError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// Source gives access to the text errors point into
type Source interface {
	FileSet() *token.FileSet
	Source() []byte
}

// FormatWithCodeAndSource formats e like FormatWithCode, prefixed by its
// position in src and followed by the offending line of source
func FormatWithCodeAndSource(e IleError, src Source) string {
	formatted := FormatWithCode(e)
	if src == nil || !e.Pos().IsValid() {
		return formatted
	}
	pos := src.FileSet().Position(e.Pos())
	if !pos.IsValid() {
		return formatted
	}
	sb := &strings.Builder{}
	sb.WriteString(fmt.Sprintf("%s: %s", pos, formatted))
	lines := strings.Split(string(src.Source()), "\n")
	if pos.Line-1 < len(lines) {
		line := strings.ReplaceAll(lines[pos.Line-1], "\t", " ")
		sb.WriteString("\n    ")
		sb.WriteString(line)
		sb.WriteString("\n    ")
		sb.WriteString(strings.Repeat(" ", max(pos.Column-1, 0)))
		sb.WriteString("^")
	}
	return sb.String()
}

func New[E IleError](err E) IleError {
	return err.withStack(debug.Stack())
}

// Is reports whether err, or any error it wraps, is an IleError with the given code
func Is(err error, code ErrCode) bool {
	var asIle IleError
	return errors.As(err, &asIle) && asIle.Code() == code
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) Unwrap() error    { return e.From }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewParse struct {
	ast.Positioner
	ParserMessage string
	Hint          string
	stack         []byte
}

func (e NewParse) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s (%s)", e.ParserMessage, e.Hint)
	}
	return e.ParserMessage
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUndefinedVariable struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedVariable) Code() ErrCode { return UndefinedVariable }
func (e NewUndefinedVariable) Error() string {
	return fmt.Sprintf("variable '%s' is not defined", e.Name)
}
func (e NewUndefinedVariable) getStack() []byte { return e.stack }
func (e NewUndefinedVariable) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

// NewUnresolvedType is reported for a declaration whose type still
// contains unification variables once inference is over
type NewUnresolvedType struct {
	ast.Positioner
	Name  string
	Vars  []string
	stack []byte
}

func (e NewUnresolvedType) Code() ErrCode { return UnresolvedType }
func (e NewUnresolvedType) Error() string {
	return fmt.Sprintf("type of '%s' could not be fully inferred (free: %s)", e.Name, strings.Join(e.Vars, ", "))
}
func (e NewUnresolvedType) getStack() []byte { return e.stack }
func (e NewUnresolvedType) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

// NewConflictingArity is a type conflict between a function type and a
// call-site that passes a different number of arguments
type NewConflictingArity struct {
	ast.Positioner
	Expected string
	Found    string
	stack    []byte
}

func (e NewConflictingArity) Code() ErrCode { return ConflictingArity }
func (e NewConflictingArity) Error() string {
	return fmt.Sprintf("type mismatch: function of type '%s' cannot be used as '%s': wrong number of arguments", e.Expected, e.Found)
}
func (e NewConflictingArity) getStack() []byte { return e.stack }
func (e NewConflictingArity) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUnboundName struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUnboundName) Code() ErrCode { return UnboundName }
func (e NewUnboundName) Error() string {
	return fmt.Sprintf("name '%s' is not bound in any enclosing scope", e.Name)
}
func (e NewUnboundName) getStack() []byte { return e.stack }
func (e NewUnboundName) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewNotCallable struct {
	ast.Positioner
	// Kind describes the node in head position
	Kind  string
	Value string
	stack []byte
}

func (e NewNotCallable) Code() ErrCode { return NotCallable }
func (e NewNotCallable) Error() string {
	return fmt.Sprintf("cannot call %s: value '%s' is not a function", e.Kind, e.Value)
}
func (e NewNotCallable) getStack() []byte { return e.stack }
func (e NewNotCallable) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewArityMismatch struct {
	ast.Positioner
	Name     string
	Expected int
	Got      int
	stack    []byte
}

func (e NewArityMismatch) Code() ErrCode { return ArityMismatch }
func (e NewArityMismatch) Error() string {
	return fmt.Sprintf("'%s' expects %d argument(s) but was called with %d", e.Name, e.Expected, e.Got)
}
func (e NewArityMismatch) getStack() []byte { return e.stack }
func (e NewArityMismatch) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewMissingEntry struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewMissingEntry) Code() ErrCode { return MissingEntry }
func (e NewMissingEntry) Error() string {
	return fmt.Sprintf("entry function '%s' is not declared", e.Name)
}
func (e NewMissingEntry) getStack() []byte { return e.stack }
func (e NewMissingEntry) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewBadOperand struct {
	ast.Positioner
	Builtin  string
	Index    int
	Expected string
	Value    string
	stack    []byte
}

func (e NewBadOperand) Code() ErrCode { return BadOperand }
func (e NewBadOperand) Error() string {
	return fmt.Sprintf("argument %d of '%s' must be %s, but got '%s'", e.Index+1, e.Builtin, e.Expected, e.Value)
}
func (e NewBadOperand) getStack() []byte { return e.stack }
func (e NewBadOperand) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewDivisionByZero struct {
	ast.Positioner
	Builtin string
	stack   []byte
}

func (e NewDivisionByZero) Code() ErrCode { return DivisionByZero }
func (e NewDivisionByZero) Error() string {
	return fmt.Sprintf("division by zero in '%s'", e.Builtin)
}
func (e NewDivisionByZero) getStack() []byte { return e.stack }
func (e NewDivisionByZero) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewCallDepthExceeded struct {
	ast.Positioner
	Name  string
	Depth int
	stack []byte
}

func (e NewCallDepthExceeded) Code() ErrCode { return CallDepthExceeded }
func (e NewCallDepthExceeded) Error() string {
	return fmt.Sprintf("call to '%s' exceeds the maximum call depth of %d", e.Name, e.Depth)
}
func (e NewCallDepthExceeded) getStack() []byte { return e.stack }
func (e NewCallDepthExceeded) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}
