package types

import (
	"fmt"
	"log/slog"

	"github.com/cottand/zed/frontend/ast"
	"github.com/cottand/zed/frontend/ilerr"
	"github.com/cottand/zed/internal/log"
)

// Settings tune a single inference run
type Settings struct {
	// Arity decides whether an arity conflict is an error or only logged
	Arity ilerr.ArityPolicy
	// MaxResolveDepth bounds the recursion of resolution, DefaultMaxResolveDepth when zero
	MaxResolveDepth int
}

// Result is everything an inference run produces
type Result struct {
	// Table holds the resolved type of every function, parameter and local binding
	Table       *Table
	Constraints *Constraints
	Errors      *ilerr.Errors
	// Warnings holds one ilerr.NewUnresolvedType per Table entry that still contains variables
	Warnings *ilerr.Errors
}

// TypeOf returns the resolved type of the top-level name, or of scope::name for locals
func (r *Result) TypeOf(name string) (Type, bool) {
	return r.Table.Get(name)
}

// TypeCtx holds the state of one inference run.
// It is not safe for concurrent use, and must not be reused for another file.
type TypeCtx struct {
	universe    map[string]Type
	table       *Table
	constraints *Constraints
	fresher     *Fresher
	settings    Settings
	logger      *slog.Logger

	// positions keeps where each table entry was declared, for warnings
	positions map[string]ast.Range
	// scope is the name of the function whose body is being inferred
	scope string
	// currentPos is the innermost expression being inferred
	currentPos ast.Positioner

	errors *ilerr.Errors
}

func NewTypeCtx(universe map[string]Type, settings Settings) *TypeCtx {
	if settings.MaxResolveDepth <= 0 {
		settings.MaxResolveDepth = DefaultMaxResolveDepth
	}
	return &TypeCtx{
		universe:    universe,
		table:       NewTable(),
		constraints: NewConstraints(),
		fresher:     NewFresher(),
		settings:    settings,
		logger:      ast.ExprLogger(log.DefaultLogger).With("section", "inference"),
		positions:   make(map[string]ast.Range),
	}
}

// InferFile infers the types of every declaration in file, looking up
// names that file does not declare in universe
func InferFile(file *ast.File, universe map[string]Type, settings Settings) *Result {
	return NewTypeCtx(universe, settings).InferFile(file)
}

func (ctx *TypeCtx) InferFile(file *ast.File) *Result {
	// first pass: every function and parameter gets a fresh variable, so bodies
	// can refer to functions declared after them
	fnTypes := make([]Type, len(file.Funcs))
	for i, fn := range file.Funcs {
		params := ctx.fresher.FreshN(len(fn.Params))
		fnTypes[i] = Fn(params, ctx.fresher.Fresh())
		ctx.declare(fn.Name, fnTypes[i], fn)
		for j := range fn.Params {
			ctx.declare(Qualify(fn.Name, fn.Params[j].Name), params[j], &fn.Params[j])
		}
	}

	for i, fn := range file.Funcs {
		ctx.scope = fn.Name
		for _, stmt := range fn.Body {
			ctx.inferStmt(fnTypes[i], stmt)
		}
	}
	ctx.scope = ""

	warnings := ctx.resolveTable()
	ctx.logger.Debug("inference done", "constraints", ctx.constraints.Len(), "freshVars", ctx.fresher.Count())
	return &Result{
		Table:       ctx.table,
		Constraints: ctx.constraints,
		Errors:      ctx.errors,
		Warnings:    warnings,
	}
}

func (ctx *TypeCtx) declare(name string, t Type, at ast.Positioner) {
	ctx.table.Set(name, t)
	ctx.positions[name] = ast.RangeOf(at)
}

// lookup searches the current scope, then top-level functions, then the universe
func (ctx *TypeCtx) lookup(name string) (Type, bool) {
	if ctx.scope != "" {
		if t, ok := ctx.table.Get(Qualify(ctx.scope, name)); ok {
			return t, true
		}
	}
	if t, ok := ctx.table.Get(name); ok {
		return t, true
	}
	t, ok := ctx.universe[name]
	return t, ok
}

func (ctx *TypeCtx) inferStmt(fnType Type, stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.Assign:
		t := ctx.infer(stmt.Value, ctx.fresher.Fresh())
		ctx.declare(Qualify(ctx.scope, stmt.Name), t, stmt)
	case *ast.Return:
		ret, _ := fnType.Return()
		ctx.infer(stmt.Value, ret)
	case *ast.Discard:
		ctx.infer(stmt.Value, ctx.fresher.Fresh())
	default:
		panic(fmt.Sprintf("unexpected statement type %T", stmt))
	}
}

// infer returns the type of expr, linking it to expected along the way
func (ctx *TypeCtx) infer(expr ast.Expr, expected Type) (t Type) {
	previous := ctx.currentPos
	ctx.currentPos = expr
	defer func() {
		ctx.currentPos = previous
		ctx.logger.Debug("inferred", "expr", expr, "type", t)
	}()

	switch expr := expr.(type) {
	case *ast.Literal:
		// linked so a literal in return position fixes the return slot
		ctx.link(Int, expected)
		return Int
	case *ast.Ident:
		found, ok := ctx.lookup(expr.Name)
		if !ok {
			ctx.undefined(expr)
			return expected
		}
		// every use of a generic scheme gets its own copy
		found = Instantiate(ctx.fresher, found)
		ctx.link(found, expected)
		return found
	case *ast.Apply:
		args := make([]Type, len(expr.Args))
		for i, arg := range expr.Args {
			args[i] = ctx.infer(arg, ctx.fresher.Fresh())
		}
		signature := Fn(args, expected)
		callee := Instantiate(ctx.fresher, ctx.inferHead(expr.Head))
		ctx.link(callee, signature)
		if ret, ok := callee.Return(); ok {
			return ret
		}
		return expected
	default:
		panic(fmt.Sprintf("unexpected expression type %T", expr))
	}
}

// inferHead looks identifiers up directly so their scheme is only instantiated once, by the caller
func (ctx *TypeCtx) inferHead(head ast.Expr) Type {
	ident, ok := head.(*ast.Ident)
	if !ok {
		return ctx.infer(head, ctx.fresher.Fresh())
	}
	found, ok := ctx.lookup(ident.Name)
	if !ok {
		ctx.undefined(ident)
		return ctx.fresher.Fresh()
	}
	return found
}

func (ctx *TypeCtx) undefined(ident *ast.Ident) {
	ctx.errors = ctx.errors.With(ilerr.New(ilerr.NewUndefinedVariable{
		Positioner: ast.RangeOf(ident),
		Name:       ident.Name,
	}))
}

func (ctx *TypeCtx) link(a, b Type) {
	for _, conflict := range ctx.constraints.Link(a, b) {
		expected := Display(ctx.resolve(conflict.Expected))
		found := Display(ctx.resolve(conflict.Found))
		if ctx.settings.Arity == ilerr.ArityLenient {
			ctx.logger.Warn("conflicting arity", "expected", expected, "found", found)
			continue
		}
		ctx.errors = ctx.errors.With(ilerr.New(ilerr.NewConflictingArity{
			Positioner: ast.RangeOf(ctx.currentPos),
			Expected:   expected,
			Found:      found,
		}))
	}
}

func (ctx *TypeCtx) resolve(t Type) Type {
	resolved, exhausted := ctx.constraints.ResolveWithin(t, ctx.settings.MaxResolveDepth)
	if exhausted {
		ctx.logger.Warn("resolution depth exceeded, leaving type unresolved", "type", t, "maxDepth", ctx.settings.MaxResolveDepth)
	}
	return resolved
}

// resolveTable rewrites every entry of the table with its resolution
func (ctx *TypeCtx) resolveTable() *ilerr.Errors {
	var warnings *ilerr.Errors
	for name, t := range ctx.table.All() {
		resolved := ctx.resolve(t)
		ctx.table.Set(name, resolved)
		if vars := Vars(resolved); len(vars) > 0 {
			warnings = warnings.With(ilerr.New(ilerr.NewUnresolvedType{
				Positioner: ctx.positions[name],
				Name:       name,
				Vars:       vars,
			}))
		}
	}
	return warnings
}
