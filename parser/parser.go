package parser

import (
	"fmt"
	"go/token"
	"log/slog"
	"strconv"

	"github.com/cottand/zed/frontend/ast"
	"github.com/cottand/zed/frontend/ilerr"
)

type parser struct {
	s      *Stream
	file   *token.File
	logger *slog.Logger
}

func (p *parser) rangeOf(tok Token) ast.Range {
	return ast.Range{PosStart: p.file.Pos(tok.Start), PosEnd: p.file.Pos(tok.End)}
}

func (p *parser) rangeBetween(start, end Token) ast.Range {
	return ast.Range{PosStart: p.file.Pos(start.Start), PosEnd: p.file.Pos(end.End)}
}

func (p *parser) fail(at Token, msg, hint string) ilerr.IleError {
	return ilerr.New(ilerr.NewParse{
		Positioner:    p.rangeOf(at),
		ParserMessage: msg,
		Hint:          hint,
	})
}

func (p *parser) unexpected(found Token, expected string, hint string) ilerr.IleError {
	return p.fail(found, fmt.Sprintf("expected %s, found %s", expected, found), hint)
}

func (p *parser) expect(text string, hint string) (Token, ilerr.IleError) {
	tok, ok := p.s.Take(text)
	if !ok {
		return tok, p.unexpected(p.s.Peek(), "'"+text+"'", hint)
	}
	return tok, nil
}

// file := func*
func (p *parser) parseFile() (*ast.File, ilerr.IleError) {
	f := &ast.File{}
	first := p.s.Peek()
	for !p.s.Done() {
		fn, err := p.parseFunc()
		if err != nil {
			return nil, err
		}
		f.Funcs = append(f.Funcs, fn)
	}
	f.Range = p.rangeBetween(first, p.s.Peek())
	return f, nil
}

// func := "fn" IDENT "(" (IDENT ","?)* ")" "{" stmt* "}"
func (p *parser) parseFunc() (*ast.Func, ilerr.IleError) {
	start, err := p.expect("fn", "only function declarations are allowed at the top level")
	if err != nil {
		return nil, err
	}
	name, ok := p.s.TakeKind(Ident)
	if !ok {
		return nil, p.unexpected(p.s.Peek(), "function name", "")
	}
	fn := &ast.Func{Name: name.Text}
	if _, err := p.expect("(", "parameters are declared like fn f(a, b)"); err != nil {
		return nil, err
	}
	for {
		if _, ok := p.s.Take(")"); ok {
			break
		}
		param, ok := p.s.TakeKind(Ident)
		if !ok {
			return nil, p.unexpected(p.s.Peek(), "parameter name or ')'", "")
		}
		fn.Params = append(fn.Params, ast.Param{Range: p.rangeOf(param), Name: param.Text})
		p.s.Take(",")
	}
	if _, err := p.expect("{", ""); err != nil {
		return nil, err
	}
	for {
		if end, ok := p.s.Take("}"); ok {
			fn.Range = p.rangeBetween(start, end)
			break
		}
		if p.s.Done() {
			return nil, p.unexpected(p.s.Peek(), "'}'", fmt.Sprintf("body of '%s' is not closed", fn.Name))
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		fn.Body = append(fn.Body, stmt)
	}
	p.logger.Debug("parsed function", "name", fn.Name, "params", len(fn.Params), "statements", len(fn.Body))
	return fn, nil
}

// stmt := "return" expr | expr "=" expr | expr
func (p *parser) parseStmt() (ast.Stmt, ilerr.IleError) {
	if start, ok := p.s.Take("return"); ok {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Return{Range: ast.Range{PosStart: p.file.Pos(start.Start), PosEnd: value.End()}, Value: value}, nil
	}

	mark := p.s.Save()
	target, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, ok := p.s.Take("="); !ok {
		return &ast.Discard{Range: ast.RangeOf(target), Value: target}, nil
	}
	ident, ok := target.(*ast.Ident)
	if !ok {
		p.s.Restore(mark)
		return nil, p.fail(p.s.Peek(), "cannot assign to "+target.Describe(), "only plain names can be assigned to")
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Range: ast.RangeBetween(ident, value), Name: ident.Name, Value: value}, nil
}

// expr := "(" expr+ ")" | NUMBER | IDENT
func (p *parser) parseExpr() (ast.Expr, ilerr.IleError) {
	tok := p.s.Peek()
	switch {
	case p.s.PeekText("("):
		p.s.Take("(")
		var items []ast.Expr
		for {
			if end, ok := p.s.Take(")"); ok {
				if len(items) == 0 {
					return nil, p.fail(tok, "empty application ()", "an application needs at least a function, like (f)")
				}
				return &ast.Apply{Range: p.rangeBetween(tok, end), Head: items[0], Args: items[1:]}, nil
			}
			if p.s.Done() {
				return nil, p.unexpected(p.s.Peek(), "')'", "application is not closed")
			}
			item, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	case tok.Kind == Number:
		p.s.TakeKind(Number)
		value, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, p.fail(tok, fmt.Sprintf("integer literal %s is out of range", tok.Text), "integers are 64-bit signed")
		}
		return &ast.Literal{Range: p.rangeOf(tok), Value: value}, nil
	case tok.Kind == Ident:
		p.s.TakeKind(Ident)
		return &ast.Ident{Range: p.rangeOf(tok), Name: tok.Text}, nil
	}
	return nil, p.unexpected(tok, "expression", "")
}
