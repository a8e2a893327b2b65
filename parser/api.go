package parser

import (
	"go/token"

	"github.com/cottand/zed/frontend/ast"
	"github.com/cottand/zed/frontend/ilerr"
	"github.com/cottand/zed/internal/log"
)

// ParseToAST parses the source text of a whole file.
//
// Positions of the returned nodes point into file, which must be as large as src,
// and whose line table is set from src. If file is nil, a standalone one is created.
// Parsing stops at the first syntax error, in which case the returned *ast.File is nil.
func ParseToAST(file *token.File, src string) (*ast.File, *ilerr.Errors) {
	p := newParser(file, src)
	f, err := p.parseFile()
	if err != nil {
		return nil, new(ilerr.Errors).With(err)
	}
	return f, nil
}

// ParseExpr parses src as a single expression, like the ones found in statements
func ParseExpr(file *token.File, src string) (ast.Expr, *ilerr.Errors) {
	p := newParser(file, src)
	expr, err := p.parseExpr()
	if err == nil && !p.s.Done() {
		err = p.unexpected(p.s.Peek(), "end of input", "")
	}
	if err != nil {
		return nil, new(ilerr.Errors).With(err)
	}
	return expr, nil
}

func newParser(file *token.File, src string) *parser {
	if file == nil {
		file = token.NewFileSet().AddFile("", -1, len(src))
	}
	file.SetLinesForContent([]byte(src))
	return &parser{
		s:      NewStream(src),
		file:   file,
		logger: log.DefaultLogger.With("section", "parser"),
	}
}
