package zed

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cottand/zed/frontend/types"
	"github.com/cottand/zed/parser"
)

// sessionEntry names the function a Session wraps expressions in
const sessionEntry = "__session"

// Session evaluates input one piece at a time, remembering function declarations between inputs
type Session struct {
	cfg    Config
	stdout io.Writer
	decls  []string
}

func NewSession(cfg Config, stdout io.Writer) *Session {
	cfg.Entry = sessionEntry
	return &Session{cfg: cfg, stdout: stdout}
}

// Input evaluates one complete input, which is either function declarations
// or a single expression, and returns what should be shown for it
func (s *Session) Input(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	if parser.NewStream(input).PeekText("fn") {
		return s.declare(input)
	}

	if _, errs := parser.ParseExpr(nil, input); errs.HasError() {
		return "", errs.Err()
	}
	src := s.source(fmt.Sprintf("fn %s() { return %s }", sessionEntry, input))
	eval, err := Eval(src, s.stdout, s.cfg)
	if err != nil {
		return "", errors.New(eval.Program.FormatError(err))
	}
	shown := eval.Value.String()
	if t, ok := eval.Types.TypeOf(sessionEntry); ok {
		if ret, ok := t.Return(); ok && len(types.Vars(ret)) == 0 {
			shown += " : " + types.Display(ret)
		}
	}
	return shown, nil
}

func (s *Session) declare(input string) (string, error) {
	declared, errs := parser.ParseToAST(nil, input)
	if errs.HasError() {
		return "", errs.Err()
	}
	p := NewProgramFromBytes([]byte(s.source(input)), "session.zed", s.cfg)
	if errs := p.Errors(); errs.HasError() {
		return "", errors.New(strings.TrimSpace(p.FormatErrors(errs)))
	}
	s.decls = append(s.decls, input)

	names := make([]string, 0, len(declared.Funcs))
	for _, fn := range declared.Funcs {
		names = append(names, fn.Name)
	}
	return "defined " + strings.Join(names, ", "), nil
}

func (s *Session) source(extra ...string) string {
	return strings.Join(append(append([]string{}, s.decls...), extra...), "\n")
}

// Types renders the inferred types of every declared function
func (s *Session) Types() (string, error) {
	return NewProgramFromBytes([]byte(s.source()), "session.zed", s.cfg).DisplayFunctionTypes()
}

// Reset forgets every declaration
func (s *Session) Reset() {
	s.decls = nil
}

// Incomplete reports whether src opens more brackets than it closes, so more input is needed
func Incomplete(src string) bool {
	stream := parser.NewStream(src)
	depth := 0
	for !stream.Done() {
		tok := stream.Peek()
		stream.TakeKind(tok.Kind)
		if tok.Kind != parser.Punct {
			continue
		}
		switch tok.Text {
		case "(", "{":
			depth++
		case ")", "}":
			depth--
		}
	}
	return depth > 0
}
