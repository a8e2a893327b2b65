package zed

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/cottand/zed/backend"
	"github.com/cottand/zed/frontend/ast"
	"github.com/cottand/zed/frontend/ilerr"
	"github.com/cottand/zed/frontend/types"
	"github.com/cottand/zed/internal/log"
	"github.com/cottand/zed/parser"
)

var programLogger = log.DefaultLogger.With("section", "program")

// Program is a single source file, parsed, and inferred on demand.
//
// Inference and evaluation both read the same syntax tree, but never each other's results:
// a program with type errors can still be run.
type Program struct {
	name   string
	src    []byte
	fSet   *token.FileSet
	syntax *ast.File
	config Config

	// parseErrors are the errors of the parse phase, which make the program unusable
	parseErrors *ilerr.Errors
	inferred    *types.Result
}

var _ ilerr.Source = (*Program)(nil)

// NewProgramFromBytes parses src as the file name
func NewProgramFromBytes(src []byte, name string, cfg Config) *Program {
	p := &Program{
		name:   name,
		src:    src,
		fSet:   token.NewFileSet(),
		config: cfg,
	}
	file := p.fSet.AddFile(name, -1, len(src))
	p.syntax, p.parseErrors = parser.ParseToAST(file, string(src))
	programLogger.Debug("parsed program", "name", name, "errors", p.parseErrors)
	return p
}

// LoadProgram reads and parses the file at filePath in fsys
func LoadProgram(fsys fs.FS, filePath string, cfg Config) (*Program, error) {
	src, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, err
	}
	return NewProgramFromBytes(src, path.Base(filePath), cfg), nil
}

func (p *Program) Name() string            { return p.name }
func (p *Program) FileSet() *token.FileSet { return p.fSet }
func (p *Program) Source() []byte          { return p.src }
func (p *Program) Config() Config          { return p.config }

// Syntax returns the parsed file, or nil if it did not parse
func (p *Program) Syntax() *ast.File {
	return p.syntax
}

// Parsed reports whether the program parsed without errors
func (p *Program) Parsed() bool {
	return !p.parseErrors.HasError()
}

// Infer runs inference over the program the first time it is called, and returns its result.
// It returns nil if the program did not parse.
func (p *Program) Infer() *types.Result {
	if !p.Parsed() {
		return nil
	}
	if p.inferred == nil {
		p.inferred = types.InferFile(p.syntax, TypeEnv(), p.config.Settings())
		programLogger.Debug("inferred program", "name", p.name, "errors", p.inferred.Errors, "warnings", p.inferred.Warnings)
	}
	return p.inferred
}

// Errors returns the errors of parsing and inference
func (p *Program) Errors() *ilerr.Errors {
	var errs *ilerr.Errors
	errs = errs.Merge(p.parseErrors)
	if res := p.Infer(); res != nil {
		errs = errs.Merge(res.Errors)
	}
	return errs
}

// Warnings returns the types that could not be fully inferred
func (p *Program) Warnings() *ilerr.Errors {
	if res := p.Infer(); res != nil {
		return res.Warnings
	}
	return nil
}

// Run evaluates the entry function of the program, writing output to stdout.
// Only parse errors prevent a program from running.
func (p *Program) Run(stdout io.Writer) (backend.Value, error) {
	if !p.Parsed() {
		return nil, p.parseErrors.Err()
	}
	in := p.config.Interpreter(stdout)
	return in.Run(p.syntax, RootEnv(), p.config.Entry)
}

// DisplayTypes renders the inferred type of every declaration, one per line
func (p *Program) DisplayTypes() (string, error) {
	res := p.Infer()
	if res == nil {
		return "", fmt.Errorf("cannot display types: %w", p.parseErrors.Err())
	}
	return types.DisplayTable(res.Table), nil
}

// DisplayFunctionTypes renders the inferred type of every top-level function only
func (p *Program) DisplayFunctionTypes() (string, error) {
	res := p.Infer()
	if res == nil {
		return "", fmt.Errorf("cannot display types: %w", p.parseErrors.Err())
	}
	sb := &strings.Builder{}
	for name, t := range res.Table.All() {
		if strings.Contains(name, "::") {
			continue
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(types.Display(t))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// Format returns the canonical text of the program
func (p *Program) Format() (string, error) {
	if !p.Parsed() {
		return "", fmt.Errorf("cannot format: %w", p.parseErrors.Err())
	}
	return ast.FileString(p.syntax), nil
}

// FormatErrors renders every error in errs with the line of source it points to
func (p *Program) FormatErrors(errs *ilerr.Errors) string {
	sb := &strings.Builder{}
	for _, err := range errs.Errors() {
		sb.WriteString(ilerr.FormatWithCodeAndSource(err, p))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatError renders an error returned by Run. Errors that carry a position are shown with
// the line of source they point to, followed by the chain of calls that led to them.
func (p *Program) FormatError(err error) string {
	var ileErr ilerr.IleError
	if !errors.As(err, &ileErr) {
		return err.Error()
	}
	formatted := ilerr.FormatWithCodeAndSource(ileErr, p)
	if chain := strings.TrimSuffix(err.Error(), ileErr.Error()); chain != "" {
		formatted += "\n" + strings.TrimSuffix(chain, ": ")
	}
	return formatted
}

// Evaluation is the outcome of Eval
type Evaluation struct {
	Program *Program
	Value   backend.Value
	// Types is the result of inference, nil if the program did not parse
	Types *types.Result
}

// Eval parses, infers and runs src in one blocking call
func Eval(src string, stdout io.Writer, cfg Config) (*Evaluation, error) {
	p := NewProgramFromBytes([]byte(src), "eval.zed", cfg)
	if !p.Parsed() {
		return &Evaluation{Program: p}, p.parseErrors.Err()
	}
	eval := &Evaluation{Program: p, Types: p.Infer()}
	value, err := p.Run(stdout)
	if err != nil {
		return eval, err
	}
	eval.Value = value
	return eval, nil
}
