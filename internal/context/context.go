// Package context holds the per-run state shared by the interpreter
// phases. The phases themselves are stateless workers: the lexer, parser,
// and evaluator receive their input and report their one failure back
// through the typed errors in the diagnostics package.
//
// Phase progression:
//
//	Source -> Lexer -> Parser -> Evaluator -> Value
//
// There is exactly one source buffer, one evaluation pass, and one
// environment per run; a run either completes with a value or stops at its
// first error.
package context

import (
	"io"
	"strings"

	"slate/internal/diagnostics"
	"slate/internal/frontend/ast"
	"slate/internal/frontend/lexer"
	"slate/internal/interp"
)

// InterpOptions holds interpreter configuration. Set at creation time and
// immutable afterwards.
type InterpOptions struct {
	Debug bool // enable phase tracing on stderr
}

// InterpContext is the central hub for one interpreter session. Phase
// outputs (tokens, AST, environment) are kept on the context so tests and
// debug output can inspect them after a run.
type InterpContext struct {
	// Diagnostics collects the renderable form of the run's error.
	Diagnostics *diagnostics.DiagnosticBag

	Options *InterpOptions

	FileName string
	Source   string

	Tokens  []lexer.Token
	Program *ast.Block
	Env     *interp.Env
}

// New creates an interpreter context. This is the entry point for starting
// a new session.
func New(options *InterpOptions) *InterpContext {
	if options == nil {
		options = &InterpOptions{}
	}

	return &InterpContext{
		Diagnostics: diagnostics.NewDiagnosticBag(""),
		Options:     options,
	}
}

// SetSource registers the source buffer for the next run, replacing any
// previous phase outputs.
func (ctx *InterpContext) SetSource(name, src string) {
	ctx.FileName = name
	ctx.Source = src
	ctx.Tokens = nil
	ctx.Program = nil
	ctx.Env = nil
	ctx.Diagnostics = diagnostics.NewDiagnosticBag(name)
}

// HasErrors returns true if the run reported an error.
func (ctx *InterpContext) HasErrors() bool {
	return ctx.Diagnostics.HasErrors()
}

// EmitDiagnostics renders the collected diagnostics to w, using the
// in-memory source so inline programs print their offending line.
func (ctx *InterpContext) EmitDiagnostics(w io.Writer) {
	ctx.Diagnostics.EmitAllToWriterWithCache(w, strings.Split(ctx.Source, "\n"))
}
